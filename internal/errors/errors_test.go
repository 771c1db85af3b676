package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestVarError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *VarError
		expected string
	}{
		{
			name: "message only",
			err: &VarError{
				Code:    ErrCodeValidation,
				Message: "invalid input",
			},
			expected: "invalid input",
		},
		{
			name: "with key",
			err: &VarError{
				Code:    ErrCodeFormat,
				Message: "duplicate variable key",
				Key:     "DB_HOST",
			},
			expected: "variable DB_HOST: duplicate variable key",
		},
		{
			name: "with underlying error",
			err: &VarError{
				Code:    ErrCodeConfig,
				Message: "failed to load",
				Err:     fmt.Errorf("file not found"),
			},
			expected: "failed to load: file not found",
		},
		{
			name: "with key and underlying error",
			err: &VarError{
				Code:    ErrCodeRemote,
				Message: "update failed",
				Key:     "API_TOKEN",
				Err:     fmt.Errorf("403 Forbidden"),
			},
			expected: "variable API_TOKEN: update failed: 403 Forbidden",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			if result != tt.expected {
				t.Errorf("Error() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestVarError_Unwrap(t *testing.T) {
	underlying := fmt.Errorf("underlying error")
	err := &VarError{
		Code:    ErrCodeConfig,
		Message: "wrapped error",
		Err:     underlying,
	}

	if err.Unwrap() != underlying {
		t.Errorf("Unwrap() did not return underlying error")
	}

	errNoWrap := &VarError{
		Code:    ErrCodeValidation,
		Message: "no underlying",
	}

	if errNoWrap.Unwrap() != nil {
		t.Errorf("Unwrap() should return nil when no underlying error")
	}
}

func TestVarError_Is(t *testing.T) {
	tests := []struct {
		name     string
		err      *VarError
		target   error
		expected bool
	}{
		{
			name:     "matches sentinel error",
			err:      &VarError{Code: ErrCodeFormat, Message: "custom message"},
			target:   ErrDuplicateKey,
			expected: true,
		},
		{
			name:     "different code",
			err:      &VarError{Code: ErrCodeFormat},
			target:   ErrAuthRequired,
			expected: false,
		},
		{
			name:     "non-VarError target",
			err:      &VarError{Code: ErrCodeRemote},
			target:   fmt.Errorf("plain error"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := errors.Is(tt.err, tt.target)
			if result != tt.expected {
				t.Errorf("errors.Is() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	t.Run("Format", func(t *testing.T) {
		err := Format("variables array is missing")
		var varErr *VarError
		if !errors.As(err, &varErr) {
			t.Fatal("Format() should return a *VarError")
		}
		if varErr.Code != ErrCodeFormat {
			t.Errorf("expected code FORMAT, got %s", varErr.Code)
		}
	})

	t.Run("FormatKey", func(t *testing.T) {
		err := FormatKey("BAD KEY", "invalid variable key")
		var varErr *VarError
		if !errors.As(err, &varErr) {
			t.Fatal("FormatKey() should return a *VarError")
		}
		if varErr.Key != "BAD KEY" {
			t.Errorf("expected key BAD KEY, got %s", varErr.Key)
		}
		if !errors.Is(err, ErrInvalidKey) {
			t.Error("FormatKey error should match FORMAT sentinels")
		}
	})

	t.Run("Remote", func(t *testing.T) {
		underlying := fmt.Errorf("500 Internal Server Error")
		err := Remote("delete", "STALE_VAR", underlying)
		var varErr *VarError
		if !errors.As(err, &varErr) {
			t.Fatal("Remote() should return a *VarError")
		}
		if varErr.Code != ErrCodeRemote {
			t.Errorf("expected code REMOTE, got %s", varErr.Code)
		}
		if varErr.Key != "STALE_VAR" {
			t.Errorf("expected key STALE_VAR, got %s", varErr.Key)
		}
		if !errors.Is(err, underlying) {
			t.Error("Remote error should wrap the underlying error")
		}
	})

	t.Run("Policy", func(t *testing.T) {
		err := Policy("EMPTY_VAR", "empty value requires --force")
		var varErr *VarError
		if !errors.As(err, &varErr) {
			t.Fatal("Policy() should return a *VarError")
		}
		if varErr.Code != ErrCodePolicy {
			t.Errorf("expected code POLICY, got %s", varErr.Code)
		}
	})
}

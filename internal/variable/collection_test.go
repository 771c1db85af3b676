package variable

import (
	"testing"

	"github.com/ksyq12/glabenv/internal/errors"
)

func TestCollection_AddAndGet(t *testing.T) {
	c := NewCollection()

	if err := c.Add(Variable{Key: "A", Value: "1", Type: TypeEnvVar}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Add(Variable{Key: "B", Value: "2", Type: TypeEnvVar}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, ok := c.Get("A")
	if !ok || v.Value != "1" {
		t.Errorf("Get(A) = %+v, %v", v, ok)
	}
	if _, ok := c.Get("MISSING"); ok {
		t.Error("Get(MISSING) should not be found")
	}
	if !c.Has("B") {
		t.Error("Has(B) should be true")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestCollection_DuplicateKey(t *testing.T) {
	c := NewCollection()
	if err := c.Add(Variable{Key: "A", Type: TypeEnvVar}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := c.Add(Variable{Key: "A", Type: TypeEnvVar})
	if err == nil {
		t.Fatal("expected duplicate key error")
	}
	if !errors.Is(err, errors.ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestCollection_OrderPreserved(t *testing.T) {
	c := NewCollection()
	for _, k := range []string{"ZETA", "ALPHA", "MIDDLE"} {
		if err := c.Add(Variable{Key: k, Type: TypeEnvVar}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	keys := c.Keys()
	want := []string{"ZETA", "ALPHA", "MIDDLE"}
	for i, k := range want {
		if keys[i] != k {
			t.Errorf("Keys()[%d] = %s, want %s", i, keys[i], k)
		}
	}

	vars := c.Variables()
	for i, k := range want {
		if vars[i].Key != k {
			t.Errorf("Variables()[%d].Key = %s, want %s", i, vars[i].Key, k)
		}
	}
}

func TestFromVariables(t *testing.T) {
	t.Run("normalizes empty type", func(t *testing.T) {
		c, err := FromVariables([]Variable{{Key: "A", Value: "1"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		v, _ := c.Get("A")
		if v.Type != TypeEnvVar {
			t.Errorf("expected normalized type env_var, got %s", v.Type)
		}
	})

	t.Run("rejects invalid variable", func(t *testing.T) {
		_, err := FromVariables([]Variable{{Key: "BAD KEY"}})
		if !errors.Is(err, errors.ErrInvalidKey) {
			t.Errorf("expected ErrInvalidKey, got %v", err)
		}
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		_, err := FromVariables([]Variable{
			{Key: "A", Type: TypeEnvVar},
			{Key: "A", Type: TypeEnvVar},
		})
		if !errors.Is(err, errors.ErrDuplicateKey) {
			t.Errorf("expected ErrDuplicateKey, got %v", err)
		}
	})
}

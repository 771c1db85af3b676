package variable

import (
	"regexp"

	"github.com/ksyq12/glabenv/internal/errors"
)

// Variable represents a single GitLab CI/CD project variable
type Variable struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	Protected   bool   `json:"protected"`
	Masked      bool   `json:"masked"`
	Type        string `json:"variable_type"`
}

// Variable type constants
const (
	TypeEnvVar = "env_var"
	TypeFile   = "file"
)

// keyPattern is the allowed shape of a variable key: letters, digits,
// underscore, non-empty. GitLab enforces the same alphabet server-side.
var keyPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// ValidTypes returns all valid variable types
func ValidTypes() []string {
	return []string{TypeEnvVar, TypeFile}
}

// IsValidType checks if the given type is valid
func IsValidType(t string) bool {
	for _, valid := range ValidTypes() {
		if t == valid {
			return true
		}
	}
	return false
}

// IsValidKey checks if the key matches the allowed pattern
func IsValidKey(key string) bool {
	return keyPattern.MatchString(key)
}

// Validate checks the variable for format errors. The zero variable_type
// is rejected; callers normalize it to env_var before validation.
func (v Variable) Validate() error {
	if v.Key == "" {
		return errors.Format("variable key is required")
	}
	if !IsValidKey(v.Key) {
		return errors.FormatKey(v.Key, "invalid variable key")
	}
	if !IsValidType(v.Type) {
		return errors.FormatKey(v.Key, "invalid variable type "+v.Type)
	}
	return nil
}

// StructuralEquals reports whether the protected, masked, and variable_type
// fields match. Value and description are deliberately excluded: the value
// has its own comparison rules and the description only exists locally.
func (v Variable) StructuralEquals(other Variable) bool {
	return v.Protected == other.Protected &&
		v.Masked == other.Masked &&
		v.Type == other.Type
}

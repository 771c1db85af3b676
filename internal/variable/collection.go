package variable

import "github.com/ksyq12/glabenv/internal/errors"

// Collection is a set of variables keyed by name. Insertion order is
// preserved so that exports and plans are stable across runs; comparison
// between collections is order-independent.
type Collection struct {
	keys []string
	vars map[string]Variable
}

// NewCollection creates an empty collection
func NewCollection() *Collection {
	return &Collection{
		vars: make(map[string]Variable),
	}
}

// FromVariables builds a collection from a slice, validating each variable
// and rejecting duplicate keys. An empty variable_type is normalized to
// env_var before validation, matching the remote store's default.
func FromVariables(vars []Variable) (*Collection, error) {
	c := NewCollection()
	for _, v := range vars {
		if v.Type == "" {
			v.Type = TypeEnvVar
		}
		if err := v.Validate(); err != nil {
			return nil, err
		}
		if err := c.Add(v); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add appends a variable, rejecting duplicate keys
func (c *Collection) Add(v Variable) error {
	if _, exists := c.vars[v.Key]; exists {
		return errors.FormatKey(v.Key, "duplicate variable key")
	}
	c.keys = append(c.keys, v.Key)
	c.vars[v.Key] = v
	return nil
}

// Get returns the variable for key
func (c *Collection) Get(key string) (Variable, bool) {
	v, ok := c.vars[key]
	return v, ok
}

// Has reports whether key exists in the collection
func (c *Collection) Has(key string) bool {
	_, ok := c.vars[key]
	return ok
}

// Keys returns all keys in insertion order
func (c *Collection) Keys() []string {
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	return keys
}

// Variables returns all variables in insertion order
func (c *Collection) Variables() []Variable {
	vars := make([]Variable, 0, len(c.keys))
	for _, k := range c.keys {
		vars = append(vars, c.vars[k])
	}
	return vars
}

// Len returns the number of variables
func (c *Collection) Len() int {
	return len(c.keys)
}

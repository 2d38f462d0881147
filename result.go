package cargs

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Result is the finished value mapping of a single Parse call, read only.
// Every declared key is present and holds either captured data or the
// declaration's default.
type Result struct {
	values map[string]interface{}
}

// Get returns the raw value for the declared key.
func (r *Result) Get(key string) (interface{}, error) {
	v, ok := r.values[key]
	if !ok {
		return nil, fmt.Errorf("argument key %q was never declared, %w", key, ErrUnknownKey)
	}
	return v, nil
}

// Bool returns the value of a switch declaration.
func (r *Result) Bool(key string) (bool, error) {
	v, err := r.Get(key)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("argument %q value %v is not a bool", key, v)
	}
	return b, nil
}

// String returns the scalar value of a declaration, empty when unset.
func (r *Result) String(key string) (string, error) {
	v, err := r.Get(key)
	if err != nil {
		return "", err
	}
	if v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("argument %q value %v is not a string", key, v)
	}
	return s, nil
}

// Strings returns the ordered sequence of a plural declaration.
func (r *Result) Strings(key string) ([]string, error) {
	v, err := r.Get(key)
	if err != nil {
		return nil, err
	}
	seq, ok := v.([]string)
	if !ok {
		return nil, fmt.Errorf("argument %q value %v is not a sequence", key, v)
	}
	return seq, nil
}

// Decode decodes the whole value mapping into the provided struct keyed by
// mapstructure tags.
func (r *Result) Decode(v interface{}) error {
	if err := mapstructure.Decode(r.values, v); err != nil {
		return fmt.Errorf("argument values %v can't be decoded, %w", r.values, err)
	}
	return nil
}

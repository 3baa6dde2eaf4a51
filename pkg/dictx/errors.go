package dictx

import (
	"errors"
	"fmt"
)

// KeyNotFoundError reports a missing key. For nested lookups, Path holds
// the full path up to and including the missing key. Available lists the
// keys present at the level where the lookup failed, which usually points
// straight at the typo.
type KeyNotFoundError struct {
	Key       string
	Path      string
	Available []string
}

func (e *KeyNotFoundError) Error() string {
	if e.Path != "" && e.Path != e.Key {
		return fmt.Sprintf("dictx: key %q not found at path %q, available keys: %v", e.Key, e.Path, e.Available)
	}
	return fmt.Sprintf("dictx: key %q not found, available keys: %v", e.Key, e.Available)
}

// NotAMapError reports that a nested lookup hit a non-map value before the
// path was exhausted.
type NotAMapError struct {
	Path string // path to the non-map value, empty when source itself
}

func (e *NotAMapError) Error() string {
	if e.Path == "" {
		return "dictx: value is not a map"
	}
	return fmt.Sprintf("dictx: value at path %q is not a map", e.Path)
}

// IsKeyNotFoundError reports whether err is a KeyNotFoundError.
func IsKeyNotFoundError(err error) bool {
	var e *KeyNotFoundError
	return errors.As(err, &e)
}

func newKeyNotFoundError[K comparable](key K, path string, available []K) *KeyNotFoundError {
	strs := make([]string, len(available))
	for i, k := range available {
		strs[i] = fmt.Sprintf("%v", k)
	}
	return &KeyNotFoundError{
		Key:       fmt.Sprintf("%v", key),
		Path:      path,
		Available: strs,
	}
}

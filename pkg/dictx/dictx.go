package dictx

import "strings"

// DefaultSeparator splits string paths passed to Nested and NestedOr.
const DefaultSeparator = "."

// Lookup returns the value for key, or a *KeyNotFoundError naming the key
// and the keys that do exist. Use LookupOr when a fallback is preferred
// over an error.
func Lookup[K comparable, V any](source map[K]V, key K) (V, error) {
	if v, ok := source[key]; ok {
		return v, nil
	}
	var zero V
	return zero, newKeyNotFoundError(key, "", availableKeys(source))
}

// LookupOr returns the value for key, or fallback when the key is absent.
func LookupOr[K comparable, V any](source map[K]V, key K, fallback V) V {
	if v, ok := source[key]; ok {
		return v
	}
	return fallback
}

// Nested walks a tree of nested map[string]any values along a dot-separated
// path and returns the value at the end of it.
//
//	v, err := dictx.Nested(data, "user.profile.name")
//
// A missing key yields *KeyNotFoundError; a non-map value in the middle of
// the path yields *NotAMapError. An empty path returns source itself.
func Nested(source map[string]any, path string) (any, error) {
	return NestedKeys(source, splitPath(path)...)
}

// NestedOr is Nested with a fallback instead of an error.
func NestedOr(source map[string]any, path string, fallback any) any {
	v, err := Nested(source, path)
	if err != nil {
		return fallback
	}
	return v
}

// NestedKeys is Nested with the path supplied as explicit keys, for keys
// that themselves contain the separator.
func NestedKeys(source map[string]any, keys ...string) (any, error) {
	if len(keys) == 0 {
		return source, nil
	}

	var current any = source
	for i, key := range keys {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, &NotAMapError{Path: joinPath(keys[:i])}
		}
		current, ok = node[key]
		if !ok {
			return nil, newKeyNotFoundError(key, joinPath(keys[:i+1]), availableKeys(node))
		}
	}
	return current, nil
}

func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, DefaultSeparator)
}

func joinPath(keys []string) string {
	return strings.Join(keys, DefaultSeparator)
}

func availableKeys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

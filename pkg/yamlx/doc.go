// Package yamlx wraps YAML file loading, saving, and nested-value access
// behind a small API. Documents load into map[string]any trees that
// pkg/dictx can traverse, or into tagged structs via LoadInto.
package yamlx

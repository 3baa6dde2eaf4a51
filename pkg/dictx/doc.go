// Package dictx provides safe map lookups with descriptive errors and
// fallback variants, including traversal of nested map[string]any trees by
// dot-separated paths. It pairs naturally with pkg/yamlx, whose decoded
// documents are exactly such trees.
package dictx

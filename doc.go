// Package bearkit is a collection of small, independent utility packages
// for building Go tools and services. Each package under pkg/ covers one
// concern and can be imported on its own; there is no shared framework or
// initialization order.
//
// Packages:
//
//   - pkg/fsm — generic finite-state machine with epsilon transitions
//   - pkg/logger — slog-based logging with a colorized console handler
//   - pkg/config — cached environment configuration loading
//   - pkg/broadcast — non-blocking in-process pub/sub fan-out
//   - pkg/async — futures and polling helpers for concurrent work
//   - pkg/dictx — typed lookups in nested map structures
//   - pkg/yamlx — YAML file loading with nested key access
//   - pkg/enumx — registries of named enum members
//   - pkg/markdown — markdown table rendering
//   - pkg/spreadsheet — Excel workbook builder with charts
//   - pkg/strutil — hex dumps, column alignment, string cleanup
//   - pkg/timeutil — UTC-offset formatting and validation
//   - pkg/netutil — free ports, interface addresses, port probes
//
// Packages accept interfaces and return structs, report failures as
// explicit errors, and take context.Context on blocking operations.
package bearkit

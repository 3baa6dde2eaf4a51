// Package strutil holds string presentation helpers: hex rendering of raw
// bytes, column alignment for 2-D text, control-character stripping, and
// title casing.
package strutil

// Package markdown renders small Markdown fragments, currently aligned
// tables and boolean status emoji, for reports and CI summaries.
package markdown

package markdown

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Emoji converts a boolean into a pass/fail emoji for report tables.
func Emoji(value bool) string {
	if value {
		return "✅"
	}
	return "❌"
}

// Table renders a 2-D slice as a Markdown table. The first row is the
// header; a separator row is inserted beneath it. Cells are padded so the
// raw text lines up column by column.
//
//	| name   | status |
//	|--------|--------|
//	| alpha  | ✅     |
//
// Rows must be non-empty and of equal length.
func Table(rows [][]string) (string, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return "", ErrEmptyTable
	}

	columns := len(rows[0])
	for i, row := range rows {
		if len(row) != columns {
			return "", fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, i, len(row), columns)
		}
	}

	widths := make([]int, columns)
	for _, row := range rows {
		for c, cell := range row {
			if w := utf8.RuneCountInString(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}

	var b strings.Builder
	writeRow := func(row []string) {
		b.WriteString("|")
		for c, cell := range row {
			b.WriteString(" ")
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", widths[c]-utf8.RuneCountInString(cell)))
			b.WriteString(" |")
		}
		b.WriteString("\n")
	}

	writeRow(rows[0])
	b.WriteString("|")
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2))
		b.WriteString("|")
	}
	b.WriteString("\n")
	for _, row := range rows[1:] {
		writeRow(row)
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

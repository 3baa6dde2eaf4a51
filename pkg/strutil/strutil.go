package strutil

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// HexDump renders bytes as colon-separated uppercase hex pairs, the way
// BLE and MAC addresses are usually shown: "DE:AD:BE:EF". Empty input
// renders as "<no data>" so log lines stay unambiguous.
func HexDump(data []byte) string {
	if len(data) == 0 {
		return "<no data>"
	}
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, ":")
}

// SimpleHex renders bytes as contiguous uppercase hex pairs: "DEADBEEF".
func SimpleHex(data []byte) string {
	return fmt.Sprintf("%X", data)
}

// AlignColumns pads every cell of a 2-D slice with trailing spaces so each
// column is as wide as its widest cell plus extraPadding, for aesthetic
// fixed-width printing. Widths are measured in runes. The input is not
// modified. Rows must be of equal length.
func AlignColumns(rows [][]string, extraPadding int) ([][]string, error) {
	if extraPadding < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativePadding, extraPadding)
	}
	if len(rows) == 0 {
		return [][]string{}, nil
	}

	columns := len(rows[0])
	for i, row := range rows {
		if len(row) != columns {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, i, len(row), columns)
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

	padded := make([][]string, len(rows))
	for r, row := range rows {
		padded[r] = make([]string, columns)
		for c, cell := range row {
			pad := widths[c] + extraPadding - utf8.RuneCountInString(cell)
			padded[r][c] = cell + strings.Repeat(" ", pad)
		}
	}
	return padded, nil
}

// RemoveControlChars strips all ASCII control characters from a string,
// including TAB, CR and LF.
func RemoveControlChars(text string) string {
	return strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1
		}
		return r
	}, text)
}

var titleCaser = cases.Title(language.English)

// Title converts text to English title case, word by word.
func Title(text string) string {
	return titleCaser.String(text)
}

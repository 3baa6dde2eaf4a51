package spreadsheet

import (
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// Builder assembles an Excel workbook sheet by sheet, with optional header
// styling, column autofit, charts, and hyperlinks. Methods chain; the
// first error is remembered and reported by Save (or earlier via Err), so
// call sites stay linear:
//
//	err := spreadsheet.NewBuilder("report.xlsx").
//	    AddSheet("Sales", rows).
//	    AddPieChart("Sales", "A1:B4", "D2", &spreadsheet.ChartConfig{Title: "Q1"}).
//	    Save()
type Builder struct {
	file   *excelize.File
	output string
	sheets int
	err    error
}

// NewBuilder creates a builder that will save the workbook to output.
func NewBuilder(output string) *Builder {
	return &Builder{
		file:   excelize.NewFile(),
		output: output,
	}
}

// SheetOption configures a single AddSheet call.
type SheetOption func(*sheetConfig)

type sheetConfig struct {
	headerRow bool
	autofit   bool
}

// WithoutHeaderRow disables bold styling of the first row.
func WithoutHeaderRow() SheetOption {
	return func(c *sheetConfig) { c.headerRow = false }
}

// WithoutAutofit disables content-based column sizing.
func WithoutAutofit() SheetOption {
	return func(c *sheetConfig) { c.autofit = false }
}

// AddSheet appends a worksheet populated with data, one row per slice. By
// default the first row is styled as a header and columns are widened to
// fit their content.
func (b *Builder) AddSheet(name string, data [][]any, opts ...SheetOption) *Builder {
	if b.err != nil {
		return b
	}

	cfg := &sheetConfig{headerRow: true, autofit: true}
	for _, opt := range opts {
		opt(cfg)
	}

	// The first sheet reuses the default one excelize creates, so the
	// workbook never carries an empty "Sheet1".
	if b.sheets == 0 {
		if b.err = b.file.SetSheetName(b.file.GetSheetName(0), name); b.err != nil {
			return b
		}
	} else {
		if _, b.err = b.file.NewSheet(name); b.err != nil {
			return b
		}
	}
	b.sheets++

	for i, row := range data {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			b.err = err
			return b
		}
		if b.err = b.file.SetSheetRow(name, cell, &row); b.err != nil {
			return b
		}
	}

	if cfg.headerRow && len(data) > 0 {
		if b.err = b.styleHeader(name, len(data[0])); b.err != nil {
			return b
		}
	}
	if cfg.autofit {
		b.err = b.autofitColumns(name, data)
	}
	return b
}

// AddHyperlink turns a cell into an external link showing display text.
func (b *Builder) AddHyperlink(sheet, cell, url, display string) *Builder {
	if b.err != nil {
		return b
	}
	if b.err = b.file.SetCellHyperLink(sheet, cell, url, "External"); b.err != nil {
		return b
	}
	b.err = b.file.SetCellValue(sheet, cell, display)
	return b
}

// Err returns the first error encountered so far, without saving.
func (b *Builder) Err() error {
	return b.err
}

// Save writes the workbook to the builder's output path. Any error from an
// earlier build step takes precedence over save errors.
func (b *Builder) Save() error {
	defer b.file.Close()

	if b.err != nil {
		return b.err
	}
	if err := b.file.SaveAs(b.output); err != nil {
		return fmt.Errorf("spreadsheet: save %q: %w", b.output, err)
	}
	return nil
}

func (b *Builder) styleHeader(sheet string, columns int) error {
	styleID, err := b.file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return err
	}

	last, err := excelize.CoordinatesToCellName(max(columns, 1), 1)
	if err != nil {
		return err
	}
	return b.file.SetCellStyle(sheet, "A1", last, styleID)
}

// autofitColumns sizes each column to its longest cell plus breathing
// room, clamped to keep pathological cells from producing absurd widths.
func (b *Builder) autofitColumns(sheet string, data [][]any) error {
	const (
		padding  = 2.0
		maxWidth = 60.0
	)

	widths := make(map[int]float64)
	for _, row := range data {
		for c, cell := range row {
			w := float64(utf8.RuneCountInString(fmt.Sprintf("%v", cell)))
			if w > widths[c] {
				widths[c] = w
			}
		}
	}

	for c, w := range widths {
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		if err := b.file.SetColWidth(sheet, col, col, min(w+padding, maxWidth)); err != nil {
			return err
		}
	}
	return nil
}

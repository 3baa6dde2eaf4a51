package spreadsheet

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ChartConfig controls chart appearance. The zero value produces an
// untitled chart with a legend and default dimensions.
type ChartConfig struct {
	Title          string
	XAxisTitle     string
	YAxisTitle     string
	HideLegend     bool
	ShowDataLabels bool
	Width          uint // pixels, 0 for the excelize default
	Height         uint // pixels, 0 for the excelize default
}

// AddPieChart adds a pie chart anchored at anchorCell. dataRange must span
// exactly two columns, e.g. "A1:B4": the first row holds headers, the
// first column category labels, the second column values.
func (b *Builder) AddPieChart(sheet, dataRange, anchorCell string, cfg *ChartConfig) *Builder {
	return b.addChart(excelize.Pie, sheet, dataRange, anchorCell, cfg)
}

// AddBarChart adds a clustered column chart. The first column of the
// range holds category labels; every further column becomes one series
// named by its header row cell.
func (b *Builder) AddBarChart(sheet, dataRange, anchorCell string, cfg *ChartConfig) *Builder {
	return b.addChart(excelize.Col, sheet, dataRange, anchorCell, cfg)
}

// AddLineChart adds a line chart with the same range layout as
// AddBarChart.
func (b *Builder) AddLineChart(sheet, dataRange, anchorCell string, cfg *ChartConfig) *Builder {
	return b.addChart(excelize.Line, sheet, dataRange, anchorCell, cfg)
}

// AddScatterChart adds a scatter chart: first column X values, every
// further column one Y series.
func (b *Builder) AddScatterChart(sheet, dataRange, anchorCell string, cfg *ChartConfig) *Builder {
	return b.addChart(excelize.Scatter, sheet, dataRange, anchorCell, cfg)
}

func (b *Builder) addChart(kind excelize.ChartType, sheet, dataRange, anchorCell string, cfg *ChartConfig) *Builder {
	if b.err != nil {
		return b
	}
	if cfg == nil {
		cfg = &ChartConfig{}
	}

	series, err := rangeSeries(sheet, dataRange, kind)
	if err != nil {
		b.err = err
		return b
	}

	chart := &excelize.Chart{
		Type:   kind,
		Series: series,
		PlotArea: excelize.ChartPlotArea{
			ShowVal: cfg.ShowDataLabels,
		},
	}
	if cfg.Title != "" {
		chart.Title = []excelize.RichTextRun{{Text: cfg.Title}}
	}
	if cfg.HideLegend {
		chart.Legend = excelize.ChartLegend{Position: "none"}
	}
	if cfg.XAxisTitle != "" {
		chart.XAxis = excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: cfg.XAxisTitle}}}
	}
	if cfg.YAxisTitle != "" {
		chart.YAxis = excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: cfg.YAxisTitle}}}
	}
	if cfg.Width > 0 {
		chart.Dimension.Width = cfg.Width
	}
	if cfg.Height > 0 {
		chart.Dimension.Height = cfg.Height
	}

	b.err = b.file.AddChart(sheet, anchorCell, chart)
	return b
}

// rangeSeries converts an "A1:C5"-style range into chart series: row 1 is
// headers, column 1 categories, each remaining column one series. Pie
// charts are limited to a single value column.
func rangeSeries(sheet, dataRange string, kind excelize.ChartType) ([]excelize.ChartSeries, error) {
	corners := strings.Split(dataRange, ":")
	if len(corners) != 2 {
		return nil, &InvalidRangeError{Range: dataRange}
	}

	left, top, err := excelize.CellNameToCoordinates(corners[0])
	if err != nil {
		return nil, &InvalidRangeError{Range: dataRange}
	}
	right, bottom, err := excelize.CellNameToCoordinates(corners[1])
	if err != nil {
		return nil, &InvalidRangeError{Range: dataRange}
	}
	if right <= left || bottom <= top {
		return nil, &InvalidRangeError{Range: dataRange}
	}
	if kind == excelize.Pie && right != left+1 {
		return nil, fmt.Errorf("%w: pie chart range %q must span exactly two columns",
			ErrPieRange, dataRange)
	}

	categories, err := absRange(sheet, left, top+1, left, bottom)
	if err != nil {
		return nil, err
	}

	var series []excelize.ChartSeries
	for col := left + 1; col <= right; col++ {
		nameCell, err := excelize.CoordinatesToCellName(col, top, true)
		if err != nil {
			return nil, err
		}
		values, err := absRange(sheet, col, top+1, col, bottom)
		if err != nil {
			return nil, err
		}
		series = append(series, excelize.ChartSeries{
			Name:       fmt.Sprintf("'%s'!%s", sheet, nameCell),
			Categories: categories,
			Values:     values,
		})
	}
	return series, nil
}

func absRange(sheet string, left, top, right, bottom int) (string, error) {
	from, err := excelize.CoordinatesToCellName(left, top, true)
	if err != nil {
		return "", err
	}
	to, err := excelize.CoordinatesToCellName(right, bottom, true)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("'%s'!%s:%s", sheet, from, to), nil
}

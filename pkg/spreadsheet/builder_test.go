package spreadsheet_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/bearkit/bearkit/pkg/spreadsheet"
)

var salesRows = [][]any{
	{"Product", "Q1", "Q2"},
	{"Widget", 100, 150},
	{"Gadget", 200, 180},
}

func outputPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "report.xlsx")
}

func TestBuilder_AddSheet(t *testing.T) {
	t.Parallel()

	t.Run("data round trips", func(t *testing.T) {
		t.Parallel()

		path := outputPath(t)
		require.NoError(t, spreadsheet.NewBuilder(path).
			AddSheet("Sales", salesRows).
			Save())

		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer f.Close()

		assert.Equal(t, []string{"Sales"}, f.GetSheetList())

		rows, err := f.GetRows("Sales")
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, []string{"Product", "Q1", "Q2"}, rows[0])
		assert.Equal(t, []string{"Widget", "100", "150"}, rows[1])
	})

	t.Run("multiple sheets", func(t *testing.T) {
		t.Parallel()

		path := outputPath(t)
		require.NoError(t, spreadsheet.NewBuilder(path).
			AddSheet("First", salesRows).
			AddSheet("Second", [][]any{{"only", "header"}}).
			Save())

		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer f.Close()

		assert.Equal(t, []string{"First", "Second"}, f.GetSheetList())
	})

	t.Run("autofit widens columns", func(t *testing.T) {
		t.Parallel()

		path := outputPath(t)
		require.NoError(t, spreadsheet.NewBuilder(path).
			AddSheet("Data", [][]any{
				{"a very long header indeed", "b"},
				{"x", "y"},
			}).
			Save())

		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer f.Close()

		width, err := f.GetColWidth("Data", "A")
		require.NoError(t, err)
		assert.Greater(t, width, 20.0)
	})

	t.Run("empty sheet is fine", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, spreadsheet.NewBuilder(outputPath(t)).
			AddSheet("Empty", nil).
			Save())
	})
}

func TestBuilder_AddHyperlink(t *testing.T) {
	t.Parallel()

	path := outputPath(t)
	require.NoError(t, spreadsheet.NewBuilder(path).
		AddSheet("Links", [][]any{{"Name", "Docs"}}).
		AddHyperlink("Links", "B2", "https://example.com/docs", "docs").
		Save())

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	ok, target, err := f.GetCellHyperLink("Links", "B2")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/docs", target)

	display, err := f.GetCellValue("Links", "B2")
	require.NoError(t, err)
	assert.Equal(t, "docs", display)
}

func TestBuilder_Charts(t *testing.T) {
	t.Parallel()

	t.Run("pie chart", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, spreadsheet.NewBuilder(outputPath(t)).
			AddSheet("Sales", [][]any{
				{"Product", "Q1"},
				{"Widget", 100},
				{"Gadget", 200},
			}).
			AddPieChart("Sales", "A1:B3", "D2", &spreadsheet.ChartConfig{
				Title:          "Q1 by product",
				ShowDataLabels: true,
			}).
			Save())
	})

	t.Run("bar line and scatter share the range layout", func(t *testing.T) {
		t.Parallel()

		b := spreadsheet.NewBuilder(outputPath(t)).
			AddSheet("Sales", salesRows).
			AddBarChart("Sales", "A1:C3", "E2", &spreadsheet.ChartConfig{
				Title:      "Quarters",
				XAxisTitle: "Product",
				YAxisTitle: "Units",
			}).
			AddLineChart("Sales", "A1:C3", "E20", nil).
			AddScatterChart("Sales", "A1:C3", "E40", &spreadsheet.ChartConfig{
				HideLegend: true,
				Width:      640,
				Height:     320,
			})
		require.NoError(t, b.Save())
	})

	t.Run("pie chart rejects more than two columns", func(t *testing.T) {
		t.Parallel()

		err := spreadsheet.NewBuilder(outputPath(t)).
			AddSheet("Sales", salesRows).
			AddPieChart("Sales", "A1:C3", "E2", nil).
			Save()
		assert.ErrorIs(t, err, spreadsheet.ErrPieRange)
	})

	t.Run("malformed range", func(t *testing.T) {
		t.Parallel()

		b := spreadsheet.NewBuilder(outputPath(t)).
			AddSheet("Sales", salesRows).
			AddBarChart("Sales", "A1", "E2", nil)
		require.Error(t, b.Err())

		var ire *spreadsheet.InvalidRangeError
		assert.ErrorAs(t, b.Err(), &ire)
	})

	t.Run("degenerate single-row range", func(t *testing.T) {
		t.Parallel()

		err := spreadsheet.NewBuilder(outputPath(t)).
			AddSheet("Sales", salesRows).
			AddBarChart("Sales", "A1:C1", "E2", nil).
			Save()

		var ire *spreadsheet.InvalidRangeError
		assert.ErrorAs(t, err, &ire)
	})
}

func TestBuilder_ErrorShortCircuits(t *testing.T) {
	t.Parallel()

	// After a failed step, further steps are skipped and Save reports the
	// original error.
	b := spreadsheet.NewBuilder(outputPath(t)).
		AddSheet("Sales", salesRows).
		AddBarChart("Sales", "bogus", "E2", nil).
		AddSheet("Later", salesRows)

	err := b.Save()
	require.Error(t, err)

	var ire *spreadsheet.InvalidRangeError
	assert.ErrorAs(t, err, &ire)
}

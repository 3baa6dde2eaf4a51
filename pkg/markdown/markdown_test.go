package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bearkit/bearkit/pkg/markdown"
)

func TestEmoji(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "✅", markdown.Emoji(true))
	assert.Equal(t, "❌", markdown.Emoji(false))
}

func TestTable(t *testing.T) {
	t.Parallel()

	t.Run("aligned columns with separator after header", func(t *testing.T) {
		t.Parallel()

		out, err := markdown.Table([][]string{
			{"row1col1", "b"},
			{"x", "row2col2"},
		})
		require.NoError(t, err)

		want := "| row1col1 | b        |\n" +
			"|----------|----------|\n" +
			"| x        | row2col2 |"
		assert.Equal(t, want, out)
	})

	t.Run("single row renders header and separator only", func(t *testing.T) {
		t.Parallel()

		out, err := markdown.Table([][]string{{"a", "bb"}})
		require.NoError(t, err)
		assert.Equal(t, "| a | bb |\n|---|----|", out)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		_, err := markdown.Table(nil)
		assert.ErrorIs(t, err, markdown.ErrEmptyTable)

		_, err = markdown.Table([][]string{{}})
		assert.ErrorIs(t, err, markdown.ErrEmptyTable)
	})

	t.Run("ragged rows", func(t *testing.T) {
		t.Parallel()

		_, err := markdown.Table([][]string{
			{"a", "b"},
			{"only one"},
		})
		assert.ErrorIs(t, err, markdown.ErrRaggedRows)
	})
}

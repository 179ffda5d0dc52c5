package gridgraph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heatpath/gridgraph"
)

func TestParse_Digits(t *testing.T) {
	g, err := gridgraph.ParseString("241\r\n321\n\n\n")
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 2, g.Height)
	assert.Equal(t, [][]int{{2, 4, 1}, {3, 2, 1}}, g.Rows())
}

func TestParse_WideRows(t *testing.T) {
	const width = 100_000
	row := strings.Repeat("7", width)
	g, err := gridgraph.Parse(strings.NewReader(row + "\n" + row + "\n"))
	require.NoError(t, err)
	assert.Equal(t, width, g.Width)
	assert.Equal(t, 2, g.Height)
	assert.Equal(t, 7, g.Cost(width-1, 1))
}

func TestParse_LeadingBlankLines(t *testing.T) {
	g, err := gridgraph.ParseString("\n\n19\n91\n")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 9}, {9, 1}}, g.Rows())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
		msg   string
	}{
		{"Empty", "", gridgraph.ErrEmptyGrid, ""},
		{"OnlyBlank", "\n\n", gridgraph.ErrEmptyGrid, ""},
		{"Ragged", "123\n12\n", gridgraph.ErrNonRectangular, "row 1"},
		{"GapRow", "12\n\n12\n", gridgraph.ErrNonRectangular, "row 1"},
		{"Letter", "12\n1x\n", gridgraph.ErrInvalidCell, "line 2, column 2"},
		{"Space", "1 2\n", gridgraph.ErrInvalidCell, "line 1, column 2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.ParseString(tc.input)
			require.ErrorIs(t, err, tc.err)
			if tc.msg != "" {
				assert.Contains(t, err.Error(), tc.msg)
			}
		})
	}
}

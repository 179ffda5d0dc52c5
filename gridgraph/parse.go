package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"
)

// Parse reads a block of decimal digits, one grid row per line, and builds a
// CostGrid from it. Carriage returns are stripped and trailing blank lines
// and leading blank lines are ignored; a blank line between rows is reported
// as ErrNonRectangular.
// Any other character yields ErrInvalidCell with its 1-based line and column.
func Parse(r io.Reader) (*CostGrid, error) {
	var rows [][]int
	pendingBlank := 0

	sc := bufio.NewScanner(r)
	// Rows have no length limit; let the buffer grow past bufio's 64 KiB default.
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			pendingBlank++
			continue
		}
		// A blank line followed by more data is an empty row.
		if len(rows) == 0 {
			pendingBlank = 0
		}
		for ; pendingBlank > 0; pendingBlank-- {
			rows = append(rows, nil)
		}

		row := make([]int, 0, len(text))
		for col, ch := range text {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: %q at line %d, column %d", ErrInvalidCell, ch, line, col+1)
			}
			row = append(row, int(ch-'0'))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read input: %w", err)
	}

	return NewCostGrid(rows)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*CostGrid, error) {
	return Parse(strings.NewReader(s))
}

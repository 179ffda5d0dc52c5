package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/heatpath/gridgraph"
)

//----------------------------------------------------------------------------//
// NewCostGrid and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewCostGrid_Errors verifies that NewCostGrid rejects empty, ragged or negative inputs.
func TestNewCostGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
		{"Negative", [][]int{{1, 2}, {3, -4}}, gridgraph.ErrNegativeCost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewCostGrid(tc.grid)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewCostGrid(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	grid := [][]int{
		{0, 1, 0},
		{1, 0, 1},
	}
	g, err := gridgraph.NewCostGrid(grid)
	if err != nil {
		t.Fatalf("NewCostGrid error: %v", err)
	}

	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		if !g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		if g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
	}
}

// TestCost_RowMajor verifies x selects the column and y the row.
func TestCost_RowMajor(t *testing.T) {
	g, err := gridgraph.NewCostGrid([][]int{
		{1, 2, 3},
		{4, 5, 60},
	})
	if err != nil {
		t.Fatalf("NewCostGrid error: %v", err)
	}
	if g.Width != 3 || g.Height != 2 {
		t.Fatalf("dims = %dx%d; want 3x2", g.Width, g.Height)
	}
	if got := g.Cost(2, 0); got != 3 {
		t.Errorf("Cost(2,0) = %d; want 3", got)
	}
	if got := g.Cost(0, 1); got != 4 {
		t.Errorf("Cost(0,1) = %d; want 4", got)
	}
	if got := g.Cost(2, 1); got != 60 {
		t.Errorf("Cost(2,1) = %d; want 60", got)
	}
	if x, y := g.Target(); x != 2 || y != 1 {
		t.Errorf("Target() = (%d,%d); want (2,1)", x, y)
	}
	for idx := 0; idx < 6; idx++ {
		x, y := g.Coordinate(idx)
		if y*g.Width+x != idx {
			t.Errorf("Coordinate(%d) = (%d,%d) does not round-trip", idx, x, y)
		}
	}
}

// TestNewCostGrid_Immutable ensures later edits to the input do not leak in.
func TestNewCostGrid_Immutable(t *testing.T) {
	src := [][]int{{1, 2}, {3, 4}}
	g, err := gridgraph.NewCostGrid(src)
	if err != nil {
		t.Fatalf("NewCostGrid error: %v", err)
	}
	src[0][0] = 9
	if got := g.Cost(0, 0); got != 1 {
		t.Errorf("Cost(0,0) = %d after mutating input; want 1", got)
	}
	rows := g.Rows()
	rows[1][1] = 9
	if got := g.Cost(1, 1); got != 4 {
		t.Errorf("Cost(1,1) = %d after mutating Rows(); want 4", got)
	}
}

// TestString renders single digits inline and larger costs bracketed.
func TestString(t *testing.T) {
	g, _ := gridgraph.NewCostGrid([][]int{{1, 2}, {12, 0}})
	if got, want := g.String(), "12\n[12]0"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}

// TestFingerprint checks equal grids collide and shape changes do not.
func TestFingerprint(t *testing.T) {
	a, _ := gridgraph.NewCostGrid([][]int{{1, 2, 3, 4}})
	b, _ := gridgraph.NewCostGrid([][]int{{1, 2, 3, 4}})
	c, _ := gridgraph.NewCostGrid([][]int{{1, 2}, {3, 4}})
	d, _ := gridgraph.NewCostGrid([][]int{{1, 2, 3, 5}})

	if a.Fingerprint() != b.Fingerprint() {
		t.Error("equal grids have different fingerprints")
	}
	if a.Fingerprint() == c.Fingerprint() {
		t.Error("1x4 and 2x2 grids share a fingerprint")
	}
	if a.Fingerprint() == d.Fingerprint() {
		t.Error("grids differing in one cost share a fingerprint")
	}
}

package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/heatpath/dijkstra"
)

var allHeadings = []dijkstra.Heading{dijkstra.Up, dijkstra.Down, dijkstra.Left, dijkstra.Right}

// TestHeading_TurnsNeverReverse checks every turn is a quarter turn: the new
// delta is perpendicular to the old one, so it can be neither the same
// heading nor its opposite.
func TestHeading_TurnsNeverReverse(t *testing.T) {
	for _, h := range allHeadings {
		dx, dy := h.Delta()
		for _, turned := range []dijkstra.Heading{h.TurnLeft(), h.TurnRight()} {
			tx, ty := turned.Delta()
			assert.Zero(t, dx*tx+dy*ty, "%s -> %s is not a quarter turn", h, turned)
			assert.True(t, turned.Valid())
		}
		assert.NotEqual(t, h.TurnLeft(), h.TurnRight())
	}
}

func TestHeading_Rotations(t *testing.T) {
	cases := []struct {
		h, left, right dijkstra.Heading
	}{
		{dijkstra.Up, dijkstra.Left, dijkstra.Right},
		{dijkstra.Down, dijkstra.Right, dijkstra.Left},
		{dijkstra.Left, dijkstra.Down, dijkstra.Up},
		{dijkstra.Right, dijkstra.Up, dijkstra.Down},
	}
	for _, tc := range cases {
		t.Run(tc.h.String(), func(t *testing.T) {
			assert.Equal(t, tc.left, tc.h.TurnLeft())
			assert.Equal(t, tc.right, tc.h.TurnRight())
			assert.Equal(t, tc.h, tc.h.TurnLeft().TurnRight())
			assert.Equal(t, tc.h, tc.h.TurnLeft().TurnLeft().TurnLeft().TurnLeft())
		})
	}
}

func TestHeading_DeltaScreenOrientation(t *testing.T) {
	dx, dy := dijkstra.Up.Delta()
	assert.Equal(t, [2]int{0, -1}, [2]int{dx, dy})
	dx, dy = dijkstra.Right.Delta()
	assert.Equal(t, [2]int{1, 0}, [2]int{dx, dy})
}

func TestHeading_String(t *testing.T) {
	assert.Equal(t, "Left", dijkstra.Left.String())
	assert.False(t, dijkstra.Heading(4).Valid())
	assert.Equal(t, "Heading(?)", dijkstra.Heading(4).String())
}

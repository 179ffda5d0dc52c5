package dijkstra

// Heading is one of the four cardinal movement directions. Screen
// orientation is used: y grows downward, so Up decreases y.
//
// Only the four declared constants are meaningful. Heading offers left and
// right quarter turns; there is deliberately no way to ask for a reversal.
type Heading uint8

const (
	Up Heading = iota
	Down
	Left
	Right
)

var (
	leftOf  = [...]Heading{Up: Left, Down: Right, Left: Down, Right: Up}
	rightOf = [...]Heading{Up: Right, Down: Left, Left: Up, Right: Down}
	deltas  = [...][2]int{Up: {0, -1}, Down: {0, 1}, Left: {-1, 0}, Right: {1, 0}}
	names   = [...]string{Up: "Up", Down: "Down", Left: "Left", Right: "Right"}
)

// TurnLeft returns the heading after a 90° counter-clockwise turn.
func (h Heading) TurnLeft() Heading { return leftOf[h] }

// TurnRight returns the heading after a 90° clockwise turn.
func (h Heading) TurnRight() Heading { return rightOf[h] }

// Delta returns the unit step (dx, dy) taken when moving in h.
func (h Heading) Delta() (dx, dy int) { return deltas[h][0], deltas[h][1] }

// Valid reports whether h is one of the four declared headings.
func (h Heading) Valid() bool { return h <= Right }

func (h Heading) String() string {
	if !h.Valid() {
		return "Heading(?)"
	}

	return names[h]
}

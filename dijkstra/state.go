package dijkstra

import "fmt"

// State is a node of the augmented search graph: a cell, the heading used to
// enter it, and how many consecutive steps have been taken in that heading.
// Two states are the same node iff all four fields are equal; the struct is
// comparable and serves directly as the cost-record key.
type State struct {
	X, Y    int
	Heading Heading
	Run     int
}

func (s State) String() string {
	return fmt.Sprintf("(%d,%d %s×%d)", s.X, s.Y, s.Heading, s.Run)
}

// less orders states by position (row first), then heading, then run length.
// It is the tie-breaker for frontier entries of equal cost and makes the
// expansion order total, so repeated searches behave identically.
func (s State) less(o State) bool {
	if s.Y != o.Y {
		return s.Y < o.Y
	}
	if s.X != o.X {
		return s.X < o.X
	}
	if s.Heading != o.Heading {
		return s.Heading < o.Heading
	}

	return s.Run < o.Run
}

// stateItem is a frontier entry: a state and the accumulated cost at which it
// was pushed.
type stateItem struct {
	state State
	cost  int64
}

// statePQ is a min-heap of stateItem ordered by cost, then State.less.
// Like the plain Dijkstra runner it uses lazy decrease-key: an improved
// state is pushed again and the outdated entry is discarded when popped.
type statePQ []stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller cost first, then state order.
func (pq statePQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].state.less(pq[j].state)
}

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type stateItem.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(stateItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

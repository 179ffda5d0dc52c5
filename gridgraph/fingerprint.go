package gridgraph

import (
	"encoding/binary"

	farm "github.com/dgryski/go-farm"
)

// Fingerprint returns a 64-bit farm hash of the grid's dimensions and costs.
// Grids with equal dimensions and costs always share a fingerprint, so it can
// key memoized search results.
// Complexity: O(W×H).
func (g *CostGrid) Fingerprint() uint64 {
	buf := make([]byte, 0, 16+8*len(g.costs))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(g.Width))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(g.Height))
	for _, c := range g.costs {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(c))
	}

	return farm.Hash64(buf)
}

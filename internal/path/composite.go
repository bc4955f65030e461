package path

import (
	"fmt"
	"sort"
)

// CompositePath concatenates sub-paths, each offset by the cumulative
// length of the paths before it (spec.md §4.4). Reversal is a boolean
// field, exactly as for HeadingPath and PointTurnPath: it never reorders
// or individually reverses the sub-paths, it only mirrors the external
// query and negates first derivatives (spec.md §9 "Reversal via
// composition").
type CompositePath struct {
	subs     []Path
	offsets  []float64 // cumulative arc length at the start of each sub-path
	total    float64
	reversed bool
}

var _ Path = (*CompositePath)(nil)

// NewCompositePath concatenates subs in order. Returns an error if subs
// is empty.
func NewCompositePath(subs []Path) (*CompositePath, error) {
	if len(subs) == 0 {
		return nil, fmt.Errorf("path: composite path requires at least one sub-path")
	}
	offsets := make([]float64, len(subs))
	total := 0.0
	for i, s := range subs {
		offsets[i] = total
		total += s.Length()
	}
	return &CompositePath{subs: subs, offsets: offsets, total: total}, nil
}

func (c *CompositePath) Length() float64 { return c.total }

func (c *CompositePath) PointAt(sExternal float64) PathPoint {
	s := sExternal
	if c.reversed {
		s = c.total - sExternal
	}

	idx := c.segmentIndex(s)
	local := s - c.offsets[idx]
	pp := c.subs[idx].PointAt(local)
	pp.S = s

	if c.reversed {
		return reversePathPoint(pp, sExternal)
	}
	return pp
}

// segmentIndex returns the index of the sub-path containing arc length s.
func (c *CompositePath) segmentIndex(s float64) int {
	idx := sort.Search(len(c.offsets), func(i int) bool { return c.offsets[i] > s }) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(c.subs) {
		idx = len(c.subs) - 1
	}
	return idx
}

func (c *CompositePath) Stepper() PathStepper { return &recomputeStepper{path: c} }

func (c *CompositePath) Reversed() Path {
	return &CompositePath{subs: c.subs, offsets: c.offsets, total: c.total, reversed: !c.reversed}
}

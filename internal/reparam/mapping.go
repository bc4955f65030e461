// Package reparam builds and queries the arc-length reparameterization
// table (ReparamMapping in spec terms) that lets the rest of the module
// address a curve.VectorFunction by arc length s instead of its natural
// parameter u.
//
// The precompute-once, cache-until-invalidated shape here mirrors
// internal/graph/shortestpath.go's Floyd-Warshall table in the teacher:
// there it is an all-pairs shortest-distance table over graph nodes; here
// it is a cumulative arc-length table over samples of u.
package reparam

import (
	"fmt"
	"sort"

	"github.com/cxd309/tms-trajectory/internal/curve"
)

// DefaultSamples is the default number of sub-intervals used to build a
// mapping, chosen so the per-node chord-vs-arc error is below 1e-4 of
// length for paths of order tens of units (spec.md §4.2, §6).
const DefaultSamples = 1000

// node is one (s, u) pair in the mapping table.
type node struct {
	s, u float64
}

// Mapping is a finite, strictly-increasing table of (s, u) pairs with
// s[0]=0, u[0]=0, u[last]=1, built by composite Simpson integration of
// |p'(u)| over a uniform grid.
type Mapping struct {
	nodes  []node
	length float64
}

// Length returns L = s(1), the total arc length of the underlying curve.
func (m *Mapping) Length() float64 { return m.length }

// BuildMapping integrates |p'(u)| over samples uniform sub-intervals of
// [0, 1] using composite Simpson's rule (a midpoint evaluation per
// sub-interval), accumulating arc length at each node. samples must be a
// positive integer; DefaultSamples is a reasonable default for paths of
// order tens of units.
func BuildMapping(f curve.VectorFunction, samples int) (*Mapping, error) {
	if samples < 1 {
		return nil, fmt.Errorf("reparam: samples must be positive, got %d", samples)
	}

	h := 1.0 / float64(samples)
	nodes := make([]node, samples+1)
	nodes[0] = node{s: 0, u: 0}

	s := 0.0
	g0 := f.VecDeriv(0).Norm()
	for i := 1; i <= samples; i++ {
		u0 := float64(i-1) * h
		u1 := float64(i) * h
		if i == samples {
			u1 = 1.0
		}
		mid := (u0 + u1) / 2
		gm := f.VecDeriv(mid).Norm()
		g1 := f.VecDeriv(u1).Norm()

		segLen := (u1 - u0) / 6 * (g0 + 4*gm + g1)
		s += segLen
		nodes[i] = node{s: s, u: u1}
		g0 = g1
	}

	return &Mapping{nodes: nodes, length: s}, nil
}

// TOfS converts an arc length s in [0, L] to the curve's natural
// parameter u, via binary search over the node table followed by linear
// interpolation between the two bracketing nodes. Values outside [0, L]
// are clamped.
func (m *Mapping) TOfS(s float64) float64 {
	if s <= 0 {
		return 0
	}
	if s >= m.length {
		return 1
	}
	i := sort.Search(len(m.nodes), func(i int) bool { return m.nodes[i].s >= s })
	return m.interpAt(i, s)
}

func (m *Mapping) interpAt(i int, s float64) float64 {
	if i <= 0 {
		return m.nodes[0].u
	}
	if i >= len(m.nodes) {
		return m.nodes[len(m.nodes)-1].u
	}
	lo, hi := m.nodes[i-1], m.nodes[i]
	if hi.s == lo.s {
		return lo.u
	}
	frac := (s - lo.s) / (hi.s - lo.s)
	return lo.u + frac*(hi.u-lo.u)
}

// Stepper is a monotone-advance accessor over a Mapping: successive calls
// to StepTo must arrive with non-decreasing s. It amortizes repeated
// sequential queries to O(1) by keeping a cursor into the node table
// instead of re-running a binary search each time.
type Stepper struct {
	m      *Mapping
	cursor int
	lastS  float64
}

// Stepper returns a new monotone stepper over m, positioned at s=0.
func (m *Mapping) Stepper() *Stepper {
	return &Stepper{m: m, cursor: 0, lastS: 0}
}

// StepTo advances the stepper to arc length s and returns the
// corresponding u. s must be >= the s passed to the previous call; a
// release build tolerates a backward query by falling back to a fresh
// binary search rather than panicking (spec.md §5, §9).
func (st *Stepper) StepTo(s float64) float64 {
	if s < st.lastS {
		// Programmer error per the monotone-advance contract; recover via
		// full binary search instead of returning a wrong answer.
		st.cursor = 0
	}
	st.lastS = s

	for st.cursor < len(st.m.nodes) && st.m.nodes[st.cursor].s < s {
		st.cursor++
	}
	return st.m.interpAt(st.cursor, s)
}

package profile

import "sort"

// State is the (s, v, a) triple returned by querying a MotionProfile.
type State struct {
	S, V, A float64
}

// AtTime returns the (s, v, a) state at time t, clamped to [0, Duration()].
func (p *MotionProfile) AtTime(t float64) State {
	k := p.segmentIndex(t)
	return p.stateInSegment(k, t)
}

// segmentIndex returns the index of the segment containing t.
func (p *MotionProfile) segmentIndex(t float64) int {
	n := len(p.segments)
	idx := sort.Search(n, func(i int) bool { return p.cumTime[i+1] > t })
	if idx >= n {
		idx = n - 1
	}
	return idx
}

func (p *MotionProfile) stateInSegment(k int, t float64) State {
	seg := p.segments[k]
	tau := t - p.cumTime[k]
	if tau < 0 {
		tau = 0
	}
	if tau > seg.Dt {
		tau = seg.Dt
	}
	return State{
		S: seg.S + seg.V*tau + 0.5*seg.A*tau*tau,
		V: seg.V + seg.A*tau,
		A: seg.A,
	}
}

// Stepper returns a monotone-advance accessor over time.
func (p *MotionProfile) Stepper() *Stepper {
	return &Stepper{p: p}
}

// Stepper is the profile's time-indexed stepper counterpart to
// internal/reparam.Stepper: an O(1)-amortized cursor for monotone
// forward queries, falling back to a fresh binary search if the caller
// ever steps backward.
type Stepper struct {
	p      *MotionProfile
	cursor int
}

// StepTo returns the state at t. t must be non-decreasing across calls;
// a decrease resets the cursor and re-searches (spec.md §5's
// monotone-advance contract: implementations may fall back to re-search).
func (s *Stepper) StepTo(t float64) State {
	if s.cursor < len(s.p.segments) && t < s.p.cumTime[s.cursor] {
		s.cursor = 0
	}
	for s.cursor < len(s.p.segments)-1 && t >= s.p.cumTime[s.cursor+1] {
		s.cursor++
	}
	return s.p.stateInSegment(s.cursor, t)
}

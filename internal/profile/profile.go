// Package profile implements the dynamic motion-profile generator: given a
// per-point velocity ceiling and a velocity-dependent acceleration range
// (internal/constraint), it sweeps forward and backward over a
// discretized distance to produce a time-optimal v(s) profile, then
// answers s(t)/v(t)/a(t) queries against it.
//
// The two-pass sweep here (a feasibility pass, then an apply-and-trim
// pass) is grounded on internal/engine/engine.go's step(): pass 1 computes
// every service's minimal Movement Authority, pass 2 proposes a movement
// and trims it against that envelope. This generator plays the same game
// against one path instead of many trains, and needs a second sweep in
// the opposite direction to guarantee the end target is reachable.
package profile

import (
	"fmt"
	"math"

	"github.com/cxd309/tms-trajectory/internal/vecmath"
)

// MaxVel is the hard ceiling every pointwise velocity bound is clipped to,
// regardless of what a Constrainer reports (spec.md §4.7).
const MaxVel = 1e4

// epsilon is the numerical floor used wherever a zero-tolerance guard is
// needed (segment dt degeneracy, binary-search tolerance).
const epsilon = 1e-6

// Constrainer answers the two queries the generator needs at an arbitrary
// arc-length position: a hard velocity ceiling, and the admissible
// acceleration interval at a given current velocity.
type Constrainer interface {
	MaxVelocity(s float64) float64
	AccelRange(s, v float64) vecmath.Interval
}

// Segment is one discretized piece of a generated MotionProfile.
type Segment struct {
	S, V, A, Dt float64
}

// MotionProfile is the sequence of segments (spec.md §4.7's Output step),
// queryable by time.
type MotionProfile struct {
	segments []Segment
	cumTime  []float64 // cumulative time at the start of each segment, length len(segments)+1
	// endS/endV close the segment list: the final point's arc length and velocity.
	endS, endV float64
	duration   float64
}

// Distance returns the total arc length this profile covers.
func (p *MotionProfile) Distance() float64 { return p.endS }

// Duration returns the total time this profile takes to traverse.
func (p *MotionProfile) Duration() float64 { return p.duration }

// GenerateDynamicProfile builds a time-optimal MotionProfile over
// [0, distance] against constrainer, starting and ending at the given
// target velocities.
func GenerateDynamicProfile(
	constrainer Constrainer,
	distance, targetStartVel, targetEndVel, segmentSize, maxVelSearchTolerance float64,
) (*MotionProfile, error) {
	if distance <= 0 {
		return nil, fmt.Errorf("profile: distance must be positive, got %v", distance)
	}
	if targetStartVel < 0 || targetEndVel < 0 {
		return nil, fmt.Errorf("profile: target velocities must be >= 0")
	}
	if segmentSize <= 0 || segmentSize > distance {
		return nil, fmt.Errorf("profile: segmentSize must be in (0, distance], got %v", segmentSize)
	}
	if maxVelSearchTolerance <= 0 {
		return nil, fmt.Errorf("profile: maxVelSearchTolerance must be positive, got %v", maxVelSearchTolerance)
	}
	tol := math.Max(maxVelSearchTolerance, epsilon)

	n := int(math.Ceil(distance / segmentSize))
	s := make([]float64, n+1)
	vmax := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		s[i] = float64(i) * distance / float64(n)
		v := constrainer.MaxVelocity(s[i])
		if v < 0 {
			return nil, fmt.Errorf("profile: maxVelocity(%v) returned negative value %v", s[i], v)
		}
		vmax[i] = math.Min(v, MaxVel)
	}
	vmax[0] = math.Min(vmax[0], targetStartVel)
	vmax[n] = math.Min(vmax[n], targetEndVel)

	if err := forwardPass(constrainer, s, vmax, tol); err != nil {
		return nil, err
	}
	if err := backwardPass(constrainer, s, vmax, tol); err != nil {
		return nil, err
	}

	segments := make([]Segment, n)
	cumTime := make([]float64, n+1)
	duration := 0.0
	for i := 0; i < n; i++ {
		ds := s[i+1] - s[i]
		v0, v1 := vmax[i], vmax[i+1]
		a := (v1*v1 - v0*v0) / (2 * ds)

		denom := v0 + v1
		var dt float64
		if denom < epsilon {
			dt = ds / epsilon
		} else {
			dt = 2 * ds / denom
		}

		segments[i] = Segment{S: s[i], V: v0, A: a, Dt: dt}
		duration += dt
		cumTime[i+1] = duration
	}

	return &MotionProfile{segments: segments, cumTime: cumTime, endS: s[n], endV: vmax[n], duration: duration}, nil
}

// Package constraint implements the velocity and acceleration constraints
// that translate drive-model physics (internal/drive) into the
// per-point (vmax, accelRange) predicates internal/profile consumes.
//
// The tagged-variant framing here (two interfaces plus a set aggregator
// rather than a single polymorphic Constraint type) is grounded on
// internal/kinematics/MotionModel.go's small-interface style in the
// teacher: the teacher defines one interface per physics contract
// (MotionModel) and lets callers compose implementations, rather than
// building a single fat interface with optional methods.
package constraint

import (
	"math"

	"github.com/cxd309/tms-trajectory/internal/path"
	"github.com/cxd309/tms-trajectory/internal/vecmath"
)

// Interval is the acceleration-range value type shared with vecmath.
type Interval = vecmath.Interval

// RealInterval is the unconstrained (-Inf, +Inf) interval.
func RealInterval() Interval { return vecmath.RealInterval() }

// VelocityConstraint bounds |ds/dt| at a point.
type VelocityConstraint interface {
	MaxVelocity(pp path.PathPoint) float64
}

// AccelerationConstraint bounds ds^2/dt^2 at a point, given the current
// velocity v = ds/dt.
type AccelerationConstraint interface {
	AccelRange(pp path.PathPoint, v float64) Interval
}

// PointConstraint is the result of evaluating a ConstraintSet at one
// point: a velocity ceiling plus a velocity-dependent acceleration range.
type PointConstraint struct {
	MaxVel     float64
	AccelRange func(v float64) Interval
}

// ConstraintSet composes velocity constraints by componentwise minimum and
// acceleration constraints by componentwise interval intersection.
type ConstraintSet struct {
	velocity     []VelocityConstraint
	acceleration []AccelerationConstraint
}

// NewConstraintSet builds a set from the given constraints.
func NewConstraintSet(velocity []VelocityConstraint, acceleration []AccelerationConstraint) *ConstraintSet {
	return &ConstraintSet{velocity: velocity, acceleration: acceleration}
}

// Evaluate produces the PointConstraint for pp: a ConstraintSet satisfies
// the profile package's MotionProfileConstrainer contract directly.
func (cs *ConstraintSet) Evaluate(pp path.PathPoint) PointConstraint {
	return PointConstraint{
		MaxVel:     cs.MaxVelocity(pp),
		AccelRange: func(v float64) Interval { return cs.AccelRange(pp, v) },
	}
}

// MaxVelocity returns the minimum of every velocity constraint's bound at
// pp. An empty set imposes no bound (+Inf).
func (cs *ConstraintSet) MaxVelocity(pp path.PathPoint) float64 {
	v := math.Inf(1)
	for _, c := range cs.velocity {
		if m := c.MaxVelocity(pp); m < v {
			v = m
		}
	}
	return v
}

// AccelRange intersects every acceleration constraint's interval at pp
// given velocity v. An empty set imposes no bound (the whole real line).
func (cs *ConstraintSet) AccelRange(pp path.PathPoint, v float64) Interval {
	r := RealInterval()
	for _, c := range cs.acceleration {
		r = r.Intersect(c.AccelRange(pp, v))
	}
	return r
}

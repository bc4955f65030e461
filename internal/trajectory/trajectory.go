// Package trajectory composes a Path and a MotionProfile into a
// time-indexed pose/velocity/acceleration stream, and provides
// GenerateTrajectory, the single entry point that builds the profile from
// a path and a constraint set and pairs it with that same path.
//
// This mirrors internal/engine/engine.go's NewTMS/RunJSON shape in the
// teacher: one top-level constructor that wires the pieces built by the
// lower packages (there: graph + services; here: path + constraint set)
// into the object callers actually query.
package trajectory

import (
	"fmt"
	"math"

	"github.com/cxd309/tms-trajectory/internal/constraint"
	"github.com/cxd309/tms-trajectory/internal/path"
	"github.com/cxd309/tms-trajectory/internal/profile"
	"github.com/cxd309/tms-trajectory/internal/vecmath"
)

// DefaultSegmentSize and DefaultMaxVelSearchTolerance are the numerical
// defaults spec.md §6 assigns to GenerateTrajectory's profile-generation
// parameters.
const (
	DefaultSegmentSize           = 0.01
	DefaultMaxVelSearchTolerance = 0.01
)

// lengthMatchTolerance bounds how far a Path's length and a MotionProfile's
// distance may diverge before NewTrajectory refuses to pair them.
const lengthMatchTolerance = 1e-6

// pathConstrainer adapts a Path plus a ConstraintSet into the
// profile.Constrainer interface the profile generator consumes, evaluating
// the constraint set at the path point for each requested arc length.
type pathConstrainer struct {
	path path.Path
	cs   *constraint.ConstraintSet
}

func (c pathConstrainer) MaxVelocity(s float64) float64 {
	return c.cs.MaxVelocity(c.path.PointAt(s))
}

func (c pathConstrainer) AccelRange(s, v float64) vecmath.Interval {
	return c.cs.AccelRange(c.path.PointAt(s), v)
}

// Trajectory pairs a Path with a MotionProfile of matching length.
type Trajectory struct {
	path    path.Path
	profile *profile.MotionProfile
}

// NewTrajectory pairs p and mp, failing if their lengths disagree by more
// than lengthMatchTolerance (spec.md §4.8).
func NewTrajectory(p path.Path, mp *profile.MotionProfile) (*Trajectory, error) {
	if math.Abs(p.Length()-mp.Distance()) > lengthMatchTolerance {
		return nil, fmt.Errorf("trajectory: path length %v and profile distance %v disagree", p.Length(), mp.Distance())
	}
	return &Trajectory{path: p, profile: mp}, nil
}

// GenerateTrajectory builds a TrajectoryConstraint adapter over (p, cs) and
// delegates to profile.GenerateDynamicProfile, then pairs the result with
// p (spec.md §6).
func GenerateTrajectory(p path.Path, cs *constraint.ConstraintSet, targetStartVel, targetEndVel, segmentSize float64) (*Trajectory, error) {
	adapter := pathConstrainer{path: p, cs: cs}
	mp, err := profile.GenerateDynamicProfile(adapter, p.Length(), targetStartVel, targetEndVel, segmentSize, DefaultMaxVelSearchTolerance)
	if err != nil {
		return nil, fmt.Errorf("trajectory: generating profile: %w", err)
	}
	return NewTrajectory(p, mp)
}

// Duration returns the trajectory's total traversal time.
func (t *Trajectory) Duration() float64 { return t.profile.Duration() }

// Length returns the trajectory's path length.
func (t *Trajectory) Length() float64 { return t.path.Length() }

// AtTime returns the pose, pose velocity, and pose acceleration at time t
// (spec.md §4.8): poseDeriv*v for velocity, poseSecondDeriv*v^2 +
// poseDeriv*a for acceleration.
func (t *Trajectory) AtTime(tm float64) vecmath.PoseMotionState {
	st := t.profile.AtTime(tm)
	pp := t.path.PointAt(st.S)
	return stateAt(pp, st)
}

func stateAt(pp path.PathPoint, st profile.State) vecmath.PoseMotionState {
	deriv := pp.PoseDeriv()
	secondDeriv := pp.PoseSecondDeriv()
	return vecmath.PoseMotionState{
		Pose:            pp.Pose(),
		PoseDeriv:       deriv.Mul(st.V),
		PoseSecondDeriv: secondDeriv.Mul(st.V * st.V).Add(deriv.Mul(st.A)),
	}
}

// Stepper pairs a path stepper with a profile stepper and advances both
// monotonically as t increases.
type Stepper struct {
	pathStepper path.PathStepper
	profStepper *profile.Stepper
}

// Stepper returns a fresh Stepper over this trajectory.
func (t *Trajectory) Stepper() *Stepper {
	return &Stepper{pathStepper: t.path.Stepper(), profStepper: t.profile.Stepper()}
}

// StepTo advances both underlying steppers to time t and returns the
// resulting pose state.
func (s *Stepper) StepTo(t float64) vecmath.PoseMotionState {
	st := s.profStepper.StepTo(t)
	pp := s.pathStepper.StepTo(st.S)
	return stateAt(pp, st)
}

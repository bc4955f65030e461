package trajectory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cxd309/tms-trajectory/internal/constraint"
	"github.com/cxd309/tms-trajectory/internal/curve"
	"github.com/cxd309/tms-trajectory/internal/drive"
	"github.com/cxd309/tms-trajectory/internal/path"
	"github.com/cxd309/tms-trajectory/internal/profile"
	"github.com/cxd309/tms-trajectory/internal/reparam"
	"github.com/cxd309/tms-trajectory/internal/vecmath"
)

func unitLinePath(t *testing.T, length float64) path.Path {
	t.Helper()
	q := curve.NewQuinticSplineControlPoints(
		vecmath.Vector2d{X: 0, Y: 0},
		vecmath.Vector2d{X: length / 5, Y: 0},
		vecmath.Vector2d{X: 2 * length / 5, Y: 0},
		vecmath.Vector2d{X: 3 * length / 5, Y: 0},
		vecmath.Vector2d{X: 4 * length / 5, Y: 0},
		vecmath.Vector2d{X: length, Y: 0},
	)
	m, err := reparam.BuildMapping(q, reparam.DefaultSamples)
	require.NoError(t, err)
	c := path.NewReparamCurve(q, m)
	return path.NewHeadingPath(c, path.TangentHeadingProvider{})
}

func TestGenerateTrajectoryDifferentialDriveStraightLine(t *testing.T) {
	t.Parallel()

	p := unitLinePath(t, 5)
	model, err := drive.NewDifferentialDriveModel(0.3, 0.05, 1, 1, 0.1)
	require.NoError(t, err)

	speed, err := constraint.NewMaxMotorSpeedUniform(model, 10)
	require.NoError(t, err)
	volts, err := constraint.NewMaxMotorVoltageUniform(model, 12)
	require.NoError(t, err)
	cs := constraint.NewConstraintSet(
		[]constraint.VelocityConstraint{speed},
		[]constraint.AccelerationConstraint{volts},
	)

	traj, err := GenerateTrajectory(p, cs, 0, 0, DefaultSegmentSize)
	require.NoError(t, err)

	assert.InDelta(t, 5, traj.Length(), 1e-9)
	assert.Greater(t, traj.Duration(), 0.0)

	start := traj.AtTime(0)
	assert.InDelta(t, 0, start.Pose.Vec.X, 1e-3)
	assert.InDelta(t, 0, start.PoseDeriv.Vec.Norm(), 1e-2)

	end := traj.AtTime(traj.Duration())
	assert.InDelta(t, 5, end.Pose.Vec.X, 1e-2)
}

func TestGenerateTrajectoryMecanumPointTurn(t *testing.T) {
	t.Parallel()

	turn := path.NewPointTurnPath(vecmath.Vector2d{X: 1, Y: 1}, 0, math.Pi)
	model, err := drive.NewMecanumDriveModel(0.3, 0.3, 0.05, 1, 1, 0.1)
	require.NoError(t, err)

	speed, err := constraint.NewMaxMotorSpeedUniform(model, 10)
	require.NoError(t, err)
	cs := constraint.NewConstraintSet([]constraint.VelocityConstraint{speed}, nil)

	traj, err := GenerateTrajectory(turn, cs, 0, 0, 0.01)
	require.NoError(t, err)

	assert.InDelta(t, math.Pi, traj.Length(), 1e-9)

	for _, frac := range []float64{0, 0.25, 0.5, 0.75, 1} {
		st := traj.AtTime(frac * traj.Duration())
		assert.InDelta(t, 0, st.PoseDeriv.Vec.Norm(), 1e-9, "position derivative must be zero throughout a point turn")
		assert.InDelta(t, 1, st.Pose.Vec.X, 1e-9)
		assert.InDelta(t, 1, st.Pose.Vec.Y, 1e-9)
	}
}

func TestTrajectoryStepperMatchesAtTime(t *testing.T) {
	t.Parallel()

	p := unitLinePath(t, 3)
	model, err := drive.NewDifferentialDriveModel(0.3, 0.05, 1, 1, 0.1)
	require.NoError(t, err)
	speed, err := constraint.NewMaxMotorSpeedUniform(model, 5)
	require.NoError(t, err)
	cs := constraint.NewConstraintSet([]constraint.VelocityConstraint{speed}, nil)

	traj, err := GenerateTrajectory(p, cs, 0, 0, DefaultSegmentSize)
	require.NoError(t, err)

	st := traj.Stepper()
	for _, frac := range []float64{0, 0.2, 0.4, 0.6, 0.8, 1} {
		tm := frac * traj.Duration()
		want := traj.AtTime(tm)
		got := st.StepTo(tm)
		assert.InDelta(t, want.Pose.Vec.X, got.Pose.Vec.X, 1e-6)
		assert.InDelta(t, want.Pose.Vec.Y, got.Pose.Vec.Y, 1e-6)
	}
}

func TestNewTrajectoryRejectsLengthMismatch(t *testing.T) {
	t.Parallel()

	p := unitLinePath(t, 5)
	model, err := drive.NewDifferentialDriveModel(0.3, 0.05, 1, 1, 0.1)
	require.NoError(t, err)
	speed, err := constraint.NewMaxMotorSpeedUniform(model, 5)
	require.NoError(t, err)
	cs := constraint.NewConstraintSet([]constraint.VelocityConstraint{speed}, nil)

	adapter := pathConstrainer{path: p, cs: cs}
	mp, err := profile.GenerateDynamicProfile(adapter, 3, 0, 0, DefaultSegmentSize, DefaultMaxVelSearchTolerance)
	require.NoError(t, err)

	_, err = NewTrajectory(p, mp)
	assert.Error(t, err)
}

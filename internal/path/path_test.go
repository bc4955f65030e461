package path

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cxd309/tms-trajectory/internal/curve"
	"github.com/cxd309/tms-trajectory/internal/reparam"
	"github.com/cxd309/tms-trajectory/internal/vecmath"
)

func buildTestCurve(t *testing.T) *ReparamCurve {
	t.Helper()
	q := curve.NewQuinticSplineControlPoints(
		vecmath.Vector2d{X: 0, Y: 0},
		vecmath.Vector2d{X: 1, Y: 0},
		vecmath.Vector2d{X: 2, Y: 0},
		vecmath.Vector2d{X: 2, Y: 1},
		vecmath.Vector2d{X: 2, Y: 2},
		vecmath.Vector2d{X: 3, Y: 2},
	)
	m, err := reparam.BuildMapping(q, reparam.DefaultSamples)
	require.NoError(t, err)
	return NewReparamCurve(q, m)
}

func TestReparamCurveMatchesUnderlyingFunction(t *testing.T) {
	t.Parallel()

	q := curve.NewQuinticSplineControlPoints(
		vecmath.Vector2d{X: 0, Y: 0},
		vecmath.Vector2d{X: 1, Y: 0},
		vecmath.Vector2d{X: 2, Y: 0},
		vecmath.Vector2d{X: 2, Y: 1},
		vecmath.Vector2d{X: 2, Y: 2},
		vecmath.Vector2d{X: 3, Y: 2},
	)
	m, err := reparam.BuildMapping(q, reparam.DefaultSamples)
	require.NoError(t, err)
	c := NewReparamCurve(q, m)

	for _, frac := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		s := frac * c.Length()
		cp := c.PointAt(s)
		u := m.TOfS(s)

		pos := q.Vec(u)
		assert.InDelta(t, pos.X, cp.Position.X, 1e-3)
		assert.InDelta(t, pos.Y, cp.Position.Y, 1e-3)

		wantTangent := q.VecDeriv(u).Normalized()
		assert.InDelta(t, wantTangent.X, cp.PositionDeriv.X, 2e-3)
		assert.InDelta(t, wantTangent.Y, cp.PositionDeriv.Y, 2e-3)

		assert.InDelta(t, q.Curvature(u), cp.TanAngleDeriv, 2e-3)
	}
}

func TestHeadingPathReversedTwiceIsIdentity(t *testing.T) {
	t.Parallel()

	c := buildTestCurve(t)
	p := NewHeadingPath(c, TangentHeadingProvider{})
	pp := p.Reversed().Reversed()

	for _, frac := range []float64{0, 0.2, 0.5, 0.8, 1} {
		s := frac * p.Length()
		a := p.PointAt(s)
		b := pp.PointAt(s)
		assert.InDelta(t, a.Position.X, b.Position.X, 1e-9)
		assert.InDelta(t, a.Position.Y, b.Position.Y, 1e-9)
		assert.InDelta(t, a.PositionDeriv.X, b.PositionDeriv.X, 1e-9)
		assert.InDelta(t, a.PositionDeriv.Y, b.PositionDeriv.Y, 1e-9)
		assert.InDelta(t, a.Heading, b.Heading, 1e-9)
		assert.InDelta(t, a.HeadingDeriv, b.HeadingDeriv, 1e-9)
	}
}

func TestHeadingPathReversalNegatesFirstDerivatives(t *testing.T) {
	t.Parallel()

	c := buildTestCurve(t)
	p := NewHeadingPath(c, TangentHeadingProvider{})
	r := p.Reversed()
	L := p.Length()

	for _, frac := range []float64{0.1, 0.4, 0.6, 0.9} {
		s := frac * L
		fwd := p.PointAt(L - s)
		rev := r.PointAt(s)

		assert.InDelta(t, -fwd.PositionDeriv.X, rev.PositionDeriv.X, 1e-9)
		assert.InDelta(t, -fwd.PositionDeriv.Y, rev.PositionDeriv.Y, 1e-9)
		assert.InDelta(t, -fwd.TanAngleDeriv, rev.TanAngleDeriv, 1e-9)
		assert.InDelta(t, -fwd.HeadingDeriv, rev.HeadingDeriv, 1e-9)
	}
}

func TestPointTurnPathZeroTranslation(t *testing.T) {
	t.Parallel()

	pos := vecmath.Vector2d{X: 5, Y: -2}
	p := NewPointTurnPath(pos, 0, math.Pi)

	assert.InDelta(t, math.Pi, p.Length(), 1e-12)

	mid := p.PointAt(p.Length() / 2)
	assert.Equal(t, pos, mid.Position)
	assert.Equal(t, vecmath.Vector2d{}, mid.PositionDeriv)
	assert.InDelta(t, math.Pi/2, mid.Heading, 1e-9)
	assert.InDelta(t, mid.Heading, mid.TanAngle, 1e-12)
}

func TestPointTurnPathPoseNormalizesHeadingBeyondPi(t *testing.T) {
	t.Parallel()

	p := NewPointTurnPath(vecmath.Vector2d{}, 0, 3*math.Pi/2)

	end := p.PointAt(p.Length())
	assert.InDelta(t, 3*math.Pi/2, end.Heading, 1e-9, "raw field stays unwrapped")
	assert.InDelta(t, -math.Pi/2, end.Pose().Heading, 1e-9, "Pose() wraps into (-pi, pi]")
}

func TestCompositePathLengthAndContinuity(t *testing.T) {
	t.Parallel()

	c := buildTestCurve(t)
	straight := NewHeadingPath(c, TangentHeadingProvider{})
	turn := NewPointTurnPath(c.PointAt(c.Length()).Position, 0, math.Pi/2)

	comp, err := NewCompositePath([]Path{straight, turn})
	require.NoError(t, err)
	assert.InDelta(t, straight.Length()+turn.Length(), comp.Length(), 1e-9)

	boundary := comp.PointAt(straight.Length())
	assert.InDelta(t, straight.PointAt(straight.Length()).Position.X, boundary.Position.X, 1e-6)
	assert.InDelta(t, straight.PointAt(straight.Length()).Position.Y, boundary.Position.Y, 1e-6)
}

func TestCompositePathReversedTwiceIsIdentity(t *testing.T) {
	t.Parallel()

	c := buildTestCurve(t)
	straight := NewHeadingPath(c, TangentHeadingProvider{})
	turn := NewPointTurnPath(c.PointAt(c.Length()).Position, 0, math.Pi/2)
	comp, err := NewCompositePath([]Path{straight, turn})
	require.NoError(t, err)

	twice := comp.Reversed().Reversed()
	for _, frac := range []float64{0, 0.25, 0.5, 0.75, 1} {
		s := frac * comp.Length()
		a := comp.PointAt(s)
		b := twice.PointAt(s)
		assert.InDelta(t, a.Position.X, b.Position.X, 1e-9)
		assert.InDelta(t, a.Heading, b.Heading, 1e-9)
	}
}

func TestCompositePathRejectsEmpty(t *testing.T) {
	t.Parallel()

	_, err := NewCompositePath(nil)
	assert.Error(t, err)
}

func TestStepperMatchesPointAt(t *testing.T) {
	t.Parallel()

	c := buildTestCurve(t)
	p := NewHeadingPath(c, TangentHeadingProvider{})
	st := p.Stepper()

	for _, s := range []float64{0, 0.5, 1.5, 3, p.Length()} {
		want := p.PointAt(s)
		got := st.StepTo(s)
		assert.InDelta(t, want.Position.X, got.Position.X, 1e-9)
		assert.InDelta(t, want.Position.Y, got.Position.Y, 1e-9)
	}
}

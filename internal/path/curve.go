package path

import (
	"math"

	tcurve "github.com/cxd309/tms-trajectory/internal/curve"
	"github.com/cxd309/tms-trajectory/internal/reparam"
)

// Curve is a lazy producer of CurvePoints addressed by arc length.
type Curve interface {
	Length() float64
	PointAt(s float64) CurvePoint
	Stepper() CurveStepper
	Reversed() Curve
}

// CurveStepper is a monotone-advance accessor: successive calls to StepTo
// must arrive with non-decreasing s.
type CurveStepper interface {
	StepTo(s float64) CurvePoint
}

// ReparamCurve wraps a VectorFunction and its arc-length ReparamMapping,
// converting s -> u on every query and computing all CurvePoint fields
// from the underlying function at u.
type ReparamCurve struct {
	f        tcurve.VectorFunction
	m        *reparam.Mapping
	reversed bool
}

var _ Curve = (*ReparamCurve)(nil)

// NewReparamCurve builds a ReparamCurve from a vector function and a
// precomputed arc-length mapping over that same function.
func NewReparamCurve(f tcurve.VectorFunction, m *reparam.Mapping) *ReparamCurve {
	return &ReparamCurve{f: f, m: m}
}

func (c *ReparamCurve) Length() float64 { return c.m.Length() }

func (c *ReparamCurve) PointAt(s float64) CurvePoint {
	if c.reversed {
		base := c.pointAtForward(c.Length() - s)
		return reverseCurvePoint(base, s)
	}
	return c.pointAtForward(s)
}

func (c *ReparamCurve) pointAtForward(s float64) CurvePoint {
	u := c.m.TOfS(s)
	return curvePointAt(c.f, u, s)
}

// Stepper returns a monotone stepper. In the forward (non-reversed) case
// it delegates to the mapping's own O(1)-amortized stepper; a reversed
// curve falls back to a fresh binary search per step (spec.md §9:
// "a release build may silently fall back to binary search").
func (c *ReparamCurve) Stepper() CurveStepper {
	return &reparamCurveStepper{c: c, st: c.m.Stepper()}
}

func (c *ReparamCurve) Reversed() Curve {
	return &ReparamCurve{f: c.f, m: c.m, reversed: !c.reversed}
}

type reparamCurveStepper struct {
	c  *ReparamCurve
	st *reparam.Stepper
}

func (cs *reparamCurveStepper) StepTo(s float64) CurvePoint {
	if cs.c.reversed {
		return cs.c.PointAt(s)
	}
	u := cs.st.StepTo(s)
	return curvePointAt(cs.c.f, u, s)
}

// curvePointAt computes every CurvePoint field from f at natural
// parameter u, labeling the result with arc length s. NaN results from
// dividing by |p'(u)| = 0 are replaced with 0 throughout, per spec.md §4.3.
func curvePointAt(f tcurve.VectorFunction, u, s float64) CurvePoint {
	d1 := f.VecDeriv(u)
	tangent := d1.Normalized()
	kappa := tcurve.Curvature(f, u)

	norm := d1.Norm()
	dKappaDs := 0.0
	if norm != 0 {
		dKappaDs = tcurve.CurvatureDeriv(f, u) / norm
		if math.IsNaN(dKappaDs) {
			dKappaDs = 0
		}
	}

	return CurvePoint{
		S:                   s,
		Position:            f.Vec(u),
		PositionDeriv:       tangent,
		PositionSecondDeriv: tangent.Perp().Mul(kappa),
		TanAngle:            d1.Angle(),
		TanAngleDeriv:       kappa,
		TanAngleSecondDeriv: dKappaDs,
	}
}

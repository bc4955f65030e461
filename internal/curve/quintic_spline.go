package curve

import "github.com/cxd309/tms-trajectory/internal/vecmath"

// QuinticSpline is a quintic polynomial p(u) = sum_{i=0}^{5} c_i * u^i,
// built from either six control points (Bernstein/Bezier expansion) or
// from endpoint (position, velocity, acceleration) triples (Hermite
// expansion). Both constructors reduce to the same power-basis
// coefficient solve.
type QuinticSpline struct {
	c [6]vecmath.Vector2d
}

var _ VectorFunction = QuinticSpline{}

// NewQuinticSplineHermite builds a quintic spline satisfying
// p(0)=pos0, p'(0)=vel0, p''(0)=accel0, p(1)=pos1, p'(1)=vel1, p''(1)=accel1.
func NewQuinticSplineHermite(pos0, vel0, accel0, pos1, vel1, accel1 vecmath.Vector2d) QuinticSpline {
	c0 := pos0
	c1 := vel0
	c2 := accel0.Mul(0.5)

	// Reduce the remaining three boundary conditions at u=1 to a 3x3 linear
	// system in c3, c4, c5; see DESIGN.md for the closed-form solution.
	a := pos1.Sub(c0).Sub(c1).Sub(c2)
	b := vel1.Sub(c1).Sub(c2.Mul(2))
	cc := accel1.Sub(c2.Mul(2))

	c3 := a.Mul(10).Sub(b.Mul(4)).Add(cc.Mul(0.5))
	c4 := a.Mul(-15).Add(b.Mul(7)).Sub(cc)
	c5 := a.Mul(6).Sub(b.Mul(3)).Add(cc.Mul(0.5))

	return QuinticSpline{c: [6]vecmath.Vector2d{c0, c1, c2, c3, c4, c5}}
}

// NewQuinticSplineControlPoints builds a quintic spline through the
// standard quintic Bezier control polygon (p0..p5), by first converting
// the control points to boundary position/velocity/acceleration and then
// deferring to NewQuinticSplineHermite.
func NewQuinticSplineControlPoints(p0, p1, p2, p3, p4, p5 vecmath.Vector2d) QuinticSpline {
	pos0 := p0
	vel0 := p1.Sub(p0).Mul(5)
	accel0 := p2.Sub(p1.Mul(2)).Add(p0).Mul(20)

	pos1 := p5
	vel1 := p5.Sub(p4).Mul(5)
	accel1 := p5.Sub(p4.Mul(2)).Add(p3).Mul(20)

	return NewQuinticSplineHermite(pos0, vel0, accel0, pos1, vel1, accel1)
}

func (q QuinticSpline) Vec(u float64) vecmath.Vector2d {
	// Horner's method over the six coefficients.
	acc := q.c[5]
	for i := 4; i >= 0; i-- {
		acc = acc.Mul(u).Add(q.c[i])
	}
	return acc
}

func (q QuinticSpline) VecDeriv(u float64) vecmath.Vector2d {
	acc := q.c[5].Mul(5)
	for i := 4; i >= 1; i-- {
		acc = acc.Mul(u).Add(q.c[i].Mul(float64(i)))
	}
	return acc
}

func (q QuinticSpline) VecSecondDeriv(u float64) vecmath.Vector2d {
	acc := q.c[5].Mul(20)
	for i := 4; i >= 2; i-- {
		acc = acc.Mul(u).Add(q.c[i].Mul(float64(i * (i - 1))))
	}
	return acc
}

func (q QuinticSpline) VecThirdDeriv(u float64) vecmath.Vector2d {
	acc := q.c[5].Mul(60)
	for i := 4; i >= 3; i-- {
		acc = acc.Mul(u).Add(q.c[i].Mul(float64(i * (i - 1) * (i - 2))))
	}
	return acc
}

// Curvature returns kappa(u) for this spline.
func (q QuinticSpline) Curvature(u float64) float64 { return Curvature(q, u) }

// CurvatureDeriv returns dkappa/du for this spline.
func (q QuinticSpline) CurvatureDeriv(u float64) float64 { return CurvatureDeriv(q, u) }

// Package curve implements the quintic-polynomial vector functions that
// planar paths are built from, with analytic derivatives up to third order
// and the curvature and curvature-rate needed by the reparameterization
// and path packages.
package curve

import "github.com/cxd309/tms-trajectory/internal/vecmath"

// VectorFunction is a twice-continuously-differentiable planar curve
// p(u): R -> R^2, parameterized over an arbitrary natural parameter u,
// typically u in [0, 1].
type VectorFunction interface {
	Vec(u float64) vecmath.Vector2d
	VecDeriv(u float64) vecmath.Vector2d
	VecSecondDeriv(u float64) vecmath.Vector2d
	VecThirdDeriv(u float64) vecmath.Vector2d
}

// Curvature returns kappa(u) = (p' x p'') / |p'|^3, defined as 0 when
// |p'(u)| = 0 rather than NaN.
func Curvature(f VectorFunction, u float64) float64 {
	d1 := f.VecDeriv(u)
	d2 := f.VecSecondDeriv(u)
	norm := d1.Norm()
	if norm == 0 {
		return 0
	}
	return d1.Cross(d2) / (norm * norm * norm)
}

// CurvatureDeriv returns dkappa/du = (p' x p''')/|p'|^3 - 3(p' x p'')(p'.p'')/|p'|^5,
// defined as 0 when |p'(u)| = 0.
func CurvatureDeriv(f VectorFunction, u float64) float64 {
	d1 := f.VecDeriv(u)
	d2 := f.VecSecondDeriv(u)
	d3 := f.VecThirdDeriv(u)
	norm := d1.Norm()
	if norm == 0 {
		return 0
	}
	norm3 := norm * norm * norm
	norm5 := norm3 * norm * norm
	return d1.Cross(d3)/norm3 - 3*d1.Cross(d2)*d1.Dot(d2)/norm5
}

package constraint

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/cxd309/tms-trajectory/internal/path"
	"github.com/cxd309/tms-trajectory/internal/vecmath"
)

// botFrameVec3 rotates a pose derivative's translation component into the
// robot's body frame at heading, leaving the angular component unchanged
// (a planar rotation about the shared z axis is frame-invariant).
func botFrameVec3(pd vecmath.Pose2d, heading float64) [3]float64 {
	return pd.VecRotated(-heading).Vec3()
}

// matVec multiplies an m x 3 matrix by a 3-vector, returning an m-vector.
func matVec(m *mat.Dense, v [3]float64) []float64 {
	return matVecN(m, v[:])
}

// matVecN multiplies an m x n matrix by an n-vector, returning an m-vector.
func matVecN(m *mat.Dense, v []float64) []float64 {
	rows, _ := m.Dims()
	out := make([]float64, rows)
	vd := mat.NewVecDense(len(v), v)
	var r mat.VecDense
	r.MulVec(m, vd)
	for i := 0; i < rows; i++ {
		out[i] = r.AtVec(i)
	}
	return out
}

// scaleDense returns m scaled by factor, used to convert a motor-space
// matrix (motorVelFromBotVel, motorAccelFromBotAccel) into wheel-tangential
// space via the wheel-radius/gear-ratio factor.
func scaleDense(m *mat.Dense, factor float64) *mat.Dense {
	var out mat.Dense
	out.Scale(factor, m)
	return &out
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// canonicalVelocity implements spec.md §4.6's velocity-constraint closed
// form: ds/dt_max = min_i |maxes_i / (M*r)_i|, where r is poseDeriv
// rotated into the body frame. A row with (M*r)_i == 0 places no bound.
func canonicalVelocity(m *mat.Dense, maxes []float64, pp path.PathPoint) float64 {
	r := botFrameVec3(pp.PoseDeriv(), pp.Heading)
	mr := matVec(m, r)

	best := math.Inf(1)
	for i, mri := range mr {
		if mri == 0 {
			continue
		}
		bound := math.Abs(maxes[i] / mri)
		if bound < best {
			best = bound
		}
	}
	return best
}

// canonicalAccel implements spec.md §4.6's acceleration-constraint
// canonical form. m is the k x 3 matrix relating body acceleration to the
// constrained quantity; maxes are the per-row symmetric bounds. extra, if
// non-nil, returns an additional per-row velocity-dependent offset (volts
// or accel contributed by motor back-EMF/friction, independent of the
// path-curvature v^2 term every row already carries).
func canonicalAccel(m *mat.Dense, maxes []float64, extra func(pp path.PathPoint, v float64) []float64, pp path.PathPoint, v float64) Interval {
	r := botFrameVec3(pp.PoseDeriv(), pp.Heading)
	s2 := botFrameVec3(pp.PoseSecondDeriv(), pp.Heading)

	mult := matVec(m, r)
	curvatureOffset := matVec(m, s2)

	var extraOffset []float64
	if extra != nil {
		extraOffset = extra(pp, v)
	}

	result := RealInterval()
	for i := range mult {
		offset := curvatureOffset[i] * v * v
		if extraOffset != nil {
			offset += extraOffset[i]
		}
		if mult[i] == 0 {
			if math.Abs(offset) > maxes[i] {
				return vecmath.EmptyInterval()
			}
			continue
		}
		lo := (-maxes[i] - offset) / mult[i]
		hi := (maxes[i] - offset) / mult[i]
		if lo > hi {
			lo, hi = hi, lo
		}
		result = result.Intersect(Interval{Min: lo, Max: hi})
	}
	return result
}

package profile

import (
	"fmt"
	"math"
)

// forwardPass sweeps s[0]..s[n] left to right, lowering vmax[i+1] whenever
// the segment starting at vmax[i] cannot reach it under the constrainer's
// acceleration range (spec.md §4.7 step 3).
func forwardPass(c Constrainer, s, vmax []float64, tol float64) error {
	n := len(s) - 1
	for i := 0; i < n; i++ {
		ds := s[i+1] - s[i]
		v0, aMax, err := feasibleVelocity(c, s[i], vmax[i], ds, tol, forwardAccel)
		if err != nil {
			return fmt.Errorf("profile: forward pass at segment %d: %w", i, err)
		}
		vmax[i] = v0
		v1 := math.Sqrt(v0*v0 + 2*aMax*ds)
		if v1 < vmax[i+1] {
			vmax[i+1] = v1
		}
	}
	return nil
}

// backwardPass sweeps s[n]..s[0] right to left, using the negated lower
// bound of accelRange as the effective forward acceleration (spec.md §9:
// intentional, mildly conservative when accelRange is not symmetric).
func backwardPass(c Constrainer, s, vmax []float64, tol float64) error {
	n := len(s) - 1
	for i := n; i > 0; i-- {
		ds := s[i] - s[i-1]
		v0, aMax, err := feasibleVelocity(c, s[i], vmax[i], ds, tol, backwardAccel)
		if err != nil {
			return fmt.Errorf("profile: backward pass at segment %d: %w", i-1, err)
		}
		vmax[i] = v0
		v1 := math.Sqrt(v0*v0 + 2*aMax*ds)
		if v1 < vmax[i-1] {
			vmax[i-1] = v1
		}
	}
	return nil
}

func forwardAccel(c Constrainer, sEval, v float64) (float64, bool) {
	r := c.AccelRange(sEval, v)
	if r.IsEmpty() {
		return 0, false
	}
	return r.Max, true
}

func backwardAccel(c Constrainer, sEval, v float64) (float64, bool) {
	r := c.AccelRange(sEval, v)
	if r.IsEmpty() {
		return 0, false
	}
	return -r.Min, true
}

// feasibleVelocity returns the largest velocity <= v0 at which accel
// (either forwardAccel or backwardAccel) is defined and exceeds the
// minimum acceleration needed to keep v^2 >= 0 across ds, plus the
// resulting acceleration. When even v=0 is infeasible it returns a fatal
// error naming the eval point (spec.md §4.7 step 3, §6 "Unsatisfiable
// constraints").
func feasibleVelocity(c Constrainer, sEval, v0, ds, tol float64, accel func(Constrainer, float64, float64) (float64, bool)) (float64, float64, error) {
	if a, ok := feasibleAt(c, sEval, v0, ds, accel); ok {
		return v0, a, nil
	}

	aAtZero, ok := feasibleAt(c, sEval, 0, ds, accel)
	if !ok {
		return 0, 0, fmt.Errorf("unsatisfiable constraints at zero velocity (s=%v)", sEval)
	}

	lo, hi := 0.0, v0
	loAccel := aAtZero
	for hi-lo > tol {
		mid := (lo + hi) / 2
		if a, ok := feasibleAt(c, sEval, mid, ds, accel); ok {
			lo, loAccel = mid, a
		} else {
			hi = mid
		}
	}
	return lo, loAccel, nil
}

func feasibleAt(c Constrainer, sEval, v, ds float64, accel func(Constrainer, float64, float64) (float64, bool)) (float64, bool) {
	aMin := -v * v / (2 * ds)
	a, ok := accel(c, sEval, v)
	if !ok || a <= aMin {
		return 0, false
	}
	return a, true
}

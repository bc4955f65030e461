package path

// reverseCurvePoint negates the first-derivative fields of a CurvePoint
// computed at the mirrored arc length (Length-s) and relabels it with the
// externally-queried s. Position, TanAngle, and both second derivatives
// are left as computed: the algebra of the underlying formulas already
// makes them reversal-invariant (spec.md §4.4, §8: double reversal is the
// identity).
func reverseCurvePoint(cp CurvePoint, s float64) CurvePoint {
	cp.S = s
	cp.PositionDeriv = cp.PositionDeriv.Neg()
	cp.TanAngleDeriv = -cp.TanAngleDeriv
	return cp
}

// reversePathPoint additionally negates HeadingDeriv.
func reversePathPoint(pp PathPoint, s float64) PathPoint {
	pp.CurvePoint = reverseCurvePoint(pp.CurvePoint, s)
	pp.HeadingDeriv = -pp.HeadingDeriv
	return pp
}

// recomputeStepper is a PathStepper that has no cheaper incremental
// implementation available and simply recomputes PointAt on every step.
// Used by paths (point turns, composites) whose PointAt is already O(log n)
// or better, where a dedicated cursor would add complexity without a
// measurable win.
type recomputeStepper struct {
	path Path
}

func (r *recomputeStepper) StepTo(s float64) PathPoint { return r.path.PointAt(s) }

package path

// Path is a lazy producer of PathPoints addressed by arc length: either a
// HeadingPath (curve + heading provider), a PointTurnPath (stationary,
// heading sweeps linearly), or a CompositePath (concatenation of
// sub-paths offset by cumulative length).
type Path interface {
	Length() float64
	PointAt(s float64) PathPoint
	Stepper() PathStepper
	Reversed() Path
}

// PathStepper is a monotone-advance accessor over a Path.
type PathStepper interface {
	StepTo(s float64) PathPoint
}

// HeadingProvider assigns a heading, heading derivative, and heading
// second derivative (all with respect to arc length) to a point on a
// Curve of the given total path length.
type HeadingProvider interface {
	HeadingAt(cp CurvePoint, pathLength float64) (heading, headingDeriv, headingSecondDeriv float64)
}

// TangentHeadingProvider makes the path's heading track the curve's own
// tangent angle, the common case for a differential-drive robot that
// always faces the direction of travel.
type TangentHeadingProvider struct{}

func (TangentHeadingProvider) HeadingAt(cp CurvePoint, _ float64) (float64, float64, float64) {
	return cp.TanAngle, cp.TanAngleDeriv, cp.TanAngleSecondDeriv
}

// ConstantHeadingProvider holds a fixed heading over the whole path,
// useful for a holonomic drive translating without rotating.
type ConstantHeadingProvider struct {
	Heading float64
}

func (c ConstantHeadingProvider) HeadingAt(CurvePoint, float64) (float64, float64, float64) {
	return c.Heading, 0, 0
}

// LinearHeadingProvider interpolates heading linearly in arc length
// between StartHeading and EndHeading, independent of the curve's own
// tangent — a holonomic drive translating along a curve while rotating on
// its own separate schedule.
type LinearHeadingProvider struct {
	StartHeading, EndHeading float64
}

func (l LinearHeadingProvider) HeadingAt(cp CurvePoint, pathLength float64) (float64, float64, float64) {
	if pathLength <= 0 {
		return l.StartHeading, 0, 0
	}
	frac := cp.S / pathLength
	heading := l.StartHeading + frac*(l.EndHeading-l.StartHeading)
	headingDeriv := (l.EndHeading - l.StartHeading) / pathLength
	return heading, headingDeriv, 0
}

package path

import "github.com/cxd309/tms-trajectory/internal/vecmath"

// PointTurnPath is a stationary path: zero translation, heading sweeping
// linearly over an arc length equal to the total angular sweep. TanAngle
// equals Heading throughout, and PositionDeriv/PositionSecondDeriv are
// zero (spec.md §3).
type PointTurnPath struct {
	Position                 vecmath.Vector2d
	StartHeading, EndHeading float64
	reversed                 bool
}

var _ Path = (*PointTurnPath)(nil)

// NewPointTurnPath builds a point turn from startHeading to endHeading in
// place at position.
func NewPointTurnPath(position vecmath.Vector2d, startHeading, endHeading float64) *PointTurnPath {
	return &PointTurnPath{Position: position, StartHeading: startHeading, EndHeading: endHeading}
}

func (p *PointTurnPath) Length() float64 {
	d := p.EndHeading - p.StartHeading
	if d < 0 {
		return -d
	}
	return d
}

func (p *PointTurnPath) PointAt(sExternal float64) PathPoint {
	length := p.Length()
	s := sExternal
	if p.reversed {
		s = length - sExternal
	}

	frac := 0.0
	headingDeriv := 0.0
	if length > 0 {
		frac = s / length
		headingDeriv = (p.EndHeading - p.StartHeading) / length
	}
	heading := p.StartHeading + frac*(p.EndHeading-p.StartHeading)

	pp := PathPoint{
		CurvePoint: CurvePoint{
			S:             s,
			Position:      p.Position,
			TanAngle:      heading,
			TanAngleDeriv: headingDeriv,
		},
		Heading:      heading,
		HeadingDeriv: headingDeriv,
	}

	if p.reversed {
		return reversePathPoint(pp, sExternal)
	}
	return pp
}

func (p *PointTurnPath) Stepper() PathStepper { return &recomputeStepper{path: p} }

func (p *PointTurnPath) Reversed() Path {
	return &PointTurnPath{Position: p.Position, StartHeading: p.StartHeading, EndHeading: p.EndHeading, reversed: !p.reversed}
}

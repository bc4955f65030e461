package path

// HeadingPath composes a Curve with a HeadingProvider to yield a Path.
type HeadingPath struct {
	curve    Curve
	hp       HeadingProvider
	reversed bool
}

var _ Path = (*HeadingPath)(nil)

// NewHeadingPath builds a HeadingPath over c using hp to derive heading.
func NewHeadingPath(c Curve, hp HeadingProvider) *HeadingPath {
	return &HeadingPath{curve: c, hp: hp}
}

func (p *HeadingPath) Length() float64 { return p.curve.Length() }

func (p *HeadingPath) PointAt(s float64) PathPoint {
	if p.reversed {
		base := p.pointAtForward(p.Length() - s)
		return reversePathPoint(base, s)
	}
	return p.pointAtForward(s)
}

func (p *HeadingPath) pointAtForward(s float64) PathPoint {
	cp := p.curve.PointAt(s)
	h, hd, hdd := p.hp.HeadingAt(cp, p.Length())
	return PathPoint{CurvePoint: cp, Heading: h, HeadingDeriv: hd, HeadingSecondDeriv: hdd}
}

func (p *HeadingPath) Stepper() PathStepper {
	return &headingPathStepper{p: p, cs: p.curve.Stepper()}
}

func (p *HeadingPath) Reversed() Path {
	return &HeadingPath{curve: p.curve, hp: p.hp, reversed: !p.reversed}
}

type headingPathStepper struct {
	p  *HeadingPath
	cs CurveStepper
}

func (s *headingPathStepper) StepTo(sVal float64) PathPoint {
	if s.p.reversed {
		return s.p.PointAt(sVal)
	}
	cp := s.cs.StepTo(sVal)
	h, hd, hdd := s.p.hp.HeadingAt(cp, s.p.Length())
	return PathPoint{CurvePoint: cp, Heading: h, HeadingDeriv: hd, HeadingSecondDeriv: hdd}
}

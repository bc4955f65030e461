package vecmath

import "math"

// Pose2d is a planar position plus heading.
type Pose2d struct {
	Vec     Vector2d
	Heading float64
}

// VecRotated rotates only the translation component; heading is unchanged.
func (p Pose2d) VecRotated(theta float64) Pose2d {
	return Pose2d{Vec: p.Vec.Rotated(theta), Heading: p.Heading}
}

// Add adds two poses componentwise, including heading.
func (p Pose2d) Add(o Pose2d) Pose2d {
	return Pose2d{Vec: p.Vec.Add(o.Vec), Heading: p.Heading + o.Heading}
}

// Mul scales both the translation and heading components by s.
func (p Pose2d) Mul(s float64) Pose2d {
	return Pose2d{Vec: p.Vec.Mul(s), Heading: p.Heading * s}
}

// Vec3 returns the (x, y, heading) representation.
func (p Pose2d) Vec3() [3]float64 { return [3]float64{p.Vec.X, p.Vec.Y, p.Heading} }

// FromVec3 builds a Pose2d from an (x, y, heading) triple.
func FromVec3(v [3]float64) Pose2d {
	return Pose2d{Vec: Vector2d{X: v[0], Y: v[1]}, Heading: v[2]}
}

// NormalizeAngle wraps theta into (-pi, pi].
func NormalizeAngle(theta float64) float64 {
	theta = math.Mod(theta+math.Pi, 2*math.Pi)
	if theta <= 0 {
		theta += 2 * math.Pi
	}
	return theta - math.Pi
}

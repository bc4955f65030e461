// Package path implements the per-point geometric snapshot types
// (CurvePoint, PathPoint), the ReparamCurve and Path producers built on
// top of internal/curve and internal/reparam, and path composition,
// point-turns, and reversal.
//
// The Position/Segment-style per-point snapshot and the traversal helpers
// here are grounded on internal/graph/graph.go's Position/Segment/Edge
// types and its GetPathStartPosition/GetNextEdge traversal style, adapted
// from discrete graph edges to continuous curve segments.
package path

import "github.com/cxd309/tms-trajectory/internal/vecmath"

// CurvePoint is a snapshot of all curve-geometry fields at one arc-length
// value S along a Curve.
//
// Fields are computed eagerly at construction rather than memoized
// lazily: reparam curves are small and the per-point cost of recomputing
// every field is not worth the bookkeeping of a lazy cache (spec's design
// notes call the memoization "masking recomputation cost rather than
// avoiding it").
type CurvePoint struct {
	S                   float64
	Position            vecmath.Vector2d
	PositionDeriv       vecmath.Vector2d // unit tangent; zero when |p'(u)| = 0
	PositionSecondDeriv vecmath.Vector2d // TanAngleDeriv * perpendicular(PositionDeriv)
	TanAngle            float64          // atan2(p')
	TanAngleDeriv       float64          // curvature kappa (d(TanAngle)/dS)
	TanAngleSecondDeriv float64          // dkappa/dS
}

// PathPoint extends CurvePoint with heading information.
type PathPoint struct {
	CurvePoint
	Heading            float64
	HeadingDeriv       float64
	HeadingSecondDeriv float64
}

// Pose returns the (position, heading) pose at this point, with heading
// normalized into (-pi, pi]: composite paths and point turns can
// accumulate or sweep a raw heading outside that range, and this is the
// one place a caller-visible Pose gets built from it.
func (p PathPoint) Pose() vecmath.Pose2d {
	return vecmath.Pose2d{Vec: p.Position, Heading: vecmath.NormalizeAngle(p.Heading)}
}

// PoseDeriv returns the pose derivative with respect to arc length.
func (p PathPoint) PoseDeriv() vecmath.Pose2d {
	return vecmath.Pose2d{Vec: p.PositionDeriv, Heading: p.HeadingDeriv}
}

// PoseSecondDeriv returns the pose second derivative with respect to arc length.
func (p PathPoint) PoseSecondDeriv() vecmath.Pose2d {
	return vecmath.Pose2d{Vec: p.PositionSecondDeriv, Heading: p.HeadingSecondDeriv}
}

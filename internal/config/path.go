// Package config defines the JSON request/response envelope for building
// and sampling a Trajectory from a single document, and the discriminated
// unmarshaling that resolves each polymorphic piece (path geometry, drive
// model, constraint list) to its concrete type.
//
// The discriminator pattern throughout — read a "type" or "model" key via
// an intermediate raw-message struct, then switch on it to the concrete
// constructor — is grounded on internal/service/service.go's
// Vehicle.UnmarshalJSON, which resolves a vehicle's kinematics model the
// same way.
package config

import (
	"encoding/json"
	"fmt"

	"github.com/cxd309/tms-trajectory/internal/curve"
	"github.com/cxd309/tms-trajectory/internal/path"
	"github.com/cxd309/tms-trajectory/internal/reparam"
	"github.com/cxd309/tms-trajectory/internal/vecmath"
)

// pathDisc is the minimum JSON structure needed to read the path's type
// discriminator.
type pathDisc struct {
	Type string `json:"type"`
}

// quinticSplinePathJSON is the raw shape of a "quintic_spline" path: six
// control points plus a heading discriminator.
type quinticSplinePathJSON struct {
	ControlPoints [6]vecmath.Vector2d `json:"control_points"`
	Heading       headingJSON         `json:"heading"`
}

// pointTurnPathJSON is the raw shape of a "point_turn" path.
type pointTurnPathJSON struct {
	Position     vecmath.Vector2d `json:"position"`
	StartHeading float64          `json:"start_heading"`
	EndHeading   float64          `json:"end_heading"`
}

// compositePathJSON is the raw shape of a "composite" path: an ordered
// list of sub-paths, each itself a discriminated path document.
type compositePathJSON struct {
	Segments []json.RawMessage `json:"segments"`
}

// headingJSON is the raw shape of a heading provider, resolved the same
// discriminated way as a path.
type headingJSON struct {
	Type         string  `json:"type"`
	Heading      float64 `json:"heading"`
	StartHeading float64 `json:"start_heading"`
	EndHeading   float64 `json:"end_heading"`
}

func buildHeadingProvider(h headingJSON) (path.HeadingProvider, error) {
	switch h.Type {
	case "tangent", "":
		return path.TangentHeadingProvider{}, nil
	case "constant":
		return path.ConstantHeadingProvider{Heading: h.Heading}, nil
	case "linear":
		return path.LinearHeadingProvider{StartHeading: h.StartHeading, EndHeading: h.EndHeading}, nil
	default:
		return nil, fmt.Errorf("config: unknown heading type %q", h.Type)
	}
}

// buildPath resolves a raw path document into a concrete path.Path,
// recursing into sub-documents for the "composite" case.
func buildPath(raw json.RawMessage) (path.Path, error) {
	var disc pathDisc
	if err := json.Unmarshal(raw, &disc); err != nil {
		return nil, fmt.Errorf("config: decoding path discriminator: %w", err)
	}

	switch disc.Type {
	case "quintic_spline":
		var in quinticSplinePathJSON
		if err := json.Unmarshal(raw, &in); err != nil {
			return nil, fmt.Errorf("config: decoding quintic_spline path: %w", err)
		}
		cp := in.ControlPoints
		q := curve.NewQuinticSplineControlPoints(cp[0], cp[1], cp[2], cp[3], cp[4], cp[5])
		m, err := reparam.BuildMapping(q, reparam.DefaultSamples)
		if err != nil {
			return nil, fmt.Errorf("config: building quintic_spline reparam mapping: %w", err)
		}
		hp, err := buildHeadingProvider(in.Heading)
		if err != nil {
			return nil, err
		}
		c := path.NewReparamCurve(q, m)
		return path.NewHeadingPath(c, hp), nil

	case "point_turn":
		var in pointTurnPathJSON
		if err := json.Unmarshal(raw, &in); err != nil {
			return nil, fmt.Errorf("config: decoding point_turn path: %w", err)
		}
		return path.NewPointTurnPath(in.Position, in.StartHeading, in.EndHeading), nil

	case "composite":
		var in compositePathJSON
		if err := json.Unmarshal(raw, &in); err != nil {
			return nil, fmt.Errorf("config: decoding composite path: %w", err)
		}
		subs := make([]path.Path, len(in.Segments))
		for i, seg := range in.Segments {
			p, err := buildPath(seg)
			if err != nil {
				return nil, fmt.Errorf("config: composite segment %d: %w", i, err)
			}
			subs[i] = p
		}
		return path.NewCompositePath(subs)

	default:
		return nil, fmt.Errorf("config: unknown path type %q", disc.Type)
	}
}

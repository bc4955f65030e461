package config

import (
	"encoding/json"
	"fmt"

	"github.com/cxd309/tms-trajectory/internal/constraint"
	"github.com/cxd309/tms-trajectory/internal/trajectory"
)

// Request is the top-level JSON document describing one trajectory to
// generate: a path, a drive model, the constraints to evaluate against
// it, and the boundary velocities and discretization step to hand to the
// profile generator.
//
// This plays the role internal/engine/models.go's SimulationInput plays
// for the teacher's simulation run: one envelope struct that bundles
// everything a single top-level call needs, with the polymorphic pieces
// deferred to raw JSON until their discriminators are read.
type Request struct {
	Path           json.RawMessage   `json:"path"`
	DriveModel     json.RawMessage   `json:"drive_model"`
	Constraints    []json.RawMessage `json:"constraints"`
	TargetStartVel float64           `json:"target_start_vel"`
	TargetEndVel   float64           `json:"target_end_vel"`
	SegmentSize    float64           `json:"segment_size,omitempty"`
	SampleTimeStep float64           `json:"sample_time_step,omitempty"`
}

// Build resolves req's path, drive model, and constraints, then generates
// the resulting Trajectory. This is the package's single entry point, the
// counterpart to internal/engine/engine.go's NewTMS followed by Run.
func Build(req Request) (*trajectory.Trajectory, error) {
	p, err := buildPath(req.Path)
	if err != nil {
		return nil, fmt.Errorf("config: building path: %w", err)
	}

	model, err := buildDriveModel(req.DriveModel)
	if err != nil {
		return nil, fmt.Errorf("config: building drive model: %w", err)
	}

	var velocity []constraint.VelocityConstraint
	var acceleration []constraint.AccelerationConstraint
	for i, raw := range req.Constraints {
		bc, err := buildConstraint(raw, model)
		if err != nil {
			return nil, fmt.Errorf("config: building constraint %d: %w", i, err)
		}
		if bc.velocity != nil {
			velocity = append(velocity, bc.velocity)
		}
		if bc.acceleration != nil {
			acceleration = append(acceleration, bc.acceleration)
		}
	}
	cs := constraint.NewConstraintSet(velocity, acceleration)

	segmentSize := req.SegmentSize
	if segmentSize <= 0 {
		segmentSize = trajectory.DefaultSegmentSize
	}

	return trajectory.GenerateTrajectory(p, cs, req.TargetStartVel, req.TargetEndVel, segmentSize)
}

// BuildFromJSON unmarshals data into a Request and resolves it, the
// counterpart to internal/engine/engine.go's RunJSON.
func BuildFromJSON(data []byte) (*trajectory.Trajectory, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("config: decoding request: %w", err)
	}
	return Build(req)
}

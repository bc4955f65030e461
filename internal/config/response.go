package config

import (
	"encoding/json"
	"fmt"

	"github.com/cxd309/tms-trajectory/internal/trajectory"
)

// defaultSampleTimeStep is used when a Request omits sample_time_step.
const defaultSampleTimeStep = 0.1

// Sample is the trajectory state at a single sampled time, the
// counterpart to internal/engine/models.go's SimulationLogRow for a
// single service.
type Sample struct {
	Timestamp float64 `json:"timestamp"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Heading   float64 `json:"heading"`
	VelX      float64 `json:"vel_x"`
	VelY      float64 `json:"vel_y"`
	VelTheta  float64 `json:"vel_theta"`
}

// Response is the complete output of a Build call, the counterpart to
// internal/engine/models.go's SimulationLog.
type Response struct {
	Duration float64  `json:"duration"`
	Length   float64  `json:"length"`
	Samples  []Sample `json:"samples"`
}

// sample builds a Response by evaluating traj at sampleTimeStep intervals
// from 0 through its duration, inclusive of the final point.
func sample(traj *trajectory.Trajectory, sampleTimeStep float64) Response {
	if sampleTimeStep <= 0 {
		sampleTimeStep = defaultSampleTimeStep
	}
	resp := Response{Duration: traj.Duration(), Length: traj.Length()}
	st := traj.Stepper()
	for t := 0.0; t < traj.Duration(); t += sampleTimeStep {
		resp.Samples = append(resp.Samples, sampleAt(st, t))
	}
	resp.Samples = append(resp.Samples, sampleAt(st, traj.Duration()))
	return resp
}

func sampleAt(st *trajectory.Stepper, t float64) Sample {
	ms := st.StepTo(t)
	return Sample{
		Timestamp: t,
		X:         ms.Pose.Vec.X,
		Y:         ms.Pose.Vec.Y,
		Heading:   ms.Pose.Heading,
		VelX:      ms.PoseDeriv.Vec.X,
		VelY:      ms.PoseDeriv.Vec.Y,
		VelTheta:  ms.PoseDeriv.Heading,
	}
}

// RunJSON is the primary entry point for external callers: it accepts a
// JSON-encoded Request and returns a JSON-encoded Response, mirroring
// internal/engine/engine.go's RunJSON.
func RunJSON(jsonInput string) (string, error) {
	var req Request
	if err := json.Unmarshal([]byte(jsonInput), &req); err != nil {
		return "", fmt.Errorf("config: decoding request: %w", err)
	}
	traj, err := Build(req)
	if err != nil {
		return "", err
	}
	resp := sample(traj, req.SampleTimeStep)
	out, err := json.Marshal(resp)
	if err != nil {
		return "", fmt.Errorf("config: encoding response: %w", err)
	}
	return string(out), nil
}

package config

import (
	"encoding/json"
	"fmt"

	"github.com/cxd309/tms-trajectory/internal/drive"
)

// driveModelDisc is the minimum JSON structure needed to read the drive
// model's discriminator, mirroring internal/service/service.go's
// kinematicsDisc.
type driveModelDisc struct {
	Model string `json:"model"`
}

// differentialDriveModelJSON is the raw shape of a "differential" drive
// model, matching drive.NewDifferentialDriveModel's parameters.
type differentialDriveModelJSON struct {
	TrackWidth         float64 `json:"track_width"`
	WheelRadius        float64 `json:"wheel_radius"`
	GearRatio          float64 `json:"gear_ratio"`
	MotorVoltsPerRPS   float64 `json:"motor_volts_per_rps"`
	MotorVoltsPerAccel float64 `json:"motor_volts_per_accel"`
}

// mecanumDriveModelJSON is the raw shape of a "mecanum" drive model,
// matching drive.NewMecanumDriveModel's parameters.
type mecanumDriveModelJSON struct {
	WheelBase          float64 `json:"wheel_base"`
	TrackWidth         float64 `json:"track_width"`
	WheelRadius        float64 `json:"wheel_radius"`
	GearRatio          float64 `json:"gear_ratio"`
	MotorVoltsPerRPS   float64 `json:"motor_volts_per_rps"`
	MotorVoltsPerAccel float64 `json:"motor_volts_per_accel"`
}

// buildDriveModel resolves a raw drive-model document into a concrete
// drive.Model, dispatching on its "model" discriminator the way
// Vehicle.UnmarshalJSON dispatches on "model" for kinematics.
func buildDriveModel(raw json.RawMessage) (*drive.Model, error) {
	var disc driveModelDisc
	if err := json.Unmarshal(raw, &disc); err != nil {
		return nil, fmt.Errorf("config: decoding drive model discriminator: %w", err)
	}

	switch disc.Model {
	case "differential":
		var in differentialDriveModelJSON
		if err := json.Unmarshal(raw, &in); err != nil {
			return nil, fmt.Errorf("config: decoding differential drive model: %w", err)
		}
		return drive.NewDifferentialDriveModel(in.TrackWidth, in.WheelRadius, in.GearRatio, in.MotorVoltsPerRPS, in.MotorVoltsPerAccel)

	case "mecanum":
		var in mecanumDriveModelJSON
		if err := json.Unmarshal(raw, &in); err != nil {
			return nil, fmt.Errorf("config: decoding mecanum drive model: %w", err)
		}
		return drive.NewMecanumDriveModel(in.WheelBase, in.TrackWidth, in.WheelRadius, in.GearRatio, in.MotorVoltsPerRPS, in.MotorVoltsPerAccel)

	default:
		return nil, fmt.Errorf("config: unknown drive model %q", disc.Model)
	}
}

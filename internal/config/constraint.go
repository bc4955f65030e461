package config

import (
	"encoding/json"
	"fmt"

	"github.com/cxd309/tms-trajectory/internal/constraint"
	"github.com/cxd309/tms-trajectory/internal/drive"
)

// constraintDisc is the minimum JSON structure needed to read a
// constraint's type discriminator.
type constraintDisc struct {
	Type string `json:"type"`
}

// maxJSON holds a constraint's bound either as a single uniform scalar or
// a per-motor list, mirroring each constraint constructor's
// (perAxisList | uniformScalar) overload pair. Exactly one of the two
// must be set.
type maxJSON struct {
	Max      *float64  `json:"max,omitempty"`
	MaxPerAxis []float64 `json:"max_per_axis,omitempty"`
}

func (m maxJSON) resolve(n int) ([]float64, float64, bool, error) {
	if m.MaxPerAxis != nil {
		if len(m.MaxPerAxis) != n {
			return nil, 0, false, fmt.Errorf("config: max_per_axis has length %d, want %d", len(m.MaxPerAxis), n)
		}
		return m.MaxPerAxis, 0, false, nil
	}
	if m.Max != nil {
		return nil, *m.Max, true, nil
	}
	return nil, 0, false, fmt.Errorf("config: constraint has neither max nor max_per_axis set")
}

// wheelConstraintJSON is the raw shape shared by the two wheel-tangential
// constraints, which also need the wheel radius and gear ratio to scale
// from motor space into wheel space.
type wheelConstraintJSON struct {
	maxJSON
	WheelRadius float64 `json:"wheel_radius"`
	GearRatio   float64 `json:"gear_ratio"`
}

// torqueConstraintJSON is the raw shape of a "max_motor_torque" document.
type torqueConstraintJSON struct {
	maxJSON
	VoltsPerTorque float64 `json:"volts_per_torque"`
}

// builtConstraint is the tagged-union result of resolving one constraint
// document: it carries whichever of the velocity/acceleration interfaces
// the concrete constraint type satisfies.
type builtConstraint struct {
	velocity     constraint.VelocityConstraint
	acceleration constraint.AccelerationConstraint
}

// buildConstraint resolves a raw constraint document into a
// builtConstraint, dispatching on its "type" discriminator against the
// already-built drive model it constrains.
func buildConstraint(raw json.RawMessage, model *drive.Model) (builtConstraint, error) {
	var disc constraintDisc
	if err := json.Unmarshal(raw, &disc); err != nil {
		return builtConstraint{}, fmt.Errorf("config: decoding constraint discriminator: %w", err)
	}
	n := model.NumMotors()

	switch disc.Type {
	case "max_motor_speed":
		var in maxJSON
		if err := json.Unmarshal(raw, &in); err != nil {
			return builtConstraint{}, fmt.Errorf("config: decoding max_motor_speed: %w", err)
		}
		perAxis, uniform, isUniform, err := in.resolve(n)
		if err != nil {
			return builtConstraint{}, err
		}
		var c *constraint.MaxMotorSpeed
		if isUniform {
			c, err = constraint.NewMaxMotorSpeedUniform(model, uniform)
		} else {
			c, err = constraint.NewMaxMotorSpeed(model, perAxis)
		}
		if err != nil {
			return builtConstraint{}, err
		}
		return builtConstraint{velocity: c}, nil

	case "max_wheel_tangential_speed":
		var in wheelConstraintJSON
		if err := json.Unmarshal(raw, &in); err != nil {
			return builtConstraint{}, fmt.Errorf("config: decoding max_wheel_tangential_speed: %w", err)
		}
		perAxis, uniform, isUniform, err := in.resolve(n)
		if err != nil {
			return builtConstraint{}, err
		}
		var c *constraint.MaxWheelTangentialSpeed
		if isUniform {
			c, err = constraint.NewMaxWheelTangentialSpeedUniform(model, in.WheelRadius, in.GearRatio, uniform)
		} else {
			c, err = constraint.NewMaxWheelTangentialSpeed(model, in.WheelRadius, in.GearRatio, perAxis)
		}
		if err != nil {
			return builtConstraint{}, err
		}
		return builtConstraint{velocity: c}, nil

	case "max_motor_acceleration":
		var in maxJSON
		if err := json.Unmarshal(raw, &in); err != nil {
			return builtConstraint{}, fmt.Errorf("config: decoding max_motor_acceleration: %w", err)
		}
		perAxis, uniform, isUniform, err := in.resolve(n)
		if err != nil {
			return builtConstraint{}, err
		}
		var c *constraint.MaxMotorAcceleration
		if isUniform {
			c, err = constraint.NewMaxMotorAccelerationUniform(model, uniform)
		} else {
			c, err = constraint.NewMaxMotorAcceleration(model, perAxis)
		}
		if err != nil {
			return builtConstraint{}, err
		}
		return builtConstraint{acceleration: c}, nil

	case "max_wheel_tangential_acceleration":
		var in wheelConstraintJSON
		if err := json.Unmarshal(raw, &in); err != nil {
			return builtConstraint{}, fmt.Errorf("config: decoding max_wheel_tangential_acceleration: %w", err)
		}
		perAxis, uniform, isUniform, err := in.resolve(n)
		if err != nil {
			return builtConstraint{}, err
		}
		var c *constraint.MaxWheelTangentialAcceleration
		if isUniform {
			c, err = constraint.NewMaxWheelTangentialAccelerationUniform(model, in.WheelRadius, in.GearRatio, uniform)
		} else {
			c, err = constraint.NewMaxWheelTangentialAcceleration(model, in.WheelRadius, in.GearRatio, perAxis)
		}
		if err != nil {
			return builtConstraint{}, err
		}
		return builtConstraint{acceleration: c}, nil

	case "max_motor_voltage":
		var in maxJSON
		if err := json.Unmarshal(raw, &in); err != nil {
			return builtConstraint{}, fmt.Errorf("config: decoding max_motor_voltage: %w", err)
		}
		perAxis, uniform, isUniform, err := in.resolve(n)
		if err != nil {
			return builtConstraint{}, err
		}
		var c *constraint.MaxMotorVoltage
		if isUniform {
			c, err = constraint.NewMaxMotorVoltageUniform(model, uniform)
		} else {
			c, err = constraint.NewMaxMotorVoltage(model, perAxis)
		}
		if err != nil {
			return builtConstraint{}, err
		}
		return builtConstraint{acceleration: c}, nil

	case "max_motor_torque":
		var in torqueConstraintJSON
		if err := json.Unmarshal(raw, &in); err != nil {
			return builtConstraint{}, fmt.Errorf("config: decoding max_motor_torque: %w", err)
		}
		perAxis, uniform, isUniform, err := in.resolve(n)
		if err != nil {
			return builtConstraint{}, err
		}
		var c *constraint.MaxMotorTorque
		if isUniform {
			c, err = constraint.NewMaxMotorTorqueUniform(model, in.VoltsPerTorque, uniform)
		} else {
			c, err = constraint.NewMaxMotorTorque(model, in.VoltsPerTorque, perAxis)
		}
		if err != nil {
			return builtConstraint{}, err
		}
		return builtConstraint{acceleration: c}, nil

	default:
		return builtConstraint{}, fmt.Errorf("config: unknown constraint type %q", disc.Type)
	}
}

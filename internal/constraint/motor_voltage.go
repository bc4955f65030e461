package constraint

import (
	"fmt"

	"github.com/cxd309/tms-trajectory/internal/drive"
	"github.com/cxd309/tms-trajectory/internal/path"
)

// MaxMotorVoltage bounds each motor's drive voltage (spec.md §4.6). Its
// addend term folds in the back-EMF volts contributed by the motor's
// current velocity and, when the model carries one, a friction volt
// offset that opposes the motor's direction of rotation.
type MaxMotorVoltage struct {
	model *drive.Model
	maxes []float64
}

var _ AccelerationConstraint = (*MaxMotorVoltage)(nil)

// NewMaxMotorVoltage builds a MaxMotorVoltage from a per-motor bound list.
func NewMaxMotorVoltage(model *drive.Model, maxes []float64) (*MaxMotorVoltage, error) {
	if len(maxes) != model.NumMotors() {
		return nil, fmt.Errorf("constraint: MaxMotorVoltage needs %d bounds, got %d", model.NumMotors(), len(maxes))
	}
	return &MaxMotorVoltage{model: model, maxes: maxes}, nil
}

// NewMaxMotorVoltageUniform applies the same bound to every motor.
func NewMaxMotorVoltageUniform(model *drive.Model, max float64) (*MaxMotorVoltage, error) {
	return NewMaxMotorVoltage(model, uniform(model.NumMotors(), max))
}

func (c *MaxMotorVoltage) AccelRange(pp path.PathPoint, v float64) Interval {
	return canonicalAccel(c.model.VoltsFromBotAccel(), c.maxes, c.velocityVolts, pp, v)
}

// velocityVolts computes, per motor, the volts contributed by back-EMF at
// the motor's current velocity plus the sign-dependent friction volt
// offset, independent of the requested acceleration.
func (c *MaxMotorVoltage) velocityVolts(pp path.PathPoint, v float64) []float64 {
	r := botFrameVec3(pp.PoseDeriv(), pp.Heading)
	motorVel := matVec(c.model.MotorVelFromBotVel, r)
	for i := range motorVel {
		motorVel[i] *= v
	}

	volts := matVecN(c.model.VoltsFromMotorVel, motorVel)
	if c.model.VoltsForMotorFriction != nil {
		for i := range volts {
			volts[i] += c.model.VoltsForMotorFriction.AtVec(i) * sign(motorVel[i])
		}
	}
	return volts
}

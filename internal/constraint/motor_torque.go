package constraint

import (
	"fmt"

	"github.com/cxd309/tms-trajectory/internal/drive"
	"github.com/cxd309/tms-trajectory/internal/path"
)

// MaxMotorTorque bounds each motor's drive torque. It was never shipped in
// the source this generator was built from; a torque limit is implemented
// here by analogy with MaxMotorVoltage, substituting torque-per-volt =
// 1/voltsPerTorque for the volts-per-accel and volts-per-vel terms.
// voltsPerTorque is the caller-supplied conversion (assumed uniform across
// motors); a motor whose torque-per-volt differs from this ratio should
// not be modeled with this constraint.
type MaxMotorTorque struct {
	model         *drive.Model
	maxes         []float64
	torquePerVolt float64
}

var _ AccelerationConstraint = (*MaxMotorTorque)(nil)

// NewMaxMotorTorque builds a MaxMotorTorque from a per-motor bound list
// and the motor's torque-per-volt ratio (1/voltsPerTorque).
func NewMaxMotorTorque(model *drive.Model, voltsPerTorque float64, maxes []float64) (*MaxMotorTorque, error) {
	if len(maxes) != model.NumMotors() {
		return nil, fmt.Errorf("constraint: MaxMotorTorque needs %d bounds, got %d", model.NumMotors(), len(maxes))
	}
	if voltsPerTorque == 0 {
		return nil, fmt.Errorf("constraint: voltsPerTorque must be nonzero")
	}
	return &MaxMotorTorque{model: model, maxes: maxes, torquePerVolt: 1 / voltsPerTorque}, nil
}

// NewMaxMotorTorqueUniform applies the same bound to every motor.
func NewMaxMotorTorqueUniform(model *drive.Model, voltsPerTorque, max float64) (*MaxMotorTorque, error) {
	return NewMaxMotorTorque(model, voltsPerTorque, uniform(model.NumMotors(), max))
}

func (c *MaxMotorTorque) AccelRange(pp path.PathPoint, v float64) Interval {
	m := scaleDense(c.model.VoltsFromBotAccel(), c.torquePerVolt)
	return canonicalAccel(m, c.maxes, c.torqueVelocityOffset, pp, v)
}

func (c *MaxMotorTorque) torqueVelocityOffset(pp path.PathPoint, v float64) []float64 {
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
	out := make([]float64, len(volts))
	for i, vv := range volts {
		out[i] = vv * c.torquePerVolt
	}
	return out
}

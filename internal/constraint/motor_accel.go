package constraint

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cxd309/tms-trajectory/internal/drive"
	"github.com/cxd309/tms-trajectory/internal/path"
)

// MaxMotorAcceleration bounds each motor's angular acceleration
// (spec.md §4.6).
type MaxMotorAcceleration struct {
	m     *mat.Dense
	maxes []float64
}

var _ AccelerationConstraint = (*MaxMotorAcceleration)(nil)

// NewMaxMotorAcceleration builds a MaxMotorAcceleration from a per-motor
// bound list.
func NewMaxMotorAcceleration(model *drive.Model, maxes []float64) (*MaxMotorAcceleration, error) {
	if len(maxes) != model.NumMotors() {
		return nil, fmt.Errorf("constraint: MaxMotorAcceleration needs %d bounds, got %d", model.NumMotors(), len(maxes))
	}
	return &MaxMotorAcceleration{m: model.MotorAccelFromBotAccel, maxes: maxes}, nil
}

// NewMaxMotorAccelerationUniform applies the same bound to every motor.
func NewMaxMotorAccelerationUniform(model *drive.Model, max float64) (*MaxMotorAcceleration, error) {
	return NewMaxMotorAcceleration(model, uniform(model.NumMotors(), max))
}

func (c *MaxMotorAcceleration) AccelRange(pp path.PathPoint, v float64) Interval {
	return canonicalAccel(c.m, c.maxes, nil, pp, v)
}

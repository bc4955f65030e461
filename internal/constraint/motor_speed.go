package constraint

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cxd309/tms-trajectory/internal/drive"
	"github.com/cxd309/tms-trajectory/internal/path"
)

// MaxMotorSpeed bounds each motor's angular velocity (spec.md §4.6).
type MaxMotorSpeed struct {
	m     *mat.Dense
	maxes []float64
}

var _ VelocityConstraint = (*MaxMotorSpeed)(nil)

// NewMaxMotorSpeed builds a MaxMotorSpeed from a per-motor bound list.
func NewMaxMotorSpeed(model *drive.Model, maxes []float64) (*MaxMotorSpeed, error) {
	if len(maxes) != model.NumMotors() {
		return nil, fmt.Errorf("constraint: MaxMotorSpeed needs %d bounds, got %d", model.NumMotors(), len(maxes))
	}
	return &MaxMotorSpeed{m: model.MotorVelFromBotVel, maxes: maxes}, nil
}

// NewMaxMotorSpeedUniform applies the same bound to every motor.
func NewMaxMotorSpeedUniform(model *drive.Model, max float64) (*MaxMotorSpeed, error) {
	return NewMaxMotorSpeed(model, uniform(model.NumMotors(), max))
}

func (c *MaxMotorSpeed) MaxVelocity(pp path.PathPoint) float64 {
	return canonicalVelocity(c.m, c.maxes, pp)
}

func uniform(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

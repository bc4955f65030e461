package constraint

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cxd309/tms-trajectory/internal/drive"
	"github.com/cxd309/tms-trajectory/internal/path"
)

// MaxWheelTangentialSpeed bounds each wheel's ground-contact speed rather
// than its motor's angular speed, converting via the wheel-radius/gear-ratio
// factor (spec.md §4.6, "(wheel<->motor factor)*motorVelFromBotVel").
type MaxWheelTangentialSpeed struct {
	m     *mat.Dense
	maxes []float64
}

var _ VelocityConstraint = (*MaxWheelTangentialSpeed)(nil)

// NewMaxWheelTangentialSpeed builds the constraint from wheelRadius and
// gearRatio (the same values passed to the drive model constructor) plus a
// per-wheel bound list.
func NewMaxWheelTangentialSpeed(model *drive.Model, wheelRadius, gearRatio float64, maxes []float64) (*MaxWheelTangentialSpeed, error) {
	if len(maxes) != model.NumMotors() {
		return nil, fmt.Errorf("constraint: MaxWheelTangentialSpeed needs %d bounds, got %d", model.NumMotors(), len(maxes))
	}
	factor := wheelRadius / gearRatio
	return &MaxWheelTangentialSpeed{m: scaleDense(model.MotorVelFromBotVel, factor), maxes: maxes}, nil
}

// NewMaxWheelTangentialSpeedUniform applies the same bound to every wheel.
func NewMaxWheelTangentialSpeedUniform(model *drive.Model, wheelRadius, gearRatio, max float64) (*MaxWheelTangentialSpeed, error) {
	return NewMaxWheelTangentialSpeed(model, wheelRadius, gearRatio, uniform(model.NumMotors(), max))
}

func (c *MaxWheelTangentialSpeed) MaxVelocity(pp path.PathPoint) float64 {
	return canonicalVelocity(c.m, c.maxes, pp)
}

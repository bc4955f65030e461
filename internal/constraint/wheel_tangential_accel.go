package constraint

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cxd309/tms-trajectory/internal/drive"
	"github.com/cxd309/tms-trajectory/internal/path"
)

// MaxWheelTangentialAcceleration bounds each wheel's ground-contact
// tangential acceleration, converting via the wheel-radius/gear-ratio
// factor as MaxWheelTangentialSpeed does for velocity.
type MaxWheelTangentialAcceleration struct {
	m     *mat.Dense
	maxes []float64
}

var _ AccelerationConstraint = (*MaxWheelTangentialAcceleration)(nil)

// NewMaxWheelTangentialAcceleration builds the constraint from
// wheelRadius, gearRatio, and a per-wheel bound list.
func NewMaxWheelTangentialAcceleration(model *drive.Model, wheelRadius, gearRatio float64, maxes []float64) (*MaxWheelTangentialAcceleration, error) {
	if len(maxes) != model.NumMotors() {
		return nil, fmt.Errorf("constraint: MaxWheelTangentialAcceleration needs %d bounds, got %d", model.NumMotors(), len(maxes))
	}
	factor := wheelRadius / gearRatio
	return &MaxWheelTangentialAcceleration{m: scaleDense(model.MotorAccelFromBotAccel, factor), maxes: maxes}, nil
}

// NewMaxWheelTangentialAccelerationUniform applies the same bound to every wheel.
func NewMaxWheelTangentialAccelerationUniform(model *drive.Model, wheelRadius, gearRatio, max float64) (*MaxWheelTangentialAcceleration, error) {
	return NewMaxWheelTangentialAcceleration(model, wheelRadius, gearRatio, uniform(model.NumMotors(), max))
}

func (c *MaxWheelTangentialAcceleration) AccelRange(pp path.PathPoint, v float64) Interval {
	return canonicalAccel(c.m, c.maxes, nil, pp, v)
}

// Package drive implements the drive-model algebra: the matrices relating
// motor, wheel, and bot (robot-frame) velocities, accelerations, and
// voltages that spec.md §4.5 requires, plus the concrete differential and
// mecanum drive constructors.
//
// This generalizes internal/kinematics/MotionModel.go's framing in the
// teacher ("the physics contract every kinematics implementation must
// satisfy... adding a new physics model requires only implementing
// MotionModel") from a four-method scalar interface to matrix algebra,
// since a planar holonomic/nonholonomic drive is inherently matrix-shaped
// rather than 1-D.
package drive

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Model bundles the matrices of spec.md §4.5. MotorAccelForMotorFriction
// and VoltsForMotorFriction are optional (nil when the drive has no
// modeled friction) per-motor vectors combined with sign(motorVel) at
// evaluation time, not matrices, since friction is direction-dependent
// rather than linear in velocity.
type Model struct {
	numMotors int

	MotorVelFromBotVel     *mat.Dense // n x 3
	MotorAccelFromBotAccel *mat.Dense // n x 3
	VoltsFromMotorAccel    *mat.Dense // n x n
	VoltsFromMotorVel      *mat.Dense // n x n

	MotorAccelForMotorFriction *mat.VecDense // n, optional
	VoltsForMotorFriction      *mat.VecDense // n, optional
}

// NewModel validates matrix shapes and that numMotors agrees across every
// composed sub-model (spec.md §4.5 invariant), then returns a Model.
func NewModel(
	motorVelFromBotVel, motorAccelFromBotAccel, voltsFromMotorAccel, voltsFromMotorVel *mat.Dense,
	motorAccelForMotorFriction, voltsForMotorFriction *mat.VecDense,
) (*Model, error) {
	n, cols := motorVelFromBotVel.Dims()
	if cols != 3 {
		return nil, fmt.Errorf("drive: motorVelFromBotVel must have 3 columns, got %d", cols)
	}
	if n <= 0 {
		return nil, fmt.Errorf("drive: numMotors must be positive, got %d", n)
	}

	check := func(name string, r, c int) error {
		if r != n {
			return fmt.Errorf("drive: %s has %d rows, want %d (numMotors)", name, r, n)
		}
		return nil
	}

	if r, c := motorAccelFromBotAccel.Dims(); r != n || c != 3 {
		return nil, fmt.Errorf("drive: motorAccelFromBotAccel must be %dx3, got %dx%d", n, r, c)
	}
	if r, c := voltsFromMotorAccel.Dims(); true {
		if err := check("voltsFromMotorAccel", r, c); err != nil {
			return nil, err
		} else if c != n {
			return nil, fmt.Errorf("drive: voltsFromMotorAccel must be %dx%d, got %dx%d", n, n, r, c)
		}
	}
	if r, c := voltsFromMotorVel.Dims(); r != n || c != n {
		return nil, fmt.Errorf("drive: voltsFromMotorVel must be %dx%d, got %dx%d", n, n, r, c)
	}
	if motorAccelForMotorFriction != nil && motorAccelForMotorFriction.Len() != n {
		return nil, fmt.Errorf("drive: motorAccelForMotorFriction has length %d, want %d", motorAccelForMotorFriction.Len(), n)
	}
	if voltsForMotorFriction != nil && voltsForMotorFriction.Len() != n {
		return nil, fmt.Errorf("drive: voltsForMotorFriction has length %d, want %d", voltsForMotorFriction.Len(), n)
	}

	return &Model{
		numMotors:                  n,
		MotorVelFromBotVel:         motorVelFromBotVel,
		MotorAccelFromBotAccel:     motorAccelFromBotAccel,
		VoltsFromMotorAccel:        voltsFromMotorAccel,
		VoltsFromMotorVel:          voltsFromMotorVel,
		MotorAccelForMotorFriction: motorAccelForMotorFriction,
		VoltsForMotorFriction:      voltsForMotorFriction,
	}, nil
}

// NumMotors returns n, the number of motors/wheels this model describes.
func (m *Model) NumMotors() int { return m.numMotors }

// VoltsFromBotAccel returns voltsFromMotorAccel * motorAccelFromBotAccel
// (spec.md §4.5, an n x 3 matrix).
func (m *Model) VoltsFromBotAccel() *mat.Dense {
	var out mat.Dense
	out.Mul(m.VoltsFromMotorAccel, m.MotorAccelFromBotAccel)
	return &out
}

// voltsFromBotVel returns voltsFromMotorVel * motorVelFromBotVel (n x 3).
func (m *Model) voltsFromBotVel() *mat.Dense {
	var out mat.Dense
	out.Mul(m.VoltsFromMotorVel, m.MotorVelFromBotVel)
	return &out
}

// BotAccelFromBotVel returns -botAccelFromVolts * voltsFromBotVel, the
// back-EMF damping identity of spec.md §4.5. botAccelFromVolts is the
// pseudo-inverse of voltsFromBotAccel, since the drive may be
// over-actuated (more motors than 3 degrees of freedom).
func (m *Model) BotAccelFromBotVel() (*mat.Dense, error) {
	botAccelFromVolts, err := PseudoInverse(m.VoltsFromBotAccel())
	if err != nil {
		return nil, fmt.Errorf("drive: computing botAccelFromVolts: %w", err)
	}
	var out mat.Dense
	out.Mul(botAccelFromVolts, m.voltsFromBotVel())
	out.Scale(-1, &out)
	return &out, nil
}

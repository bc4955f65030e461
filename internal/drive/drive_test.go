package drive

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewModelRejectsShapeMismatch(t *testing.T) {
	t.Parallel()

	good2x3 := newDense(2, 3, []float64{1, 0, 0, 1, 0, 0})
	bad3x3 := newDense(3, 3, make([]float64, 9))

	_, err := NewModel(good2x3, good2x3, bad3x3, bad3x3, nil, nil)
	assert.Error(t, err)
}

func TestNewModelAcceptsConsistentShapes(t *testing.T) {
	t.Parallel()

	m2x3 := newDense(2, 3, []float64{1, 0, 1, 1, 0, -1})
	diag2 := newDense(2, 2, []float64{1, 0, 0, 1})

	m, err := NewModel(m2x3, m2x3, diag2, diag2, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, m.NumMotors())
}

func TestDifferentialDriveModelRejectsBadParams(t *testing.T) {
	t.Parallel()

	_, err := NewDifferentialDriveModel(0, 0.05, 1, 1, 0.1)
	assert.Error(t, err)

	_, err = NewDifferentialDriveModel(0.3, 0, 1, 1, 0.1)
	assert.Error(t, err)

	_, err = NewDifferentialDriveModel(0.3, 0.05, 0, 1, 0.1)
	assert.Error(t, err)
}

func TestDifferentialDriveModelStraightMotionSpinsWheelsEqually(t *testing.T) {
	t.Parallel()

	m, err := NewDifferentialDriveModel(0.3, 0.05, 1, 1, 0.1)
	require.NoError(t, err)

	botVel := mat.NewVecDense(3, []float64{2, 0, 0})
	var motorVel mat.VecDense
	motorVel.MulVec(m.MotorVelFromBotVel, botVel)

	assert.InDelta(t, motorVel.AtVec(0), motorVel.AtVec(1), 1e-9)
}

func TestDifferentialDriveModelPureRotationSpinsWheelsOppositely(t *testing.T) {
	t.Parallel()

	m, err := NewDifferentialDriveModel(0.3, 0.05, 1, 1, 0.1)
	require.NoError(t, err)

	botVel := mat.NewVecDense(3, []float64{0, 0, 1})
	var motorVel mat.VecDense
	motorVel.MulVec(m.MotorVelFromBotVel, botVel)

	assert.InDelta(t, motorVel.AtVec(0), -motorVel.AtVec(1), 1e-9)
	assert.NotEqual(t, 0.0, motorVel.AtVec(0))
}

func TestMecanumDriveModelRejectsBadParams(t *testing.T) {
	t.Parallel()

	_, err := NewMecanumDriveModel(0, 0.3, 0.05, 1, 1, 0.1)
	assert.Error(t, err)
}

func TestMecanumDriveModelHasFourMotors(t *testing.T) {
	t.Parallel()

	m, err := NewMecanumDriveModel(0.3, 0.3, 0.05, 1, 1, 0.1)
	require.NoError(t, err)
	assert.Equal(t, 4, m.NumMotors())
}

func TestMecanumDriveModelStrafeUsesAllWheels(t *testing.T) {
	t.Parallel()

	m, err := NewMecanumDriveModel(0.3, 0.3, 0.05, 1, 1, 0.1)
	require.NoError(t, err)

	botVel := mat.NewVecDense(3, []float64{0, 1, 0})
	var motorVel mat.VecDense
	motorVel.MulVec(m.MotorVelFromBotVel, botVel)

	for i := 0; i < 4; i++ {
		assert.NotEqual(t, 0.0, motorVel.AtVec(i), "wheel %d should spin during a pure strafe", i)
	}
}

func TestMecanumVoltsFromBotAccelPseudoInverseIsWellConditioned(t *testing.T) {
	t.Parallel()

	m, err := NewMecanumDriveModel(0.3, 0.3, 0.05, 1, 2, 0.3)
	require.NoError(t, err)

	voltsFromBotAccel := m.VoltsFromBotAccel()
	pinv, err := PseudoInverse(voltsFromBotAccel)
	require.NoError(t, err)

	// pinv(A) * A should reconstruct the 3x3 identity, since
	// voltsFromBotAccel has full column rank 3.
	var product mat.Dense
	product.Mul(pinv, voltsFromBotAccel)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, product.At(i, j), 1e-6)
		}
	}
}

func TestModelBotAccelFromBotVelDampsAtRest(t *testing.T) {
	t.Parallel()

	m, err := NewDifferentialDriveModel(0.3, 0.05, 1, 1, 0.1)
	require.NoError(t, err)

	damping, err := m.BotAccelFromBotVel()
	require.NoError(t, err)

	r, c := damping.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)

	// forward velocity should produce a decelerating (negative) forward
	// acceleration contribution from back-EMF damping.
	assert.Less(t, damping.At(0, 0), 0.0)
}

func TestWheelAnglePerturbationIsAppliedNotExactlyMinus45(t *testing.T) {
	t.Parallel()

	exact := -45.0 * math.Pi / 180
	assert.NotEqual(t, exact, wheelAnglePerturbation)
	assert.InDelta(t, exact, wheelAnglePerturbation, 1e-3)
}

package drive

import "fmt"

// NewDifferentialDriveModel builds the two-motor tank/differential drive
// model of spec.md §4.5's worked example: two wheels straddling the
// robot's centerline, each rolling along the local x-axis with no lateral
// freedom (vy never enters the motor velocity/acceleration matrices).
//
// trackWidth is the distance between the left and right wheel contact
// points (meters), wheelRadius the wheel radius (meters), gearRatio the
// motor-to-wheel reduction (motor turns per wheel turn), motorVoltsPerRPS
// the motor's back-EMF constant (volts per motor radian/second), and
// motorVoltsPerAccel the motor's effective resistive/inertial constant
// (volts per motor radian/second^2).
func NewDifferentialDriveModel(trackWidth, wheelRadius, gearRatio, motorVoltsPerRPS, motorVoltsPerAccel float64) (*Model, error) {
	if trackWidth <= 0 {
		return nil, fmt.Errorf("drive: trackWidth must be positive, got %v", trackWidth)
	}
	if wheelRadius <= 0 {
		return nil, fmt.Errorf("drive: wheelRadius must be positive, got %v", wheelRadius)
	}
	if gearRatio == 0 {
		return nil, fmt.Errorf("drive: gearRatio must be nonzero, got %v", gearRatio)
	}

	k := gearRatio / wheelRadius
	half := trackWidth / 2

	// motor velocity (rad/s) = k*vx -/+ k*half*omega, left then right
	motorVelFromBotVel := newDense(2, 3, []float64{
		k, 0, -k * half,
		k, 0, k * half,
	})
	// the kinematic mapping is linear, so the acceleration matrix is identical
	motorAccelFromBotAccel := newDense(2, 3, []float64{
		k, 0, -k * half,
		k, 0, k * half,
	})

	voltsFromMotorVel := newDense(2, 2, []float64{
		motorVoltsPerRPS, 0,
		0, motorVoltsPerRPS,
	})
	voltsFromMotorAccel := newDense(2, 2, []float64{
		motorVoltsPerAccel, 0,
		0, motorVoltsPerAccel,
	})

	return NewModel(motorVelFromBotVel, motorAccelFromBotAccel, voltsFromMotorAccel, voltsFromMotorVel, nil, nil)
}

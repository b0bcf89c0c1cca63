package core

// Motor is one L298-style brushed DC motor channel: a PWM enable pin and
// a pair of direction inputs.
type Motor struct {
	pwm PWMPin
	in1 GPIOPin
	in2 GPIOPin
}

// NewMotor configures the output pins for one motor channel.
func NewMotor(pwm PWMPin, in1, in2 GPIOPin) (*Motor, error) {
	if err := MustPWM().ConfigurePWM(pwm); err != nil {
		return nil, err
	}
	if err := MustGPIO().ConfigureOutput(in1); err != nil {
		return nil, err
	}
	if err := MustGPIO().ConfigureOutput(in2); err != nil {
		return nil, err
	}
	m := &Motor{pwm: pwm, in1: in1, in2: in2}
	m.Stop()
	return m, nil
}

// Drive sets the motor speed in [-CmdMax, CmdMax]. Zero asserts an
// active brake: both direction inputs low with zero duty. Otherwise
// exactly one direction input is asserted and the duty cycle is
// proportional to |speed|/CmdMax.
func (m *Motor) Drive(speed int) {
	g := MustGPIO()
	p := MustPWM()

	if speed == 0 {
		_ = g.SetPin(m.in1, false)
		_ = g.SetPin(m.in2, false)
		_ = p.SetDutyCycle(m.pwm, 0)
		return
	}

	forward := speed > 0
	if !forward {
		speed = -speed
	}
	if speed > CmdMax {
		speed = CmdMax
	}

	_ = g.SetPin(m.in1, forward)
	_ = g.SetPin(m.in2, !forward)
	_ = p.SetDutyCycle(m.pwm, uint32(speed)*p.GetMaxValue()/CmdMax)
}

// Stop asserts the active brake.
func (m *Motor) Stop() {
	m.Drive(0)
}

// MotorPair drives both gantry motors from one mixed command pair.
type MotorPair struct {
	A *Motor
	B *Motor
}

// Drive applies one drive value per motor.
func (p *MotorPair) Drive(a, b int) {
	p.A.Drive(a)
	p.B.Drive(b)
}

// Stop brakes both motors.
func (p *MotorPair) Stop() {
	p.A.Stop()
	p.B.Stop()
}

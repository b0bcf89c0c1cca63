// H-bot drive mixing. The two motors are mechanically coupled: equal
// speeds translate the carriage along the X axis, opposite speeds along
// the Y axis. Axis commands therefore mix as sum and difference.
package core

// MixHBot converts axis commands into per-motor drive values, each
// clamped to [-CmdMax, CmdMax].
func MixHBot(xCmd, yCmd int) (motorA, motorB int) {
	return clampCmd(xCmd + yCmd), clampCmd(xCmd - yCmd)
}

// LimitState holds the two limit-switch samples for one tick.
type LimitState struct {
	XAtLimit bool
	YAtLimit bool
}

// LimitSwitches samples the axis travel-limit inputs.
type LimitSwitches struct {
	xPin GPIOPin
	yPin GPIOPin
}

// NewLimitSwitches configures both limit inputs with pull-ups.
func NewLimitSwitches(x, y GPIOPin) (*LimitSwitches, error) {
	if err := MustGPIO().ConfigureInputPullUp(x); err != nil {
		return nil, err
	}
	if err := MustGPIO().ConfigureInputPullUp(y); err != nil {
		return nil, err
	}
	return &LimitSwitches{xPin: x, yPin: y}, nil
}

// Read samples both switches. A high pin means the axis sits on its
// travel extreme.
func (l *LimitSwitches) Read() LimitState {
	g := MustGPIO()
	return LimitState{
		XAtLimit: g.ReadPin(l.xPin),
		YAtLimit: g.ReadPin(l.yPin),
	}
}

// ApplyLimitVeto zeroes any axis command that would drive deeper into an
// already-triggered limit switch. Homing approaches both limits in the
// negative direction, so negative commands are the blocked ones;
// retraction away from a held switch stays permitted.
func ApplyLimitVeto(xCmd, yCmd int, limits LimitState) (int, int) {
	if limits.XAtLimit && xCmd < 0 {
		xCmd = 0
	}
	if limits.YAtLimit && yCmd < 0 {
		yCmd = 0
	}
	return xCmd, yCmd
}

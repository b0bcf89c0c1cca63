// Analog joystick conditioning: oversampled ADC reads, an exponential
// moving average across ticks, a deadzone around the resting midpoint,
// and a sign-preserving quadratic response curve. The quadratic curve is
// deliberate: fine control near center, fast traversal at the extremes.
package core

// AxisFilter converts raw potentiometer samples for one axis into a
// stable command in [-CmdMax, CmdMax]. Its smoothing state persists
// across ticks and is owned exclusively by this filter.
type AxisFilter struct {
	ch       ADCChannel
	midpoint int
	deadzone int
	alpha    float64
	samples  int

	smoothed float64
	primed   bool
}

// NewAxisFilter prepares the ADC channel and returns a filter configured
// from the station tuning parameters.
func NewAxisFilter(ch ADCChannel, cfg *StationConfig) (*AxisFilter, error) {
	if err := MustADC().ConfigureChannel(ch); err != nil {
		return nil, err
	}
	return &AxisFilter{
		ch:       ch,
		midpoint: cfg.ADCMax / 2,
		deadzone: cfg.Deadzone,
		alpha:    cfg.Alpha,
		samples:  cfg.Oversample,
	}, nil
}

// Sample reads the axis once and returns the filtered command. The
// function is total: failed or out-of-range reads can only pull the
// result toward the clamped range, never produce an error.
func (f *AxisFilter) Sample() int {
	sum := 0
	n := 0
	for i := 0; i < f.samples; i++ {
		v, err := MustADC().ReadRaw(f.ch)
		if err != nil {
			continue
		}
		sum += int(v)
		n++
	}
	if n == 0 {
		// Every read failed this tick; hold the previous smoothed value.
		return f.command()
	}
	avg := float64(sum) / float64(n)

	// EMA initialized to the first observed average so there is no
	// warm-up transient from zero.
	if !f.primed {
		f.smoothed = avg
		f.primed = true
	} else {
		f.smoothed = f.smoothed*(1-f.alpha) + avg*f.alpha
	}
	return f.command()
}

// command maps the smoothed reading through deadzone and response curve.
func (f *AxisFilter) command() int {
	centered := f.smoothed - float64(f.midpoint)
	if centered > -float64(f.deadzone) && centered < float64(f.deadzone) {
		return 0
	}

	norm := centered / float64(f.midpoint)
	scaled := norm * norm * float64(CmdMax)
	if norm < 0 {
		scaled = -scaled
	}
	return clampCmd(int(scaled))
}

// clampCmd clips a command to [-CmdMax, CmdMax].
func clampCmd(v int) int {
	if v > CmdMax {
		return CmdMax
	}
	if v < -CmdMax {
		return -CmdMax
	}
	return v
}

package core

// magnetMode tracks which drive the electromagnet is currently under.
type magnetMode uint8

const (
	magnetOff magnetMode = iota
	magnetForward
	magnetReverseHold
	magnetReversePulse
)

// Magnet drives the pickup electromagnet through an H-bridge channel:
// an enable line plus forward and reverse polarity lines. Forward
// polarity attracts a plate; reverse polarity cancels residual
// magnetism so the plate actually drops.
type Magnet struct {
	enable GPIOPin
	fwd    GPIOPin
	rev    GPIOPin

	pulseMS  uint32
	mode     magnetMode
	pulseEnd uint32
}

// NewMagnet configures the three magnet lines and leaves them all low.
func NewMagnet(enable, fwd, rev GPIOPin, pulseMS uint32) (*Magnet, error) {
	g := MustGPIO()
	for _, pin := range []GPIOPin{enable, fwd, rev} {
		if err := g.ConfigureOutput(pin); err != nil {
			return nil, err
		}
	}
	m := &Magnet{enable: enable, fwd: fwd, rev: rev, pulseMS: pulseMS}
	m.Off()
	return m, nil
}

// Engage energizes the magnet in the attracting polarity.
func (m *Magnet) Engage() {
	g := MustGPIO()
	_ = g.SetPin(m.rev, false)
	_ = g.SetPin(m.fwd, true)
	_ = g.SetPin(m.enable, true)
	m.mode = magnetForward
}

// HoldRelease reverses polarity and keeps it applied. Used after the
// first plate: the field stays reversed until the next pickup so the
// plate cannot re-attach while the carriage moves away.
func (m *Magnet) HoldRelease() {
	g := MustGPIO()
	_ = g.SetPin(m.fwd, false)
	_ = g.SetPin(m.rev, true)
	_ = g.SetPin(m.enable, true)
	m.mode = magnetReverseHold
}

// FinalRelease reverses polarity for a fixed pulse, then Tick turns the
// magnet fully off. Used for the last plate of the run.
func (m *Magnet) FinalRelease(now uint32) {
	g := MustGPIO()
	_ = g.SetPin(m.fwd, false)
	_ = g.SetPin(m.rev, true)
	_ = g.SetPin(m.enable, true)
	m.mode = magnetReversePulse
	m.pulseEnd = now + m.pulseMS
}

// Tick expires a pending release pulse. Safe to call every cycle in any
// mode.
func (m *Magnet) Tick(now uint32) {
	if m.mode == magnetReversePulse && deadlineReached(now, m.pulseEnd) {
		m.Off()
	}
}

// Off drops all three lines.
func (m *Magnet) Off() {
	g := MustGPIO()
	_ = g.SetPin(m.enable, false)
	_ = g.SetPin(m.fwd, false)
	_ = g.SetPin(m.rev, false)
	m.mode = magnetOff
}

// Engaged reports whether the magnet is holding a plate.
func (m *Magnet) Engaged() bool {
	return m.mode == magnetForward
}

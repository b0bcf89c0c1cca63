package core

// Buzzer pulse lengths for the audible cues, milliseconds.
const (
	BeepDetectMS    uint32 = 100
	BeepConfirmMS   uint32 = 200
	BeepPlacementMS uint32 = 500
	BeepCompleteMS  uint32 = 1000
)

// Beeper drives the buzzer without blocking: Beep arms a pulse and Tick
// ends it once the duration elapses.
type Beeper struct {
	pin    GPIOPin
	active bool
	offAt  uint32
}

// NewBeeper configures the buzzer output.
func NewBeeper(pin GPIOPin) (*Beeper, error) {
	if err := MustGPIO().ConfigureOutput(pin); err != nil {
		return nil, err
	}
	return &Beeper{pin: pin}, nil
}

// Beep starts a pulse of the given length. A new pulse replaces any
// pulse still in flight.
func (b *Beeper) Beep(now, durationMS uint32) {
	_ = MustGPIO().SetPin(b.pin, true)
	b.active = true
	b.offAt = now + durationMS
}

// Tick silences the buzzer once the armed pulse has elapsed.
func (b *Beeper) Tick(now uint32) {
	if b.active && deadlineReached(now, b.offAt) {
		_ = MustGPIO().SetPin(b.pin, false)
		b.active = false
	}
}

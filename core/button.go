package core

// Button debounces the operator confirm button. The input is active
// low; Pressed reports rising edges of the logical press.
type Button struct {
	pin        GPIOPin
	debounceMS uint32

	lastPress uint32
	lastState bool
}

// NewButton configures the button input with a pull-up.
func NewButton(pin GPIOPin, debounceMS uint32) (*Button, error) {
	if err := MustGPIO().ConfigureInputPullUp(pin); err != nil {
		return nil, err
	}
	return &Button{pin: pin, debounceMS: debounceMS}, nil
}

// Pressed samples the button and reports a debounced press edge. Must
// be called every tick to track edges correctly.
func (b *Button) Pressed(now uint32) bool {
	cur := !MustGPIO().ReadPin(b.pin)
	pressed := cur && !b.lastState && now-b.lastPress > b.debounceMS
	if pressed {
		b.lastPress = now
	}
	b.lastState = cur
	return pressed
}

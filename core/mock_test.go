package core

// Mock hardware drivers for exercising the control core off-target.

type mockGPIODriver struct {
	pins   map[GPIOPin]bool // output levels written by the code under test
	inputs map[GPIOPin]bool // input levels presented to the code under test
}

func newMockGPIO() *mockGPIODriver {
	return &mockGPIODriver{
		pins:   make(map[GPIOPin]bool),
		inputs: make(map[GPIOPin]bool),
	}
}

func (m *mockGPIODriver) ConfigureOutput(pin GPIOPin) error      { return nil }
func (m *mockGPIODriver) ConfigureInputPullUp(pin GPIOPin) error { return nil }

func (m *mockGPIODriver) SetPin(pin GPIOPin, value bool) error {
	m.pins[pin] = value
	return nil
}

func (m *mockGPIODriver) ReadPin(pin GPIOPin) bool {
	return m.inputs[pin]
}

type mockADCDriver struct {
	values map[ADCChannel]uint16
}

func newMockADC() *mockADCDriver {
	return &mockADCDriver{values: make(map[ADCChannel]uint16)}
}

func (m *mockADCDriver) ConfigureChannel(ch ADCChannel) error { return nil }

func (m *mockADCDriver) ReadRaw(ch ADCChannel) (uint16, error) {
	return m.values[ch], nil
}

type mockPWMDriver struct {
	duty map[PWMPin]uint32
}

func newMockPWM() *mockPWMDriver {
	return &mockPWMDriver{duty: make(map[PWMPin]uint32)}
}

func (m *mockPWMDriver) ConfigurePWM(pin PWMPin) error { return nil }

func (m *mockPWMDriver) SetDutyCycle(pin PWMPin, value uint32) error {
	m.duty[pin] = value
	return nil
}

func (m *mockPWMDriver) GetMaxValue() uint32 { return 255 }

// setupMockHAL registers fresh mock drivers and returns them for
// inspection. Tests share the package singletons, so every test that
// touches hardware must call this first.
func setupMockHAL() (*mockGPIODriver, *mockADCDriver, *mockPWMDriver) {
	g := newMockGPIO()
	a := newMockADC()
	p := newMockPWM()
	SetGPIODriver(g)
	SetADCDriver(a)
	SetPWMDriver(p)
	return g, a, p
}

// testConfig mirrors the reference wiring and tuning. Kept in-package
// because the config loader imports this package.
func testConfig() *StationConfig {
	return &StationConfig{
		Pins: PinConfig{
			PotX: 0, PotY: 1,
			MotorAPWM: 15, MotorAIn1: 17, MotorAIn2: 16,
			MotorBPWM: 13, MotorBIn1: 19, MotorBIn2: 18,
			LimitX: 6, LimitY: 7,
			MagnetEnable: 8, MagnetFwd: 9, MagnetRev: 12,
			Button: 22, Buzzer: 10, UVLed: 11,
		},
		ADCMax:     4095,
		Deadzone:   600,
		Alpha:      0.3,
		Oversample: 8,

		TickMS:         10,
		DwellMS:        5000,
		PickSettleMS:   1000,
		ReleasePulseMS: 1000,
		DebounceMS:     50,

		HomingSpeed:    100,
		HomingSettleMS: 500,

		Sequence: [4]int{5, 4, 3, 2},
		PlateIDs: [2]int{1, 2},
	}
}

package core

import "testing"

func newTestHoming(t *testing.T, cfg *StationConfig) (*Homing, *mockGPIODriver, *mockPWMDriver) {
	t.Helper()
	g, _, p := setupMockHAL()

	a, err := NewMotor(cfg.Pins.MotorAPWM, cfg.Pins.MotorAIn1, cfg.Pins.MotorAIn2)
	if err != nil {
		t.Fatalf("NewMotor A: %v", err)
	}
	b, err := NewMotor(cfg.Pins.MotorBPWM, cfg.Pins.MotorBIn1, cfg.Pins.MotorBIn2)
	if err != nil {
		t.Fatalf("NewMotor B: %v", err)
	}
	limits, err := NewLimitSwitches(cfg.Pins.LimitX, cfg.Pins.LimitY)
	if err != nil {
		t.Fatalf("NewLimitSwitches: %v", err)
	}
	beeper, err := NewBeeper(cfg.Pins.Buzzer)
	if err != nil {
		t.Fatalf("NewBeeper: %v", err)
	}
	return NewHoming(&MotorPair{A: a, B: b}, limits, beeper, cfg), g, p
}

func TestHomingSequence(t *testing.T) {
	cfg := testConfig()
	h, g, p := newTestHoming(t, cfg)

	// Seek X: both motors driven toward the limit.
	if h.Tick(0) {
		t.Fatal("done before either axis homed")
	}
	if p.duty[cfg.Pins.MotorAPWM] == 0 || p.duty[cfg.Pins.MotorBPWM] == 0 {
		t.Fatal("motors idle during X seek")
	}

	// X switch triggers: motors brake, settle starts.
	g.inputs[cfg.Pins.LimitX] = true
	if h.Tick(100) {
		t.Fatal("done right after X trigger")
	}
	if p.duty[cfg.Pins.MotorAPWM] != 0 || p.duty[cfg.Pins.MotorBPWM] != 0 {
		t.Fatal("motors not braked during X settle")
	}

	// Still settling.
	if h.Tick(400) {
		t.Fatal("done during X settle")
	}
	if p.duty[cfg.Pins.MotorAPWM] != 0 {
		t.Fatal("motors driven during X settle")
	}

	// Settle over: Y seek begins, opposite motor phasing.
	if h.Tick(600) {
		t.Fatal("done before Y homed")
	}
	if h.Tick(610) {
		t.Fatal("done while Y still seeking")
	}
	if p.duty[cfg.Pins.MotorAPWM] == 0 || p.duty[cfg.Pins.MotorBPWM] == 0 {
		t.Fatal("motors idle during Y seek")
	}

	g.inputs[cfg.Pins.LimitY] = true
	if h.Tick(700) {
		t.Fatal("done right after Y trigger")
	}

	if !h.Tick(1200) {
		t.Fatal("not done after Y settle elapsed")
	}
	if !h.Done() {
		t.Fatal("Done false after completion")
	}

	// Completed sequence stays completed.
	if !h.Tick(2000) {
		t.Fatal("completion did not latch")
	}
}

func TestHomingTimeoutRestartsApproach(t *testing.T) {
	cfg := testConfig()
	cfg.HomingTimeoutMS = 1000
	h, g, p := newTestHoming(t, cfg)

	h.Tick(0)
	if p.duty[cfg.Pins.MotorAPWM] == 0 {
		t.Fatal("motors idle at seek start")
	}

	// Timeout elapses with no switch: motors brake for one tick and the
	// approach restarts instead of wedging.
	h.Tick(1000)
	if p.duty[cfg.Pins.MotorAPWM] != 0 {
		t.Fatal("motors not braked on timeout")
	}
	if !g.pins[cfg.Pins.Buzzer] {
		t.Fatal("timeout retry not announced")
	}
	if h.Done() {
		t.Fatal("done after timeout")
	}

	h.Tick(1010)
	if p.duty[cfg.Pins.MotorAPWM] == 0 {
		t.Fatal("approach not restarted after timeout")
	}

	// The retried approach still completes normally.
	g.inputs[cfg.Pins.LimitX] = true
	h.Tick(1100)
	g.inputs[cfg.Pins.LimitY] = true
	h.Tick(1700)
	h.Tick(1710)
	if !h.Tick(2300) {
		t.Fatal("not done after retried approach")
	}
}

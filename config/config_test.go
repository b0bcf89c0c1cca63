package config

import "testing"

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Pins.PotX != 0 || cfg.Pins.PotY != 1 {
		t.Errorf("pot channels = %d,%d", cfg.Pins.PotX, cfg.Pins.PotY)
	}
	if cfg.Pins.Button != 22 || cfg.Pins.Buzzer != 10 || cfg.Pins.UVLed != 11 {
		t.Errorf("aux pins = %d,%d,%d", cfg.Pins.Button, cfg.Pins.Buzzer, cfg.Pins.UVLed)
	}
	if cfg.ADCMax != 4095 || cfg.Deadzone != 600 {
		t.Errorf("adc tuning = %d,%d", cfg.ADCMax, cfg.Deadzone)
	}
	if cfg.DwellMS != 5000 || cfg.ReleasePulseMS != 1000 {
		t.Errorf("timing = %d,%d", cfg.DwellMS, cfg.ReleasePulseMS)
	}
	if cfg.Sequence != [4]int{5, 4, 3, 2} {
		t.Errorf("sequence = %v", cfg.Sequence)
	}
	if cfg.PlateIDs != [2]int{1, 2} {
		t.Errorf("plate ids = %v", cfg.PlateIDs)
	}
}

func TestLoadPartialOverride(t *testing.T) {
	cfg, err := Load([]byte(`{
		"deadzone": 800,
		"dwell_ms": 3000,
		"pins": {"pot_x": 2, "pot_y": 3, "button": 22, "buzzer": 10, "uv_led": 11,
			"motor_a_pwm": 15, "motor_a_in1": 17, "motor_a_in2": 16,
			"motor_b_pwm": 13, "motor_b_in1": 19, "motor_b_in2": 18,
			"limit_x": 6, "limit_y": 7,
			"magnet_enable": 8, "magnet_fwd": 9, "magnet_rev": 12}
	}`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Deadzone != 800 {
		t.Errorf("deadzone = %d, want 800", cfg.Deadzone)
	}
	if cfg.DwellMS != 3000 {
		t.Errorf("dwell = %d, want 3000", cfg.DwellMS)
	}
	if cfg.Pins.PotX != 2 || cfg.Pins.PotY != 3 {
		t.Errorf("pot channels = %d,%d", cfg.Pins.PotX, cfg.Pins.PotY)
	}
	// Untouched fields keep their defaults.
	if cfg.ADCMax != 4095 || cfg.Sequence != [4]int{5, 4, 3, 2} {
		t.Errorf("defaults lost: adc_max=%d sequence=%v", cfg.ADCMax, cfg.Sequence)
	}
}

func TestLoadRejectsBadSequence(t *testing.T) {
	if _, err := Load([]byte(`{"sequence": [5, 4, 0, 2]}`)); err == nil {
		t.Fatal("sequence digit 0 accepted")
	}
	if _, err := Load([]byte(`{"sequence": [5, 4, 6, 2]}`)); err == nil {
		t.Fatal("sequence digit 6 accepted")
	}
}

func TestLoadRejectsBadJSON(t *testing.T) {
	if _, err := Load([]byte(`{`)); err != nil {
		return
	}
	t.Fatal("malformed JSON accepted")
}

func TestLoadClampsBadTuning(t *testing.T) {
	cfg, err := Load([]byte(`{"oversample": 0, "smoothing_alpha": 2.5}`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Oversample != 1 {
		t.Errorf("oversample = %d, want 1", cfg.Oversample)
	}
	if cfg.Alpha != 0.3 {
		t.Errorf("alpha = %v, want 0.3", cfg.Alpha)
	}
}

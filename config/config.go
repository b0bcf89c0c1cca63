// Package config loads the station configuration from JSON and applies
// the hardware defaults of the reference build.
package config

import (
	"encoding/json"
	"errors"

	"forgestation/core"
)

var errBadSequence = errors.New("config: sequence digits must be 1-based grid coordinates")

// Load parses a JSON configuration. Absent fields fall back to the
// defaults, so a partial file only overrides what it names.
func Load(data []byte) (*core.StationConfig, error) {
	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration for the reference wiring: the
// Pico pin map the station was built with plus the tuning values that
// shipped with it.
func Default() *core.StationConfig {
	return &core.StationConfig{
		Pins: core.PinConfig{
			PotX: 0,
			PotY: 1,

			MotorAPWM: 15,
			MotorAIn1: 17,
			MotorAIn2: 16,
			MotorBPWM: 13,
			MotorBIn1: 19,
			MotorBIn2: 18,

			LimitX: 6,
			LimitY: 7,

			MagnetEnable: 8,
			MagnetFwd:    9,
			MagnetRev:    12,

			Button: 22,
			Buzzer: 10,
			UVLed:  11,
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
		MotorUnlockMS:  0,

		HomingSpeed:     100,
		HomingSettleMS:  500,
		HomingTimeoutMS: 0,

		Sequence: [4]int{5, 4, 3, 2},
		PlateIDs: [2]int{1, 2},
	}
}

func validate(cfg *core.StationConfig) error {
	for _, d := range cfg.Sequence {
		if d < 1 || d > core.GridSize {
			return errBadSequence
		}
	}
	if cfg.Oversample < 1 {
		cfg.Oversample = 1
	}
	if cfg.Alpha <= 0 || cfg.Alpha > 1 {
		cfg.Alpha = 0.3
	}
	return nil
}

package core

// Grid and command ranges shared across the control core.
const (
	// GridSize is the side length of the placement grid.
	GridSize = 5

	// CmdMax bounds axis commands and motor drive values to [-CmdMax, CmdMax].
	CmdMax = 255
)

// GridPos is a cell on the placement grid, 0-based.
type GridPos struct {
	Row int
	Col int
}

// MarkerObservation is the latest fiducial report from the vision feed.
// Only the feed drain mutates it; newer reports overwrite older ones
// unconditionally.
type MarkerObservation struct {
	ID        int
	Pos       GridPos
	Valid     bool
	UpdatedMS uint32
}

// PlateTarget is the destination cell for one plate.
type PlateTarget struct {
	Target GridPos
	Placed bool
}

// PinConfig maps every digital and analog resource the station uses.
type PinConfig struct {
	PotX ADCChannel `json:"pot_x"`
	PotY ADCChannel `json:"pot_y"`

	MotorAPWM PWMPin  `json:"motor_a_pwm"`
	MotorAIn1 GPIOPin `json:"motor_a_in1"`
	MotorAIn2 GPIOPin `json:"motor_a_in2"`
	MotorBPWM PWMPin  `json:"motor_b_pwm"`
	MotorBIn1 GPIOPin `json:"motor_b_in1"`
	MotorBIn2 GPIOPin `json:"motor_b_in2"`

	LimitX GPIOPin `json:"limit_x"`
	LimitY GPIOPin `json:"limit_y"`

	MagnetEnable GPIOPin `json:"magnet_enable"`
	MagnetFwd    GPIOPin `json:"magnet_fwd"`
	MagnetRev    GPIOPin `json:"magnet_rev"`

	Button GPIOPin `json:"button"`
	Buzzer GPIOPin `json:"buzzer"`
	UVLed  GPIOPin `json:"uv_led"`
}

// StationConfig is the full station configuration. The config package
// fills it from JSON and applies defaults.
type StationConfig struct {
	Pins PinConfig `json:"pins"`

	// Analog input filter
	ADCMax     int     `json:"adc_max"`
	Deadzone   int     `json:"deadzone"`
	Alpha      float64 `json:"smoothing_alpha"`
	Oversample int     `json:"oversample"`

	// Workflow timing, milliseconds
	TickMS         uint32 `json:"tick_ms"`
	DwellMS        uint32 `json:"dwell_ms"`
	PickSettleMS   uint32 `json:"pick_settle_ms"`
	ReleasePulseMS uint32 `json:"release_pulse_ms"`
	DebounceMS     uint32 `json:"debounce_ms"`
	MotorUnlockMS  uint32 `json:"motor_unlock_ms"`

	// Homing
	HomingSpeed     int    `json:"homing_speed"`
	HomingSettleMS  uint32 `json:"homing_settle_ms"`
	HomingTimeoutMS uint32 `json:"homing_timeout_ms"` // 0 disables the travel timeout

	// Plate assignment: the scanned 4-digit sequence (1-based grid
	// coordinates, row then column per plate) and the two expected
	// marker IDs in placement order.
	Sequence [4]int `json:"sequence"`
	PlateIDs [2]int `json:"plate_ids"`
}

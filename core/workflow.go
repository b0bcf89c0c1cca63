// Station workflow: the placement run for two plates. All hardware and
// feed state is owned by one Station value and mutated only from its
// Tick loop, so the package needs no locking.
package core

import (
	"forgestation/feed"
)

// State is the workflow state. Each plate passes through the same
// wait, pick, move and verify stages.
type State uint8

const (
	StateInit State = iota
	StateHoming
	StateWaitPlate1
	StatePickPlate1
	StateMovePlate1
	StateVerifyPlate1
	StateWaitPlate2
	StatePickPlate2
	StateMovePlate2
	StateVerifyPlate2
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "INIT"
	case StateHoming:
		return "HOMING"
	case StateWaitPlate1:
		return "WAIT_PLATE_1"
	case StatePickPlate1:
		return "PICK_PLATE_1"
	case StateMovePlate1:
		return "MOVE_PLATE_1"
	case StateVerifyPlate1:
		return "VERIFY_PLATE_1"
	case StateWaitPlate2:
		return "WAIT_PLATE_2"
	case StatePickPlate2:
		return "PICK_PLATE_2"
	case StateMovePlate2:
		return "MOVE_PLATE_2"
	case StateVerifyPlate2:
		return "VERIFY_PLATE_2"
	case StateComplete:
		return "COMPLETE"
	}
	return "UNKNOWN"
}

// displayRefreshMS throttles periodic screen redraws. State changes
// force an immediate redraw regardless.
const displayRefreshMS = 200

// Per-state data. Exactly one of these may live in Station.data, and
// only while the matching state is active.
type (
	// confirmArmed: a WAIT state has sighted its plate and awaits the button.
	confirmArmed struct{}
	// pickSettle: a PICK state is waiting out the magnet grip time.
	pickSettle struct{ until uint32 }
	// verifyDwell: a VERIFY state's dwell began at start.
	verifyDwell struct{ start uint32 }
)

// Station is the whole control core: input conditioning, motion,
// magnet, feedback devices and the placement workflow.
type Station struct {
	cfg *StationConfig

	joyX   *AxisFilter
	joyY   *AxisFilter
	motors *MotorPair
	limits *LimitSwitches
	magnet *Magnet
	beeper *Beeper
	button *Button
	homing *Homing

	display Display
	uvPin   GPIOPin

	lineBuf feed.LineBuffer
	events  []feed.Event

	obs      MarkerObservation
	plates   [2]PlateTarget
	plateIDs [2]int
	swapped  bool

	state State
	// data carries the variant valid only for the active state; every
	// transition replaces it, so stale fields cannot leak across states.
	data any

	locked   bool
	unlockAt uint32

	lastShowMS uint32
	dirty      bool
}

// NewStation builds the full station from configuration. Drivers must
// be registered before calling.
func NewStation(cfg *StationConfig, display Display) (*Station, error) {
	joyX, err := NewAxisFilter(cfg.Pins.PotX, cfg)
	if err != nil {
		return nil, err
	}
	joyY, err := NewAxisFilter(cfg.Pins.PotY, cfg)
	if err != nil {
		return nil, err
	}
	motorA, err := NewMotor(cfg.Pins.MotorAPWM, cfg.Pins.MotorAIn1, cfg.Pins.MotorAIn2)
	if err != nil {
		return nil, err
	}
	motorB, err := NewMotor(cfg.Pins.MotorBPWM, cfg.Pins.MotorBIn1, cfg.Pins.MotorBIn2)
	if err != nil {
		return nil, err
	}
	motors := &MotorPair{A: motorA, B: motorB}
	limits, err := NewLimitSwitches(cfg.Pins.LimitX, cfg.Pins.LimitY)
	if err != nil {
		return nil, err
	}
	magnet, err := NewMagnet(cfg.Pins.MagnetEnable, cfg.Pins.MagnetFwd, cfg.Pins.MagnetRev, cfg.ReleasePulseMS)
	if err != nil {
		return nil, err
	}
	beeper, err := NewBeeper(cfg.Pins.Buzzer)
	if err != nil {
		return nil, err
	}
	button, err := NewButton(cfg.Pins.Button, cfg.DebounceMS)
	if err != nil {
		return nil, err
	}
	if err := MustGPIO().ConfigureOutput(cfg.Pins.UVLed); err != nil {
		return nil, err
	}

	s := &Station{
		cfg:      cfg,
		joyX:     joyX,
		joyY:     joyY,
		motors:   motors,
		limits:   limits,
		magnet:   magnet,
		beeper:   beeper,
		button:   button,
		homing:   NewHoming(motors, limits, beeper, cfg),
		display:  display,
		uvPin:    cfg.Pins.UVLed,
		plateIDs: cfg.PlateIDs,
		dirty:    true,
	}
	s.loadTargets()
	DebugPrintln("[INIT] forge registry station ready")
	return s, nil
}

// loadTargets decodes the scanned placement sequence. The sequence is
// four 1-based digits: row and column for plate 1, then plate 2.
func (s *Station) loadTargets() {
	seq := s.cfg.Sequence
	s.plates[0].Target = GridPos{Row: seq[0] - 1, Col: seq[1] - 1}
	s.plates[1].Target = GridPos{Row: seq[2] - 1, Col: seq[3] - 1}
}

// State returns the current workflow state.
func (s *Station) State() State {
	return s.state
}

// Ingest feeds raw serial bytes from the vision feed into the line
// parser. Complete lines become queued events consumed on the next
// Tick; malformed lines are logged and dropped.
func (s *Station) Ingest(data []byte) {
	for _, b := range data {
		line, ok := s.lineBuf.Push(b)
		if !ok {
			continue
		}
		ev, ok := feed.ParseLine(line)
		if !ok {
			DebugPrintln("[FEED] discard: " + string(line))
			continue
		}
		s.events = append(s.events, ev)
	}
}

// Tick runs one control cycle: expire device pulses, drain feed events,
// then advance the workflow.
func (s *Station) Tick() {
	now := GetTimeMS()

	s.beeper.Tick(now)
	s.magnet.Tick(now)
	s.drainEvents(now)

	switch s.state {
	case StateInit:
		s.beeper.Beep(now, BeepDetectMS)
		s.setState(StateHoming)
	case StateHoming:
		if s.homing.Tick(now) {
			s.finishHoming(now)
		}
	case StateWaitPlate1:
		s.waitTick(now, 0)
	case StateWaitPlate2:
		s.waitTick(now, 1)
	case StatePickPlate1, StatePickPlate2:
		s.pickTick(now)
	case StateMovePlate1:
		s.moveTick(now, 0)
	case StateMovePlate2:
		s.moveTick(now, 1)
	case StateVerifyPlate1:
		s.verifyTick(now, 0)
	case StateVerifyPlate2:
		s.verifyTick(now, 1)
	case StateComplete:
		// Run is over but the operator keeps manual control.
		s.driveMotors(now)
	}

	s.updateDisplay(now)
}

func (s *Station) finishHoming(now uint32) {
	// The carriage is at the mechanical origin, but the logical position
	// stays unknown until the first feed report rather than being assumed
	// to be cell (0,0); arming the pickup needs a live sighting anyway.
	s.obs = MarkerObservation{}
	if s.cfg.MotorUnlockMS > 0 {
		s.locked = true
		s.unlockAt = now + s.cfg.MotorUnlockMS
		DebugPrintln("[HOME] motors locked for " + utoa(s.cfg.MotorUnlockMS) + " ms")
	}
	s.setState(StateWaitPlate1)
}

// drainEvents applies all queued feed events. Reports always refresh
// the observation; overrides are honored only in states where they make
// sense.
func (s *Station) drainEvents(now uint32) {
	for _, ev := range s.events {
		switch ev.Type {
		case feed.EventReport:
			s.applyReport(ev, now)
		case feed.EventPickup:
			s.handlePickup(ev, now)
		case feed.EventRelease:
			s.handleRelease(now)
		}
	}
	s.events = s.events[:0]
}

func (s *Station) applyReport(ev feed.Event, now uint32) {
	next := MarkerObservation{
		ID:        ev.ID,
		Pos:       GridPos{Row: ev.Row, Col: ev.Col},
		Valid:     true,
		UpdatedMS: now,
	}
	if !s.obs.Valid || next.Pos != s.obs.Pos || next.ID != s.obs.ID {
		s.dirty = true
	}
	s.obs = next
	if debugEnabled {
		DebugPrintln("[FEED] rx id=" + itoa(ev.ID) + " row=" + itoa(ev.Row) + " col=" + itoa(ev.Col))
	}
}

// handlePickup rebinds the active plate: its expected marker becomes
// the directive's ID and its destination becomes the directive's cell,
// superseding the configured target. It never advances the workflow;
// the plate is still picked up through the normal origin sighting and
// confirm press. Ignored once the plate is in transit.
func (s *Station) handlePickup(ev feed.Event, now uint32) {
	var idx int
	switch s.state {
	case StateWaitPlate1, StatePickPlate1:
		idx = 0
	case StateWaitPlate2, StatePickPlate2:
		idx = 1
	default:
		DebugPrintln("[FEED] pickup ignored in " + s.state.String())
		return
	}

	s.plateIDs[idx] = ev.ID
	s.plates[idx].Target = GridPos{Row: ev.Row, Col: ev.Col}
	s.dirty = true
	DebugPrintln("[FEED] pickup rebind id=" + itoa(ev.ID) +
		" target=" + itoa(ev.Row) + "," + itoa(ev.Col))
}

// handleRelease drops the held plate wherever the carriage happens to
// be. Ignored unless a plate is actually in transit.
func (s *Station) handleRelease(now uint32) {
	switch s.state {
	case StateMovePlate1, StateVerifyPlate1:
		DebugPrintln("[FEED] release override")
		s.releasePlate(now, 0)
	case StateMovePlate2, StateVerifyPlate2:
		DebugPrintln("[FEED] release override")
		s.releasePlate(now, 1)
	default:
		DebugPrintln("[FEED] release ignored in " + s.state.String())
	}
}

// waitTick arms on a marker sighted at the pickup cell, then waits for
// the operator's confirm press before engaging the magnet.
func (s *Station) waitTick(now uint32, idx int) {
	pressed := s.button.Pressed(now)

	_, armed := s.data.(*confirmArmed)
	atOrigin := s.obs.Valid && s.obs.Pos == (GridPos{})
	if atOrigin && s.markerExpected(idx) {
		if !armed {
			s.data = &confirmArmed{}
			armed = true
			s.beeper.Beep(now, BeepDetectMS)
			DebugPrintln("[WAIT] plate " + itoa(idx+1) + " detected, press to confirm")
		}
	} else if armed {
		s.data = nil
		armed = false
	}

	if armed && pressed {
		s.bindPlate(idx)
		s.engagePlate(now, idx)
	}
}

// markerExpected reports whether the sighted marker may start this
// plate's pickup. For plate 1 either expected ID is acceptable because
// the operator may stage the plates in the opposite order.
func (s *Station) markerExpected(idx int) bool {
	if s.obs.ID == s.plateIDs[idx] {
		return true
	}
	return idx == 0 && !s.swapped && s.obs.ID == s.plateIDs[1]
}

// bindPlate swaps the placement order once if the operator staged the
// second plate first.
func (s *Station) bindPlate(idx int) {
	if idx == 0 && !s.swapped && s.obs.ID == s.plateIDs[1] {
		s.plateIDs[0], s.plateIDs[1] = s.plateIDs[1], s.plateIDs[0]
		s.plates[0].Target, s.plates[1].Target = s.plates[1].Target, s.plates[0].Target
		s.swapped = true
		DebugPrintln("[WAIT] plate order swapped, leading id=" + itoa(s.plateIDs[0]))
	}
}

func (s *Station) engagePlate(now uint32, idx int) {
	s.magnet.Engage()
	s.beeper.Beep(now, BeepConfirmMS)
	if idx == 0 {
		s.setState(StatePickPlate1)
	} else {
		s.setState(StatePickPlate2)
	}
	s.data = &pickSettle{until: now + s.cfg.PickSettleMS}
}

// pickTick holds position while the magnet seats the plate.
func (s *Station) pickTick(now uint32) {
	s.motors.Stop()
	settle, ok := s.data.(*pickSettle)
	if !ok || !deadlineReached(now, settle.until) {
		return
	}
	if s.state == StatePickPlate1 {
		s.setState(StateMovePlate1)
	} else {
		s.setState(StateMovePlate2)
	}
}

func (s *Station) moveTick(now uint32, idx int) {
	s.driveMotors(now)
	if s.atTarget(idx) {
		if idx == 0 {
			s.setState(StateVerifyPlate1)
		} else {
			s.setState(StateVerifyPlate2)
		}
		s.data = &verifyDwell{start: now}
	}
}

// verifyTick requires the plate to sit on its target cell for the full
// dwell. Any deviation disarms and returns to the move stage.
func (s *Station) verifyTick(now uint32, idx int) {
	s.driveMotors(now)
	if !s.atTarget(idx) {
		if idx == 0 {
			s.setState(StateMovePlate1)
		} else {
			s.setState(StateMovePlate2)
		}
		return
	}
	dwell, ok := s.data.(*verifyDwell)
	if !ok {
		return
	}
	if deadlineReached(now, dwell.start+s.cfg.DwellMS) {
		s.releasePlate(now, idx)
	}
}

func (s *Station) releasePlate(now uint32, idx int) {
	s.motors.Stop()
	s.plates[idx].Placed = true
	if idx == 0 {
		s.magnet.HoldRelease()
		s.beeper.Beep(now, BeepPlacementMS)
		// The stale observation would otherwise instantly re-arm the
		// second pickup.
		s.obs.Valid = false
		s.setState(StateWaitPlate2)
		return
	}
	s.magnet.FinalRelease(now)
	_ = MustGPIO().SetPin(s.uvPin, true)
	s.beeper.Beep(now, BeepCompleteMS)
	s.setState(StateComplete)
}

func (s *Station) atTarget(idx int) bool {
	return s.obs.Valid && s.obs.Pos == s.plates[idx].Target
}

// driveMotors runs one manual-control cycle: sample both pots, veto
// motion into held limit switches, mix and drive. While the post-homing
// lockout is active the motors stay braked.
func (s *Station) driveMotors(now uint32) {
	if s.locked {
		if !deadlineReached(now, s.unlockAt) {
			s.motors.Stop()
			return
		}
		s.locked = false
		s.beeper.Beep(now, BeepConfirmMS)
		DebugPrintln("[STATE] motors unlocked")
	}

	x := s.joyX.Sample()
	y := s.joyY.Sample()
	x, y = ApplyLimitVeto(x, y, s.limits.Read())
	s.motors.Drive(MixHBot(x, y))
}

func (s *Station) setState(next State) {
	DebugPrintln("[STATE] " + s.state.String() + " -> " + next.String())
	s.state = next
	s.data = nil
	s.dirty = true
}

func (s *Station) updateDisplay(now uint32) {
	if s.display == nil {
		return
	}
	if !s.dirty && now-s.lastShowMS < displayRefreshMS {
		return
	}
	line0, line1 := renderStatus(s.state, s.obs, s.activeTarget())
	s.display.Show(line0, line1)
	s.lastShowMS = now
	s.dirty = false
}

func (s *Station) activeTarget() GridPos {
	switch s.state {
	case StateWaitPlate2, StatePickPlate2, StateMovePlate2, StateVerifyPlate2:
		return s.plates[1].Target
	default:
		return s.plates[0].Target
	}
}

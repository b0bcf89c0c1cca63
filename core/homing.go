// Homing drives each axis toward its limit switch in turn, with a short
// settle pause after each trigger. Progress is evaluated once per tick;
// nothing blocks. An optional travel timeout restarts the current
// approach so a missed switch cannot wedge the sequence forever.
package core

type homingPhase uint8

const (
	homeSeekX homingPhase = iota
	homeSettleX
	homeSeekY
	homeSettleY
	homeDone
)

// Homing owns the axis-homing sequence state.
type Homing struct {
	motors *MotorPair
	limits *LimitSwitches
	beeper *Beeper

	speed     int
	settleMS  uint32
	timeoutMS uint32 // 0 disables the timeout

	phase      homingPhase
	phaseStart uint32
	started    bool
}

// NewHoming returns a sequencer that homes X first, then Y. The beeper
// announces timeout retries and may be nil.
func NewHoming(motors *MotorPair, limits *LimitSwitches, beeper *Beeper, cfg *StationConfig) *Homing {
	return &Homing{
		motors:    motors,
		limits:    limits,
		beeper:    beeper,
		speed:     cfg.HomingSpeed,
		settleMS:  cfg.HomingSettleMS,
		timeoutMS: cfg.HomingTimeoutMS,
	}
}

// Tick advances the sequence one step and reports completion. After the
// first true the motors stay stopped and Tick keeps returning true.
func (h *Homing) Tick(now uint32) bool {
	if !h.started {
		h.started = true
		h.phaseStart = now
	}

	switch h.phase {
	case homeSeekX:
		h.seekAxis(now, true)
	case homeSettleX:
		if deadlineReached(now, h.phaseStart+h.settleMS) {
			h.enter(homeSeekY, now)
		}
	case homeSeekY:
		h.seekAxis(now, false)
	case homeSettleY:
		if deadlineReached(now, h.phaseStart+h.settleMS) {
			h.enter(homeDone, now)
			DebugPrintln("[HOME] done")
		}
	case homeDone:
	}
	return h.phase == homeDone
}

// Done reports whether the sequence has finished.
func (h *Homing) Done() bool {
	return h.phase == homeDone
}

func (h *Homing) seekAxis(now uint32, axisX bool) {
	limits := h.limits.Read()
	hit := limits.YAtLimit
	if axisX {
		hit = limits.XAtLimit
	}
	if hit {
		h.motors.Stop()
		if axisX {
			h.enter(homeSettleX, now)
		} else {
			h.enter(homeSettleY, now)
		}
		return
	}

	if h.timeoutMS != 0 && deadlineReached(now, h.phaseStart+h.timeoutMS) {
		h.motors.Stop()
		if h.beeper != nil {
			h.beeper.Beep(now, BeepConfirmMS)
		}
		if axisX {
			DebugPrintln("[HOME] x timeout, retrying")
		} else {
			DebugPrintln("[HOME] y timeout, retrying")
		}
		h.phaseStart = now
		return
	}

	if axisX {
		h.motors.Drive(MixHBot(-h.speed, 0))
	} else {
		h.motors.Drive(MixHBot(0, -h.speed))
	}
}

func (h *Homing) enter(p homingPhase, now uint32) {
	h.phase = p
	h.phaseStart = now
}

package core

// The control core runs on a millisecond tick clock. Target code updates
// it from the hardware timer once per loop pass; tests drive it directly.
var systemMillis uint32

// GetTimeMS returns the current system time in milliseconds since boot.
func GetTimeMS() uint32 {
	return systemMillis
}

// SetTimeMS sets the current system time (for testing/hardware integration)
func SetTimeMS(ms uint32) {
	systemMillis = ms
}

// deadlineReached reports whether now has passed deadline, tolerating
// wraparound of the 32-bit millisecond counter (~49 days).
func deadlineReached(now, deadline uint32) bool {
	return int32(now-deadline) >= 0
}

package core

// DebugWriter is a function type for writing diagnostic messages
type DebugWriter func(string)

var (
	// debugPrintln is the global diagnostic print function (set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether diagnostic output is active
	debugEnabled bool
)

// SetDebugWriter sets the platform-specific diagnostic output function.
// Targets redirect this to USB CDC; the host-side bridge prints whatever
// arrives verbatim.
func SetDebugWriter(writer DebugWriter) {
	if writer != nil {
		debugPrintln = writer
	}
}

// SetDebugEnabled enables or disables diagnostic output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// DebugPrintln writes a diagnostic message using the platform-specific writer
func DebugPrintln(msg string) {
	if debugEnabled {
		debugPrintln(msg)
	}
}

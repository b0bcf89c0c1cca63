// Package feed parses the line-oriented vision feed: marker position
// reports plus the PICKUP and RELEASE overrides. Parsing is allocation
// free so the package runs unchanged on the microcontroller target.
package feed

// EventType discriminates parsed feed lines.
type EventType uint8

const (
	// EventReport carries a marker observation: ID plus grid cell.
	EventReport EventType = iota
	// EventPickup rebinds the expected marker and forces a pickup.
	EventPickup
	// EventRelease forces an immediate drop of the held plate.
	EventRelease
)

// Event is one parsed feed line. ID, Row and Col are meaningful for
// EventReport and EventPickup only.
type Event struct {
	Type EventType
	ID   int
	Row  int
	Col  int
}

const gridMax = 4

// MaxLine bounds the accepted line length. Longer lines are discarded
// whole once their terminator arrives.
const MaxLine = 128

// LineBuffer accumulates feed bytes into newline-terminated lines.
// Carriage returns are ignored so both \n and \r\n framings work.
type LineBuffer struct {
	buf      [MaxLine]byte
	n        int
	overflow bool
}

// Push feeds one byte in. When the byte completes a line, Push returns
// it (without the terminator) and true. The returned slice aliases the
// internal buffer and is only valid until the next Push.
func (lb *LineBuffer) Push(b byte) ([]byte, bool) {
	switch b {
	case '\r':
		return nil, false
	case '\n':
		line := lb.buf[:lb.n]
		dropped := lb.overflow
		lb.n = 0
		lb.overflow = false
		if dropped || len(line) == 0 {
			return nil, false
		}
		return line, true
	}
	if lb.n == MaxLine {
		lb.overflow = true
		return nil, false
	}
	lb.buf[lb.n] = b
	lb.n++
	return nil, false
}

// ParseLine classifies one complete line. Grammars are tried in
// priority order: PICKUP command, RELEASE command, then plain report.
// Malformed lines return ok=false and must be discarded, never treated
// as a report.
func ParseLine(line []byte) (Event, bool) {
	line = trim(line)
	if len(line) == 0 {
		return Event{}, false
	}

	const pickupPrefix = "PICKUP,"
	if hasPrefix(line, pickupPrefix) {
		id, row, col, ok := parseTriple(line[len(pickupPrefix):])
		if !ok {
			return Event{}, false
		}
		return Event{Type: EventPickup, ID: id, Row: row, Col: col}, true
	}

	if string(line) == "RELEASE" {
		return Event{Type: EventRelease}, true
	}

	id, row, col, ok := parseTriple(line)
	if !ok {
		return Event{}, false
	}
	return Event{Type: EventReport, ID: id, Row: row, Col: col}, true
}

// parseTriple parses "<id>,<row>,<col>" with no trailing bytes. Row and
// col must be on-grid.
func parseTriple(s []byte) (id, row, col int, ok bool) {
	id, i, ok := parseInt(s, 0)
	if !ok || i >= len(s) || s[i] != ',' {
		return 0, 0, 0, false
	}
	row, i, ok = parseInt(s, i+1)
	if !ok || i >= len(s) || s[i] != ',' {
		return 0, 0, 0, false
	}
	col, i, ok = parseInt(s, i+1)
	if !ok || i != len(s) {
		return 0, 0, 0, false
	}
	if row < 0 || row > gridMax || col < 0 || col > gridMax {
		return 0, 0, 0, false
	}
	return id, row, col, true
}

// parseInt reads a decimal integer starting at position i and returns
// the value plus the position of the first unconsumed byte.
func parseInt(s []byte, i int) (int, int, bool) {
	neg := false
	if i < len(s) && s[i] == '-' {
		neg = true
		i++
	}
	start := i
	v := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		v = v*10 + int(s[i]-'0')
		i++
	}
	if i == start {
		return 0, i, false
	}
	if neg {
		v = -v
	}
	return v, i, true
}

func trim(s []byte) []byte {
	for len(s) > 0 && (s[0] == ' ' || s[0] == '\t') {
		s = s[1:]
	}
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		s = s[:len(s)-1]
	}
	return s
}

func hasPrefix(s []byte, prefix string) bool {
	return len(s) >= len(prefix) && string(s[:len(prefix)]) == prefix
}

package core

import "testing"

// freshSample builds a new filter and samples it once, so the EMA is
// primed directly to the raw value and the mapping can be checked
// point by point.
func freshSample(t *testing.T, a *mockADCDriver, raw uint16) int {
	t.Helper()
	a.values[0] = raw
	f, err := NewAxisFilter(0, testConfig())
	if err != nil {
		t.Fatalf("NewAxisFilter: %v", err)
	}
	return f.Sample()
}

func TestAxisFilterDeadzone(t *testing.T) {
	_, a, _ := setupMockHAL()

	for _, raw := range []uint16{2047, 1500, 2500, 2047 - 599, 2047 + 599} {
		if got := freshSample(t, a, raw); got != 0 {
			t.Errorf("raw %d: got %d, want 0 inside deadzone", raw, got)
		}
	}
}

func TestAxisFilterSignAndSymmetry(t *testing.T) {
	_, a, _ := setupMockHAL()

	for _, offset := range []uint16{700, 1000, 1500, 2000} {
		pos := freshSample(t, a, 2047+offset)
		neg := freshSample(t, a, 2047-offset)
		if pos <= 0 {
			t.Errorf("offset +%d: got %d, want positive", offset, pos)
		}
		if neg != -pos {
			t.Errorf("offset %d: asymmetric response %d vs %d", offset, pos, neg)
		}
	}
}

func TestAxisFilterMonotonic(t *testing.T) {
	_, a, _ := setupMockHAL()

	prev := 0
	for raw := uint16(2047); raw <= 4000; raw += 100 {
		got := freshSample(t, a, raw)
		if got < prev {
			t.Fatalf("raw %d: command %d dropped below previous %d", raw, got, prev)
		}
		prev = got
	}
}

func TestAxisFilterClampsExtremes(t *testing.T) {
	_, a, _ := setupMockHAL()

	if got := freshSample(t, a, 4095); got != CmdMax {
		t.Errorf("full deflection: got %d, want %d", got, CmdMax)
	}
	if got := freshSample(t, a, 0); got != -CmdMax {
		t.Errorf("full reverse deflection: got %d, want %d", got, -CmdMax)
	}
}

func TestAxisFilterSmoothsSteps(t *testing.T) {
	_, a, _ := setupMockHAL()

	a.values[0] = 2047
	f, err := NewAxisFilter(0, testConfig())
	if err != nil {
		t.Fatalf("NewAxisFilter: %v", err)
	}
	if got := f.Sample(); got != 0 {
		t.Fatalf("at rest: got %d, want 0", got)
	}

	// A step to full deflection must not pass through in one tick.
	a.values[0] = 4095
	first := f.Sample()
	if first <= 0 || first >= CmdMax {
		t.Fatalf("one tick after step: got %d, want partial response", first)
	}

	last := first
	for i := 0; i < 50; i++ {
		last = f.Sample()
	}
	if last != CmdMax {
		t.Errorf("after settling: got %d, want %d", last, CmdMax)
	}
}

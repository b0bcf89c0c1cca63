// Hardware-in-the-loop check for the station firmware. Runs only when
// FORGE_TESTER_PORT names a serial device with a flashed board behind
// it.
package main_test

import (
	"os"
	"strings"
	"testing"
	"time"

	"go.bug.st/serial"
)

func TestFeedReportEcho(t *testing.T) {
	device := os.Getenv("FORGE_TESTER_PORT")
	if device == "" {
		t.Skip("FORGE_TESTER_PORT not set")
	}

	mode := &serial.Mode{BaudRate: 115200}
	port, err := serial.Open(device, mode)
	if err != nil {
		t.Fatalf("open %s: %v", device, err)
	}
	defer port.Close()

	if err := port.SetReadTimeout(2 * time.Second); err != nil {
		t.Fatalf("set read timeout: %v", err)
	}

	if _, err := port.Write([]byte("7,2,3\n")); err != nil {
		t.Fatalf("write report: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	var got strings.Builder
	buf := make([]byte, 256)
	for time.Now().Before(deadline) {
		n, err := port.Read(buf)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		got.Write(buf[:n])
		if strings.Contains(got.String(), "[FEED] rx id=7 row=2 col=3") {
			return
		}
	}
	t.Fatalf("report echo not seen, firmware output:\n%s", got.String())
}

// Package serial opens the station's USB serial port from a host
// machine.
package serial

import (
	"io"
	"time"

	"github.com/tarm/serial"
)

// Port is an open connection to the station.
type Port interface {
	io.ReadWriteCloser
	Flush() error
}

// Config holds the connection parameters.
type Config struct {
	Device      string
	Baud        int
	ReadTimeout time.Duration
}

// DefaultConfig matches the firmware's USB CDC settings.
func DefaultConfig(device string) Config {
	return Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 100 * time.Millisecond,
	}
}

// Open connects to the station.
func Open(cfg Config) (Port, error) {
	p, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: cfg.ReadTimeout,
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

//go:build rp2040

// Firmware entry point for the Raspberry Pi Pico build of the plate
// placement station. Wires the hardware drivers into the control core
// and runs the tick loop, feeding it vision-feed bytes from USB serial.
package main

import (
	"machine"
	"time"

	"forgestation/config"
	"forgestation/core"
)

func main() {
	// Give USB a moment to enumerate so early log lines are not lost.
	time.Sleep(2 * time.Second)

	core.SetGPIODriver(&RPGPIODriver{})
	core.SetADCDriver(NewRPADCDriver())
	core.SetPWMDriver(NewRPPWMDriver())
	core.SetDebugWriter(func(msg string) { println(msg) })
	core.SetDebugEnabled(true)

	cfg := config.Default()

	var display core.Display
	lcd, err := NewLCD()
	if err != nil {
		println("[LCD] init failed, running headless")
	} else {
		display = lcd
	}

	station, err := core.NewStation(cfg, display)
	if err != nil {
		println("[INIT] " + err.Error())
		for {
			time.Sleep(time.Second)
		}
	}

	start := time.Now()
	buf := make([]byte, 64)
	for {
		n := 0
		for machine.Serial.Buffered() > 0 && n < len(buf) {
			b, err := machine.Serial.ReadByte()
			if err != nil {
				break
			}
			buf[n] = b
			n++
		}
		if n > 0 {
			station.Ingest(buf[:n])
		}

		core.SetTimeMS(uint32(time.Since(start).Milliseconds()))
		station.Tick()

		time.Sleep(time.Duration(cfg.TickMS) * time.Millisecond)
	}
}

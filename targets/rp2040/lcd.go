//go:build rp2040

package main

import (
	"machine"

	"tinygo.org/x/drivers/hd44780i2c"
)

const lcdAddr = 0x27

// LCD adapts the I2C character display to the station's Display
// interface.
type LCD struct {
	dev hd44780i2c.Device
}

func NewLCD() (*LCD, error) {
	err := machine.I2C0.Configure(machine.I2CConfig{
		Frequency: 100e3,
		SDA:       machine.GP0,
		SCL:       machine.GP1,
	})
	if err != nil {
		return nil, err
	}
	dev := hd44780i2c.New(machine.I2C0, lcdAddr)
	err = dev.Configure(hd44780i2c.Config{
		Width:  16,
		Height: 2,
	})
	if err != nil {
		return nil, err
	}
	return &LCD{dev: dev}, nil
}

func (l *LCD) Show(line0, line1 string) {
	l.dev.ClearDisplay()
	l.dev.SetCursor(0, 0)
	l.dev.Print([]byte(line0))
	l.dev.SetCursor(0, 1)
	l.dev.Print([]byte(line1))
}

//go:build rp2040

package main

import (
	"machine"

	"forgestation/core"
)

// RPGPIODriver maps the HAL GPIO interface directly onto machine.Pin.
type RPGPIODriver struct{}

func (d *RPGPIODriver) ConfigureOutput(pin core.GPIOPin) error {
	machine.Pin(pin).Configure(machine.PinConfig{Mode: machine.PinOutput})
	return nil
}

func (d *RPGPIODriver) ConfigureInputPullUp(pin core.GPIOPin) error {
	machine.Pin(pin).Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return nil
}

func (d *RPGPIODriver) SetPin(pin core.GPIOPin, high bool) error {
	machine.Pin(pin).Set(high)
	return nil
}

func (d *RPGPIODriver) ReadPin(pin core.GPIOPin) bool {
	return machine.Pin(pin).Get()
}

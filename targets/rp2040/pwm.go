//go:build rp2040

package main

import (
	"errors"
	"machine"

	"forgestation/core"
)

var errNoPWMSlice = errors.New("pwm: no slice for pin")

// pwmPeripheral is the slice of machine.PWMn used by this driver.
type pwmPeripheral interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

// RPPWMDriver drives motor enable pins through the RP2040 PWM slices.
type RPPWMDriver struct {
	channels map[core.PWMPin]struct {
		slice pwmPeripheral
		ch    uint8
	}
}

func NewRPPWMDriver() *RPPWMDriver {
	return &RPPWMDriver{
		channels: make(map[core.PWMPin]struct {
			slice pwmPeripheral
			ch    uint8
		}),
	}
}

func sliceFor(pin core.PWMPin) pwmPeripheral {
	switch (pin >> 1) & 7 {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	case 7:
		return machine.PWM7
	}
	return nil
}

func (d *RPPWMDriver) ConfigurePWM(pin core.PWMPin) error {
	slice := sliceFor(pin)
	if slice == nil {
		return errNoPWMSlice
	}
	if err := slice.Configure(machine.PWMConfig{Period: 1e9 / 25000}); err != nil {
		return err
	}
	ch, err := slice.Channel(machine.Pin(pin))
	if err != nil {
		return err
	}
	d.channels[pin] = struct {
		slice pwmPeripheral
		ch    uint8
	}{slice, ch}
	return nil
}

// SetDutyCycle expects a value in [0, GetMaxValue()].
func (d *RPPWMDriver) SetDutyCycle(pin core.PWMPin, value uint32) error {
	entry, ok := d.channels[pin]
	if !ok {
		return errNoPWMSlice
	}
	if value > d.GetMaxValue() {
		value = d.GetMaxValue()
	}
	entry.slice.Set(entry.ch, value*entry.slice.Top()/d.GetMaxValue())
	return nil
}

func (d *RPPWMDriver) GetMaxValue() uint32 {
	return 255
}

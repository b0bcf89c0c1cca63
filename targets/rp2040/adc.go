//go:build rp2040

package main

import (
	"errors"
	"machine"

	"forgestation/core"
)

var errBadADCChannel = errors.New("adc: channel out of range")

// RPADCDriver reads the RP2040 ADC inputs GP26 to GP29.
type RPADCDriver struct {
	channels [4]machine.ADC
}

func NewRPADCDriver() *RPADCDriver {
	machine.InitADC()
	return &RPADCDriver{
		channels: [4]machine.ADC{
			{Pin: machine.ADC0},
			{Pin: machine.ADC1},
			{Pin: machine.ADC2},
			{Pin: machine.ADC3},
		},
	}
}

func (d *RPADCDriver) ConfigureChannel(ch core.ADCChannel) error {
	if int(ch) >= len(d.channels) {
		return errBadADCChannel
	}
	d.channels[ch].Configure(machine.ADCConfig{})
	return nil
}

// ReadRaw returns the 12-bit conversion. machine.ADC.Get reports a
// left-justified 16-bit value, so shift back down.
func (d *RPADCDriver) ReadRaw(ch core.ADCChannel) (uint16, error) {
	if int(ch) >= len(d.channels) {
		return 0, errBadADCChannel
	}
	return d.channels[ch].Get() >> 4, nil
}

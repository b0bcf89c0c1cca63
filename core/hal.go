// Hardware abstraction seams for the control core.
// Platform-specific code under targets/ registers concrete drivers at
// startup; everything in this package talks to hardware only through
// these interfaces, which keeps the control logic testable off-target.
package core

// GPIOPin identifies a hardware GPIO pin number
type GPIOPin uint32

// GPIODriver is the abstract GPIO interface that core code uses.
type GPIODriver interface {
	// ConfigureOutput configures a pin as a digital output
	ConfigureOutput(pin GPIOPin) error

	// ConfigureInputPullUp configures a pin as a digital input with pull-up resistor
	ConfigureInputPullUp(pin GPIOPin) error

	// SetPin sets the pin to high (true) or low (false)
	SetPin(pin GPIOPin, value bool) error

	// ReadPin reads the current pin state
	ReadPin(pin GPIOPin) bool
}

// ADCChannel identifies a logical ADC input channel.
type ADCChannel uint8

// ADCDriver is the abstract ADC interface that core code uses.
type ADCDriver interface {
	// ConfigureChannel prepares a channel for analog input.
	ConfigureChannel(ch ADCChannel) error

	// ReadRaw performs a one-shot sample from the given channel.
	// Returns the raw converter value (12-bit on the RP2040, 0-4095).
	ReadRaw(ch ADCChannel) (uint16, error)
}

// PWMPin identifies a hardware pin capable of PWM output.
type PWMPin uint32

// PWMDriver is the abstract PWM interface that core code uses.
type PWMDriver interface {
	// ConfigurePWM configures a pin for hardware PWM output.
	ConfigurePWM(pin PWMPin) error

	// SetDutyCycle sets the duty cycle for a pin,
	// from 0 (fully off) to GetMaxValue() (fully on).
	SetDutyCycle(pin PWMPin, value uint32) error

	// GetMaxValue returns the maximum duty cycle value (e.g. 255 for 8-bit).
	GetMaxValue() uint32
}

// Global singletons used by core code.
var (
	gpioDriver GPIODriver
	adcDriver  ADCDriver
	pwmDriver  PWMDriver
)

// SetGPIODriver is called by target-specific code to register its driver.
func SetGPIODriver(d GPIODriver) {
	gpioDriver = d
}

// MustGPIO returns the configured driver or panics if missing.
func MustGPIO() GPIODriver {
	if gpioDriver == nil {
		panic("GPIO driver not configured")
	}
	return gpioDriver
}

// SetADCDriver is called by target-specific code to register its driver.
func SetADCDriver(d ADCDriver) {
	adcDriver = d
}

// MustADC returns the configured driver or panics if missing.
func MustADC() ADCDriver {
	if adcDriver == nil {
		panic("ADC driver not configured")
	}
	return adcDriver
}

// SetPWMDriver is called by target-specific code to register its driver.
func SetPWMDriver(d PWMDriver) {
	pwmDriver = d
}

// MustPWM returns the configured driver or panics if missing.
func MustPWM() PWMDriver {
	if pwmDriver == nil {
		panic("PWM driver not configured")
	}
	return pwmDriver
}

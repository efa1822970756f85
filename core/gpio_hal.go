package core

import "errors"

// ErrPinNotConfigured is returned by drivers for a pin that was never set up
// as an output
var ErrPinNotConfigured = errors.New("pin not configured as output")

// GPIOPin identifies a hardware GPIO pin number
type GPIOPin uint32

// OutputMode selects the electrical drive of an output line
type OutputMode uint8

const (
	// OpenDrain pulls low and floats high; the level relies on a pull-up.
	OpenDrain OutputMode = iota
	// PushPull actively drives both levels.
	PushPull
)

func (m OutputMode) String() string {
	switch m {
	case OpenDrain:
		return "open-drain"
	case PushPull:
		return "push-pull"
	}
	return "unknown"
}

// GPIODriver is the abstract GPIO interface that core code uses.
// Platform-specific implementations handle actual hardware control.
type GPIODriver interface {
	// ConfigureOutput enables the port clock, sets the initial level and
	// then switches the pin to output mode, in that order
	ConfigureOutput(pin GPIOPin, mode OutputMode, initial bool) error

	// Toggle flips the output level in a single hardware write
	Toggle(pin GPIOPin) error

	// Get reads back the current output level
	Get(pin GPIOPin) (bool, error)
}

// Global singleton used by core code.
var gpioDriver GPIODriver

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

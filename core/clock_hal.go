package core

// ClockDriver brings up the clock tree of one MCU family.
// Platform-specific implementations handle the actual register sequence.
type ClockDriver interface {
	// Configure switches the core to its target frequency.
	// Returns an error if the oscillator, PLL or clock switch does not
	// report ready. There is no fallback clock tree.
	Configure() error

	// CoreFrequency returns the core clock frequency in Hz
	CoreFrequency() uint32
}

var (
	clockDriver ClockDriver
	coreFreq    uint32
)

// SetClockDriver is called by target-specific code to register its driver.
func SetClockDriver(d ClockDriver) {
	clockDriver = d
}

// MustClock returns the configured driver or panics if missing.
func MustClock() ClockDriver {
	if clockDriver == nil {
		panic("clock driver not configured")
	}
	return clockDriver
}

// InitClock configures the clock tree. Any failure is fatal.
func InitClock() error {
	d := MustClock()
	if err := d.Configure(); err != nil {
		return &FatalError{Op: "clock", Err: err}
	}
	coreFreq = d.CoreFrequency()
	RecordEvent(EvtClockConfigured, coreFreq)
	return nil
}

// CoreFrequencyHz returns the frequency established by InitClock
func CoreFrequencyHz() uint32 {
	return coreFreq
}

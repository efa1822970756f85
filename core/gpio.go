package core

import "errors"

// ErrLineBound is returned when InitGPIO is asked to rebind the status line
var ErrLineBound = errors.New("status line already bound")

// LineConfig describes the one designated output line
type LineConfig struct {
	Role    string     // logical role, e.g. "status"
	Pin     GPIOPin    // hardware pin
	Mode    OutputMode // electrical drive
	Initial bool       // level applied before the mode switch
}

// One output line is bound at init and stays bound for the process lifetime
var (
	statusLine  LineConfig
	statusBound bool
)

// InitGPIO configures the status line. Calling it again with the same
// configuration is a no-op.
func InitGPIO(line LineConfig) error {
	if statusBound {
		if line != statusLine {
			return ErrLineBound
		}
		return nil
	}
	if err := MustGPIO().ConfigureOutput(line.Pin, line.Mode, line.Initial); err != nil {
		return err
	}
	statusLine = line
	statusBound = true
	RecordEvent(EvtGPIOConfigured, uint32(line.Pin))
	return nil
}

// ToggleLED flips the status line
func ToggleLED() {
	if !statusBound {
		return
	}
	_ = MustGPIO().Toggle(statusLine.Pin)
}

// LEDLevel reads back the status line output level
func LEDLevel() bool {
	if !statusBound {
		return false
	}
	level, _ := MustGPIO().Get(statusLine.Pin)
	return level
}

// StatusLine returns the bound line configuration
func StatusLine() (LineConfig, bool) {
	return statusLine, statusBound
}

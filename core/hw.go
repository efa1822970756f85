// Package core is the hardware layer: it composes runtime, clock, GPIO and
// the debug channel behind one init entry point and one set of accessors.
// Boards register their drivers; the accessors add no logic of their own.
package core

// Runtime is the process-wide runtime substrate: it owns the periodic tick
// and the fatal halt.
type Runtime interface {
	// Init starts the tick source
	Init() error

	// Halt stops execution for an unrecoverable error. On hardware it
	// never returns.
	Halt(err error)
}

// FatalError marks an unrecoverable failure. The entry point must treat it
// as a full-system abort and hand it to Fatal.
type FatalError struct {
	Op  string
	Err error
}

func (e *FatalError) Error() string {
	if e.Err == nil {
		return "fatal: " + e.Op
	}
	return "fatal: " + e.Op + ": " + e.Err.Error()
}

func (e *FatalError) Unwrap() error { return e.Err }

var runtimeSubstrate Runtime

// SetRuntime is called by target-specific code to register the runtime.
func SetRuntime(rt Runtime) {
	runtimeSubstrate = rt
}

// MustRuntime returns the configured runtime or panics if missing.
func MustRuntime() Runtime {
	if runtimeSubstrate == nil {
		panic("runtime not configured")
	}
	return runtimeSubstrate
}

// Init brings up the hardware layer: runtime substrate, then clock tree,
// then the status line. GPIO clock gating assumes a configured clock tree
// and everything after init assumes a running tick.
func Init(line LineConfig) error {
	if err := MustRuntime().Init(); err != nil {
		return &FatalError{Op: "runtime", Err: err}
	}
	RecordEvent(EvtRuntimeInit, GetTime())

	if err := InitClock(); err != nil {
		return err
	}

	if err := InitGPIO(line); err != nil {
		return err
	}

	DebugPrintln("[HW] init done, f_core=" + utoa(CoreFrequencyHz()) + " Hz")
	return nil
}

// Fatal halts the system through the runtime substrate
func Fatal(err error) {
	RecordEvent(EvtFatal, 0)
	DebugPrintln("[HW] " + err.Error())
	MustRuntime().Halt(err)
}

// Delegated to drivers

func NowMs() uint32            { return GetTime() }
func IsInboundAvailable() bool { return MustDebugChannel().Available() }
func ReceiveByte() byte        { return MustDebugChannel().ReceiveByte() }
func SendByte(b byte)          { MustDebugChannel().SendByte(b) }
func CoreID() uint32           { return MustIdentity().CoreID() }
func FlashSizeKB() uint16      { return MustIdentity().FlashSizeKB() }
func UniqueID() UID            { return MustIdentity().UniqueID() }

// Facade exposes the hardware layer accessors as methods so consumers can
// depend on a narrow interface instead of package state.
type Facade struct{}

func (Facade) ToggleLED()               { ToggleLED() }
func (Facade) NowMs() uint32            { return NowMs() }
func (Facade) CoreFrequencyHz() uint32  { return CoreFrequencyHz() }
func (Facade) IsInboundAvailable() bool { return IsInboundAvailable() }
func (Facade) ReceiveByte() byte        { return ReceiveByte() }
func (Facade) SendByte(b byte)          { SendByte(b) }
func (Facade) CoreID() uint32           { return CoreID() }
func (Facade) FlashSizeKB() uint16      { return FlashSizeKB() }
func (Facade) UniqueID() UID            { return UniqueID() }

// Reset returns the hardware layer to its power-on state: the status line
// is unbound, the timer list and event ring are empty and the tick is back
// at zero. Registered drivers stay registered. Used by the simulator.
func Reset() {
	statusLine = LineConfig{}
	statusBound = false
	coreFreq = 0
	ResetTimers()
	ClearEventRing()
	SetTickSource(nil)
	SetTime(0)
}

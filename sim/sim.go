//go:build !tinygo

// Package sim is a host-side simulated board. It implements every driver
// the hardware layer needs so the firmware entry routine and the stream
// layer can run and be tested off-target.
package sim

import (
	"errors"
	"time"

	"swoblink/config"
	"swoblink/core"
)

// ErrPLLLock is returned by a Clock told to fail
var ErrPLLLock = errors.New("sim: PLL did not lock")

// Runtime simulates the runtime substrate
type Runtime struct {
	InitErr error
	Started bool
	Halted  error
}

func (r *Runtime) Init() error {
	if r.InitErr != nil {
		return r.InitErr
	}
	r.Started = true
	return nil
}

// Halt records err and panics with it, the host stand-in for a trap
func (r *Runtime) Halt(err error) {
	r.Halted = err
	panic(err)
}

// Clock simulates the clock tree bring-up
type Clock struct {
	Hz         uint32
	Fail       bool
	Configured bool
}

func (c *Clock) Configure() error {
	if c.Fail {
		return ErrPLLLock
	}
	c.Configured = true
	return nil
}

func (c *Clock) CoreFrequency() uint32 {
	return c.Hz
}

// Time is a controllable millisecond counter
type Time struct {
	now  uint32
	step uint32
}

// NewTime returns a counter starting at start. Every Now call advances the
// counter by step afterwards, which lets busy-wait loops make progress.
func NewTime(start, step uint32) *Time {
	return &Time{now: start, step: step}
}

// Now returns the current time
func (t *Time) Now() uint32 {
	v := t.now
	t.now += t.step
	return v
}

// Peek returns the current time without advancing
func (t *Time) Peek() uint32 { return t.now }

// Advance moves the counter forward by ms
func (t *Time) Advance(ms uint32) { t.now += ms }

// Set moves the counter to ms
func (t *Time) Set(ms uint32) { t.now = ms }

// WallClock returns a tick source in milliseconds since the call
func WallClock() func() uint32 {
	start := time.Now()
	return func() uint32 {
		return uint32(time.Since(start) / time.Millisecond)
	}
}

// Identity returns fixed identification values
type Identity struct {
	CPUID   uint32
	FlashKB uint16
	UID     core.UID
}

func (i *Identity) CoreID() uint32      { return i.CPUID }
func (i *Identity) FlashSizeKB() uint16 { return i.FlashKB }
func (i *Identity) UniqueID() core.UID  { return i.UID }

// Board bundles the simulated drivers
type Board struct {
	Config   *config.BoardConfig
	Runtime  *Runtime
	Clock    *Clock
	Pins     *Pins
	Channel  *Channel
	Identity *Identity
}

// NewBoard builds a simulated board from a profile
func NewBoard(cfg *config.BoardConfig) *Board {
	if cfg == nil {
		cfg = config.Default()
	}
	attached := cfg.PeerAttached == nil || *cfg.PeerAttached
	return &Board{
		Config:   cfg,
		Runtime:  &Runtime{},
		Clock:    &Clock{Hz: cfg.CoreHz, Fail: cfg.FailClock},
		Pins:     NewPins(),
		Channel:  NewChannel(attached),
		Identity: &Identity{CPUID: cfg.CPUID, FlashKB: cfg.FlashKB, UID: core.UID(cfg.UniqueID)},
	}
}

// Install powers the hardware layer back on and registers the board's
// drivers with it. The tick source is cleared; callers pick one.
func (b *Board) Install() {
	core.Reset()
	core.SetRuntime(b.Runtime)
	core.SetClockDriver(b.Clock)
	core.SetGPIODriver(b.Pins)
	core.SetDebugChannel(b.Channel)
	core.SetIdentityDriver(b.Identity)
}

// LineConfig returns the status line described by the profile
func (b *Board) LineConfig() core.LineConfig {
	mode := core.OpenDrain
	if b.Config.LED.Mode == config.ModePushPull {
		mode = core.PushPull
	}
	initial := true
	if b.Config.LED.Initial != nil {
		initial = *b.Config.LED.Initial
	}
	return core.LineConfig{
		Role:    "status",
		Pin:     core.GPIOPin(*b.Config.LED.Pin),
		Mode:    mode,
		Initial: initial,
	}
}

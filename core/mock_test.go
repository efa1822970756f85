package core

import "errors"

var errMock = errors.New("mock failure")

// callLog records driver calls in order across all mocks
type callLog []string

func (l *callLog) add(s string) { *l = append(*l, s) }

type mockRuntime struct {
	log    *callLog
	err    error
	halted error
}

func (r *mockRuntime) Init() error {
	r.log.add("runtime")
	return r.err
}

func (r *mockRuntime) Halt(err error) {
	r.log.add("halt")
	r.halted = err
}

type mockClock struct {
	log *callLog
	err error
	hz  uint32
}

func (c *mockClock) Configure() error {
	c.log.add("clock")
	return c.err
}

func (c *mockClock) CoreFrequency() uint32 { return c.hz }

type mockGPIO struct {
	log    *callLog
	err    error
	levels map[GPIOPin]bool
}

func (g *mockGPIO) ConfigureOutput(pin GPIOPin, mode OutputMode, initial bool) error {
	g.log.add("gpio")
	if g.err != nil {
		return g.err
	}
	g.levels[pin] = initial
	return nil
}

func (g *mockGPIO) Toggle(pin GPIOPin) error {
	g.levels[pin] = !g.levels[pin]
	return nil
}

func (g *mockGPIO) Get(pin GPIOPin) (bool, error) {
	level, ok := g.levels[pin]
	if !ok {
		return false, ErrPinNotConfigured
	}
	return level, nil
}

type mockChannel struct {
	in  []byte
	out []byte
}

func (c *mockChannel) Available() bool { return len(c.in) > 0 }

func (c *mockChannel) ReceiveByte() byte {
	if len(c.in) == 0 {
		return 0xFF
	}
	b := c.in[0]
	c.in = c.in[1:]
	return b
}

func (c *mockChannel) SendByte(b byte) { c.out = append(c.out, b) }

type mockIdentity struct{}

func (mockIdentity) CoreID() uint32      { return 0x411FC231 }
func (mockIdentity) FlashSizeKB() uint16 { return 64 }
func (mockIdentity) UniqueID() UID       { return UID{1, 2, 3} }

type mockBoard struct {
	log     callLog
	runtime *mockRuntime
	clock   *mockClock
	gpio    *mockGPIO
	channel *mockChannel
}

// setupMockBoard registers fresh mocks and resets package state
func setupMockBoard() *mockBoard {
	b := &mockBoard{}
	b.runtime = &mockRuntime{log: &b.log}
	b.clock = &mockClock{log: &b.log, hz: 72000000}
	b.gpio = &mockGPIO{log: &b.log, levels: make(map[GPIOPin]bool)}
	b.channel = &mockChannel{}

	Reset()
	SetRuntime(b.runtime)
	SetClockDriver(b.clock)
	SetGPIODriver(b.gpio)
	SetDebugChannel(b.channel)
	SetIdentityDriver(mockIdentity{})
	SetDebugEnabled(false)
	return b
}

var testLine = LineConfig{Role: "status", Pin: 45, Mode: OpenDrain, Initial: true}

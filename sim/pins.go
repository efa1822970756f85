//go:build !tinygo

package sim

import "swoblink/core"

// PinOp is one recorded driver operation
type PinOp struct {
	Kind  string // "level", "mode", "toggle"
	Pin   core.GPIOPin
	Level bool
	Mode  core.OutputMode
}

// Pins simulates a GPIO bank
type Pins struct {
	levels map[core.GPIOPin]bool
	modes  map[core.GPIOPin]core.OutputMode
	Ops    []PinOp
}

// NewPins returns an empty pin bank
func NewPins() *Pins {
	return &Pins{
		levels: make(map[core.GPIOPin]bool),
		modes:  make(map[core.GPIOPin]core.OutputMode),
	}
}

func (p *Pins) ConfigureOutput(pin core.GPIOPin, mode core.OutputMode, initial bool) error {
	// Latch the level before the pin starts driving
	p.levels[pin] = initial
	p.Ops = append(p.Ops, PinOp{Kind: "level", Pin: pin, Level: initial})
	p.modes[pin] = mode
	p.Ops = append(p.Ops, PinOp{Kind: "mode", Pin: pin, Mode: mode})
	return nil
}

func (p *Pins) Toggle(pin core.GPIOPin) error {
	if _, ok := p.modes[pin]; !ok {
		return core.ErrPinNotConfigured
	}
	p.levels[pin] = !p.levels[pin]
	p.Ops = append(p.Ops, PinOp{Kind: "toggle", Pin: pin, Level: p.levels[pin]})
	return nil
}

func (p *Pins) Get(pin core.GPIOPin) (bool, error) {
	if _, ok := p.modes[pin]; !ok {
		return false, core.ErrPinNotConfigured
	}
	return p.levels[pin], nil
}

// Toggles returns how many times pin was toggled
func (p *Pins) Toggles(pin core.GPIOPin) int {
	n := 0
	for _, op := range p.Ops {
		if op.Kind == "toggle" && op.Pin == pin {
			n++
		}
	}
	return n
}

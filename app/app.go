// Package app is the firmware entry routine shared by every board: bring
// up the hardware layer, print the banner through the retargeted streams,
// then run the polling loop that blinks the status LED and echoes input.
package app

import (
	"errors"

	"swoblink/banner"
	"swoblink/config"
	"swoblink/core"
	"swoblink/retarget"
)

// Options configures the entry routine for one board
type Options struct {
	Line  core.LineConfig
	Title string
	MCU   string
	Core  string

	// BlinkIntervalMs and ConsolePollMs default to the config constants
	BlinkIntervalMs uint32
	ConsolePollMs   uint32

	// Echo copies console input back to stdout
	Echo bool

	// Debug enables the debug log on stderr
	Debug bool
}

// App is the running firmware
type App struct {
	opts Options

	Streams *retarget.Layer
	Stdin   *retarget.File
	Stdout  *retarget.File
	Stderr  *retarget.File

	blink   core.Timer
	console core.Timer
	rxbuf   [16]byte
}

// New wires the stream layer to the hardware layer facade
func New(opts Options) *App {
	if opts.BlinkIntervalMs == 0 {
		opts.BlinkIntervalMs = config.LEDToggleIntervalMs
	}
	if opts.ConsolePollMs == 0 {
		opts.ConsolePollMs = config.ConsolePollIntervalMs
	}
	if opts.Title == "" {
		opts.Title = "swoblink"
	}

	streams := retarget.New(core.Facade{})
	a := &App{
		opts:    opts,
		Streams: streams,
		Stdin:   streams.Stdin(),
		Stdout:  streams.Stdout(),
		Stderr:  streams.Stderr(),
	}
	a.blink = core.Timer{Interval: opts.BlinkIntervalMs, Handler: a.onBlink}
	a.console = core.Timer{Interval: opts.ConsolePollMs, Handler: a.onConsole}

	core.SetDebugWriter(a.debugWrite)
	core.SetDebugEnabled(opts.Debug)
	return a
}

// Boot initializes the hardware layer. A fatal error is handed to
// core.Fatal, which does not return on hardware.
func (a *App) Boot() error {
	err := core.Init(a.opts.Line)
	if err == nil {
		return nil
	}
	var fatal *core.FatalError
	if errors.As(err, &fatal) {
		core.Fatal(err)
	}
	return err
}

// PrintBanner writes the startup diagnostics to stdout
func (a *App) PrintBanner() error {
	info := banner.FromHardware(a.opts.Title, a.opts.MCU, a.opts.Core)
	return banner.Write(a.Stdout, info)
}

// Announce prints the banner. A failed write goes to the debug log since
// stdout is the stream that failed.
func (a *App) Announce() {
	if err := a.PrintBanner(); err != nil {
		core.DebugPrintln("[APP] banner: " + err.Error())
	}
}

// Start arms the periodic tasks relative to the current time
func (a *App) Start() {
	now := core.NowMs()
	a.blink.Last = now
	core.ScheduleTimer(&a.blink)
	if a.opts.Echo {
		a.console.Last = now
		core.ScheduleTimer(&a.console)
	}
}

// Step runs one pass of the polling loop
func (a *App) Step() {
	core.ProcessTimers()
}

// Run boots the board and never returns
func (a *App) Run() {
	if err := a.Boot(); err != nil {
		core.DebugPrintln("[APP] boot: " + err.Error())
	}
	a.Announce()
	a.Start()
	for {
		a.Step()
	}
}

func (a *App) onBlink(t *core.Timer) uint8 {
	core.ToggleLED()
	return core.SF_RESCHEDULE
}

func (a *App) onConsole(t *core.Timer) uint8 {
	n, err := a.Stdin.Read(a.rxbuf[:])
	if err != nil || n == 0 {
		return core.SF_RESCHEDULE
	}
	for _, b := range a.rxbuf[:n] {
		if b == '\r' {
			_, _ = a.Stdout.WriteString("\r\n")
			continue
		}
		_, _ = a.Stdout.Write([]byte{b})
	}
	return core.SF_RESCHEDULE
}

func (a *App) debugWrite(s string) {
	_, _ = a.Stderr.WriteString(banner.FgRed + s + banner.FgDefault + "\r\n")
}

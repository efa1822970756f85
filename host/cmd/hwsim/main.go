package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"swoblink/app"
	"swoblink/config"
	"swoblink/core"
	"swoblink/sim"
)

var (
	configPath = flag.String("config", "", "JSON board profile (default: Blue Pill)")
	failClock  = flag.Bool("fail-clock", false, "Make the clock bring-up fail")
	noPeer     = flag.Bool("no-peer", false, "Run with no terminal on the debug channel")
	debug      = flag.Bool("debug", false, "Enable the debug log on stderr")
	duration   = flag.Duration("duration", 0, "Stop after this long (0 = until interrupted)")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *failClock {
		cfg.FailClock = true
	}
	if *noPeer {
		attached := false
		cfg.PeerAttached = &attached
	}

	board := sim.NewBoard(cfg)
	board.Install()
	core.SetTickSource(sim.WallClock())

	a := app.New(app.Options{
		Line:  board.LineConfig(),
		Title: "swoblink (" + cfg.Name + ")",
		MCU:   cfg.MCU,
		Core:  cfg.Core,
		Echo:  true,
		Debug: *debug,
	})

	if err := boot(a); err != nil {
		flushOutput(board)
		fmt.Fprintf(os.Stderr, "halted: %v\n", err)
		core.DumpEventRing()
		flushOutput(board)
		os.Exit(1)
	}
	a.Announce()
	a.Start()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	input := pumpStdin()
	led := core.LEDLevel()
	for ctx.Err() == nil {
		select {
		case p := <-input:
			board.Channel.Inject(p...)
		default:
		}

		a.Step()
		flushOutput(board)

		if level := core.LEDLevel(); level != led {
			led = level
			fmt.Fprintf(os.Stderr, "[led] %s\n", ledState(board, level))
		}
		time.Sleep(time.Millisecond)
	}
}

func loadConfig(path string) (*config.BoardConfig, error) {
	if path == "" {
		return config.Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read board profile: %w", err)
	}
	cfg, err := config.LoadConfig(data)
	if err != nil {
		return nil, fmt.Errorf("parse board profile %s: %w", path, err)
	}
	return cfg, nil
}

// boot turns the simulated halt back into an error
func boot(a *app.App) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()
	return a.Boot()
}

// pumpStdin forwards terminal lines as a serial console would send them:
// Enter becomes CR
func pumpStdin() <-chan []byte {
	ch := make(chan []byte, 16)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			ch <- append([]byte(scanner.Text()), '\r')
		}
	}()
	return ch
}

func flushOutput(board *sim.Board) {
	if board.Channel.Out.Len() == 0 {
		return
	}
	_, _ = board.Channel.Out.WriteTo(os.Stdout)
}

// ledState names the lit state of an active-low open-drain LED or an
// active-high push-pull one
func ledState(board *sim.Board, level bool) string {
	lit := level
	if board.LineConfig().Mode == core.OpenDrain {
		lit = !level
	}
	if lit {
		return "on"
	}
	return "off"
}

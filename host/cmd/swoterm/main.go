package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"swoblink/host/serial"
	"swoblink/host/term"
)

var (
	device  = flag.String("device", "/dev/ttyUSB0", "Serial device path")
	baud    = flag.Int("baud", 115200, "Baud rate of the board's debug UART")
	timeout = flag.Int("timeout", 100, "Serial read timeout in milliseconds")
)

func main() {
	flag.Parse()

	fmt.Println("swoterm - debug channel terminal")
	fmt.Println("================================")

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud
	cfg.ReadTimeout = *timeout

	fmt.Printf("Opening %s at %d baud...\n", cfg.Device, cfg.Baud)
	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()
	if err := port.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: flush failed: %v\n", err)
	}
	fmt.Println("Connected. Type ~help for local commands, ~quit to exit.")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	t := term.New(port, os.Stdout)
	errc := make(chan error, 1)
	go func() { errc <- t.Copy(ctx) }()

	if err := t.Run(ctx, os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	stop()

	if err := <-errc; err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

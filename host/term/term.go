// Package term is the host end of a UART debug channel: it shows what the
// board writes to stdout/stderr and sends keyboard lines to its stdin.
// Lines starting with '~' are local commands and never reach the board.
package term

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/shlex"
)

// CommandPrefix starts a local command line. Doubling it sends one literal
// prefix character to the board.
const CommandPrefix = "~"

var (
	// ErrQuit is returned by HandleLine for ~quit
	ErrQuit = errors.New("quit")

	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("usage")
)

// Terminal connects a serial port to local input and output
type Terminal struct {
	port io.ReadWriter
	out  io.Writer
	crlf bool
}

// New returns a terminal writing device output to out. Lines are sent
// terminated by CR, as a serial console sends Enter.
func New(port io.ReadWriter, out io.Writer) *Terminal {
	return &Terminal{port: port, out: out}
}

// CRLF reports whether lines are sent with CR LF instead of CR
func (t *Terminal) CRLF() bool {
	return t.crlf
}

// Copy forwards device output until ctx is done or the port fails. A read
// that returns nothing, or io.EOF on a read timeout, counts as idle.
func (t *Terminal) Copy(ctx context.Context) error {
	buf := make([]byte, 256)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		n, err := t.port.Read(buf)
		if n > 0 {
			if _, werr := t.out.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read device: %w", err)
		}
	}
}

// Run reads lines from in and handles each one until ~quit, end of input
// or ctx is done. A cancelled ctx returns at once even while in is blocked;
// the reader goroutine then ends with the next line or when in is closed.
func (t *Terminal) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-scanErr:
			return err
		case line := <-lines:
			err := t.HandleLine(line)
			if errors.Is(err, ErrQuit) {
				return nil
			}
			if errors.Is(err, ErrUnknownCommand) || errors.Is(err, ErrUsage) {
				fmt.Fprintf(t.out, "%v\r\n", err)
				continue
			}
			if err != nil {
				return err
			}
		}
	}
}

// HandleLine runs a local command or sends the line to the board
func (t *Terminal) HandleLine(line string) error {
	if !strings.HasPrefix(line, CommandPrefix) || strings.HasPrefix(line, CommandPrefix+CommandPrefix) {
		line = strings.TrimPrefix(line, CommandPrefix)
		return t.send([]byte(line + t.lineEnd()))
	}

	args, err := shlex.Split(strings.TrimPrefix(line, CommandPrefix))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: empty command", ErrUsage)
	}

	switch args[0] {
	case "quit", "q":
		return ErrQuit

	case "help", "?":
		t.printHelp()
		return nil

	case "hex":
		data, err := parseHex(args[1:])
		if err != nil {
			return err
		}
		return t.send(data)

	case "crlf":
		if len(args) != 2 {
			return fmt.Errorf("%w: ~crlf on|off", ErrUsage)
		}
		switch args[1] {
		case "on":
			t.crlf = true
		case "off":
			t.crlf = false
		default:
			return fmt.Errorf("%w: ~crlf on|off", ErrUsage)
		}
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
}

func (t *Terminal) lineEnd() string {
	if t.crlf {
		return "\r\n"
	}
	return "\r"
}

func (t *Terminal) send(p []byte) error {
	if _, err := t.port.Write(p); err != nil {
		return fmt.Errorf("write device: %w", err)
	}
	return nil
}

func (t *Terminal) printHelp() {
	fmt.Fprint(t.out, "\r\nLocal commands:\r\n")
	fmt.Fprint(t.out, "  ~help           - Show this help message\r\n")
	fmt.Fprint(t.out, "  ~hex 41 0d ...  - Send raw bytes\r\n")
	fmt.Fprint(t.out, "  ~crlf on|off    - End lines with CR LF instead of CR\r\n")
	fmt.Fprint(t.out, "  ~quit           - Exit the terminal\r\n")
	fmt.Fprint(t.out, "  ~~text          - Send \"~text\"\r\n\r\n")
}

// parseHex turns "41" "0x0d" ... into bytes
func parseHex(fields []string) ([]byte, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: ~hex <byte>...", ErrUsage)
	}
	data := make([]byte, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(f), "0x"), 16, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: bad byte %q", ErrUsage, f)
		}
		data = append(data, byte(v))
	}
	return data, nil
}

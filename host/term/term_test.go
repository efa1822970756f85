package term

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

// loopPort records what the terminal sends and plays back canned device
// output
type loopPort struct {
	sent bytes.Buffer
	recv *strings.Reader
}

func (p *loopPort) Read(b []byte) (int, error) {
	if p.recv == nil {
		return 0, io.EOF
	}
	return p.recv.Read(b)
}

func (p *loopPort) Write(b []byte) (int, error) { return p.sent.Write(b) }

func TestHandleLineSendsText(t *testing.T) {
	port := &loopPort{}
	term := New(port, io.Discard)

	if err := term.HandleLine("hello"); err != nil {
		t.Fatal(err)
	}
	if port.sent.String() != "hello\r" {
		t.Errorf("sent %q", port.sent.String())
	}
}

func TestHandleLineCommands(t *testing.T) {
	tests := []struct {
		line    string
		sent    string
		wantErr error
	}{
		{"~hex 41 0x42 0d", "AB\r", nil},
		{"~hex", "", ErrUsage},
		{"~hex zz", "", ErrUsage},
		{"~hex 100", "", ErrUsage},
		{"~~tilde", "~tilde\r", nil},
		{"~bogus", "", ErrUnknownCommand},
		{"~", "", ErrUsage},
		{`~hex "41`, "", ErrUsage},
		{"~quit", "", ErrQuit},
		{"~crlf maybe", "", ErrUsage},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			port := &loopPort{}
			err := New(port, io.Discard).HandleLine(tt.line)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if port.sent.String() != tt.sent {
				t.Errorf("sent %q, want %q", port.sent.String(), tt.sent)
			}
		})
	}
}

func TestCRLF(t *testing.T) {
	port := &loopPort{}
	term := New(port, io.Discard)

	if err := term.HandleLine("~crlf on"); err != nil {
		t.Fatal(err)
	}
	if !term.CRLF() {
		t.Fatal("crlf not enabled")
	}
	_ = term.HandleLine("x")
	if err := term.HandleLine("~crlf off"); err != nil {
		t.Fatal(err)
	}
	_ = term.HandleLine("y")

	if port.sent.String() != "x\r\ny\r" {
		t.Errorf("sent %q", port.sent.String())
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	port := &loopPort{}
	var out bytes.Buffer
	term := New(port, &out)

	in := strings.NewReader("one\n~nope\n~quit\nnever\n")
	if err := term.Run(context.Background(), in); err != nil {
		t.Fatalf("Run = %v", err)
	}
	if port.sent.String() != "one\r" {
		t.Errorf("sent %q", port.sent.String())
	}
	if !strings.Contains(out.String(), "unknown command: nope") {
		t.Errorf("missing error report, out = %q", out.String())
	}
}

func TestRunReturnsOnCancelWhileInputBlocked(t *testing.T) {
	term := New(&loopPort{}, io.Discard)
	in, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	res := make(chan error, 1)
	go func() { res <- term.Run(ctx, in) }()

	cancel()
	select {
	case err := <-res:
		if err != nil {
			t.Errorf("Run = %v, want nil", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run still blocked on input after cancel")
	}
}

func TestHelp(t *testing.T) {
	var out bytes.Buffer
	if err := New(&loopPort{}, &out).HandleLine("~help"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "~quit") {
		t.Errorf("help text = %q", out.String())
	}
}

func TestCopy(t *testing.T) {
	port := &loopPort{recv: strings.NewReader("f_HCLK = 72.000 MHz\r\n")}
	var out bytes.Buffer
	term := New(port, &out)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := term.Copy(ctx); err != nil {
		t.Fatalf("Copy = %v", err)
	}
	if out.String() != "f_HCLK = 72.000 MHz\r\n" {
		t.Errorf("out = %q", out.String())
	}
}

type brokenPort struct{ loopPort }

func (p *brokenPort) Read([]byte) (int, error) { return 0, errors.New("unplugged") }

func TestCopyReportsReadError(t *testing.T) {
	err := New(&brokenPort{}, io.Discard).Copy(context.Background())
	if err == nil || !strings.Contains(err.Error(), "unplugged") {
		t.Errorf("Copy = %v", err)
	}
}

package core

import (
	"errors"
	"strings"
	"testing"
)

func TestInitOrder(t *testing.T) {
	b := setupMockBoard()

	if err := Init(testLine); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	got := strings.Join(b.log, ",")
	if got != "runtime,clock,gpio" {
		t.Errorf("init order = %s, want runtime,clock,gpio", got)
	}
	if CoreFrequencyHz() != 72000000 {
		t.Errorf("CoreFrequencyHz = %d, want 72000000", CoreFrequencyHz())
	}
	if !LEDLevel() {
		t.Error("status line should start at its initial level (high)")
	}
}

func TestInitClockFailureIsFatal(t *testing.T) {
	b := setupMockBoard()
	b.clock.err = errMock

	err := Init(testLine)
	var fatal *FatalError
	if !errors.As(err, &fatal) {
		t.Fatalf("expected *FatalError, got %v", err)
	}
	if fatal.Op != "clock" {
		t.Errorf("Op = %q, want clock", fatal.Op)
	}
	if !errors.Is(err, errMock) {
		t.Error("FatalError should unwrap to the driver error")
	}
	if strings.Contains(strings.Join(b.log, ","), "gpio") {
		t.Error("GPIO must not be touched after a clock failure")
	}
}

func TestInitRuntimeFailureIsFatal(t *testing.T) {
	b := setupMockBoard()
	b.runtime.err = errMock

	err := Init(testLine)
	var fatal *FatalError
	if !errors.As(err, &fatal) || fatal.Op != "runtime" {
		t.Fatalf("expected runtime FatalError, got %v", err)
	}
	if len(b.log) != 1 {
		t.Errorf("calls after runtime failure: %v", b.log)
	}
}

func TestInitGPIOFailureIsNotFatal(t *testing.T) {
	b := setupMockBoard()
	b.gpio.err = errMock

	err := Init(testLine)
	if !errors.Is(err, errMock) {
		t.Fatalf("expected driver error, got %v", err)
	}
	var fatal *FatalError
	if errors.As(err, &fatal) {
		t.Error("GPIO failure should not be a FatalError")
	}
}

func TestFatalHalts(t *testing.T) {
	b := setupMockBoard()

	err := &FatalError{Op: "clock", Err: errMock}
	Fatal(err)

	if b.runtime.halted != err {
		t.Errorf("Halt got %v, want %v", b.runtime.halted, err)
	}
	events := Events()
	if len(events) == 0 || events[len(events)-1].Type != EvtFatal {
		t.Errorf("last event should be EvtFatal, got %+v", events)
	}
}

func TestFatalErrorMessage(t *testing.T) {
	tests := []struct {
		err  *FatalError
		want string
	}{
		{&FatalError{Op: "clock"}, "fatal: clock"},
		{&FatalError{Op: "clock", Err: errMock}, "fatal: clock: mock failure"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestIdentityBeforeInit(t *testing.T) {
	setupMockBoard()

	if CoreID() != 0x411FC231 {
		t.Errorf("CoreID = %08X", CoreID())
	}
	if FlashSizeKB() != 64 {
		t.Errorf("FlashSizeKB = %d", FlashSizeKB())
	}
	if UniqueID() != (UID{1, 2, 3}) {
		t.Errorf("UniqueID = %v", UniqueID())
	}
}

func TestToggleTwiceRestoresLevel(t *testing.T) {
	setupMockBoard()
	if err := Init(testLine); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	before := LEDLevel()
	ToggleLED()
	if LEDLevel() == before {
		t.Fatal("toggle did not change the level")
	}
	ToggleLED()
	if LEDLevel() != before {
		t.Error("two toggles should restore the level")
	}
}

func TestToggleBeforeInitIsNoop(t *testing.T) {
	b := setupMockBoard()
	ToggleLED()
	if len(b.gpio.levels) != 0 {
		t.Error("toggle before init touched the GPIO driver")
	}
}

func TestInitGPIORebind(t *testing.T) {
	setupMockBoard()
	if err := InitGPIO(testLine); err != nil {
		t.Fatalf("InitGPIO failed: %v", err)
	}
	if err := InitGPIO(testLine); err != nil {
		t.Errorf("same config again should be a no-op, got %v", err)
	}

	other := testLine
	other.Pin = 5
	if err := InitGPIO(other); !errors.Is(err, ErrLineBound) {
		t.Errorf("rebind error = %v, want ErrLineBound", err)
	}
}

func TestFacadeChannel(t *testing.T) {
	b := setupMockBoard()
	b.channel.in = []byte("A")

	var f Facade
	if !f.IsInboundAvailable() {
		t.Fatal("expected a waiting byte")
	}
	if got := f.ReceiveByte(); got != 'A' {
		t.Errorf("ReceiveByte = %q", got)
	}
	if f.IsInboundAvailable() {
		t.Error("channel should be empty")
	}
	f.SendByte('z')
	if string(b.channel.out) != "z" {
		t.Errorf("sent %q", b.channel.out)
	}
}

func TestMustPanicsWithoutDriver(t *testing.T) {
	setupMockBoard()
	SetGPIODriver(nil)
	defer func() {
		if recover() == nil {
			t.Error("MustGPIO should panic with no driver")
		}
	}()
	MustGPIO()
}

package banner

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"swoblink/core"
)

func TestFormatMHz(t *testing.T) {
	tests := []struct {
		hz   uint32
		want string
	}{
		{72000000, "72.000"},
		{8000000, "8.000"},
		{125000000, "125.000"},
		{133333333, "133.333"},
		{36864000, "36.864"},
		{999, "0.000"},
	}
	for _, tt := range tests {
		if got := FormatMHz(tt.hz); got != tt.want {
			t.Errorf("FormatMHz(%d) = %q, want %q", tt.hz, got, tt.want)
		}
	}
}

func TestWrite(t *testing.T) {
	info := Info{
		Title:   "swoblink",
		MCU:     "STMicroelectronics STM32F103",
		Core:    "Arm Cortex-M3",
		CPUID:   0x411FC231,
		CoreHz:  72000000,
		FlashKB: 64,
		UID:     core.UID{0x0670FF48, 0x48575067, 0x87162637},
	}

	var buf bytes.Buffer
	if err := Write(&buf, info); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, EraseDisplay+Invert) {
		t.Error("banner should start by clearing the screen in inverse video")
	}
	want := []string{
		"-- Core Information --",
		"CPUID:       0x411FC231\r\n",
		"implementer: 0x41  (ARM)\r\n",
		"variant:     0x1   (Revision 1)\r\n",
		"partno:      0xC23 (Cortex-M3)\r\n",
		"revision:    0x1   (Patch 1)\r\n",
		"f_HCLK = 72.000 MHz\r\n",
		"FLASH Size: 64 KB\r\n",
		"Unique ID: 0670FF48 48575067 87162637\r\n",
	}
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("banner missing %q\n%s", w, out)
		}
	}
	for _, line := range strings.Split(out, "\r\n") {
		if strings.Contains(line, "\n") {
			t.Errorf("bare LF in line %q", line)
		}
	}
}

type failWriter struct{ n int }

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errors.New("channel gone")
	}
	w.n--
	return len(p), nil
}

func TestWriteStopsOnError(t *testing.T) {
	w := &failWriter{n: 2}
	if err := Write(w, Info{}); err == nil {
		t.Error("expected the writer error")
	}
}

func TestRule(t *testing.T) {
	r := rule("Clocks")
	if len(r) != Width || !strings.HasPrefix(r, "-- Clocks -") {
		t.Errorf("rule = %q", r)
	}
	if rule("") != strings.Repeat("-", Width) {
		t.Error("untitled rule should be all dashes")
	}
}

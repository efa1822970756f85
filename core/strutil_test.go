package core

import (
	"math"
	"strconv"
	"testing"
)

func TestItoa(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{9, "9"},
		{-1, "-1"},
		{22, "22"},
		{-100, "-100"},
		{math.MaxInt, strconv.Itoa(math.MaxInt)},
		{math.MinInt, strconv.Itoa(math.MinInt)},
	}
	for _, tt := range tests {
		if got := Itoa(tt.n); got != tt.want {
			t.Errorf("Itoa(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestUtoa(t *testing.T) {
	if got := Utoa(0xFFFFFFFF); got != "4294967295" {
		t.Errorf("Utoa(max) = %q", got)
	}
	if got := Utoa(72000000); got != "72000000" {
		t.Errorf("Utoa(72000000) = %q", got)
	}
}

func TestPadUint(t *testing.T) {
	tests := []struct {
		n     uint32
		width int
		want  string
	}{
		{0, 3, "000"},
		{7, 3, "007"},
		{123, 3, "123"},
		{12345, 3, "12345"},
	}
	for _, tt := range tests {
		if got := PadUint(tt.n, tt.width); got != tt.want {
			t.Errorf("PadUint(%d, %d) = %q, want %q", tt.n, tt.width, got, tt.want)
		}
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		v      uint32
		digits int
		want   string
	}{
		{0x411FC231, 8, "411FC231"},
		{0xC23, 3, "C23"},
		{0xA, 1, "A"},
		{0x1, 2, "01"},
		{0x12345, 2, "45"},
		{0xDEADBEEF, 12, "DEADBEEF"},
		{0x5, 0, "5"},
	}
	for _, tt := range tests {
		if got := Hex(tt.v, tt.digits); got != tt.want {
			t.Errorf("Hex(%#x, %d) = %q, want %q", tt.v, tt.digits, got, tt.want)
		}
	}
}

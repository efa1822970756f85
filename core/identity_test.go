package core

import "testing"

func TestDecodeCPUID(t *testing.T) {
	tests := []struct {
		raw      uint32
		impl     string
		variant  uint8
		part     string
		revision uint8
	}{
		{0x411FC231, "ARM", 1, "Cortex-M3", 1},
		{0x410CC601, "ARM", 0, "Cortex-M0+", 1},
		{0x411FD210, "ARM", 1, "Cortex-M33", 0},
		{0x410FC241, "ARM", 0, "Cortex-M4", 1},
		{0x00000000, "unknown", 0, "unknown", 0},
	}
	for _, tt := range tests {
		c := DecodeCPUID(tt.raw)
		if c.ImplementerName() != tt.impl {
			t.Errorf("%08X: implementer %q, want %q", tt.raw, c.ImplementerName(), tt.impl)
		}
		if c.Variant != tt.variant {
			t.Errorf("%08X: variant %d, want %d", tt.raw, c.Variant, tt.variant)
		}
		if c.PartName() != tt.part {
			t.Errorf("%08X: part %q, want %q", tt.raw, c.PartName(), tt.part)
		}
		if c.Revision != tt.revision {
			t.Errorf("%08X: revision %d, want %d", tt.raw, c.Revision, tt.revision)
		}
	}
}

//go:build rp2040 || rp2350

package main

import (
	"encoding/binary"
	"machine"
	"runtime/volatile"
	"unsafe"

	"swoblink/core"
)

const scbCPUID = 0xE000ED00

// Size of the QSPI flash on the reference board. The RP2 has no on-chip
// flash and no register reporting the external part's size.
const flashSizeKB = 2048

var cpuidReg = (*volatile.Register32)(unsafe.Pointer(uintptr(scbCPUID)))

// rpIdentity reads CPUID and the flash chip's unique ID
type rpIdentity struct{}

func (rpIdentity) CoreID() uint32      { return cpuidReg.Get() }
func (rpIdentity) FlashSizeKB() uint16 { return flashSizeKB }

// UniqueID packs the 64-bit flash ID into the first two words; the third
// is zero
func (rpIdentity) UniqueID() core.UID {
	var raw [12]byte
	copy(raw[:], machine.DeviceID())
	return core.UID{
		binary.BigEndian.Uint32(raw[0:4]),
		binary.BigEndian.Uint32(raw[4:8]),
		binary.BigEndian.Uint32(raw[8:12]),
	}
}

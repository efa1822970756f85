//go:build stm32f103

package main

import (
	"runtime/volatile"
	"unsafe"

	"swoblink/core"
)

// System control block and electronic signature addresses
const (
	scbCPUID     = 0xE000ED00
	esigFlashKB  = 0x1FFFF7E0
	esigUniqueID = 0x1FFFF7E8
)

var (
	cpuidReg = (*volatile.Register32)(unsafe.Pointer(uintptr(scbCPUID)))
	flashReg = (*volatile.Register16)(unsafe.Pointer(uintptr(esigFlashKB)))
	uidWords = (*[3]volatile.Register32)(unsafe.Pointer(uintptr(esigUniqueID)))
)

// esigIdentity reads CPUID and the electronic signature
type esigIdentity struct{}

func (esigIdentity) CoreID() uint32      { return cpuidReg.Get() }
func (esigIdentity) FlashSizeKB() uint16 { return flashReg.Get() }

func (esigIdentity) UniqueID() core.UID {
	return core.UID{uidWords[0].Get(), uidWords[1].Get(), uidWords[2].Get()}
}

package core

// UID is the 96-bit factory-programmed unique device identifier
type UID [3]uint32

// IdentityDriver reads the read-only identification constants of the MCU.
// All three are memory-mapped and valid from reset; no init is required.
type IdentityDriver interface {
	// CoreID returns the raw CPUID register
	CoreID() uint32

	// FlashSizeKB returns the on-chip flash size in KiB
	FlashSizeKB() uint16

	// UniqueID returns the unique device identifier
	UniqueID() UID
}

var identityDriver IdentityDriver

// SetIdentityDriver is called by target-specific code to register its driver.
func SetIdentityDriver(d IdentityDriver) {
	identityDriver = d
}

// MustIdentity returns the configured driver or panics if missing.
func MustIdentity() IdentityDriver {
	if identityDriver == nil {
		panic("identity driver not configured")
	}
	return identityDriver
}

// CPUID is the decoded form of the Cortex-M CPUID register
type CPUID struct {
	Raw         uint32
	Implementer uint8  // bits 31:24
	Variant     uint8  // bits 23:20, major revision
	PartNo      uint16 // bits 15:4
	Revision    uint8  // bits 3:0, patch release
}

// Known implementer and part numbers
const (
	ImplementerARM = 0x41

	PartCortexM0     = 0xC20
	PartCortexM0Plus = 0xC60
	PartCortexM3     = 0xC23
	PartCortexM4     = 0xC24
	PartCortexM7     = 0xC27
	PartCortexM33    = 0xD21
)

// DecodeCPUID splits a raw CPUID value into its fields
func DecodeCPUID(raw uint32) CPUID {
	return CPUID{
		Raw:         raw,
		Implementer: uint8(raw >> 24),
		Variant:     uint8((raw >> 20) & 0xF),
		PartNo:      uint16((raw >> 4) & 0xFFF),
		Revision:    uint8(raw & 0xF),
	}
}

// ImplementerName returns "ARM" or "unknown"
func (c CPUID) ImplementerName() string {
	if c.Implementer == ImplementerARM {
		return "ARM"
	}
	return "unknown"
}

// PartName returns the core name for known part numbers
func (c CPUID) PartName() string {
	switch c.PartNo {
	case PartCortexM0:
		return "Cortex-M0"
	case PartCortexM0Plus:
		return "Cortex-M0+"
	case PartCortexM3:
		return "Cortex-M3"
	case PartCortexM4:
		return "Cortex-M4"
	case PartCortexM7:
		return "Cortex-M7"
	case PartCortexM33:
		return "Cortex-M33"
	}
	return "unknown"
}

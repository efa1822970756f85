// Package banner prints the startup diagnostics: board header, decoded
// CPUID, core clock and the electronic signature (flash size, unique ID).
package banner

import (
	"io"

	"swoblink/core"
)

// Width is the width of the header and the section rulers
const Width = 50

// Info is everything the banner reports
type Info struct {
	Title   string
	MCU     string
	Core    string
	CPUID   uint32
	CoreHz  uint32
	FlashKB uint16
	UID     core.UID
}

// FromHardware collects Info from the hardware layer
func FromHardware(title, mcu, coreName string) Info {
	return Info{
		Title:   title,
		MCU:     mcu,
		Core:    coreName,
		CPUID:   core.CoreID(),
		CoreHz:  core.CoreFrequencyHz(),
		FlashKB: core.FlashSizeKB(),
		UID:     core.UniqueID(),
	}
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) str(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *printer) line(s string) {
	p.str(s + "\r\n")
}

// Write prints the whole banner to w
func Write(w io.Writer, info Info) error {
	p := &printer{w: w}
	header(p, info)
	p.str("\r\n")
	coreInfo(p, info.CPUID)
	p.str("\r\n")
	clocks(p, info.CoreHz)
	p.str("\r\n")
	esig(p, info.FlashKB, info.UID)
	return p.err
}

func header(p *printer, info Info) {
	p.str(EraseDisplay + Invert)
	p.line(rule(""))
	p.line(pad(" "+info.Title, Width))
	p.line(rule(""))
	p.line(pad(" MCU:  "+info.MCU, Width))
	p.line(pad(" Core: "+info.Core, Width))
	p.line(rule(""))
	p.str(NoInvert + "\r\n")
}

func coreInfo(p *printer, raw uint32) {
	id := core.DecodeCPUID(raw)
	p.line(rule("Core Information"))
	p.line("CPUID:       0x" + core.Hex(id.Raw, 8))
	p.line("implementer: 0x" + core.Hex(uint32(id.Implementer), 2) + "  (" + id.ImplementerName() + ")")
	p.line("variant:     0x" + core.Hex(uint32(id.Variant), 1) + "   (Revision " + core.Utoa(uint32(id.Variant)) + ")")
	p.line("partno:      0x" + core.Hex(uint32(id.PartNo), 3) + " (" + id.PartName() + ")")
	p.line("revision:    0x" + core.Hex(uint32(id.Revision), 1) + "   (Patch " + core.Utoa(uint32(id.Revision)) + ")")
}

func clocks(p *printer, hz uint32) {
	p.line(rule("Clocks"))
	p.line("f_HCLK = " + FormatMHz(hz) + " MHz")
}

func esig(p *printer, flashKB uint16, uid core.UID) {
	p.line(rule("ESIG"))
	p.line("FLASH Size: " + core.Utoa(uint32(flashKB)) + " KB")
	p.line("Unique ID: " + core.Hex(uid[0], 8) + " " + core.Hex(uid[1], 8) + " " + core.Hex(uid[2], 8))
}

// FormatMHz renders hz as "MHz.kHz" with three kHz digits, e.g. "72.000"
func FormatMHz(hz uint32) string {
	khz := hz / 1000
	return core.Utoa(khz/1000) + "." + core.PadUint(khz%1000, 3)
}

// rule returns a Width-wide ruler, titled when title is not empty
func rule(title string) string {
	s := ""
	if title != "" {
		s = "-- " + title + " "
	}
	for len(s) < Width {
		s += "-"
	}
	return s
}

func pad(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}

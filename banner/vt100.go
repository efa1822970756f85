package banner

// VT100 escape sequences
const (
	EraseDisplay = "\x1b[2J"
	ResetAttrs   = "\x1b[0m"

	IntensityBright = "\x1b[1m"
	IntensityDim    = "\x1b[2m"
	IntensityNormal = "\x1b[22m"

	Underline   = "\x1b[4m"
	NoUnderline = "\x1b[24m"

	Invert   = "\x1b[7m"
	NoInvert = "\x1b[27m"

	FgRed     = "\x1b[31m"
	FgGreen   = "\x1b[32m"
	FgDefault = "\x1b[39m"
)

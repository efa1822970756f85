package core

// String helpers that avoid the fmt package on the MCU

// itoa converts an integer to a string without using fmt package
// This is a lightweight alternative for embedded systems
func itoa(n int) string {
	if n == 0 {
		return "0"
	}

	// Magnitude as uint so the most negative int does not overflow
	negative := n < 0
	u := uint(n)
	if negative {
		u = -u
	}

	var buf [21]byte
	pos := len(buf)
	for u > 0 {
		pos--
		buf[pos] = byte('0' + u%10)
		u /= 10
	}

	if negative {
		pos--
		buf[pos] = '-'
	}

	return string(buf[pos:])
}

// utoa converts an unsigned integer to a string
func utoa(n uint32) string {
	if n == 0 {
		return "0"
	}

	var buf [10]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}

	return string(buf[pos:])
}

// Itoa is the exported form of itoa
func Itoa(n int) string { return itoa(n) }

// Utoa is the exported form of utoa
func Utoa(n uint32) string { return utoa(n) }

// PadUint formats n in decimal, left-padded with zeros to width digits
func PadUint(n uint32, width int) string {
	s := utoa(n)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

// Hex formats v as uppercase hex, zero-padded to digits (no prefix).
// Digits beyond 8 are ignored.
func Hex(v uint32, digits int) string {
	const hexDigits = "0123456789ABCDEF"
	if digits < 1 {
		digits = 1
	}
	if digits > 8 {
		digits = 8
	}

	buf := make([]byte, digits)
	for i := digits - 1; i >= 0; i-- {
		buf[i] = hexDigits[v&0xF]
		v >>= 4
	}
	return string(buf)
}

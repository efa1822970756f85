package retarget

// Descriptor is one of the three fixed standard streams. There is no
// descriptor table: any other value is rejected with EBADF.
type Descriptor uint8

const (
	Stdin  Descriptor = 0
	Stdout Descriptor = 1
	Stderr Descriptor = 2
)

// ParseDescriptor maps a POSIX file descriptor number to a Descriptor
func ParseDescriptor(fd int) (Descriptor, bool) {
	switch fd {
	case 0:
		return Stdin, true
	case 1:
		return Stdout, true
	case 2:
		return Stderr, true
	}
	return 0, false
}

// Readable reports whether read is allowed on the descriptor
func (d Descriptor) Readable() bool {
	switch d {
	case Stdin:
		return true
	case Stdout, Stderr:
		return false
	}
	return false
}

// Writable reports whether write is allowed on the descriptor
func (d Descriptor) Writable() bool {
	switch d {
	case Stdout, Stderr:
		return true
	case Stdin:
		return false
	}
	return false
}

func (d Descriptor) String() string {
	switch d {
	case Stdin:
		return "stdin"
	case Stdout:
		return "stdout"
	case Stderr:
		return "stderr"
	}
	return "invalid"
}

package retarget

import "swoblink/core"

// Errno is the out-of-band error code of a failed stream call
type Errno int

const (
	EBADF  Errno = 9  // bad file descriptor
	EINVAL Errno = 22 // invalid argument
)

func (e Errno) Error() string {
	switch e {
	case 0:
		return "no error"
	case EBADF:
		return "bad file descriptor"
	case EINVAL:
		return "invalid argument"
	}
	return "errno " + core.Itoa(int(e))
}

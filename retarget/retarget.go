// Package retarget maps the POSIX character-stream contract (read, write,
// lseek, close, fstat, isatty) onto the hardware layer's debug channel.
//
// Calls follow the C convention: success returns a non-negative count,
// failure returns -1 and sets the out-of-band error code. The same code is
// also returned as the error value for Go callers.
package retarget

import (
	"swoblink/config"
	"swoblink/core"
)

// ReadTimeoutMs is how long read waits for each byte before returning what
// it has so far
const ReadTimeoutMs = config.ReadTimeoutMs

// S_IFCHR is the character device file type bit in Stat.Mode
const S_IFCHR = 0o020000

// HAL is the part of the hardware layer the streams need.
// core.Facade implements it.
type HAL interface {
	NowMs() uint32
	IsInboundAvailable() bool
	ReceiveByte() byte
	SendByte(b byte)
}

// Stat is the subset of struct stat that is reported for the streams
type Stat struct {
	Dev   int
	Mode  uint32
	Nlink uint32
}

// Layer implements the stream calls. It keeps no per-descriptor state;
// the only field that changes is the last error code.
type Layer struct {
	hal   HAL
	errno Errno
}

// New returns a Layer over hal
func New(hal HAL) *Layer {
	return &Layer{hal: hal}
}

// Errno returns the error code set by the last failed call
func (l *Layer) Errno() Errno {
	return l.errno
}

func (l *Layer) fail(e Errno) (int, error) {
	l.errno = e
	return -1, e
}

func (l *Layer) badDescriptor(fd int) (int, error) {
	core.RecordEvent(core.EvtBadDescriptor, uint32(fd))
	return l.fail(EBADF)
}

// Read fills buf from stdin. Each byte gets its own ReadTimeoutMs window;
// the first window that expires ends the call with the bytes read so far.
// A short or zero count is not an error: it means no input right now.
func (l *Layer) Read(fd int, buf []byte) (int, error) {
	if len(buf) == 0 {
		return l.fail(EINVAL)
	}
	d, ok := ParseDescriptor(fd)
	if !ok || !d.Readable() {
		return l.badDescriptor(fd)
	}

	for i := range buf {
		start := l.hal.NowMs()
		for !l.hal.IsInboundAvailable() {
			if core.Elapsed(start, l.hal.NowMs()) > ReadTimeoutMs {
				core.RecordEvent(core.EvtReadTimeout, uint32(i))
				return i, nil
			}
		}
		buf[i] = l.hal.ReceiveByte()
	}
	return len(buf), nil
}

// Write sends buf to stdout or stderr one byte at a time. It returns only
// once every byte was accepted by the channel, so it can stall for as long
// as an attached peer stalls. There is no write timeout.
func (l *Layer) Write(fd int, buf []byte) (int, error) {
	if len(buf) == 0 {
		return l.fail(EINVAL)
	}
	d, ok := ParseDescriptor(fd)
	if !ok || !d.Writable() {
		return l.badDescriptor(fd)
	}

	for _, b := range buf {
		l.hal.SendByte(b)
	}
	return len(buf), nil
}

// Seek always fails: the channel is a terminal, not a file.
func (l *Layer) Seek(fd int, offset int64, whence int) (int64, error) {
	l.errno = EBADF
	return -1, EBADF
}

// Close is a no-op for the standard streams
func (l *Layer) Close(fd int) (int, error) {
	if _, ok := ParseDescriptor(fd); !ok {
		return l.badDescriptor(fd)
	}
	return 0, nil
}

// Fstat reports the standard streams as character devices
func (l *Layer) Fstat(fd int, st *Stat) (int, error) {
	if st == nil {
		return l.fail(EINVAL)
	}
	if _, ok := ParseDescriptor(fd); !ok {
		return l.badDescriptor(fd)
	}
	st.Dev = fd
	st.Mode = S_IFCHR
	st.Nlink = 1
	return 0, nil
}

// Isatty returns 1 for the standard streams and 0 with EBADF otherwise
func (l *Layer) Isatty(fd int) (int, error) {
	if _, ok := ParseDescriptor(fd); !ok {
		core.RecordEvent(core.EvtBadDescriptor, uint32(fd))
		l.errno = EBADF
		return 0, EBADF
	}
	return 1, nil
}

package retarget

import "io"

// File binds one standard stream to the io interfaces so formatted output
// and input routines can run on top of the Layer.
type File struct {
	l  *Layer
	fd Descriptor
}

var (
	_ io.ReadWriteCloser = (*File)(nil)
	_ io.Seeker          = (*File)(nil)
)

// Stdin returns the input stream
func (l *Layer) Stdin() *File { return &File{l: l, fd: Stdin} }

// Stdout returns the output stream
func (l *Layer) Stdout() *File { return &File{l: l, fd: Stdout} }

// Stderr returns the error stream
func (l *Layer) Stderr() *File { return &File{l: l, fd: Stderr} }

// Fd returns the descriptor number
func (f *File) Fd() int { return int(f.fd) }

// Read returns 0, nil when no input arrived within the read timeout.
// Interactive callers should treat that as "nothing typed yet".
func (f *File) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n, err := f.l.Read(int(f.fd), p)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// Write implements io.Writer. An empty p is a successful no-op here,
// unlike the raw write call.
func (f *File) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n, err := f.l.Write(int(f.fd), p)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// WriteString implements io.StringWriter
func (f *File) WriteString(s string) (int, error) {
	return f.Write([]byte(s))
}

// Seek always fails with EBADF
func (f *File) Seek(offset int64, whence int) (int64, error) {
	return f.l.Seek(int(f.fd), offset, whence)
}

// Close is a no-op
func (f *File) Close() error {
	_, err := f.l.Close(int(f.fd))
	return err
}

// Stat reports the stream as a character device
func (f *File) Stat() (Stat, error) {
	var st Stat
	_, err := f.l.Fstat(int(f.fd), &st)
	return st, err
}

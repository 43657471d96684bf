// Package term talks to the controlling terminal device: transient
// raw-mode cursor position queries and window size reads. Queries go
// through a descriptor opened outside the standard streams so the
// exchange never mixes with relayed data.
package term

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// DefaultDevice is the controlling terminal on POSIX systems.
const DefaultDevice = "/dev/tty"

// ErrBadResponse reports a cursor position report that does not match the
// ESC[{row};{col}R grammar. It is distinguishable from I/O failures so
// callers can tell a confused terminal from a broken descriptor.
var ErrBadResponse = errors.New("unrecognized cursor position report")

// Device is a terminal opened read-write for query/response exchanges.
type Device struct {
	f *os.File
}

// OpenDevice opens the terminal device at path, usually DefaultDevice.
// The path must be a real terminal, not a redirected file.
func OpenDevice(path string) (*Device, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open terminal device: %w", err)
	}
	return &Device{f: f}, nil
}

// NewDevice wraps an already-open terminal, such as one end of a pty.
func NewDevice(f *os.File) *Device {
	return &Device{f: f}
}

// Close releases the underlying descriptor.
func (d *Device) Close() error {
	return d.f.Close()
}

// CursorRow asks the terminal where the cursor is and returns the 1-based
// row. The device is switched to raw mode for the duration of the
// exchange (no echo, no line buffering, reads return on the first byte);
// the original attributes are restored on every path out.
func (d *Device) CursorRow() (int, error) {
	fd := int(d.f.Fd())

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return 0, fmt.Errorf("enter raw mode: %w", err)
	}
	defer term.Restore(fd, oldState) //nolint:errcheck // best-effort restore

	// DSR cursor position request; the terminal answers ESC[{row};{col}R.
	if _, err := d.f.WriteString("\x1b[6n"); err != nil {
		return 0, fmt.Errorf("write cursor report request: %w", err)
	}

	buf := make([]byte, 63)
	n, err := d.f.Read(buf)
	if err != nil {
		return 0, fmt.Errorf("read cursor report: %w", err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("read cursor report: %w", io.ErrUnexpectedEOF)
	}

	return parseCursorReport(buf[:n])
}

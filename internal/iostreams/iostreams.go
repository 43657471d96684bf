// Package iostreams bundles the process streams behind a testable struct.
package iostreams

import (
	"bytes"
	"io"
	"os"

	"golang.org/x/term"
)

// IOStreams provides access to standard input/output/error streams.
// It follows the GitHub CLI pattern for testable I/O.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	// isInputTTY caches whether stdin is a terminal.
	// -1 = unchecked, 0 = false, 1 = true
	isInputTTY int

	// isOutputTTY caches whether stdout is a terminal.
	isOutputTTY int
}

// NewIOStreams creates an IOStreams connected to standard streams.
func NewIOStreams() *IOStreams {
	return &IOStreams{
		In:          os.Stdin,
		Out:         os.Stdout,
		ErrOut:      os.Stderr,
		isInputTTY:  -1,
		isOutputTTY: -1,
	}
}

// Test creates an IOStreams backed by buffers for tests, returning the
// streams plus the out and error buffers.
func Test() (*IOStreams, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &IOStreams{
		In:     &bytes.Buffer{},
		Out:    out,
		ErrOut: errOut,
	}, out, errOut
}

// IsInputTTY returns true if stdin is a terminal.
func (s *IOStreams) IsInputTTY() bool {
	if s.isInputTTY == -1 {
		s.isInputTTY = boolToInt(isTerminal(s.In))
	}
	return s.isInputTTY == 1
}

// IsOutputTTY returns true if stdout is a terminal.
func (s *IOStreams) IsOutputTTY() bool {
	if s.isOutputTTY == -1 {
		s.isOutputTTY = boolToInt(isTerminal(s.Out))
	}
	return s.isOutputTTY == 1
}

// OutFile returns the underlying *os.File of Out when there is one, so
// callers can issue ioctls against the real descriptor. Returns nil for
// buffer-backed test streams.
func (s *IOStreams) OutFile() *os.File {
	if f, ok := s.Out.(*os.File); ok {
		return f
	}
	return nil
}

func isTerminal(v any) bool {
	if f, ok := v.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

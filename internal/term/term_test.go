//go:build !windows

package term

import (
	"os"
	"testing"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openPtyPair returns the master and a Device wrapping the slave, with
// cleanup registered on t.
func openPtyPair(t *testing.T) (*os.File, *Device) {
	t.Helper()

	ptmx, tty, err := pty.Open()
	require.NoError(t, err)
	t.Cleanup(func() {
		ptmx.Close()
		tty.Close()
	})

	return ptmx, NewDevice(tty)
}

func TestDevice_CursorRow(t *testing.T) {
	ptmx, dev := openPtyPair(t)

	// Terminal side: wait for the DSR request, answer with a report.
	reqCh := make(chan string, 1)
	go func() {
		buf := make([]byte, 16)
		n, err := ptmx.Read(buf)
		if err != nil {
			reqCh <- ""
			return
		}
		reqCh <- string(buf[:n])
		_, _ = ptmx.WriteString("\x1b[20;42R")
	}()

	row, err := dev.CursorRow()
	require.NoError(t, err)
	assert.Equal(t, 20, row)
	assert.Equal(t, "\x1b[6n", <-reqCh, "device should send the DSR request")
}

func TestDevice_CursorRow_BadResponse(t *testing.T) {
	ptmx, dev := openPtyPair(t)

	go func() {
		buf := make([]byte, 16)
		if _, err := ptmx.Read(buf); err != nil {
			return
		}
		_, _ = ptmx.WriteString("not a report")
	}()

	_, err := dev.CursorRow()
	assert.ErrorIs(t, err, ErrBadResponse)
}

func TestOpenDevice_Missing(t *testing.T) {
	_, err := OpenDevice("/dev/does-not-exist")
	assert.Error(t, err)
}

func TestWindowSize(t *testing.T) {
	ptmx, tty, err := pty.Open()
	require.NoError(t, err)
	defer ptmx.Close()
	defer tty.Close()

	require.NoError(t, pty.Setsize(ptmx, &pty.Winsize{Rows: 24, Cols: 80}))

	rows, cols := WindowSize(tty)
	assert.Equal(t, 24, rows)
	assert.Equal(t, 80, cols)
}

func TestWindowSize_NotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "plain")
	require.NoError(t, err)
	defer f.Close()

	rows, cols := WindowSize(f)
	assert.Zero(t, rows)
	assert.Zero(t, cols)
}

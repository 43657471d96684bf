package term

import (
	"os"

	"golang.org/x/sys/unix"
)

// WindowSize reports the terminal dimensions of f. A (0, 0) result means
// the size is unavailable; callers must treat zero rows as "no geometry"
// rather than an error, since some environments report success with a
// zeroed struct.
func WindowSize(f *os.File) (rows, cols int) {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0
	}
	return int(ws.Row), int(ws.Col)
}

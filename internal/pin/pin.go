// Package pin owns the pinned-region lifecycle: initial geometry, margin
// installation, signal handling, the relay loop, and the final reset.
package pin

import (
	"errors"
	"fmt"
	"io"

	"github.com/schmitthub/scrollpin/internal/ansi"
	"github.com/schmitthub/scrollpin/internal/logger"
	"github.com/schmitthub/scrollpin/internal/scroll"
	"github.com/schmitthub/scrollpin/internal/signals"
)

// Options configures a Pinner. CursorRow and WindowSize are closures so
// commands wire the real terminal and tests wire fakes.
type Options struct {
	// Height is the requested viewport height in rows.
	Height int

	// In is the data source relayed to Out, byte for byte.
	In io.Reader

	// Out is the terminal the margin sequences and relayed data go to.
	Out io.Writer

	// CursorRow queries the terminal for the 1-based cursor row. Each
	// call is a fresh query; nothing is cached between calls.
	CursorRow func() (int, error)

	// WindowSize reads the terminal dimensions; zero rows means
	// unavailable.
	WindowSize func() (rows, cols int)
}

// Pinner pins a fixed-height viewport near the cursor and keeps it
// consistent across resizes and interrupts until the input stream ends.
type Pinner struct {
	height     int
	in         io.Reader
	out        io.Writer
	cursorRow  func() (int, error)
	windowSize func() (rows, cols int)

	initialRow int
	session    *scroll.Session

	resize    *signals.ResizeHandler
	interrupt *signals.InterruptHandler
}

// New creates a Pinner from the given options.
func New(opts Options) *Pinner {
	return &Pinner{
		height:     opts.Height,
		in:         opts.In,
		out:        opts.Out,
		cursorRow:  opts.CursorRow,
		windowSize: opts.WindowSize,
	}
}

// Session exposes the shared geometry; nil before Setup.
func (p *Pinner) Session() *scroll.Session {
	return p.session
}

// Setup performs the one-shot startup geometry queries. Failure here is
// fatal to startup: the caller reports the error and exits non-zero.
func (p *Pinner) Setup() error {
	row, err := p.cursorRow()
	if err != nil {
		return fmt.Errorf("could not determine cursor position: %w", err)
	}

	rows, cols := p.windowSize()
	if rows == 0 {
		return errors.New("could not determine terminal size")
	}

	p.initialRow = row
	p.session = scroll.NewSession(rows, p.height)

	logger.Debug().
		Int("cursor_row", row).
		Int("rows", rows).
		Int("cols", cols).
		Int("height", p.height).
		Msg("initial geometry")

	return nil
}

// Install scrolls room for the viewport if needed, applies the margin,
// and registers the resize and interrupt handlers. Errors here are soft
// aborts: the terminal is still usable and the caller exits successfully
// without relaying.
func (p *Pinner) Install() error {
	top, err := p.applyMargin(p.session.TotalRows(), p.initialRow)
	if err != nil {
		return err
	}
	if top < 0 {
		return fmt.Errorf("viewport height %d does not fit a %d-row terminal", p.height, p.session.TotalRows())
	}

	p.interrupt = signals.NewInterruptHandler(p.handleInterrupt)
	p.resize = signals.NewResizeHandler(p.handleResize)
	p.interrupt.Start()
	p.resize.Start()

	return nil
}

// Run relays the input stream through the pinned region until it ends,
// then resets the margin exactly once. Relay failures end the stream the
// same way end-of-input does; the reset still runs.
func (p *Pinner) Run() error {
	relayErr := p.relay()

	p.resize.Stop()
	p.interrupt.Stop()

	if relayErr != nil {
		logger.Debug().Err(relayErr).Msg("relay ended on error")
	}

	_, err := p.out.Write(ansi.ResetMargin(p.session.TotalRows()))
	return err
}

// applyMargin runs the planner for the given geometry, emits blank lines
// when the viewport needs room, and sets the margin for any non-negative
// top row. It returns the planned top row.
func (p *Pinner) applyMargin(totalRows, cursorRow int) (int, error) {
	top, insert := scroll.Plan(totalRows, cursorRow, p.height)
	if insert {
		if err := ansi.WriteBlankLines(p.out, p.height); err != nil {
			return top, fmt.Errorf("scroll existing content: %w", err)
		}
	}
	if top >= 0 {
		if _, err := p.out.Write(ansi.SetMargin(top, p.height)); err != nil {
			return top, fmt.Errorf("set margin: %w", err)
		}
	}
	return top, nil
}

// handleResize re-derives the margin for the new terminal geometry. Any
// query failure skips the cycle and leaves the session untouched — resize
// adjustment is best-effort.
func (p *Pinner) handleResize() {
	if _, err := p.out.Write(ansi.ResetMargin(p.session.TotalRows())); err != nil {
		return
	}
	if _, err := io.WriteString(p.out, ansi.RestoreCursor); err != nil {
		return
	}

	rows, _ := p.windowSize()
	cursorRow, err := p.cursorRow()
	if err != nil || rows == 0 || cursorRow == 0 {
		logger.Debug().Err(err).Int("rows", rows).Msg("skipping resize cycle")
		return
	}

	if _, err := p.applyMargin(rows, cursorRow); err != nil {
		return
	}

	p.session.SetTotalRows(rows)
}

// handleInterrupt restores the full-screen margin with the last-known row
// count; the signal framework then re-raises for default termination.
func (p *Pinner) handleInterrupt() {
	_, _ = p.out.Write(ansi.ResetMargin(p.session.TotalRows()))
}

// relay forwards 64KiB chunks from in to out until end-of-stream, a read
// error, or a write failure.
func (p *Pinner) relay() error {
	buf := make([]byte, 64*1024)
	for {
		n, err := p.in.Read(buf)
		if n > 0 {
			if werr := writeAll(p.out, buf[:n]); werr != nil {
				return werr
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// writeAll loops on partial writes until the chunk is flushed.
func writeAll(w io.Writer, b []byte) error {
	for len(b) > 0 {
		n, err := w.Write(b)
		if err != nil {
			return err
		}
		b = b[n:]
	}
	return nil
}

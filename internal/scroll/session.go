package scroll

import "sync/atomic"

// Session is the geometry shared between the relay and the signal
// handlers: the viewport height requested at startup (immutable) and the
// most recently observed terminal row count. The row count is updated only
// by the resize path and read incidentally by the interrupt path, so an
// atomic cell is all the coordination required — handlers are dispatched
// from a single notification goroutine and never overlap.
type Session struct {
	height    int
	totalRows atomic.Int64
}

// NewSession seeds the session with the startup geometry.
func NewSession(totalRows, height int) *Session {
	s := &Session{height: height}
	s.totalRows.Store(int64(totalRows))
	return s
}

// Height returns the viewport height fixed at startup.
func (s *Session) Height() int {
	return s.height
}

// TotalRows returns the last observed terminal row count.
func (s *Session) TotalRows() int {
	return int(s.totalRows.Load())
}

// SetTotalRows records a newly observed terminal row count.
func (s *Session) SetTotalRows(n int) {
	s.totalRows.Store(int64(n))
}

// Package signals provides OS signal plumbing for the pinned region:
// resize propagation and interrupt cleanup. It takes closures so the
// caller decides what a resize or an interrupt means — keeping this
// package a leaf with no terminal imports and no logging.
//
// Handlers run on ordinary goroutines fed by the runtime's signal
// delivery, so they are free to allocate; the runtime installs its
// handlers with SA_RESTART, so reads blocked in the relay resume after a
// signal instead of failing with EINTR.
package signals

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// ResizeHandler invokes a callback whenever the terminal reports a size
// change (SIGWINCH).
type ResizeHandler struct {
	sigChan  chan os.Signal
	onResize func()
	done     chan struct{}
	stopOnce sync.Once
}

// NewResizeHandler creates a handler that calls onResize for each
// SIGWINCH delivery.
func NewResizeHandler(onResize func()) *ResizeHandler {
	return &ResizeHandler{
		sigChan:  make(chan os.Signal, 1),
		onResize: onResize,
		done:     make(chan struct{}),
	}
}

// Start begins listening for resize signals.
func (h *ResizeHandler) Start() {
	signal.Notify(h.sigChan, syscall.SIGWINCH)

	go h.handle()
}

// Stop stops listening for resize signals. Safe to call multiple times.
func (h *ResizeHandler) Stop() {
	h.stopOnce.Do(func() {
		signal.Stop(h.sigChan)
		close(h.done)
	})
}

func (h *ResizeHandler) handle() {
	for {
		select {
		case <-h.done:
			return
		case <-h.sigChan:
			h.TriggerResize()
		}
	}
}

// TriggerResize runs the resize callback as if a signal had arrived.
func (h *ResizeHandler) TriggerResize() {
	if h.onResize != nil {
		h.onResize()
	}
}

// InterruptHandler runs a cleanup function when SIGINT arrives, then
// restores the default disposition and re-raises the signal so the
// process terminates the way an unhandled interrupt would. The re-raise
// is explicit rather than left to platform defaults.
type InterruptHandler struct {
	sigChan  chan os.Signal
	cleanup  func()
	done     chan struct{}
	stopOnce sync.Once

	// raise delivers the fatal signal after cleanup; replaceable in tests.
	raise func()
}

// NewInterruptHandler creates a handler that calls cleanup once on SIGINT
// before letting the signal kill the process.
func NewInterruptHandler(cleanup func()) *InterruptHandler {
	return &InterruptHandler{
		sigChan: make(chan os.Signal, 1),
		cleanup: cleanup,
		done:    make(chan struct{}),
		raise: func() {
			_ = syscall.Kill(syscall.Getpid(), syscall.SIGINT)
		},
	}
}

// Start begins listening for the interrupt signal.
func (h *InterruptHandler) Start() {
	signal.Notify(h.sigChan, syscall.SIGINT)

	go h.handle()
}

// Stop stops listening without running cleanup. Safe to call multiple
// times.
func (h *InterruptHandler) Stop() {
	h.stopOnce.Do(func() {
		signal.Stop(h.sigChan)
		close(h.done)
	})
}

func (h *InterruptHandler) handle() {
	select {
	case <-h.done:
		return
	case <-h.sigChan:
	}

	if h.cleanup != nil {
		h.cleanup()
	}

	signal.Stop(h.sigChan)
	signal.Reset(syscall.SIGINT)
	h.raise()
}

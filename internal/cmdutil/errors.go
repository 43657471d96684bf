package cmdutil

import (
	"errors"
	"fmt"
)

// ExitError carries an explicit process exit code. Commands return this
// instead of calling os.Exit() directly, allowing deferred cleanup to run;
// the entry point performs the actual exit. A zero code is legal: setup
// failures after the initial geometry query are soft aborts that exit 0.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// FlagError indicates bad flags or arguments. The entry point prints the
// error message followed by the command's usage string.
type FlagError struct {
	err error
}

func (e *FlagError) Error() string { return e.err.Error() }
func (e *FlagError) Unwrap() error { return e.err }

// FlagErrorf creates a FlagError with a formatted message.
func FlagErrorf(format string, args ...any) error {
	return &FlagError{err: fmt.Errorf(format, args...)}
}

// SilentError signals that the error has already been displayed to the
// user. The entry point exits non-zero without printing anything more.
var SilentError = errors.New("SilentError")

// Package scrollpin hosts the CLI entry point.
package scrollpin

import (
	"errors"
	"fmt"

	"github.com/schmitthub/scrollpin/internal/cmd/root"
	"github.com/schmitthub/scrollpin/internal/cmdutil"
	"github.com/schmitthub/scrollpin/internal/logger"
)

// Build-time variables injected via ldflags
var (
	Version   = "dev"
	BuildDate = ""
)

// Main is the entry point for the scrollpin CLI. It builds the Factory,
// executes the root command, and maps errors to exit codes: usage errors
// and initial geometry failures exit 1; soft aborts carry their own code
// through ExitError (historically 0 — the terminal is left usable and
// nothing was relayed).
func Main() int {
	// Ensure logs are flushed on exit
	defer logger.CloseFileWriter()

	f := cmdutil.New(Version, BuildDate)

	rootCmd := root.NewCmdRoot(f, Version, BuildDate)

	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		var exitErr *cmdutil.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		if errors.Is(err, cmdutil.SilentError) {
			return 1
		}

		fmt.Fprintln(f.IOStreams.ErrOut, err)

		var flagErr *cmdutil.FlagError
		if errors.As(err, &flagErr) {
			fmt.Fprint(f.IOStreams.ErrOut, cmd.UsageString())
		}
		return 1
	}

	return 0
}

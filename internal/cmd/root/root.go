// Package root builds the scrollpin root command.
package root

import (
	"strconv"

	"github.com/spf13/cobra"

	versioncmd "github.com/schmitthub/scrollpin/internal/cmd/version"
	"github.com/schmitthub/scrollpin/internal/cmdutil"
	"github.com/schmitthub/scrollpin/internal/config"
	"github.com/schmitthub/scrollpin/internal/logger"
	"github.com/schmitthub/scrollpin/internal/pin"
)

// NewCmdRoot creates the root command for the scrollpin CLI.
func NewCmdRoot(f *cmdutil.Factory, version, buildDate string) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "scrollpin HEIGHT",
		Short: "Pin a scrolling viewport of HEIGHT rows at the cursor",
		Long: `Scrollpin restricts terminal scrolling to a fixed-height region anchored
near the current cursor position, then relays standard input to standard
output through it. Everything printed above the region stays put; the
region follows terminal resizes and is dismantled when the input ends.

Example:
  tail -f build.log | scrollpin 10`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return cmdutil.FlagErrorf("missing or incorrect height parameter")
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initializeLogger(f, debug)

			logger.Debug().
				Str("version", f.Version).
				Bool("debug", debug).
				Msg("scrollpin starting")

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			height, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil || height == 0 {
				return cmdutil.FlagErrorf("missing or incorrect height parameter")
			}
			return runPin(f, int(height))
		},
	}

	cmd.PersistentFlags().BoolVarP(&debug, "debug", "D", false, "Enable debug logging")

	cmd.SetVersionTemplate(versioncmd.Format(version, buildDate))
	cmd.Version = version

	cmd.AddCommand(versioncmd.NewCmdVersion(f, version, buildDate))

	return cmd
}

// runPin drives the pinned-region lifecycle. Initial geometry failures
// propagate (the CLI exits 1); failures after that are soft aborts that
// leave the terminal usable and exit 0, same as the margin setup having
// never happened.
func runPin(f *cmdutil.Factory, height int) error {
	p := pin.New(pin.Options{
		Height: height,
		In:     f.IOStreams.In,
		Out:    f.IOStreams.Out,
		CursorRow: func() (int, error) {
			dev, err := f.OpenDevice()
			if err != nil {
				return 0, err
			}
			defer dev.Close()
			return dev.CursorRow()
		},
		WindowSize: f.WindowSize,
	})

	if err := p.Setup(); err != nil {
		return err
	}

	if err := p.Install(); err != nil {
		logger.Debug().Err(err).Msg("margin setup aborted")
		return &cmdutil.ExitError{Code: 0}
	}

	if err := p.Run(); err != nil {
		logger.Debug().Err(err).Msg("final margin reset failed")
	}

	return nil
}

// initializeLogger sets up the logger, adding the rotating file sink when
// settings enable it. Falls back to console-only logging on any error.
func initializeLogger(f *cmdutil.Factory, debug bool) {
	settings, err := f.Settings()
	if err != nil {
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to load settings")
		return
	}

	if !settings.Logging.IsFileEnabled() {
		logger.Init(debug)
		return
	}

	path, err := config.LogFilePath(settings)
	if err != nil {
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to resolve log path")
		return
	}

	err = logger.InitWithFile(logger.FileConfig{
		Path:       path,
		MaxSizeMB:  settings.Logging.GetMaxSizeMB(),
		MaxAgeDays: settings.Logging.GetMaxAgeDays(),
		MaxBackups: settings.Logging.GetMaxBackups(),
		Compress:   settings.Logging.IsCompressEnabled(),
	}, debug)
	if err != nil {
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable")
	}
}

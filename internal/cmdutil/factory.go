// Package cmdutil provides shared plumbing for CLI commands: the
// dependency Factory and the error types the entry point maps to exit
// codes.
package cmdutil

import (
	"os"

	"github.com/schmitthub/scrollpin/internal/config"
	"github.com/schmitthub/scrollpin/internal/iostreams"
	"github.com/schmitthub/scrollpin/internal/term"
)

// Factory provides shared dependencies for CLI commands. It is a
// dependency injection container: commands extract only the fields they
// need, and tests swap in fakes.
type Factory struct {
	// Version info (set at build time via ldflags)
	Version   string
	BuildDate string

	// IO streams for input/output (for testability)
	IOStreams *iostreams.IOStreams

	// Settings loads user settings; memoized by the constructor.
	Settings func() (*config.Settings, error)

	// OpenDevice opens the controlling terminal for cursor queries.
	OpenDevice func() (*term.Device, error)

	// WindowSize reads the stdout terminal dimensions; zero rows means
	// unavailable.
	WindowSize func() (rows, cols int)
}

// New creates a Factory wired to the real environment.
func New(version, buildDate string) *Factory {
	f := &Factory{
		Version:   version,
		BuildDate: buildDate,
		IOStreams: iostreams.NewIOStreams(),
	}

	var (
		settings    *config.Settings
		settingsErr error
		loaded      bool
	)
	f.Settings = func() (*config.Settings, error) {
		if !loaded {
			loaded = true
			settings, settingsErr = loadSettings()
		}
		return settings, settingsErr
	}

	f.OpenDevice = func() (*term.Device, error) {
		device := term.DefaultDevice
		if s, err := f.Settings(); err == nil {
			device = s.Terminal.GetDevice()
		}
		return term.OpenDevice(device)
	}

	f.WindowSize = func() (rows, cols int) {
		if out := f.IOStreams.OutFile(); out != nil {
			return term.WindowSize(out)
		}
		return term.WindowSize(os.Stdout)
	}

	return f
}

func loadSettings() (*config.Settings, error) {
	loader, err := config.NewSettingsLoader()
	if err != nil {
		return nil, err
	}
	return loader.Load()
}

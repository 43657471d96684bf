//go:build !windows

package root

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/scrollpin/internal/cmdutil"
	"github.com/schmitthub/scrollpin/internal/config"
	"github.com/schmitthub/scrollpin/internal/iostreams"
	"github.com/schmitthub/scrollpin/internal/term"
)

func testFactory(t *testing.T) (*cmdutil.Factory, *bytes.Buffer) {
	t.Helper()

	ios, out, _ := iostreams.Test()
	f := &cmdutil.Factory{
		Version:   "test",
		IOStreams: ios,
		Settings: func() (*config.Settings, error) {
			return config.DefaultSettings(), nil
		},
		OpenDevice: func() (*term.Device, error) {
			return nil, errors.New("no terminal in tests")
		},
		WindowSize: func() (int, int) { return 0, 0 },
	}
	return f, out
}

func executeWith(t *testing.T, f *cmdutil.Factory, args ...string) error {
	t.Helper()

	cmd := NewCmdRoot(f, "test", "")
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd.Execute()
}

func TestRoot_MissingHeight(t *testing.T) {
	f, _ := testFactory(t)

	err := executeWith(t, f)
	var flagErr *cmdutil.FlagError
	require.ErrorAs(t, err, &flagErr)
	assert.Contains(t, err.Error(), "height")
}

func TestRoot_ZeroHeight(t *testing.T) {
	f, _ := testFactory(t)

	err := executeWith(t, f, "0")
	var flagErr *cmdutil.FlagError
	assert.ErrorAs(t, err, &flagErr)
}

func TestRoot_NonNumericHeight(t *testing.T) {
	f, _ := testFactory(t)

	err := executeWith(t, f, "ten")
	var flagErr *cmdutil.FlagError
	assert.ErrorAs(t, err, &flagErr)
}

func TestRoot_GeometryFailureIsFatal(t *testing.T) {
	f, _ := testFactory(t)

	err := executeWith(t, f, "10")
	require.Error(t, err)

	var exitErr *cmdutil.ExitError
	assert.False(t, errors.As(err, &exitErr), "geometry failures are real errors, not soft aborts")
}

func TestRoot_EndToEnd(t *testing.T) {
	ptmx, tty, err := pty.Open()
	require.NoError(t, err)
	defer ptmx.Close()
	defer tty.Close()

	// Terminal side: answer the single DSR query with row 20.
	go func() {
		buf := make([]byte, 16)
		if _, err := ptmx.Read(buf); err != nil {
			return
		}
		_, _ = ptmx.WriteString("\x1b[20;1R")
	}()

	ios, out, _ := iostreams.Test()
	ios.In = strings.NewReader("payload")
	f := &cmdutil.Factory{
		Version:   "test",
		IOStreams: ios,
		Settings: func() (*config.Settings, error) {
			return config.DefaultSettings(), nil
		},
		OpenDevice: func() (*term.Device, error) {
			return term.NewDevice(tty), nil
		},
		WindowSize: func() (int, int) { return 24, 80 },
	}

	require.NoError(t, executeWith(t, f, "10"))

	want := strings.Repeat("\n", 10) +
		"\x1b[14;24r\x1b[14;1H\x1b7" +
		"payload" +
		"\x1b[s\x1b[1;24r\x1b[u"
	assert.Equal(t, want, out.String())
}

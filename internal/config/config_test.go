package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SettingsFileName), []byte(content), 0o644))
	return dir
}

func newLoaderFor(t *testing.T, dir string) *SettingsLoader {
	t.Helper()

	t.Setenv("SCROLLPIN_CONFIG_DIR", dir)
	l, err := NewSettingsLoader()
	require.NoError(t, err)
	return l
}

func TestSettingsLoader_MissingFile(t *testing.T) {
	l := newLoaderFor(t, t.TempDir())

	s, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, "/dev/tty", s.Terminal.GetDevice())
	assert.False(t, s.Logging.IsFileEnabled())
	assert.Equal(t, 10, s.Logging.GetMaxSizeMB())
	assert.Equal(t, 7, s.Logging.GetMaxAgeDays())
	assert.Equal(t, 3, s.Logging.GetMaxBackups())
	assert.True(t, s.Logging.IsCompressEnabled())
}

func TestSettingsLoader_FromFile(t *testing.T) {
	dir := writeSettings(t, `
terminal:
  device: /dev/pts/7
logging:
  file_enabled: true
  max_size_mb: 25
  compress: false
`)
	l := newLoaderFor(t, dir)

	s, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, "/dev/pts/7", s.Terminal.GetDevice())
	assert.True(t, s.Logging.IsFileEnabled())
	assert.Equal(t, 25, s.Logging.GetMaxSizeMB())
	assert.False(t, s.Logging.IsCompressEnabled())
	assert.Equal(t, 7, s.Logging.GetMaxAgeDays(), "unset fields keep defaults")
}

func TestSettingsLoader_EnvOverride(t *testing.T) {
	dir := writeSettings(t, "terminal:\n  device: /dev/pts/1\n")
	l := newLoaderFor(t, dir)

	t.Setenv("SCROLLPIN_TERMINAL_DEVICE", "/dev/pts/9")

	s, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, "/dev/pts/9", s.Terminal.GetDevice())
}

func TestSettingsLoader_MalformedFile(t *testing.T) {
	dir := writeSettings(t, "logging: [not a map")
	l := newLoaderFor(t, dir)

	_, err := l.Load()
	assert.Error(t, err)
}

func TestSettingsLoader_Path(t *testing.T) {
	dir := t.TempDir()
	l := newLoaderFor(t, dir)

	assert.Equal(t, filepath.Join(dir, SettingsFileName), l.Path())
}

func TestLogFilePath(t *testing.T) {
	s := &Settings{}
	s.Logging.File = "/tmp/custom.log"
	path, err := LogFilePath(s)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.log", path)

	path, err = LogFilePath(&Settings{})
	require.NoError(t, err)
	assert.Contains(t, path, filepath.Join(".local", "state", "scrollpin"))
}

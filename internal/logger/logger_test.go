package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Level(t *testing.T) {
	Init(false)
	assert.Equal(t, zerolog.InfoLevel, Log.GetLevel())

	Init(true)
	assert.Equal(t, zerolog.DebugLevel, Log.GetLevel())
}

func TestInitWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "scrollpin.log")

	err := InitWithFile(FileConfig{
		Path:       path,
		MaxSizeMB:  1,
		MaxAgeDays: 1,
		MaxBackups: 1,
	}, true)
	require.NoError(t, err)
	defer CloseFileWriter()

	Debug().Str("component", "test").Msg("file sink check")
	CloseFileWriter()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "file sink check")
	assert.Contains(t, string(data), `"component":"test"`)
}

func TestCloseFileWriter_Idempotent(t *testing.T) {
	CloseFileWriter()
	CloseFileWriter()
}

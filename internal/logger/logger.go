// Package logger provides the global zerolog logger. Console output goes
// to stderr and is reserved for startup problems; once the margin is
// installed the terminal belongs to the relayed stream, so diagnostics go
// to a rotating file when file logging is enabled.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Log is the global logger instance.
	Log zerolog.Logger

	// fileWriter is the rotating file output, nil unless enabled.
	fileWriter *lumberjack.Logger
)

func init() {
	Init(false)
}

// Init configures console-only logging on stderr.
func Init(debug bool) {
	Log = zerolog.New(consoleWriter()).
		Level(level(debug)).
		With().
		Timestamp().
		Logger()
}

// FileConfig holds the rotation knobs for file logging. It mirrors
// internal/config.LoggingConfig getters so this package stays free of the
// config import.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxAgeDays int
	MaxBackups int
	Compress   bool
}

// InitWithFile configures logging to a rotating file in addition to the
// stderr console writer. The console half only passes warnings and above
// so normal operation never writes inside the pinned region.
func InitWithFile(cfg FileConfig, debug bool) error {
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	fileWriter = &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxAge:     cfg.MaxAgeDays,
		MaxBackups: cfg.MaxBackups,
		Compress:   cfg.Compress,
	}

	console := &zerolog.FilteredLevelWriter{
		Writer: zerolog.LevelWriterAdapter{Writer: consoleWriter()},
		Level:  zerolog.WarnLevel,
	}

	Log = zerolog.New(zerolog.MultiLevelWriter(console, fileWriter)).
		Level(level(debug)).
		With().
		Timestamp().
		Logger()

	return nil
}

// CloseFileWriter flushes and closes the log file, if any.
func CloseFileWriter() {
	if fileWriter != nil {
		_ = fileWriter.Close()
		fileWriter = nil
	}
}

func consoleWriter() io.Writer {
	return zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
}

func level(debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

// Debug logs a debug message.
func Debug() *zerolog.Event {
	return Log.Debug()
}

// Info logs an info message.
func Info() *zerolog.Event {
	return Log.Info()
}

// Warn logs a warning message.
func Warn() *zerolog.Event {
	return Log.Warn()
}

// Error logs an error message.
func Error() *zerolog.Event {
	return Log.Error()
}

// Package config loads user-level settings for scrollpin. Everything has
// a working default; the settings file is optional.
package config

import "github.com/schmitthub/scrollpin/internal/term"

// Settings represents user configuration stored in
// ~/.config/scrollpin/settings.yaml, overridable via SCROLLPIN_* env vars.
type Settings struct {
	// Terminal configures how the controlling terminal is reached.
	Terminal TerminalConfig `yaml:"terminal,omitempty" mapstructure:"terminal"`

	// Logging configures file-based diagnostic logging. File logging is
	// DISABLED by default — this tool owns the terminal while running, so
	// log output belongs in a file, and only when asked for.
	Logging LoggingConfig `yaml:"logging,omitempty" mapstructure:"logging"`
}

// TerminalConfig configures terminal device access.
type TerminalConfig struct {
	// Device is the path used for cursor position queries (default: /dev/tty).
	Device string `yaml:"device,omitempty" mapstructure:"device"`
}

// GetDevice returns the terminal device path, defaulting to the
// controlling terminal.
func (c *TerminalConfig) GetDevice() string {
	if c.Device == "" {
		return term.DefaultDevice
	}
	return c.Device
}

// LoggingConfig configures file-based logging.
type LoggingConfig struct {
	// FileEnabled enables logging to file (default: false)
	FileEnabled *bool `yaml:"file_enabled,omitempty" mapstructure:"file_enabled"`
	// File is the log file path (default: ~/.local/state/scrollpin/scrollpin.log)
	File string `yaml:"file,omitempty" mapstructure:"file"`
	// MaxSizeMB is the max size in MB before rotation (default: 10)
	MaxSizeMB int `yaml:"max_size_mb,omitempty" mapstructure:"max_size_mb"`
	// MaxAgeDays is max days to retain old logs (default: 7)
	MaxAgeDays int `yaml:"max_age_days,omitempty" mapstructure:"max_age_days"`
	// MaxBackups is max number of old log files to keep (default: 3)
	MaxBackups int `yaml:"max_backups,omitempty" mapstructure:"max_backups"`
	// Compress enables gzip compression of rotated log files (default: true)
	Compress *bool `yaml:"compress,omitempty" mapstructure:"compress"`
}

// IsFileEnabled returns whether file logging is enabled.
func (c *LoggingConfig) IsFileEnabled() bool {
	if c.FileEnabled == nil {
		return false
	}
	return *c.FileEnabled
}

// GetMaxSizeMB returns the max size in MB, defaulting to 10 if not set.
func (c *LoggingConfig) GetMaxSizeMB() int {
	if c.MaxSizeMB <= 0 {
		return 10
	}
	return c.MaxSizeMB
}

// GetMaxAgeDays returns the max age in days, defaulting to 7 if not set.
func (c *LoggingConfig) GetMaxAgeDays() int {
	if c.MaxAgeDays <= 0 {
		return 7
	}
	return c.MaxAgeDays
}

// GetMaxBackups returns the max backups, defaulting to 3 if not set.
func (c *LoggingConfig) GetMaxBackups() int {
	if c.MaxBackups <= 0 {
		return 3
	}
	return c.MaxBackups
}

// IsCompressEnabled returns whether rotated logs are compressed.
func (c *LoggingConfig) IsCompressEnabled() bool {
	if c.Compress == nil {
		return true
	}
	return *c.Compress
}

// DefaultSettings returns settings with every field at its default.
func DefaultSettings() *Settings {
	return &Settings{}
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	// SettingsFileName is the name of the user settings file.
	SettingsFileName = "settings.yaml"

	// envPrefix namespaces environment overrides, e.g.
	// SCROLLPIN_TERMINAL_DEVICE, SCROLLPIN_LOGGING_FILE.
	envPrefix = "SCROLLPIN"
)

// SettingsLoader reads user settings with viper: a YAML file plus
// SCROLLPIN_* environment overrides.
type SettingsLoader struct {
	viper *viper.Viper
	path  string
}

// NewSettingsLoader resolves the settings path from SCROLLPIN_CONFIG_DIR
// or the user config directory.
func NewSettingsLoader() (*SettingsLoader, error) {
	dir := os.Getenv("SCROLLPIN_CONFIG_DIR")
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w", err)
		}
		dir = filepath.Join(base, "scrollpin")
	}
	return &SettingsLoader{
		viper: viper.New(),
		path:  filepath.Join(dir, SettingsFileName),
	}, nil
}

// Path returns the full path to the settings file.
func (l *SettingsLoader) Path() string {
	return l.path
}

// Load reads and parses the settings file. A missing file yields defaults
// (environment overrides still apply), not an error.
func (l *SettingsLoader) Load() (*Settings, error) {
	v := l.viper
	v.SetConfigFile(l.path)
	v.SetConfigType("yaml")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// String keys must be known to viper for AutomaticEnv to surface them.
	v.SetDefault("terminal.device", "")
	v.SetDefault("logging.file", "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	return &settings, nil
}

// LogFilePath returns the log file location for the given settings,
// defaulting to the user state directory.
func LogFilePath(s *Settings) (string, error) {
	if s.Logging.File != "" {
		return s.Logging.File, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".local", "state", "scrollpin", "scrollpin.log"), nil
}

// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/chrono/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"`
	Editor EditorConfig  `toml:"editor"`
	UI     UIConfig      `toml:"ui"`

	// Run mode, set from flags only.
	ScriptPath string `toml:"-"`
	Demo       bool   `toml:"-"`
}

// EditorConfig holds the initial document and clipboard settings.
type EditorConfig struct {
	InitialContent  string `toml:"initial_content"`
	InitialCursor   int    `toml:"initial_cursor"`
	SystemClipboard bool   `toml:"system_clipboard"`
}

// UIConfig holds terminal frontend settings.
type UIConfig struct {
	MessageTimeout Duration `toml:"message_timeout"`
	ShowHistory    bool     `toml:"show_history"`
	ThemeFile      string   `toml:"theme_file"` // Empty selects the built-in theme
}

// Duration decodes TOML strings such as "4s" or "1500ms".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			LogLevel:    "info",
			LogFilePath: "",
		},
		Editor: EditorConfig{
			InitialContent:  DefaultInitialContent,
			InitialCursor:   DefaultInitialCursor,
			SystemClipboard: SystemClipboard,
		},
		UI: UIConfig{
			MessageTimeout: Duration{MessageTimeout},
			ShowHistory:    ShowHistory,
		},
	}
}

// DefaultPath returns the config file location under the user config directory.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName), nil
}

// decodeFile decodes a TOML file over cfg.
// A missing file is not an error; found reports whether the file existed.
func decodeFile(filePath string, cfg *Config) (undecoded []string, found bool, err error) {
	_, err = os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return nil, true, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	for _, key := range metadata.Undecoded() {
		undecoded = append(undecoded, key.String())
	}
	return undecoded, true, nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.InitialCursor < 0 {
		c.Editor.InitialCursor = defaults.Editor.InitialCursor
	}
	if _, ok := logger.ParseLevel(c.Logger.LogLevel); !ok || c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if c.UI.MessageTimeout.Duration <= 0 {
		c.UI.MessageTimeout = defaults.UI.MessageTimeout
	}
}

// Load builds the configuration from defaults, the TOML file and flag overrides.
// An empty configFilePath selects DefaultPath. flags may be nil.
// Logging is not set up yet, so unknown keys are returned as warnings for the caller to log.
func Load(configFilePath string, flags *Flags) (cfg *Config, warnings []string, err error) {
	cfg = NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		if p, derr := DefaultPath(); derr == nil {
			effectivePath = p
		}
	}

	if effectivePath != "" {
		undecoded, found, derr := decodeFile(effectivePath, cfg)
		if derr != nil {
			return nil, nil, derr
		}
		if found && len(undecoded) > 0 {
			warnings = append(warnings, fmt.Sprintf("config file '%s': unrecognized keys: %s", effectivePath, strings.Join(undecoded, ", ")))
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}

	cfg.validate()
	return cfg, warnings, nil
}

package config

import (
	"fmt"
	"strings"

	"github.com/dshills/kilo/internal/config/loader"
	"github.com/dshills/kilo/internal/input/key"
)

// EnvPrefix is the prefix of environment variables read by FromEnv.
const EnvPrefix = "KILO_"

// Setting paths.
const (
	PathLogFile  = "logging.file"
	PathLogLevel = "logging.level"
	PathQuitKey  = "keys.quit"
)

// Config holds the viewer settings.
type Config struct {
	// LogFile is where log lines go. Empty disables logging, since the
	// terminal itself is in raw mode.
	LogFile string

	// LogLevel is the minimum level logged.
	LogLevel string

	// QuitKey is the key specification that exits, e.g. "Ctrl+Q".
	QuitKey string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel: "info",
		QuitKey:  "Ctrl+Q",
	}
}

// Paths returns every setting path in a stable order.
func Paths() []string {
	return []string{PathLogFile, PathLogLevel, PathQuitKey}
}

// Set assigns a setting by path. The value is not validated; call
// Validate once every layer has been applied.
func (c *Config) Set(path, value string) error {
	switch path {
	case PathLogFile:
		c.LogFile = value
	case PathLogLevel:
		c.LogLevel = value
	case PathQuitKey:
		c.QuitKey = value
	default:
		return fmt.Errorf("%w: %s", ErrSettingNotFound, path)
	}
	return nil
}

// ApplyEnv overrides settings with the values env provides.
func (c *Config) ApplyEnv(env *loader.EnvLoader) {
	for _, path := range Paths() {
		if v, ok := env.LookupString(path); ok {
			_ = c.Set(path, v)
		}
	}
}

// FromEnv returns the defaults overridden by the variables env provides.
func FromEnv(env *loader.EnvLoader) Config {
	cfg := Default()
	cfg.ApplyEnv(env)
	return cfg
}

// Validate checks every setting.
func (c Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{
			Path:    PathLogLevel,
			Value:   c.LogLevel,
			Message: "must be debug, info, warn or error",
		}
	}

	if _, err := c.QuitEvent(); err != nil {
		return err
	}
	return nil
}

// QuitEvent parses QuitKey. Keys the terminal cannot deliver, such as
// Alt+x or Ctrl+Up, are rejected since they could never end the session.
func (c Config) QuitEvent() (key.Event, error) {
	ev, err := key.Parse(c.QuitKey)
	if err != nil {
		return key.Event{}, &ValidationError{
			Path:    PathQuitKey,
			Value:   c.QuitKey,
			Message: "not a key specification",
			Err:     err,
		}
	}
	if !key.Decodable(ev) {
		return key.Event{}, &ValidationError{
			Path:    PathQuitKey,
			Value:   c.QuitKey,
			Message: "no key press produces this key",
		}
	}
	return ev, nil
}

package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/viper"
)

type (
	// Config holds all configuration settings.
	Config struct {
		v             *viper.Viper
		Notes         NotesConfig        `mapstructure:"notes"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Log           LogConfig          `mapstructure:"log"`
		Timer         TimerConfig        `mapstructure:"timer"`
		Display       DisplayConfig      `mapstructure:"display"`
	}

	// TimerConfig holds the phase durations in whole minutes.
	TimerConfig struct {
		FocusMinutes int `mapstructure:"focus_minutes"`
		BreakMinutes int `mapstructure:"break_minutes"`
	}

	// NotificationConfig holds phase completion alert settings.
	NotificationConfig struct {
		Sound   string `mapstructure:"sound"`
		Cmd     string `mapstructure:"cmd"`
		Enabled bool   `mapstructure:"enabled"`
	}

	// NotesConfig holds the remote notes API settings.
	NotesConfig struct {
		APIURL  string        `mapstructure:"api_url"`
		Timeout time.Duration `mapstructure:"timeout"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
	}

	// LogConfig holds logging settings.
	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

const (
	DefaultFocusMinutes = 25
	DefaultBreakMinutes = 5
	DefaultAPIURL       = "http://localhost:5000/api"
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		Timer: TimerConfig{
			FocusMinutes: DefaultFocusMinutes,
			BreakMinutes: DefaultBreakMinutes,
		},
		Notifications: NotificationConfig{
			Enabled: true,
		},
		Notes: NotesConfig{
			APIURL:  DefaultAPIURL,
			Timeout: 15 * time.Second,
		},
		Display: DisplayConfig{
			DarkTheme: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// New creates a new Config with default values and applies options.
func New(opts ...Option) (*Config, error) {
	cfg := Default()

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", errConfigValidation.Message, err)
	}

	return cfg, nil
}

// FocusMinutes returns the configured focus phase length.
func (c *Config) FocusMinutes() int {
	return c.Timer.FocusMinutes
}

// BreakMinutes returns the configured break phase length.
func (c *Config) BreakMinutes() int {
	return c.Timer.BreakMinutes
}

// SetDurations validates and stores new phase durations. When the config was
// loaded from a file, the file is rewritten.
func (c *Config) SetDurations(focusMins, breakMins int) error {
	if err := ValidateDurations(focusMins, breakMins); err != nil {
		return err
	}

	c.Timer.FocusMinutes = focusMins
	c.Timer.BreakMinutes = breakMins

	if c.v == nil {
		return nil
	}

	c.v.Set(keyFocusMinutes, focusMins)
	c.v.Set(keyBreakMinutes, breakMins)

	if err := c.v.WriteConfig(); err != nil {
		return errWriteConfig.Wrap(err)
	}

	return nil
}

// Path returns the file the config was loaded from, if any.
func (c *Config) Path() string {
	if c.v == nil {
		return ""
	}

	return c.v.ConfigFileUsed()
}

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// viper keys mirror the mapstructure tags on Config.
const (
	keyFocusMinutes         = "timer.focus_minutes"
	keyBreakMinutes         = "timer.break_minutes"
	keyNotificationsEnabled = "notifications.enabled"
	keyNotificationSound    = "notifications.sound"
	keyNotificationCmd      = "notifications.cmd"
	keyNotesAPIURL          = "notes.api_url"
	keyNotesTimeout         = "notes.timeout"
	keyDarkTheme            = "display.dark_theme"
	keyLogLevel             = "log.level"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath, writing the current values as defaults when the file
// does not exist yet.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		c.v = v

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper registers the values already present on c as Viper defaults.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyFocusMinutes, c.Timer.FocusMinutes)
	v.SetDefault(keyBreakMinutes, c.Timer.BreakMinutes)
	v.SetDefault(keyNotificationsEnabled, c.Notifications.Enabled)
	v.SetDefault(keyNotificationSound, c.Notifications.Sound)
	v.SetDefault(keyNotificationCmd, c.Notifications.Cmd)
	v.SetDefault(keyNotesAPIURL, c.Notes.APIURL)
	v.SetDefault(keyNotesTimeout, c.Notes.Timeout.String())
	v.SetDefault(keyDarkTheme, c.Display.DarkTheme)
	v.SetDefault(keyLogLevel, c.Log.Level)
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}

	return nil
}

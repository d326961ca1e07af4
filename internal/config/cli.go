package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Sound         string
	SessionCmd    string
	APIURL        string
	LogLevel      string
	FocusMinutes  uint
	BreakMinutes  uint
	DisableNotify bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
// Flag values override the file for this invocation only.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			FocusMinutes:  ctx.Uint("focus"),
			BreakMinutes:  ctx.Uint("break"),
			Sound:         ctx.String("sound"),
			SessionCmd:    ctx.String("session-cmd"),
			APIURL:        ctx.String("api-url"),
			LogLevel:      ctx.String("log-level"),
			DisableNotify: ctx.Bool("disable-notification"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.FocusMinutes > 0 {
		c.Timer.FocusMinutes = int(opts.FocusMinutes)
	}

	if opts.BreakMinutes > 0 {
		c.Timer.BreakMinutes = int(opts.BreakMinutes)
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	switch opts.Sound {
	case "":
	case "off", "tone":
		c.Notifications.Sound = ""
	default:
		c.Notifications.Sound = opts.Sound
	}

	if opts.SessionCmd != "" {
		c.Notifications.Cmd = opts.SessionCmd
	}

	if opts.APIURL != "" {
		c.Notes.APIURL = opts.APIURL
	}

	if opts.LogLevel != "" {
		c.Log.Level = opts.LogLevel
	}
}

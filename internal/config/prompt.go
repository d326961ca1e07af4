package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
███╗   ██╗ ██████╗ ████████╗███████╗██╗  ██╗██╗   ██╗██████╗
████╗  ██║██╔═══██╗╚══██╔══╝██╔════╝██║  ██║██║   ██║██╔══██╗
██╔██╗ ██║██║   ██║   ██║   █████╗  ███████║██║   ██║██████╔╝
██║╚██╗██║██║   ██║   ██║   ██╔══╝  ██╔══██║██║   ██║██╔══██╗
██║ ╚████║╚██████╔╝   ██║   ███████╗██║  ██║╚██████╔╝██████╔╝
╚═╝  ╚═══╝ ╚═════╝    ╚═╝   ╚══════╝╚═╝  ╚═╝ ╚═════╝ ╚═════╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	FocusMinutes int
	BreakMinutes int
}

// WithPromptConfig returns an Option that configures settings via
// interactive prompts when no config file exists yet.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	var opts PromptOptions

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure the timer for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'notehub edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Focus session length").
				Options(
					huh.NewOption("25 minutes", 25).Selected(true),
					huh.NewOption("30 minutes", 30),
					huh.NewOption("45 minutes", 45),
					huh.NewOption("50 minutes", 50),
					huh.NewOption("60 minutes", 60),
				).
				Value(&opts.FocusMinutes),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Break length").
				Options(
					huh.NewOption("5 minutes", 5).Selected(true),
					huh.NewOption("10 minutes", 10),
					huh.NewOption("15 minutes", 15),
					huh.NewOption("20 minutes", 20),
					huh.NewOption("30 minutes", 30),
				).
				Value(&opts.BreakMinutes),
		),
	)

	if err := form.Run(); err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	if opts.FocusMinutes > 0 {
		c.Timer.FocusMinutes = opts.FocusMinutes
	}

	if opts.BreakMinutes > 0 {
		c.Timer.BreakMinutes = opts.BreakMinutes
	}
}

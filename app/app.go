package app

import (
	"github.com/urfave/cli/v2"

	"github.com/notehub/notehub/internal/config"
)

// Get retrieves the notehub app instance.
func Get() *cli.App {
	notehubApp := &cli.App{
		Name: "notehub",
		Usage: `
		notehub is a Pomodoro timer and note-taking client for the
		command-line. The timer survives restarts: close it at any time and it
		picks up where it left off.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "timer",
				Usage:  "Show the live countdown (default command)",
				Action: withEnv(true, timerAction),
			},
			{
				Name:   "status",
				Usage:  "Print the status of the timer",
				Action: withEnv(false, statusAction),
			},
			{
				Name:   "settings",
				Usage:  "Change the focus and break durations",
				Flags:  []cli.Flag{focusFlag, breakFlag},
				Action: withEnv(false, settingsAction),
			},
			{
				Name:   "stats",
				Usage:  "Show completed sessions and total focus time",
				Flags:  []cli.Flag{jsonFlag},
				Action: withEnv(false, statsAction),
				Subcommands: []*cli.Command{
					{
						Name:   "reset",
						Usage:  "Reset the statistics to zero",
						Flags:  []cli.Flag{yesFlag},
						Action: withEnv(false, statsResetAction),
					},
				},
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:   "register",
				Usage:  "Create a notes account and log in",
				Flags:  []cli.Flag{nameFlag, emailFlag, passwordFlag},
				Action: withEnv(false, registerAction),
			},
			{
				Name:   "login",
				Usage:  "Log in to the notes service",
				Flags:  []cli.Flag{emailFlag, passwordFlag},
				Action: withEnv(false, loginAction),
			},
			{
				Name:   "logout",
				Usage:  "Forget the saved session",
				Action: withEnv(false, logoutAction),
			},
			{
				Name:   "whoami",
				Usage:  "Print the logged in user",
				Action: withEnv(false, whoamiAction),
			},
			{
				Name:  "notes",
				Usage: "Manage your notes",
				Subcommands: []*cli.Command{
					{
						Name:    "list",
						Aliases: []string{"ls"},
						Usage:   "List your notes",
						Flags:   []cli.Flag{sortFlag, sinceFlag, jsonFlag},
						Action:  withEnv(false, listNotesAction),
					},
					{
						Name:      "show",
						Usage:     "Print a note",
						ArgsUsage: "ID",
						Action:    withEnv(false, showNoteAction),
					},
					{
						Name:   "add",
						Usage:  "Create a note",
						Flags:  []cli.Flag{titleFlag, contentFlag},
						Action: withEnv(false, addNoteAction),
					},
					{
						Name:      "edit",
						Usage:     "Change the title or content of a note",
						ArgsUsage: "ID",
						Flags:     []cli.Flag{titleFlag, contentFlag},
						Action:    withEnv(false, editNoteAction),
					},
					{
						Name:      "delete",
						Aliases:   []string{"rm"},
						Usage:     "Delete a note",
						ArgsUsage: "ID",
						Flags:     []cli.Flag{yesFlag},
						Action:    withEnv(false, deleteNoteAction),
					},
					{
						Name:      "download",
						Usage:     "Save a note as a text file",
						ArgsUsage: "ID",
						Flags:     []cli.Flag{dirFlag},
						Action:    withEnv(false, downloadNoteAction),
					},
				},
			},
		},
		Flags: []cli.Flag{
			focusFlag,
			breakFlag,
			disableNotificationFlag,
			soundFlag,
			sessionCmdFlag,
			apiURLFlag,
			logLevelFlag,
			noColorFlag,
		},
		Action: withEnv(true, timerAction),
		Before: beforeAction,
		After:  afterAction,
	}

	return notehubApp
}

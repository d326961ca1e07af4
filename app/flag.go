package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the sound and system notification that appear after a phase is completed",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each phase",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Audio file (mp3, ogg, flac or wav) to play when a phase ends. Set to 'tone' for the built-in tone",
	}

	focusFlag = &cli.UintFlag{
		Name:    "focus",
		Aliases: []string{"f"},
		Usage:   "Focus duration in minutes (default: 25)",
	}

	breakFlag = &cli.UintFlag{
		Name:    "break",
		Aliases: []string{"b"},
		Usage:   "Break duration in minutes (default: 5)",
	}

	apiURLFlag = &cli.StringFlag{
		Name:    "api-url",
		Usage:   "Base URL of the notes API",
		EnvVars: []string{"NOTEHUB_API_URL"},
	}

	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Log level: debug, info, warn or error",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Skip the confirmation prompt",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	nameFlag = &cli.StringFlag{
		Name:  "name",
		Usage: "Your display name",
	}

	emailFlag = &cli.StringFlag{
		Name:    "email",
		Aliases: []string{"e"},
		Usage:   "Account email address",
	}

	passwordFlag = &cli.StringFlag{
		Name:    "password",
		Aliases: []string{"p"},
		Usage:   "Account password. You are prompted for it when omitted",
	}

	titleFlag = &cli.StringFlag{
		Name:    "title",
		Aliases: []string{"t"},
		Usage:   "Note title",
	}

	contentFlag = &cli.StringFlag{
		Name:    "content",
		Aliases: []string{"c"},
		Usage:   "Note content. An editor prompt is shown when omitted",
	}

	sortFlag = &cli.StringFlag{
		Name:  "sort",
		Usage: "Sort notes by 'title' or 'modified'",
		Value: sortModified,
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only show notes modified after this date (e.g. '2 days ago', '2026-01-02')",
	}

	dirFlag = &cli.StringFlag{
		Name:  "dir",
		Usage: "Directory to save the note in",
		Value: ".",
	}
)

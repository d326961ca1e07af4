package app

import (
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/notehub/notehub/internal/alert"
	"github.com/notehub/notehub/internal/config"
	"github.com/notehub/notehub/internal/osutil"
	"github.com/notehub/notehub/internal/pathutil"
	"github.com/notehub/notehub/timer"
	"github.com/notehub/notehub/timer/tui"
)

const (
	envNoColor        = "NO_COLOR"
	envNotehubNoColor = "NOTEHUB_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// confirm asks a yes/no question unless --yes was passed.
func confirm(ctx *cli.Context, question string) (bool, error) {
	if ctx.Bool("yes") {
		return true, nil
	}

	var ok bool

	err := huh.NewConfirm().
		Title(question).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, errAborted
	}

	return ok, err
}

// editConfigAction handles the edit-config command which opens the config
// file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	if err := pathutil.Initialize(); err != nil {
		return err
	}

	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = config.Stderr
	cmd.Stdin = config.Stdin
	cmd.Stdout = config.Stdout

	return cmd.Run()
}

// timerAction shows the live countdown. A timer left running by an earlier
// run is resumed, or completed if its phase ended in the meantime.
func timerAction(ctx *cli.Context, e *env) error {
	display := &tui.Display{}
	notifier := alert.New(e.cfg.Notifications)

	engine := e.engine(
		timer.WithNotifier(notifier),
		timer.WithDisplay(display),
	)

	engine.Load()

	slog.InfoContext(ctx.Context, "timer view opened", slog.String("config", e.cfg.Path()))

	err := tui.Run(engine, display, e.cfg.Display.DarkTheme)

	engine.Close()
	notifier.Wait()

	return err
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if NOTEHUB_NO_COLOR is set
	if _, exists := os.LookupEnv(envNotehubNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting notehub")

	return nil
}

package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/hako/durafmt"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/notehub/notehub/internal/alert"
	"github.com/notehub/notehub/internal/config"
	"github.com/notehub/notehub/internal/timeutil"
	"github.com/notehub/notehub/internal/ui"
	"github.com/notehub/notehub/timer"
)

// formatMinutes renders a minute count for humans, e.g. "2 hours 5 minutes".
func formatMinutes(mins int) string {
	if mins <= 0 {
		return "0 minutes"
	}

	return durafmt.Parse(time.Duration(mins) * time.Minute).
		LimitToUnit("hours").
		LimitFirstN(2).
		String()
}

// writeStatus prints the projected timer state.
func writeStatus(w io.Writer, snap timer.Snapshot, expired bool) {
	state := ui.Magenta("paused")
	if snap.Running {
		state = ui.Green("running")
	}

	fmt.Fprintf(
		w,
		"%s · %s · %s remaining\n",
		ui.Highlight(snap.Mode.Label()),
		state,
		ui.Blue(timeutil.Clock(snap.RemainingSeconds)),
	)

	if expired {
		fmt.Fprintf(
			w,
			"%s while notehub was closed. Run %s to continue\n",
			ui.Red(snap.Mode.Label()+" phase ended"),
			ui.Cyan("notehub"),
		)
	}
}

// statusAction prints the state of the timer as the next run would restore
// it, without modifying anything.
func statusAction(_ *cli.Context, e *env) error {
	snap, expired := e.engine().Peek()

	writeStatus(config.Stdout, snap, expired)

	return nil
}

// settingsAction applies new phase durations. Omitted flags keep their
// current value.
func settingsAction(ctx *cli.Context, e *env) error {
	focusMins := e.cfg.FocusMinutes()
	if ctx.IsSet("focus") {
		focusMins = int(ctx.Uint("focus"))
	}

	breakMins := e.cfg.BreakMinutes()
	if ctx.IsSet("break") {
		breakMins = int(ctx.Uint("break"))
	}

	if err := applySettings(e, alert.New(e.cfg.Notifications), focusMins, breakMins); err != nil {
		return err
	}

	pterm.Success.Printfln(
		"Focus: %d minutes, break: %d minutes",
		e.cfg.FocusMinutes(),
		e.cfg.BreakMinutes(),
	)

	return nil
}

// waitNotifier is a notifier whose background work can be waited on.
type waitNotifier interface {
	timer.Notifier
	Wait()
}

// applySettings loads the engine so that a phase which ended while notehub
// was closed is completed first, then applies the new durations. It returns
// once the completion alerts have finished.
func applySettings(e *env, notifier waitNotifier, focusMins, breakMins int) error {
	defer notifier.Wait()

	engine := e.engine(timer.WithNotifier(notifier))

	engine.Load()
	defer engine.Close()

	return engine.ApplySettings(focusMins, breakMins)
}

func statsTable(s timer.Stats) [][]string {
	return [][]string{
		{"STATISTIC", "VALUE"},
		{"Completed focus sessions", strconv.Itoa(s.CompletedFocusSessions)},
		{"Total focus time", formatMinutes(s.TotalFocusMinutes)},
	}
}

// statsAction prints the cumulative statistics.
func statsAction(ctx *cli.Context, e *env) error {
	snap, _ := e.engine().Peek()

	if ctx.Bool("json") {
		b, err := json.Marshal(snap.Stats)
		if err != nil {
			return err
		}

		fmt.Fprintln(config.Stdout, string(b))

		return nil
	}

	ui.PrintTable(statsTable(snap.Stats), config.Stdout)

	return nil
}

// statsResetAction zeroes the statistics after confirmation.
func statsResetAction(ctx *cli.Context, e *env) error {
	ok, err := confirm(ctx, "Reset all statistics? This cannot be undone")
	if err != nil || !ok {
		return err
	}

	e.engine().ResetStats()

	pterm.Success.Println("Statistics reset")

	return nil
}

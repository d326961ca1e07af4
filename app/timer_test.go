package app

import (
	"bytes"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notehub/notehub/store"
	"github.com/notehub/notehub/timer"
)

func TestWriteStatus(t *testing.T) {
	disableStyling()
	t.Cleanup(pterm.EnableStyling)

	var buf bytes.Buffer

	writeStatus(&buf, timer.Snapshot{
		Mode:             timer.Focus,
		RemainingSeconds: 754,
		TotalSeconds:     1500,
		Running:          true,
	}, false)

	assert.Equal(t, "Focus · running · 12:34 remaining\n", buf.String())
}

func TestWriteStatusExpired(t *testing.T) {
	disableStyling()
	t.Cleanup(pterm.EnableStyling)

	var buf bytes.Buffer

	writeStatus(&buf, timer.Snapshot{Mode: timer.Break}, true)

	assert.Contains(t, buf.String(), "Break · paused · 00:00 remaining")
	assert.Contains(t, buf.String(), "Break phase ended while notehub was closed")
}

func TestStatsTable(t *testing.T) {
	got := statsTable(timer.Stats{CompletedFocusSessions: 4, TotalFocusMinutes: 100})

	assert.Equal(t, [][]string{
		{"STATISTIC", "VALUE"},
		{"Completed focus sessions", "4"},
		{"Total focus time", "1 hour 40 minutes"},
	}, got)
}

func TestCommandTree(t *testing.T) {
	a := Get()

	var names []string
	for _, c := range a.Commands {
		names = append(names, c.Name)
	}

	assert.Subset(t, names, []string{
		"timer", "status", "settings", "stats", "edit-config",
		"register", "login", "logout", "whoami", "notes",
	})

	notesCmd := a.Command("notes")
	if assert.NotNil(t, notesCmd) {
		var sub []string
		for _, c := range notesCmd.Subcommands {
			sub = append(sub, c.Name)
		}

		assert.Equal(t, []string{"list", "show", "add", "edit", "delete", "download"}, sub)
	}
}

func TestApplySettingsWaitsForAlerts(t *testing.T) {
	e := newTestEnv(t, "")

	start := time.Now().Add(-time.Hour)
	blob, err := timer.State{
		Mode:             timer.Focus,
		RemainingSeconds: 60,
		Running:          true,
		PhaseStart:       &start,
		SavedAt:          start,
	}.Encode()
	require.NoError(t, err)
	require.NoError(t, e.db.Namespace(store.NamespaceTimer).Set("state", blob))

	rec := &waitRecorder{}

	require.NoError(t, applySettings(e, rec, 40, 10))

	assert.Equal(t, []string{
		"tone",
		"notify: " + timer.FocusCompleteMessage,
		"wait",
	}, rec.calls)

	snap, _ := e.engine().Peek()
	assert.Equal(t, timer.Break, snap.Mode)
	assert.Equal(t, 600, snap.RemainingSeconds)
	assert.Equal(t, 1, snap.Stats.CompletedFocusSessions)
}

func TestApplySettingsRejectsOutOfRange(t *testing.T) {
	e := newTestEnv(t, "")
	rec := &waitRecorder{}

	err := applySettings(e, rec, 0, 5)

	assert.Error(t, err)
	assert.Equal(t, []string{"wait"}, rec.calls)
	assert.Equal(t, 25, e.cfg.FocusMinutes())
}

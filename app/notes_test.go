package app

import (
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/notehub/notehub/internal/models"
	"github.com/notehub/notehub/notes"
)

var loginFlags = []cli.Flag{emailFlag, passwordFlag}

func login(t *testing.T, e *env) {
	t.Helper()

	err := runAction(t, e, loginAction, loginFlags,
		"--email", testEmail, "--password", testPassword)
	require.NoError(t, err)
}

func TestListNotesJSON(t *testing.T) {
	api := newNotesAPI(t,
		gin.H{"_id": "n10", "title": "Note 10", "content": "b", "createdAt": "2026-01-03T10:00:00Z"},
		gin.H{"_id": "n2", "title": "Note 2", "content": "a", "createdAt": "2026-01-02T10:00:00Z"},
	)
	e := newTestEnv(t, api)

	login(t, e)

	out := captureStdout(t)

	err := runAction(t, e, listNotesAction,
		[]cli.Flag{sortFlag, sinceFlag, jsonFlag}, "--json", "--sort", "title")
	require.NoError(t, err)

	var got []models.Note
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))

	require.Len(t, got, 2)
	assert.Equal(t, "n2", got[0].ID)
	assert.Equal(t, "n10", got[1].ID)
}

func TestListNotesEmptyJSON(t *testing.T) {
	e := newTestEnv(t, newNotesAPI(t))

	login(t, e)

	out := captureStdout(t)

	err := runAction(t, e, listNotesAction, []cli.Flag{sortFlag, sinceFlag, jsonFlag}, "--json")
	require.NoError(t, err)

	assert.JSONEq(t, "[]", out.String())
}

func TestListNotesRequiresLogin(t *testing.T) {
	e := newTestEnv(t, newNotesAPI(t))

	err := runAction(t, e, listNotesAction, []cli.Flag{sortFlag, sinceFlag, jsonFlag}, "--json")

	assert.ErrorIs(t, err, notes.ErrNotLoggedIn)
}

func TestLoginRejected(t *testing.T) {
	e := newTestEnv(t, newNotesAPI(t))

	err := runAction(t, e, loginAction, loginFlags,
		"--email", testEmail, "--password", "wrong")

	require.ErrorIs(t, err, notes.ErrAuthFailed)
	assert.Contains(t, err.Error(), "Invalid email or password")
}

func TestWhoami(t *testing.T) {
	disableStyling()
	t.Cleanup(pterm.EnableStyling)

	e := newTestEnv(t, newNotesAPI(t))

	err := runAction(t, e, whoamiAction, nil)
	require.ErrorIs(t, err, errNotLoggedIn)

	login(t, e)

	out := captureStdout(t)

	require.NoError(t, runAction(t, e, whoamiAction, nil))
	assert.Equal(t, "[A] ada <ada@example.com>\n", out.String())

	require.NoError(t, runAction(t, e, logoutAction, nil))

	err = runAction(t, e, whoamiAction, nil)
	assert.ErrorIs(t, err, errNotLoggedIn)
}

func TestNoteCommandsNeedID(t *testing.T) {
	e := newTestEnv(t, "")

	for _, fn := range []func(*cli.Context, *env) error{
		showNoteAction,
		deleteNoteAction,
		downloadNoteAction,
	} {
		assert.ErrorIs(t, runAction(t, e, fn, nil), errMissingNoteID)
	}
}

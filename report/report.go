// Package report prints command outcomes to the terminal
package report

import (
	"errors"
	"os"

	"github.com/pterm/pterm"

	"github.com/notehub/notehub/internal/osutil"
	"github.com/notehub/notehub/notes"
)

// Error prints err, followed by a hint when the user can act on it.
func Error(err error) {
	pterm.Error.Println(err)

	switch {
	case errors.Is(err, notes.ErrSessionExpired), errors.Is(err, notes.ErrNotLoggedIn):
		pterm.Info.Println("Run 'notehub login' to start a new session")
	}
}

// Quit prints err and exits with a failure status.
func Quit(err error) {
	Error(err)
	os.Exit(osutil.ExitError.Code())
}

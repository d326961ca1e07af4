package notes

import "github.com/notehub/notehub/internal/apperr"

var (
	// ErrSessionExpired is returned when the server rejects the stored token
	// or the token has expired. The session is logged out.
	ErrSessionExpired = &apperr.Error{
		Message: "session expired, please log in again",
	}

	// ErrNotLoggedIn is returned by note operations without a session.
	ErrNotLoggedIn = &apperr.Error{
		Message: "not logged in",
	}

	// ErrAuthFailed carries the reason a login or registration was refused.
	ErrAuthFailed = &apperr.Error{
		Message: "%s",
	}

	// ErrNoteNotFound is returned when no note has the requested ID.
	ErrNoteNotFound = &apperr.Error{
		Message: "note %q not found",
	}

	errRequestFailed = &apperr.Error{
		Message: "%s",
	}

	errUnexpectedResponse = &apperr.Error{
		Message: "unexpected response from notes API",
	}

	errEncodeRequest = &apperr.Error{
		Message: "encoding request body failed",
	}

	errPersistSession = &apperr.Error{
		Message: "saving session failed",
	}

	errWriteNote = &apperr.Error{
		Message: "writing note to %s failed",
	}
)

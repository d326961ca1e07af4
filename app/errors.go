package app

import "github.com/notehub/notehub/internal/apperr"

var (
	errUnknownSort = &apperr.Error{
		Message: "unknown sort order %q: use 'title' or 'modified'",
	}

	errInvalidSince = &apperr.Error{
		Message: "unable to parse --since value %q",
	}

	errMissingNoteID = &apperr.Error{
		Message: "a note ID is required",
	}

	errEmptyTitle = &apperr.Error{
		Message: "a note needs a title",
	}

	errNotLoggedIn = &apperr.Error{
		Message: "you are not logged in: run 'notehub login' first",
	}

	errAborted = &apperr.Error{
		Message: "aborted",
	}
)

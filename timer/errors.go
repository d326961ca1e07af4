package timer

import "github.com/notehub/notehub/internal/apperr"

var (
	errCorruptState = &apperr.Error{
		Message: "corrupt timer state",
	}

	errEncodeState = &apperr.Error{
		Message: "encoding timer state",
	}

	errMissingField = &apperr.Error{
		Message: "missing field",
	}

	errMissingPhaseStart = &apperr.Error{
		Message: "running state without phase start",
	}

	errNegativeRemaining = &apperr.Error{
		Message: "negative remaining seconds",
	}

	errIdleWithoutTime = &apperr.Error{
		Message: "idle state with no time left",
	}

	errUnknownMode = &apperr.Error{
		Message: "unknown mode %q",
	}
)

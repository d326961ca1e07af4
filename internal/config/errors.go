package config

import "github.com/notehub/notehub/internal/apperr"

var (
	// ErrFocusOutOfRange is returned for focus durations outside 1-60 minutes.
	ErrFocusOutOfRange = &apperr.Error{
		Message: "focus duration must be between %d and %d minutes, got %d",
	}

	// ErrBreakOutOfRange is returned for break durations outside 1-30 minutes.
	ErrBreakOutOfRange = &apperr.Error{
		Message: "break duration must be between %d and %d minutes, got %d",
	}

	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing config file failed",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errUnknownSound = &apperr.Error{
		Message: "sound file not found: %s",
	}

	errInvalidAPIURL = &apperr.Error{
		Message: "notes api_url must be an absolute http(s) URL, got %q",
	}

	errInvalidTimeout = &apperr.Error{
		Message: "notes timeout must be positive, got %v",
	}
)

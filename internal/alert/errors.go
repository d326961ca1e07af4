package alert

import "github.com/notehub/notehub/internal/apperr"

var (
	errInvalidSoundFormat = &apperr.Error{
		Message: "unsupported sound format: %s",
	}

	errOpenSound = &apperr.Error{
		Message: "opening sound file failed",
	}

	errDecodeSound = &apperr.Error{
		Message: "decoding sound file failed",
	}

	errSpeakerInit = &apperr.Error{
		Message: "initializing speaker failed",
	}

	errParseCmd = &apperr.Error{
		Message: "unable to parse notifications.cmd option",
	}
)

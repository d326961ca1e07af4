package config

import (
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const (
	MinFocusMinutes = 1
	MaxFocusMinutes = 60
	MinBreakMinutes = 1
	MaxBreakMinutes = 30
)

var validSoundExts = []string{".mp3", ".ogg", ".flac", ".wav"}

// ValidateDurations checks that both phase durations are within bounds.
func ValidateDurations(focusMins, breakMins int) error {
	if focusMins < MinFocusMinutes || focusMins > MaxFocusMinutes {
		return ErrFocusOutOfRange.Fmt(MinFocusMinutes, MaxFocusMinutes, focusMins)
	}

	if breakMins < MinBreakMinutes || breakMins > MaxBreakMinutes {
		return ErrBreakOutOfRange.Fmt(MinBreakMinutes, MaxBreakMinutes, breakMins)
	}

	return nil
}

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := ValidateDurations(c.Timer.FocusMinutes, c.Timer.BreakMinutes); err != nil {
		return err
	}

	if err := validateSound(c.Notifications.Sound); err != nil {
		return err
	}

	return c.validateNotes()
}

func (c *Config) validateNotes() error {
	u, err := url.Parse(c.Notes.APIURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return errInvalidAPIURL.Fmt(c.Notes.APIURL)
	}

	if c.Notes.Timeout <= 0 {
		return errInvalidTimeout.Fmt(c.Notes.Timeout)
	}

	return nil
}

// validateSound accepts an empty value (synthesized tone) or an existing
// audio file in a supported format.
func validateSound(sound string) error {
	if sound == "" {
		return nil
	}

	ext := strings.ToLower(filepath.Ext(sound))
	if !slices.Contains(validSoundExts, ext) {
		return errInvalidSoundFormat.Fmt(sound)
	}

	_, err := os.Stat(sound)
	if errors.Is(err, os.ErrNotExist) {
		return errUnknownSound.Fmt(sound)
	}

	return nil
}

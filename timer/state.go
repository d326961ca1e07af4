package timer

import (
	"encoding/json"
	"time"
)

// Mode is the active phase of the timer.
type Mode string

const (
	Focus Mode = "focus"
	Break Mode = "break"
)

// Label returns the human readable name of the mode.
func (m Mode) Label() string {
	if m == Break {
		return "Break"
	}

	return "Focus"
}

// Opposite returns the mode that follows m.
func (m Mode) Opposite() Mode {
	if m == Focus {
		return Break
	}

	return Focus
}

func (m Mode) valid() bool {
	return m == Focus || m == Break
}

// State is the persisted timer entity.
type State struct {
	// PhaseStart is when the current run segment began. It is nil unless
	// the timer is running.
	PhaseStart *time.Time `json:"phase_start"`
	// SavedAt is rewritten on every persist and drives resume arithmetic.
	SavedAt          time.Time `json:"saved_at"`
	Mode             Mode      `json:"mode"`
	RemainingSeconds int       `json:"remaining_seconds"`
	Running          bool      `json:"running"`
}

// stateBlob mirrors State with pointer fields so that missing keys can be
// told apart from zero values.
type stateBlob struct {
	RemainingSeconds *int       `json:"remaining_seconds"`
	Mode             *Mode      `json:"mode"`
	Running          *bool      `json:"running"`
	PhaseStart       *time.Time `json:"phase_start"`
	SavedAt          *time.Time `json:"saved_at"`
}

// Encode serializes the state to its persisted JSON form.
func (s State) Encode() (string, error) {
	blob := stateBlob{
		RemainingSeconds: &s.RemainingSeconds,
		Mode:             &s.Mode,
		Running:          &s.Running,
		PhaseStart:       s.PhaseStart,
		SavedAt:          &s.SavedAt,
	}

	b, err := json.Marshal(blob)
	if err != nil {
		return "", errEncodeState.Wrap(err)
	}

	return string(b), nil
}

// DecodeState parses a persisted state, rejecting blobs with missing or
// out-of-range fields.
func DecodeState(data string) (State, error) {
	var blob stateBlob

	if err := json.Unmarshal([]byte(data), &blob); err != nil {
		return State{}, errCorruptState.Wrap(err)
	}

	switch {
	case blob.RemainingSeconds == nil, blob.Mode == nil,
		blob.Running == nil, blob.SavedAt == nil:
		return State{}, errCorruptState.Wrap(errMissingField)
	case *blob.RemainingSeconds < 0:
		return State{}, errCorruptState.Wrap(errNegativeRemaining)
	case !blob.Mode.valid():
		return State{}, errCorruptState.Wrap(errUnknownMode.Fmt(*blob.Mode))
	case *blob.Running && blob.PhaseStart == nil:
		return State{}, errCorruptState.Wrap(errMissingPhaseStart)
	case !*blob.Running && *blob.RemainingSeconds == 0:
		return State{}, errCorruptState.Wrap(errIdleWithoutTime)
	}

	s := State{
		RemainingSeconds: *blob.RemainingSeconds,
		Mode:             *blob.Mode,
		Running:          *blob.Running,
		SavedAt:          *blob.SavedAt,
	}

	if s.Running {
		s.PhaseStart = blob.PhaseStart
	}

	return s, nil
}

// Stats holds the cumulative statistics.
type Stats struct {
	CompletedFocusSessions int `json:"completed_focus_sessions"`
	TotalFocusMinutes      int `json:"total_focus_minutes"`
}

// Snapshot is what a presentation layer needs to redraw the timer.
type Snapshot struct {
	Mode             Mode
	RemainingSeconds int
	TotalSeconds     int
	Running          bool
	Stats            Stats
}

// Progress returns the elapsed fraction of the current phase in [0, 1].
func (s Snapshot) Progress() float64 {
	if s.TotalSeconds <= 0 {
		return 0
	}

	p := 1 - float64(s.RemainingSeconds)/float64(s.TotalSeconds)

	return min(max(p, 0), 1)
}

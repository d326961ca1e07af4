// Package timer operates the focus/break countdown, persists its state on
// every change and resumes interrupted timers
package timer

import (
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/notehub/notehub/internal/config"
	"github.com/notehub/notehub/internal/timeutil"
	"github.com/notehub/notehub/store"
)

// Keys used in the timer namespace of the store.
const (
	keyState             = "state"
	keyCompletedSessions = "completed_sessions"
	keyFocusMinutes      = "focus_minutes"
)

const (
	FocusCompleteMessage = "Focus session completed! Time for a break."
	BreakCompleteMessage = "Break completed! Ready for another focus session?"
)

// Engine is the countdown state machine. All methods are safe for concurrent
// use.
type Engine struct {
	kv        store.KV
	settings  Settings
	notifier  Notifier
	display   Display
	scheduler Scheduler
	now       func() time.Time
	cancel    func()
	state     State
	stats     Stats
	interval  time.Duration
	gen       uint64
	mu        sync.Mutex
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithNotifier sets the phase completion notifier.
func WithNotifier(n Notifier) Option {
	return func(e *Engine) {
		e.notifier = n
	}
}

// WithDisplay sets the presentation collaborator.
func WithDisplay(d Display) Option {
	return func(e *Engine) {
		e.display = d
	}
}

// WithScheduler replaces the tick source.
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) {
		e.scheduler = s
	}
}

// New creates an engine in a fresh Idle-Focus state. Call Load to restore
// persisted state.
func New(kv store.KV, settings Settings, opts ...Option) *Engine {
	e := &Engine{
		kv:        kv,
		settings:  settings,
		notifier:  NopNotifier{},
		display:   DisplayFunc(func(Snapshot) {}),
		scheduler: TickerScheduler{},
		now:       time.Now,
		interval:  time.Second,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.state = e.freshState()

	return e
}

// Load restores statistics and the persisted timer state. A running timer is
// advanced by the wall-clock time that passed since it was last saved: it
// resumes if time is left, otherwise exactly one phase completion is applied.
// Missing or corrupt state yields a fresh Idle-Focus timer.
func (e *Engine) Load() {
	e.mu.Lock()

	stop := e.unscheduleLocked()

	e.stats = e.loadStatsLocked()

	var notices []string

	saved, ok := e.loadStateLocked()

	switch {
	case !ok:
		e.state = e.freshState()
	case !saved.Running:
		e.state = saved
	default:
		projected, expired := Project(saved, e.now())
		e.state = projected

		if expired {
			slog.Info(
				"timer phase ended while closed",
				slog.String("mode", string(saved.Mode)),
			)

			notices = append(notices, e.completePhaseLocked())
		} else {
			slog.Info(
				"resuming timer",
				slog.String("mode", string(projected.Mode)),
				slog.Int("remaining_seconds", projected.RemainingSeconds),
			)

			e.persistLocked()
			e.scheduleLocked()
		}
	}

	e.finish(stop, notices)
}

// Start begins counting down. It is a no-op unless the timer is idle with
// time remaining.
func (e *Engine) Start() {
	e.mu.Lock()

	if e.state.Running || e.state.RemainingSeconds <= 0 {
		e.mu.Unlock()
		return
	}

	now := e.now()
	e.state.Running = true
	e.state.PhaseStart = &now

	e.persistLocked()
	e.scheduleLocked()

	e.finish(nil, nil)
}

// Pause stops the countdown. The tick source is stopped before Pause
// returns. Whole minutes spent in a focus run are added to the statistics.
// It is a no-op unless the timer is running.
func (e *Engine) Pause() {
	e.mu.Lock()

	if !e.state.Running {
		e.mu.Unlock()
		return
	}

	stop := e.pauseLocked()
	e.persistLocked()

	e.finish(stop, nil)
}

// Toggle pauses a running timer and starts an idle one.
func (e *Engine) Toggle() {
	if e.Snapshot().Running {
		e.Pause()
		return
	}

	e.Start()
}

// Reset restores the full duration of the current mode, pausing first if the
// timer is running, and clears the persisted state.
func (e *Engine) Reset() {
	e.mu.Lock()

	var stop func()

	if e.state.Running {
		stop = e.pauseLocked()
	}

	e.state.RemainingSeconds = e.durationLocked(e.state.Mode)
	e.clearStateLocked()

	e.finish(stop, nil)
}

// ApplySettings validates and stores new phase durations. An idle timer is
// reset to the new duration of its mode; a running countdown is left as is.
func (e *Engine) ApplySettings(focusMins, breakMins int) error {
	if err := config.ValidateDurations(focusMins, breakMins); err != nil {
		return err
	}

	e.mu.Lock()

	if err := e.settings.SetDurations(focusMins, breakMins); err != nil {
		e.mu.Unlock()
		return err
	}

	if !e.state.Running {
		e.state.RemainingSeconds = e.durationLocked(e.state.Mode)
		e.persistLocked()
	}

	e.finish(nil, nil)

	return nil
}

// ResetStats zeroes the cumulative statistics.
func (e *Engine) ResetStats() {
	e.mu.Lock()

	e.stats = Stats{}

	for _, k := range []string{keyCompletedSessions, keyFocusMinutes} {
		if err := e.kv.Delete(k); err != nil {
			slog.Warn("deleting statistic failed", slog.String("key", k), slog.Any("error", err))
		}
	}

	e.finish(nil, nil)
}

// Snapshot returns the values a presentation layer needs to redraw.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.snapshotLocked()
}

// Close stops the tick source without changing the timer state, so that a
// running timer is resumed by the next Load.
func (e *Engine) Close() {
	e.mu.Lock()
	stop := e.unscheduleLocked()
	e.mu.Unlock()

	stop()
}

// Peek reports what Load would restore at the current time without changing
// anything, in memory or in the store. expired reports that a running phase
// ended while no engine was driving it.
func (e *Engine) Peek() (snap Snapshot, expired bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.freshState()

	blob, found, err := e.kv.Get(keyState)
	if err == nil && found {
		if decoded, err := DecodeState(blob); err == nil {
			s = decoded
		}
	}

	s, expired = Project(s, e.now())

	return Snapshot{
		Mode:             s.Mode,
		RemainingSeconds: s.RemainingSeconds,
		TotalSeconds:     e.durationLocked(s.Mode),
		Running:          s.Running && !expired,
		Stats:            e.loadStatsLocked(),
	}, expired
}

// Project advances a persisted state to now without mutating anything. For a
// running state the remaining time is reduced by the whole seconds elapsed
// since it was saved, and the phase start is back-dated by everything the
// run segment has consumed. expired reports that no time is left.
func Project(s State, now time.Time) (projected State, expired bool) {
	if !s.Running {
		return s, false
	}

	// clock changes can put SavedAt in the future; FloorSeconds clamps to 0
	elapsed := timeutil.FloorSeconds(now.Sub(s.SavedAt))

	remaining := max(0, s.RemainingSeconds-elapsed)
	if remaining == 0 {
		s.RemainingSeconds = 0
		return s, true
	}

	var consumed int
	if s.PhaseStart != nil {
		consumed = timeutil.FloorSeconds(s.SavedAt.Sub(*s.PhaseStart))
	}

	start := now.Add(-time.Duration(consumed+elapsed) * time.Second)

	s.RemainingSeconds = remaining
	s.PhaseStart = &start

	return s, false
}

// tick advances a running countdown by one second. Ticks from a task that
// has been superseded are ignored. It reports whether the task should keep
// running.
func (e *Engine) tick(gen uint64) bool {
	e.mu.Lock()

	if gen != e.gen || !e.state.Running {
		e.mu.Unlock()
		return false
	}

	e.state.RemainingSeconds--

	var notices []string

	if e.state.RemainingSeconds <= 0 {
		e.state.RemainingSeconds = 0

		// the task ends itself by returning false
		e.cancel = nil
		e.gen++

		notices = append(notices, e.completePhaseLocked())
	} else {
		e.persistLocked()
	}

	running := e.state.Running

	e.finish(nil, notices)

	return running
}

// completePhaseLocked moves to the idle start of the opposite mode and clears
// the persisted state. A completed focus phase credits the configured
// duration. It returns the completion message.
func (e *Engine) completePhaseLocked() string {
	completed := e.state.Mode

	e.state.Running = false
	e.state.PhaseStart = nil

	msg := BreakCompleteMessage

	if completed == Focus {
		e.stats.CompletedFocusSessions++
		e.stats.TotalFocusMinutes += e.settings.FocusMinutes()
		e.persistStatsLocked()

		msg = FocusCompleteMessage
	}

	e.state.Mode = completed.Opposite()
	e.state.RemainingSeconds = e.durationLocked(e.state.Mode)

	e.clearStateLocked()

	slog.Info(
		"timer phase completed",
		slog.String("mode", string(completed)),
		slog.Int("completed_focus_sessions", e.stats.CompletedFocusSessions),
		slog.Int("total_focus_minutes", e.stats.TotalFocusMinutes),
	)

	return msg
}

// pauseLocked stops the run and applies focus minute accounting. It returns
// the function that stops the tick source, to be called after unlocking.
func (e *Engine) pauseLocked() func() {
	if e.state.Mode == Focus && e.state.PhaseStart != nil {
		mins := timeutil.FloorMinutes(e.now().Sub(*e.state.PhaseStart))
		if mins > 0 {
			e.stats.TotalFocusMinutes += mins
			e.persistStatsLocked()
		}
	}

	e.state.Running = false
	e.state.PhaseStart = nil

	return e.unscheduleLocked()
}

func (e *Engine) scheduleLocked() {
	e.gen++
	gen := e.gen

	e.cancel = e.scheduler.Every(e.interval, func() bool {
		return e.tick(gen)
	})
}

// unscheduleLocked invalidates the active tick task and returns its cancel
// function, which must be called without holding the lock.
func (e *Engine) unscheduleLocked() func() {
	e.gen++

	cancel := e.cancel
	e.cancel = nil

	if cancel == nil {
		return func() {}
	}

	return cancel
}

// finish releases the lock, stops a tick source if one was detached and then
// informs the collaborators.
func (e *Engine) finish(stop func(), notices []string) {
	snap := e.snapshotLocked()
	e.mu.Unlock()

	if stop != nil {
		stop()
	}

	for _, msg := range notices {
		e.notifier.PlayTone()
		e.notifier.Notify(msg)
	}

	e.display.Refresh(snap)
}

func (e *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		Mode:             e.state.Mode,
		RemainingSeconds: e.state.RemainingSeconds,
		TotalSeconds:     e.durationLocked(e.state.Mode),
		Running:          e.state.Running,
		Stats:            e.stats,
	}
}

func (e *Engine) durationLocked(m Mode) int {
	if m == Break {
		return e.settings.BreakMinutes() * 60
	}

	return e.settings.FocusMinutes() * 60
}

func (e *Engine) freshState() State {
	return State{
		Mode:             Focus,
		RemainingSeconds: e.durationLocked(Focus),
	}
}

func (e *Engine) persistLocked() {
	e.state.SavedAt = e.now()

	blob, err := e.state.Encode()
	if err != nil {
		slog.Error("encoding timer state failed", slog.Any("error", err))
		return
	}

	if err := e.kv.Set(keyState, blob); err != nil {
		slog.Warn("persisting timer state failed", slog.Any("error", err))
	}
}

func (e *Engine) clearStateLocked() {
	if err := e.kv.Delete(keyState); err != nil {
		slog.Warn("clearing timer state failed", slog.Any("error", err))
	}
}

func (e *Engine) loadStateLocked() (State, bool) {
	blob, found, err := e.kv.Get(keyState)
	if err != nil {
		slog.Warn("reading timer state failed", slog.Any("error", err))
		return State{}, false
	}

	if !found {
		return State{}, false
	}

	s, err := DecodeState(blob)
	if err != nil {
		slog.Warn("discarding persisted timer state", slog.Any("error", err))
		e.clearStateLocked()

		return State{}, false
	}

	return s, true
}

func (e *Engine) persistStatsLocked() {
	values := map[string]int{
		keyCompletedSessions: e.stats.CompletedFocusSessions,
		keyFocusMinutes:      e.stats.TotalFocusMinutes,
	}

	for k, v := range values {
		if err := e.kv.Set(k, strconv.Itoa(v)); err != nil {
			slog.Warn("persisting statistic failed", slog.String("key", k), slog.Any("error", err))
		}
	}
}

func (e *Engine) loadStatsLocked() Stats {
	return Stats{
		CompletedFocusSessions: e.loadCounterLocked(keyCompletedSessions),
		TotalFocusMinutes:      e.loadCounterLocked(keyFocusMinutes),
	}
}

func (e *Engine) loadCounterLocked(key string) int {
	v, found, err := e.kv.Get(key)
	if err != nil || !found {
		return 0
	}

	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		slog.Warn("ignoring malformed statistic", slog.String("key", key), slog.String("value", v))
		return 0
	}

	return n
}

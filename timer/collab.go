package timer

import (
	"context"
	"time"
)

// Settings supplies the phase durations in whole minutes.
type Settings interface {
	FocusMinutes() int
	BreakMinutes() int
	// SetDurations stores new durations. Values are validated by the
	// engine before this is called.
	SetDurations(focusMins, breakMins int) error
}

// Notifier receives phase completion alerts. Both methods are fire-and-forget.
type Notifier interface {
	PlayTone()
	Notify(message string)
}

// NopNotifier discards all alerts.
type NopNotifier struct{}

func (NopNotifier) PlayTone() {}

func (NopNotifier) Notify(string) {}

// Display is refreshed with a snapshot after every mutation. It is called
// outside the engine lock but on the goroutine that caused the mutation, so
// it must not call back into the engine synchronously.
type Display interface {
	Refresh(Snapshot)
}

// DisplayFunc adapts a function to the Display interface.
type DisplayFunc func(Snapshot)

func (f DisplayFunc) Refresh(s Snapshot) {
	f(s)
}

// Scheduler runs task every interval until task returns false or the
// returned cancel function is called. cancel must not return before the task
// has stopped running.
type Scheduler interface {
	Every(interval time.Duration, task func() bool) (cancel func())
}

// TickerScheduler runs tasks on a goroutine driven by a time.Ticker.
type TickerScheduler struct{}

func (TickerScheduler) Every(interval time.Duration, task func() bool) func() {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer cancel()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !task() {
					return
				}
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}

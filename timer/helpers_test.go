package timer

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/notehub/notehub/internal/config"
	"github.com/notehub/notehub/store"
)

var baseTime = time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)

type fakeClock struct {
	t  time.Time
	mu sync.Mutex
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.t = c.t.Add(d)
}

type manualTask struct {
	fn      func() bool
	stopped bool
}

// manualScheduler records tasks and runs them only when fired.
type manualScheduler struct {
	clock *fakeClock
	tasks []*manualTask
	mu    sync.Mutex
}

func (m *manualScheduler) Every(_ time.Duration, fn func() bool) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	task := &manualTask{fn: fn}
	m.tasks = append(m.tasks, task)

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()

		task.stopped = true
	}
}

func (m *manualScheduler) live() []*manualTask {
	m.mu.Lock()
	defer m.mu.Unlock()

	var live []*manualTask

	for _, task := range m.tasks {
		if !task.stopped {
			live = append(live, task)
		}
	}

	return live
}

// fire advances the clock by one second and runs every live task, n times.
// It returns the number of ticks that were delivered.
func (m *manualScheduler) fire(n int) int {
	var delivered int

	for range n {
		live := m.live()
		if len(live) == 0 {
			return delivered
		}

		m.clock.Advance(time.Second)

		for _, task := range live {
			delivered++

			if !task.fn() {
				m.mu.Lock()
				task.stopped = true
				m.mu.Unlock()
			}
		}
	}

	return delivered
}

type recordingNotifier struct {
	messages []string
	tones    int
	mu       sync.Mutex
}

func (r *recordingNotifier) PlayTone() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tones++
}

func (r *recordingNotifier) Notify(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = append(r.messages, msg)
}

type harness struct {
	engine    *Engine
	kv        store.KV
	settings  *config.Config
	clock     *fakeClock
	scheduler *manualScheduler
	notifier  *recordingNotifier
	snapshots []Snapshot
}

func newKV(t *testing.T) store.KV {
	t.Helper()

	client, err := store.NewClient(filepath.Join(t.TempDir(), "notehub.db"))
	require.NoError(t, err)

	t.Cleanup(func() { _ = client.Close() })

	return client.Namespace(store.NamespaceTimer)
}

func newHarness(t *testing.T, focusMins, breakMins int) *harness {
	t.Helper()

	settings := config.Default()
	require.NoError(t, settings.SetDurations(focusMins, breakMins))

	return newHarnessWith(t, newKV(t), settings, &fakeClock{t: baseTime})
}

// newHarnessWith builds an engine over existing collaborators, as a process
// restart would.
func newHarnessWith(
	t *testing.T,
	kv store.KV,
	settings *config.Config,
	clock *fakeClock,
) *harness {
	t.Helper()

	h := &harness{
		kv:        kv,
		settings:  settings,
		clock:     clock,
		scheduler: &manualScheduler{clock: clock},
		notifier:  &recordingNotifier{},
	}

	h.engine = New(
		kv,
		settings,
		WithClock(clock.Now),
		WithScheduler(h.scheduler),
		WithNotifier(h.notifier),
		WithDisplay(DisplayFunc(func(s Snapshot) {
			h.snapshots = append(h.snapshots, s)
		})),
	)

	return h
}

// reload simulates closing the process after d and starting it again.
func (h *harness) reload(t *testing.T, d time.Duration) *harness {
	t.Helper()

	h.clock.Advance(d)

	next := newHarnessWith(t, h.kv, h.settings, h.clock)
	next.engine.Load()

	return next
}

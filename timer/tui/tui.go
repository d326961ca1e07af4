// Package tui renders a countdown engine in the terminal and forwards key
// presses to it.
package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/notehub/notehub/internal/timeutil"
	"github.com/notehub/notehub/timer"
)

// Engine is the part of timer.Engine the view drives.
type Engine interface {
	Toggle()
	Reset()
	Close()
	Snapshot() timer.Snapshot
}

type snapshotMsg timer.Snapshot

// Display implements timer.Display by forwarding snapshots to a running
// program. Snapshots before Attach are dropped.
type Display struct {
	program *tea.Program
	mu      sync.Mutex
}

// Attach starts forwarding to p.
func (d *Display) Attach(p *tea.Program) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.program = p
}

func (d *Display) Refresh(s timer.Snapshot) {
	d.mu.Lock()
	p := d.program
	d.mu.Unlock()

	if p != nil {
		p.Send(snapshotMsg(s))
	}
}

// Model is the bubbletea model of the countdown view. Engine methods are
// invoked from commands, never from Update, since the engine reports back
// through Program.Send.
type Model struct {
	engine   Engine
	help     help.Model
	progress progress.Model
	style    style
	snap     timer.Snapshot
	quitting bool
}

// New returns a model showing the current state of e.
func New(e Engine, darkTheme bool) *Model {
	return &Model{
		engine:   e,
		snap:     e.Snapshot(),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
		style:    newStyle(darkTheme),
	}
}

// Run shows the countdown until the user quits. A running timer keeps its
// persisted state so that the next run resumes it.
func Run(e Engine, d *Display, darkTheme bool) error {
	p := tea.NewProgram(New(e, darkTheme))

	d.Attach(p)

	_, err := p.Run()

	return err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func call(fn func()) tea.Cmd {
	return func() tea.Msg {
		fn()
		return nil
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		m.snap = timer.Snapshot(msg)

		return m, nil

	case tea.KeyMsg:
		slog.Debug("key press", slog.String("msg", spew.Sdump(msg)))

		switch {
		case key.Matches(msg, defaultKeymap.togglePlay):
			return m, call(m.engine.Toggle)

		case key.Matches(msg, defaultKeymap.reset):
			return m, call(m.engine.Reset)

		case key.Matches(msg, defaultKeymap.quit):
			m.quitting = true

			return m, tea.Sequence(call(m.engine.Close), tea.Quit)
		}

	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-padding*2-4, maxWidth)

		return m, nil
	}

	return m, nil
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	if m.snap.Mode == timer.Break {
		s.WriteString(m.style.Break.Render(m.snap.Mode.Label()))
	} else {
		s.WriteString(m.style.Focus.Render(m.snap.Mode.Label()))
	}

	if m.snap.Running {
		s.WriteString(m.style.Hint.Render("running"))
	} else {
		s.WriteString(m.style.Secondary.Render("[Paused]"))
	}

	s.WriteString("\n\n")
	s.WriteString(m.style.Main.Render(timeutil.Clock(m.snap.RemainingSeconds)))
	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(m.snap.Progress()))
	s.WriteString("\n\n")
	s.WriteString(m.style.Hint.Render(fmt.Sprintf(
		"%d sessions completed · %d focus minutes",
		m.snap.Stats.CompletedFocusSessions,
		m.snap.Stats.TotalFocusMinutes,
	)))
	s.WriteString("\n\n")
	s.WriteString(m.help.ShortHelpView([]key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.reset,
		defaultKeymap.quit,
	}))

	return m.style.Base.Render(s.String())
}

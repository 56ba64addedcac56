package timer

import (
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"
)

// tickMsg carries the id of the tick loop that scheduled it so that ticks
// invalidated by a blur/focus cycle are dropped instead of stacking.
type tickMsg struct {
	t  time.Time
	id int
}

func (m Model) tick() tea.Cmd {
	id := m.tickID

	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg{t: t, id: id}
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.id != m.tickID {
			return m, nil
		}

		m.elapsed = m.engine.Elapsed()

		if !m.visible {
			return m, nil
		}

		return m, m.tick()

	case tea.BlurMsg:
		// Stop the readout while the terminal is hidden; the engine keeps
		// counting through the persisted start time.
		m.visible = false
		m.tickID++

		return m, nil

	case tea.FocusMsg:
		m.visible = true
		m.tickID++
		// Recompute immediately to correct for drift accumulated while
		// hidden, then resume ticking.
		m.elapsed = m.engine.Elapsed()

		return m, m.tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.togglePlay):
			m.err = m.engine.Toggle()
			m.elapsed = m.engine.Elapsed()

			return m, nil

		case key.Matches(msg, m.keymap.quit):
			return m, tea.Quit
		}

	default:
		if os.Getenv("TRACKER_DEBUG") != "" {
			slog.Debug(spew.Sdump(msg))
		}
	}

	return m, nil
}

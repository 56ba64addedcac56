package timer

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/Tsuyoshi84/time-tracker/internal/timeutil"
)

var (
	baseStyle = lipgloss.NewStyle().Padding(1, 2)
	mainStyle = lipgloss.NewStyle().Bold(true)
	hintStyle = lipgloss.NewStyle().Faint(true)
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func (m Model) View() string {
	var s strings.Builder

	if m.engine.Running() {
		s.WriteString(mainStyle.Render(timeutil.FormatDuration(m.elapsed)))
		s.WriteString("\n")
		s.WriteString(hintStyle.Render(
			"tracking since " + timeutil.FormatTime(
				m.engine.Current().StartTime,
				m.engine.opts.TwentyFourHour,
			),
		))
	} else {
		s.WriteString(mainStyle.Render("Timer idle"))
		s.WriteString("\n")
		s.WriteString(hintStyle.Render("press space to start tracking"))
	}

	if m.err != nil {
		s.WriteString("\n\n")
		s.WriteString(errStyle.Render(m.err.Error()))
	}

	s.WriteString("\n\n")
	s.WriteString(m.help.ShortHelpView([]key.Binding{
		m.keymap.togglePlay,
		m.keymap.quit,
	}))

	return baseStyle.Render(s.String())
}

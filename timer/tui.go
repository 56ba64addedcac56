package timer

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keymap struct {
	togglePlay key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "start/pause"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit (a running session keeps running)"),
	),
}

// Model is the terminal view of the timer engine. Its err field holds the
// message of the last failed operation; failures are displayed, never fatal,
// and the next keypress may retry.
type Model struct {
	err     error
	engine  *Engine
	help    help.Model
	keymap  keymap
	elapsed time.Duration
	tickID  int
	visible bool
}

// NewModel returns a model seeded from the engine's current state.
func NewModel(engine *Engine) Model {
	return Model{
		engine:  engine,
		help:    help.New(),
		keymap:  defaultKeymap,
		elapsed: engine.Elapsed(),
		visible: true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Run attaches the timer view to the terminal. Focus reporting drives the
// suspension of the elapsed readout while the terminal is not visible.
func Run(engine *Engine) error {
	_, err := tea.NewProgram(NewModel(engine), tea.WithReportFocus()).Run()

	return err
}

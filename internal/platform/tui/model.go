package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-shooter/internal/core"
	"github.com/vovakirdan/space-shooter/internal/session"
)

// Model is the Bubble Tea model driving one shooter session.
type Model struct {
	session  *session.Session
	keys     KeyMap
	help     help.Model
	screen   *core.Screen
	config   core.RuntimeConfig
	frame    core.CommandFrame
	quitting bool
}

// NewModel creates a Bubble Tea model for the given session.
func NewModel(s *session.Session, keys KeyMap, cfg core.RuntimeConfig) Model {
	return Model{
		session: s,
		keys:    keys,
		help:    help.New(),
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		config:  cfg,
		frame:   core.NewCommandFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(1, msg.Height-1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the bound command for the next tick. Quit is immediate.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd := m.keys.Lookup(msg)
	if cmd == core.CmdQuit {
		m.session.Dispatch(cmd)
		m.quitting = true
		return m, tea.Quit
	}
	m.frame.Push(cmd)
	return m, nil
}

// handleTick applies queued commands, then advances the simulation.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.frame.Len() > 0 && m.session.DispatchFrame(m.frame) {
		m.quitting = true
		return m, tea.Quit
	}
	m.frame.Clear()
	m.session.Tick()

	return m, tickCmd(m.config.TickInterval)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Draw(m.screen, m.session.Engine())
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the session.
func Run(s *session.Session, keys KeyMap, cfg core.RuntimeConfig) error {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultConfig().TickInterval
	}

	p := tea.NewProgram(
		NewModel(s, keys, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}


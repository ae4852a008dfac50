package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyflyer/internal/config"
	"github.com/vovakirdan/skyflyer/internal/core"
	"github.com/vovakirdan/skyflyer/internal/storage"
)

// screen is the page a session is showing.
type screen int

const (
	screenMenu screen = iota
	screenGame
	screenScores
)

// SessionOptions configures a session.
type SessionOptions struct {
	Store    *storage.Store
	Logger   *log.Logger
	Watcher  *config.Watcher // optional hot reload source
	SkipMenu bool            // start playing right away
}

// SessionModel manages the full session flow: menu -> game -> menu.
// It is the top-level model for local and SSH play.
type SessionModel struct {
	sim      core.Simulation
	opts     SessionOptions
	logger   *log.Logger
	config   core.RuntimeConfig
	screen   screen
	menu     MenuModel
	game     *GameModel
	scores   *ScoreboardModel
	nextID   int
	quitting bool
}

// NewSessionModel creates a new session around one simulation.
func NewSessionModel(sim core.Simulation, cfg core.RuntimeConfig, opts SessionOptions) SessionModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		sim:    sim,
		opts:   opts,
		logger: logger,
		config: cfg,
		menu:   NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.opts.SkipMenu {
		cmds = append(cmds, func() tea.Msg { return startGameMsg{} })
	}
	cmds = append(cmds, waitForConfig(m.opts.Watcher))
	return tea.Batch(cmds...)
}

// startGameMsg opens the game screen.
type startGameMsg struct{}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height

	case startGameMsg:
		return m.startGame()

	case configMsg:
		return m.applyConfig(msg.cfg)

	case configErrMsg:
		m.logger.Warn("config reload failed", "error", msg.err)
		if m.game != nil {
			m.game.SetNotice("Config error, keeping old tuning")
		}
		return m, waitForConfig(m.opts.Watcher)
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// applyConfig queues new tuning; it takes effect at the next level.
func (m SessionModel) applyConfig(cfg config.SkyflyerConfig) (tea.Model, tea.Cmd) {
	if t, ok := m.sim.(Tunable); ok {
		t.SetConfig(cfg)
		m.logger.Info("config reloaded", "path", m.opts.Watcher.Path())
		if m.game != nil {
			m.game.SetNotice("Config reloaded, applies next level")
		}
	}
	return m, waitForConfig(m.opts.Watcher)
}

// startGame opens a fresh game screen.
func (m SessionModel) startGame() (tea.Model, tea.Cmd) {
	m.nextID++
	game := NewGameModel(m.nextID, m.sim, m.opts.Store, m.logger, m.config)
	m.game = &game
	m.screen = screenGame
	return m, m.game.Init()
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Chosen() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoicePlay:
		m.menu = NewMenuModel(m.config)
		return m.startGame()

	case ChoiceScores:
		m.menu = NewMenuModel(m.config)
		scores := NewScoreboardModel(m.opts.Store, m.sim.ID(), m.sim.Title(), m.config.ScreenW, m.config.ScreenH)
		m.scores = &scores
		m.screen = screenScores
		return m, m.scores.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.game = nil
		m.screen = screenMenu
		m.menu = NewMenuModel(m.config)
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if scores, ok := newModel.(ScoreboardModel); ok {
		m.scores = &scores
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scores.IsGoingBack() {
		m.scores = nil
		m.screen = screenMenu
		return m, nil
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// Run starts a local session on the current terminal.
func Run(sim core.Simulation, cfg core.RuntimeConfig, opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(sim, cfg, opts),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Click or tap to flap
	)

	_, err := p.Run()
	return err
}

package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyflyer/internal/config"
	"github.com/vovakirdan/skyflyer/internal/core"
	"github.com/vovakirdan/skyflyer/internal/storage"
)

// minPlayfieldCols is the narrowest playfield that still gets a HUD beside it.
const minPlayfieldCols = 40

// Tunable is a simulation whose tuning can be read and replaced at runtime.
type Tunable interface {
	Config() config.SkyflyerConfig
	SetConfig(cfg config.SkyflyerConfig)
}

// GameModel is the Bubble Tea model for the game screen.
type GameModel struct {
	id        int
	sim       core.Simulation
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	queue     *core.CommandQueue
	guard     *core.RepeatGuard
	keys      *KeyMapper
	help      help.Model
	state     core.GameState
	highScore int
	notice    string
	width     int
	height    int
	quitting  bool
	back      bool
	runSaved  bool // whether the current terminal state was recorded
}

// NewGameModel starts a new run of sim sized to the terminal in cfg.
// id tags the tick loop of this screen.
func NewGameModel(id int, sim core.Simulation, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := GameModel{
		id:     id,
		sim:    sim,
		store:  store,
		logger: logger,
		config: cfg,
		queue:  &core.CommandQueue{},
		guard:  core.NewRepeatGuard(core.DefaultRepeatWindow),
		keys:   NewKeyMapper(),
		help:   help.New(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}

	pw, ph, _ := layout(cfg.ScreenW, cfg.ScreenH)
	m.screen = core.NewScreen(pw, ph)
	run := cfg
	run.ScreenW, run.ScreenH = pw, ph
	sim.Reset(run)
	m.state = sim.State()

	if store != nil {
		if high, err := store.HighScore(sim.ID()); err == nil {
			m.highScore = high
		}
	}

	logger.Debug("run started", "seed", cfg.Seed, "cols", pw, "rows", ph)
	return m
}

// layout splits the terminal into the playfield and the HUD.
func layout(width, height int) (pw, ph int, showHUD bool) {
	ph = max(height-helpHeight, 1)
	pw = width - hudWidth
	if pw < minPlayfieldCols {
		return max(width, 1), ph, false
	}
	return pw, ph, true
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.id, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.push(m.keys.MapMouse(msg))
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.ID != m.id {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	cmd, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu only when the run is not in motion
	if m.keys.IsBack(msg) {
		if m.state.Paused || m.state.Terminal() {
			m.back = true
		}
		return m, nil
	}

	m.push(cmd)
	return m, nil
}

// push queues a command for the next tick unless it is a held-key repeat.
func (m GameModel) push(c core.Command) {
	if m.guard.Accept(c, time.Now(), false) {
		m.queue.Push(c)
	}
}

// handleResize keeps the run going on the new playfield.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	pw, ph, _ := layout(msg.Width, msg.Height)
	m.screen.Resize(pw, ph)
	m.sim.Resize(pw, ph)
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.back {
		return m, nil
	}

	result := m.sim.Step(m.queue.Drain())
	m.state = result.State
	m.logEvents(result.Events)
	m.recordRun()

	return m, tickCmd(m.id, m.config.TickRate)
}

func (m GameModel) logEvents(events []core.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventStarCollected, core.EventShieldGained:
			m.logger.Debug("event", "kind", ev.Kind, "level", ev.Level)
		default:
			m.logger.Info("event", "kind", ev.Kind, "level", ev.Level, "score", m.state.Score, "lives", m.state.Lives)
		}
	}
}

// recordRun saves the run once per entry into a terminal state.
func (m *GameModel) recordRun() {
	if !m.state.Terminal() {
		m.runSaved = false
		return
	}
	if m.runSaved {
		return
	}
	m.runSaved = true

	if m.store == nil || m.state.Score <= 0 {
		return
	}
	run := storage.Run{
		GameID:  m.sim.ID(),
		Score:   m.state.Score,
		Level:   m.state.Level,
		Victory: m.state.Victory,
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Info("run saved", "score", run.Score, "level", run.Level, "victory", run.Victory)
	m.highScore = max(m.highScore, run.Score)
}

// SetNotice shows a transient message in the HUD.
func (m *GameModel) SetNotice(text string) {
	m.notice = text
}

// saveScreenshot saves the current playfield to a file.
func (m *GameModel) saveScreenshot() {
	m.sim.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".skyflyer", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.sim.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.notice = "Saved " + filepath.Base(path)
}

// hudInfo collects what the side panel shows.
func (m GameModel) hudInfo() HUDInfo {
	info := HUDInfo{
		State:      m.state,
		FinalLevel: 10,
		MaxLives:   3,
		HighScore:  max(m.highScore, m.state.Score),
		Notice:     m.notice,
	}
	if t, ok := m.sim.(Tunable); ok {
		cfg := t.Config()
		info.FinalLevel = cfg.Progression.FinalLevel
		info.MaxLives = cfg.Progression.Lives
		info.BossLevel = cfg.IsBossLevel(m.state.Level)
	}
	return info
}

// View renders the playfield, HUD and controls help.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.sim.Render(m.screen)
	field := RenderScreen(m.screen)

	_, ph, showHUD := layout(m.width, m.height)
	if showHUD {
		field = lipgloss.JoinHorizontal(lipgloss.Top, field, RenderHUD(m.hudInfo(), ph))
	}
	return field + "\n" + m.help.View(m.keys.Keys())
}

// State returns the last observed run snapshot.
func (m GameModel) State() core.GameState {
	return m.state
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.back
}

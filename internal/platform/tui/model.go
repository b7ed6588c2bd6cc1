package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snowboard/internal/core"
	"github.com/vovakirdan/tui-snowboard/internal/registry"
	"github.com/vovakirdan/tui-snowboard/internal/storage"
)

// Model is the Bubble Tea model for running a snowboard mode.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	held       *HeldKeys
	inputFrame core.InputFrame // one-shot actions pressed since the last tick
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the run has been saved for current game over
	lastRunID  string
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		held:       NewHeldKeys(cfg.KeyHold, cfg.KeyRepeat),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused):
		m.backToMenu = true
		return m, nil
	case IsRiding(action):
		m.held.Press(action)
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// The chase view adapts to any size, so the run keeps going.
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.held.Clear()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	frame := m.inputFrame.Clone()
	m.held.Apply(&frame)

	result := m.game.Step(frame)
	m.gameState = result.State

	// Save run on game over (once)
	if m.gameState.GameOver && !m.runSaved {
		m.lastRunID = saveRun(m.store, m.game)
		m.runSaved = true
	}

	m.held.Advance(1 / float64(m.config.TickRate))
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run. Runs that scored nothing are skipped.
// Best-effort: the game continues when storage is missing or fails.
func saveRun(store *storage.Store, game registry.Game) string {
	if store == nil {
		return ""
	}

	summary := core.RunSummary{Mode: game.ID(), Score: game.State().Score}
	if s, ok := game.(registry.Summarizer); ok {
		summary = s.Summary()
	}
	if summary.Score <= 0 {
		return ""
	}

	id, err := store.SaveRun(summary)
	if err != nil {
		return ""
	}
	return id
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".snowboard", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// LastRunID returns the storage ID of the most recently saved run.
func (m Model) LastRunID() string {
	return m.lastRunID
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

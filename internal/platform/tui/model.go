package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tui-games/relicrun/internal/core"
	"github.com/tui-games/relicrun/internal/registry"
	"github.com/tui-games/relicrun/internal/storage"
)

// Model is the Bubble Tea model for running a game session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	runStart   time.Time
	quitting   bool
	runSaved   bool // Whether score and run have been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		runStart:   time.Now(),
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
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// The simulation runs in world units, but the game rechecks its
	// minimum screen size on reset
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks. The elapsed wall-clock time since
// the previous tick is converted to normalized ticks so the simulation
// keeps real-time pace even when the terminal stalls; the game itself caps
// oversized deltas.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dtTicks := 1.0
	if !m.lastTick.IsZero() {
		interval := time.Second / time.Duration(m.config.TickRate)
		dtTicks = float64(now.Sub(m.lastTick)) / float64(interval)
		if dtTicks <= 0 {
			dtTicks = 1.0
		}
	}
	m.lastTick = now

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runSaved = false
		m.runStart = time.Now()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame, dtTicks)
	m.gameState = result.State

	// Save score and run on game over (once)
	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun persists the finished session's score and run record.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}

	if m.gameState.Score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.game.ID(), m.gameState.Score)
	}

	outcome := storage.RunOutcomeGameOver
	if m.gameState.Won {
		outcome = storage.RunOutcomeWin
	}

	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(storage.RunEntry{
		GameID:       m.game.ID(),
		Score:        m.gameState.Score,
		LevelReached: m.gameState.Level,
		Outcome:      outcome,
		DurationSecs: int(time.Since(m.runStart).Seconds()),
	})
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".relicrun", "screenshots")
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

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

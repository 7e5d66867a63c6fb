package platformer

import (
	"github.com/tui-games/relicrun/internal/config"
	"github.com/tui-games/relicrun/internal/core"
	"github.com/tui-games/relicrun/internal/registry"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	EnemyChar    = '▓'
	TreasureChar = '◆'
	PlatformChar = '▀'
	GroundChar   = '█'
)

// GameState constants
const (
	StatePlaying    = "playing"    // Normal play
	StatePaused     = "paused"     // Frozen mid-level, timer stopped
	StateLifeLost   = "lifelost"   // Brief interlude before the level restarts
	StateLevelClear = "levelclear" // Brief interlude before the next level
	StateGameOver   = "gameover"   // No lives left
	StateWin        = "win"        // Final level cleared (campaign only)
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Play through levels, win at the end
	ModeEndless                  // Levels keep climbing, score until game over
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// startLevel stores the starting level override set via CLI (1-based, 0 = default)
var startLevel int

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// SetStartLevel sets the starting level (1-based). Values outside the
// campaign range are clamped when the game resets.
func SetStartLevel(level int) {
	startLevel = level
}

// Game implements the Relic Run platformer logic.
type Game struct {
	// Game mode
	mode GameMode

	// Game objects
	player *Player
	level  LevelData
	active ActivePower

	// Game state
	state      string
	score      int
	lives      int
	levelIndex int     // 1-based current level
	timer      float64 // Remaining level time in seconds
	clock      float64 // Session clock in seconds, frozen while paused
	tickCount  int
	interlude  int // Countdown ticks before leaving lifelost/levelclear
	finalScore int // Score at the moment a terminal state was entered
	finalLevel int // Level at the moment a terminal state was entered

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.PlatformerConfig
	difficulty *config.DifficultyManager

	// Layout
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Relic Run game instance (campaign mode).
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new Relic Run game instance in endless mode.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "relicrun_endless"
	}
	return "relicrun"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Relic Run (Endless)"
	}
	return "Relic Run"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		cfg = config.DefaultPlatformerConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyPlatformerPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg

	// Initialize difficulty manager
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	// Check screen size
	g.minScreenW = 40
	g.minScreenH = 16
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	// Initialize session state
	g.score = 0
	g.lives = cfg.Gameplay.Lives
	g.tickCount = 0
	g.clock = 0
	g.interlude = 0
	g.finalScore = 0
	g.finalLevel = 0
	g.active = ActivePower{}

	level := 1
	if startLevel > 0 {
		level = core.Clamp(startLevel, 1, cfg.Gameplay.MaxLevel)
	}

	g.StartLevel(level)
	g.state = StatePlaying
}

// StartLevel generates and enters the given level (1-based). The player is
// placed at the spawn point and the level timer is rearmed; score and lives
// carry over untouched.
func (g *Game) StartLevel(level int) {
	if g.mode == ModeCampaign {
		level = core.Clamp(level, 1, g.cfg.Gameplay.MaxLevel)
	} else if level < 1 {
		level = 1
	}
	g.levelIndex = level
	g.level = Generate(level, g.cfg)

	if g.difficulty != nil {
		for i := range g.level.Enemies {
			e := &g.level.Enemies[i]
			e.Speed = g.difficulty.EnemySpeed(e.Speed, level, g.tickCount)
		}
	}

	budget := g.level.TimerBudget
	if g.difficulty != nil {
		budget = g.difficulty.TimerBudget(budget, level, g.tickCount)
	}
	if g.mode == ModeEndless && budget < g.cfg.Gameplay.EndlessTimerFloor {
		budget = g.cfg.Gameplay.EndlessTimerFloor
	}
	g.timer = budget

	g.player = &Player{
		X: g.cfg.Player.SpawnX,
		Y: g.cfg.Player.SpawnY,
		W: g.cfg.Player.Width,
		H: g.cfg.Player.Height,
	}
	g.active = ActivePower{}
}

// Step advances the game by dtTicks ticks (1.0 = one nominal tick).
func (g *Game) Step(in core.InputFrame, dtTicks float64) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if dtTicks <= 0 {
		dtTicks = 1
	}
	if dtTicks > core.MaxTicksPerStep {
		dtTicks = core.MaxTicksPerStep
	}

	// Handle restart
	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}

	// Don't update if paused or in a terminal state
	if g.state == StatePaused || g.state == StateGameOver || g.state == StateWin {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	// Interlude countdown between lives and levels
	if g.state == StateLifeLost || g.state == StateLevelClear {
		g.interlude--
		if g.interlude <= 0 {
			if g.state == StateLevelClear {
				g.StartLevel(g.levelIndex + 1)
			} else {
				// Life loss restarts the level with a fresh entity set.
				g.StartLevel(g.levelIndex)
			}
			g.state = StatePlaying
		}
		return core.StepResult{State: g.State()}
	}

	var events []core.Event

	dtSecs := dtTicks / float64(g.runtime.TickRate)
	g.clock += dtSecs
	g.timer -= dtSecs

	// Horizontal intent
	g.player.VX = 0
	if in.Has(core.ActionLeft) {
		g.player.VX = -g.cfg.Physics.MoveSpeed
	}
	if in.Has(core.ActionRight) {
		g.player.VX = g.cfg.Physics.MoveSpeed
	}

	// Jump only from the ground
	if in.Has(core.ActionJump) && g.player.OnGround {
		g.player.VY = g.cfg.Physics.JumpImpulse
		g.player.OnGround = false
		events = append(events, core.Event{Kind: core.EventJumped})
	}

	g.active.Expire(g.clock)

	fellOff := Integrate(g.player, g.cfg.Physics, g.cfg.World, dtTicks)
	MoveEnemies(g.level.Enemies, dtTicks)

	events = append(events, Resolve(g.player, &g.level, g.active, g.cfg.Gameplay.TreasureValue, dtTicks)...)

	hit := false
	cleared := false
	for _, ev := range events {
		switch ev.Kind {
		case core.EventCollected:
			g.score += ev.Value
			if g.level.RemainingTreasures() == 0 {
				cleared = true
			}
		case core.EventPowerActivated:
			g.applyPower(PowerType(ev.Value))
		case core.EventPlayerHit:
			hit = true
		}
	}

	if fellOff {
		events = append(events, core.Event{Kind: core.EventFellOff})
		hit = true
	}
	if g.timer <= 0 {
		events = append(events, core.Event{Kind: core.EventTimeUp})
		hit = true
	}

	switch {
	case hit:
		events = g.loseLife(events)
	case cleared:
		events = g.completeLevel(events)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// applyPower applies a picked power-up. Time bonuses are instant; the timed
// powers share a single expiry clock, so a fresh pickup overwrites whatever
// was running rather than stacking.
func (g *Game) applyPower(t PowerType) {
	switch t {
	case PowerTime:
		g.timer += g.cfg.Powers.TimeBonus
	case PowerDouble:
		g.active.Double = true
		g.active.Inv = false
		g.active.EndTime = g.clock + g.cfg.Powers.DoubleDuration
	case PowerInv:
		g.active.Inv = true
		g.active.Double = false
		g.active.EndTime = g.clock + g.cfg.Powers.InvDuration
	}
}

// loseLife handles a hit, fall or timeout.
func (g *Game) loseLife(events []core.Event) []core.Event {
	g.lives--
	events = append(events, core.Event{Kind: core.EventLifeLost})

	if g.lives <= 0 {
		g.finalScore = g.score
		g.finalLevel = g.levelIndex
		g.score = 0
		g.lives = g.cfg.Gameplay.Lives
		g.levelIndex = 1
		g.state = StateGameOver
		return append(events, core.Event{Kind: core.EventGameOver, Value: g.finalScore})
	}

	g.state = StateLifeLost
	g.interlude = g.cfg.Gameplay.InterludeTicks
	return events
}

// completeLevel handles all treasures collected.
func (g *Game) completeLevel(events []core.Event) []core.Event {
	events = append(events, core.Event{Kind: core.EventLevelClear, Value: g.levelIndex})

	if g.mode == ModeCampaign && g.levelIndex >= g.cfg.Gameplay.MaxLevel {
		g.finalScore = g.score
		g.finalLevel = g.levelIndex
		g.score = 0
		g.lives = g.cfg.Gameplay.Lives
		g.levelIndex = 1
		g.state = StateWin
		return append(events, core.Event{Kind: core.EventGameWon, Value: g.finalScore})
	}

	g.state = StateLevelClear
	g.interlude = g.cfg.Gameplay.InterludeTicks
	return events
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := g.score
	level := g.levelIndex
	if g.state == StateGameOver || g.state == StateWin {
		score = g.finalScore
		level = g.finalLevel
	}

	timer := g.timer
	if timer < 0 {
		timer = 0
	}

	return core.GameState{
		Score:    score,
		Lives:    g.lives,
		Level:    level,
		Timer:    timer,
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Won:      g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Register the games with the registry
func init() {
	registry.Register("relicrun", func() registry.Game {
		return New()
	})
	registry.Register("relicrun_endless", func() registry.Game {
		return NewEndless()
	})
}

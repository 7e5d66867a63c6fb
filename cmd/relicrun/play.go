package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tui-games/relicrun/internal/core"
	"github.com/tui-games/relicrun/internal/games/platformer"
	"github.com/tui-games/relicrun/internal/platform/tui"
	"github.com/tui-games/relicrun/internal/registry"
	"github.com/tui-games/relicrun/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play Relic Run",
	Long: `Start playing. Without an argument the campaign mode starts;
pass 'relicrun_endless' for endless mode.

Controls:
  A/D or Left/Right - Move
  Space/W/Up        - Jump
  P                 - Pause
  R                 - Restart (after game over)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  relicrun play
  relicrun play relicrun_endless
  relicrun play --difficulty hard
  relicrun play --level 3
  relicrun play --config ./my-levels.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level (0 = level 1)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "relicrun"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'relicrun list' to see available modes.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Apply config path, difficulty and start level before creation
	platformer.SetConfigPath(flagConfig)
	platformer.SetDifficultyPreset(flagDifficulty)
	if flagLevel > 0 {
		platformer.SetStartLevel(flagLevel)
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

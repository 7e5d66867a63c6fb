// relicrun is a terminal side-scrolling platformer about grabbing relics
// before the clock runs out.
//
// Usage:
//
//	relicrun play [game]      - Play (campaign by default)
//	relicrun menu             - Start menu to pick a mode interactively
//	relicrun list             - List available modes
//	relicrun serve            - Start SSH server for remote play
//	relicrun scores <game>    - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.relicrun/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/tui-games/relicrun/internal/games/platformer"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "relicrun",
	Short: "Relic Run - A side-scrolling treasure hunt in your terminal",
	Long: `Relic Run is a terminal platformer. Run, jump, dodge enemies and
collect every relic on the level before the timer hits zero.

Available commands:
  list     - Show available game modes
  play     - Play directly (campaign or endless)
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  relicrun play
  relicrun play relicrun_endless
  relicrun menu
  relicrun serve --ssh :2222
  relicrun scores relicrun`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.relicrun/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

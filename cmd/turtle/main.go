// turtle is a terminal and desktop game: steer a turtle home past enemies.
//
// Usage:
//
//	turtle list              - List available modes
//	turtle play [mode]       - Play a mode (default: turtle)
//	turtle menu              - Start menu to pick mode and level interactively
//	turtle serve             - Start SSH server for remote play
//	turtle results [mode]    - Show recorded results
//	turtle config            - Print or check game configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.turtle/results.db)
//	--log-level <level>  - Set log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/turtle-adventure/internal/games/turtle"
	"github.com/vovakirdan/turtle-adventure/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "turtle",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "turtle",
	Short: "Turtle Adventure - Guide a turtle home past wandering enemies",
	Long: `Turtle Adventure is a small arcade game. Click anywhere on the field
to set a waypoint; the turtle walks toward it. Reach the home square
without touching an enemy to win.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode and level picker
  serve    - Start SSH server for remote play
  results  - View recorded results
  config   - Print or check game configuration

Examples:
  turtle play
  turtle play --gui --level 3
  turtle play turtle_endless
  turtle menu
  turtle serve --ssh :2222
  turtle results`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.turtle/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(configCmd)
}

// openStore opens the results database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/turtle-adventure/internal/config"
	"github.com/vovakirdan/turtle-adventure/internal/core"
	"github.com/vovakirdan/turtle-adventure/internal/games/turtle"
	"github.com/vovakirdan/turtle-adventure/internal/platform/gui"
	"github.com/vovakirdan/turtle-adventure/internal/platform/tui"
	"github.com/vovakirdan/turtle-adventure/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
	flagGUI        bool
	flagEndless    bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: turtle).

Controls:
  Mouse click - Set the waypoint the turtle walks to
  P/Space     - Pause
  R           - Restart (after game over)
  B/Esc       - Back (when paused or over)
  Ctrl+S      - Save a text screenshot (terminal only)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - One group of enemies per wave
  normal - Two groups per wave
  hard   - Four groups per wave
  fixed  - Keep the config file's level

Examples:
  turtle play
  turtle play --level 3
  turtle play --endless --difficulty hard
  turtle play --gui
  turtle play --config ./my-turtle.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Enemy groups per wave (0 = use config or difficulty)")
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Open a desktop window instead of the terminal")
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play the endless mode with growing waves")
}

// addGameFlags registers the flags shared by commands that start games.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameFlags hands the config path and difficulty to the game package.
func applyGameFlags() error {
	if flagDifficulty != "" && !config.IsKnownPreset(config.DifficultyPreset(flagDifficulty)) {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	turtle.SetConfigPath(flagConfig)
	turtle.SetDifficultyPreset(flagDifficulty)
	return nil
}

// terminalSize returns the current terminal size or 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "turtle"
	if len(args) > 0 {
		gameID = args[0]
	}
	if flagEndless {
		gameID = "turtle_endless"
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'turtle list' to see available modes.")
		os.Exit(1)
	}
	if flagLevel < 0 {
		fmt.Fprintf(os.Stderr, "Error: --level must be positive, got %d\n", flagLevel)
		os.Exit(1)
	}
	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	cfg := core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
		Level:    flagLevel,
	}

	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	var state core.GameState
	if flagGUI {
		// The window matches the configured world.
		tc, loadErr := config.LoadTurtle(flagConfig)
		if loadErr != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", loadErr)
			os.Exit(1)
		}
		cfg.ScreenW, cfg.ScreenH = tc.World.Width, tc.World.Height
		state, err = gui.Run(game, store, cfg, logger)
	} else {
		cfg.ScreenW, cfg.ScreenH = terminalSize()
		var final tui.Model
		final, err = tui.Run(game, store, cfg)
		state = final.State()
		if saveErr := final.SaveErr(); saveErr != nil {
			logger.Warn("could not record result", "error", saveErr)
		}
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}

	if state.GameOver {
		logger.Info("game finished", "mode", gameID, "won", state.Won, "level", state.Level, "ticks", state.Tick)
	}
}

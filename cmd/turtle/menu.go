package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/turtle-adventure/internal/core"
	"github.com/vovakirdan/turtle-adventure/internal/platform/tui"
	"github.com/vovakirdan/turtle-adventure/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode and level picker",
	Long: `Start in interactive menu mode.

Pick a mode with Up/Down and a level with Left/Right, then press Enter.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k     - Choose mode
  Left/Right/h/l  - Choose level
  Enter/Space     - Play
  Tab             - Results
  Q               - Quit

Examples:
  turtle menu
  turtle menu --fps 30
  turtle menu --db ./results.db`,
	Run: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := applyGameFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Keep size changes and the chosen level
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsResults {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, cfg.TickRate)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		final, err := tui.Run(game, store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if saveErr := final.SaveErr(); saveErr != nil {
			logger.Warn("could not record result", "error", saveErr)
		}
		logger.Debug("back to menu", "mode", game.ID(), "state", final.State())
	}

	if store != nil {
		store.Close()
	}
}

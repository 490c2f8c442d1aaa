package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/turtle-adventure/internal/platform/tui"
	"github.com/vovakirdan/turtle-adventure/internal/registry"
	"github.com/vovakirdan/turtle-adventure/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var resultsCmd = &cobra.Command{
	Use:   "results [mode]",
	Short: "Show recorded results",
	Long: `Display finished games, newest first, with win/loss totals.

Without --plain an interactive board opens; Tab switches modes.

Examples:
  turtle results
  turtle results turtle --plain
  turtle results turtle_endless --plain --limit 20
  turtle results turtle --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a table instead of opening the board")
	resultsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of results to print with --plain")
	resultsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all results for the mode")
}

func runResults(_ *cobra.Command, args []string) {
	gameID := "turtle"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'turtle list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			return
		}
		fmt.Printf("Cleared results for %s.\n", gameID)
		return
	}

	if !flagPlain {
		w, h := terminalSize()
		if _, err := tui.RunScoreboard(store, w, h, flagFPS); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	if err := printResults(store, gameID, flagLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
	}
}

func printResults(store *storage.Store, gameID string, limit int) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	results, err := store.RecentResults(gameID, limit)
	if err != nil {
		return err
	}
	stats, err := store.Stats(gameID)
	if err != nil {
		return err
	}

	fmt.Printf("Results - %s  (wins %d, losses %d)\n\n", game.Title(), stats.Wins, stats.Losses)

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'turtle play %s' to record the first one!\n", gameID)
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("#", "OUTCOME", "LEVEL", "TIME", "ENEMIES", "DATE")

	rate := flagFPS
	if rate <= 0 {
		rate = 60
	}
	for _, r := range results {
		t.Row(
			fmt.Sprintf("%d", r.ID),
			strings.ToUpper(r.Outcome),
			fmt.Sprintf("%d", r.Level),
			fmt.Sprintf("%.1fs", float64(r.Ticks)/float64(rate)),
			fmt.Sprintf("%d", r.Enemies),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	fmt.Println(t)

	if best, ok, err := store.BestWin(gameID, results[0].Level); err == nil && ok {
		fmt.Printf("\nFastest win at level %d: %.1fs\n", best.Level, float64(best.Ticks)/float64(rate))
	}
	return nil
}

package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-digger/internal/platform/tui"
	"github.com/vovakirdan/tui-digger/internal/registry"
	"github.com/vovakirdan/tui-digger/internal/storage"
)

var (
	flagClearScores bool
	flagAllScores   bool
	flagSummary     bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for a game mode: digger (campaign,
the default) or digger_endless.

Examples:
  digger scores
  digger scores digger_endless
  digger scores --all
  digger scores --summary
  digger scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all scores for the mode")
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "List every recorded run instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagSummary, "summary", false, "Show totals for every mode that has been played")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagSummary {
		stats, err := store.GetAllGamesStats()
		if err != nil {
			return fmt.Errorf("retrieving stats: %w", err)
		}
		writeSummary(os.Stdout, stats)
		return nil
	}

	gameID := "digger"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q (want digger or digger_endless)", gameID)
	}
	title := modeTitle(gameID)

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Printf("Cleared scores for %s\n", title)
		return nil
	}

	var scores []storage.ScoreEntry
	if flagAllScores {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n\n", title)
	writeScores(os.Stdout, scores)
	if len(scores) > 0 {
		if stats, err := store.GetGameStats(gameID); err == nil {
			fmt.Println()
			fmt.Printf("Best: %d  |  Best level: %d  |  Runs: %d\n", stats.HighScore, stats.BestLevel, stats.GamesCount)
		}
	}

	key := tui.ProgressKey(gameID, "")
	if key == "" {
		return nil
	}
	p, err := store.LoadProgress(key)
	switch {
	case err != nil:
		return fmt.Errorf("loading saved progress: %w", err)
	case p != nil:
		fmt.Println()
		fmt.Printf("Saved run: level %d, score %d, %d lives (%s). Resume with 'digger play --continue'.\n",
			p.Level, p.Score, p.Lives, p.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

// modeTitle returns the display title of a registered mode, or its ID.
func modeTitle(gameID string) string {
	game, err := registry.Create(gameID)
	if err != nil {
		return gameID
	}
	return game.Title()
}

func writeScores(w io.Writer, scores []storage.ScoreEntry) {
	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		return
	}
	fmt.Fprintf(w, "  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(w, "  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.Level, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
}

// writeSummary prints one line per played mode, sorted by mode ID.
func writeSummary(w io.Writer, stats map[string]*storage.GameStats) {
	if len(stats) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		return
	}
	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	fmt.Fprintf(w, "  %-16s  %-5s  %-10s  %-10s  %s\n", "Mode", "Runs", "Best", "Total", "Best level")
	fmt.Fprintf(w, "  %-16s  %-5s  %-10s  %-10s  %s\n", "----", "----", "----", "-----", "----------")
	for _, id := range ids {
		st := stats[id]
		fmt.Fprintf(w, "  %-16s  %-5d  %-10d  %-10d  %d\n", modeTitle(id), st.GamesCount, st.HighScore, st.TotalScore, st.BestLevel)
	}
}

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-digger/internal/games/digger"
	"github.com/vovakirdan/tui-digger/internal/platform/tui"
)

var (
	flagLevel    int
	flagEndless  bool
	flagContinue bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing directly, skipping the menu.

Controls:
  Arrows/WASD/HJKL  - Move and climb
  Z / X             - Dig left / right
  P/Space           - Pause
  R                 - Restart (after game over)
  Esc               - Back (while paused or after game over)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - More lives, slower guards, holes stay open longer
  normal - Default tuning, progresses with each level
  hard   - Fewer lives, faster guards
  fixed  - No progression, stays at config's initial level

Examples:
  digger play
  digger play --level 4
  digger play --endless --difficulty hard
  digger play --continue
  digger play --config ./my-digger.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start on (1-based)")
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Endless mode: loop the campaign with rising difficulty")
	playCmd.Flags().BoolVar(&flagContinue, "continue", false, "Continue the saved campaign")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if flagEndless && flagContinue {
		return errors.New("--continue only applies to the campaign")
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	sel := tui.MenuSelection{GameID: "digger", Level: flagLevel}
	if flagEndless {
		sel.GameID = "digger_endless"
	}
	if flagContinue {
		if store == nil {
			return errors.New("no scores database, nothing to continue")
		}
		p, err := store.LoadProgress(tui.ProgressKey("digger", ""))
		if err != nil {
			return fmt.Errorf("loading progress: %w", err)
		}
		if p == nil {
			return errors.New("no saved progress; start with 'digger play'")
		}
		sel.Level = p.Level
		sel.Resume = &digger.Resume{Level: p.Level, Score: p.Score, Lives: p.Lives}
	}

	game, err := tui.NewSelectedGame(sel)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if _, err := tui.Run(game, store, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-digger/internal/platform/tui"
)

// runMenu shows the menu, runs the chosen game and returns to the menu until
// the player quits.
func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		switch {
		case menuResult.Quit:
			return nil

		case menuResult.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				logger.Error("scoreboard failed", "error", err)
			}
			if !goBack {
				return nil
			}

		case menuResult.Selection != nil:
			game, err := tui.NewSelectedGame(*menuResult.Selection)
			if err != nil {
				logger.Error("creating game", "error", err)
				continue
			}
			back, err := tui.Run(game, store, cfg)
			if err != nil {
				logger.Error("running game", "error", err)
			}
			if !back && err == nil {
				return nil
			}
		}
	}
}

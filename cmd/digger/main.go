// digger is a dig-and-evade puzzle platformer for the terminal.
//
// Usage:
//
//	digger                 - Start the menu
//	digger play            - Play the campaign directly
//	digger levels          - List the level table
//	digger scores [mode]   - Show high scores
//	digger config          - Print the effective configuration
//	digger serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--db <path>           - Set database path (default: ~/.arcade/digger.db)
//	--levels <dir>        - Load levels from a YAML level pack
//	--config <path>       - Use a custom digger.yaml
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-digger/internal/config"
	"github.com/vovakirdan/tui-digger/internal/core"
	"github.com/vovakirdan/tui-digger/internal/games/digger"
	"github.com/vovakirdan/tui-digger/internal/games/digger/levels"
	"github.com/vovakirdan/tui-digger/internal/platform/tui"
	"github.com/vovakirdan/tui-digger/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagLevelsDir  string
	flagConfig     string
	flagDifficulty string
	flagNoColor    bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "digger"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "digger",
	Short: "Digger - collect the gold, dig traps, climb out",
	Long: `Digger is a terminal puzzle platformer. Collect every piece of gold
while guards chase you, dig holes in brick floors to trap them, then
climb the escape ladder that appears once the gold is gone.

Available commands:
  play     - Play the campaign or endless mode directly
  levels   - List or export the level table
  scores   - View high scores
  config   - Print the effective configuration
  serve    - Start SSH server for remote play

Running digger without a command opens the menu.

Examples:
  digger
  digger play --level 3
  digger play --endless --difficulty hard
  digger levels --export ./mylevels
  digger --levels ./mylevels play
  digger serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: applyGlobalFlags,
	RunE:              runMenu,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (simulation steps per second)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/digger.db", "Path to scores database")
	pf.StringVar(&flagLevelsDir, "levels", "", "Directory of YAML level files (default: built-in campaign)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom digger config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.BoolVar(&flagNoColor, "no-color", false, "Disable colors")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// applyGlobalFlags pushes the global flags into the game packages before any
// game is created.
func applyGlobalFlags(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagDifficulty != "" {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
	}

	digger.SetConfigPath(flagConfig)
	digger.SetDifficultyPreset(flagDifficulty)
	if flagNoColor {
		tui.SetMonochrome(true)
	}

	levels.SetPackDir(flagLevelsDir)
	if flagLevelsDir != "" {
		if _, err := levels.Table(); err != nil {
			logger.Warn("using built-in levels", "dir", flagLevelsDir, "error", err)
		}
	}
	return nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

// openStore opens the scores database. The game still runs without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

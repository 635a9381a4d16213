package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-digger/internal/games/digger/engine"
	"github.com/vovakirdan/tui-digger/internal/games/digger/levels"
)

var flagExportDir string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level table",
	Long: `Shows the levels the campaign plays, in order. With --levels the
table comes from a directory of YAML files instead of the built-in set.

--export writes the current table as YAML files, a starting point for
a custom level pack.

Examples:
  digger levels
  digger levels --export ./mylevels
  digger --levels ./mylevels levels`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagExportDir, "export", "", "Write the level table as YAML files to this directory")
}

func runLevels(_ *cobra.Command, _ []string) error {
	defs, _ := levels.Table() // applyGlobalFlags already reported pack errors

	if flagExportDir != "" {
		if err := levels.Export(flagExportDir, defs); err != nil {
			return fmt.Errorf("exporting levels: %w", err)
		}
		fmt.Printf("Exported %d levels to %s\n", len(defs), flagExportDir)
		return nil
	}

	source := "built-in"
	if dir := levels.PackDir(); dir != "" {
		source = dir
	}
	fmt.Printf("Levels (%s):\n\n", source)

	loader := engine.NewLoader(defs, engine.DefaultParams())

	maxIDLen := 2 // "ID" header
	for _, d := range defs {
		maxIDLen = max(maxIDLen, len(d.ID))
	}

	fmt.Printf("  %3s  %-*s  %-7s  %4s  %6s  %s\n", "#", maxIDLen, "ID", "Size", "Gold", "Guards", "Name")
	fmt.Printf("  %3s  %-*s  %-7s  %4s  %6s  %s\n", "-", maxIDLen, "--", "----", "----", "------", "----")

	for i := range loader.Count() {
		s := loader.Load(i + 1)
		def := loader.Def(i + 1)
		size := fmt.Sprintf("%dx%d", s.Grid.Cols, s.Grid.Rows)
		fmt.Printf("  %3d  %-*s  %-7s  %4d  %6d  %s\n",
			i+1, maxIDLen, def.ID, size, s.GoldRemaining, len(s.Guards), def.Name)
	}

	fmt.Println()
	fmt.Println("Run 'digger play --level <#>' to start on a level.")
	return nil
}

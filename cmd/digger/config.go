package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-digger/internal/config"
)

var flagDefaultConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the digger configuration as YAML after applying the config
search order and the --difficulty preset. Redirect it to a file to start
a custom config.

Config search order:
  --config <path>
  ~/.arcade/configs/digger.yaml
  ./configs/digger.yaml
  built-in defaults

Examples:
  digger config
  digger config --difficulty hard
  digger config --default > ~/.arcade/configs/digger.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaultConfig, "default", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaultConfig {
		_, err := os.Stdout.Write(config.GetDefaultYAML("digger"))
		return err
	}

	cfg, err := config.LoadDigger(flagConfig)
	if err != nil {
		return err
	}
	if preset, ok := config.ParsePreset(flagDifficulty); ok {
		config.ApplyDiggerPreset(&cfg, preset)
	}

	out, err := cfg.Marshal()
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}

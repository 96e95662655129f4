package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-frogger/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default layout YAML",
	Long: `Print the built-in layout. Save it to ~/.frogger/configs/frogger.yaml
or pass a copy with --config to change lanes, speeds and rewards.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.OutOrStdout().Write(config.DefaultYAML())
	},
}

var configCheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a layout file, or the one the game would load",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := flagConfig
		if len(args) == 1 {
			path = args[0]
		}

		var (
			cfg config.FroggerConfig
			err error
		)
		if path != "" {
			// An explicit file must parse on its own, without fallbacks
			data, readErr := os.ReadFile(path)
			if readErr != nil {
				return fmt.Errorf("config: cannot read %s: %w", path, readErr)
			}
			cfg, err = config.ParseFrogger(data)
		} else {
			cfg, err = config.LoadFrogger("")
		}
		if err != nil {
			return err
		}

		summary, _ := yaml.Marshal(map[string]int{
			"river_lanes":   len(cfg.River),
			"traffic_lanes": len(cfg.Traffic),
			"door_lanes":    len(cfg.Doors),
		})
		fmt.Fprintf(cmd.OutOrStdout(), "layout ok\n%s", summary)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configCheckCmd)
}

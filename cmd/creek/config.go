package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fuze-creek/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a round would use, after the config file,
difficulty preset and profile are applied. The output is valid YAML and can
be saved as ~/.fuzecreek/configs/creek.yaml.

Examples:
  creek config
  creek config --difficulty hard --profile 3d > creek.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, source, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := config.MarshalCreek(cfg)
		if err != nil {
			return err
		}
		fmt.Printf("# source: %s\n", source)
		fmt.Print(string(data))
		return nil
	},
}

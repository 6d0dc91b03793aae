package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/venuecast/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	if cfg.General.DefaultPlan != "" {
		fmt.Printf("    Default plan:    %s\n", cfg.General.DefaultPlan)
	} else {
		fmt.Println("    Default plan:    not set (use --plan)")
	}
	fmt.Printf("    Default horizon: %d weeks\n", cfg.General.DefaultHorizonWeeks)
	fmt.Printf("    Database:        %s\n", dbPath(cfg))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)

	return nil
}

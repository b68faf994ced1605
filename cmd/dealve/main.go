package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dealve/dealve/internal/config"
	"github.com/dealve/dealve/internal/tui"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dealve",
	Short: "Dealve - browse game deals in your terminal",
	Long: `Dealve is an interactive terminal browser for game deals, backed by the
IsThereAnyDeal API.

An API key is required; Dealve walks you through getting one on first run.
The key is read from the ` + config.EnvAPIKey + ` environment variable (or a
.env file) first, then from the settings file.

Examples:
  dealve                    # Start browsing
  ITAD_API_KEY=... dealve   # Run with an explicit key`,
	Version: version,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env is the normal case.
		_ = godotenv.Load()

		apiKey := config.LoadAPIKey()
		if apiKey == "" {
			key, err := tui.RunOnboarding()
			if err != nil {
				return err
			}
			if key == "" {
				fmt.Fprintln(os.Stderr, "An API key is required to browse deals.")
				os.Exit(1)
			}
			apiKey = key
		}

		return tui.Run(config.Load(), apiKey)
	},
}

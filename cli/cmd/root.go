// ABOUTME: Root command for the ronkz CLI
// ABOUTME: Handles global flags and store initialization

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/stephenolajire/Ronkz-Couture/config"
	"github.com/stephenolajire/Ronkz-Couture/store"
)

var (
	apiURL     string
	jsonOutput bool
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "ronkz",
	Short: "CLI for the Ronkz Couture storefront",
	Long: `ronkz is a command-line client for the Ronkz Couture storefront API.

It browses the catalog, manages the anonymous cart and custom orders, and
handles account authentication.

Environment Variables:
  STOREFRONT_API_URL     Storefront API base URL (required unless --api-url is set)
  STOREFRONT_STATE_PATH  Where tokens and identity codes are persisted`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Storefront API URL (overrides STOREFRONT_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// getStore returns the process store, initializing it on first use. The
// --api-url flag wins over the environment.
func getStore() (*store.Store, error) {
	if s, err := store.Current(); err == nil {
		return s, nil
	}
	if apiURL != "" {
		os.Setenv("STOREFRONT_API_URL", apiURL)
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return store.Init(cfg)
}

// Package cli contains the arinja terminal commands.
package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devrajn/arinja/internal/config"
	"github.com/devrajn/arinja/internal/news"
	"github.com/devrajn/arinja/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "arinja [category|id]",
	Short: "Terminal news bot",
	Long: `arinja pulls headlines by category, stores them locally and lets you
browse them from the terminal.

Example usage:
  arinja                      # Welcome screen with available categories
  arinja technology           # Show stored technology headlines
  arinja 42                   # Show article #42
  arinja fetch --from 2026-08-25 --to 2026-09-01
  arinja source 42            # Show article source and URL
  arinja open 42              # Open article in your browser`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			showWelcome()
			return nil
		}

		// A numeric target is an article id, anything else a category.
		if id, err := strconv.ParseUint(args[0], 10, 64); err == nil {
			return showArticle(uint(id))
		}

		category := strings.ToLower(args[0])
		if !news.ValidCategory(category) {
			printInvalidCategory(category)
			return nil
		}
		return showCategory(category)
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(fetchCmd, sourceCmd, openCmd)
}

// openStore connects to the database; a connectivity failure here is fatal
// for the command in progress.
func openStore() (*storage.Store, error) {
	cfg := config.Load()
	return storage.NewStore(cfg.PostgresDSN, cfg.RedisAddr)
}

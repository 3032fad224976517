package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/devrajn/arinja/internal/storage"
)

var sourceCmd = &cobra.Command{
	Use:   "source <id>",
	Short: "Show article source information",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("article id must be a number: %q", args[0])
		}

		store, err := openStore()
		if err != nil {
			return fmt.Errorf("connect to store: %w", err)
		}

		a, err := store.GetArticleByID(uint(id))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				color.Red("Article %d not found", id)
				return nil
			}
			return err
		}

		color.New(color.FgGreen, color.Bold).Printf("#%d Source Info\n", a.ID)
		fmt.Printf("Source: %s\n", a.Source)
		fmt.Printf("URL: %s\n", a.URL)
		return nil
	},
}

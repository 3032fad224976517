package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/devrajn/arinja/internal/browser"
	"github.com/devrajn/arinja/internal/storage"
)

var openCmd = &cobra.Command{
	Use:   "open <id>",
	Short: "Open article in web browser",
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

		if err := browser.Open(a.URL); err != nil {
			return fmt.Errorf("open %s: %w", a.URL, err)
		}
		color.Green("Opening article in your default web browser...")
		return nil
	},
}

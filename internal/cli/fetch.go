package cli

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/devrajn/arinja/internal/news"
	"github.com/devrajn/arinja/internal/scraper"
)

var (
	fetchFrom string
	fetchTo   string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch and index the latest news",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, end, err := parseFetchWindow(fetchFrom, fetchTo, time.Now())
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return fmt.Errorf("connect to store: %w", err)
		}

		f := news.NewFetcher(news.NewSearchClient(), scraper.New(), start, end)

		dim := color.New(color.Faint)
		var batch []news.Article
		for _, category := range news.Categories() {
			dim.Printf("Fetching %s news...\n", category)
			articles, err := f.FetchHeadlines(category)
			if err != nil {
				log.Printf("fetch %s error: %v", category, err)
				continue
			}
			batch = append(batch, articles...)
		}

		dim.Println("Storing articles...")
		ids, created, err := store.StoreArticles(batch)
		if err != nil {
			return err
		}

		green := color.New(color.FgGreen)
		green.Printf("✓ Fetched %d articles\n", len(batch))
		green.Printf("✓ Newly stored: %d (already known: %d)\n", created, len(ids)-created)
		return nil
	},
}

func init() {
	fetchCmd.Flags().StringVar(&fetchFrom, "from", "", "start date (YYYY-MM-DD)")
	fetchCmd.Flags().StringVar(&fetchTo, "to", "", "end date (YYYY-MM-DD)")
}

// parseFetchWindow validates the user-supplied date range. Missing bounds
// stay zero; the fetcher derives them.
func parseFetchWindow(fromStr, toStr string, now time.Time) (from, to time.Time, err error) {
	if fromStr != "" {
		from, err = time.Parse("2006-01-02", fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid date format, use YYYY-MM-DD")
		}
	}
	if toStr != "" {
		to, err = time.Parse("2006-01-02", toStr)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid date format, use YYYY-MM-DD")
		}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
	if from.After(today) || to.After(today) {
		return time.Time{}, time.Time{}, errors.New("dates cannot be in the future")
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return time.Time{}, time.Time{}, errors.New("end date cannot be before start date")
	}
	return from, to, nil
}

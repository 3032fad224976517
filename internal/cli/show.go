package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/devrajn/arinja/internal/config"
	"github.com/devrajn/arinja/internal/news"
	"github.com/devrajn/arinja/internal/storage"
)

var categoryIcons = map[string]string{
	"technology":    "🔧",
	"business":      "💼",
	"sports":        "⚽",
	"entertainment": "🎬",
	"science":       "🔬",
	"health":        "🏥",
	"world":         "🌍",
	"india":         "🇮🇳",
}

func showWelcome() {
	title := color.New(color.FgGreen, color.Bold)
	dim := color.New(color.Faint)

	title.Println("Welcome to arinja!")
	fmt.Println()
	fmt.Println("Your personal terminal news assistant.")
	fmt.Printf("Current time (IST): %s\n", config.NowIST().Format("2006-01-02 15:04:05"))
	fmt.Println()
	fmt.Println("Available categories:")
	for _, cat := range news.Categories() {
		fmt.Printf("  %s %s\n", categoryIcons[cat], cat)
	}
	fmt.Println()
	dim.Println("Commands:")
	dim.Println("  arinja <category>                    Show headlines for category")
	dim.Println("  arinja <id>                          Show full article")
	dim.Println("  arinja fetch [--from ..] [--to ..]   Update news database")
	dim.Println("  arinja source <id>                   Show article source")
	dim.Println("  arinja open <id>                     Open article in browser")
}

func printInvalidCategory(category string) {
	color.Red("Invalid category: %s", category)
	fmt.Printf("Available categories: %s\n", strings.Join(news.Categories(), ", "))
}

func showCategory(category string) error {
	store, err := openStore()
	if err != nil {
		return fmt.Errorf("connect to store: %w", err)
	}

	articles, err := store.GetArticles(category, time.Time{}, time.Time{}, 20)
	if err != nil {
		return err
	}
	if len(articles) == 0 {
		color.Red("No articles found for category: %s", category)
		return nil
	}

	header := color.New(color.FgGreen, color.Bold)
	header.Printf("\n%s %s\n", categoryIcons[category], strings.ToUpper(category))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Date", "Title"})
	table.SetBorder(false)
	table.SetColumnSeparator("|")
	for _, a := range articles {
		table.Append([]string{
			"#" + strconv.FormatUint(uint64(a.ID), 10),
			a.PublishedAt.In(config.IST).Format("2006-01-02"),
			a.Title,
		})
	}
	table.Render()

	color.New(color.Faint).Println("\nUse 'arinja <id>' to see article content")
	return nil
}

func showArticle(id uint) error {
	store, err := openStore()
	if err != nil {
		return fmt.Errorf("connect to store: %w", err)
	}

	a, err := store.GetArticleByID(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			color.Red("Article %d not found", id)
			return nil
		}
		return err
	}

	color.New(color.Bold).Println(a.Title)
	color.New(color.Faint).Printf("Date: %s | Category: %s\n\n",
		a.PublishedAt.In(config.IST).Format("2006-01-02"), a.Category)
	fmt.Println(a.Content)
	fmt.Println()
	dim := color.New(color.Faint)
	dim.Printf("Source: %s\n", a.Source)
	dim.Printf("URL: %s\n", a.URL)
	return nil
}

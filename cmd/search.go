package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/study-tracker/internal/cards"
	"github.com/ziadkadry99/study-tracker/internal/tracker"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search card titles and answers",
	Long:  `Case-insensitive substring search over card titles and answers in the searchable categories.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	tr, err := a.newTracker(context.Background(), nil, nil)
	if err != nil {
		return err
	}

	if tr.Search(query) == nil {
		return fmt.Errorf("query must be at least %d characters", minQueryLength(a.cfg.Search.MinQueryLength))
	}
	_, results := tr.LastSearch()

	if jsonOutput {
		return printSearchResultsJSON(results)
	}
	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}
	printSearchResultsTable(results)
	return nil
}

func minQueryLength(n int) int {
	if n <= 0 {
		return tracker.DefaultMinQueryLength
	}
	return n
}

type searchResultJSON struct {
	ID         string   `json:"id"`
	Category   string   `json:"category"`
	Number     int      `json:"number"`
	Title      string   `json:"title"`
	Tags       []string `json:"tags"`
	Completed  bool     `json:"completed"`
	Bookmarked bool     `json:"bookmarked"`
	Answer     string   `json:"answer"`
}

func printSearchResultsJSON(results []cards.CardView) error {
	out := make([]searchResultJSON, 0, len(results))
	for _, c := range results {
		out = append(out, searchResultJSON{
			ID:         c.ID,
			Category:   c.Category,
			Number:     c.NumberLabel,
			Title:      c.Title,
			Tags:       c.Tags,
			Completed:  c.Completed,
			Bookmarked: c.Bookmarked,
			Answer:     cards.PlainText(c.AnswerHTML),
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printSearchResultsTable(results []cards.CardView) {
	fmt.Printf("Found %d results:\n\n", len(results))
	for _, c := range results {
		marks := ""
		if c.Completed {
			marks += " [completed]"
		}
		if c.Bookmarked {
			marks += " [bookmarked]"
		}
		fmt.Printf("  #%d %s%s\n", c.NumberLabel, c.Title, marks)
		fmt.Printf("     ID: %s  Category: %s\n", c.ID, c.Category)
		if len(c.Tags) > 0 {
			fmt.Printf("     Tags: %s\n", strings.Join(c.Tags, ", "))
		}
		fmt.Printf("     %s\n\n", truncate(strings.Join(strings.Fields(cards.PlainText(c.AnswerHTML)), " "), 120))
	}
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

package cmd

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/study-tracker/internal/progress"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show completion progress per category",
	RunE: func(cmd *cobra.Command, args []string) error {
		plain, _ := cmd.Flags().GetBool("plain")
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
		rows, bookmarks := tr.Progress(), tr.BookmarkCount()

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Categories []progress.Progress `json:"categories"`
				Bookmarks  int                 `json:"bookmarks"`
			}{rows, bookmarks})
		}

		var r progress.Reporter = progress.NewReporter(os.Stdout)
		if plain {
			r = &progress.TextReporter{W: os.Stdout}
		}
		return r.Report(rows, bookmarks)
	},
}

func init() {
	statsCmd.Flags().Bool("plain", false, "print plain text lines instead of progress bars")
	statsCmd.Flags().Bool("json", false, "output progress as JSON")
	rootCmd.AddCommand(statsCmd)
}

package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter prints a progress summary for a set of categories.
type Reporter interface {
	Report(rows []Progress, bookmarks int) error
}

// NewReporter returns a TerminalReporter writing to w, or a TextReporter if the
// CI environment variable is set.
func NewReporter(w io.Writer) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &TextReporter{W: w}
	}
	return &TerminalReporter{W: w}
}

// TerminalReporter draws one progress bar per category.
type TerminalReporter struct {
	W     io.Writer
	Width int
}

func (r *TerminalReporter) Report(rows []Progress, bookmarks int) error {
	width := r.Width
	if width <= 0 {
		width = 30
	}
	pad := labelWidth(rows)
	for _, p := range rows {
		label := fmt.Sprintf("%-*s", pad, p.Category)
		if p.Total == 0 {
			fmt.Fprintf(r.W, "%s  (no items)\n", label)
			continue
		}
		bar := progressbar.NewOptions(p.Total,
			progressbar.OptionSetWriter(r.W),
			progressbar.OptionSetDescription(label),
			progressbar.OptionSetWidth(width),
			progressbar.OptionShowCount(),
			progressbar.OptionSetPredictTime(false),
			progressbar.OptionSetElapsedTime(false),
		)
		if err := bar.Set(min(p.Completed, p.Total)); err != nil {
			return fmt.Errorf("drawing %s: %w", p.Category, err)
		}
		fmt.Fprintln(r.W)
	}
	fmt.Fprintf(r.W, "bookmarks: %d\n", bookmarks)
	return nil
}

// TextReporter prints line-by-line progress suitable for CI logs and pipes.
type TextReporter struct {
	W io.Writer
}

func (r *TextReporter) Report(rows []Progress, bookmarks int) error {
	pad := labelWidth(rows)
	for _, p := range rows {
		fmt.Fprintf(r.W, "%-*s  %d/%d  %d%%\n", pad, p.Category, p.Completed, p.Total, p.Percent)
	}
	fmt.Fprintf(r.W, "bookmarks: %d\n", bookmarks)
	return nil
}

func labelWidth(rows []Progress) int {
	n := 0
	for _, p := range rows {
		if len(p.Category) > n {
			n = len(p.Category)
		}
	}
	return n
}

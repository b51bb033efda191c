package progress

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/ziadkadry99/study-tracker/internal/catalog"
	"github.com/ziadkadry99/study-tracker/internal/itemid"
	"github.com/ziadkadry99/study-tracker/internal/state"
)

func makeItems(n int) []catalog.Item {
	items := make([]catalog.Item, n)
	for i := range items {
		items[i] = catalog.Item{Title: fmt.Sprintf("Question %d", i)}
	}
	return items
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(
		catalog.Category{Key: "basic", Items: makeItems(55)},
		catalog.Category{Key: "intermediate", Items: makeItems(4)},
		catalog.Category{Key: "projects", Items: []catalog.Item{{ID: "token-swap"}, {ID: "dao"}}},
		catalog.Category{Key: "rust", Items: []catalog.Item{}},
	)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return c
}

func TestComputeBasic(t *testing.T) {
	c := testCatalog(t)
	st := state.New()
	for i := 0; i < 10; i++ {
		st.Completed.Add(itemid.Make("basic", i))
	}
	st.Completed.Add("intermediate-0")

	got := Compute("basic", c, st)
	want := Progress{Category: "basic", Completed: 10, Total: 55, Percent: 18}
	if got != want {
		t.Errorf("Compute(basic) = %+v, want %+v", got, want)
	}
}

func TestComputeEmptyCategory(t *testing.T) {
	c := testCatalog(t)
	st := state.New()
	st.Completed.Add("rust-0")

	got := Compute("rust", c, st)
	if got != (Progress{Category: "rust"}) {
		t.Errorf("Compute(rust) = %+v, want zeros", got)
	}

	if got := Compute("unknown", c, st); got.Total != 0 || got.Percent != 0 {
		t.Errorf("Compute(unknown) = %+v", got)
	}
}

func TestComputeProjectsAndOrphans(t *testing.T) {
	c := testCatalog(t)
	st := state.New()
	st.Completed.Add("dao")
	st.Completed.Add("intermediate-3")
	st.Completed.Add("not-an-id")

	if got := Compute("projects", c, st); got.Completed != 1 || got.Percent != 50 {
		t.Errorf("Compute(projects) = %+v", got)
	}
	if got := Compute("intermediate", c, st); got.Completed != 1 || got.Percent != 25 {
		t.Errorf("Compute(intermediate) = %+v", got)
	}
}

func TestComputeStaleIDsExceedTotal(t *testing.T) {
	c := testCatalog(t)
	st := state.New()
	for _, id := range []string{"intermediate-0", "intermediate-1", "intermediate-2", "intermediate-3", "intermediate-7", "intermediate-9"} {
		st.Completed.Add(id)
	}

	got := Compute("intermediate", c, st)
	want := Progress{Category: "intermediate", Completed: 6, Total: 4, Percent: 150}
	if got != want {
		t.Errorf("Compute(intermediate) = %+v, want %+v", got, want)
	}
}

func TestAllAndBookmarkCount(t *testing.T) {
	c := testCatalog(t)
	st := state.New()
	st.Bookmarked.Add("basic-1")
	st.Bookmarked.Add("stale-99")

	all := All(c, st)
	if len(all) != 4 || all[0].Category != "basic" || all[3].Category != "rust" {
		t.Errorf("All() = %+v", all)
	}
	if n := BookmarkCount(st); n != 2 {
		t.Errorf("BookmarkCount() = %d, want 2", n)
	}
}

func TestTextReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &TextReporter{W: &buf}
	rows := []Progress{
		{Category: "basic", Completed: 10, Total: 55, Percent: 18},
		{Category: "rust"},
	}
	if err := r.Report(rows, 3); err != nil {
		t.Fatalf("Report: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"basic  10/55  18%", "rust   0/0  0%", "bookmarks: 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTerminalReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalReporter{W: &buf, Width: 10}
	rows := []Progress{
		{Category: "basic", Completed: 1, Total: 2, Percent: 50},
		{Category: "rust"},
	}
	if err := r.Report(rows, 0); err != nil {
		t.Fatalf("Report: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "basic") || !strings.Contains(out, "rust   (no items)") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestTerminalReporterOverfullCategory(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalReporter{W: &buf, Width: 10}
	rows := []Progress{{Category: "basic", Completed: 3, Total: 2, Percent: 150}}
	if err := r.Report(rows, 1); err != nil {
		t.Fatalf("Report with more completed than total: %v", err)
	}
	if out := buf.String(); !strings.Contains(out, "bookmarks: 1") {
		t.Errorf("report stopped early:\n%s", out)
	}
}

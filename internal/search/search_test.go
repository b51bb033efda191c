package search

import (
	"strings"
	"testing"

	"github.com/ziadkadry99/study-tracker/internal/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(
		catalog.Category{Key: "basic", Items: []catalog.Item{
			{Title: "What is a block?", Answer: "<p>A batch of transactions.</p>"},
			{Title: "What is gas?", Answer: "<p>Work units.</p>"},
		}},
		catalog.Category{Key: "intermediate", Items: []catalog.Item{
			{Title: "What is gas?", Answer: "<p>Opcode pricing.</p>"},
			{Title: "Explain EIP-1559", Answer: "<p>Base fee is burned; <code>GAS</code> price floats.</p>"},
		}},
		catalog.Category{Key: "projects", Items: []catalog.Item{
			{ID: "gas-station", Title: "Build a gas station"},
		}},
	)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return c
}

func ids(results []Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.ID
	}
	return out
}

func TestSearchOrderAndCase(t *testing.T) {
	c := testCatalog(t)

	got := ids(Search("gas", c, []string{"basic", "intermediate"}))
	want := []string{"basic-1", "intermediate-0", "intermediate-1"}
	if len(got) != len(want) {
		t.Fatalf("Search(gas) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("result %d = %s, want %s", i, got[i], want[i])
		}
	}

	upper := ids(Search("GAS", c, []string{"basic", "intermediate"}))
	if len(upper) != 3 {
		t.Errorf("search should ignore case, got %v", upper)
	}
}

func TestSearchAnswerHTMLIsRaw(t *testing.T) {
	c := testCatalog(t)
	got := ids(Search("<code>", c, []string{"intermediate"}))
	if len(got) != 1 || got[0] != "intermediate-1" {
		t.Errorf("Search(<code>) = %v; answers are matched as raw HTML", got)
	}
}

func TestSearchRespectsCategories(t *testing.T) {
	c := testCatalog(t)

	got := ids(Search("gas", c, []string{"intermediate", "basic", "intermediate"}))
	want := []string{"basic-1", "intermediate-0", "intermediate-1"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Search with reordered, repeated categories = %v, want catalog order %v", got, want)
	}

	got = ids(Search("gas", c, []string{"projects", "missing"}))
	if len(got) != 1 || got[0] != "gas-station" {
		t.Errorf("Search over projects = %v", got)
	}
}

func TestSearchNoMatchAndEmpty(t *testing.T) {
	c := testCatalog(t)
	all := []string{"basic", "intermediate", "projects"}

	got := Search("zz-not-present", c, all)
	if got == nil || len(got) != 0 {
		t.Errorf("no-match search = %v, want empty non-nil slice", got)
	}
	if got := Search("", c, all); got == nil || len(got) != 0 {
		t.Errorf("empty query = %v, want empty", got)
	}
	if got := Search("   ", c, all); len(got) != 0 {
		t.Errorf("blank query = %v, want empty", got)
	}
	if got := Search("gas", c, nil); len(got) != 0 {
		t.Errorf("no categories = %v, want empty", got)
	}
}

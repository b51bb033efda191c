package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New(
		Category{Key: "basic", Items: []Item{{Title: "What is gas?"}, {Title: "What is a block?"}}},
		Category{Key: "projects", Items: []Item{{ID: "token-swap", Title: "Build a token swap"}}},
		Category{Key: "rust"},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNewOrderAndTitles(t *testing.T) {
	c := testCatalog(t)

	keys := c.Keys()
	if strings.Join(keys, ",") != "basic,projects,rust" {
		t.Errorf("Keys() = %v", keys)
	}
	cat, ok := c.Category("rust")
	if !ok {
		t.Fatal("rust category missing")
	}
	if cat.Title != "Rust" {
		t.Errorf("derived title = %q, want %q", cat.Title, "Rust")
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
}

func TestDerivedTitles(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"basic", "Basic"},
		{"smart-contracts", "Smart Contracts"},
		{"zero_knowledge", "Zero Knowledge"},
		{"über-advanced", "Über Advanced"},
		{"ébauche", "Ébauche"},
	}
	for _, tt := range tests {
		if got := titleFromKey(tt.key); got != tt.want {
			t.Errorf("titleFromKey(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	if _, err := New(Category{Key: ""}); err == nil {
		t.Error("expected error for empty key")
	}
	if _, err := New(Category{Key: "basic"}, Category{Key: "basic"}); err == nil {
		t.Error("expected error for duplicate key")
	}
	_, err := New(
		Category{Key: "a", Items: []Item{{ID: "p1"}}},
		Category{Key: "b", Items: []Item{{ID: "p1"}}},
	)
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID, got %v", err)
	}
}

func TestLookupAndOwner(t *testing.T) {
	c := testCatalog(t)

	e, ok := c.Lookup("basic-1")
	if !ok {
		t.Fatal("basic-1 not found")
	}
	if e.Item.Title != "What is a block?" || e.Index != 1 || e.Category != "basic" {
		t.Errorf("Lookup(basic-1) = %+v", e)
	}

	e, ok = c.Lookup("token-swap")
	if !ok || e.Category != "projects" || e.Index != 0 {
		t.Errorf("Lookup(token-swap) = %+v, %v", e, ok)
	}

	if _, ok := c.Lookup("basic-99"); ok {
		t.Error("stale id should not resolve")
	}

	if owner, ok := c.Owner("basic-99"); !ok || owner != "basic" {
		t.Errorf("Owner(basic-99) = %q, %v; want basic from the id itself", owner, ok)
	}
	if owner, ok := c.Owner("token-swap"); !ok || owner != "projects" {
		t.Errorf("Owner(token-swap) = %q, %v", owner, ok)
	}
	if _, ok := c.Owner("garbage"); ok {
		t.Error("Owner(garbage) should fail")
	}
}

func TestItemIDAndEntries(t *testing.T) {
	c := testCatalog(t)

	if got := c.ItemID("basic", 0); got != "basic-0" {
		t.Errorf("ItemID(basic, 0) = %q", got)
	}
	if got := c.ItemID("projects", 0); got != "token-swap" {
		t.Errorf("ItemID(projects, 0) = %q", got)
	}

	entries := c.Entries("basic")
	if len(entries) != 2 || entries[1].ID != "basic-1" {
		t.Errorf("Entries(basic) = %+v", entries)
	}
	if n := len(c.Entries("nope")); n != 0 {
		t.Errorf("Entries of unknown category = %d entries, want 0", n)
	}
}

func TestReorder(t *testing.T) {
	c := testCatalog(t)

	r, err := c.Reorder([]string{"rust", "basic"})
	if err != nil {
		t.Fatalf("Reorder: %v", err)
	}
	if got := strings.Join(r.Keys(), ","); got != "rust,basic,projects" {
		t.Errorf("Reorder keys = %s", got)
	}
	if _, err := c.Reorder([]string{"missing"}); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestLoadTestdata(t *testing.T) {
	c, err := Load(filepath.Join("..", "..", "testdata", "catalog", "*.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := "basic,intermediate,advanced,projects,rust"
	if got := strings.Join(c.Keys(), ","); got != want {
		t.Errorf("Keys() = %s, want %s", got, want)
	}

	wallet, ok := c.Lookup("basic-2")
	if !ok {
		t.Fatal("basic-2 missing")
	}
	if !strings.Contains(wallet.Item.Answer, "<strong>private keys</strong>") {
		t.Errorf("markdown answer not rendered: %q", wallet.Item.Answer)
	}
	if !strings.Contains(wallet.Item.Answer, "<li>") {
		t.Errorf("markdown list not rendered: %q", wallet.Item.Answer)
	}

	swap, ok := c.Lookup("token-swap")
	if !ok {
		t.Fatal("project token-swap missing")
	}
	if len(swap.Item.Features) != 2 || swap.Item.Difficulty != "intermediate" {
		t.Errorf("project fields not loaded: %+v", swap.Item)
	}

	if n := len(c.Items("rust")); n != 0 {
		t.Errorf("rust should be empty, got %d items", n)
	}
}

func TestLoadJSONAndCategoryList(t *testing.T) {
	dir := t.TempDir()
	js := `{"categories": [
		{"key": "basic", "order": 2, "items": [{"title": "Q1", "tags": ["a"], "answer": "<p>A1</p>"}]},
		{"key": "advanced", "order": 1, "items": []}
	]}`
	if err := os.WriteFile(filepath.Join(dir, "data.json"), []byte(js), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(filepath.Join(dir, "**", "*.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := strings.Join(c.Keys(), ","); got != "advanced,basic" {
		t.Errorf("Keys() = %s", got)
	}
	if items := c.Items("basic"); len(items) != 1 || items[0].Answer != "<p>A1</p>" {
		t.Errorf("Items(basic) = %+v", items)
	}
}

func TestLoadNoMatches(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "*.yaml")); err == nil {
		t.Error("expected error when no files match")
	}
}

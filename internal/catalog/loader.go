package catalog

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk shape. A file holds either a single category at
// the top level or a list under "categories". JSON files parse the same way.
type catalogFile struct {
	Category   `yaml:",inline"`
	Categories []Category `yaml:"categories"`
}

// Load reads every file matching the glob patterns and builds a Catalog.
// Categories are ordered by their "order" field, then by the order in which
// they were first seen.
func Load(patterns ...string) (*Catalog, error) {
	var paths []string
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad catalog pattern %q: %w", pattern, err)
		}
		sort.Strings(matches)
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files match %v", patterns)
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	var categories []Category
	for _, path := range paths {
		cats, err := readFile(path)
		if err != nil {
			return nil, err
		}
		for _, cat := range cats {
			if err := renderMarkdown(md, &cat); err != nil {
				return nil, fmt.Errorf("%s: category %q: %w", path, cat.Key, err)
			}
			categories = append(categories, cat)
		}
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Order < categories[j].Order
	})
	return New(categories...)
}

// Parse decodes a single catalog document, as found in a catalog file.
func Parse(data []byte) ([]Category, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	var cats []Category
	if f.Key != "" {
		cats = append(cats, f.Category)
	}
	return append(cats, f.Categories...), nil
}

func readFile(path string) ([]Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	cats, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	return cats, nil
}

func renderMarkdown(md goldmark.Markdown, cat *Category) error {
	for i := range cat.Items {
		it := &cat.Items[i]
		if it.Answer != "" || it.AnswerMarkdown == "" {
			continue
		}
		var buf bytes.Buffer
		if err := md.Convert([]byte(it.AnswerMarkdown), &buf); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
		it.Answer = buf.String()
	}
	return nil
}

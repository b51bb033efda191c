package catalog

// Item is one question card or project entry. Items are owned by the Catalog
// and never mutated after loading.
type Item struct {
	Title string   `yaml:"title" json:"title"`
	Tags  []string `yaml:"tags" json:"tags"`
	// Answer is a trusted HTML fragment. It is rendered unescaped.
	Answer string `yaml:"answer" json:"answer"`
	// AnswerMarkdown is converted into Answer at load time when Answer is empty.
	AnswerMarkdown string `yaml:"answer_md" json:"-"`

	// Project fields. A non-empty ID marks the item as a project.
	ID          string   `yaml:"id" json:"id,omitempty"`
	Icon        string   `yaml:"icon" json:"icon,omitempty"`
	Description string   `yaml:"description" json:"description,omitempty"`
	Difficulty  string   `yaml:"difficulty" json:"difficulty,omitempty"`
	Tech        []string `yaml:"tech" json:"tech,omitempty"`
	Features    []string `yaml:"features" json:"features,omitempty"`
}

// IsProject reports whether the item carries its own project id.
func (it Item) IsProject() bool { return it.ID != "" }

// Category is an ordered group of items.
type Category struct {
	Key   string `yaml:"key" json:"key"`
	Title string `yaml:"title" json:"title"`
	Order int    `yaml:"order" json:"order"`
	Items []Item `yaml:"items" json:"items"`
}

// Ref locates an item inside the catalog.
type Ref struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Index    int    `json:"index"`
}

// Entry pairs an item with its location.
type Entry struct {
	Ref
	Item Item
}

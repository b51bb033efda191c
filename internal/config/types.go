package config

import "time"

// Config is the top-level study tracker configuration, corresponding to
// .studytracker.yml.
type Config struct {
	// Catalog lists glob patterns (doublestar syntax) of catalog files.
	Catalog     []string `yaml:"catalog" koanf:"catalog"`
	DataDir     string   `yaml:"data_dir" koanf:"data_dir"`
	DefaultView string   `yaml:"default_view" koanf:"default_view"`
	// Categories fixes the tab order. Unlisted categories follow in catalog order.
	Categories    []string            `yaml:"categories" koanf:"categories"`
	Search        SearchConfig        `yaml:"search" koanf:"search"`
	Notifications NotificationsConfig `yaml:"notifications" koanf:"notifications"`
	Server        ServerConfig        `yaml:"server" koanf:"server"`
}

// SearchConfig controls the search view.
type SearchConfig struct {
	// Categories searched. Empty means every category.
	Categories     []string `yaml:"categories" koanf:"categories"`
	MinQueryLength int      `yaml:"min_query_length" koanf:"min_query_length"`
}

// NotificationsConfig holds the transient notification timings.
type NotificationsConfig struct {
	HideAfter   time.Duration `yaml:"hide_after" koanf:"hide_after"`
	RemoveAfter time.Duration `yaml:"remove_after" koanf:"remove_after"`
}

// MarshalYAML writes durations in their readable form ("3s") rather than
// as nanosecond counts.
func (n NotificationsConfig) MarshalYAML() (interface{}, error) {
	return map[string]string{
		"hide_after":   n.HideAfter.String(),
		"remove_after": n.RemoveAfter.String(),
	}, nil
}

// ServerConfig holds web dashboard settings.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	OpenBrowser     bool `yaml:"open_browser" koanf:"open_browser"`
}

package config

import "time"

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = ".studytracker.yml"

// DefaultSearchCategories are the categories searched out of the box.
// Projects are browsed rather than searched.
var DefaultSearchCategories = []string{"basic", "intermediate", "advanced", "rust"}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Catalog: []string{"catalog/**/*.yaml"},
		DataDir: ".studytracker",
		Search: SearchConfig{
			Categories:     append([]string(nil), DefaultSearchCategories...),
			MinQueryLength: 3,
		},
		Notifications: NotificationsConfig{
			HideAfter:   3 * time.Second,
			RemoveAfter: 300 * time.Millisecond,
		},
		Server: ServerConfig{
			Port:        8080,
			OpenBrowser: true,
		},
	}
}

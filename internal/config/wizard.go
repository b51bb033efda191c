package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// catalogLocations are probed in order to suggest a catalog pattern.
var catalogLocations = []struct {
	Probe   string
	Pattern string
}{
	{Probe: "catalog/*.yaml", Pattern: "catalog/**/*.yaml"},
	{Probe: "catalog/*.yml", Pattern: "catalog/**/*.yml"},
	{Probe: "catalog/*.json", Pattern: "catalog/**/*.json"},
	{Probe: "data/*.yaml", Pattern: "data/**/*.yaml"},
	{Probe: "questions/*.yaml", Pattern: "questions/**/*.yaml"},
}

// detectCatalog returns the first catalog pattern with matching files.
func detectCatalog() string {
	for _, loc := range catalogLocations {
		if matches, _ := filepath.Glob(loc.Probe); len(matches) > 0 {
			return loc.Pattern
		}
	}
	return DefaultConfig().Catalog[0]
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to studytracker! Let's configure your catalog.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Catalog files.
	catalogPrompt := promptui.Prompt{
		Label:   "Catalog file patterns (comma-separated globs)",
		Default: detectCatalog(),
	}
	catalogStr, err := catalogPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("catalog patterns: %w", err)
	}
	cfg.Catalog = splitAndTrim(catalogStr)

	// 2. Data directory.
	dataPrompt := promptui.Prompt{
		Label:   "Directory for saved progress",
		Default: cfg.DataDir,
	}
	if cfg.DataDir, err = dataPrompt.Run(); err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	// 3. Start view.
	viewPrompt := promptui.Prompt{
		Label:   "Category shown at startup (blank for the first one)",
		Default: "",
	}
	if cfg.DefaultView, err = viewPrompt.Run(); err != nil {
		return nil, fmt.Errorf("default view: %w", err)
	}

	// 4. Dashboard port.
	portPrompt := promptui.Prompt{
		Label:   "Web dashboard port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			_, err := parsePort(s)
			return err
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	if cfg.Server.Port, err = parsePort(portStr); err != nil {
		return nil, err
	}

	// 5. Browser.
	browserPrompt := promptui.Select{
		Label: "Open the dashboard in a browser on serve",
		Items: []string{"yes", "no"},
	}
	browserIdx, _, err := browserPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("browser selection: %w", err)
	}
	cfg.Server.OpenBrowser = browserIdx == 0

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}

// parsePort reads a TCP port number.
func parsePort(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 65535 {
		return 0, fmt.Errorf("enter a port between 1 and 65535, got %q", s)
	}
	return n, nil
}

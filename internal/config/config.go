package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults used when the config file or a field is absent.
const (
	DefaultSiteName = "Protein Visualizer"
	DefaultBaseURL  = "https://example.com"
	DefaultDataPath = "data/foods.csv"
	DefaultOutDir   = "site"

	// DefaultFile is the config path commands try when --config is not given.
	DefaultFile = "provis.yaml"
)

// Environment variables that override the site identity. They win over both
// defaults and the config file, matching how deploy environments inject the
// production name and URL without editing the checked-in file.
const (
	EnvSiteName = "SITE_NAME"
	EnvSiteURL  = "SITE_URL"
)

// Config is the decoded provis.yaml.
type Config struct {
	Site  Site  `yaml:"site"`
	Build Build `yaml:"build"`
}

// Site identifies the published site in page titles, canonical URLs,
// sitemap entries, and structured data.
type Site struct {
	Name    string `yaml:"name"`
	BaseURL string `yaml:"base_url"`
}

// Build holds filesystem defaults that CLI flags may override.
type Build struct {
	Data string `yaml:"data"`
	Out  string `yaml:"out"`
}

// Default returns a Config with every field at its default.
func Default() *Config {
	return &Config{
		Site:  Site{Name: DefaultSiteName, BaseURL: DefaultBaseURL},
		Build: Build{Data: DefaultDataPath, Out: DefaultOutDir},
	}
}

// Load reads and decodes the config file at path. The raw document is
// validated against the embedded schema before decoding, so type and shape
// errors carry file positions. Absent fields keep their defaults;
// environment overrides are applied last.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := ValidateYAML(path, data); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	cfg.applyEnv()
	cfg.normalize()
	return cfg, nil
}

// LoadOrDefault behaves like Load, except a missing file is not an error:
// the defaults (plus environment overrides) are returned instead. Use it for
// the implicit config path; an explicitly requested file should go through
// Load so a typo'd path fails loudly.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		cfg.applyEnv()
		cfg.normalize()
		return cfg, nil
	}
	return Load(path)
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvSiteName); v != "" {
		c.Site.Name = v
	}
	if v := os.Getenv(EnvSiteURL); v != "" {
		c.Site.BaseURL = v
	}
}

// normalize strips the trailing slash so URL joins are uniform.
func (c *Config) normalize() {
	c.Site.BaseURL = strings.TrimRight(c.Site.BaseURL, "/")
}

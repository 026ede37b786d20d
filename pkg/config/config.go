package config

import (
	"encoding/json"
	"os"

	"github.com/adrg/xdg"
)

// Config represents the configuration for the AnkiConnect client and the
// tools built on top of it.
type Config struct {
	Anki struct {
		URL     string `json:"url"`
		Port    string `json:"port"`
		Version int    `json:"version"`
	} `json:"anki"`
	MCP struct {
		Tools map[string]bool `json:"tools"`
	} `json:"mcp"`
}

// Load loads the configuration from a JSON file.
// If path is empty, it searches for "anki-direct/config.json" in XDG config
// directories.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = xdg.SearchConfigFile("anki-direct/config.json")
		if err != nil {
			return nil, err
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}

	if cfg.Anki.Port == "" {
		cfg.Anki.Port = "8765"
	}

	return &cfg, nil
}

// BaseURL returns the configured endpoint. An explicit URL wins over the
// port shorthand.
func (c *Config) BaseURL() string {
	if c.Anki.URL != "" {
		return c.Anki.URL
	}
	return "http://localhost:" + c.Anki.Port
}

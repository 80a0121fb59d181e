package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	mcp "github.com/viant/mcp"
)

// Group bundles a collection of items with an optional URL indirection.
// Inline items take precedence over the URL when both are supplied.
type Group[T any] struct {
	URL   string `yaml:"url,omitempty" json:"url,omitempty" short:"u" long:"url" description:"url"`
	Items []T    `yaml:"items,omitempty" json:"items,omitempty" short:"i" long:"items" description:"items"`
}

// Config drives the sandbox service: optional MCP server options and an
// optional seed the sandbox is reset with during bootstrap.
type Config struct {
	Server *mcp.ServerOptions `yaml:"server,omitempty" json:"server,omitempty"`
	Seed   *Group[string]     `yaml:"seed,omitempty" json:"seed,omitempty"`
}

// Load reads and decodes a configuration file.  YAML is a superset of JSON so
// both formats are accepted.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the configuration for structural problems.
func (c *Config) Validate() error {
	// Server and Seed are both optional.
	return nil
}

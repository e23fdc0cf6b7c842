// Package config loads the optional .cmakedoc.toml project configuration.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultConfigName is the file looked up in the working directory when no
// --config flag is given.
const DefaultConfigName = ".cmakedoc.toml"

// Config represents the project configuration. Command-line flags override
// whatever is loaded here.
type Config struct {
	Output    OutputConfig    `toml:"output"`
	Discovery DiscoveryConfig `toml:"discovery"`
}

// OutputConfig holds settings for generated RST placement.
type OutputConfig struct {
	Dir string `toml:"dir"` // empty means print to stdout
}

// DiscoveryConfig holds settings for locating CMake files.
type DiscoveryConfig struct {
	Recursive bool     `toml:"recursive"`
	Jobs      int      `toml:"jobs"`
	SkipDirs  []string `toml:"skip_dirs"`
}

// DefaultConfig returns a Config populated with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Discovery: DiscoveryConfig{
			Jobs: 4,
		},
	}
}

// Load reads the config file at path, layered over DefaultConfig. A missing
// file is not an error: defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Discovery.Jobs <= 0 {
		cfg.Discovery.Jobs = DefaultConfig().Discovery.Jobs
	}
	return cfg, nil
}

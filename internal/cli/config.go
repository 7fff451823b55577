package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds optional file-based defaults for the solver and the parser.
// Flags given explicitly on the command line always win over the file.
//
// Example:
//
//	[parse]
//	strict = true
//
//	[search]
//	closed_tours = true
//	time_limit = "2s"
type Config struct {
	Parse  ParseConfig  `toml:"parse"`
	Search SearchConfig `toml:"search"`
}

// ParseConfig mirrors the edgelist decoding options.
type ParseConfig struct {
	Strict bool `toml:"strict"`
}

// SearchConfig mirrors the longest-path search options. TimeLimit is a
// Go duration string ("500ms", "2s"); empty means no budget.
type SearchConfig struct {
	ClosedTours bool   `toml:"closed_tours"`
	TimeLimit   string `toml:"time_limit"`
}

// timeLimit parses the configured duration. Empty string yields 0.
func (s SearchConfig) timeLimit() (time.Duration, error) {
	if s.TimeLimit == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s.TimeLimit)
	if err != nil {
		return 0, fmt.Errorf("config: time_limit: %w", err)
	}

	return d, nil
}

// loadConfig reads and decodes a TOML config file. An empty path returns
// the zero Config and no error.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}

	return cfg, nil
}

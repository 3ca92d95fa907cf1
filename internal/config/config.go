// Package config loads CLI configuration from a YAML file. The file
// maps directly onto the engine's SearchOptions; flags set on the
// command line override file values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmelton/fuzzdex/internal/ports"
)

// File is the top-level YAML document.
//
//	search:
//	  threshold: 0.75
//	  caseSensitive: false
//	  levenshtein: true
//	  stopWords: [the, and, of]
//	  splitPattern: "[^a-zA-Z0-9]+"
type File struct {
	Search ports.SearchOptions `yaml:"search"`
}

// Load reads and validates a config file. A missing path returns
// defaults, so the CLI works with zero configuration.
func Load(path string) (ports.SearchOptions, error) {
	if path == "" {
		return ports.Default(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return ports.SearchOptions{}, fmt.Errorf("read config: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return ports.SearchOptions{}, fmt.Errorf("parse config: %w", err)
	}

	opts := f.Search.Normalize()
	if err := opts.Validate(); err != nil {
		return ports.SearchOptions{}, fmt.Errorf("config %s: %w", path, err)
	}
	return opts, nil
}

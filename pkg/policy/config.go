package policy

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"
)

// Config is the raw policy payload as authored in a JSON or YAML file.
// Load validates it and turns it into a Store.
type Config struct {
	Aliases    []AliasConfig    `json:"aliases,omitempty"`
	Restricted RestrictedConfig `json:"restricted,omitempty"`
}

// AliasConfig declares one import path alias. Authored as a list rather
// than a map so that duplicate prefixes are detectable at load time.
type AliasConfig struct {
	Alias string `json:"alias"`
	Path  string `json:"path"`
}

// RestrictedConfig groups the restriction entries.
type RestrictedConfig struct {
	Paths    []PathConfig    `json:"paths,omitempty"`
	Patterns []PatternConfig `json:"patterns,omitempty"`
}

// PathConfig restricts an exact module path. An empty name list forbids
// the whole module.
type PathConfig struct {
	Module  string   `json:"module"`
	Names   []string `json:"names,omitempty"`
	Message string   `json:"message"`
}

// PatternConfig restricts module paths by glob. Group entries with a
// leading '!' are exclusions; the split is done at load time, the
// matcher itself never sees negation.
type PatternConfig struct {
	Group   []string `json:"group"`
	Message string   `json:"message"`
}

// ReadConfigFile reads a policy config from a JSON or YAML file. The
// format is chosen by file extension; anything that is not .json is
// treated as YAML (of which JSON is a subset).
func ReadConfigFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	var config Config
	if filepath.Ext(filename) == ".json" {
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("unmarshal: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("unmarshal: %w", err)
		}
	}
	return &config, nil
}

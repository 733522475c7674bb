package keywords

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig is the optional YAML sidecar that extends the built-in
// tables without recompiling:
//
//	stopwords:
//	  - staircase
//	  - folklore
//	overrides:
//	  polytopes: polytope
//	  genus: genus
type FileConfig struct {
	Stopwords []string          `yaml:"stopwords"`
	Overrides map[string]string `yaml:"overrides"`
}

// LoadFile reads a FileConfig and merges it into cfg. The built-in tables
// are copied before merging so the defaults stay untouched; file entries
// win on override conflicts.
func (cfg *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read keyword config: %w", err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse keyword config: %w", err)
	}

	if len(fc.Stopwords) > 0 {
		merged := make(map[string]bool)
		for w := range cfg.stopwordBase() {
			merged[w] = true
		}
		for _, w := range fc.Stopwords {
			merged[w] = true
		}
		cfg.Stopwords = merged
	}

	if len(fc.Overrides) > 0 {
		merged := make(map[string]string)
		for w, s := range cfg.overrideBase() {
			merged[w] = s
		}
		for w, s := range fc.Overrides {
			merged[w] = s
		}
		cfg.Overrides = merged
	}

	return nil
}

func (cfg *Config) stopwordBase() map[string]bool {
	if cfg.Stopwords != nil {
		return cfg.Stopwords
	}
	return defaultStopwords
}

func (cfg *Config) overrideBase() map[string]string {
	if cfg.Overrides != nil {
		return cfg.Overrides
	}
	return singularOverrides
}

// Package config loads the tokenizer's dictionary-path configuration from a
// YAML document, mirroring original_source's DefaultConfig/Configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aosen/ik"
	"github.com/aosen/ik/dict"
	"gopkg.in/yaml.v3"
)

// FileName is the conventional config file name, same role as
// original_source's IK_CONFIG_NAME.
const FileName = "ik.yml"

// Config is the raw YAML shape: dictionary paths relative to Root.
type Config struct {
	Root             string   `yaml:"-"`
	MainDict         string   `yaml:"main_dict"`
	QuantifierDict   string   `yaml:"quantifier_dict"`
	StopWordDict     string   `yaml:"stop_word_dict"`
	ExtDicts         []string `yaml:"ext_dicts"`
	ExtStopWordDicts []string `yaml:"ext_stop_word_dicts"`
}

// Default returns the configuration a fresh install ships with: the
// embedded dictionary names under an empty root, so MainDictionary and
// friends resolve to bare relative paths a caller can still override.
func Default() *Config {
	return &Config{
		MainDict:       "main.dic",
		QuantifierDict: "quantifier.dic",
		StopWordDict:   "stopword.dic",
	}
}

// Load reads and parses path, resolving every dictionary path relative to
// path's own directory — the installation root, same convention as
// original_source's CARGO_MANIFEST_DIR-relative resolution.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	c.Root = filepath.Dir(path)
	return &c, nil
}

func (c *Config) resolve(rel string) string {
	if rel == "" {
		return ""
	}
	return filepath.Join(c.Root, rel)
}

// MainDictionary returns the root-resolved main dictionary path.
func (c *Config) MainDictionary() string { return c.resolve(c.MainDict) }

// QuantifierDictionary returns the root-resolved quantifier dictionary path.
func (c *Config) QuantifierDictionary() string { return c.resolve(c.QuantifierDict) }

// ExtDictionaries returns the root-resolved extension main-dictionary paths.
func (c *Config) ExtDictionaries() []string {
	out := make([]string, len(c.ExtDicts))
	for i, d := range c.ExtDicts {
		out[i] = c.resolve(d)
	}
	return out
}

// ExtStopWordDictionaries returns the root-resolved stop-word dictionary
// paths: the configured stop_word_dict first, then each ext_stop_word_dicts
// entry, matching original_source's get_ext_stop_word_dictionaries which
// folds the primary stop-word file into the same list as its extensions.
func (c *Config) ExtStopWordDictionaries() []string {
	out := make([]string, 0, 1+len(c.ExtStopWordDicts))
	if c.StopWordDict != "" {
		out = append(out, c.resolve(c.StopWordDict))
	}
	for _, d := range c.ExtStopWordDicts {
		out = append(out, c.resolve(d))
	}
	return out
}

// LoadDictionary builds a Dictionary from this config's resolved paths:
// main and quantifier dictionaries, the stop-word dictionary plus its
// extensions, and every ext_dicts entry merged into the main trie —
// mirroring Segmenter.LoadDictionary's merge-all-extensions-into-main
// behavior in the teacher's segmenter.go.
func (c *Config) LoadDictionary() (*dict.Dictionary, error) {
	d := dict.New()
	if err := d.LoadMain(c.MainDictionary()); err != nil {
		return nil, err
	}
	for _, path := range c.ExtDictionaries() {
		if err := d.LoadMain(path); err != nil {
			return nil, err
		}
	}
	if err := d.LoadQuantifier(c.QuantifierDictionary()); err != nil {
		return nil, err
	}
	for _, path := range c.ExtStopWordDictionaries() {
		if err := d.LoadStopWords(path); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// ParseMode resolves the configuration-boundary mode aliases ik_max/ik_smart
// to a Mode. Thin re-export of ik.ParseMode so callers that only import
// config never need the root package name for this one lookup.
func ParseMode(alias string) (ik.Mode, error) { return ik.ParseMode(alias) }

var (
	// ModeIndex and ModeSearch re-export the root package's Mode constants
	// for the same reason.
	ModeIndex  = ik.ModeIndex
	ModeSearch = ik.ModeSearch
)

// Package cfg loads the optional configuration file: a YAML document of
// option overrides grouped by scope, applied to the trees after bootstrap.
//
// Layout (XDG-style):
//
//	Config: ~/.config/tmate/config.yaml   (override: TMATE_CONFIG_DIR)
package cfg

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/b/tmate/pkg/options"
)

// File is a parsed configuration file. Scope keys match the three trees.
type File struct {
	Server  map[string]any `yaml:"server"`
	Session map[string]any `yaml:"session"`
	Window  map[string]any `yaml:"window"`
}

// ConfigDir resolves the config directory.
// Priority: TMATE_CONFIG_DIR env > ~/.config/tmate/
func ConfigDir() string {
	if env := os.Getenv("TMATE_CONFIG_DIR"); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "tmate")
}

// DefaultPath returns the full path to config.yaml.
func DefaultPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Load reads and parses a config file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &f, nil
}

// Apply sets every override on its tree. Bad entries are collected, not
// fatal: the remaining overrides still apply.
func (f *File) Apply(trees *options.Trees) []error {
	var errs []error
	errs = append(errs, applyScope(trees.Server, f.Server)...)
	errs = append(errs, applyScope(trees.Session, f.Session)...)
	errs = append(errs, applyScope(trees.Window, f.Window)...)
	return errs
}

func applyScope(tree *options.Tree, overrides map[string]any) []error {
	var errs []error
	for name, value := range overrides {
		if err := tree.Set(name, stringify(value)); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		if x {
			return "on"
		}
		return "off"
	default:
		return fmt.Sprintf("%v", v)
	}
}

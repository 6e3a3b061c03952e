package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{fsys: os.DirFS(basePath)}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadAdventure loads adventure.yaml on top of DefaultAdventure.
// A missing file yields the defaults.
func (l *Loader) LoadAdventure() (*AdventureConfig, error) {
	cfg := DefaultAdventure()
	if err := l.overlay("adventure.yaml", cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("adventure.yaml: %w", err)
	}
	return cfg, nil
}

// LoadSoccer loads soccer.yaml on top of DefaultSoccer.
func (l *Loader) LoadSoccer() (*SoccerConfig, error) {
	cfg := DefaultSoccer()
	if err := l.overlay("soccer.yaml", cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("soccer.yaml: %w", err)
	}
	return cfg, nil
}

func (l *Loader) overlay(name string, out any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

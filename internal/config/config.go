// Package config loads deck generation defaults from YAML files.
// CLI flags override config values; config fills in what flags omit.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/avela/go-deckgen/internal/fileutil"
	"github.com/avela/go-deckgen/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds all configuration for deck generation.
type Config struct {
	Deck      DeckConfig      `yaml:"deck"`
	PDF       PDFConfig       `yaml:"pdf"`
	Discovery DiscoveryConfig `yaml:"discovery"`
}

// DeckConfig defines deck-wide defaults.
type DeckConfig struct {
	Dir    string `yaml:"dir"`    // slides directory (empty = must specify)
	Title  string `yaml:"title"`  // page title for navigation and PDF
	Output string `yaml:"output"` // navigation output path (empty = <dir>/index.html)
}

// PDFConfig defines PDF export defaults.
type PDFConfig struct {
	Method  string `yaml:"method"`  // "print", "merge", or "text"
	Output  string `yaml:"output"`  // output PDF path (empty = <title>_slides.pdf)
	Timeout string `yaml:"timeout"` // rendering timeout, e.g. "60s", "2m"
}

// DiscoveryConfig tunes section classification.
type DiscoveryConfig struct {
	SectionKeyword    string `yaml:"sectionKeyword"`    // appendix keyword (empty = "Appendix")
	FallbackThreshold int    `yaml:"fallbackThreshold"` // ordinal threshold for unreadable slides (0 = 10)
}

// DefaultConfig returns a neutral configuration.
func DefaultConfig() *Config {
	return &Config{
		Deck: DeckConfig{Title: "Slides"},
		PDF:  PDFConfig{Method: "print"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns an error if the file is not found (no silent
// fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/deckgen/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "deckgen", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

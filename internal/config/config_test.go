package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/avela/go-deckgen/internal/config"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	if cfg.Deck.Title != "Slides" {
		t.Errorf("Deck.Title = %q, want %q", cfg.Deck.Title, "Slides")
	}
	if cfg.PDF.Method != "print" {
		t.Errorf("PDF.Method = %q, want %q", cfg.PDF.Method, "print")
	}
}

func TestLoadConfig_FromPath(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "deck.yaml", `
deck:
  dir: lectures
  title: Distributed Systems
pdf:
  method: merge
  timeout: 2m
discovery:
  sectionKeyword: Anhang
  fallbackThreshold: 20
`)

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}

	if cfg.Deck.Dir != "lectures" {
		t.Errorf("Deck.Dir = %q, want %q", cfg.Deck.Dir, "lectures")
	}
	if cfg.Deck.Title != "Distributed Systems" {
		t.Errorf("Deck.Title = %q, want %q", cfg.Deck.Title, "Distributed Systems")
	}
	if cfg.PDF.Method != "merge" {
		t.Errorf("PDF.Method = %q, want %q", cfg.PDF.Method, "merge")
	}
	if cfg.PDF.Timeout != "2m" {
		t.Errorf("PDF.Timeout = %q, want %q", cfg.PDF.Timeout, "2m")
	}
	if cfg.Discovery.SectionKeyword != "Anhang" {
		t.Errorf("Discovery.SectionKeyword = %q, want %q", cfg.Discovery.SectionKeyword, "Anhang")
	}
	if cfg.Discovery.FallbackThreshold != 20 {
		t.Errorf("Discovery.FallbackThreshold = %d, want 20", cfg.Discovery.FallbackThreshold)
	}
}

func TestLoadConfig_PartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "deck.yaml", "deck:\n  dir: slides\n")

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.Deck.Dir != "slides" {
		t.Errorf("Deck.Dir = %q, want %q", cfg.Deck.Dir, "slides")
	}
	if cfg.PDF.Method != "print" {
		t.Errorf("PDF.Method = %q, want default %q", cfg.PDF.Method, "print")
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()
	malformed := writeConfig(t, dir, "bad.yaml", "deck: [unclosed\n")
	unknown := writeConfig(t, dir, "unknown.yaml", "decks:\n  dir: typo\n")

	tests := []struct {
		name       string
		nameOrPath string
		wantErr    error
	}{
		{"empty name", "", config.ErrEmptyConfigName},
		{"missing path", filepath.Join(dir, "absent.yaml"), config.ErrConfigNotFound},
		{"missing name", "deckgen-no-such-config", config.ErrConfigNotFound},
		{"malformed yaml", malformed, config.ErrConfigParse},
		{"unknown key", unknown, config.ErrConfigParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadConfig(tt.nameOrPath)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadConfig(%q) error = %v, want %v", tt.nameOrPath, err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_NameResolution(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "course.yml", "deck:\n  title: Resolved\n")

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getting working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("changing directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("restoring working directory: %v", err)
		}
	})

	cfg, err := config.LoadConfig("course")
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if cfg.Deck.Title != "Resolved" {
		t.Errorf("Deck.Title = %q, want %q", cfg.Deck.Title, "Resolved")
	}
}

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	deckgen "github.com/avela/go-deckgen"
	"github.com/avela/go-deckgen/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrMissingArgs    = errors.New("missing required arguments")
	ErrReadContent    = errors.New("failed to read content file")
	ErrWriteOutput    = errors.New("failed to write output file")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// defaultSlidesDir is used when neither flag nor config names a directory.
const defaultSlidesDir = "slides"

// runGenerate discovers slides and writes the navigation index.
// "No slides found" is a reported condition, not an error.
func runGenerate(args []string, deps *Dependencies) error {
	flags, _, err := parseGenerateFlags(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	slidesDir := firstNonEmpty(flags.slidesDir, cfg.Deck.Dir, defaultSlidesDir)
	title := firstNonEmpty(flags.title, cfg.Deck.Title)
	outputPath := firstNonEmpty(flags.output, cfg.Deck.Output, filepath.Join(slidesDir, deckgen.IndexFilename))

	if err := os.MkdirAll(slidesDir, dirPermissions); err != nil {
		return fmt.Errorf("creating slides directory: %w", err)
	}

	if flags.common.verbose {
		fmt.Fprintf(deps.Stdout, "Looking for slides in: %s\n", slidesDir)
		fmt.Fprintf(deps.Stdout, "Page title: %s\n", title)
		fmt.Fprintf(deps.Stdout, "Output file: %s\n", outputPath)
	}

	svc := newService(cfg, deps, 0)
	defer svc.Close()

	slides, err := svc.Discover(slidesDir)
	if err != nil {
		return err
	}

	if len(slides) == 0 && flags.createSamples {
		fmt.Fprintln(deps.Stdout, "No slides found. Creating sample slides...")
		if err := createSamples(svc, slidesDir, deps); err != nil {
			return err
		}
		slides, err = svc.Discover(slidesDir)
		if err != nil {
			return err
		}
	}

	if len(slides) == 0 {
		fmt.Fprintln(deps.Stderr, "No valid slides found. Use --create-samples to generate examples.")
		fmt.Fprintln(deps.Stderr, "Expected pattern: NNN-slide-title.html (e.g. 001-introduction.html)")
		return nil
	}

	if flags.common.verbose {
		fmt.Fprintf(deps.Stdout, "Discovered %d slides:\n", len(slides))
		for _, sl := range slides {
			fmt.Fprintf(deps.Stdout, "  %s. %s (%s)\n", sl.Number, sl.Title, sl.Section)
		}
	}

	nav, err := svc.Navigation(slides, deckgen.NavigationInput{
		Title:     title,
		SlidesDir: slidesDir,
		OutputDir: filepath.Dir(outputPath),
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(nav), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if !flags.common.quiet {
		fmt.Fprintf(deps.Stdout, "Generated navigation: %s\n", outputPath)
	}

	if flags.metadata {
		if err := writeMetadata(slides, slidesDir, deps, flags.common.quiet); err != nil {
			return err
		}
	}

	if !flags.common.quiet {
		fmt.Fprintf(deps.Stdout, "Found %d slides total\n", len(slides))
		for _, line := range sectionBreakdown(slides) {
			fmt.Fprintf(deps.Stdout, "  %s\n", line)
		}
	}

	return nil
}

// createSamples writes the built-in sample deck into slidesDir.
func createSamples(svc *deckgen.Service, slidesDir string, deps *Dependencies) error {
	samples, err := deckgen.Samples()
	if err != nil {
		return err
	}

	for _, input := range samples {
		rendered, err := svc.RenderSlide(input)
		if err != nil {
			return err
		}

		filename := deckgen.SlideFilename(input.Number, input.Title)
		path := filepath.Join(slidesDir, filename)
		if err := os.WriteFile(path, []byte(rendered), filePermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		fmt.Fprintf(deps.Stdout, "Created sample slide: %s\n", filename)
	}
	return nil
}

// writeMetadata dumps the deck summary JSON next to the slides.
func writeMetadata(slides []deckgen.Slide, slidesDir string, deps *Dependencies, quiet bool) error {
	data, err := deckgen.BuildMetadata(slides).MarshalIndent()
	if err != nil {
		return err
	}

	path := filepath.Join(slidesDir, deckgen.MetadataFilename)
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if !quiet {
		fmt.Fprintf(deps.Stdout, "Saved metadata to: %s\n", path)
	}
	return nil
}

// sectionBreakdown formats per-section slide counts in first-appearance order.
func sectionBreakdown(slides []deckgen.Slide) []string {
	counts := make(map[string]int)
	var order []string
	for _, sl := range slides {
		if _, seen := counts[sl.Section]; !seen {
			order = append(order, sl.Section)
		}
		counts[sl.Section]++
	}

	lines := make([]string, 0, len(order))
	for _, section := range order {
		lines = append(lines, fmt.Sprintf("%s: %d slides", section, counts[section]))
	}
	return lines
}

// loadConfig loads the named config, or defaults when no name is given.
func loadConfig(nameOrPath string) (*config.Config, error) {
	if nameOrPath == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(nameOrPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	deckgen "github.com/avela/go-deckgen"
)

// runNewSlide renders one slide file from a title and a content file.
// Content files with a .md or .markdown extension are converted from
// Markdown; everything else is treated as an HTML fragment.
func runNewSlide(args []string, deps *Dependencies) error {
	flags, positional, err := parseNewSlideFlags(args)
	if err != nil {
		return err
	}

	if len(positional) < 2 {
		return fmt.Errorf("%w: new-slide <title> <content-file>", ErrMissingArgs)
	}
	title := positional[0]
	contentPath := positional[1]

	if flags.number == "" {
		return fmt.Errorf("%w: --number is required", ErrMissingArgs)
	}
	number, err := strconv.Atoi(flags.number)
	if err != nil {
		return fmt.Errorf("%w: %q", deckgen.ErrInvalidNumber, flags.number)
	}

	content, err := os.ReadFile(contentPath) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadContent, err)
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	svc := newService(cfg, deps, 0)
	defer svc.Close()

	rendered, err := svc.RenderSlide(deckgen.SlideInput{
		Number:   number,
		Title:    title,
		Content:  string(content),
		Section:  flags.section,
		Markdown: isMarkdownPath(contentPath),
	})
	if err != nil {
		return err
	}

	outputDir := firstNonEmpty(flags.outputDir, cfg.Deck.Dir, defaultSlidesDir)
	if err := os.MkdirAll(outputDir, dirPermissions); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(outputDir, deckgen.SlideFilename(number, title))
	if err := os.WriteFile(path, []byte(rendered), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	fmt.Fprintf(deps.Stdout, "Created slide: %s\n", path)
	return nil
}

// isMarkdownPath reports whether a content file should be converted
// from Markdown based on its extension.
func isMarkdownPath(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".md" || ext == ".markdown"
}

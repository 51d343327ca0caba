package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	deckgen "github.com/avela/go-deckgen"
)

// runPDF discovers slides and renders the deck to a single PDF.
func runPDF(args []string, deps *Dependencies) error {
	flags, _, err := parsePDFFlags(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	slidesDir := firstNonEmpty(flags.slidesDir, cfg.Deck.Dir, defaultSlidesDir)
	title := firstNonEmpty(flags.title, cfg.Deck.Title)
	method := firstNonEmpty(flags.method, cfg.PDF.Method)
	output := firstNonEmpty(flags.output, cfg.PDF.Output, defaultPDFName(title))

	timeout, err := resolveTimeout(flags.timeout, cfg.PDF.Timeout)
	if err != nil {
		return err
	}

	if flags.common.verbose {
		fmt.Fprintf(deps.Stdout, "Slides directory: %s\n", slidesDir)
		fmt.Fprintf(deps.Stdout, "Output PDF: %s\n", output)
		fmt.Fprintf(deps.Stdout, "Method: %s\n", method)
		fmt.Fprintf(deps.Stdout, "Title: %s\n", title)
	}

	svc := newService(cfg, deps, timeout)
	defer svc.Close()

	slides, err := svc.Discover(slidesDir)
	if err != nil {
		return err
	}
	if len(slides) == 0 {
		fmt.Fprintf(deps.Stderr, "No valid slides found in %s\n", slidesDir)
		return nil
	}

	if !flags.common.quiet {
		fmt.Fprintf(deps.Stdout, "Found %d slides\n", len(slides))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pdfBytes, err := svc.ExportPDF(ctx, deckgen.PDFInput{
		SlidesDir: slidesDir,
		Slides:    slides,
		Title:     title,
		Method:    method,
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, pdfBytes, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if !flags.common.quiet {
		sizeMB := float64(len(pdfBytes)) / (1024 * 1024)
		fmt.Fprintf(deps.Stdout, "PDF generated: %s (%.1f MB, %d slides)\n", output, sizeMB, len(slides))
	}
	return nil
}

// defaultPDFName derives the output filename from the deck title.
func defaultPDFName(title string) string {
	safe := strings.ToLower(title)
	safe = strings.ReplaceAll(safe, " ", "_")
	safe = strings.ReplaceAll(safe, "/", "_")
	return safe + "_slides.pdf"
}

// resolveTimeout parses the timeout from flag or config (flag wins).
// Returns 0 when neither is set, leaving the library default in place.
func resolveTimeout(flagValue, cfgValue string) (time.Duration, error) {
	value := firstNonEmpty(flagValue, cfgValue)
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, value)
	}
	return d, nil
}

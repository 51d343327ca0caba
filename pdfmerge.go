package deckgen

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/avela/go-deckgen/internal/fileutil"
)

// mergeExporter renders each slide file to its own PDF through Chrome,
// then merges the per-slide documents into one with pdfcpu. Slower than
// the print method but preserves each slide's own stylesheet.
type mergeExporter struct {
	renderer *rodRenderer
	warn     io.Writer
}

// newMergeExporter creates a mergeExporter with a fresh renderer.
func newMergeExporter(timeout time.Duration, warn io.Writer) *mergeExporter {
	return &mergeExporter{renderer: newRodRenderer(timeout), warn: warn}
}

// Export renders slides strictly in deck order and merges the results.
func (e *mergeExporter) Export(ctx context.Context, input PDFInput) ([]byte, error) {
	var parts []io.ReadSeeker

	for _, sl := range input.Slides {
		path := filepath.Join(input.SlidesDir, sl.Filename)
		if !fileutil.FileExists(path) {
			fmt.Fprintf(e.warn, "warning: %s not found, skipping\n", sl.Filename)
			continue
		}

		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", sl.Filename, err)
		}

		pdfBytes, err := e.renderer.RenderFile(ctx, absPath)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", sl.Filename, err)
		}
		parts = append(parts, bytes.NewReader(pdfBytes))
	}

	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: no renderable slides", ErrPDFGeneration)
	}

	var merged bytes.Buffer
	if err := api.MergeRaw(parts, &merged, false, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFMerge, err)
	}
	return merged.Bytes(), nil
}

// Close releases browser resources.
func (e *mergeExporter) Close() error {
	return e.renderer.Close()
}

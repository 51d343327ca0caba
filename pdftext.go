package deckgen

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

// textExporter typesets slide text with gofpdf, one page per slide.
// It needs no browser, at the cost of dropping layout and styling; it
// exists for environments where Chrome is unavailable.
type textExporter struct {
	warn io.Writer
}

// newTextExporter creates a textExporter.
func newTextExporter(warn io.Writer) *textExporter {
	return &textExporter{warn: warn}
}

// Export renders the deck title page text for every slide.
func (e *textExporter) Export(ctx context.Context, input PDFInput) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(input.Title, true)
	pdf.SetAutoPageBreak(true, 15)

	rendered := 0
	for _, sl := range input.Slides {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		lines, err := extractSlideText(filepath.Join(input.SlidesDir, sl.Filename))
		if err != nil {
			fmt.Fprintf(e.warn, "warning: skipping %s: %v\n", sl.Filename, err)
			continue
		}

		pdf.AddPage()
		rendered++

		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, fmt.Sprintf("%s. %s", sl.Number, sl.Title), "", "L", false)
		pdf.Ln(4)

		pdf.SetFont("Helvetica", "", 10)
		for _, line := range lines {
			pdf.MultiCell(0, 5, line, "", "L", false)
			pdf.Ln(1)
		}
	}

	if rendered == 0 {
		return nil, fmt.Errorf("%w: no renderable slides", ErrPDFGeneration)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	return buf.Bytes(), nil
}

// Close is a no-op; the text exporter holds no resources.
func (e *textExporter) Close() error {
	return nil
}

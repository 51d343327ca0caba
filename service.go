package deckgen

import (
	"context"
	"fmt"
	"io"
)

// Service orchestrates slide discovery, navigation assembly, and PDF
// export. A Service owns at most one headless browser session, created
// lazily on the first PDF export and released by Close.
type Service struct {
	cfg           serviceConfig
	warn          io.Writer
	htmlConverter htmlConverter
	exporters     map[string]pdfExporter
}

// WithWarnWriter sets the destination for non-fatal discovery and
// export warnings. Defaults to io.Discard.
func WithWarnWriter(w io.Writer) Option {
	return func(s *Service) {
		if w != nil {
			s.warn = w
		}
	}
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			timeout:           defaultTimeout,
			sectionKeyword:    DefaultSectionKeyword,
			fallbackThreshold: DefaultFallbackThreshold,
		},
		warn:          io.Discard,
		htmlConverter: newGoldmarkConverter(),
		exporters:     make(map[string]pdfExporter),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ExportPDF renders the deck to a single PDF using the method selected
// in input. Missing slide files are skipped with a warning; rendering
// engine failures surface as wrapped sentinel errors.
func (s *Service) ExportPDF(ctx context.Context, input PDFInput) ([]byte, error) {
	if len(input.Slides) == 0 {
		return nil, ErrNoSlides
	}

	method := input.Method
	if method == "" {
		method = MethodPrint
	}

	exporter, err := s.exporterFor(method)
	if err != nil {
		return nil, err
	}

	pdfBytes, err := exporter.Export(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("exporting PDF (%s): %w", method, err)
	}
	return pdfBytes, nil
}

// exporterFor returns the exporter for a method, creating it on first use.
func (s *Service) exporterFor(method string) (pdfExporter, error) {
	if e, ok := s.exporters[method]; ok {
		return e, nil
	}

	var e pdfExporter
	switch method {
	case MethodPrint:
		e = newPrintExporter(s.cfg.timeout, s.warn)
	case MethodMerge:
		e = newMergeExporter(s.cfg.timeout, s.warn)
	case MethodText:
		e = newTextExporter(s.warn)
	default:
		return nil, fmt.Errorf("%w: %q (must be print, merge, or text)", ErrUnknownMethod, method)
	}

	s.exporters[method] = e
	return e, nil
}

// Close releases resources (headless Chrome browser sessions).
func (s *Service) Close() error {
	var firstErr error
	for _, e := range s.exporters {
		if err := e.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

package deckgen

import (
	"context"
	"errors"
	"testing"
)

// Mock implementations for testing.

type mockExporter struct {
	exportCalls int
	lastInput   PDFInput
	output      []byte
	exportErr   error
	closed      bool
	closeErr    error
}

func (m *mockExporter) Export(_ context.Context, input PDFInput) ([]byte, error) {
	m.exportCalls++
	m.lastInput = input
	if m.exportErr != nil {
		return nil, m.exportErr
	}
	if m.output != nil {
		return m.output, nil
	}
	return []byte("%PDF-1.4 mock"), nil
}

func (m *mockExporter) Close() error {
	m.closed = true
	return m.closeErr
}

// Test option for dependency injection (not exported).

func withExporter(method string, e pdfExporter) Option {
	return func(s *Service) {
		s.exporters[method] = e
	}
}

func TestExportPDF_EmptyDeck(t *testing.T) {
	service := New()
	defer service.Close()

	_, err := service.ExportPDF(context.Background(), PDFInput{})
	if !errors.Is(err, ErrNoSlides) {
		t.Errorf("ExportPDF() error = %v, want %v", err, ErrNoSlides)
	}
}

func TestExportPDF_UnknownMethod(t *testing.T) {
	service := New()
	defer service.Close()

	_, err := service.ExportPDF(context.Background(), PDFInput{
		Slides: []Slide{{Number: "001"}},
		Method: "fax",
	})
	if !errors.Is(err, ErrUnknownMethod) {
		t.Errorf("ExportPDF() error = %v, want %v", err, ErrUnknownMethod)
	}
}

func TestExportPDF_DefaultsToPrint(t *testing.T) {
	exporter := &mockExporter{output: []byte("%PDF-1.4 test")}
	service := New(withExporter(MethodPrint, exporter))
	defer service.Close()

	input := PDFInput{
		SlidesDir: "slides",
		Slides:    []Slide{{Number: "001", Filename: "001-intro.html"}},
		Title:     "Deck",
	}
	got, err := service.ExportPDF(context.Background(), input)
	if err != nil {
		t.Fatalf("ExportPDF() unexpected error: %v", err)
	}
	if string(got) != "%PDF-1.4 test" {
		t.Errorf("ExportPDF() = %q, want exporter output", got)
	}
	if exporter.exportCalls != 1 {
		t.Errorf("exporter called %d times, want 1", exporter.exportCalls)
	}
	if exporter.lastInput.Title != "Deck" {
		t.Errorf("exporter received title %q, want %q", exporter.lastInput.Title, "Deck")
	}
}

func TestExportPDF_ExporterFailureWrapped(t *testing.T) {
	exporter := &mockExporter{exportErr: ErrPDFGeneration}
	service := New(withExporter(MethodText, exporter))
	defer service.Close()

	_, err := service.ExportPDF(context.Background(), PDFInput{
		Slides: []Slide{{Number: "001"}},
		Method: MethodText,
	})
	if !errors.Is(err, ErrPDFGeneration) {
		t.Errorf("ExportPDF() error = %v, want wrapped %v", err, ErrPDFGeneration)
	}
}

func TestExportPDF_ReusesExporter(t *testing.T) {
	exporter := &mockExporter{}
	service := New(withExporter(MethodMerge, exporter))
	defer service.Close()

	input := PDFInput{
		Slides: []Slide{{Number: "001"}},
		Method: MethodMerge,
	}
	for i := 0; i < 2; i++ {
		if _, err := service.ExportPDF(context.Background(), input); err != nil {
			t.Fatalf("ExportPDF() unexpected error: %v", err)
		}
	}
	if exporter.exportCalls != 2 {
		t.Errorf("exporter called %d times, want 2", exporter.exportCalls)
	}
}

func TestClose_ClosesExporters(t *testing.T) {
	closeErr := errors.New("close failed")
	first := &mockExporter{closeErr: closeErr}
	second := &mockExporter{}
	service := New(
		withExporter(MethodPrint, first),
		withExporter(MethodText, second),
	)

	if err := service.Close(); !errors.Is(err, closeErr) {
		t.Errorf("Close() error = %v, want %v", err, closeErr)
	}
	if !first.closed || !second.closed {
		t.Error("Close() should close every exporter")
	}
}

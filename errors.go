package deckgen

import "errors"

// Sentinel errors for library operations.
var (
	ErrNoSlides       = errors.New("no slides provided")
	ErrEmptyTitle     = errors.New("slide title cannot be empty")
	ErrEmptyContent   = errors.New("slide content cannot be empty")
	ErrInvalidNumber  = errors.New("invalid slide number")
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrNavRender      = errors.New("navigation template rendering failed")
	ErrSlideRender    = errors.New("slide template rendering failed")

	// PDF export errors.
	ErrUnknownMethod  = errors.New("unknown PDF method")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrPDFMerge       = errors.New("PDF merge failed")
)

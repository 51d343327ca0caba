package main

import (
	"errors"
	"os"

	deckgen "github.com/avela/go-deckgen"
	"github.com/avela/go-deckgen/internal/config"
)

// Exit codes for the deckgen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run (including "no slides found")
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, deckgen.ErrBrowserConnect) ||
		errors.Is(err, deckgen.ErrPageCreate) ||
		errors.Is(err, deckgen.ErrPageLoad) ||
		errors.Is(err, deckgen.ErrPDFGeneration) ||
		errors.Is(err, deckgen.ErrPDFMerge) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadContent) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, deckgen.ErrUnknownMethod) ||
		errors.Is(err, deckgen.ErrInvalidNumber) ||
		errors.Is(err, deckgen.ErrEmptyTitle) ||
		errors.Is(err, deckgen.ErrEmptyContent) ||
		errors.Is(err, ErrMissingArgs) ||
		errors.Is(err, ErrInvalidTimeout) {
		return ExitUsage
	}

	return ExitGeneral
}

package deckgen

import (
	"time"
)

// Section labels for sidebar grouping.
const (
	SectionMain     = "Main"
	SectionAppendix = "Appendix"
)

// Discovery defaults.
const (
	// DefaultSectionKeyword is the literal whose presence anywhere in a
	// slide file classifies it as an appendix slide. This is a content
	// heuristic; an explicit <meta name="deck-section"> declaration
	// always wins over it.
	DefaultSectionKeyword = "Appendix"

	// DefaultFallbackThreshold is the ordinal above which an unreadable
	// slide falls back to the appendix section.
	DefaultFallbackThreshold = 10
)

// IndexFilename is the reserved output name excluded from discovery.
const IndexFilename = "index.html"

// Slide is one deck page backed by a single HTML file.
// Slides are immutable once discovered.
type Slide struct {
	Number   string `json:"number"`   // 3-digit zero-padded ordinal
	Title    string `json:"title"`    // display title
	Filename string `json:"filename"` // relative filename NNN-slug.html
	Section  string `json:"section"`  // "Main" or "Appendix"
}

// NavigationInput contains parameters for navigation page assembly.
type NavigationInput struct {
	Title     string // page title shown in sidebar and <title>
	SlidesDir string // directory holding the slide files
	OutputDir string // directory the index is written to ("" = SlidesDir)
}

// PDF method constants.
const (
	MethodPrint = "print" // one combined document, printed by Chrome
	MethodMerge = "merge" // per-slide Chrome PDFs merged into one
	MethodText  = "text"  // browserless text-only rendering
)

// PDFInput contains parameters for PDF export.
type PDFInput struct {
	SlidesDir string  // directory holding the slide files
	Slides    []Slide // discovered slides, in deck order
	Title     string  // document title
	Method    string  // "print", "merge", or "text" ("" = print)
}

// SlideInput contains parameters for rendering a new slide file.
type SlideInput struct {
	Number   int    // ordinal, formatted as %03d
	Title    string // display title
	Content  string // slide body: HTML fragment or Markdown
	Section  string // optional section badge text
	Markdown bool   // treat Content as Markdown
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout           time.Duration
	sectionKeyword    string
	fallbackThreshold int
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 60 * time.Second

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("deckgen: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithSectionKeyword overrides the literal used for the appendix
// content heuristic.
func WithSectionKeyword(keyword string) Option {
	return func(s *Service) {
		if keyword != "" {
			s.cfg.sectionKeyword = keyword
		}
	}
}

// WithFallbackThreshold overrides the ordinal above which unreadable
// slides fall back to the appendix section.
func WithFallbackThreshold(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.cfg.fallbackThreshold = n
		}
	}
}

package deckgen

import (
	"encoding/json"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"

	"github.com/avela/go-deckgen/internal/assets"
)

// navSection is one labeled run of consecutive same-section slides.
type navSection struct {
	Label string
	Items []navItem
}

// navItem is one sidebar entry.
type navItem struct {
	Index  int
	Number string
	Title  string
	Path   string
	Active bool
}

// navData feeds the navigation template.
type navData struct {
	Title      string
	Sections   []navSection
	Slides     template.JS
	FirstSlide string
	Total      int
	LastIndex  int
}

// Navigation assembles the self-contained index page for the deck.
// Slides keep their given order; consecutive slides sharing a section
// form one sidebar group, so non-adjacent runs of the same label render
// as separate groups. Output is deterministic for identical inputs.
func (s *Service) Navigation(slides []Slide, input NavigationInput) (string, error) {
	if len(slides) == 0 {
		return "", ErrNoSlides
	}

	prefix := slidePathPrefix(input.SlidesDir, input.OutputDir)

	paths := make([]string, len(slides))
	for i, sl := range slides {
		paths[i] = prefix + sl.Filename
	}

	// encoding/json is deterministic for a string slice, which keeps
	// regeneration byte-identical.
	pathsJSON, err := json.Marshal(paths)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNavRender, err)
	}

	tmplContent, err := assets.LoadTemplate("navigation")
	if err != nil {
		return "", err
	}
	tmpl, err := template.New("navigation").Parse(tmplContent)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNavRender, err)
	}

	data := navData{
		Title:      input.Title,
		Sections:   groupSections(slides, paths),
		Slides:     template.JS(pathsJSON), // #nosec G203 -- JSON-encoded string slice
		FirstSlide: paths[0],
		Total:      len(slides),
		LastIndex:  len(slides) - 1,
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrNavRender, err)
	}
	return sb.String(), nil
}

// groupSections splits the ordered slide list into adjacency groups.
func groupSections(slides []Slide, paths []string) []navSection {
	var sections []navSection
	for i, sl := range slides {
		if len(sections) == 0 || sections[len(sections)-1].Label != sl.Section {
			sections = append(sections, navSection{Label: sl.Section})
		}
		last := &sections[len(sections)-1]
		last.Items = append(last.Items, navItem{
			Index:  i,
			Number: sl.Number,
			Title:  sl.Title,
			Path:   paths[i],
			Active: i == 0,
		})
	}
	return sections
}

// slidePathPrefix computes the path prefix from the index location to
// the slide files. When the index lives in the slides directory (the
// default) slides are referenced by bare filename.
func slidePathPrefix(slidesDir, outputDir string) string {
	if outputDir == "" || slidesDir == "" {
		return ""
	}

	absSlides, err1 := filepath.Abs(slidesDir)
	absOutput, err2 := filepath.Abs(outputDir)
	if err1 != nil || err2 != nil || absSlides == absOutput {
		return ""
	}

	rel, err := filepath.Rel(absOutput, absSlides)
	if err != nil || rel == "." {
		return ""
	}
	return filepath.ToSlash(rel) + "/"
}

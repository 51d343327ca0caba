package deckgen

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// slidePattern matches the NNN-slug.html naming convention.
var slidePattern = regexp.MustCompile(`^(\d{3})-(.+)\.html$`)

// sectionMetaName is the <meta> name carrying an explicit section
// declaration. When present it overrides the keyword heuristic.
const sectionMetaName = "deck-section"

// Discover scans dir for slide files matching NNN-slug.html, extracts
// metadata from each, and returns the slides ordered by ascending
// ordinal. The reserved index.html is excluded. Non-matching .html
// files and unreadable slides produce warnings, never errors; a missing
// directory or an empty match set yields an empty slice.
func (s *Service) Discover(dir string) ([]Slide, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		fmt.Fprintf(s.warn, "directory %s does not exist\n", dir)
		return nil, nil
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".html") || name == IndexFilename {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var slides []Slide
	for _, name := range names {
		m := slidePattern.FindStringSubmatch(name)
		if m == nil {
			fmt.Fprintf(s.warn, "skipping %s: does not match pattern NNN-title.html\n", name)
			continue
		}
		slides = append(slides, s.readSlide(dir, name, m[1], m[2]))
	}

	return slides, nil
}

// readSlide builds a Slide from one matched file. Read failures degrade
// to a slug-derived title and an ordinal-threshold section fallback.
func (s *Service) readSlide(dir, filename, number, slug string) Slide {
	slide := Slide{
		Number:   number,
		Title:    titleFromSlug(slug),
		Filename: filename,
		Section:  SectionMain,
	}

	content, err := os.ReadFile(filepath.Join(dir, filename)) // #nosec G304 -- discovered path
	if err != nil {
		fmt.Fprintf(s.warn, "warning: could not read %s: %v\n", filename, err)
		slide.Section = s.fallbackSection(number)
		return slide
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(content)))
	if err != nil {
		fmt.Fprintf(s.warn, "warning: could not parse %s: %v\n", filename, err)
		slide.Section = s.fallbackSection(number)
		return slide
	}

	if title, ok := extractTitle(doc); ok {
		slide.Title = title
	}
	slide.Section = s.classifySection(doc, content)
	return slide
}

// extractTitle pulls the display title out of the <title> tag.
// Titles follow the "NNN - Title" convention; the part after the first
// dash is the display title. A title without a dash does not override
// the slug-derived fallback.
func extractTitle(doc *goquery.Document) (string, bool) {
	full := strings.TrimSpace(doc.Find("title").First().Text())
	if full == "" {
		return "", false
	}

	if _, after, found := strings.Cut(full, "-"); found {
		title := strings.TrimSpace(after)
		if title != "" {
			return title, true
		}
	}
	return "", false
}

// classifySection decides the section for a readable slide.
// An explicit <meta name="deck-section"> declaration wins; otherwise
// presence of the section keyword anywhere in the file selects the
// appendix. The heuristic can misfire on prose that mentions the
// keyword, which is why the meta declaration takes precedence.
func (s *Service) classifySection(doc *goquery.Document, content []byte) string {
	declared, _ := doc.Find(`meta[name="` + sectionMetaName + `"]`).First().Attr("content")
	switch strings.TrimSpace(declared) {
	case SectionMain:
		return SectionMain
	case SectionAppendix:
		return SectionAppendix
	}

	if strings.Contains(string(content), s.cfg.sectionKeyword) {
		return SectionAppendix
	}
	return SectionMain
}

// fallbackSection classifies an unreadable slide by ordinal.
func (s *Service) fallbackSection(number string) string {
	n, err := strconv.Atoi(number)
	if err == nil && n > s.cfg.fallbackThreshold {
		return SectionAppendix
	}
	return SectionMain
}

// titleFromSlug converts a filename slug back to a display title:
// dashes become spaces, words are title-cased, and the word "and"
// becomes "&" (the inverse of the slug rules in Slugify).
func titleFromSlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "and" {
			words[i] = "&"
			continue
		}
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

// capitalize upper-cases the first rune of a word.
func capitalize(w string) string {
	if w == "" {
		return w
	}
	r := []rune(w)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

// Slugify converts a display title to its filename slug: lower-case,
// spaces to dashes, "&" to "and".
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = strings.ReplaceAll(slug, "&", "and")
	return slug
}

// SlideFilename returns the canonical filename for a slide number and
// title, e.g. (1, "Intro & Setup") -> "001-intro-and-setup.html".
func SlideFilename(number int, title string) string {
	return fmt.Sprintf("%03d-%s.html", number, Slugify(title))
}

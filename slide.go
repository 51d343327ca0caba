package deckgen

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/avela/go-deckgen/internal/assets"
)

// maxSlideNumber is the largest ordinal the 3-digit naming convention
// can express.
const maxSlideNumber = 999

// slideData feeds the slide shell template.
type slideData struct {
	Number  string
	Title   string
	Section string
	Style   template.CSS
	Content template.HTML
}

// RenderSlide wraps a slide body in the fixed page shell: DOCTYPE,
// "NNN - Title" title tag, embedded base stylesheet, and an optional
// section badge plus an explicit deck-section declaration. Markdown
// bodies are converted to HTML first.
func (s *Service) RenderSlide(input SlideInput) (string, error) {
	if strings.TrimSpace(input.Title) == "" {
		return "", ErrEmptyTitle
	}
	if strings.TrimSpace(input.Content) == "" {
		return "", ErrEmptyContent
	}
	if input.Number < 1 || input.Number > maxSlideNumber {
		return "", fmt.Errorf("%w: %d (must be 1-%d)", ErrInvalidNumber, input.Number, maxSlideNumber)
	}

	content := input.Content
	if input.Markdown {
		converted, err := s.htmlConverter.ToHTML(content)
		if err != nil {
			return "", err
		}
		content = converted
	}

	style, err := assets.LoadStyle("slide")
	if err != nil {
		return "", err
	}

	tmplContent, err := assets.LoadTemplate("slide")
	if err != nil {
		return "", err
	}
	tmpl, err := template.New("slide").Parse(tmplContent)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSlideRender, err)
	}

	data := slideData{
		Number:  fmt.Sprintf("%03d", input.Number),
		Title:   input.Title,
		Section: input.Section,
		Style:   template.CSS(style),   // #nosec G203 -- embedded stylesheet
		Content: template.HTML(content), // #nosec G203 -- caller-provided slide body
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSlideRender, err)
	}
	return sb.String(), nil
}

// Samples returns the built-in sample deck: two main slides and one
// appendix slide, ready to pass to RenderSlide.
func Samples() ([]SlideInput, error) {
	specs := []struct {
		number  int
		title   string
		section string
		asset   string
	}{
		{1, "Welcome", "", "welcome"},
		{2, "Authoring Slides", "", "authoring"},
		{11, "Keyboard Shortcuts", SectionAppendix, "shortcuts"},
	}

	inputs := make([]SlideInput, 0, len(specs))
	for _, sp := range specs {
		content, err := assets.LoadSample(sp.asset)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, SlideInput{
			Number:  sp.number,
			Title:   sp.title,
			Content: content,
			Section: sp.section,
		})
	}
	return inputs, nil
}

package deckgen

import (
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// combinedHeader opens the synthetic print document. Each slide body is
// wrapped in a .slide-page div so Chrome breaks pages between entries.
const combinedHeader = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
@page {
    size: A4;
    margin: 0.5in;
}
.slide-page {
    page-break-after: always;
    min-height: 100vh;
}
.slide-page:last-child {
    page-break-after: avoid;
}
body {
    margin: 0;
    padding: 0;
}
</style>
</head>
<body>
`

// combinedContainerStyle restyles each extracted slide body for print.
// The slide files carry their own <style> blocks that cannot travel
// into the combined document, so the container look is inlined.
const combinedContainerStyle = `max-width: 1000px; margin: 0 auto; background: white; ` +
	`border-radius: 15px; box-shadow: 0 10px 30px rgba(0,0,0,0.2); padding: 40px; ` +
	`min-height: 600px; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; ` +
	`line-height: 1.6; color: #333;`

// buildCombinedHTML concatenates the inner markup of every slide's
// container into one printable document. Missing or malformed slides
// are skipped with a warning rather than aborting the batch.
func buildCombinedHTML(dir string, slides []Slide, title string, warn io.Writer) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, combinedHeader, html.EscapeString(title))

	for _, sl := range slides {
		body, err := extractSlideBody(filepath.Join(dir, sl.Filename))
		if err != nil {
			fmt.Fprintf(warn, "warning: skipping %s: %v\n", sl.Filename, err)
			continue
		}

		sb.WriteString(`<div class="slide-page">`)
		sb.WriteString(`<div class="slide-container" style="` + combinedContainerStyle + `">`)
		sb.WriteString(body)
		sb.WriteString("</div></div>\n")
	}

	sb.WriteString("</body>\n</html>\n")
	return sb.String(), nil
}

// extractSlideBody returns the inner HTML of a slide's container div.
func extractSlideBody(path string) (string, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- discovered path
	if err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(content)))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	container := doc.Find("div.slide-container").First()
	if container.Length() == 0 {
		// Slides authored outside RenderSlide may have no container;
		// fall back to the whole body.
		container = doc.Find("body").First()
		if container.Length() == 0 {
			return "", fmt.Errorf("no slide content found")
		}
	}

	body, err := container.Html()
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}
	return body, nil
}

// extractSlideText returns the plain text of a slide's container,
// one line per block, for the browserless text method.
func extractSlideText(path string) ([]string, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- discovered path
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(content)))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	root := doc.Find("div.slide-container").First()
	if root.Length() == 0 {
		root = doc.Find("body").First()
	}

	var lines []string
	root.Find("h1, h2, h3, h4, p, li, pre, td, th").Each(func(_ int, sel *goquery.Selection) {
		// Nested matches (e.g. p inside li) would duplicate text.
		if sel.Parent().Is("li, td, th") {
			return
		}
		text := strings.TrimSpace(sel.Text())
		if text != "" {
			lines = append(lines, text)
		}
	})
	return lines, nil
}

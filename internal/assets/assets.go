// Package assets provides embedded CSS styles, HTML templates, and
// sample slide content for deck generation.
package assets

import (
	"embed"
	"fmt"
)

//go:embed styles/*
var styles embed.FS

//go:embed templates/*
var templates embed.FS

//go:embed samples/*
var samples embed.FS

// LoadStyle loads a CSS style by name (without the .css extension).
func LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	return string(content), nil
}

// LoadTemplate loads an HTML template by name (without the .html extension).
func LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := templates.ReadFile("templates/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return string(content), nil
}

// LoadSample loads a sample slide body by name (without the .html extension).
func LoadSample(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := samples.ReadFile("samples/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrSampleNotFound, name)
	}
	return string(content), nil
}

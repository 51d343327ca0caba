package deckgen

import (
	"encoding/json"
	"fmt"
)

// MetadataFilename is the conventional name for the metadata dump.
const MetadataFilename = "slides_metadata.json"

// Metadata is the JSON-serializable summary of a discovered deck.
// Unlike the sidebar, Sections groups all slides by label regardless of
// adjacency.
type Metadata struct {
	TotalSlides int                `json:"total_slides"`
	Slides      []Slide            `json:"slides"`
	Sections    map[string][]Slide `json:"sections"`
}

// BuildMetadata summarizes the slide list.
func BuildMetadata(slides []Slide) Metadata {
	meta := Metadata{
		TotalSlides: len(slides),
		Slides:      slides,
		Sections:    make(map[string][]Slide),
	}
	for _, sl := range slides {
		meta.Sections[sl.Section] = append(meta.Sections[sl.Section], sl)
	}
	return meta
}

// MarshalIndent renders the metadata as 2-space indented JSON.
func (m Metadata) MarshalIndent() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling metadata: %w", err)
	}
	return data, nil
}

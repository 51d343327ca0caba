package deckgen

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestBuildMetadata(t *testing.T) {
	slides := []Slide{
		{Number: "001", Title: "Intro", Filename: "001-intro.html", Section: SectionMain},
		{Number: "005", Title: "Extras", Filename: "005-extras.html", Section: SectionAppendix},
		{Number: "006", Title: "Core", Filename: "006-core.html", Section: SectionMain},
	}

	meta := BuildMetadata(slides)

	if meta.TotalSlides != 3 {
		t.Errorf("TotalSlides = %d, want 3", meta.TotalSlides)
	}
	if len(meta.Slides) != 3 {
		t.Errorf("len(Slides) = %d, want 3", len(meta.Slides))
	}

	// Unlike the sidebar, section grouping ignores adjacency.
	if got := len(meta.Sections[SectionMain]); got != 2 {
		t.Errorf("len(Sections[Main]) = %d, want 2", got)
	}
	if got := len(meta.Sections[SectionAppendix]); got != 1 {
		t.Errorf("len(Sections[Appendix]) = %d, want 1", got)
	}
	if meta.Sections[SectionMain][1].Number != "006" {
		t.Errorf("Main section order broken: %+v", meta.Sections[SectionMain])
	}
}

func TestBuildMetadata_Empty(t *testing.T) {
	meta := BuildMetadata(nil)
	if meta.TotalSlides != 0 {
		t.Errorf("TotalSlides = %d, want 0", meta.TotalSlides)
	}
	if len(meta.Sections) != 0 {
		t.Errorf("Sections = %v, want empty", meta.Sections)
	}
}

func TestMetadata_MarshalIndent(t *testing.T) {
	slides := []Slide{
		{Number: "001", Title: "Intro", Filename: "001-intro.html", Section: SectionMain},
	}

	data, err := BuildMetadata(slides).MarshalIndent()
	if err != nil {
		t.Fatalf("MarshalIndent() unexpected error: %v", err)
	}

	text := string(data)
	for _, want := range []string{`"total_slides": 1`, `"slides"`, `"sections"`, `"001-intro.html"`} {
		if !strings.Contains(text, want) {
			t.Errorf("metadata JSON missing %q:\n%s", want, text)
		}
	}

	var decoded Metadata
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("metadata JSON does not round-trip: %v", err)
	}
	if decoded.TotalSlides != 1 {
		t.Errorf("decoded TotalSlides = %d, want 1", decoded.TotalSlides)
	}
}

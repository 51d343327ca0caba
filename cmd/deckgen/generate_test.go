package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	deckgen "github.com/avela/go-deckgen"
)

func writeTestSlide(t *testing.T, dir, name, title string) {
	t.Helper()
	content := `<!DOCTYPE html>
<html>
<head><title>` + title + `</title></head>
<body><div class="slide-container"><h1>` + title + `</h1></div></body>
</html>`
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func TestRunGenerate(t *testing.T) {
	dir := t.TempDir()
	writeTestSlide(t, dir, "001-intro.html", "001 - Introduction")
	writeTestSlide(t, dir, "002-setup.html", "002 - Setup")

	deps, stdout, _ := testDeps()
	code := run([]string{"generate", "-d", dir, "-t", "Test Deck"}, deps)
	if code != ExitSuccess {
		t.Fatalf("run() = %d, want %d", code, ExitSuccess)
	}

	indexPath := filepath.Join(dir, deckgen.IndexFilename)
	content, err := os.ReadFile(indexPath) // #nosec G304 -- test output
	if err != nil {
		t.Fatalf("index not written: %v", err)
	}

	page := string(content)
	for _, want := range []string{
		"<title>Test Deck</title>",
		`const slides = ["001-intro.html","002-setup.html"];`,
		"001. Introduction",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("index missing %q", want)
		}
	}

	out := stdout.String()
	if !strings.Contains(out, "Generated navigation: "+indexPath) {
		t.Errorf("missing generation message: %q", out)
	}
	if !strings.Contains(out, "Found 2 slides total") {
		t.Errorf("missing slide count: %q", out)
	}
	if !strings.Contains(out, "Main: 2 slides") {
		t.Errorf("missing section breakdown: %q", out)
	}
}

func TestRunGenerate_EmptyDirectory(t *testing.T) {
	dir := t.TempDir()

	deps, _, stderr := testDeps()
	code := run([]string{"generate", "-d", dir}, deps)
	if code != ExitSuccess {
		t.Fatalf("run() = %d, want %d (no slides is not an error)", code, ExitSuccess)
	}

	if !strings.Contains(stderr.String(), "No valid slides found") {
		t.Errorf("expected no-slides message, got: %q", stderr.String())
	}
	if _, err := os.Stat(filepath.Join(dir, deckgen.IndexFilename)); !os.IsNotExist(err) {
		t.Error("index should not be written for an empty deck")
	}
}

func TestRunGenerate_CreateSamples(t *testing.T) {
	dir := t.TempDir()

	deps, stdout, _ := testDeps()
	code := run([]string{"generate", "-d", dir, "--create-samples"}, deps)
	if code != ExitSuccess {
		t.Fatalf("run() = %d, want %d", code, ExitSuccess)
	}

	for _, name := range []string{
		"001-welcome.html",
		"002-authoring-slides.html",
		"011-keyboard-shortcuts.html",
		deckgen.IndexFilename,
	} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}

	out := stdout.String()
	if !strings.Contains(out, "Creating sample slides") {
		t.Errorf("missing sample creation message: %q", out)
	}
	if !strings.Contains(out, "Appendix: 1 slides") {
		t.Errorf("sample deck should have one appendix slide: %q", out)
	}
}

func TestRunGenerate_Metadata(t *testing.T) {
	dir := t.TempDir()
	writeTestSlide(t, dir, "001-intro.html", "001 - Introduction")

	deps, _, _ := testDeps()
	code := run([]string{"generate", "-d", dir, "--metadata"}, deps)
	if code != ExitSuccess {
		t.Fatalf("run() = %d, want %d", code, ExitSuccess)
	}

	data, err := os.ReadFile(filepath.Join(dir, deckgen.MetadataFilename)) // #nosec G304 -- test output
	if err != nil {
		t.Fatalf("metadata not written: %v", err)
	}

	var meta deckgen.Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		t.Fatalf("metadata is not valid JSON: %v", err)
	}
	if meta.TotalSlides != 1 {
		t.Errorf("TotalSlides = %d, want 1", meta.TotalSlides)
	}
}

func TestRunGenerate_OutputOutsideSlidesDir(t *testing.T) {
	root := t.TempDir()
	slidesDir := filepath.Join(root, "slides")
	if err := os.Mkdir(slidesDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeTestSlide(t, slidesDir, "001-intro.html", "001 - Introduction")
	outputPath := filepath.Join(root, "index.html")

	deps, _, _ := testDeps()
	code := run([]string{"generate", "-d", slidesDir, "-o", outputPath}, deps)
	if code != ExitSuccess {
		t.Fatalf("run() = %d, want %d", code, ExitSuccess)
	}

	content, err := os.ReadFile(outputPath) // #nosec G304 -- test output
	if err != nil {
		t.Fatalf("index not written: %v", err)
	}
	if !strings.Contains(string(content), `"slides/001-intro.html"`) {
		t.Error("slide paths should be prefixed when index lives outside the slides directory")
	}
}

func TestRunGenerate_Quiet(t *testing.T) {
	dir := t.TempDir()
	writeTestSlide(t, dir, "001-intro.html", "001 - Introduction")

	deps, stdout, _ := testDeps()
	code := run([]string{"generate", "-d", dir, "-q"}, deps)
	if code != ExitSuccess {
		t.Fatalf("run() = %d, want %d", code, ExitSuccess)
	}
	if stdout.Len() != 0 {
		t.Errorf("quiet mode should print nothing, got: %q", stdout.String())
	}
}

func TestRunGenerate_ConfigFile(t *testing.T) {
	root := t.TempDir()
	slidesDir := filepath.Join(root, "lectures")
	if err := os.Mkdir(slidesDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeTestSlide(t, slidesDir, "001-intro.html", "001 - Introduction")

	cfgPath := filepath.Join(root, "deck.yaml")
	cfgContent := "deck:\n  dir: " + slidesDir + "\n  title: Configured Deck\n"
	if err := os.WriteFile(cfgPath, []byte(cfgContent), 0o644); err != nil {
		t.Fatal(err)
	}

	deps, _, _ := testDeps()
	code := run([]string{"generate", "-c", cfgPath}, deps)
	if code != ExitSuccess {
		t.Fatalf("run() = %d, want %d", code, ExitSuccess)
	}

	content, err := os.ReadFile(filepath.Join(slidesDir, deckgen.IndexFilename)) // #nosec G304 -- test output
	if err != nil {
		t.Fatalf("index not written: %v", err)
	}
	if !strings.Contains(string(content), "<title>Configured Deck</title>") {
		t.Error("config title not applied")
	}
}

func TestRunGenerate_MissingConfig(t *testing.T) {
	deps, _, _ := testDeps()
	code := run([]string{"generate", "-c", filepath.Join(t.TempDir(), "absent.yaml")}, deps)
	if code != ExitUsage {
		t.Errorf("run() = %d, want %d", code, ExitUsage)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		values []string
		want   string
	}{
		{[]string{"a", "b"}, "a"},
		{[]string{"", "b"}, "b"},
		{[]string{"", "", "c"}, "c"},
		{[]string{"", ""}, ""},
		{nil, ""},
	}

	for _, tt := range tests {
		if got := firstNonEmpty(tt.values...); got != tt.want {
			t.Errorf("firstNonEmpty(%v) = %q, want %q", tt.values, got, tt.want)
		}
	}
}

package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common        commonFlags
	slidesDir     string
	title         string
	output        string
	createSamples bool
	metadata      bool
}

// newSlideFlags holds all flags for the new-slide command.
type newSlideFlags struct {
	common    commonFlags
	number    string
	section   string
	outputDir string
}

// pdfFlags holds all flags for the pdf command.
type pdfFlags struct {
	common    commonFlags
	slidesDir string
	output    string
	title     string
	method    string
	timeout   string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show discovery details")
}

// parseGenerateFlags parses generate command flags and returns positional args.
func parseGenerateFlags(args []string) (*generateFlags, []string, error) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	f := &generateFlags{}

	fs.StringVarP(&f.slidesDir, "slides-dir", "d", "", "directory containing HTML slide files")
	fs.StringVarP(&f.title, "title", "t", "", "title for the navigation page")
	fs.StringVarP(&f.output, "output", "o", "", "output navigation file path (default: <slides-dir>/index.html)")
	fs.BoolVar(&f.createSamples, "create-samples", false, "create sample slides if directory is empty")
	fs.BoolVar(&f.metadata, "metadata", false, "write slides_metadata.json alongside the slides")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printGenerateUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseNewSlideFlags parses new-slide command flags and returns positional args.
func parseNewSlideFlags(args []string) (*newSlideFlags, []string, error) {
	fs := flag.NewFlagSet("new-slide", flag.ContinueOnError)
	f := &newSlideFlags{}

	fs.StringVarP(&f.number, "number", "n", "", "slide number (e.g. 001)")
	fs.StringVarP(&f.section, "section", "s", "", "section name (e.g. Appendix)")
	fs.StringVarP(&f.outputDir, "output-dir", "d", "", "directory to write the slide into")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printNewSlideUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parsePDFFlags parses pdf command flags and returns positional args.
func parsePDFFlags(args []string) (*pdfFlags, []string, error) {
	fs := flag.NewFlagSet("pdf", flag.ContinueOnError)
	f := &pdfFlags{}

	fs.StringVarP(&f.slidesDir, "slides-dir", "d", "", "directory containing HTML slide files")
	fs.StringVarP(&f.output, "output", "o", "", "output PDF file path (default: <title>_slides.pdf)")
	fs.StringVarP(&f.title, "title", "t", "", "title for the PDF document")
	fs.StringVarP(&f.method, "method", "m", "", "PDF method: print, merge, text (default: print)")
	fs.StringVar(&f.timeout, "timeout", "", "rendering timeout (e.g. 60s, 2m)")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printPDFUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

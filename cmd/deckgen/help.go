package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: deckgen <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate    Generate the navigation index from slide files")
	fmt.Fprintln(w, "  new-slide   Create a slide file from a title and content file")
	fmt.Fprintln(w, "  pdf         Render the deck to a single PDF")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'deckgen help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: deckgen generate [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Discover slide files named NNN-title.html and generate a navigation")
	fmt.Fprintln(w, "index with a sidebar, pager controls, and keyboard bindings.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -d, --slides-dir <dir>    Directory containing HTML slide files")
	fmt.Fprintln(w, "  -t, --title <s>           Title for the navigation page")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: <slides-dir>/index.html)")
	fmt.Fprintln(w, "      --create-samples      Create sample slides if directory is empty")
	fmt.Fprintln(w, "      --metadata            Write slides_metadata.json")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show discovery details")
}

// printNewSlideUsage prints usage for the new-slide command.
func printNewSlideUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: deckgen new-slide <title> <content-file> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Create a slide file from a content file. Files with a .md or")
	fmt.Fprintln(w, ".markdown extension are converted from Markdown; everything else")
	fmt.Fprintln(w, "is wrapped as an HTML fragment.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -n, --number <n>          Slide number, formatted as NNN (required)")
	fmt.Fprintln(w, "  -s, --section <s>         Section name (e.g. Appendix)")
	fmt.Fprintln(w, "  -d, --output-dir <dir>    Directory to write the slide into")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
}

// printPDFUsage prints usage for the pdf command.
func printPDFUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: deckgen pdf [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render all slides in a directory to a single PDF document.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Methods:")
	fmt.Fprintln(w, "  print    One combined document printed by headless Chrome (default)")
	fmt.Fprintln(w, "  merge    Per-slide Chrome PDFs merged into one")
	fmt.Fprintln(w, "  text     Browserless text-only rendering")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -d, --slides-dir <dir>    Directory containing HTML slide files")
	fmt.Fprintln(w, "  -o, --output <path>       Output PDF path (default: <title>_slides.pdf)")
	fmt.Fprintln(w, "  -t, --title <s>           Title for the PDF document")
	fmt.Fprintln(w, "  -m, --method <s>          PDF method: print, merge, text")
	fmt.Fprintln(w, "      --timeout <dur>       Rendering timeout (e.g. 60s, 2m)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show discovery details")
}

// runHelp prints help for a specific command.
func runHelp(args []string, deps *Dependencies) {
	if len(args) == 0 {
		printUsage(deps.Stdout)
		return
	}

	switch args[0] {
	case "generate":
		printGenerateUsage(deps.Stdout)
	case "new-slide":
		printNewSlideUsage(deps.Stdout)
	case "pdf":
		printPDFUsage(deps.Stdout)
	case "version":
		fmt.Fprintln(deps.Stdout, "Usage: deckgen version")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(deps.Stdout, "Usage: deckgen help [command]")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(deps.Stderr, "Unknown command: %s\n", args[0])
		printUsage(deps.Stderr)
	}
}

package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(run(os.Args[1:], DefaultDeps()))
}

// run dispatches to a subcommand and returns the process exit code.
func run(args []string, deps *Dependencies) int {
	if len(args) == 0 {
		printUsage(deps.Stderr)
		return ExitUsage
	}

	var err error
	switch args[0] {
	case "generate":
		err = runGenerate(args[1:], deps)
	case "new-slide":
		err = runNewSlide(args[1:], deps)
	case "pdf":
		err = runPDF(args[1:], deps)
	case "version":
		fmt.Fprintf(deps.Stdout, "deckgen %s\n", Version)
	case "help", "-h", "--help":
		runHelp(args[1:], deps)
	default:
		fmt.Fprintf(deps.Stderr, "Unknown command: %s\n\n", args[0])
		printUsage(deps.Stderr)
		return ExitUsage
	}

	if err != nil {
		fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

package main

import (
	"time"

	deckgen "github.com/avela/go-deckgen"
	"github.com/avela/go-deckgen/internal/config"
)

// newService builds a deckgen.Service from config, with warnings
// routed to stderr.
func newService(cfg *config.Config, deps *Dependencies, timeout time.Duration) *deckgen.Service {
	opts := []deckgen.Option{
		deckgen.WithWarnWriter(deps.Stderr),
	}
	if cfg.Discovery.SectionKeyword != "" {
		opts = append(opts, deckgen.WithSectionKeyword(cfg.Discovery.SectionKeyword))
	}
	if cfg.Discovery.FallbackThreshold > 0 {
		opts = append(opts, deckgen.WithFallbackThreshold(cfg.Discovery.FallbackThreshold))
	}
	if timeout > 0 {
		opts = append(opts, deckgen.WithTimeout(timeout))
	}
	return deckgen.New(opts...)
}

// Package deckgen discovers HTML slide files, assembles a navigation
// index with a client-side pager, and optionally renders the deck to
// PDF through headless Chrome.
//
// Slides are plain HTML files named NNN-slug.html. The deck is rebuilt
// from disk on every run; there is no persisted state beyond the
// filename convention.
//
// Basic usage:
//
//	svc := deckgen.New()
//	defer svc.Close()
//
//	slides, err := svc.Discover("slides")
//	if err != nil {
//		log.Fatal(err)
//	}
//	page, err := svc.Navigation(slides, deckgen.NavigationInput{Title: "My Deck"})
package deckgen

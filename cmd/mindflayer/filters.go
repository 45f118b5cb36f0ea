// filters.go - Position-based game selection
package main

import (
	"fmt"

	"github.com/lgbarn/mindflayer-go/internal/eco"
	"github.com/lgbarn/mindflayer-go/internal/errors"
	"github.com/lgbarn/mindflayer-go/internal/matching"
)

// buildMatcher combines the position-based selections named on the command
// line. All of them must match. It returns nil when none is set.
func buildMatcher() (matching.GameMatcher, error) {
	all := matching.NewCompositeMatcher(matching.MatchAll)

	if *variationFile != "" || *positionFile != "" {
		vm := matching.NewVariationMatcher()
		if *variationFile != "" {
			if err := vm.LoadFromFile(*variationFile); err != nil {
				return nil, fmt.Errorf("variation file: %w", err)
			}
		}
		if *positionFile != "" {
			if err := vm.LoadPositionalFromFile(*positionFile); err != nil {
				return nil, fmt.Errorf("positional variation file: %w", err)
			}
		}
		all.Add(vm)
	}

	if *materialMatch != "" {
		all.Add(matching.NewMaterialMatcher(*materialMatch, false))
	}
	if *materialMatchExact != "" {
		all.Add(matching.NewMaterialMatcher(*materialMatchExact, true))
	}

	if *fenMatch != "" || *fenPattern != "" {
		pm := matching.NewPositionMatcher()
		if *fenMatch != "" {
			pm.AddFEN(*fenMatch, "fen")
		}
		if *fenPattern != "" {
			pm.AddPattern(*fenPattern, "pattern", *invertPattern)
		}
		all.Add(pm)
	}

	if all.Len() == 0 {
		return nil, nil
	}
	return all, nil
}

// loadBook loads the opening book named by -e, or returns nil.
func loadBook() (*eco.ECOClassifier, error) {
	if *ecoFile == "" {
		if *ecoPrefix != "" {
			return nil, errors.Wrap(errors.ErrInvalidConfig, "-Te needs an opening book (-e)")
		}
		return nil, nil
	}
	book := eco.NewECOClassifier()
	if err := book.LoadFromFile(*ecoFile); err != nil {
		return nil, err
	}
	return book, nil
}

// setupSelection installs the matcher and opening book on proc.
func setupSelection(proc *Processor) error {
	matcher, err := buildMatcher()
	if err != nil {
		return err
	}
	book, err := loadBook()
	if err != nil {
		return err
	}
	if matcher != nil {
		proc.WithMatcher(matcher)
	}
	if book != nil {
		proc.WithBook(book)
	}
	return nil
}

package config

import (
	"fmt"

	"github.com/lgbarn/mindflayer-go/internal/errors"
)

// FilterConfig selects which replayed games are reported.
type FilterConfig struct {
	// Ply bounds on the number of moves successfully played
	CheckPlyBounds bool
	MinPlies       uint
	MaxPlies       uint

	// Match conditions on the final position
	MatchCheckmate bool
	MatchStalemate bool
	MatchCheck     bool

	// ECOPrefix keeps games whose opening code starts with it. Requires an
	// opening book.
	ECOPrefix string

	// KeepBrokenGames reports games that contain a rejected move.
	KeepBrokenGames bool

	// MaxMatches stops reporting after this many games (0 = no limit).
	MaxMatches uint
}

// NewFilterConfig creates a FilterConfig with default values.
// Broken games are kept; all other filters are disabled.
func NewFilterConfig() *FilterConfig {
	return &FilterConfig{KeepBrokenGames: true}
}

// HasStateFilter reports whether any final-state condition is set.
func (f *FilterConfig) HasStateFilter() bool {
	return f.MatchCheckmate || f.MatchStalemate || f.MatchCheck
}

// Validate checks that the filter configuration is valid.
func (f *FilterConfig) Validate() error {
	if f.CheckPlyBounds && f.MinPlies > f.MaxPlies {
		return fmt.Errorf("minimum plies (%d) > maximum plies (%d): %w",
			f.MinPlies, f.MaxPlies, errors.ErrInvalidConfig)
	}
	return nil
}

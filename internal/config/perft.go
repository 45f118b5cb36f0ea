package config

import (
	"fmt"

	"github.com/lgbarn/mindflayer-go/internal/errors"
)

// MaxPerftDepth bounds PerftConfig.Depth.
const MaxPerftDepth = 8

// PerftConfig holds settings for the perft move-count mode.
type PerftConfig struct {
	// Depth enables perft mode when positive
	Depth int

	// Divide reports counts per root move
	Divide bool

	// Parallel searches root moves on several goroutines
	Parallel bool

	// Moves are played from the initial position before counting
	Moves []string
}

// NewPerftConfig creates a PerftConfig with perft disabled.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{}
}

// Enabled reports whether perft mode was requested.
func (p *PerftConfig) Enabled() bool {
	return p.Depth > 0
}

// Validate checks the perft depth.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside 0..%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	return nil
}

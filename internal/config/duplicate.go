package config

import "io"

// DuplicateConfig holds settings for duplicate game detection. Two games
// are duplicates when their final positions hash equal.
type DuplicateConfig struct {
	// Suppress drops duplicate games from the main output
	Suppress bool

	// SuppressOriginals reports only games that were seen more than once
	SuppressOriginals bool

	// DuplicateFile receives duplicate games when set
	DuplicateFile io.Writer

	// MaxCapacity bounds the number of stored positions (0 = unlimited)
	MaxCapacity int
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}

// Enabled reports whether duplicate detection needs to run.
func (d *DuplicateConfig) Enabled() bool {
	return d.Suppress || d.SuppressOriginals || d.DuplicateFile != nil
}

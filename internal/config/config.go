// Package config provides configuration for the mindflayer tools.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/mindflayer-go/internal/errors"
)

// Log levels accepted by Config.LogLevel.
var logLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
	"fatal": true,
	"panic": true,
}

// Config holds all program configuration.
type Config struct {
	// Verbosity: 0=nothing, 1=summary, 2=per-game commentary
	Verbosity int
	LogLevel  string

	// Worker pool sizing. Workers of 0 means one per CPU.
	Workers    int
	BufferSize int

	// Verify cross-checks every replayed position against independent
	// move generators.
	Verify bool

	Output    *OutputConfig
	Filter    *FilterConfig
	Duplicate *DuplicateConfig
	Perft     *PerftConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		LogLevel:   "info",
		BufferSize: 64,
		Output:     NewOutputConfig(),
		Filter:     NewFilterConfig(),
		Duplicate:  NewDuplicateConfig(),
		Perft:      NewPerftConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// WorkerCount resolves Workers to a positive goroutine count.
func (c *Config) WorkerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers (%d) must not be negative: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.BufferSize < 0 {
		return fmt.Errorf("buffer size (%d) must not be negative: %w", c.BufferSize, errors.ErrInvalidConfig)
	}
	if !logLevels[c.LogLevel] {
		return fmt.Errorf("unknown log level %q: %w", c.LogLevel, errors.ErrInvalidConfig)
	}
	if err := c.Filter.Validate(); err != nil {
		return err
	}
	return c.Perft.Validate()
}

// SetOutput sets the main output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithWorkers sets the worker pool size.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithDuplicateSuppression enables duplicate suppression.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	return b
}

// WithPlyBounds sets ply bounds for filtering.
func (b *ConfigBuilder) WithPlyBounds(lower, upper uint) *ConfigBuilder {
	b.cfg.Filter.CheckPlyBounds = true
	b.cfg.Filter.MinPlies = lower
	b.cfg.Filter.MaxPlies = upper
	return b
}

// WithCheckmateFilter enables checkmate-only filtering.
func (b *ConfigBuilder) WithCheckmateFilter(enabled bool) *ConfigBuilder {
	b.cfg.Filter.MatchCheckmate = enabled
	return b
}

// WithStalemateFilter enables stalemate-only filtering.
func (b *ConfigBuilder) WithStalemateFilter(enabled bool) *ConfigBuilder {
	b.cfg.Filter.MatchStalemate = enabled
	return b
}

// WithPerft enables perft mode at the given depth.
func (b *ConfigBuilder) WithPerft(depth int, divide bool) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	b.cfg.Perft.Divide = divide
	return b
}

// WithVerify enables cross-checking of every replayed position.
func (b *ConfigBuilder) WithVerify(enabled bool) *ConfigBuilder {
	b.cfg.Verify = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.LogLevel = level
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

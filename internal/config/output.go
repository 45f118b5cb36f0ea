package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// ShowBoard prints the final board of each game
	ShowBoard bool

	// ShowMoves lists the legal moves of the final position
	ShowMoves bool

	// Summary prints totals after all games
	Summary bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{Summary: true}
}

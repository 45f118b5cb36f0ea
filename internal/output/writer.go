package output

import (
	"io"

	"github.com/lgbarn/mindflayer-go/internal/chess"
	"github.com/lgbarn/mindflayer-go/internal/config"
	"github.com/lgbarn/mindflayer-go/internal/processing"
)

// GameWriter is the interface for writing replay results.
// Implementations handle the text and JSON formats.
type GameWriter interface {
	// WriteGame writes a single game report.
	WriteGame(game *chess.Game, ga *processing.GameAnalysis) error

	// WriteSummary records the run totals.
	WriteSummary(s *processing.Summary) error

	// Close writes any pending output.
	Close() error
}

// NewGameWriter returns the writer selected by cfg.
func NewGameWriter(w io.Writer, cfg *config.OutputConfig) GameWriter {
	if cfg.JSONFormat {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes one text block per game.
type TextWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteGame writes a game report immediately.
func (tw *TextWriter) WriteGame(game *chess.Game, ga *processing.GameAnalysis) error {
	OutputGame(tw.w, game, ga, tw.cfg)
	return nil
}

// WriteSummary writes the totals immediately.
func (tw *TextWriter) WriteSummary(s *processing.Summary) error {
	OutputSummary(tw.w, s)
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a single document on Close.
type JSONWriter struct {
	w       io.Writer
	cfg     *config.OutputConfig
	games   []*JSONGame
	summary *processing.Summary
	single  bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches games and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.OutputConfig) *JSONWriter {
	return &JSONWriter{
		w:     w,
		cfg:   cfg,
		games: make([]*JSONGame, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.OutputConfig) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(game *chess.Game, ga *processing.GameAnalysis) error {
	if jw.single {
		return OutputGameJSON(jw.w, game, ga, jw.cfg)
	}
	jw.games = append(jw.games, GameToJSON(game, ga, jw.cfg))
	return nil
}

// WriteSummary attaches the totals to the document, or writes them
// immediately in single mode.
func (jw *JSONWriter) WriteSummary(s *processing.Summary) error {
	if jw.single {
		return encodeJSON(jw.w, s)
	}
	jw.summary = s
	return nil
}

// Close writes all buffered games as a JSON document.
func (jw *JSONWriter) Close() error {
	if jw.single {
		return nil
	}
	err := encodeJSON(jw.w, &JSONOutput{Games: jw.games, Summary: jw.summary})
	jw.games = jw.games[:0]
	jw.summary = nil
	return err
}

// Package output formats replay results, run summaries and perft counts as
// text or JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/mindflayer-go/internal/chess"
	"github.com/lgbarn/mindflayer-go/internal/config"
	"github.com/lgbarn/mindflayer-go/internal/processing"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// writeMoveList writes moves wrapped at the line length, numbering White's
// moves.
func (o *OutputWriter) writeMoveList(moves []string) {
	for i, m := range moves {
		if i%2 == 0 {
			o.Write(fmt.Sprintf("%d.", i/2+1))
		}
		o.Write(m)
	}
	if len(moves) > 0 {
		o.NewLine()
	}
}

// OutputGame writes the text report of one replayed game to w.
func OutputGame(w io.Writer, game *chess.Game, ga *processing.GameAnalysis, cfg *config.OutputConfig) {
	fmt.Fprintf(w, "game %d", game.Number)
	if game.Source != "" {
		fmt.Fprintf(w, " (%s:%d)", game.Source, game.Line)
	}
	fmt.Fprintf(w, ": %s after %d plies", ga.State, ga.Plies)
	if game.Result != "" {
		fmt.Fprintf(w, ", recorded %s", game.Result)
	}
	fmt.Fprintln(w)

	if ga.Opening != nil {
		fmt.Fprintf(w, "  opening: %s\n", ga.Opening)
	}
	if ga.Err != nil {
		fmt.Fprintf(w, "  rejected (%s): %v\n", ga.Rejected, ga.Err)
	}
	if ga.VerifyErr != nil {
		fmt.Fprintf(w, "  verify: %v\n", ga.VerifyErr)
	}

	played := game.Moves
	if ga.Plies < len(played) {
		played = played[:ga.Plies]
	}
	ow := NewOutputWriter(w, 80)
	ow.writeMoveList(played)

	if cfg.ShowBoard {
		fmt.Fprint(w, ga.Final.String())
	}
	if cfg.ShowMoves {
		fmt.Fprintf(w, "  legal: %s\n", strings.Join(legalMoves(ga), " "))
	}
	fmt.Fprintln(w)
}

// OutputSummary writes the run totals to w.
func OutputSummary(w io.Writer, s *processing.Summary) {
	fmt.Fprintf(w, "%d games, %d reported, %d broken, %d duplicates, %d plies\n",
		s.Games, s.Reported, s.Broken, s.Duplicates, s.Plies)
	for _, state := range sortedKeys(s.States) {
		fmt.Fprintf(w, "  %-12s %d\n", state, s.States[state])
	}
	if s.Mismatches > 0 {
		fmt.Fprintf(w, "  %d verification mismatches\n", s.Mismatches)
	}
}

func legalMoves(ga *processing.GameAnalysis) []string {
	moves := ga.Final.LegalMovesFor(ga.Final.ToMove())
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

// boardRows renders the final board as one string per rank.
func boardRows(ga *processing.GameAnalysis) []string {
	return strings.Fields(strings.ReplaceAll(strings.ReplaceAll(ga.Final.String(), " ", ""), "\n", " "))
}

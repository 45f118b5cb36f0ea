package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/mindflayer-go/internal/chess"
	"github.com/lgbarn/mindflayer-go/internal/config"
	"github.com/lgbarn/mindflayer-go/internal/errors"
	"github.com/lgbarn/mindflayer-go/internal/processing"
)

// JSONGame represents a replayed game in JSON format.
type JSONGame struct {
	Number     int            `json:"number"`
	Source     string         `json:"source,omitempty"`
	Line       uint           `json:"line,omitempty"`
	Result     string         `json:"result,omitempty"`
	Moves      []string       `json:"moves"`
	Plies      int            `json:"plies"`
	State      string         `json:"state"`
	ToMove     string         `json:"toMove"`
	Hash       string         `json:"hash"`
	Captures   int            `json:"captures"`
	Checks     int            `json:"checks"`
	Castles    int            `json:"castles"`
	Promotions int            `json:"promotions"`
	EnPassant  int            `json:"enPassant"`
	Opening    string         `json:"opening,omitempty"`
	Rejected   *JSONRejection `json:"rejected,omitempty"`
	Verify     string         `json:"verify,omitempty"`
	Board      []string       `json:"board,omitempty"`
	LegalMoves []string       `json:"legalMoves,omitempty"`
}

// JSONRejection describes the first move of a game that could not be played.
type JSONRejection struct {
	Ply    int    `json:"ply"`
	Move   string `json:"move"`
	Status string `json:"status"`
	Error  string `json:"error"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games   []*JSONGame         `json:"games"`
	Summary *processing.Summary `json:"summary,omitempty"`
}

// GameToJSON converts a replayed game to JSON format.
func GameToJSON(game *chess.Game, ga *processing.GameAnalysis, cfg *config.OutputConfig) *JSONGame {
	jg := &JSONGame{
		Number:     game.Number,
		Source:     game.Source,
		Line:       game.Line,
		Result:     game.Result,
		Moves:      game.Moves,
		Plies:      ga.Plies,
		State:      ga.State.String(),
		ToMove:     ga.Final.ToMove().String(),
		Hash:       fmt.Sprintf("%016x", ga.Hash),
		Captures:   ga.Captures,
		Checks:     ga.Checks,
		Castles:    ga.Castles,
		Promotions: ga.Promotions,
		EnPassant:  ga.EnPassant,
	}
	if jg.Moves == nil {
		jg.Moves = []string{}
	}

	if ga.Err != nil {
		jg.Rejected = &JSONRejection{
			Ply:    ga.Plies + 1,
			Status: ga.Rejected.String(),
			Error:  ga.Err.Error(),
		}
		var gerr *errors.GameError
		if errors.As(ga.Err, &gerr) {
			jg.Rejected.Ply = gerr.PlyNum
			jg.Rejected.Move = gerr.MoveText
		}
	}
	if ga.Opening != nil {
		jg.Opening = ga.Opening.String()
	}
	if ga.VerifyErr != nil {
		jg.Verify = ga.VerifyErr.Error()
	}

	if cfg.ShowBoard {
		jg.Board = boardRows(ga)
	}
	if cfg.ShowMoves {
		jg.LegalMoves = legalMoves(ga)
	}
	return jg
}

// OutputGameJSON writes a single game as an indented JSON object.
func OutputGameJSON(w io.Writer, game *chess.Game, ga *processing.GameAnalysis, cfg *config.OutputConfig) error {
	return encodeJSON(w, GameToJSON(game, ga, cfg))
}

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Package processing replays games through the rules engine and decides
// which results are reported.
package processing

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/mindflayer-go/internal/chess"
	"github.com/lgbarn/mindflayer-go/internal/config"
	"github.com/lgbarn/mindflayer-go/internal/eco"
	"github.com/lgbarn/mindflayer-go/internal/engine"
	"github.com/lgbarn/mindflayer-go/internal/errors"
	"github.com/lgbarn/mindflayer-go/internal/hashing"
	"github.com/lgbarn/mindflayer-go/internal/matching"
)

// PositionChecker validates every position reached during a replay.
type PositionChecker interface {
	Check(pos *engine.Position) error
}

// GameAnalysis holds the results of replaying a game.
type GameAnalysis struct {
	// Final is the last position reached; it precedes the first rejected move.
	Final *engine.Position
	State engine.GameState

	// Plies is the number of moves successfully played.
	Plies int

	// Rejected is the status of the first move that could not be played and
	// Err its *errors.GameError. Both are zero for a complete game.
	Rejected engine.MoveStatus
	Err      error

	// VerifyErr is the first disagreement reported by the PositionChecker.
	VerifyErr error

	// Hash is the Zobrist hash of Final.
	Hash uint64

	// Opening is the deepest book line the game reached, if a book is loaded.
	Opening *eco.ECOEntry

	// Excluded is set when the GameMatcher rejected the game.
	Excluded bool

	Captures   int
	Checks     int
	Castles    int
	Promotions int
	EnPassant  int
}

// Complete returns true if every move of the game was played.
func (ga *GameAnalysis) Complete() bool {
	return ga.Err == nil
}

// Analyzer replays games and applies the configured filters.
type Analyzer struct {
	log     zerolog.Logger
	filter  *config.FilterConfig
	checker PositionChecker
	matcher matching.GameMatcher
	book    *eco.ECOClassifier
}

// NewAnalyzer creates an Analyzer that logs to log and filters with
// cfg.Filter.
func NewAnalyzer(log zerolog.Logger, cfg *config.Config) *Analyzer {
	filter := cfg.Filter
	if filter == nil {
		filter = config.NewFilterConfig()
	}
	return &Analyzer{log: log, filter: filter}
}

// WithChecker installs a PositionChecker run after every played move.
func (a *Analyzer) WithChecker(c PositionChecker) *Analyzer {
	a.checker = c
	return a
}

// WithMatcher installs a GameMatcher that selects games by the positions
// they pass through.
func (a *Analyzer) WithMatcher(m matching.GameMatcher) *Analyzer {
	a.matcher = m
	return a
}

// WithBook installs an opening book used to classify every game.
func (a *Analyzer) WithBook(b *eco.ECOClassifier) *Analyzer {
	a.book = b
	return a
}

// Replay plays the moves of game from the initial position. Replay stops at
// the first move that is malformed, unavailable or exposes the mover's king.
func (a *Analyzer) Replay(game *chess.Game) *GameAnalysis {
	pos := engine.NewInitialPosition()
	ga := &GameAnalysis{}

	// The line of positions is only kept when something reads it.
	var line []*engine.Position
	track := a.matcher != nil || a.book != nil
	if track {
		line = append(line, pos)
	}

	for i, text := range game.Moves {
		ply := i + 1
		m, status, err := resolveMove(pos, text)
		if err != nil {
			ga.Rejected = status
			ga.Err = gameError(game, ply, text, err)
			a.log.Debug().Err(ga.Err).Str("status", status.String()).Msg("move rejected")
			break
		}

		tr := engine.AttemptMove(pos, m)
		if !tr.Status.IsDone() {
			ga.Rejected = tr.Status
			ga.Err = gameError(game, ply, text, tr.Err)
			break
		}
		pos = tr.Position
		ga.Plies = ply
		ga.tally(m, pos)
		if track {
			line = append(line, pos)
		}

		if a.checker != nil && ga.VerifyErr == nil {
			if err := a.checker.Check(pos); err != nil {
				ga.VerifyErr = gameError(game, ply, text, err)
				a.log.Error().Err(ga.VerifyErr).Msg("verification failed")
			}
		}
	}

	ga.Final = pos
	ga.State = engine.Classify(pos)
	board := pos.Board()
	ga.Hash = hashing.GenerateZobristHash(&board)
	if a.book != nil {
		ga.Opening = a.book.Classify(line)
	}
	ga.Excluded = a.matcher != nil && !a.matcher.Match(game, line)

	a.log.Debug().
		Int("game", game.Number).
		Int("plies", ga.Plies).
		Str("state", ga.State.String()).
		Bool("complete", ga.Complete()).
		Msg("replayed game")
	return ga
}

// resolveMove finds the legal move written as text. When there is none it
// looks among the candidate moves so that a move exposing the king is
// reported as LeavesPlayerInCheck rather than IllegalMove.
func resolveMove(pos *engine.Position, text string) (chess.Move, engine.MoveStatus, error) {
	m, err := engine.ParseMove(pos, text)
	if err == nil {
		return m, engine.Done, nil
	}
	if !errors.Is(err, errors.ErrMoveNotFound) {
		return chess.Move{}, engine.IllegalMove, err
	}

	candidate, cerr := engine.ParseCandidateMove(pos, text)
	if cerr != nil {
		return chess.Move{}, engine.IllegalMove, err
	}
	tr := engine.AttemptMove(pos, candidate)
	if tr.Status.IsDone() {
		return candidate, engine.Done, nil
	}
	return chess.Move{}, tr.Status, tr.Err
}

func gameError(game *chess.Game, ply int, text string, err error) error {
	return &errors.GameError{
		Err:      err,
		GameNum:  game.Number,
		PlyNum:   ply,
		MoveText: text,
		File:     game.Source,
		Line:     int(game.Line),
	}
}

func (ga *GameAnalysis) tally(m chess.Move, next *engine.Position) {
	if m.IsCapture() {
		ga.Captures++
	}
	if m.Inner().Class == chess.PawnEnPassant {
		ga.EnPassant++
	}
	if m.IsCastle() {
		ga.Castles++
	}
	if m.IsPromotion() {
		ga.Promotions++
	}
	if next.CurrentPlayer().IsInCheck() {
		ga.Checks++
	}
}

// Matches reports whether ga passes the configured filters.
func (a *Analyzer) Matches(ga *GameAnalysis) bool {
	f := a.filter
	if ga.Excluded {
		return false
	}
	if !ga.Complete() && !f.KeepBrokenGames {
		return false
	}
	if f.ECOPrefix != "" && (ga.Opening == nil || !strings.HasPrefix(ga.Opening.ECOCode, f.ECOPrefix)) {
		return false
	}
	if f.CheckPlyBounds {
		plies := uint(ga.Plies)
		if plies < f.MinPlies || plies > f.MaxPlies {
			return false
		}
	}
	if f.HasStateFilter() {
		return (f.MatchCheckmate && ga.State == engine.Checkmate) ||
			(f.MatchStalemate && ga.State == engine.Stalemate) ||
			(f.MatchCheck && ga.State == engine.Check)
	}
	return true
}

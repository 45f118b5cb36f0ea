package engine

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/mindflayer-go/internal/chess"
	"github.com/lgbarn/mindflayer-go/internal/errors"
)

// MoveStatus is the outcome of attempting a move.
type MoveStatus int

const (
	// Done means the move was played.
	Done MoveStatus = iota
	// IllegalMove means the move is not available to the side to move.
	IllegalMove
	// LeavesPlayerInCheck means the move would expose the mover's king.
	LeavesPlayerInCheck
)

func (s MoveStatus) String() string {
	switch s {
	case Done:
		return "done"
	case IllegalMove:
		return "illegal move"
	case LeavesPlayerInCheck:
		return "leaves player in check"
	default:
		return "unknown"
	}
}

// IsDone reports whether the move was played.
func (s MoveStatus) IsDone() bool {
	return s == Done
}

// Err returns the sentinel error matching s, or nil for Done.
func (s MoveStatus) Err() error {
	switch s {
	case IllegalMove:
		return errors.ErrIllegalMove
	case LeavesPlayerInCheck:
		return errors.ErrSelfCheck
	default:
		return nil
	}
}

// MoveTransition records an attempted move. Position is the resulting
// position when Status is Done and the original position otherwise.
type MoveTransition struct {
	Position *Position
	Move     chess.Move
	Status   MoveStatus
	Err      error
}

// MakeMove attempts m for the side to move. The receiver is never modified.
func (p *Position) MakeMove(m chess.Move) MoveTransition {
	player := p.CurrentPlayer()
	if m.IsNull() || !player.isCandidate(m) {
		return rejected(p, m, IllegalMove)
	}

	next := executeBoard(&p.board, m)
	if kingAttacked(&next, player.colour) {
		return rejected(p, m, LeavesPlayerInCheck)
	}

	pos, err := NewPosition(next)
	if err != nil {
		return MoveTransition{Position: p, Move: m, Status: IllegalMove, Err: errors.Wrapf(err, "after %s", m)}
	}
	return MoveTransition{Position: pos, Move: m, Status: Done}
}

// AttemptMove is MakeMove as a free function.
func AttemptMove(pos *Position, m chess.Move) MoveTransition {
	return pos.MakeMove(m)
}

func rejected(p *Position, m chess.Move, status MoveStatus) MoveTransition {
	return MoveTransition{
		Position: p,
		Move:     m,
		Status:   status,
		Err:      errors.Wrapf(status.Err(), "%s", m),
	}
}

// FindMove returns the legal move of the side to move that joins from and
// to. When several moves match the first is returned.
func FindMove(pos *Position, from, to chess.Square) (chess.Move, error) {
	return findIn(pos.CurrentPlayer().legal, from, to)
}

// FindCandidateMove is FindMove over the pseudo-legal moves and castles, so
// that a move exposing the king can still be attempted and reported.
func FindCandidateMove(pos *Position, from, to chess.Square) (chess.Move, error) {
	return findIn(pos.CurrentPlayer().candidates, from, to)
}

func findIn(moves []chess.Move, from, to chess.Square) (chess.Move, error) {
	i := slices.IndexFunc(moves, func(m chess.Move) bool {
		return m.From() == from && m.To == to
	})
	if i < 0 {
		return chess.Move{}, errors.Wrapf(errors.ErrMoveNotFound, "%s%s", from, to)
	}
	return moves[i], nil
}

// ParseMove resolves coordinate text such as "e2e4", "e2-e4" or "e7e8q"
// against the legal moves of the side to move.
func ParseMove(pos *Position, text string) (chess.Move, error) {
	return parseWith(pos, text, FindMove)
}

// ParseCandidateMove is ParseMove over the candidate moves.
func ParseCandidateMove(pos *Position, text string) (chess.Move, error) {
	return parseWith(pos, text, FindCandidateMove)
}

func parseWith(pos *Position, text string, find func(*Position, chess.Square, chess.Square) (chess.Move, error)) (chess.Move, error) {
	from, to, promote, err := splitCoordinates(text)
	if err != nil {
		return chess.Move{}, err
	}
	m, err := find(pos, from, to)
	if err != nil {
		return chess.Move{}, err
	}
	if promote != 0 {
		if !m.IsPromotion() || m.PromoteTo.Letter() != promote-'a'+'A' {
			return chess.Move{}, errors.Wrapf(errors.ErrMoveNotFound, "%q", text)
		}
	}
	return m, nil
}

// splitCoordinates parses "e2e4", "e2-e4" and an optional promotion letter.
func splitCoordinates(text string) (from, to chess.Square, promote byte, err error) {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.Replace(s, "-", "", 1)
	if len(s) != 4 && len(s) != 5 {
		return chess.NoSquare, chess.NoSquare, 0, errors.Wrapf(errors.ErrParseFailure, "move %q", text)
	}
	if from, err = chess.ParseSquare(s[0:2]); err != nil {
		return chess.NoSquare, chess.NoSquare, 0, err
	}
	if to, err = chess.ParseSquare(s[2:4]); err != nil {
		return chess.NoSquare, chess.NoSquare, 0, err
	}
	if len(s) == 5 {
		promote = s[4]
	}
	return from, to, promote, nil
}

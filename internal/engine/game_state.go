package engine

import "github.com/lgbarn/mindflayer-go/internal/chess"

// GameState classifies a position from the point of view of the side to
// move.
type GameState int

const (
	InProgress GameState = iota
	Check
	Checkmate
	Stalemate
)

func (s GameState) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further moves can be played.
func (s GameState) IsTerminal() bool {
	return s == Checkmate || s == Stalemate
}

// Classify returns the state of pos for the side to move.
func Classify(pos *Position) GameState {
	player := pos.CurrentPlayer()
	switch {
	case player.IsInCheckmate():
		return Checkmate
	case player.IsInStalemate():
		return Stalemate
	case player.IsInCheck():
		return Check
	default:
		return InProgress
	}
}

// IsInCheck returns true if the king of the given colour is in check.
func IsInCheck(pos *Position, colour chess.Colour) bool {
	return pos.Player(colour).IsInCheck()
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos *Position) bool {
	return pos.CurrentPlayer().IsInCheckmate()
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos *Position) bool {
	return pos.CurrentPlayer().IsInStalemate()
}

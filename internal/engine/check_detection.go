package engine

import "github.com/lgbarn/mindflayer-go/internal/chess"

// findKing returns the king of the given colour, if there is one.
func findKing(board *chess.Board, colour chess.Colour) (chess.Piece, bool) {
	for _, p := range board.Pieces(colour) {
		if p.Kind == chess.King {
			return p, true
		}
	}
	return chess.Piece{}, false
}

// attacksOnSquare returns the moves from moves that land on sq.
func attacksOnSquare(sq chess.Square, moves []chess.Move) []chess.Move {
	var attacks []chess.Move
	for _, m := range moves {
		if m.To == sq {
			attacks = append(attacks, m)
		}
	}
	return attacks
}

// kingAttacked reports whether the king of colour is attacked on board.
// A board without that king is treated as attacked.
func kingAttacked(board *chess.Board, colour chess.Colour) bool {
	king, ok := findKing(board, colour)
	if !ok {
		return true
	}
	return isSquareAttacked(board, king.Square, colour.Opposite())
}

// attackProbes lists, per probing kind, the attacker kinds it detects.
var attackProbes = []struct {
	probe     chess.Kind
	attackers []chess.Kind
}{
	{chess.Pawn, []chess.Kind{chess.Pawn}},
	{chess.Knight, []chess.Kind{chess.Knight}},
	{chess.Bishop, []chess.Kind{chess.Bishop, chess.Queen}},
	{chess.Rook, []chess.Kind{chess.Rook, chess.Queen}},
	{chess.King, []chess.Kind{chess.King}},
}

// isSquareAttacked returns true if a piece of colour by could capture on sq.
// A probe piece of the other colour is placed on sq for each kind; if the
// probe can capture a piece of that kind, the same piece attacks sq. Pawn
// attacks count whether or not sq is occupied, so empty castling squares
// covered by a pawn are reported as attacked.
func isSquareAttacked(board *chess.Board, sq chess.Square, by chess.Colour) bool {
	for _, ap := range attackProbes {
		probe := chess.NewPiece(ap.probe, by.Opposite(), sq)
		for _, m := range GeneratePseudoLegalMoves(probe, board) {
			if !isDirectCapture(m) || m.Captured.Colour != by {
				continue
			}
			for _, kind := range ap.attackers {
				if m.Captured.Kind == kind {
					return true
				}
			}
		}
	}
	return false
}

// isDirectCapture reports whether m captures the piece standing on m.To.
func isDirectCapture(m chess.Move) bool {
	switch m.Inner().Class {
	case chess.MajorAttack, chess.PawnAttack:
		return true
	default:
		return false
	}
}

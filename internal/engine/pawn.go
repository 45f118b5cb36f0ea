package engine

import "github.com/lgbarn/mindflayer-go/internal/chess"

// defaultPromotion is the kind every promotion produces.
const defaultPromotion = chess.Queen

// pawnMoves generates, in order: the single push, the double push, and the
// two diagonal captures (including en passant).
func pawnMoves(p chess.Piece, board *chess.Board) []chess.Move {
	var moves []chess.Move
	dir := p.Colour.Direction()

	// Single push
	one := p.Square + chess.Square(dir*8)
	if one.Valid() && !board.IsOccupied(one) {
		moves = append(moves, promoteIfFarRow(p, chess.NewPawnAdvance(p, one)))

		// Double push from the starting row, first move only
		two := p.Square + chess.Square(dir*16)
		if !p.Moved && p.Colour.IsPawnStartSquare(p.Square) && two.Valid() && !board.IsOccupied(two) {
			moves = append(moves, chess.NewPawnJump(p, two))
		}
	}

	// Captures
	for _, offset := range []int{7, 9} {
		if pawnCaptureExcluded(p, offset) {
			continue
		}
		to := p.Square + chess.Square(dir*offset)
		if !to.Valid() {
			continue
		}
		if occupant, ok := board.SquareAt(to); ok {
			if occupant.Colour != p.Colour {
				moves = append(moves, promoteIfFarRow(p, chess.NewPawnAttack(p, to, occupant)))
			}
			continue
		}
		if victim, ok := enPassantVictim(p, to, board); ok {
			moves = append(moves, chess.NewPawnEnPassant(p, to, victim))
		}
	}
	return moves
}

// enPassantVictim returns the pawn that p would capture by moving diagonally
// to the empty square to. The victim must be the board's en passant pawn and
// stand directly behind to, beside p on p's row.
func enPassantVictim(p chess.Piece, to chess.Square, board *chess.Board) (chess.Piece, bool) {
	victim, ok := board.EnPassantPawn()
	if !ok || victim.Colour == p.Colour {
		return chess.Piece{}, false
	}
	if victim.Square != to-chess.Square(p.Colour.Direction()*8) {
		return chess.Piece{}, false
	}
	if occupant, occupied := board.SquareAt(victim.Square); !occupied || occupant != victim {
		return chess.Piece{}, false
	}
	return victim, true
}

// pawnCaptureExcluded reports whether the diagonal offset would wrap around
// a board edge. For White, 7 steps right and 9 steps left; for Black the
// reverse.
func pawnCaptureExcluded(p chess.Piece, offset int) bool {
	right := (offset == 7) == (p.Colour == chess.White)
	if right {
		return chess.EighthColumn[p.Square]
	}
	return chess.FirstColumn[p.Square]
}

func promoteIfFarRow(p chess.Piece, m chess.Move) chess.Move {
	if p.Colour.IsPromotionSquare(m.To) {
		return chess.NewPromotion(m, defaultPromotion)
	}
	return m
}

package engine

import "github.com/lgbarn/mindflayer-go/internal/chess"

// castleRule describes one castle: where king and rook start and finish,
// the squares that must be empty, and the squares the king passes through
// that must not be attacked.
type castleRule struct {
	class    chess.MoveClass
	kingFrom chess.Square
	kingTo   chess.Square
	rookFrom chess.Square
	rookTo   chess.Square
	empty    []chess.Square
	transit  []chess.Square
}

var castleRules = [chess.NumColours][]castleRule{
	chess.White: {
		{chess.KingSideCastle, 60, 62, 63, 61, []chess.Square{61, 62}, []chess.Square{61, 62}},
		{chess.QueenSideCastle, 60, 58, 56, 59, []chess.Square{57, 58, 59}, []chess.Square{59, 58}},
	},
	chess.Black: {
		{chess.KingSideCastle, 4, 6, 7, 5, []chess.Square{5, 6}, []chess.Square{5, 6}},
		{chess.QueenSideCastle, 4, 2, 0, 3, []chess.Square{1, 2, 3}, []chess.Square{3, 2}},
	},
}

// calculateKingCastles returns the castles available to king. None are
// available once the king has moved or while it is in check.
func calculateKingCastles(board *chess.Board, king chess.Piece, inCheck bool) []chess.Move {
	if king.Moved || inCheck {
		return nil
	}
	var castles []chess.Move
	for _, rule := range castleRules[king.Colour] {
		if king.Square != rule.kingFrom {
			continue
		}
		rook, ok := board.SquareAt(rule.rookFrom)
		if !ok || rook.Kind != chess.Rook || rook.Colour != king.Colour || rook.Moved {
			continue
		}
		if !allEmpty(board, rule.empty) || anyAttacked(board, rule.transit, king.Colour.Opposite()) {
			continue
		}
		if rule.class == chess.KingSideCastle {
			castles = append(castles, chess.NewKingSideCastle(king, rule.kingTo, rook, rule.rookTo))
		} else {
			castles = append(castles, chess.NewQueenSideCastle(king, rule.kingTo, rook, rule.rookTo))
		}
	}
	return castles
}

func allEmpty(board *chess.Board, squares []chess.Square) bool {
	for _, sq := range squares {
		if board.IsOccupied(sq) {
			return false
		}
	}
	return true
}

func anyAttacked(board *chess.Board, squares []chess.Square, by chess.Colour) bool {
	for _, sq := range squares {
		if isSquareAttacked(board, sq, by) {
			return true
		}
	}
	return false
}

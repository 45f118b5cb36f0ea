package engine

import "github.com/lgbarn/mindflayer-go/internal/chess"

// generator produces the pseudo-legal moves of one piece on a board.
type generator func(p chess.Piece, board *chess.Board) []chess.Move

// generators maps each kind to its move generation behaviour.
var generators = map[chess.Kind]generator{
	chess.Pawn:   pawnMoves,
	chess.Knight: knightMoves,
	chess.Bishop: bishopMoves,
	chess.Rook:   rookMoves,
	chess.Queen:  queenMoves,
	chess.King:   kingMoves,
}

var (
	knightOffsets = []int{-17, -15, -10, -6, 6, 10, 15, 17}
	kingOffsets   = []int{-9, -8, -7, -1, 1, 7, 8, 9}
)

// GeneratePseudoLegalMoves returns the moves p could make on board without
// regard to whether they leave its own king in check.
func GeneratePseudoLegalMoves(p chess.Piece, board *chess.Board) []chess.Move {
	gen, ok := generators[p.Kind]
	if !ok {
		return nil
	}
	return gen(p, board)
}

func knightMoves(p chess.Piece, board *chess.Board) []chess.Move {
	return leaperMoves(p, board, knightOffsets, knightExcluded)
}

func kingMoves(p chess.Piece, board *chess.Board) []chess.Move {
	return leaperMoves(p, board, kingOffsets, kingExcluded)
}

// leaperMoves applies each offset once. A destination is dropped when it is
// off the board, when the offset would wrap around a board edge from the
// piece's column, or when it holds a piece of the same colour.
func leaperMoves(p chess.Piece, board *chess.Board, offsets []int, excluded func(chess.Square, int) bool) []chess.Move {
	var moves []chess.Move
	for _, offset := range offsets {
		to := p.Square + chess.Square(offset)
		if !to.Valid() || excluded(p.Square, offset) {
			continue
		}
		occupant, occupied := board.SquareAt(to)
		switch {
		case !occupied:
			moves = append(moves, chess.NewMajorMove(p, to))
		case occupant.Colour != p.Colour:
			moves = append(moves, chess.NewMajorAttack(p, to, occupant))
		}
	}
	return moves
}

func knightExcluded(sq chess.Square, offset int) bool {
	switch {
	case chess.FirstColumn[sq] && (offset == -17 || offset == -10 || offset == 6 || offset == 15):
		return true
	case chess.SecondColumn[sq] && (offset == -10 || offset == 6):
		return true
	case chess.SeventhColumn[sq] && (offset == -6 || offset == 10):
		return true
	case chess.EighthColumn[sq] && (offset == -15 || offset == -6 || offset == 10 || offset == 17):
		return true
	}
	return false
}

func kingExcluded(sq chess.Square, offset int) bool {
	return (chess.FirstColumn[sq] && (offset == -9 || offset == -1 || offset == 7)) ||
		(chess.EighthColumn[sq] && (offset == -7 || offset == 1 || offset == 9))
}

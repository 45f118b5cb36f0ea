package engine

import "github.com/lgbarn/mindflayer-go/internal/chess"

var (
	diagonalOffsets = []int{-9, -7, 7, 9}
	straightOffsets = []int{-8, -1, 1, 8}
	queenOffsets    = []int{-9, -8, -7, -1, 1, 7, 8, 9}
)

func bishopMoves(p chess.Piece, board *chess.Board) []chess.Move {
	return slidingMoves(p, board, diagonalOffsets)
}

func rookMoves(p chess.Piece, board *chess.Board) []chess.Move {
	return slidingMoves(p, board, straightOffsets)
}

func queenMoves(p chess.Piece, board *chess.Board) []chess.Move {
	return slidingMoves(p, board, queenOffsets)
}

// slidingMoves walks each direction until the edge of the board or the
// first occupied square. The edge check is repeated from every square
// reached so that a slide stops at a column boundary instead of wrapping.
func slidingMoves(p chess.Piece, board *chess.Board, offsets []int) []chess.Move {
	var moves []chess.Move
	for _, offset := range offsets {
		sq := p.Square
		for {
			if slideExcluded(sq, offset) {
				break
			}
			sq += chess.Square(offset)
			if !sq.Valid() {
				break
			}
			occupant, occupied := board.SquareAt(sq)
			if !occupied {
				moves = append(moves, chess.NewMajorMove(p, sq))
				continue
			}
			if occupant.Colour != p.Colour {
				moves = append(moves, chess.NewMajorAttack(p, sq, occupant))
			}
			break
		}
	}
	return moves
}

// slideExcluded reports whether one step by offset from sq would leave the
// board sideways. Offsets with no horizontal part (±8) are never excluded.
func slideExcluded(sq chess.Square, offset int) bool {
	switch offset {
	case -9, -1, 7:
		return chess.FirstColumn[sq]
	case -7, 1, 9:
		return chess.EighthColumn[sq]
	}
	return false
}

package hashing

import (
	"math/rand"

	"github.com/lgbarn/mindflayer-go/internal/chess"
)

// Zobrist keys. Castling keys are indexed by the 4-bit mask returned from
// castleMask; en passant keys by the file of the vulnerable pawn.
var (
	zobristPiece     [12][chess.NumSquares]uint64
	zobristCastle    [16]uint64
	zobristEnPassant [chess.BoardSize]uint64
	zobristSide      uint64
)

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed so hashes are stable between runs
	rnd := rand.New(rand.NewSource(0x6d66))

	for p := range zobristPiece {
		for sq := range zobristPiece[p] {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// pieceIndex maps a piece to its row in zobristPiece.
func pieceIndex(p chess.Piece) int {
	return (int(p.Kind)-int(chess.Pawn))*chess.NumColours + int(p.Colour)
}

// castleMask records which king/rook pairs are still unmoved on their home
// squares: bit 0 White king side, 1 White queen side, 2 Black king side,
// 3 Black queen side.
func castleMask(board *chess.Board) int {
	homes := []struct {
		king, rook chess.Square
		colour     chess.Colour
	}{
		{60, 63, chess.White},
		{60, 56, chess.White},
		{4, 7, chess.Black},
		{4, 0, chess.Black},
	}
	mask := 0
	for bit, h := range homes {
		if unmovedAt(board, h.king, chess.King, h.colour) && unmovedAt(board, h.rook, chess.Rook, h.colour) {
			mask |= 1 << bit
		}
	}
	return mask
}

func unmovedAt(board *chess.Board, sq chess.Square, kind chess.Kind, colour chess.Colour) bool {
	p, ok := board.SquareAt(sq)
	return ok && p.Kind == kind && p.Colour == colour && !p.Moved
}

// GenerateZobristHash calculates the Zobrist hash of a board.
func GenerateZobristHash(board *chess.Board) uint64 {
	var key uint64

	for _, c := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range board.Pieces(c) {
			key ^= zobristPiece[pieceIndex(p)][p.Square]
		}
	}

	if board.ToMove() == chess.Black {
		key ^= zobristSide
	}

	key ^= zobristCastle[castleMask(board)]

	if pawn, ok := board.EnPassantPawn(); ok {
		key ^= zobristEnPassant[pawn.Square.Column()]
	}

	return key
}

// WeakHash is a cheap secondary checksum over piece placement used to
// confirm Zobrist matches.
func WeakHash(board *chess.Board) uint32 {
	var sum uint32
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range board.Pieces(c) {
			sum += uint32(pieceIndex(p)+1) * uint32(p.Square+1)
		}
	}
	return sum
}

package testutil

import (
	"fmt"
	"strings"
	"testing"
	"unicode"

	"github.com/lgbarn/mindflayer-go/internal/chess"
	"github.com/lgbarn/mindflayer-go/internal/errors"
)

// Fixture positions shared by the engine tests.
const (
	InitialFEN   = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	KiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	EndgameFEN   = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	FoolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
)

var fenKinds = map[rune]chess.Kind{
	'p': chess.Pawn,
	'n': chess.Knight,
	'b': chess.Bishop,
	'r': chess.Rook,
	'q': chess.Queen,
	'k': chess.King,
}

// castleHomes pairs each castling right with the rook square it keeps
// unmoved.
var castleHomes = map[rune]chess.Square{
	'K': 63,
	'Q': 56,
	'k': 7,
	'q': 0,
}

var kingHomes = [chess.NumColours]chess.Square{chess.White: 60, chess.Black: 4}

// BoardFromFEN builds a board from a FEN string. The halfmove and fullmove
// fields are ignored. Moved flags are derived: pawns off their starting row,
// and kings or rooks without a matching castling right, count as moved.
func BoardFromFEN(fen string) (chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return chess.Board{}, fmt.Errorf("fen %q: %w", fen, errors.ErrParseFailure)
	}

	rights := ""
	if len(parts) >= 3 && parts[2] != "-" {
		rights = parts[2]
	}

	b := chess.NewBuilder()
	if err := placePieces(b, parts[0], rights); err != nil {
		return chess.Board{}, err
	}

	switch parts[1] {
	case "w":
		b.SetMoveMaker(chess.White)
	case "b":
		b.SetMoveMaker(chess.Black)
	default:
		return chess.Board{}, fmt.Errorf("side to move %q: %w", parts[1], errors.ErrParseFailure)
	}

	if len(parts) >= 4 && parts[3] != "-" {
		if err := placeEnPassant(b, parts[3], parts[1]); err != nil {
			return chess.Board{}, err
		}
	}
	return b.Build(), nil
}

// MustBoard is BoardFromFEN for test setup; it fails the test on error.
func MustBoard(t testing.TB, fen string) chess.Board {
	t.Helper()
	board, err := BoardFromFEN(fen)
	if err != nil {
		t.Fatalf("BoardFromFEN(%q) error: %v", fen, err)
	}
	return board
}

func placePieces(b *chess.Builder, placement, rights string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != chess.BoardSize {
		return fmt.Errorf("placement %q has %d rows: %w", placement, len(rows), errors.ErrParseFailure)
	}
	for row, text := range rows {
		col := 0
		for _, c := range text {
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			kind, ok := fenKinds[unicode.ToLower(c)]
			if !ok || col >= chess.BoardSize {
				return fmt.Errorf("placement %q at %c: %w", placement, c, errors.ErrParseFailure)
			}
			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			sq := chess.SquareAt(col, row)
			piece := chess.NewPiece(kind, colour, sq)
			if hasMoved(piece, rights) {
				piece = piece.MoveTo(sq)
			}
			b.SetPiece(piece)
			col++
		}
		if col != chess.BoardSize {
			return fmt.Errorf("placement row %q: %w", text, errors.ErrParseFailure)
		}
	}
	return nil
}

func hasMoved(p chess.Piece, rights string) bool {
	switch p.Kind {
	case chess.Pawn:
		return !p.Colour.IsPawnStartSquare(p.Square)
	case chess.King:
		if p.Square != kingHomes[p.Colour] {
			return true
		}
		for _, r := range rights {
			if isColourRight(r, p.Colour) {
				return false
			}
		}
		return true
	case chess.Rook:
		for _, r := range rights {
			if isColourRight(r, p.Colour) && castleHomes[r] == p.Square {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func isColourRight(r rune, colour chess.Colour) bool {
	if _, ok := castleHomes[r]; !ok {
		return false
	}
	return unicode.IsUpper(r) == (colour == chess.White)
}

// placeEnPassant marks the pawn that just jumped past target.
func placeEnPassant(b *chess.Builder, target, side string) error {
	sq, err := chess.ParseSquare(target)
	if err != nil {
		return err
	}
	pawnSq, colour := sq-8, chess.White
	if side == "w" {
		pawnSq, colour = sq+8, chess.Black
	}
	board := b.Build()
	pawn, ok := board.SquareAt(pawnSq)
	if !ok || pawn.Kind != chess.Pawn || pawn.Colour != colour {
		return fmt.Errorf("en passant target %s has no pawn: %w", target, errors.ErrParseFailure)
	}
	pawn = pawn.MoveTo(pawnSq)
	b.SetPiece(pawn).SetEnPassantPawn(pawn)
	return nil
}

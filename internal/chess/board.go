package chess

import "strings"

// Board is an immutable 64-square grid plus the state needed to continue
// play: whose move it is, which pawn may be captured en passant, and which
// sides have castled. Boards are values; use a Builder to derive a new one.
type Board struct {
	squares   [NumSquares]Piece
	toMove    Colour
	enPassant Piece
	castled   [NumColours]bool
}

// NewInitialBoard returns the standard chess starting position.
func NewInitialBoard() Board {
	b := NewBuilder()
	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col, kind := range backRank {
		b.SetPiece(NewPiece(kind, Black, SquareAt(col, 0)))
		b.SetPiece(NewPiece(Pawn, Black, SquareAt(col, 1)))
		b.SetPiece(NewPiece(Pawn, White, SquareAt(col, 6)))
		b.SetPiece(NewPiece(kind, White, SquareAt(col, 7)))
	}
	b.SetMoveMaker(White)
	return b.Build()
}

// SquareAt returns the piece on sq and whether the square is occupied.
func (b *Board) SquareAt(sq Square) (Piece, bool) {
	if !sq.Valid() {
		return Piece{}, false
	}
	p := b.squares[sq]
	return p, !p.IsZero()
}

// IsOccupied returns true if a piece stands on sq.
func (b *Board) IsOccupied(sq Square) bool {
	_, ok := b.SquareAt(sq)
	return ok
}

// ToMove returns the colour of the side to move.
func (b *Board) ToMove() Colour {
	return b.toMove
}

// EnPassantPawn returns the pawn that may be captured en passant, if any.
func (b *Board) EnPassantPawn() (Piece, bool) {
	return b.enPassant, !b.enPassant.IsZero()
}

// HasCastled returns true if the given side has castled.
func (b *Board) HasCastled(c Colour) bool {
	return b.castled[c]
}

// Pieces returns the pieces of one colour in ascending square order.
func (b *Board) Pieces(c Colour) []Piece {
	pieces := make([]Piece, 0, 16)
	for _, p := range b.squares {
		if !p.IsZero() && p.Colour == c {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// String renders the board as eight lines, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for sq := Square(0); sq < NumSquares; sq++ {
		sb.WriteByte(' ')
		sb.WriteByte(' ')
		sb.WriteByte(b.squares[sq].Letter())
		if sq.Column() == BoardSize-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Builder accumulates pieces and state for a new Board. It performs no
// validation; callers are responsible for producing a consistent position.
type Builder struct {
	board Board
}

// NewBuilder creates an empty builder with White to move.
func NewBuilder() *Builder {
	return &Builder{board: Board{toMove: White}}
}

// NewBuilderFrom creates a builder pre-loaded with the contents of b.
func NewBuilderFrom(b Board) *Builder {
	return &Builder{board: b}
}

// SetPiece places p on its own square, replacing any occupant.
func (bd *Builder) SetPiece(p Piece) *Builder {
	if p.Square.Valid() {
		bd.board.squares[p.Square] = p
	}
	return bd
}

// Clear empties sq.
func (bd *Builder) Clear(sq Square) *Builder {
	if sq.Valid() {
		bd.board.squares[sq] = Piece{}
	}
	return bd
}

// SetMoveMaker sets the side to move.
func (bd *Builder) SetMoveMaker(c Colour) *Builder {
	bd.board.toMove = c
	return bd
}

// SetEnPassantPawn marks p as capturable en passant. The zero Piece clears it.
func (bd *Builder) SetEnPassantPawn(p Piece) *Builder {
	bd.board.enPassant = p
	return bd
}

// SetCastled records whether the given side has castled.
func (bd *Builder) SetCastled(c Colour, castled bool) *Builder {
	bd.board.castled[c] = castled
	return bd
}

// Build returns the accumulated Board. The builder may keep being used;
// later changes do not affect boards already built.
func (bd *Builder) Build() Board {
	return bd.board
}

package chess

// MoveClass categorizes different types of chess moves.
type MoveClass int

const (
	// NoMove is the zero value and marks "no move found". It must never be executed.
	NoMove MoveClass = iota
	MajorMove
	MajorAttack
	PawnAdvance
	PawnJump
	PawnAttack
	PawnEnPassant
	KingSideCastle
	QueenSideCastle
	Promotion
)

// String returns the string representation of a move class.
func (c MoveClass) String() string {
	names := []string{
		"NoMove", "MajorMove", "MajorAttack", "PawnAdvance", "PawnJump",
		"PawnAttack", "PawnEnPassant", "KingSideCastle", "QueenSideCastle", "Promotion",
	}
	if c >= 0 && int(c) < len(names) {
		return names[c]
	}
	return "Unknown"
}

// Move describes a single move. It is a comparable value: two moves are
// equal when every field matches.
type Move struct {
	// Class of move (pawn jump, castle, promotion, ...).
	Class MoveClass

	// The piece being moved, as it stands before the move.
	Piece Piece

	// Destination square.
	To Square

	// The piece captured. For en passant this piece does not stand on To.
	Captured Piece

	// The castling rook before the move and its destination.
	Rook   Piece
	RookTo Square

	// For promotions: the class of the wrapped move and the promoted-to kind.
	Base      MoveClass
	PromoteTo Kind
}

// NewMajorMove creates a non-capturing piece move.
func NewMajorMove(p Piece, to Square) Move {
	return Move{Class: MajorMove, Piece: p, To: to}
}

// NewMajorAttack creates a capturing piece move.
func NewMajorAttack(p Piece, to Square, captured Piece) Move {
	return Move{Class: MajorAttack, Piece: p, To: to, Captured: captured}
}

// NewPawnAdvance creates a single-square pawn push.
func NewPawnAdvance(p Piece, to Square) Move {
	return Move{Class: PawnAdvance, Piece: p, To: to}
}

// NewPawnJump creates a two-square pawn push.
func NewPawnJump(p Piece, to Square) Move {
	return Move{Class: PawnJump, Piece: p, To: to}
}

// NewPawnAttack creates a diagonal pawn capture.
func NewPawnAttack(p Piece, to Square, captured Piece) Move {
	return Move{Class: PawnAttack, Piece: p, To: to, Captured: captured}
}

// NewPawnEnPassant creates an en passant capture of the pawn captured.
func NewPawnEnPassant(p Piece, to Square, captured Piece) Move {
	return Move{Class: PawnEnPassant, Piece: p, To: to, Captured: captured}
}

// NewKingSideCastle creates a king-side castle.
func NewKingSideCastle(king Piece, to Square, rook Piece, rookTo Square) Move {
	return Move{Class: KingSideCastle, Piece: king, To: to, Rook: rook, RookTo: rookTo}
}

// NewQueenSideCastle creates a queen-side castle.
func NewQueenSideCastle(king Piece, to Square, rook Piece, rookTo Square) Move {
	return Move{Class: QueenSideCastle, Piece: king, To: to, Rook: rook, RookTo: rookTo}
}

// NewPromotion wraps a pawn advance or pawn capture into a promotion to kind.
func NewPromotion(inner Move, kind Kind) Move {
	inner.Base = inner.Class
	inner.Class = Promotion
	inner.PromoteTo = kind
	return inner
}

// From returns the origin square of the moving piece.
func (m Move) From() Square {
	return m.Piece.Square
}

// Inner returns the move wrapped by a promotion, or m itself otherwise.
func (m Move) Inner() Move {
	if m.Class != Promotion {
		return m
	}
	m.Class = m.Base
	m.Base = NoMove
	m.PromoteTo = NoKind
	return m
}

// IsNull returns true if this is the not-found sentinel.
func (m Move) IsNull() bool {
	return m.Class == NoMove
}

// IsCapture returns true if this move captures a piece.
func (m Move) IsCapture() bool {
	return !m.Captured.IsZero()
}

// IsCastle returns true if this is a castling move.
func (m Move) IsCastle() bool {
	switch m.Class {
	case KingSideCastle, QueenSideCastle:
		return true
	default:
		return false
	}
}

// IsPromotion returns true if this is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Class == Promotion
}

// String returns the coordinate form of the move, e.g. "e2e4" or "a7a8q".
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.From().String() + m.To.String()
	if m.IsPromotion() {
		s += string(m.PromoteTo.Letter() + 'a' - 'A')
	}
	return s
}

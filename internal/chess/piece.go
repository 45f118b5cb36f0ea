package chess

// Piece is an immutable piece value. Moving a piece produces a new value.
type Piece struct {
	Kind   Kind
	Colour Colour
	Square Square
	// Moved is true once the piece has made at least one move.
	Moved bool
}

// NewPiece creates a piece that has not moved yet.
func NewPiece(kind Kind, colour Colour, sq Square) Piece {
	return Piece{Kind: kind, Colour: colour, Square: sq}
}

// IsZero returns true if p does not describe a piece.
func (p Piece) IsZero() bool {
	return p.Kind == NoKind
}

// MoveTo returns a copy of the piece standing on sq and flagged as moved.
func (p Piece) MoveTo(sq Square) Piece {
	p.Square = sq
	p.Moved = true
	return p
}

// Letter returns the piece letter, uppercase for White and lowercase for Black.
func (p Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black && p.Kind != NoKind {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a short description such as "Ng1" or "pe7".
func (p Piece) String() string {
	if p.IsZero() {
		return "-"
	}
	return string(p.Letter()) + p.Square.String()
}

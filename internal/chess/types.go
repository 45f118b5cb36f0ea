// Package chess provides core chess types and operations.
package chess

import (
	"fmt"

	"github.com/lgbarn/mindflayer-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// NumColours is the number of sides; Colour values index arrays of this size.
const NumColours = 2

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Direction returns the row step of a pawn advance: -1 for White, +1 for Black.
func (c Colour) Direction() int {
	if c == White {
		return -1
	}
	return 1
}

// IsPromotionSquare reports whether a pawn of this colour promotes on sq.
func (c Colour) IsPromotionSquare(sq Square) bool {
	if c == White {
		return FirstRow[sq]
	}
	return EighthRow[sq]
}

// IsPawnStartSquare reports whether sq is on this colour's pawn starting row.
func (c Colour) IsPawnStartSquare(sq Square) bool {
	if c == White {
		return SeventhRow[sq]
	}
	return SecondRow[sq]
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'-', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Square is a board index 0-63, row-major with row 0 holding rank 8.
type Square int

// Board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	// NoSquare marks the absence of a square.
	NoSquare Square = -1
)

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// Column returns the 0-based column (file a = 0).
func (s Square) Column() int {
	return int(s) % BoardSize
}

// Row returns the 0-based row (row 0 = rank 8).
func (s Square) Row() int {
	return int(s) / BoardSize
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return squareNames[s]
}

// SquareAt returns the square at the given 0-based column and row.
func SquareAt(column, row int) Square {
	if column < 0 || column >= BoardSize || row < 0 || row >= BoardSize {
		return NoSquare
	}
	return Square(row*BoardSize + column)
}

// ParseSquare converts an algebraic name such as "e4" to a Square.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return NoSquare, errors.Wrapf(errors.ErrInvalidSquare, "%q", name)
	}
	col := int(name[0]) - 'a'
	rank := int(name[1]) - '1'
	if col < 0 || col >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare, errors.Wrapf(errors.ErrInvalidSquare, "%q", name)
	}
	return SquareAt(col, BoardSize-1-rank), nil
}

// MustParseSquare is like ParseSquare but panics on a malformed name.
func MustParseSquare(name string) Square {
	sq, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}

var squareNames = initSquareNames()

func initSquareNames() [NumSquares]string {
	var names [NumSquares]string
	for sq := Square(0); sq < NumSquares; sq++ {
		names[sq] = fmt.Sprintf("%c%d", 'a'+sq.Column(), BoardSize-sq.Row())
	}
	return names
}

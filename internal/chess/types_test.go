package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/mindflayer-go/internal/errors"
)

func TestColour(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() does not swap colours")
	}
	if White.Direction() != -1 {
		t.Errorf("White.Direction() = %d; want -1", White.Direction())
	}
	if Black.Direction() != 1 {
		t.Errorf("Black.Direction() = %d; want 1", Black.Direction())
	}
	if White.String() != "White" || Black.String() != "Black" {
		t.Errorf("String() = %q, %q", White.String(), Black.String())
	}
}

func TestColour_PromotionAndStartSquares(t *testing.T) {
	tests := []struct {
		colour    Colour
		sq        Square
		promotion bool
		start     bool
	}{
		{White, 1, true, false},
		{White, 9, false, false},
		{White, 52, false, true},
		{Black, 60, true, false},
		{Black, 12, false, true},
		{Black, 52, false, false},
	}
	for _, tt := range tests {
		if got := tt.colour.IsPromotionSquare(tt.sq); got != tt.promotion {
			t.Errorf("%v.IsPromotionSquare(%d) = %v; want %v", tt.colour, tt.sq, got, tt.promotion)
		}
		if got := tt.colour.IsPawnStartSquare(tt.sq); got != tt.start {
			t.Errorf("%v.IsPawnStartSquare(%d) = %v; want %v", tt.colour, tt.sq, got, tt.start)
		}
	}
}

func TestSquareNames(t *testing.T) {
	tests := []struct {
		sq   Square
		name string
	}{
		{0, "a8"},
		{7, "h8"},
		{8, "a7"},
		{27, "d5"},
		{36, "e4"},
		{56, "a1"},
		{60, "e1"},
		{63, "h1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sq.String(); got != tt.name {
				t.Errorf("Square(%d).String() = %q; want %q", tt.sq, got, tt.name)
			}
			got, err := ParseSquare(tt.name)
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", tt.name, err)
			}
			if got != tt.sq {
				t.Errorf("ParseSquare(%q) = %d; want %d", tt.name, got, tt.sq)
			}
		})
	}
}

func TestParseSquare_Invalid(t *testing.T) {
	for _, name := range []string{"", "e", "e9", "i1", "E4", "e44"} {
		sq, err := ParseSquare(name)
		if !errors.Is(err, chesserrors.ErrInvalidSquare) {
			t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidSquare", name, err)
		}
		if sq != NoSquare {
			t.Errorf("ParseSquare(%q) = %d; want NoSquare", name, sq)
		}
	}
}

func TestSquareGeometry(t *testing.T) {
	sq := Square(38) // g4
	if sq.Column() != 6 || sq.Row() != 4 {
		t.Errorf("Square(38) column,row = %d,%d; want 6,4", sq.Column(), sq.Row())
	}
	if SquareAt(6, 4) != sq {
		t.Errorf("SquareAt(6, 4) = %d; want 38", SquareAt(6, 4))
	}
	if SquareAt(8, 0) != NoSquare || SquareAt(0, -1) != NoSquare {
		t.Error("SquareAt() off the board should be NoSquare")
	}
	if NoSquare.Valid() || Square(64).Valid() || !Square(0).Valid() {
		t.Error("Valid() reports wrong range")
	}
}

func TestColumnTables(t *testing.T) {
	for sq := Square(0); sq < NumSquares; sq++ {
		col := sq.Column()
		if FirstColumn[sq] != (col == 0) {
			t.Errorf("FirstColumn[%d] = %v", sq, FirstColumn[sq])
		}
		if SecondColumn[sq] != (col == 1) {
			t.Errorf("SecondColumn[%d] = %v", sq, SecondColumn[sq])
		}
		if SeventhColumn[sq] != (col == 6) {
			t.Errorf("SeventhColumn[%d] = %v", sq, SeventhColumn[sq])
		}
		if EighthColumn[sq] != (col == 7) {
			t.Errorf("EighthColumn[%d] = %v", sq, EighthColumn[sq])
		}
	}
}

func TestKind(t *testing.T) {
	if Queen.Letter() != 'Q' || Knight.Letter() != 'N' {
		t.Errorf("Letter() = %c, %c", Queen.Letter(), Knight.Letter())
	}
	if Kind(99).String() != "Unknown" {
		t.Errorf("Kind(99).String() = %q; want Unknown", Kind(99).String())
	}
}

func TestPiece(t *testing.T) {
	p := NewPiece(Knight, Black, 6)
	moved := p.MoveTo(21)

	if p.Moved || p.Square != 6 {
		t.Error("MoveTo() modified the original piece")
	}
	if !moved.Moved || moved.Square != 21 || moved.Kind != Knight || moved.Colour != Black {
		t.Errorf("MoveTo(21) = %+v", moved)
	}
	if p == moved {
		t.Error("pieces on different squares compare equal")
	}
	if p != NewPiece(Knight, Black, 6) {
		t.Error("identical pieces compare unequal")
	}
	if p.String() != "ng8" {
		t.Errorf("String() = %q; want %q", p.String(), "ng8")
	}
	if !(Piece{}).IsZero() {
		t.Error("zero Piece IsZero() = false")
	}
}

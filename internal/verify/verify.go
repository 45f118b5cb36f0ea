// Package verify cross-checks positions against independent move
// generators. It is used by the replay pipeline when verification is
// enabled.
package verify

import (
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"
	notnil "github.com/notnil/chess"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/mindflayer-go/internal/chess"
	"github.com/lgbarn/mindflayer-go/internal/engine"
	"github.com/lgbarn/mindflayer-go/internal/errors"
)

// Mismatch describes one disagreement found by Check.
type Mismatch struct {
	Oracle string
	FEN    string
	Extra  []string // moves only the engine generates
	Absent []string // moves only the oracle generates
	Detail string
}

func (m *Mismatch) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s disagrees on %q", m.Oracle, m.FEN)
	if m.Detail != "" {
		fmt.Fprintf(&sb, ": %s", m.Detail)
	}
	if len(m.Extra) > 0 {
		fmt.Fprintf(&sb, "; extra %s", strings.Join(m.Extra, " "))
	}
	if len(m.Absent) > 0 {
		fmt.Fprintf(&sb, "; missing %s", strings.Join(m.Absent, " "))
	}
	return sb.String()
}

func (m *Mismatch) Unwrap() error {
	return errors.ErrVerifyMismatch
}

// Checker compares positions against dragontoothmg for legal moves and
// notnil/chess for game state.
type Checker struct{}

// NewChecker returns a Checker.
func NewChecker() *Checker {
	return &Checker{}
}

// Check returns a *Mismatch when either oracle disagrees with pos.
func (c *Checker) Check(pos *engine.Position) error {
	fen := FEN(pos)
	got := fromTo(legalStrings(pos))

	if err := checkDragontooth(fen, got); err != nil {
		return err
	}
	return checkNotnil(pos, fen, got)
}

func checkDragontooth(fen string, got []string) error {
	board := dragontoothmg.ParseFen(fen)
	var want []string
	for _, m := range board.GenerateLegalMoves() {
		want = append(want, m.String())
	}
	return compare("dragontoothmg", fen, got, fromTo(want))
}

func checkNotnil(pos *engine.Position, fen string, got []string) error {
	opt, err := notnil.FEN(fen)
	if err != nil {
		return errors.Wrapf(err, "notnil fen %q", fen)
	}
	game := notnil.NewGame(opt)

	status := game.Position().Status()
	if want := status == notnil.Checkmate; engine.IsCheckmate(pos) != want {
		return &Mismatch{Oracle: "notnil", FEN: fen, Detail: fmt.Sprintf("checkmate = %v, want %v", !want, want)}
	}
	if want := status == notnil.Stalemate; engine.IsStalemate(pos) != want {
		return &Mismatch{Oracle: "notnil", FEN: fen, Detail: fmt.Sprintf("stalemate = %v, want %v", !want, want)}
	}

	var want []string
	for _, m := range game.ValidMoves() {
		want = append(want, m.String())
	}
	return compare("notnil", fen, got, fromTo(want))
}

// compare reports the symmetric difference of two sorted sets.
func compare(oracle, fen string, got, want []string) error {
	var extra, absent []string
	for _, m := range got {
		if _, found := slices.BinarySearch(want, m); !found {
			extra = append(extra, m)
		}
	}
	for _, m := range want {
		if _, found := slices.BinarySearch(got, m); !found {
			absent = append(absent, m)
		}
	}
	if len(extra) == 0 && len(absent) == 0 {
		return nil
	}
	return &Mismatch{Oracle: oracle, FEN: fen, Extra: extra, Absent: absent}
}

func legalStrings(pos *engine.Position) []string {
	moves := pos.LegalMovesFor(pos.ToMove())
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	return out
}

// fromTo reduces moves to a sorted set of origin-destination pairs.
// Underpromotions collapse onto the queen promotion.
func fromTo(moves []string) []string {
	set := make(map[string]bool, len(moves))
	for _, m := range moves {
		set[m[:4]] = true
	}
	keys := maps.Keys(set)
	slices.Sort(keys)
	return keys
}

// castleRights pairs each FEN castling letter with its king and rook homes.
var castleRights = []struct {
	letter     byte
	colour     chess.Colour
	king, rook chess.Square
}{
	{'K', chess.White, 60, 63},
	{'Q', chess.White, 60, 56},
	{'k', chess.Black, 4, 7},
	{'q', chess.Black, 4, 0},
}

// FEN renders pos for the oracles. Castling rights are derived from the
// moved flags of kings and rooks on their home squares; the clocks are
// always "0 1".
func FEN(pos *engine.Position) string {
	var sb strings.Builder

	for row := 0; row < chess.BoardSize; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 0; col < chess.BoardSize; col++ {
			p, ok := pos.SquareAt(chess.SquareAt(col, row))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}

	if pos.ToMove() == chess.White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	rights := 0
	for _, r := range castleRights {
		if unmoved(pos, r.king, chess.King, r.colour) && unmoved(pos, r.rook, chess.Rook, r.colour) {
			sb.WriteByte(r.letter)
			rights++
		}
	}
	if rights == 0 {
		sb.WriteByte('-')
	}

	sb.WriteByte(' ')
	if pawn, ok := pos.EnPassantPawn(); ok {
		target := pawn.Square - chess.Square(pawn.Colour.Direction()*8)
		sb.WriteString(target.String())
	} else {
		sb.WriteByte('-')
	}

	sb.WriteString(" 0 1")
	return sb.String()
}

func unmoved(pos *engine.Position, sq chess.Square, kind chess.Kind, colour chess.Colour) bool {
	p, ok := pos.SquareAt(sq)
	return ok && p.Kind == kind && p.Colour == colour && !p.Moved
}

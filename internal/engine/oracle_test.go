package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
	notnil "github.com/notnil/chess"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/mindflayer-go/internal/testutil"
)

// oracleFENs are positions whose root move sets are compared against
// independent move generators. Promotions other than to a queen are
// collapsed to from-to pairs before comparison.
var oracleFENs = map[string]string{
	"initial":   testutil.InitialFEN,
	"kiwipete":  testutil.KiwipeteFEN,
	"endgame":   testutil.EndgameFEN,
	"italian":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"promotion": "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1",
	"checked":   "4k3/8/8/8/8/8/8/4R1K1 b - - 0 1",
	"mate":      testutil.FoolsMateFEN,
}

func fromTo(moves []string) []string {
	set := make(map[string]bool, len(moves))
	for _, m := range moves {
		set[m[:4]] = true
	}
	keys := maps.Keys(set)
	slices.Sort(keys)
	return keys
}

func TestLegalMoves_MatchDragontooth(t *testing.T) {
	for name, fen := range oracleFENs {
		fen := fen
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			pos := mustPosition(t, fen)
			got := fromTo(moveStrings(pos.LegalMovesFor(pos.ToMove())))

			board := dragontoothmg.ParseFen(fen)
			var want []string
			for _, m := range board.GenerateLegalMoves() {
				want = append(want, m.String())
			}
			testutil.AssertEqual(t, got, fromTo(want))
		})
	}
}

func TestGameState_MatchNotnil(t *testing.T) {
	for name, fen := range oracleFENs {
		fen := fen
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			opt, err := notnil.FEN(fen)
			if err != nil {
				t.Fatalf("notnil.FEN(%q) error: %v", fen, err)
			}
			game := notnil.NewGame(opt)
			pos := mustPosition(t, fen)

			status := game.Position().Status()
			if got, want := IsCheckmate(pos), status == notnil.Checkmate; got != want {
				t.Errorf("IsCheckmate() = %v, want %v", got, want)
			}
			if got, want := IsStalemate(pos), status == notnil.Stalemate; got != want {
				t.Errorf("IsStalemate() = %v, want %v", got, want)
			}

			var want []string
			for _, m := range game.ValidMoves() {
				want = append(want, m.String())
			}
			testutil.AssertEqual(t, fromTo(moveStrings(pos.LegalMovesFor(pos.ToMove()))), fromTo(want))
		})
	}
}

package engine

import (
	"testing"

	"github.com/lgbarn/mindflayer-go/internal/chess"
	"github.com/lgbarn/mindflayer-go/internal/testutil"
)

func mustPosition(t testing.TB, fen string) *Position {
	t.Helper()
	pos, err := NewPosition(testutil.MustBoard(t, fen))
	if err != nil {
		t.Fatalf("NewPosition(%q) error: %v", fen, err)
	}
	return pos
}

func mustMove(t testing.TB, pos *Position, text string) chess.Move {
	t.Helper()
	m, err := ParseMove(pos, text)
	if err != nil {
		t.Fatalf("ParseMove(%q) error: %v", text, err)
	}
	return m
}

// play makes each move in turn and fails the test on the first rejection.
func play(t testing.TB, pos *Position, moves ...string) *Position {
	t.Helper()
	for _, text := range moves {
		tr := pos.MakeMove(mustMove(t, pos, text))
		if !tr.Status.IsDone() {
			t.Fatalf("MakeMove(%s) status = %v, want done", text, tr.Status)
		}
		pos = tr.Position
	}
	return pos
}

func moveStrings(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	return out
}

func sq(name string) chess.Square {
	return chess.MustParseSquare(name)
}

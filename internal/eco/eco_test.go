package eco

import (
	"strings"
	"testing"

	"github.com/lgbarn/mindflayer-go/internal/engine"
	"github.com/lgbarn/mindflayer-go/internal/errors"
	"github.com/lgbarn/mindflayer-go/internal/testutil"
)

const testECOData = `
# code opening, variation: moves
B90 Sicilian, Najdorf: 1. e2e4 c7c5 2. g1f3 d7d6 3. d2d4 c5d4 4. f3d4 g8f6 5. b1c3 a7a6

C50 Giuoco Piano: 1. e2e4 e7e5 2. g1f3 b8c6 3. f1c4 f8c5
D35 QGD, exchange variation: 1. d2d4 d7d5 2. c2c4 e7e6 3. b1c3 g8f6 4. c4d5 e6d5
`

// replayLine plays moves from the initial position and returns every
// position reached, the initial one first.
func replayLine(t *testing.T, moves string) []*engine.Position {
	t.Helper()
	pos := engine.NewInitialPosition()
	line := []*engine.Position{pos}
	for _, text := range strings.Fields(moves) {
		m, err := engine.ParseMove(pos, text)
		if err != nil {
			t.Fatalf("ParseMove(%s) error: %v", text, err)
		}
		tr := engine.AttemptMove(pos, m)
		if !tr.Status.IsDone() {
			t.Fatalf("AttemptMove(%s) = %v", text, tr.Status)
		}
		pos = tr.Position
		line = append(line, pos)
	}
	return line
}

func newTestClassifier(t *testing.T) *ECOClassifier {
	t.Helper()
	ec := NewECOClassifier()
	if err := ec.LoadFromReader(strings.NewReader(testECOData)); err != nil {
		t.Fatalf("failed to load ECO data: %v", err)
	}
	return ec
}

func TestECOClassifierLoad(t *testing.T) {
	ec := newTestClassifier(t)

	if got := ec.EntriesLoaded(); got != 3 {
		t.Errorf("EntriesLoaded() = %d; want 3", got)
	}

	// Loading the same book twice adds nothing.
	if err := ec.LoadFromReader(strings.NewReader(testECOData)); err != nil {
		t.Fatalf("reload error: %v", err)
	}
	if got := ec.EntriesLoaded(); got != 3 {
		t.Errorf("EntriesLoaded() after reload = %d; want 3", got)
	}
}

func TestECOClassifierLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing colon", "B20 Sicilian e2e4 c7c5"},
		{"no moves", "B20 Sicilian:"},
		{"illegal move", "B20 Sicilian: e2e5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewECOClassifier().LoadFromReader(strings.NewReader("# book\n" + tt.data))
			var perr *errors.ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("LoadFromReader() error = %v; want *ParseError", err)
			}
			testutil.AssertEqual(t, perr.Line, 2)
		})
	}
}

func TestECOClassifySicilian(t *testing.T) {
	ec := newTestClassifier(t)
	line := replayLine(t, "e2e4 c7c5 g1f3 d7d6 d2d4 c5d4 f3d4 g8f6 b1c3 a7a6")

	match := ec.Classify(line)
	if match == nil {
		t.Fatal("Classify() returned nil; want match")
	}

	if match.ECOCode != "B90" {
		t.Errorf("ECOCode = %q; want B90", match.ECOCode)
	}
	if match.Opening != "Sicilian" {
		t.Errorf("Opening = %q; want Sicilian", match.Opening)
	}
	if match.Variation != "Najdorf" {
		t.Errorf("Variation = %q; want Najdorf", match.Variation)
	}
	testutil.AssertEqual(t, match.String(), "B90 Sicilian: Najdorf")
}

func TestECOClassifyItalian(t *testing.T) {
	ec := newTestClassifier(t)
	match := ec.Classify(replayLine(t, "e2e4 e7e5 g1f3 b8c6 f1c4 f8c5"))
	if match == nil {
		t.Fatal("Classify() returned nil; want match")
	}

	if match.ECOCode != "C50" {
		t.Errorf("ECOCode = %q; want C50", match.ECOCode)
	}
	if match.Opening != "Giuoco Piano" || match.Variation != "" {
		t.Errorf("Opening = %q, Variation = %q; want Giuoco Piano without variation", match.Opening, match.Variation)
	}
	testutil.AssertEqual(t, match.String(), "C50 Giuoco Piano")
}

func TestECOTransposition(t *testing.T) {
	ec := newTestClassifier(t)
	// Knight before pawn reaches the Giuoco Piano by another order.
	match := ec.Classify(replayLine(t, "g1f3 b8c6 e2e4 e7e5 f1c4 f8c5"))
	if match == nil || match.ECOCode != "C50" {
		t.Errorf("Classify() = %v; want C50", match)
	}
}

func TestECONoMatch(t *testing.T) {
	ec := newTestClassifier(t)
	if match := ec.Classify(replayLine(t, "a2a3")); match != nil {
		t.Errorf("Classify() = %q; want nil", match.ECOCode)
	}
	if match := ec.Classify(replayLine(t, "")); match != nil {
		t.Errorf("Classify() of the initial position = %q; want nil", match.ECOCode)
	}
	if match := NewECOClassifier().Classify(replayLine(t, "e2e4")); match != nil {
		t.Errorf("empty classifier matched %q", match.ECOCode)
	}
}

func TestECOPartialMatch(t *testing.T) {
	ec := newTestClassifier(t)
	line := replayLine(t, "e2e4 c7c5 g1f3 d7d6 d2d4 c5d4 f3d4 g8f6 b1c3 a7a6 f1e2 e7e5 d4b3")

	match := ec.Classify(line)
	if match == nil {
		t.Fatal("Classify() returned nil; want match for extended game")
	}
	if match.ECOCode != "B90" {
		t.Errorf("ECOCode = %q; want B90", match.ECOCode)
	}
}

package matching

import (
	"strings"

	"github.com/lgbarn/mindflayer-go/internal/chess"
	"github.com/lgbarn/mindflayer-go/internal/engine"
)

// materialKinds lists the kinds a material pattern can name.
var materialKinds = [...]chess.Kind{chess.King, chess.Queen, chess.Rook, chess.Bishop, chess.Knight, chess.Pawn}

// materialCount holds piece counts per colour and kind.
type materialCount [chess.NumColours]map[chess.Kind]int

func newMaterialCount() materialCount {
	return materialCount{make(map[chess.Kind]int), make(map[chess.Kind]int)}
}

// MaterialMatcher matches games that reach a given material balance.
type MaterialMatcher struct {
	// Pattern like "QR:qrr" means white has Q+R, black has Q+2R
	pattern    string
	exactMatch bool
	want       materialCount
}

// NewMaterialMatcher creates a new material matcher.
// Pattern format: "QRN:qrn" (white pieces : black pieces).
// K=King, Q=Queen, R=Rook, B=Bishop, N=Knight, P=Pawn; the case of a letter
// is ignored, its side of the colon decides the colour. In exact mode every
// kind not named must be absent.
func NewMaterialMatcher(pattern string, exact bool) *MaterialMatcher {
	mm := &MaterialMatcher{
		pattern:    pattern,
		exactMatch: exact,
		want:       newMaterialCount(),
	}
	mm.parsePattern(pattern)
	return mm
}

// parsePattern parses a material pattern like "QR:qrr".
func (mm *MaterialMatcher) parsePattern(pattern string) {
	parts := strings.Split(pattern, ":")
	mm.parsePieces(parts[0], chess.White)
	if len(parts) >= 2 {
		mm.parsePieces(parts[1], chess.Black)
	}
}

func (mm *MaterialMatcher) parsePieces(s string, colour chess.Colour) {
	for _, c := range strings.ToUpper(s) {
		for _, kind := range materialKinds {
			if rune(kind.Letter()) == c {
				mm.want[colour][kind]++
			}
		}
	}
}

// Match implements GameMatcher. The game matches if any position on its
// line has the material of the pattern.
func (mm *MaterialMatcher) Match(_ *chess.Game, line []*engine.Position) bool {
	for _, pos := range line {
		if mm.matchPosition(pos) {
			return true
		}
	}
	return false
}

// matchPosition checks if a position matches the material pattern.
func (mm *MaterialMatcher) matchPosition(pos *engine.Position) bool {
	have := newMaterialCount()
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, p := range pos.Pieces(colour) {
			have[colour][p.Kind]++
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, kind := range materialKinds {
			want, got := mm.want[colour][kind], have[colour][kind]
			if got < want || (mm.exactMatch && got != want) {
				return false
			}
		}
	}
	return true
}

// HasCriteria returns true if a material pattern is set.
func (mm *MaterialMatcher) HasCriteria() bool {
	return mm.pattern != ""
}

// Name implements GameMatcher.
func (mm *MaterialMatcher) Name() string {
	return "MaterialMatcher(" + mm.pattern + ")"
}

package matching

import (
	"strings"

	"github.com/lgbarn/mindflayer-go/internal/chess"
	"github.com/lgbarn/mindflayer-go/internal/engine"
)

// FENPattern represents a board pattern to match, written like the piece
// placement field of a FEN. Supports wildcards:
//   - ? matches any square (empty or occupied)
//   - ! matches any non-empty square
//   - * matches zero or more of anything
//   - A matches any white piece
//   - a matches any black piece
//   - _ matches empty square
type FENPattern struct {
	Pattern string
	Label   string // optional label for matched position
	IsExact bool   // true if this is a plain placement (no wildcards)
	ranks   []string
}

// PositionMatcher selects games that pass through a given position.
type PositionMatcher struct {
	patterns []*FENPattern
	exact    map[string]*FENPattern
}

// NewPositionMatcher creates a new position matcher.
func NewPositionMatcher() *PositionMatcher {
	return &PositionMatcher{
		exact: make(map[string]*FENPattern),
	}
}

// AddFEN adds an exact position. Only the placement field of fen is used.
func (pm *PositionMatcher) AddFEN(fen, label string) {
	placement := strings.Fields(fen)
	if len(placement) == 0 {
		return
	}
	p := &FENPattern{Pattern: placement[0], Label: label, IsExact: true}
	pm.patterns = append(pm.patterns, p)
	pm.exact[p.Pattern] = p
}

// AddPattern adds a placement pattern with wildcards. With includeInvert the
// colour-swapped, rank-mirrored pattern is added too.
func (pm *PositionMatcher) AddPattern(pattern, label string, includeInvert bool) {
	pm.patterns = append(pm.patterns, &FENPattern{
		Pattern: pattern,
		Label:   label,
		ranks:   strings.Split(pattern, "/"),
	})

	if includeInvert {
		inverted := invertPattern(pattern)
		pm.patterns = append(pm.patterns, &FENPattern{
			Pattern: inverted,
			Label:   label,
			ranks:   strings.Split(inverted, "/"),
		})
	}
}

// MatchLine returns the first pattern matched by a position on line, or nil.
func (pm *PositionMatcher) MatchLine(line []*engine.Position) *FENPattern {
	if len(pm.patterns) == 0 {
		return nil
	}
	for _, pos := range line {
		if match := pm.matchPosition(pos); match != nil {
			return match
		}
	}
	return nil
}

// Match implements GameMatcher.
func (pm *PositionMatcher) Match(_ *chess.Game, line []*engine.Position) bool {
	return pm.MatchLine(line) != nil
}

// Name implements GameMatcher.
func (pm *PositionMatcher) Name() string {
	return "PositionMatcher"
}

// matchPosition checks if a position matches any pattern.
func (pm *PositionMatcher) matchPosition(pos *engine.Position) *FENPattern {
	ranks := boardToRanks(pos)

	if pattern, ok := pm.exact[Placement(ranks)]; ok {
		return pattern
	}
	for _, pattern := range pm.patterns {
		if !pattern.IsExact && matchPattern(ranks, pattern) {
			return pattern
		}
	}
	return nil
}

// matchPattern checks if board ranks match a pattern with wildcards.
func matchPattern(ranks [chess.BoardSize]string, pattern *FENPattern) bool {
	if len(pattern.ranks) == 0 {
		return false
	}
	for i, patternRank := range pattern.ranks {
		if i >= chess.BoardSize {
			break
		}
		if !matchRank(ranks[i], patternRank) {
			return false
		}
	}
	return true
}

// boardToRanks converts a position to rank strings, rank 8 first, with '_'
// for an empty square.
func boardToRanks(pos *engine.Position) [chess.BoardSize]string {
	var ranks [chess.BoardSize]string
	for row := 0; row < chess.BoardSize; row++ {
		var sb strings.Builder
		for col := 0; col < chess.BoardSize; col++ {
			sb.WriteByte(squareChar(pos, chess.SquareAt(col, row)))
		}
		ranks[row] = sb.String()
	}
	return ranks
}

func squareChar(pos *engine.Position, sq chess.Square) byte {
	p, ok := pos.SquareAt(sq)
	if !ok {
		return '_'
	}
	return p.Letter()
}

// Placement renders rank strings as a FEN placement field.
func Placement(ranks [chess.BoardSize]string) string {
	var sb strings.Builder
	for i, rank := range ranks {
		if i > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for j := 0; j < len(rank); j++ {
			if rank[j] == '_' {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(rank[j])
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	return sb.String()
}

// matchRank matches a board rank string against a pattern rank.
func matchRank(boardRank, patternRank string) bool {
	bi := 0 // board index
	pi := 0 // pattern index

	for pi < len(patternRank) {
		if bi >= len(boardRank) && patternRank[pi] != '*' {
			return false
		}

		c := patternRank[pi]

		switch c {
		case '*':
			// * matches zero or more of anything
			pi++
			if pi >= len(patternRank) {
				return true
			}
			for bi <= len(boardRank) {
				if matchRank(boardRank[bi:], patternRank[pi:]) {
					return true
				}
				bi++
			}
			return false

		case '?':
			bi++
			pi++

		case '!':
			if boardRank[bi] == '_' {
				return false
			}
			bi++
			pi++

		case 'A':
			if boardRank[bi] < 'A' || boardRank[bi] > 'Z' {
				return false
			}
			bi++
			pi++

		case 'a':
			if boardRank[bi] < 'a' || boardRank[bi] > 'z' {
				return false
			}
			bi++
			pi++

		case '1', '2', '3', '4', '5', '6', '7', '8':
			// Number means N empty squares
			count := int(c - '0')
			for i := 0; i < count; i++ {
				if bi >= len(boardRank) || boardRank[bi] != '_' {
					return false
				}
				bi++
			}
			pi++

		default:
			// Exact piece match, '_' included
			if boardRank[bi] != c {
				return false
			}
			bi++
			pi++
		}
	}

	return bi == len(boardRank)
}

// invertPattern swaps colours in a pattern and mirrors its ranks.
func invertPattern(pattern string) string {
	var result strings.Builder
	for _, c := range pattern {
		switch {
		case c >= 'A' && c <= 'Z':
			result.WriteRune(c + 32)
		case c >= 'a' && c <= 'z':
			result.WriteRune(c - 32)
		default:
			result.WriteRune(c)
		}
	}

	ranks := strings.Split(result.String(), "/")
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}
	return strings.Join(ranks, "/")
}

// PatternCount returns the number of patterns.
func (pm *PositionMatcher) PatternCount() int {
	return len(pm.patterns)
}

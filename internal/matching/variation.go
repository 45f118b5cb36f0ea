package matching

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/mindflayer-go/internal/chess"
	"github.com/lgbarn/mindflayer-go/internal/engine"
)

// VariationMatcher matches games against move sequences and position
// sequences.
type VariationMatcher struct {
	// Coordinate move sequences to find in the played moves
	moveSequences [][]string
	// Placement fields to pass through in order
	positionSequences [][]string
}

// NewVariationMatcher creates a new variation matcher.
func NewVariationMatcher() *VariationMatcher {
	return &VariationMatcher{}
}

// LoadFromFile loads move sequences from a file.
// Each line is a move sequence like: "1. e2e4 e7e5 2. g1f3"
func (vm *VariationMatcher) LoadFromFile(filename string) error {
	file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return err
	}
	defer file.Close()
	return vm.LoadFromReader(file)
}

// LoadFromReader loads move sequences, one per line. Blank lines and lines
// starting with # are skipped.
func (vm *VariationMatcher) LoadFromReader(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if moves := parseMoveSequence(line); len(moves) > 0 {
			vm.moveSequences = append(vm.moveSequences, moves)
		}
	}
	return scanner.Err()
}

// LoadPositionalFromFile loads positional variations from a file.
// Each line is a FEN; a blank line separates sequences.
func (vm *VariationMatcher) LoadPositionalFromFile(filename string) error {
	file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return err
	}
	defer file.Close()

	var currentSequence []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if len(currentSequence) > 0 {
				vm.positionSequences = append(vm.positionSequences, currentSequence)
				currentSequence = nil
			}
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		currentSequence = append(currentSequence, strings.Fields(line)[0])
	}

	if len(currentSequence) > 0 {
		vm.positionSequences = append(vm.positionSequences, currentSequence)
	}
	return scanner.Err()
}

// AddMoveSequence adds a move sequence to match.
func (vm *VariationMatcher) AddMoveSequence(moves []string) {
	vm.moveSequences = append(vm.moveSequences, moves)
}

// Match implements GameMatcher. Only moves that were actually played count.
// A matcher without sequences matches every game.
func (vm *VariationMatcher) Match(game *chess.Game, line []*engine.Position) bool {
	played := game.Moves
	if n := len(line) - 1; n >= 0 && n < len(played) {
		played = played[:n]
	}

	for _, seq := range vm.moveSequences {
		if containsSequence(played, seq) {
			return true
		}
	}
	for _, seq := range vm.positionSequences {
		if passesThrough(line, seq) {
			return true
		}
	}
	return !vm.HasCriteria()
}

// containsSequence reports whether seq occurs as a contiguous run of moves.
func containsSequence(moves, seq []string) bool {
	if len(seq) == 0 {
		return true
	}
	for start := 0; start+len(seq) <= len(moves); start++ {
		matched := true
		for i, want := range seq {
			if normalizeMove(moves[start+i]) != normalizeMove(want) {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}

// passesThrough reports whether line visits every placement of seq in order.
func passesThrough(line []*engine.Position, seq []string) bool {
	if len(seq) == 0 {
		return true
	}
	idx := 0
	for _, pos := range line {
		if Placement(boardToRanks(pos)) == seq[idx] {
			idx++
			if idx >= len(seq) {
				return true
			}
		}
	}
	return false
}

// parseMoveSequence parses a line of moves into individual move texts.
func parseMoveSequence(line string) []string {
	var moves []string
	for _, part := range strings.Fields(line) {
		// Skip move numbers (1. 2. etc) and ellipsis
		if part[len(part)-1] == '.' || strings.Contains(part, "...") {
			continue
		}
		moves = append(moves, part)
	}
	return moves
}

// normalizeMove normalizes a move text for comparison.
func normalizeMove(text string) string {
	return strings.ToLower(strings.TrimRight(strings.TrimSpace(text), "+"))
}

// HasCriteria returns true if any matching criteria are set.
func (vm *VariationMatcher) HasCriteria() bool {
	return len(vm.moveSequences) > 0 || len(vm.positionSequences) > 0
}

// Name implements GameMatcher.
func (vm *VariationMatcher) Name() string {
	return "VariationMatcher"
}

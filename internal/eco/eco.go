// Package eco classifies games by opening, matching the positions a game
// reaches against a book of named opening lines.
package eco

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/mindflayer-go/internal/engine"
	"github.com/lgbarn/mindflayer-go/internal/errors"
	"github.com/lgbarn/mindflayer-go/internal/hashing"
)

// ECOHalfMoveLimit is the maximum distance from a book line for a match.
const ECOHalfMoveLimit = 6

// ECOTableSize is the size of the ECO hash table.
const ECOTableSize = 4096

// ECOEntry represents a single book line.
type ECOEntry struct {
	ECOCode        string // e.g., "B33"
	Opening        string // e.g., "Sicilian"
	Variation      string // e.g., "Sveshnikov"
	RequiredHash   uint64 // Zobrist hash of the position the line reaches
	CumulativeHash uint64 // XOR of the hashes of every position on the line
	HalfMoves      int    // Number of half-moves to reach this position
	Next           *ECOEntry
}

// String returns "B90 Sicilian: Najdorf", omitting absent parts.
func (e *ECOEntry) String() string {
	s := e.ECOCode
	if e.Opening != "" {
		s += " " + e.Opening
	}
	if e.Variation != "" {
		s += ": " + e.Variation
	}
	return s
}

// ECOClassifier provides opening classification for replayed games. It is
// read-only once loaded and may be shared between goroutines.
type ECOClassifier struct {
	table         [ECOTableSize]*ECOEntry
	maxHalfMoves  int
	entriesLoaded int
}

// NewECOClassifier creates a new ECO classifier.
func NewECOClassifier() *ECOClassifier {
	return &ECOClassifier{
		maxHalfMoves: ECOHalfMoveLimit,
	}
}

// LoadFromFile loads book lines from a file.
func (ec *ECOClassifier) LoadFromFile(filename string) error {
	file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return fmt.Errorf("cannot open ECO file: %w", err)
	}
	defer file.Close()

	return ec.LoadFromReader(file)
}

// LoadFromReader loads book lines, one per line, written as
//
//	B90 Sicilian, Najdorf: 1. e2e4 c7c5 2. g1f3 d7d6 ...
//
// The variation after the comma is optional. Blank lines and lines starting
// with # are skipped.
func (ec *ECOClassifier) LoadFromReader(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := ec.addLine(line); err != nil {
			return &errors.ParseError{
				Err:      err,
				File:     "eco",
				Line:     lineNum,
				Expected: "ECO line",
				Got:      fmt.Sprintf("%q", line),
			}
		}
	}
	return scanner.Err()
}

// addLine parses one book line and adds it to the table.
func (ec *ECOClassifier) addLine(line string) error {
	head, moves, ok := strings.Cut(line, ":")
	if !ok {
		return errors.ErrParseFailure
	}
	code, name, _ := strings.Cut(strings.TrimSpace(head), " ")
	opening, variation, _ := strings.Cut(strings.TrimSpace(name), ",")

	pos := engine.NewInitialPosition()
	var cumulativeHash uint64
	halfMoves := 0

	for _, text := range strings.Fields(moves) {
		if strings.HasSuffix(text, ".") {
			continue
		}
		m, err := engine.ParseMove(pos, text)
		if err != nil {
			return err
		}
		tr := engine.AttemptMove(pos, m)
		if !tr.Status.IsDone() {
			return tr.Err
		}
		pos = tr.Position
		halfMoves++
		cumulativeHash ^= positionHash(pos)
	}

	if halfMoves == 0 {
		return errors.ErrParseFailure
	}

	ec.addEntry(&ECOEntry{
		ECOCode:        code,
		Opening:        strings.TrimSpace(opening),
		Variation:      strings.TrimSpace(variation),
		RequiredHash:   positionHash(pos),
		CumulativeHash: cumulativeHash,
		HalfMoves:      halfMoves,
	})
	return nil
}

// addEntry stores entry unless an identical line is already present.
func (ec *ECOClassifier) addEntry(entry *ECOEntry) {
	ix := entry.RequiredHash % ECOTableSize
	for existing := ec.table[ix]; existing != nil; existing = existing.Next {
		if existing.RequiredHash == entry.RequiredHash &&
			existing.HalfMoves == entry.HalfMoves &&
			existing.CumulativeHash == entry.CumulativeHash {
			return
		}
	}

	entry.Next = ec.table[ix]
	ec.table[ix] = entry
	ec.entriesLoaded++

	if entry.HalfMoves+ECOHalfMoveLimit > ec.maxHalfMoves {
		ec.maxHalfMoves = entry.HalfMoves + ECOHalfMoveLimit
	}
}

// Classify finds the deepest book match along a replayed line. line holds
// the initial position followed by the position after each ply. Returns nil
// if no match is found.
func (ec *ECOClassifier) Classify(line []*engine.Position) *ECOEntry {
	if ec.entriesLoaded == 0 {
		return nil
	}

	var bestMatch *ECOEntry
	var cumulativeHash uint64

	for halfMoves := 1; halfMoves < len(line); halfMoves++ {
		// Don't bother checking if we're past max ECO depth
		if halfMoves > ec.maxHalfMoves {
			break
		}

		posHash := positionHash(line[halfMoves])
		cumulativeHash ^= posHash

		if match := ec.findMatch(posHash, cumulativeHash, halfMoves); match != nil {
			bestMatch = match
		}
	}

	return bestMatch
}

// findMatch looks up a position in the ECO table. A line reached by the
// same moves wins; otherwise a transposition within ECOHalfMoveLimit plies.
func (ec *ECOClassifier) findMatch(posHash, cumulativeHash uint64, halfMoves int) *ECOEntry {
	ix := posHash % ECOTableSize
	var possible *ECOEntry

	for entry := ec.table[ix]; entry != nil; entry = entry.Next {
		if entry.RequiredHash != posHash {
			continue
		}
		if entry.HalfMoves == halfMoves && entry.CumulativeHash == cumulativeHash {
			return entry
		}
		if abs(halfMoves-entry.HalfMoves) <= ECOHalfMoveLimit {
			possible = entry
		}
	}

	return possible
}

// EntriesLoaded returns the number of book lines loaded.
func (ec *ECOClassifier) EntriesLoaded() int {
	return ec.entriesLoaded
}

func positionHash(pos *engine.Position) uint64 {
	board := pos.Board()
	return hashing.GenerateZobristHash(&board)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

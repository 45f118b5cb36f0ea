// Package hashing provides position hashing and duplicate detection for
// replayed games.
package hashing

import (
	"github.com/lgbarn/mindflayer-go/internal/chess"
)

// DuplicateDetector tracks seen final positions for duplicate game detection.
type DuplicateDetector struct {
	// hashTable stores seen hash codes
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires equal ply counts
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity bounds the number of stored signatures (0 = unlimited)
	maxCapacity int
	size        int
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// PlyCount is the number of half-moves in the game
	PlyCount int
	// WeakHash is a fast checksum for additional confidence
	WeakHash uint32
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// CheckAndAdd checks if a game is a duplicate and adds it to the hash table.
// Returns true if the game is a duplicate. Once the detector is full new
// signatures are no longer stored, but lookups continue.
func (d *DuplicateDetector) CheckAndAdd(game *chess.Game, board *chess.Board) bool {
	if board == nil {
		return false
	}

	sig := GameSignature{
		Hash:     GenerateZobristHash(board),
		PlyCount: game.PlyCount(),
		WeakHash: WeakHash(board),
	}

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.size++
	return false
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.PlyCount != b.PlyCount {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games.
func (d *DuplicateDetector) UniqueCount() int {
	return d.size
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}

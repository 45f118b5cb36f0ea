package processing

import "github.com/lgbarn/mindflayer-go/internal/engine"

// Summary accumulates totals over a run. It is not safe for concurrent use;
// the result collector owns it.
type Summary struct {
	Games      int            `json:"games"`
	Reported   int            `json:"reported"`
	Broken     int            `json:"broken"`
	Duplicates int            `json:"duplicates"`
	Mismatches int            `json:"mismatches"`
	Plies      int            `json:"plies"`
	States     map[string]int `json:"states"`
}

// NewSummary returns an empty Summary.
func NewSummary() *Summary {
	return &Summary{States: make(map[string]int)}
}

// Add records one replayed game.
func (s *Summary) Add(ga *GameAnalysis) {
	s.Games++
	s.Plies += ga.Plies
	if !ga.Complete() {
		s.Broken++
	}
	if ga.VerifyErr != nil {
		s.Mismatches++
	}
	s.States[ga.State.String()]++
}

// Count returns the number of games that ended in state.
func (s *Summary) Count(state engine.GameState) int {
	return s.States[state.String()]
}

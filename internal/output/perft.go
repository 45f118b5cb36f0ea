package output

import (
	"fmt"
	"io"
	"time"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// PerftReport is the result of a perft run.
type PerftReport struct {
	Depth   int               `json:"depth"`
	Moves   []string          `json:"moves,omitempty"`
	Nodes   uint64            `json:"nodes"`
	Divide  map[string]uint64 `json:"divide,omitempty"`
	Elapsed time.Duration     `json:"elapsedNs"`
}

// NodesPerSecond returns the search rate, or 0 for an instant run.
func (r *PerftReport) NodesPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Nodes) / r.Elapsed.Seconds()
}

// OutputPerft writes r as text, one divide line per root move in
// coordinate order.
func OutputPerft(w io.Writer, r *PerftReport) {
	for _, m := range sortedKeys(r.Divide) {
		fmt.Fprintf(w, "%s: %d\n", m, r.Divide[m])
	}
	if len(r.Divide) > 0 {
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "perft(%d) = %d\n", r.Depth, r.Nodes)
	if r.Elapsed > 0 {
		fmt.Fprintf(w, "%v, %.0f nodes/s\n", r.Elapsed.Round(time.Millisecond), r.NodesPerSecond())
	}
}

// OutputPerftJSON writes r as an indented JSON object.
func OutputPerftJSON(w io.Writer, r *PerftReport) error {
	return encodeJSON(w, r)
}

func sortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

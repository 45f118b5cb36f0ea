package engine

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Perft counts the leaf nodes of the legal move tree of pos to the given
// depth. Depth 0 counts pos itself.
func Perft(pos *Position, depth int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	legal := pos.CurrentPlayer().legal
	if depth == 1 {
		return uint64(len(legal)), nil
	}
	var nodes uint64
	for _, m := range legal {
		next, err := Execute(pos, m)
		if err != nil {
			return 0, err
		}
		n, err := Perft(next, depth-1)
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	return nodes, nil
}

// Divide returns the perft count below each legal root move, keyed by the
// move in coordinate notation.
func Divide(pos *Position, depth int) (map[string]uint64, error) {
	counts := make(map[string]uint64)
	if depth <= 0 {
		return counts, nil
	}
	for _, m := range pos.CurrentPlayer().legal {
		next, err := Execute(pos, m)
		if err != nil {
			return nil, err
		}
		n, err := Perft(next, depth-1)
		if err != nil {
			return nil, err
		}
		counts[m.String()] += n
	}
	return counts, nil
}

// PerftParallel is Perft with the root moves searched concurrently by at
// most workers goroutines. A workers value below one removes the limit.
func PerftParallel(ctx context.Context, pos *Position, depth, workers int) (uint64, error) {
	if depth <= 1 {
		return Perft(pos, depth)
	}

	legal := pos.CurrentPlayer().legal
	counts := make([]uint64, len(legal))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, m := range legal {
		i, m := i, m
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			next, err := Execute(pos, m)
			if err != nil {
				return err
			}
			n, err := Perft(next, depth-1)
			if err != nil {
				return err
			}
			counts[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total uint64
	for _, n := range counts {
		total += n
	}
	return total, nil
}

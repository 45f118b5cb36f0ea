package main

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/mindflayer-go/internal/config"
	"github.com/lgbarn/mindflayer-go/internal/engine"
	"github.com/lgbarn/mindflayer-go/internal/errors"
	"github.com/lgbarn/mindflayer-go/internal/output"
)

// runPerft counts the leaf nodes below the configured position and writes
// the report.
func runPerft(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	pos, err := perftPosition(cfg.Perft.Moves)
	if err != nil {
		return err
	}

	report := &output.PerftReport{Depth: cfg.Perft.Depth, Moves: cfg.Perft.Moves}
	start := time.Now()

	switch {
	case cfg.Perft.Divide:
		report.Divide, err = engine.Divide(pos, cfg.Perft.Depth)
		for _, n := range report.Divide {
			report.Nodes += n
		}
	case cfg.Perft.Parallel:
		report.Nodes, err = engine.PerftParallel(ctx, pos, cfg.Perft.Depth, cfg.WorkerCount())
	default:
		report.Nodes, err = engine.Perft(pos, cfg.Perft.Depth)
	}
	if err != nil {
		return err
	}
	report.Elapsed = time.Since(start)

	log.Info().
		Int("depth", report.Depth).
		Uint64("nodes", report.Nodes).
		Dur("elapsed", report.Elapsed).
		Msg("perft finished")

	if cfg.Output.JSONFormat {
		return output.OutputPerftJSON(cfg.OutputFile, report)
	}
	output.OutputPerft(cfg.OutputFile, report)
	return nil
}

// perftPosition plays moves from the initial position.
func perftPosition(moves []string) (*engine.Position, error) {
	pos := engine.NewInitialPosition()
	for i, text := range moves {
		m, err := engine.ParseMove(pos, text)
		if err != nil {
			return nil, &errors.GameError{Err: err, PlyNum: i + 1, MoveText: text}
		}
		tr := engine.AttemptMove(pos, m)
		if !tr.Status.IsDone() {
			return nil, &errors.GameError{Err: tr.Err, PlyNum: i + 1, MoveText: text}
		}
		pos = tr.Position
	}
	return pos, nil
}

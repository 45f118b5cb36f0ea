package main

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/lgbarn/mindflayer-go/internal/config"
	"github.com/lgbarn/mindflayer-go/internal/eco"
	"github.com/lgbarn/mindflayer-go/internal/errors"
	"github.com/lgbarn/mindflayer-go/internal/hashing"
	"github.com/lgbarn/mindflayer-go/internal/matching"
	"github.com/lgbarn/mindflayer-go/internal/output"
	"github.com/lgbarn/mindflayer-go/internal/parser"
	"github.com/lgbarn/mindflayer-go/internal/processing"
	"github.com/lgbarn/mindflayer-go/internal/verify"
	"github.com/lgbarn/mindflayer-go/internal/worker"
)

// Processor replays every input through the worker pool and routes the
// results to the writers.
//
// Concurrency model: games are replayed on the pool's goroutines, but all
// results are consumed by the goroutine calling ProcessInput, in input
// order. The detector, writers and summary are only touched there.
type Processor struct {
	cfg       *config.Config
	log       zerolog.Logger
	analyzer  *processing.Analyzer
	detector  *hashing.DuplicateDetector
	writer    output.GameWriter
	dupWriter output.GameWriter
	summary   *processing.Summary
}

// NewProcessor builds a Processor from cfg.
func NewProcessor(cfg *config.Config, log zerolog.Logger) *Processor {
	analyzer := processing.NewAnalyzer(log, cfg)
	if cfg.Verify {
		analyzer.WithChecker(verify.NewChecker())
	}

	p := &Processor{
		cfg:      cfg,
		log:      log,
		analyzer: analyzer,
		writer:   output.NewGameWriter(cfg.OutputFile, cfg.Output),
		summary:  processing.NewSummary(),
	}
	if cfg.Duplicate.Enabled() {
		p.detector = hashing.NewDuplicateDetector(false, cfg.Duplicate.MaxCapacity)
	}
	if cfg.Duplicate.DuplicateFile != nil {
		p.dupWriter = output.NewGameWriter(cfg.Duplicate.DuplicateFile, cfg.Output)
	}
	return p
}

// WithMatcher selects games by the positions they pass through.
func (p *Processor) WithMatcher(m matching.GameMatcher) *Processor {
	p.analyzer.WithMatcher(m)
	return p
}

// WithBook classifies every game against an opening book.
func (p *Processor) WithBook(b *eco.ECOClassifier) *Processor {
	p.analyzer.WithBook(b)
	return p
}

// Summary returns the totals so far.
func (p *Processor) Summary() *processing.Summary {
	return p.summary
}

// Done reports whether the report limit has been reached.
func (p *Processor) Done() bool {
	limit := p.cfg.Filter.MaxMatches
	return limit > 0 && uint(p.summary.Reported) >= limit
}

// ProcessInput parses all games from r and replays them. Games read before
// a parse error are still processed; the parse error is returned.
func (p *Processor) ProcessInput(ctx context.Context, r io.Reader, name string) error {
	ps := parser.NewParser(r, p.cfg)
	ps.SetSource(name)
	games, parseErr := ps.ParseAllGames()
	if parseErr != nil {
		p.log.Error().Err(parseErr).Str("input", name).Int("games", len(games)).Msg("parse failed")
	}
	p.log.Debug().Str("input", name).Int("games", len(games)).Msg("parsed input")

	pool := worker.NewPool(worker.AnalyzerFunc(p.analyzer),
		worker.WithWorkers(p.cfg.WorkerCount()),
		worker.WithBufferSize(p.cfg.BufferSize))

	for _, result := range pool.Run(ctx, games) {
		if result == nil {
			continue
		}
		if err := p.handleResult(result); err != nil {
			return err
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	return parseErr
}

// handleResult records one result and writes it where it belongs.
func (p *Processor) handleResult(r *worker.ProcessResult) error {
	ga := r.Analysis
	p.summary.Add(ga)

	if ga.Err != nil {
		p.log.Warn().Err(ga.Err).Str("status", ga.Rejected.String()).Msg("game stopped early")
	}
	if !r.Matched || p.Done() {
		return nil
	}

	if p.detector != nil {
		board := ga.Final.Board()
		if p.detector.CheckAndAdd(r.Game, &board) {
			p.summary.Duplicates++
			p.log.Debug().Err(errors.ErrDuplicateGame).Int("game", r.Game.Number).Msg("duplicate final position")
			if p.dupWriter != nil {
				if err := p.dupWriter.WriteGame(r.Game, ga); err != nil {
					return err
				}
			}
			if p.cfg.Duplicate.SuppressOriginals {
				return p.report(r)
			}
			return nil
		}
		if p.cfg.Duplicate.SuppressOriginals {
			return nil
		}
	}
	return p.report(r)
}

func (p *Processor) report(r *worker.ProcessResult) error {
	p.summary.Reported++
	return p.writer.WriteGame(r.Game, r.Analysis)
}

// Finish writes the summary if configured and flushes the writers.
func (p *Processor) Finish() error {
	if p.cfg.Output.Summary {
		if err := p.writer.WriteSummary(p.summary); err != nil {
			return err
		}
	}
	if p.dupWriter != nil {
		if err := p.dupWriter.Close(); err != nil {
			return err
		}
	}
	return p.writer.Close()
}

// Package worker provides a worker pool for replaying games in parallel.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/mindflayer-go/internal/chess"
	"github.com/lgbarn/mindflayer-go/internal/processing"
)

// WorkItem represents a game to be replayed.
type WorkItem struct {
	Game  *chess.Game
	Index int // Original index for ordering results
}

// ProcessResult represents the result of replaying a game.
type ProcessResult struct {
	Game     *chess.Game
	Index    int
	Matched  bool                     // Whether the game passed the filters
	Analysis *processing.GameAnalysis // Replay outcome
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// AnalyzerFunc returns a ProcessFunc that replays each game with a and
// applies its filters. Analyzer is safe for concurrent use.
func AnalyzerFunc(a *processing.Analyzer) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		ga := a.Replay(item.Game)
		return ProcessResult{
			Game:     item.Game,
			Index:    item.Index,
			Matched:  a.Matches(ga),
			Analysis: ga,
		}
	}
}

// Pool manages a pool of workers for parallel game replay.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a new worker pool. processFunc is required; other
// settings default to 1 worker and a buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run starts the pool, replays every game and returns the results in input
// order. When ctx is cancelled the pool stops and the games not yet
// processed have nil slots.
func (p *Pool) Run(ctx context.Context, games []*chess.Game) []*ProcessResult {
	p.Start()

	go func() {
		defer p.Close()
		for i, game := range games {
			select {
			case <-ctx.Done():
				p.Stop()
				return
			default:
			}
			p.Submit(WorkItem{Game: game, Index: i})
		}
	}()

	return Ordered(p.Results(), len(games))
}

// Ordered drains results and returns them indexed by WorkItem.Index. n is
// the number of submitted items; unfilled slots are nil.
func Ordered(results <-chan ProcessResult, n int) []*ProcessResult {
	ordered := make([]*ProcessResult, n)
	for r := range results {
		r := r
		if r.Index >= 0 && r.Index < n {
			ordered[r.Index] = &r
		}
	}
	return ordered
}

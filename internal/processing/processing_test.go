package processing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lgbarn/mindflayer-go/internal/chess"
	"github.com/lgbarn/mindflayer-go/internal/config"
	"github.com/lgbarn/mindflayer-go/internal/eco"
	"github.com/lgbarn/mindflayer-go/internal/engine"
	"github.com/lgbarn/mindflayer-go/internal/errors"
	"github.com/lgbarn/mindflayer-go/internal/matching"
	"github.com/lgbarn/mindflayer-go/internal/testutil"
)

const (
	scholarsMate  = "e2e4 e7e5 f1c4 b8c6 d1h5 g8f6 h5f7"
	loydStalemate = "e2e3 a7a5 d1h5 a8a6 h5a5 h7h5 h2h4 a6h6 a5c7 f7f6 " +
		"c7d7 e8f7 d7b7 d8d3 b7b8 d3h7 b8c8 f7g6 c8e6"
)

func gameOf(number int, moves string) *chess.Game {
	return &chess.Game{Number: number, Moves: strings.Fields(moves), Source: "test.txt", Line: uint(number)}
}

func newTestAnalyzer(cfg *config.Config) *Analyzer {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return NewAnalyzer(zerolog.Nop(), cfg)
}

func TestReplay(t *testing.T) {
	tests := []struct {
		name  string
		moves string
		plies int
		state engine.GameState
	}{
		{"empty", "", 0, engine.InProgress},
		{"opening", "e2e4 e7e5 g1f3", 3, engine.InProgress},
		{"scholars mate", scholarsMate, 7, engine.Checkmate},
		{"stalemate", loydStalemate, 19, engine.Stalemate},
		{"check", "e2e4 e7e5 d2d4 f8b4", 4, engine.Check},
	}

	a := newTestAnalyzer(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ga := a.Replay(gameOf(1, tt.moves))
			testutil.AssertNoError(t, ga.Err)
			testutil.AssertTrue(t, ga.Complete(), "game should be complete")
			testutil.AssertEqual(t, ga.Plies, tt.plies)
			testutil.AssertEqual(t, ga.State, tt.state)
			testutil.AssertEqual(t, ga.Rejected, engine.Done)
		})
	}
}

func TestReplay_FinalPosition(t *testing.T) {
	ga := newTestAnalyzer(nil).Replay(gameOf(1, "e2e4"))

	p, ok := ga.Final.SquareAt(chess.MustParseSquare("e4"))
	testutil.AssertTrue(t, ok, "e4 should be occupied")
	testutil.AssertEqual(t, p.Kind, chess.Pawn)
	testutil.AssertEqual(t, p.Colour, chess.White)
	testutil.AssertEqual(t, ga.Final.ToMove(), chess.Black)
	if ga.Hash == 0 {
		t.Error("Hash should be set")
	}
}

func TestReplay_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		moves  string
		plies  int
		status engine.MoveStatus
		want   error
		text   string
	}{
		{"unreachable square", "e2e5", 0, engine.IllegalMove, errors.ErrMoveNotFound, "e2e5"},
		{"wrong side", "e2e4 d2d4", 1, engine.IllegalMove, errors.ErrMoveNotFound, "d2d4"},
		{"malformed", "e2e4 zz", 1, engine.IllegalMove, errors.ErrParseFailure, "zz"},
		{"bad square", "e2e4 e7e9", 1, engine.IllegalMove, errors.ErrInvalidSquare, "e7e9"},
		{"ignores check", "e2e4 e7e5 d2d4 f8b4 a2a3", 4, engine.LeavesPlayerInCheck, errors.ErrSelfCheck, "a2a3"},
		{"after mate", scholarsMate + " e8e6", 7, engine.IllegalMove, errors.ErrMoveNotFound, "e8e6"},
	}

	a := newTestAnalyzer(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ga := a.Replay(gameOf(3, tt.moves))
			testutil.AssertFalse(t, ga.Complete(), "game should be incomplete")
			testutil.AssertEqual(t, ga.Plies, tt.plies)
			testutil.AssertEqual(t, ga.Rejected, tt.status)
			testutil.AssertErrorIs(t, ga.Err, tt.want)

			var gerr *errors.GameError
			if !errors.As(ga.Err, &gerr) {
				t.Fatalf("Err %T is not *GameError", ga.Err)
			}
			testutil.AssertEqual(t, gerr.GameNum, 3)
			testutil.AssertEqual(t, gerr.PlyNum, tt.plies+1)
			testutil.AssertEqual(t, gerr.MoveText, tt.text)
			testutil.AssertEqual(t, gerr.File, "test.txt")
		})
	}
}

func TestReplay_Tally(t *testing.T) {
	tests := []struct {
		name  string
		moves string
		check func(t *testing.T, ga *GameAnalysis)
	}{
		{
			name:  "scholars mate",
			moves: scholarsMate,
			check: func(t *testing.T, ga *GameAnalysis) {
				testutil.AssertEqual(t, ga.Captures, 1)
				testutil.AssertEqual(t, ga.Checks, 1)
			},
		},
		{
			name:  "castle",
			moves: "e2e4 e7e5 g1f3 b8c6 f1c4 g8f6 e1g1",
			check: func(t *testing.T, ga *GameAnalysis) {
				testutil.AssertEqual(t, ga.Castles, 1)
				testutil.AssertTrue(t, ga.Final.Player(chess.White).IsCastled(), "white should have castled")
			},
		},
		{
			name:  "en passant",
			moves: "e2e4 a7a6 e4e5 d7d5 e5d6",
			check: func(t *testing.T, ga *GameAnalysis) {
				testutil.AssertEqual(t, ga.EnPassant, 1)
				testutil.AssertEqual(t, ga.Captures, 1)
			},
		},
		{
			name:  "promotion",
			moves: "a2a4 b7b5 a4b5 a7a6 b5a6 c8b7 a6b7 g8f6 b7a8q",
			check: func(t *testing.T, ga *GameAnalysis) {
				testutil.AssertEqual(t, ga.Promotions, 1)
				testutil.AssertEqual(t, ga.Captures, 4)
				p, _ := ga.Final.SquareAt(chess.MustParseSquare("a8"))
				testutil.AssertEqual(t, p.Kind, chess.Queen)
			},
		},
	}

	a := newTestAnalyzer(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ga := a.Replay(gameOf(1, tt.moves))
			testutil.AssertNoError(t, ga.Err)
			tt.check(t, ga)
		})
	}
}

// failAt is a PositionChecker that fails once the given ply is reached.
type failAt struct {
	ply   int
	calls int
}

func (f *failAt) Check(pos *engine.Position) error {
	f.calls++
	if f.calls >= f.ply {
		return fmt.Errorf("ply %d: %w", f.calls, errors.ErrVerifyMismatch)
	}
	return nil
}

func TestReplay_Checker(t *testing.T) {
	checker := &failAt{ply: 2}
	ga := newTestAnalyzer(nil).WithChecker(checker).Replay(gameOf(1, "e2e4 e7e5 g1f3"))

	testutil.AssertNoError(t, ga.Err)
	testutil.AssertEqual(t, ga.Plies, 3)
	testutil.AssertEqual(t, checker.calls, 2)
	testutil.AssertErrorIs(t, ga.VerifyErr, errors.ErrVerifyMismatch)

	var gerr *errors.GameError
	if !errors.As(ga.VerifyErr, &gerr) {
		t.Fatalf("VerifyErr %T is not *GameError", ga.VerifyErr)
	}
	testutil.AssertEqual(t, gerr.PlyNum, 2)
}

func TestMatches(t *testing.T) {
	broken := fmt.Errorf("broken: %w", errors.ErrIllegalMove)

	tests := []struct {
		name string
		cfg  *config.Config
		ga   GameAnalysis
		want bool
	}{
		{"default", config.NewConfig(), GameAnalysis{State: engine.InProgress}, true},
		{"broken kept", config.NewConfig(), GameAnalysis{Err: broken}, true},
		{
			name: "broken dropped",
			cfg: func() *config.Config {
				cfg := config.NewConfig()
				cfg.Filter.KeepBrokenGames = false
				return cfg
			}(),
			ga:   GameAnalysis{Err: broken},
			want: false,
		},
		{"within plies", config.NewConfigBuilder().WithPlyBounds(2, 10).Build(), GameAnalysis{Plies: 10}, true},
		{"below plies", config.NewConfigBuilder().WithPlyBounds(2, 10).Build(), GameAnalysis{Plies: 1}, false},
		{"above plies", config.NewConfigBuilder().WithPlyBounds(2, 10).Build(), GameAnalysis{Plies: 11}, false},
		{"checkmate match", config.NewConfigBuilder().WithCheckmateFilter(true).Build(), GameAnalysis{State: engine.Checkmate}, true},
		{"checkmate miss", config.NewConfigBuilder().WithCheckmateFilter(true).Build(), GameAnalysis{State: engine.Stalemate}, false},
		{"excluded by matcher", config.NewConfig(), GameAnalysis{Excluded: true}, false},
		{
			name: "opening prefix",
			cfg: func() *config.Config {
				cfg := config.NewConfig()
				cfg.Filter.ECOPrefix = "C5"
				return cfg
			}(),
			ga:   GameAnalysis{Opening: &eco.ECOEntry{ECOCode: "C50"}},
			want: true,
		},
		{
			name: "opening prefix miss",
			cfg: func() *config.Config {
				cfg := config.NewConfig()
				cfg.Filter.ECOPrefix = "B"
				return cfg
			}(),
			ga:   GameAnalysis{Opening: &eco.ECOEntry{ECOCode: "C50"}},
			want: false,
		},
		{
			name: "opening prefix unclassified",
			cfg: func() *config.Config {
				cfg := config.NewConfig()
				cfg.Filter.ECOPrefix = "C"
				return cfg
			}(),
			ga:   GameAnalysis{},
			want: false,
		},
		{
			name: "either terminal",
			cfg:  config.NewConfigBuilder().WithCheckmateFilter(true).WithStalemateFilter(true).Build(),
			ga:   GameAnalysis{State: engine.Stalemate},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ga := tt.ga
			testutil.AssertEqual(t, newTestAnalyzer(tt.cfg).Matches(&ga), tt.want)
		})
	}
}

func TestReplay_Matcher(t *testing.T) {
	vm := matching.NewVariationMatcher()
	vm.AddMoveSequence([]string{"d1h5", "g8f6"})
	a := newTestAnalyzer(nil).WithMatcher(vm)

	ga := a.Replay(gameOf(1, scholarsMate))
	testutil.AssertFalse(t, ga.Excluded)
	testutil.AssertTrue(t, a.Matches(ga))

	ga = a.Replay(gameOf(2, loydStalemate))
	testutil.AssertTrue(t, ga.Excluded)
	testutil.AssertFalse(t, a.Matches(ga))

	// Moves after a rejected one are never matched.
	ga = a.Replay(gameOf(3, "e2e4 e7e5 f1c4 b8c6 e1e3 d1h5 g8f6"))
	testutil.AssertTrue(t, ga.Excluded)
}

func TestReplay_MaterialMatcher(t *testing.T) {
	a := newTestAnalyzer(nil).WithMatcher(matching.NewMaterialMatcher("KQRRBBNNPPPPPPPP:kqrrbbnnppppppp", true))
	testutil.AssertFalse(t, a.Replay(gameOf(1, scholarsMate)).Excluded, "h5f7 takes a pawn")
	testutil.AssertTrue(t, a.Replay(gameOf(2, "e2e4 e7e5")).Excluded)
}

func TestReplay_Book(t *testing.T) {
	book := eco.NewECOClassifier()
	err := book.LoadFromReader(strings.NewReader("C20 King's Pawn Game: e2e4 e7e5\nC23 Bishop's Opening: e2e4 e7e5 f1c4\n"))
	testutil.AssertNoError(t, err)
	a := newTestAnalyzer(nil).WithBook(book)

	ga := a.Replay(gameOf(1, scholarsMate))
	if ga.Opening == nil {
		t.Fatal("Opening = nil; want C23")
	}
	testutil.AssertEqual(t, ga.Opening.ECOCode, "C23")

	testutil.AssertTrue(t, a.Replay(gameOf(2, "d2d4")).Opening == nil)
}

func TestNewAnalyzer_NilFilter(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Filter = nil
	a := NewAnalyzer(zerolog.Nop(), cfg)
	testutil.AssertTrue(t, a.Matches(&GameAnalysis{}), "nil filter should match everything")
}

func TestSummary(t *testing.T) {
	a := newTestAnalyzer(nil)
	s := NewSummary()
	for i, moves := range []string{scholarsMate, loydStalemate, "e2e4", "e2e5"} {
		s.Add(a.Replay(gameOf(i+1, moves)))
	}

	testutil.AssertEqual(t, s.Games, 4)
	testutil.AssertEqual(t, s.Broken, 1)
	testutil.AssertEqual(t, s.Plies, 7+19+1)
	testutil.AssertEqual(t, s.Count(engine.Checkmate), 1)
	testutil.AssertEqual(t, s.Count(engine.Stalemate), 1)
	testutil.AssertEqual(t, s.Count(engine.InProgress), 2)
}

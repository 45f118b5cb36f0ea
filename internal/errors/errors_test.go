package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	sentinels := []error{
		ErrIllegalMove, ErrSelfCheck, ErrMoveNotFound, ErrMissingKing,
		ErrInvalidSquare, ErrParseFailure, ErrInvalidConfig, ErrDuplicateGame,
	}
	for _, sentinel := range sentinels {
		t.Run(sentinel.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("replaying game: %w", sentinel)
			if !errors.Is(wrapped, sentinel) {
				t.Errorf("errors.Is(wrapped, %v) = false, want true", sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrIllegalMove, ErrSelfCheck) || errors.Is(ErrSelfCheck, ErrIllegalMove) {
		t.Error("ErrIllegalMove and ErrSelfCheck must be distinguishable")
	}
}

// TestGameError_Error verifies the error message format
func TestGameError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *GameError
		contains []string
	}{
		{
			name: "full context",
			err: &GameError{
				Err:      ErrSelfCheck,
				GameNum:  5,
				PlyNum:   12,
				MoveText: "e1e2",
				File:     "games.txt",
				Line:     42,
			},
			contains: []string{"game 5", "ply 12", "e1e2", "games.txt:42", "leaves king in check"},
		},
		{
			name: "minimal context",
			err: &GameError{
				Err:     ErrParseFailure,
				GameNum: 1,
			},
			contains: []string{"game 1", "parse failure"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("GameError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestGameError_As verifies that errors.As works with GameError
func TestGameError_As(t *testing.T) {
	gameErr := &GameError{
		Err:      ErrIllegalMove,
		GameNum:  3,
		PlyNum:   24,
		MoveText: "e1c1",
	}
	wrapped := fmt.Errorf("processing failed: %w", gameErr)

	var extracted *GameError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract GameError")
	}
	if extracted.PlyNum != 24 {
		t.Errorf("extracted.PlyNum = %d, want 24", extracted.PlyNum)
	}
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("errors.Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

// TestParseError verifies ParseError formatting and unwrapping
func TestParseError(t *testing.T) {
	err := &ParseError{
		Err:      ErrParseFailure,
		File:     "games.txt",
		Line:     100,
		Column:   15,
		Expected: "coordinate move",
		Got:      "Nf3",
	}

	msg := err.Error()
	for _, s := range []string{"games.txt:100:15", "expected coordinate move, got Nf3"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("ParseError.Error() = %q, should contain %q", msg, s)
		}
	}
	if !errors.Is(err, ErrParseFailure) {
		t.Error("errors.Is(parseErr, ErrParseFailure) = false, want true")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) != nil")
	}
	wrapped := Wrapf(ErrMissingKing, "side %s", "White")
	if !errors.Is(wrapped, ErrMissingKing) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if got := wrapped.Error(); got != "side White: missing king" {
		t.Errorf("Wrapf().Error() = %q, want %q", got, "side White: missing king")
	}
}

func TestIsRejectedMove(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{ErrIllegalMove, true},
		{Wrap(ErrSelfCheck, "e1e2"), true},
		{&GameError{Err: ErrMoveNotFound}, true},
		{ErrParseFailure, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := IsRejectedMove(tt.err); got != tt.want {
			t.Errorf("IsRejectedMove(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

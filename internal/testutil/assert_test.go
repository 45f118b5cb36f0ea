package testutil

import (
	"errors"
	"fmt"
	"testing"
)

// Failure paths need a fake testing.TB, so these exercise the passing cases
// and the message formatting directly.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "e2e4", "e2e4")
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, 20, 20, "moves from %s", "start")
}

func TestAssertSameElements(t *testing.T) {
	AssertSameElements(t, []string{"e2e4", "d2d4", "g1f3"}, []string{"g1f3", "e2e4", "d2d4"})
	AssertSameElements(t, nil, []string{})
}

func TestAssertErrorIs(t *testing.T) {
	base := errors.New("base")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", base), base)
	AssertNoError(t, nil)
}

func TestAssertBooleans(t *testing.T) {
	AssertTrue(t, len("e2e4") == 4)
	AssertFalse(t, len("e2e4") == 5)
	AssertContains(t, "illegal move: e2e5", "e2e5")
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"plain string", []interface{}{"depth"}, "depth"},
		{"format", []interface{}{"depth %d", 3}, "depth 3"},
		{"non-string", []interface{}{42}, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestPrefix(t *testing.T) {
	if got := prefix(); got != "" {
		t.Errorf("prefix() = %q, want empty", got)
	}
	if got := prefix("game %d", 2); got != "game 2: " {
		t.Errorf("prefix() = %q, want %q", got, "game 2: ")
	}
}

// Package parser reads games written as coordinate move lists: one game
// per line, moves such as "e2e4" or "e7e8q", with optional move numbers,
// a trailing result and "#" comments.
package parser

// TokenType represents the type of a lexical token.
type TokenType int

const (
	EOFToken TokenType = iota
	EOLToken
	MoveToken
	MoveNumber
	ResultToken
	ErrorToken
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	EOFToken:    "EOF",
	EOLToken:    "EOL",
	MoveToken:   "MOVE",
	MoveNumber:  "MOVE_NUMBER",
	ResultToken: "RESULT",
	ErrorToken:  "ERROR_TOKEN",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token represents a lexical token with its value.
type Token struct {
	Type TokenType

	// Text is the token as written, without any check suffix
	Text string

	// Line and column for error reporting
	Line   uint
	Column uint
}

// results lists the game termination markers.
var results = map[string]bool{
	"1-0":     true,
	"0-1":     true,
	"1/2-1/2": true,
	"*":       true,
}

package parser

import (
	"bufio"
	"io"
	"strings"
)

// Lexer tokenizes move-list input a line at a time.
type Lexer struct {
	reader  *bufio.Reader
	line    string
	pos     int
	lineNum uint
	loaded  bool
}

// Character classification tables
var (
	fileChars [256]bool
	rankChars [256]bool
	promoChar [256]bool
)

func init() {
	for c := byte('a'); c <= 'h'; c++ {
		fileChars[c] = true
		fileChars[c-32] = true
	}
	for c := byte('1'); c <= '8'; c++ {
		rankChars[c] = true
	}
	for _, c := range []byte("qrbnQRBN") {
		promoChar[c] = true
	}
}

// NewLexer creates a new lexer for the given reader.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{reader: bufio.NewReader(r)}
}

// LineNumber returns the number of the line being read.
func (l *Lexer) LineNumber() uint {
	return l.lineNum
}

// readLine reads the next line from input.
func (l *Lexer) readLine() bool {
	text, err := l.reader.ReadString('\n')
	if err != nil && text == "" {
		return false
	}
	l.line = strings.TrimRight(text, "\r\n")
	l.pos = 0
	l.lineNum++
	l.loaded = true
	return true
}

// NextToken returns the next token. Every input line ends with an EOLToken;
// comments run from '#' to the end of the line and produce no token.
func (l *Lexer) NextToken() *Token {
	if !l.loaded && !l.readLine() {
		return &Token{Type: EOFToken, Line: l.lineNum}
	}

	for l.pos < len(l.line) && isSpace(l.line[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.line) || l.line[l.pos] == '#' {
		l.loaded = false
		return &Token{Type: EOLToken, Line: l.lineNum, Column: uint(l.pos + 1)}
	}

	start := l.pos
	for l.pos < len(l.line) && !isSpace(l.line[l.pos]) && l.line[l.pos] != '#' {
		l.pos++
	}
	word := l.line[start:l.pos]
	tok := &Token{Line: l.lineNum, Column: uint(start + 1)}

	if n := moveNumberPrefix(word); n > 0 {
		// "12." glued to a move: return the number and resume after it
		l.pos = start + n
		tok.Type, tok.Text = MoveNumber, word[:n]
		return tok
	}

	switch {
	case results[word]:
		tok.Type, tok.Text = ResultToken, word
	case isCoordinateMove(strings.TrimRight(word, "+")):
		tok.Type, tok.Text = MoveToken, strings.TrimRight(word, "+")
	default:
		tok.Type, tok.Text = ErrorToken, word
	}
	return tok
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// moveNumberPrefix returns the length of a leading "12." or "12..." move
// number, or 0 when word does not start with one. A bare number with no
// dots also counts unless it is a result such as "1-0".
func moveNumberPrefix(word string) int {
	i := 0
	for i < len(word) && word[i] >= '0' && word[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0
	}
	j := i
	for j < len(word) && word[j] == '.' {
		j++
	}
	if j == i && j != len(word) {
		return 0
	}
	return j
}

// isCoordinateMove reports whether word has the form e2e4, e2-e4 or e7e8q.
func isCoordinateMove(word string) bool {
	s := strings.Replace(word, "-", "", 1)
	if len(s) != 4 && len(s) != 5 {
		return false
	}
	if !fileChars[s[0]] || !rankChars[s[1]] || !fileChars[s[2]] || !rankChars[s[3]] {
		return false
	}
	return len(s) == 4 || promoChar[s[4]]
}

package chess

// Game is a game read from input: the moves in coordinate form ("e2e4",
// "e7e8q") to be replayed from the initial position.
type Game struct {
	// 1-based number of the game in its input.
	Number int

	// The move texts in the order they were played.
	Moves []string

	// Line number of the game in the input file.
	Line uint

	// Name of the input the game came from, if known.
	Source string

	// Result token found after the moves ("1-0", "*", ...), if any.
	Result string
}

// NewGame creates a new empty game.
func NewGame(number int) *Game {
	return &Game{Number: number}
}

// AppendMove adds a move text to the game.
func (g *Game) AppendMove(text string) {
	g.Moves = append(g.Moves, text)
}

// PlyCount returns the number of half-moves in the game.
func (g *Game) PlyCount() int {
	return len(g.Moves)
}

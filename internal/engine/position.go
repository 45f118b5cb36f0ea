// Package engine implements the chess rules: move generation, move
// execution, legality filtering and game state classification.
package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/mindflayer-go/internal/chess"
)

// colours lists both sides in the order positions evaluate them.
var colours = [...]chess.Colour{chess.White, chess.Black}

// Position is a board together with everything derived from it: the piece
// sets, pseudo-legal moves and Player of each side. A Position is computed
// once in NewPosition and never changes, so it may be shared between
// goroutines without locking.
type Position struct {
	board   chess.Board
	pieces  [chess.NumColours][]chess.Piece
	pseudo  [chess.NumColours][]chess.Move
	players [chess.NumColours]*Player
}

// NewPosition derives a Position from board. It fails with ErrMissingKing
// unless each side has exactly one king.
func NewPosition(board chess.Board) (*Position, error) {
	pos := &Position{board: board}
	for _, c := range colours {
		pos.pieces[c] = board.Pieces(c)
		pos.pseudo[c] = generateAll(&pos.board, c)
	}
	for _, c := range colours {
		player, err := newPlayer(pos, c)
		if err != nil {
			return nil, err
		}
		pos.players[c] = player
	}
	return pos, nil
}

// NewInitialPosition returns the standard starting position.
func NewInitialPosition() *Position {
	pos, err := NewPosition(chess.NewInitialBoard())
	if err != nil {
		panic(err)
	}
	return pos
}

// Board returns a copy of the underlying board.
func (p *Position) Board() chess.Board {
	return p.board
}

// SquareAt returns the piece on sq and whether the square is occupied.
func (p *Position) SquareAt(sq chess.Square) (chess.Piece, bool) {
	return p.board.SquareAt(sq)
}

// ToMove returns the colour of the side to move.
func (p *Position) ToMove() chess.Colour {
	return p.board.ToMove()
}

// EnPassantPawn returns the pawn that may be captured en passant, if any.
func (p *Position) EnPassantPawn() (chess.Piece, bool) {
	return p.board.EnPassantPawn()
}

// Pieces returns the pieces of one colour.
func (p *Position) Pieces(c chess.Colour) []chess.Piece {
	return slices.Clone(p.pieces[c])
}

// PseudoLegalMoves returns the moves of one colour before king-safety
// filtering. Castles are not included.
func (p *Position) PseudoLegalMoves(c chess.Colour) []chess.Move {
	return slices.Clone(p.pseudo[c])
}

// LegalMovesFor returns the legal moves of one colour, castles included.
func (p *Position) LegalMovesFor(c chess.Colour) []chess.Move {
	return p.players[c].LegalMoves()
}

// Player returns the Player of one colour.
func (p *Position) Player(c chess.Colour) *Player {
	return p.players[c]
}

// CurrentPlayer returns the Player of the side to move.
func (p *Position) CurrentPlayer() *Player {
	return p.players[p.ToMove()]
}

// Opponent returns the Player of the side not to move.
func (p *Position) Opponent() *Player {
	return p.players[p.ToMove().Opposite()]
}

// String renders the board.
func (p *Position) String() string {
	return p.board.String()
}

// generateAll returns the pseudo-legal moves of every piece of one colour.
func generateAll(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, piece := range board.Pieces(colour) {
		moves = append(moves, GeneratePseudoLegalMoves(piece, board)...)
	}
	return moves
}

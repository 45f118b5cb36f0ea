package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/mindflayer-go/internal/chess"
	"github.com/lgbarn/mindflayer-go/internal/errors"
)

// Player is one side of a Position: its king, its legal moves and whether
// it is in check.
type Player struct {
	colour     chess.Colour
	king       chess.Piece
	candidates []chess.Move
	legal      []chess.Move
	inCheck    bool
	castled    bool
}

// newPlayer evaluates one side of pos. It requires the pseudo-legal moves of
// both sides to be present already.
func newPlayer(pos *Position, colour chess.Colour) (*Player, error) {
	king, err := soleKing(pos.pieces[colour], colour)
	if err != nil {
		return nil, err
	}

	inCheck := len(attacksOnSquare(king.Square, pos.pseudo[colour.Opposite()])) > 0
	castles := calculateKingCastles(&pos.board, king, inCheck)

	legal := filterLegal(&pos.board, pos.pseudo[colour])
	legal = append(legal, castles...)

	candidates := make([]chess.Move, 0, len(pos.pseudo[colour])+len(castles))
	candidates = append(candidates, pos.pseudo[colour]...)
	candidates = append(candidates, castles...)

	return &Player{
		colour:     colour,
		king:       king,
		candidates: candidates,
		legal:      legal,
		inCheck:    inCheck,
		castled:    pos.board.HasCastled(colour),
	}, nil
}

// soleKing returns the single king among pieces.
func soleKing(pieces []chess.Piece, colour chess.Colour) (chess.Piece, error) {
	var king chess.Piece
	count := 0
	for _, p := range pieces {
		if p.Kind == chess.King {
			king = p
			count++
		}
	}
	if count != 1 {
		return chess.Piece{}, errors.Wrapf(errors.ErrMissingKing, "%s has %d kings", colour, count)
	}
	return king, nil
}

// filterLegal keeps the moves that do not leave the mover's king attacked.
func filterLegal(board *chess.Board, moves []chess.Move) []chess.Move {
	legal := make([]chess.Move, 0, len(moves))
	for _, m := range moves {
		next := executeBoard(board, m)
		if !kingAttacked(&next, m.Piece.Colour) {
			legal = append(legal, m)
		}
	}
	return legal
}

// Colour returns the side this player moves.
func (p *Player) Colour() chess.Colour {
	return p.colour
}

// King returns the player's king.
func (p *Player) King() chess.Piece {
	return p.king
}

// LegalMoves returns the player's legal moves, castles last.
func (p *Player) LegalMoves() []chess.Move {
	return slices.Clone(p.legal)
}

// IsMoveLegal reports whether m is one of the player's legal moves.
func (p *Player) IsMoveLegal(m chess.Move) bool {
	return slices.Contains(p.legal, m)
}

// IsInCheck reports whether an opposing move lands on the player's king.
func (p *Player) IsInCheck() bool {
	return p.inCheck
}

// IsInCheckmate reports whether the player is in check with no legal move.
func (p *Player) IsInCheckmate() bool {
	return p.inCheck && len(p.legal) == 0
}

// IsInStalemate reports whether the player is not in check but has no legal
// move.
func (p *Player) IsInStalemate() bool {
	return !p.inCheck && len(p.legal) == 0
}

// IsCastled reports whether the player has castled earlier in the game.
func (p *Player) IsCastled() bool {
	return p.castled
}

// isCandidate reports whether m is pseudo-legal for the player or one of
// its castles.
func (p *Player) isCandidate(m chess.Move) bool {
	return slices.Contains(p.candidates, m)
}

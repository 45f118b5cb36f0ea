package engine

import "github.com/lgbarn/mindflayer-go/internal/chess"

// Execute applies m to pos and returns the resulting position. Execute does
// not check legality; use MakeMove or AttemptMove for validated play.
// Executing the null move panics.
func Execute(pos *Position, m chess.Move) (*Position, error) {
	next := executeBoard(&pos.board, m)
	return NewPosition(next)
}

// executeBoard builds the board that results from playing m on board. Every
// piece not involved in the move is copied forward unchanged.
func executeBoard(board *chess.Board, m chess.Move) chess.Board {
	switch m.Class {
	case chess.NoMove:
		panic("engine: attempt to execute the null move")
	case chess.Promotion:
		return executePromotion(board, m)
	}

	mover := m.Piece.Colour
	b := chess.NewBuilder()

	for _, p := range board.Pieces(mover) {
		if p == m.Piece || (m.IsCastle() && p == m.Rook) {
			continue
		}
		b.SetPiece(p)
	}
	for _, p := range board.Pieces(mover.Opposite()) {
		if m.IsCapture() && p == m.Captured {
			continue
		}
		b.SetPiece(p)
	}

	moved := m.Piece.MoveTo(m.To)
	b.SetPiece(moved)

	b.SetCastled(chess.White, board.HasCastled(chess.White))
	b.SetCastled(chess.Black, board.HasCastled(chess.Black))
	if m.IsCastle() {
		b.SetPiece(m.Rook.MoveTo(m.RookTo))
		b.SetCastled(mover, true)
	}

	b.SetMoveMaker(mover.Opposite())
	if m.Class == chess.PawnJump {
		b.SetEnPassantPawn(moved)
	}
	return b.Build()
}

// executePromotion plays the wrapped pawn move, then replaces the pawn on
// its destination with a new piece of the promoted kind.
func executePromotion(board *chess.Board, m chess.Move) chess.Board {
	next := executeBoard(board, m.Inner())
	kind := m.PromoteTo
	if kind == chess.NoKind {
		kind = defaultPromotion
	}
	promoted := chess.NewPiece(kind, m.Piece.Colour, m.To).MoveTo(m.To)
	return chess.NewBuilderFrom(next).SetPiece(promoted).Build()
}

package bots

import "idiotchess/board"

// NewbornBot always plays the first legal move in board scan order.
type NewbornBot struct{}

func NewNewbornBot() *NewbornBot {
	return &NewbornBot{}
}

func (b *NewbornBot) DecideMove(pos *board.Board) (board.Move, bool) {
	moves := pos.LegalMoves(pos.Turn())
	if len(moves) > 0 {
		return moves[0], true
	}
	return board.Move{}, false
}

func (b *NewbornBot) Name() string {
	return "Newborn"
}

package bots

import "idiotchess/board"

// GreedyBot grabs the most valuable capture, preferring central squares.
type GreedyBot struct {
	search *Search
}

func NewGreedyBot(seed int64) *GreedyBot {
	return &GreedyBot{search: NewSearch(seed)}
}

func (b *GreedyBot) DecideMove(pos *board.Board) (board.Move, bool) {
	return b.search.FindGreedyMove(pos, pos.Turn())
}

func (b *GreedyBot) Name() string {
	return "Greedy Bot"
}

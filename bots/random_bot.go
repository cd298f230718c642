package bots

import (
	"math/rand"

	"idiotchess/board"
)

// RandomBot plays a uniformly random legal move.
type RandomBot struct {
	rng *rand.Rand
}

func NewRandomBot(seed int64) *RandomBot {
	return &RandomBot{rng: rand.New(rand.NewSource(seed))}
}

func (b *RandomBot) DecideMove(pos *board.Board) (board.Move, bool) {
	moves := pos.LegalMoves(pos.Turn())
	if len(moves) == 0 {
		return board.Move{}, false
	}
	return moves[b.rng.Intn(len(moves))], true
}

func (b *RandomBot) Name() string {
	return "Random Bot"
}

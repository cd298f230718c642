// bot.go
package bots

import (
	"idiotchess/board"
)

// ChessBot интерфейс для всех ботов. DecideMove picks a move for the side to
// move without touching b; ok is false exactly when that side has no legal
// move.
type ChessBot interface {
	DecideMove(b *board.Board) (move board.Move, ok bool)
	Name() string
}

// EvalFunc scores b from c's point of view; higher is better for c.
type EvalFunc func(b *board.Board, c board.Color) float64

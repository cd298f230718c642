package bots

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"idiotchess/board"
)

type MinimaxBot struct {
	Depth     int
	TimeLimit time.Duration
	NodeLimit int
	Evaluator EvalFunc
	EvalName  string
	Logger    zerolog.Logger

	search *Search
}

// NewMinimaxBot builds a material-only minimax bot. TimeLimit 0 means no
// limit.
func NewMinimaxBot(depth int, timeLimit time.Duration, seed int64) *MinimaxBot {
	return &MinimaxBot{
		Depth:     depth,
		TimeLimit: timeLimit,
		Evaluator: Material,
		EvalName:  "material",
		Logger:    zerolog.Nop(),
		search:    NewSearch(seed),
	}
}

func (b *MinimaxBot) Name() string {
	if b.EvalName == "" || b.EvalName == "material" {
		return fmt.Sprintf("Minimax Bot (depth %d)", b.Depth)
	}
	return fmt.Sprintf("Minimax Bot (depth %d, %s)", b.Depth, b.EvalName)
}

func (b *MinimaxBot) DecideMove(pos *board.Board) (board.Move, bool) {
	if pos == nil {
		return board.Move{}, false
	}
	start := time.Now()
	b.search.NodeLimit = b.NodeLimit
	b.search.Deadline = time.Time{}
	if b.TimeLimit > 0 {
		b.search.Deadline = start.Add(b.TimeLimit)
	}

	color := pos.Turn()
	if b.Depth <= 0 {
		return b.search.FindGreedyMove(pos, color)
	}
	if pos.IsCheckmate(color) {
		return board.Move{}, false
	}
	scored := b.search.ScoreMoves(pos, color, b.Depth, b.Evaluator)
	ties := BestTies(scored)
	move, ok := b.search.pick(scored)
	if ok {
		b.Logger.Debug().
			Str("bot", b.Name()).
			Stringer("color", color).
			Stringer("move", move).
			Float64("score", ties[0].Score).
			Int("ties", len(ties)).
			Int("scored", len(scored)).
			Int("nodes", b.search.Nodes()).
			Dur("elapsed", time.Since(start)).
			Msg("move decided")
	}
	return move, ok
}

package arena

import (
	"context"
	"fmt"

	"idiotchess/board"
	"idiotchess/bots"
)

// PlayGame plays white against black from a copy of start until the game is
// decided by the rules or maxPlies moves have been made.
func PlayGame(ctx context.Context, white, black bots.ChessBot, start *board.Board, maxPlies int) (GameRecord, error) {
	var rec = GameRecord{
		Opening: start.FEN(),
		White:   white.Name(),
		Black:   black.Name(),
		Result:  Draw,
	}
	var b = start.Clone()
	for {
		if err := ctx.Err(); err != nil {
			return rec, err
		}
		var side = b.Turn()
		if b.IsCheckmate(side) {
			rec.Result = WhiteWins
			if side == board.White {
				rec.Result = BlackWins
			}
			rec.Reason = "checkmate"
			break
		}
		if reason := b.DrawReason(side); reason != board.NoDraw {
			rec.Reason = reason.String()
			break
		}
		if maxPlies > 0 && len(rec.Moves) >= maxPlies {
			rec.Reason = ReasonPlyLimit
			break
		}

		var bot = white
		if side == board.Black {
			bot = black
		}
		m, ok := bot.DecideMove(b)
		if !ok {
			return rec, fmt.Errorf("%s found no move in %s", bot.Name(), b.FEN())
		}
		if err := b.Apply(m, true); err != nil {
			return rec, fmt.Errorf("%s: %w", bot.Name(), err)
		}
		rec.Moves = append(rec.Moves, m)
	}
	rec.FinalFEN = b.FEN()
	return rec, nil
}

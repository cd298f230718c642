package arena

import (
	"fmt"

	"idiotchess/board"
)

type Result int

const (
	Draw Result = iota
	WhiteWins
	BlackWins
)

func (r Result) String() string {
	switch r {
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	}
	return "1/2-1/2"
}

// Reason for a game ending on the ply limit rather than by the rules.
const ReasonPlyLimit = "ply limit"

type GameRecord struct {
	Number   int
	Opening  string
	White    string
	Black    string
	AIsWhite bool
	Result   Result
	Reason   string
	Moves    []board.Move
	FinalFEN string
}

func (g GameRecord) String() string {
	return fmt.Sprintf("game %d %s vs %s: %v {%s} after %d plies",
		g.Number, g.White, g.Black, g.Result, g.Reason, len(g.Moves))
}

// Config describes a match between bots A and B. A plays white in odd-numbered
// games and each opening is played once with each colour.
type Config struct {
	PlayerA     string
	PlayerB     string
	Games       int
	Concurrency int
	// MaxPlies 0 plays every game out.
	MaxPlies int
	Seed     int64
	// Openings are FEN strings; empty means the standard start position.
	Openings []string
}

type gameInfo struct {
	number   int
	opening  string
	aIsWhite bool
}

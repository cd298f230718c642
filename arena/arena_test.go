package arena

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"

	"idiotchess/board"
)

// scriptedBot plays a fixed list of moves.
type scriptedBot struct {
	moves []string
	next  int
}

func (s *scriptedBot) Name() string { return "scripted" }

func (s *scriptedBot) DecideMove(b *board.Board) (board.Move, bool) {
	if s.next >= len(s.moves) {
		return board.Move{}, false
	}
	var uci = s.moves[s.next]
	s.next++
	from, _ := board.ParsePosition(uci[:2])
	to, _ := board.ParsePosition(uci[2:4])
	return board.Move{From: from, To: to}, true
}

func TestPlayGameCheckmate(t *testing.T) {
	white := &scriptedBot{moves: []string{"f2f3", "g2g4"}}
	black := &scriptedBot{moves: []string{"e7e5", "d8h4"}}
	rec, err := PlayGame(context.Background(), white, black, board.NewStandardBoard(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Result != BlackWins || rec.Reason != "checkmate" || len(rec.Moves) != 4 {
		t.Errorf("got %v", rec)
	}
	if rec.Opening != board.StartFEN {
		t.Errorf("opening %q", rec.Opening)
	}
}

func TestPlayGameDrawReasons(t *testing.T) {
	tests := []struct {
		fen    string
		reason string
	}{
		{"8/8/8/8/8/5k2/5q2/7K w - - 0 1", "stalemate"},
		{"4k3/8/8/8/8/8/8/4K3 w - - 0 1", "insufficient material"},
		{"4k3/8/8/8/8/8/8/R3K3 w - - 100 80", "50-move rule"},
	}
	for _, test := range tests {
		start, err := board.FromFEN(test.fen)
		if err != nil {
			t.Fatal(err)
		}
		rec, err := PlayGame(context.Background(), &scriptedBot{}, &scriptedBot{}, start, 0)
		if err != nil {
			t.Fatal(err)
		}
		if rec.Result != Draw || rec.Reason != test.reason {
			t.Errorf("%s: got %v", test.fen, rec)
		}
	}
}

func TestPlayGamePlyLimit(t *testing.T) {
	white := &scriptedBot{moves: []string{"g1f3", "f3g1"}}
	black := &scriptedBot{moves: []string{"g8f6", "f6g8"}}
	start := board.NewStandardBoard()
	rec, err := PlayGame(context.Background(), white, black, start, 3)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Reason != ReasonPlyLimit || len(rec.Moves) != 3 {
		t.Errorf("got %v", rec)
	}
	if start.FEN() != board.StartFEN {
		t.Error("start position was modified")
	}
}

func TestPlayGameRejectsIllegalMove(t *testing.T) {
	white := &scriptedBot{moves: []string{"e2e5"}}
	_, err := PlayGame(context.Background(), white, &scriptedBot{}, board.NewStandardBoard(), 0)
	var illegal *board.IllegalMoveError
	if !errors.As(err, &illegal) {
		t.Errorf("got %v", err)
	}
}

func TestComputeStats(t *testing.T) {
	s := ComputeStats(1, 0, 1)
	if s.WinningFraction != 0.75 {
		t.Errorf("fraction %v", s.WinningFraction)
	}
	if want := 400 * math.Log10(3); math.Abs(s.EloDifference-want) > 1e-9 {
		t.Errorf("elo %v, want %v", s.EloDifference, want)
	}
	if math.Abs(s.LOS-0.841344746) > 1e-6 {
		t.Errorf("los %v", s.LOS)
	}
	if even := ComputeStats(0, 0, 3); even.EloDifference != 0 || even.LOS != 0.5 {
		t.Errorf("all draws: %+v", even)
	}
}

func TestStatsAdd(t *testing.T) {
	var s Stats
	s = s.add(GameRecord{Result: WhiteWins, AIsWhite: true})
	s = s.add(GameRecord{Result: WhiteWins, AIsWhite: false})
	s = s.add(GameRecord{Result: BlackWins, AIsWhite: false})
	s = s.add(GameRecord{Result: Draw})
	if s.Wins != 2 || s.Losses != 1 || s.Draws != 1 {
		t.Errorf("got %+v", s)
	}
}

func TestRun(t *testing.T) {
	cfg := Config{
		PlayerA:     "greedy",
		PlayerB:     "random",
		Games:       4,
		Concurrency: 2,
		MaxPlies:    40,
		Seed:        1,
		Openings:    DefaultOpenings(),
	}
	stats, err := Run(context.Background(), cfg, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if stats.Games() != 4 {
		t.Errorf("played %d games", stats.Games())
	}
}

func TestRunUnknownBot(t *testing.T) {
	_, err := Run(context.Background(), Config{PlayerA: "nobody", PlayerB: "random", Games: 1}, zerolog.Nop())
	if err == nil {
		t.Error("unknown bot accepted")
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := Config{PlayerA: "random", PlayerB: "random", Games: 10, Concurrency: 2}
	if _, err := Run(ctx, cfg, zerolog.Nop()); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v", err)
	}
}

func TestParseOpenings(t *testing.T) {
	openings, err := ParseOpenings("// comment\n\n" + board.StartFEN + "\n")
	if err != nil || len(openings) != 1 {
		t.Errorf("got %v %v", openings, err)
	}
	if _, err := ParseOpenings("not a fen"); err == nil {
		t.Error("bad FEN accepted")
	}
	if len(DefaultOpenings()) == 0 {
		t.Error("no default openings")
	}
}

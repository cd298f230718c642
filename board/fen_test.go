package board

import (
	"testing"

	"github.com/notnil/chess"
)

var testFENs = []string{
	StartFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
	"4k3/8/8/8/8/8/8/4K2R w K - 0 1",
	"8/8/8/8/8/5k2/5q2/7K w - - 12 60",
}

type squarePair struct{ from, to Position }

func positionFromSquare(s chess.Square) Position {
	return Position{Row: 7 - int(s.Rank()), Col: int(s.File())}
}

// TestLegalMovesMatchReference compares move generation with an independent
// implementation. Promotions collapse to one move per (from, to) pair.
func TestLegalMovesMatchReference(t *testing.T) {
	for _, fen := range testFENs {
		b, err := FromFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		opt, err := chess.FEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		want := make(map[squarePair]bool)
		for _, m := range chess.NewGame(opt).ValidMoves() {
			want[squarePair{positionFromSquare(m.S1()), positionFromSquare(m.S2())}] = true
		}
		got := make(map[squarePair]bool)
		for _, m := range b.LegalMoves(b.Turn()) {
			got[squarePair{m.From, m.To}] = true
		}
		for pair := range want {
			if !got[pair] {
				t.Errorf("%s: missing %v%v", fen, pair.from, pair.to)
			}
		}
		for pair := range got {
			if !want[pair] {
				t.Errorf("%s: extra %v%v", fen, pair.from, pair.to)
			}
		}
	}
}

func perft(b *Board, depth int) int {
	if depth == 0 {
		return 1
	}
	moves := b.LegalMoves(b.Turn())
	if depth == 1 {
		return len(moves)
	}
	nodes := 0
	for _, m := range moves {
		child := b.Clone()
		child.ApplyUnchecked(m)
		nodes += perft(child, depth-1)
	}
	return nodes
}

func TestPerftStartPosition(t *testing.T) {
	want := []int{1, 20, 400, 8902}
	if testing.Short() {
		want = want[:3]
	}
	b := NewStandardBoard()
	for depth, nodes := range want {
		if got := perft(b, depth); got != nodes {
			t.Errorf("perft(%d) = %d, want %d", depth, got, nodes)
		}
	}
}

func TestFENRoundTrip(t *testing.T) {
	for _, fen := range testFENs {
		b, err := FromFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		if got := b.FEN(); got != fen {
			// the full-move number is not carried over
			again, err := FromFEN(got)
			if err != nil {
				t.Fatal(err)
			}
			if again.FEN() != got || again.positionKey() != b.positionKey() {
				t.Errorf("round trip of %q gave %q", fen, got)
			}
		}
	}
	if got := NewStandardBoard().FEN(); got != StartFEN {
		t.Errorf("start fen %q", got)
	}
}

func TestFENAfterDoubleStep(t *testing.T) {
	b := NewStandardBoard()
	b.ApplyMove(sq("e2"), sq("e4"), NoKind)
	want := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	if got := b.FEN(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFromFENEnPassant(t *testing.T) {
	b, err := FromFEN("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
	if err != nil {
		t.Fatal(err)
	}
	if !contains(b.LegalMovesFrom(sq("e5")), "f6") {
		t.Error("en passant from fen missing")
	}
	if contains(b.LegalMovesFrom(sq("e5")), "d6") {
		t.Error("en passant on d6 is expired")
	}
	if !b.ApplyMove(sq("e5"), sq("f6"), NoKind) || !b.IsEmpty(sq("f5")) {
		t.Error("en passant capture from fen failed")
	}
}

func TestFromFENErrors(t *testing.T) {
	for _, fen := range []string{"", "not a fen", "8/8/8/8/8/8/8 w - - 0 1"} {
		if _, err := FromFEN(fen); err == nil {
			t.Errorf("%q accepted", fen)
		}
	}
}

package board

import (
	"sort"
	"testing"
)

func sq(s string) Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return p
}

func place(b *Board, kind Kind, c Color, at string) *Piece {
	p := NewPiece(kind, c)
	b.PlacePiece(p, sq(at))
	return p
}

func squares(ps []Position) []string {
	var res []string
	for _, p := range ps {
		res = append(res, p.String())
	}
	sort.Strings(res)
	return res
}

func sameSquares(got []Position, want ...string) bool {
	g := squares(got)
	sort.Strings(want)
	if len(g) != len(want) {
		return false
	}
	for i := range g {
		if g[i] != want[i] {
			return false
		}
	}
	return true
}

func contains(ps []Position, s string) bool {
	for _, p := range ps {
		if p == sq(s) {
			return true
		}
	}
	return false
}

func TestLoneSliderMobility(t *testing.T) {
	var tests = []struct {
		kind Kind
		want int
	}{
		{Bishop, 13},
		{Rook, 14},
		{Queen, 27},
		{Knight, 8},
	}
	for _, test := range tests {
		b := NewBoard()
		p := NewPiece(test.kind, White)
		b.PlacePiece(p, Position{3, 3})
		if got := len(p.ValidMoves(b)); got != test.want {
			t.Errorf("%v on d5: got %d moves, want %d", test.kind, got, test.want)
		}
	}
}

func TestMovesStayOnBoard(t *testing.T) {
	for _, kind := range []Kind{Pawn, Knight, Bishop, Rook, Queen, King} {
		for _, c := range []Color{White, Black} {
			for row := 0; row < 8; row++ {
				for col := 0; col < 8; col++ {
					b := NewBoard()
					p := NewPiece(kind, c)
					b.PlacePiece(p, Position{row, col})
					for _, to := range p.ValidMoves(b) {
						if !InBounds(to) {
							t.Fatalf("%v %v on %v yields %v", c, kind, p.Pos, to)
						}
					}
				}
			}
		}
	}
}

func TestSliderBlockedAndCaptures(t *testing.T) {
	b := NewBoard()
	rook := place(b, Rook, White, "d4")
	place(b, Pawn, White, "d6")
	place(b, Knight, Black, "f4")
	moves := rook.ValidMoves(b)
	if !sameSquares(moves, "d5", "d3", "d2", "d1", "c4", "b4", "a4", "e4", "f4") {
		t.Errorf("rook moves %v", squares(moves))
	}
}

func TestPawnMoves(t *testing.T) {
	b := NewBoard()
	p := place(b, Pawn, White, "e2")
	if moves := p.ValidMoves(b); !sameSquares(moves, "e3", "e4") {
		t.Errorf("initial pawn moves %v", squares(moves))
	}
	place(b, Knight, Black, "e4")
	if moves := p.ValidMoves(b); !sameSquares(moves, "e3") {
		t.Errorf("blocked double step %v", squares(moves))
	}
	place(b, Bishop, Black, "d3")
	place(b, Bishop, White, "f3")
	if moves := p.ValidMoves(b); !sameSquares(moves, "e3", "d3") {
		t.Errorf("pawn captures %v", squares(moves))
	}
	place(b, Rook, Black, "e3")
	if moves := p.ValidMoves(b); !sameSquares(moves, "d3") {
		t.Errorf("blocked pawn %v", squares(moves))
	}

	black := place(b, Pawn, Black, "a7")
	if moves := black.ValidMoves(b); !sameSquares(moves, "a6", "a5") {
		t.Errorf("black pawn moves %v", squares(moves))
	}
}

func TestPawnAttackIgnoresOccupancy(t *testing.T) {
	b := NewBoard()
	p := place(b, Pawn, White, "e4")
	place(b, Rook, Black, "e5")
	if !p.CanAttack(sq("d5"), b) || !p.CanAttack(sq("f5"), b) {
		t.Error("pawn must attack both forward diagonals")
	}
	if p.CanAttack(sq("e5"), b) || p.CanAttack(sq("d3"), b) {
		t.Error("pawn attacks only forward diagonals")
	}
}

func TestKingMoves(t *testing.T) {
	b := NewBoard()
	k := place(b, King, White, "e4")
	if moves := k.ValidMoves(b); !sameSquares(moves, "d5", "e5", "f5", "d4", "f4", "d3", "e3", "f3") {
		t.Errorf("king from centre %v", squares(moves))
	}

	place(b, Rook, Black, "h4")
	if moves := k.ValidMoves(b); contains(moves, "f4") || contains(moves, "d4") {
		t.Errorf("king walks along the attacked rank: %v", squares(moves))
	}

	b = NewBoard()
	k = place(b, King, White, "e4")
	for _, s := range []string{"d5", "e5", "f5", "d4", "f4", "d3", "e3", "f3"} {
		place(b, Pawn, White, s)
	}
	if moves := k.ValidMoves(b); len(moves) != 0 {
		t.Errorf("surrounded king %v", squares(moves))
	}
}

func TestKingEscapesByCapture(t *testing.T) {
	b := NewBoard()
	k := place(b, King, White, "e4")
	place(b, Queen, Black, "d5")
	if !b.IsInCheck(White) {
		t.Fatal("expected check")
	}
	if !contains(k.ValidMoves(b), "d5") {
		t.Error("king should capture the unprotected queen")
	}
}

func TestKingAttackIsGeometric(t *testing.T) {
	b := NewBoard()
	k := place(b, King, Black, "e5")
	place(b, Rook, White, "h4")
	// e4 is covered by the rook but the king still attacks it.
	if !k.CanAttack(sq("e4"), b) {
		t.Error("king attacks every adjacent square")
	}
	if k.CanAttack(sq("e3"), b) || k.CanAttack(sq("e5"), b) {
		t.Error("king attacks only adjacent squares")
	}
}

func TestCastlingAvailability(t *testing.T) {
	var tests = []struct {
		name      string
		setup     func(b *Board)
		kingside  bool
		queenside bool
	}{
		{"both", func(b *Board) {}, true, true},
		{"king moved", func(b *Board) { b.PieceAt(sq("e1")).Moved = true }, false, false},
		{"h-rook moved", func(b *Board) { b.PieceAt(sq("h1")).Moved = true }, false, true},
		{"blocked queenside", func(b *Board) { place(b, Knight, White, "b1") }, true, false},
		{"in check", func(b *Board) { place(b, Rook, Black, "e8") }, false, false},
		{"through check", func(b *Board) { place(b, Rook, Black, "f8") }, false, true},
		{"into check", func(b *Board) { place(b, Rook, Black, "c8") }, true, false},
		{"b-file attacked is fine", func(b *Board) { place(b, Rook, Black, "b8") }, true, true},
		{"pawn covers g1", func(b *Board) { place(b, Pawn, Black, "h2") }, false, true},
	}
	for _, test := range tests {
		b := NewBoard()
		k := place(b, King, White, "e1")
		place(b, Rook, White, "h1")
		place(b, Rook, White, "a1")
		test.setup(b)
		moves := k.ValidMoves(b)
		if got := contains(moves, "g1"); got != test.kingside {
			t.Errorf("%s: kingside castling %v, want %v", test.name, got, test.kingside)
		}
		if got := contains(moves, "c1"); got != test.queenside {
			t.Errorf("%s: queenside castling %v, want %v", test.name, got, test.queenside)
		}
	}
}

// Package board implements chess rules: the 8x8 grid, piece move generation,
// move application with castling, en passant and promotion, and game status
// classification (check, checkmate, stalemate and draws).
package board

import (
	"strings"
)

// Board is a complete game state. Speculative moves must be made on a Clone
// so the original is never touched.
type Board struct {
	grid     [8][8]*Piece
	captured []*Piece
	lastMove *Move
	halfmove int
	seen     map[string]int
	turn     Color
	history  []MoveRecord
}

func NewBoard() *Board {
	return &Board{seen: make(map[string]int), turn: White}
}

func NewStandardBoard() *Board {
	b := NewBoard()
	b.SetupStandard()
	return b
}

var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// SetupStandard places the 32 pieces of the initial position.
func (b *Board) SetupStandard() {
	for _, c := range []Color{White, Black} {
		for col, k := range backRank {
			b.PlacePiece(NewPiece(k, c), Position{c.backRow(), col})
			b.PlacePiece(NewPiece(Pawn, c), Position{c.pawnRow(), col})
		}
	}
}

func (b *Board) InBounds(p Position) bool {
	return InBounds(p)
}

// PieceAt returns nil for empty or out-of-bounds squares.
func (b *Board) PieceAt(p Position) *Piece {
	if !InBounds(p) {
		return nil
	}
	return b.grid[p.Row][p.Col]
}

func (b *Board) IsEmpty(p Position) bool {
	return b.PieceAt(p) == nil
}

// PlacePiece puts p on pos. A piece already on the board is lifted from its
// old square first; a different occupant of pos loses its position.
func (b *Board) PlacePiece(p *Piece, pos Position) {
	if !InBounds(pos) {
		panic(malformed("place %v out of bounds at %v", p.Kind, pos))
	}
	if InBounds(p.Pos) && b.grid[p.Pos.Row][p.Pos.Col] == p {
		b.grid[p.Pos.Row][p.Pos.Col] = nil
	}
	if old := b.grid[pos.Row][pos.Col]; old != nil && old != p {
		old.Pos = NoPosition
	}
	b.grid[pos.Row][pos.Col] = p
	p.Pos = pos
}

// RemovePiece takes the occupant of pos off the board and appends it to the
// captured list. It returns the removed piece or nil.
func (b *Board) RemovePiece(pos Position) *Piece {
	p := b.PieceAt(pos)
	if p == nil {
		return nil
	}
	b.grid[pos.Row][pos.Col] = nil
	p.Pos = NoPosition
	b.captured = append(b.captured, p)
	return p
}

func (b *Board) Turn() Color { return b.turn }

func (b *Board) SetTurn(c Color) { b.turn = c }

func (b *Board) HalfmoveClock() int { return b.halfmove }

func (b *Board) SetHalfmoveClock(n int) { b.halfmove = n }

// LastMove returns the previous move, if any.
func (b *Board) LastMove() (Move, bool) {
	if b.lastMove == nil {
		return Move{}, false
	}
	return *b.lastMove, true
}

// Captured returns a copy of the captured pieces in capture order.
func (b *Board) Captured() []Piece {
	res := make([]Piece, len(b.captured))
	for i, p := range b.captured {
		res[i] = *p
	}
	return res
}

func (b *Board) History() []MoveRecord {
	return append([]MoveRecord(nil), b.history...)
}

// Pieces returns the pieces of color c in row-major order.
func (b *Board) Pieces(c Color) []*Piece {
	var res []*Piece
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if p := b.grid[row][col]; p != nil && p.Color == c {
				res = append(res, p)
			}
		}
	}
	return res
}

// Clone returns a deep copy sharing no pieces, slices or maps with b.
func (b *Board) Clone() *Board {
	c := &Board{
		halfmove: b.halfmove,
		turn:     b.turn,
		seen:     make(map[string]int, len(b.seen)),
		captured: make([]*Piece, len(b.captured)),
		history:  append([]MoveRecord(nil), b.history...),
	}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if p := b.grid[row][col]; p != nil {
				c.grid[row][col] = p.clone()
			}
		}
	}
	for i, p := range b.captured {
		c.captured[i] = p.clone()
	}
	if b.lastMove != nil {
		m := *b.lastMove
		c.lastMove = &m
	}
	for k, v := range b.seen {
		c.seen[k] = v
	}
	return c
}

// positionKey serializes the grid and the side to move for repetition counts.
func (b *Board) positionKey() string {
	var sb strings.Builder
	sb.Grow(64*2 + 1)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.grid[row][col]
			if p == nil {
				sb.WriteString("..")
				continue
			}
			sb.WriteString(p.Kind.Letter())
			if p.Color == White {
				sb.WriteByte('w')
			} else {
				sb.WriteByte('b')
			}
		}
	}
	if b.turn == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	return sb.String()
}

// Validate checks the grid/position agreement and the king count.
func (b *Board) Validate() error {
	kings := [2]int{}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.grid[row][col]
			if p == nil {
				continue
			}
			if p.Pos != (Position{row, col}) {
				return malformed("%v %v is recorded at %v but sits on %v", p.Color, p.Kind, p.Pos, Position{row, col})
			}
			if p.Kind < Pawn || p.Kind > King {
				return malformed("unknown piece kind %d on %v", int(p.Kind), p.Pos)
			}
			if p.Color != White && p.Color != Black {
				return malformed("unknown color %d on %v", int(p.Color), p.Pos)
			}
			if p.Kind == King {
				kings[p.Color]++
			}
		}
	}
	for c, n := range kings {
		if n > 1 {
			return malformed("%d %v kings", n, Color(c))
		}
	}
	return nil
}

func (b *Board) mustBeConsistent() {
	if err := b.Validate(); err != nil {
		panic(err)
	}
}

var unicodePieces = map[Color]map[Kind]string{
	White: {Pawn: "♙", Rook: "♖", Knight: "♘", Bishop: "♗", Queen: "♕", King: "♔"},
	Black: {Pawn: "♟", Rook: "♜", Knight: "♞", Bishop: "♝", Queen: "♛", King: "♚"},
}

// String draws the board with Unicode symbols, rank 8 first.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		sb.WriteByte(byte('8' - row))
		sb.WriteByte(' ')
		for col := 0; col < 8; col++ {
			if p := b.grid[row][col]; p != nil {
				sb.WriteString(unicodePieces[p.Color][p.Kind])
			} else {
				sb.WriteString("·")
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

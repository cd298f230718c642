package board

import (
	"fmt"
	"strings"
)

type Color int

const (
	White Color = iota
	Black
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	switch string(text) {
	case "white":
		*c = White
	case "black":
		*c = Black
	default:
		return fmt.Errorf("unknown color %q", text)
	}
	return nil
}

// pawnDirection is the row delta of a forward pawn step.
func (c Color) pawnDirection() int {
	if c == White {
		return -1
	}
	return 1
}

func (c Color) backRow() int {
	if c == White {
		return 7
	}
	return 0
}

func (c Color) pawnRow() int {
	if c == White {
		return 6
	}
	return 1
}

type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindNames = [...]string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}

func (k Kind) String() string {
	if k < NoKind || k > King {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Letter is the upper-case English piece letter, "" for NoKind.
func (k Kind) Letter() string {
	switch k {
	case Pawn:
		return "P"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return ""
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown piece kind %q", text)
}

// ParseKind accepts a piece letter or name in either case ("q", "Queen").
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(s)
	switch s {
	case "p":
		return Pawn, nil
	case "n":
		return Knight, nil
	case "b":
		return Bishop, nil
	case "r":
		return Rook, nil
	case "q":
		return Queen, nil
	case "k":
		return King, nil
	}
	var k Kind
	if err := k.UnmarshalText([]byte(s)); err != nil {
		return NoKind, err
	}
	return k, nil
}

// Position is a (row, col) square; row 0 is black's back rank.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NoPosition is the position of a piece that is not on the board.
var NoPosition = Position{-1, -1}

func InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < 8 && p.Col >= 0 && p.Col < 8
}

func (p Position) String() string {
	if !InBounds(p) {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+p.Col, 8-p.Row)
}

// ParsePosition parses an algebraic square such as "e4".
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoPosition, fmt.Errorf("bad square %q", s)
	}
	return Position{Row: 8 - int(s[1]-'0'), Col: int(s[0] - 'a')}, nil
}

func (p Position) add(dr, dc int) Position {
	return Position{p.Row + dr, p.Col + dc}
}

// lightSquare reports the square colour; a1 (row 7, col 0) is dark.
func (p Position) lightSquare() bool {
	return (p.Row+p.Col)%2 == 0
}

type Piece struct {
	Kind  Kind
	Color Color
	Pos   Position
	Moved bool
}

func NewPiece(kind Kind, color Color) *Piece {
	return &Piece{Kind: kind, Color: color, Pos: NoPosition}
}

// Symbol is the piece letter, upper case for white.
func (p *Piece) Symbol() string {
	if p.Color == White {
		return p.Kind.Letter()
	}
	return strings.ToLower(p.Kind.Letter())
}

func (p *Piece) String() string {
	return fmt.Sprintf("%v %v at %v", p.Color, p.Kind, p.Pos)
}

func (p *Piece) clone() *Piece {
	c := *p
	return &c
}

// Move is a resolved (from, to, promotion) tuple. Promotion NoKind means Queen
// when the move promotes.
type Move struct {
	From      Position `json:"from"`
	To        Position `json:"to"`
	Promotion Kind     `json:"promotion,omitempty"`
}

func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoKind {
		s += strings.ToLower(m.Promotion.Letter())
	}
	return s
}

// MoveRecord is one entry of the ordered game history.
type MoveRecord struct {
	From      Position `json:"from"`
	To        Position `json:"to"`
	Color     Color    `json:"color"`
	Kind      Kind     `json:"kind"`
	Captured  Kind     `json:"captured,omitempty"`
	Promotion Kind     `json:"promotion,omitempty"`
}

package board

import "fmt"

const fiftyMoveLimit = 100

type DrawReason int

const (
	NoDraw DrawReason = iota
	DrawStalemate
	DrawFiftyMoveRule
	DrawThreefoldRepetition
	DrawInsufficientMaterial
)

func (r DrawReason) String() string {
	switch r {
	case DrawStalemate:
		return "stalemate"
	case DrawFiftyMoveRule:
		return "50-move rule"
	case DrawThreefoldRepetition:
		return "threefold repetition"
	case DrawInsufficientMaterial:
		return "insufficient material"
	}
	return ""
}

func (b *Board) IsCheckmate(c Color) bool {
	return b.IsInCheck(c) && !b.HasAnyValidMoves(c)
}

func (b *Board) IsStalemate(c Color) bool {
	return !b.IsInCheck(c) && !b.HasAnyValidMoves(c)
}

func (b *Board) IsDraw(c Color) bool {
	return b.DrawReason(c) != NoDraw
}

// DrawReason returns the first draw cause that applies, in the order
// stalemate, fifty-move rule, threefold repetition, insufficient material.
func (b *Board) DrawReason(c Color) DrawReason {
	switch {
	case b.IsStalemate(c):
		return DrawStalemate
	case b.IsFiftyMoveRule():
		return DrawFiftyMoveRule
	case b.IsThreefoldRepetition():
		return DrawThreefoldRepetition
	case b.IsInsufficientMaterial():
		return DrawInsufficientMaterial
	}
	return NoDraw
}

func (b *Board) IsFiftyMoveRule() bool {
	return b.halfmove >= fiftyMoveLimit
}

func (b *Board) IsThreefoldRepetition() bool {
	for _, n := range b.seen {
		if n >= 3 {
			return true
		}
	}
	return false
}

// IsInsufficientMaterial reports a dead position: bare kings, a single minor
// piece, or two bishops standing on squares of the same colour.
func (b *Board) IsInsufficientMaterial() bool {
	var minors []*Piece
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.grid[row][col]
			if p == nil || p.Kind == King {
				continue
			}
			switch p.Kind {
			case Queen, Rook, Pawn:
				return false
			}
			minors = append(minors, p)
		}
	}
	switch len(minors) {
	case 0, 1:
		return true
	case 2:
		a, c := minors[0], minors[1]
		return a.Kind == Bishop && c.Kind == Bishop && a.Pos.lightSquare() == c.Pos.lightSquare()
	}
	return false
}

type Status int

const (
	Ongoing Status = iota
	Check
	Checkmate
	Draw
)

func (s Status) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Draw:
		return "draw"
	}
	return "ongoing"
}

// Status classifies the position for the side c.
func (b *Board) Status(c Color) Status {
	switch {
	case b.IsCheckmate(c):
		return Checkmate
	case b.IsDraw(c):
		return Draw
	case b.IsInCheck(c):
		return Check
	}
	return Ongoing
}

// Describe renders the status of side c as a sentence for display.
func (b *Board) Describe(c Color) string {
	switch b.Status(c) {
	case Checkmate:
		return fmt.Sprintf("Checkmate! %v wins.", c.Opponent())
	case Draw:
		return fmt.Sprintf("Draw by %v.", b.DrawReason(c))
	case Check:
		return fmt.Sprintf("%v is in check.", c)
	}
	return "Game ongoing."
}

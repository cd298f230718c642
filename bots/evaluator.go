package bots

import (
	"idiotchess/board"
)

const (
	MobilityWeight   = 0.1
	KingSafetyWeight = 2
	CheckPenalty     = 3
	// таблицы в сотых долях пешки
	PieceSquareScale = 0.01
)

var pieceValues = map[board.Kind]float64{
	board.Pawn:   1,
	board.Knight: 3,
	board.Bishop: 3,
	board.Rook:   5,
	board.Queen:  9,
	board.King:   0,
}

// PieceValue is the standard material value of a piece kind; the king is 0.
func PieceValue(k board.Kind) float64 {
	return pieceValues[k]
}

// Tables are written from white's side with row 0 = rank 8.
var pieceSquareTables = map[board.Kind][8][8]float64{
	board.Pawn: {
		{0, 0, 0, 0, 0, 0, 0, 0},
		{50, 50, 50, 50, 50, 50, 50, 50},
		{10, 10, 20, 30, 30, 20, 10, 10},
		{5, 5, 10, 25, 25, 10, 5, 5},
		{0, 0, 0, 20, 20, 0, 0, 0},
		{5, -5, -10, 0, 0, -10, -5, 5},
		{5, 10, 10, -20, -20, 10, 10, 5},
		{0, 0, 0, 0, 0, 0, 0, 0},
	},
	board.Knight: {
		{-50, -40, -30, -30, -30, -30, -40, -50},
		{-40, -20, 0, 0, 0, 0, -20, -40},
		{-30, 0, 10, 15, 15, 10, 0, -30},
		{-30, 5, 15, 20, 20, 15, 5, -30},
		{-30, 0, 15, 20, 20, 15, 0, -30},
		{-30, 5, 10, 15, 15, 10, 5, -30},
		{-40, -20, 0, 5, 5, 0, -20, -40},
		{-50, -40, -30, -30, -30, -30, -40, -50},
	},
	board.Bishop: {
		{-20, -10, -10, -10, -10, -10, -10, -20},
		{-10, 0, 0, 0, 0, 0, 0, -10},
		{-10, 0, 5, 10, 10, 5, 0, -10},
		{-10, 5, 5, 10, 10, 5, 5, -10},
		{-10, 0, 10, 10, 10, 10, 0, -10},
		{-10, 10, 10, 10, 10, 10, 10, -10},
		{-10, 5, 0, 0, 0, 0, 5, -10},
		{-20, -10, -10, -10, -10, -10, -10, -20},
	},
	board.Rook: {
		{0, 0, 0, 0, 0, 0, 0, 0},
		{5, 10, 10, 10, 10, 10, 10, 5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{-5, 0, 0, 0, 0, 0, 0, -5},
		{0, 0, 0, 5, 5, 0, 0, 0},
	},
	board.Queen: {
		{-20, -10, -10, -5, -5, -10, -10, -20},
		{-10, 0, 0, 0, 0, 0, 0, -10},
		{-10, 0, 5, 5, 5, 5, 0, -10},
		{-5, 0, 5, 5, 5, 5, 0, -5},
		{0, 0, 5, 5, 5, 5, 0, -5},
		{-10, 5, 5, 5, 5, 5, 0, -10},
		{-10, 0, 5, 0, 0, 0, 0, -10},
		{-20, -10, -10, -5, -5, -10, -10, -20},
	},
	board.King: {
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-30, -40, -40, -50, -50, -40, -40, -30},
		{-20, -30, -30, -40, -40, -30, -30, -20},
		{-10, -20, -20, -20, -20, -20, -20, -10},
		{20, 20, 0, 0, 0, 0, 20, 20},
		{20, 30, 10, 0, 0, 10, 30, 20},
	},
}

// PieceSquareValue is the positional bonus of p on its square, in pawns.
// Black reads the tables mirrored vertically.
func PieceSquareValue(p *board.Piece) float64 {
	row := p.Pos.Row
	if p.Color == board.Black {
		row = 7 - row
	}
	table := pieceSquareTables[p.Kind]
	return table[row][p.Pos.Col] * PieceSquareScale
}

func signed(p *board.Piece, c board.Color, v float64) float64 {
	if p.Color == c {
		return v
	}
	return -v
}

func eachPiece(b *board.Board, fn func(p *board.Piece)) {
	for _, c := range []board.Color{board.White, board.Black} {
		for _, p := range b.Pieces(c) {
			fn(p)
		}
	}
}

// Material is own minus enemy material.
func Material(b *board.Board, c board.Color) float64 {
	var score float64
	eachPiece(b, func(p *board.Piece) {
		score += signed(p, c, PieceValue(p.Kind))
	})
	return score
}

// MaterialPST adds the piece-square tables to Material.
func MaterialPST(b *board.Board, c board.Color) float64 {
	var score float64
	eachPiece(b, func(p *board.Piece) {
		score += signed(p, c, PieceValue(p.Kind)+PieceSquareValue(p))
	})
	return score
}

// MaterialMobility adds a bonus for having more legal moves than the enemy.
func MaterialMobility(b *board.Board, c board.Color) float64 {
	own := len(b.LegalMoves(c))
	enemy := len(b.LegalMoves(c.Opponent()))
	return Material(b, c) + MobilityWeight*float64(own-enemy)
}

// MaterialKingSafety adds the difference of the kings' shelter.
func MaterialKingSafety(b *board.Board, c board.Color) float64 {
	return Material(b, c) + KingSafetyWeight*(kingShelter(b, c)-kingShelter(b, c.Opponent()))
}

// kingShelter counts friendly pieces around c's king, less a penalty when the
// king is in check. No king scores 0.
func kingShelter(b *board.Board, c board.Color) float64 {
	var king *board.Piece
	for _, p := range b.Pieces(c) {
		if p.Kind == board.King {
			king = p
			break
		}
	}
	if king == nil {
		return 0
	}
	var shelter float64
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if p := b.PieceAt(board.Position{Row: king.Pos.Row + dr, Col: king.Pos.Col + dc}); p != nil && p.Color == c {
				shelter++
			}
		}
	}
	if b.IsInCheck(c) {
		shelter -= CheckPenalty
	}
	return shelter
}

// Evaluators lists the named evaluation functions.
var Evaluators = map[string]EvalFunc{
	"material": Material,
	"pst":      MaterialPST,
	"mobility": MaterialMobility,
	"safety":   MaterialKingSafety,
}

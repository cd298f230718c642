package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/notnil/chess"
)

// StartFEN is the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN renders b in Forsyth-Edwards Notation. Castling rights come from the
// moved flags; the full-move number counts the moves recorded on this board.
func (b *Board) FEN() string {
	var sb strings.Builder
	for row := 0; row < 8; row++ {
		empty := 0
		for col := 0; col < 8; col++ {
			p := b.grid[row][col]
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.Symbol())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}

	turn := "w"
	if b.turn == Black {
		turn = "b"
	}

	castling := ""
	for _, c := range []Color{White, Black} {
		for _, side := range castleSides {
			if b.castlingRight(c, side) {
				letter := "K"
				if side.rookCol == 0 {
					letter = "Q"
				}
				if c == Black {
					letter = strings.ToLower(letter)
				}
				castling += letter
			}
		}
	}
	if castling == "" {
		castling = "-"
	}

	ep := "-"
	if sq, ok := b.doublePushSquare(); ok {
		ep = sq.String()
	}

	return fmt.Sprintf("%s %s %s %s %d %d", sb.String(), turn, castling, ep, b.halfmove, 1+len(b.history)/2)
}

func (b *Board) castlingRight(c Color, side castleSide) bool {
	row := c.backRow()
	k, r := b.grid[row][4], b.grid[row][side.rookCol]
	return k != nil && k.Kind == King && k.Color == c && !k.Moved &&
		r != nil && r.Kind == Rook && r.Color == c && !r.Moved
}

// doublePushSquare returns the square skipped by a pawn's two-square advance
// on the previous move.
func (b *Board) doublePushSquare() (Position, bool) {
	if b.lastMove == nil {
		return NoPosition, false
	}
	from, to := b.lastMove.From, b.lastMove.To
	p := b.PieceAt(to)
	if p == nil || p.Kind != Pawn || from.Col != to.Col || abs(from.Row-to.Row) != 2 {
		return NoPosition, false
	}
	return Position{(from.Row + to.Row) / 2, to.Col}, true
}

var kindsFromChess = map[chess.PieceType]Kind{
	chess.Pawn:   Pawn,
	chess.Knight: Knight,
	chess.Bishop: Bishop,
	chess.Rook:   Rook,
	chess.Queen:  Queen,
	chess.King:   King,
}

// FromFEN builds a board from a FEN record. Kings and rooks keep an unmoved
// flag only where the castling field grants it, pawns only on their start rank.
// An en passant square becomes the last move so the capture is available.
func FromFEN(fen string) (*Board, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("parse fen %q: %w", fen, err)
	}
	pos := chess.NewGame(opt).Position()

	b := NewBoard()
	for sq, pc := range pos.Board().SquareMap() {
		kind, ok := kindsFromChess[pc.Type()]
		if !ok {
			continue
		}
		color := White
		if pc.Color() == chess.Black {
			color = Black
		}
		at := Position{Row: 7 - int(sq.Rank()), Col: int(sq.File())}
		moved := !(kind == Pawn && at.Row == color.pawnRow())
		b.grid[at.Row][at.Col] = &Piece{Kind: kind, Color: color, Pos: at, Moved: moved}
	}

	if pos.Turn() == chess.Black {
		b.turn = Black
	}

	rights := pos.CastleRights()
	for _, c := range []Color{White, Black} {
		chessColor := chess.White
		if c == Black {
			chessColor = chess.Black
		}
		row := c.backRow()
		for _, side := range castleSides {
			chessSide := chess.KingSide
			if side.rookCol == 0 {
				chessSide = chess.QueenSide
			}
			if !rights.CanCastle(chessColor, chessSide) {
				continue
			}
			k, r := b.grid[row][4], b.grid[row][side.rookCol]
			if k != nil && k.Kind == King && r != nil && r.Kind == Rook {
				k.Moved = false
				r.Moved = false
			}
		}
	}

	if sq := pos.EnPassantSquare(); sq != chess.NoSquare {
		target := Position{Row: 7 - int(sq.Rank()), Col: int(sq.File())}
		dir := b.turn.Opponent().pawnDirection()
		b.lastMove = &Move{
			From: Position{target.Row - dir, target.Col},
			To:   Position{target.Row + dir, target.Col},
		}
	}

	if fields := strings.Fields(fen); len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("parse fen %q: bad halfmove clock %q", fen, fields[4])
		}
		b.halfmove = n
	}

	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

package board

// relocated returns a grid-only probe of b with the piece on from moved to to
// and, for en passant, the victim on captured removed. The probe shares pieces
// with b and must only be used for attack queries.
func (b *Board) relocated(from, to, captured Position) *Board {
	probe := &Board{grid: b.grid}
	p := probe.grid[from.Row][from.Col]
	probe.grid[from.Row][from.Col] = nil
	probe.grid[to.Row][to.Col] = p
	if InBounds(captured) {
		probe.grid[captured.Row][captured.Col] = nil
	}
	return probe
}

// kingSquare finds c's king by scanning the grid, so it works on probes.
func (b *Board) kingSquare(c Color) (Position, bool) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if p := b.grid[row][col]; p != nil && p.Kind == King && p.Color == c {
				return Position{row, col}, true
			}
		}
	}
	return NoPosition, false
}

// squareAttacked reports whether any piece of color by attacks target.
func (b *Board) squareAttacked(target Position, by Color) bool {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.grid[row][col]
			if p == nil || p.Color != by {
				continue
			}
			if movers[p.Kind].attacks(b, Position{row, col}, target, by) {
				return true
			}
		}
	}
	return false
}

// IsInCheck reports whether c's king is attacked. A board without such a king
// is never in check.
func (b *Board) IsInCheck(c Color) bool {
	king, ok := b.kingSquare(c)
	if !ok {
		return false
	}
	return b.squareAttacked(king, c.Opponent())
}

func (b *Board) isEnPassant(p *Piece, to Position) bool {
	return p.Kind == Pawn && to.Col != p.Pos.Col && b.grid[to.Row][to.Col] == nil
}

// leavesKingInCheck tests the pseudo-legal move of p to to for own-king safety.
func (b *Board) leavesKingInCheck(p *Piece, to Position) bool {
	victim := NoPosition
	if b.isEnPassant(p, to) {
		victim = Position{p.Pos.Row, to.Col}
	}
	return b.relocated(p.Pos, to, victim).IsInCheck(p.Color)
}

func (b *Board) legalTargets(p *Piece) []Position {
	var res []Position
	for _, to := range p.ValidMoves(b) {
		if !b.leavesKingInCheck(p, to) {
			res = append(res, to)
		}
	}
	return res
}

// LegalMovesFrom returns the legal destinations of the piece on pos.
func (b *Board) LegalMovesFrom(pos Position) []Position {
	p := b.PieceAt(pos)
	if p == nil {
		return nil
	}
	return b.legalTargets(p)
}

// LegalMoves returns every legal move of c, scanning squares in row-major
// order. Promotions are reported once with Promotion NoKind.
func (b *Board) LegalMoves(c Color) []Move {
	var res []Move
	for _, p := range b.Pieces(c) {
		for _, to := range b.legalTargets(p) {
			res = append(res, Move{From: p.Pos, To: to})
		}
	}
	return res
}

func (b *Board) HasAnyValidMoves(c Color) bool {
	for _, p := range b.Pieces(c) {
		for _, to := range p.ValidMoves(b) {
			if !b.leavesKingInCheck(p, to) {
				return true
			}
		}
	}
	return false
}

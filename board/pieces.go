package board

// mover is the per-kind move generator. moves returns pseudo-legal
// destinations; attacks is a pure geometric test used for check detection and
// must never call moves.
type mover interface {
	moves(b *Board, p *Piece) []Position
	attacks(b *Board, from, target Position, c Color) bool
}

type direction struct{ dr, dc int }

var (
	orthogonals = []direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonals   = []direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	allAround   = append(append([]direction(nil), orthogonals...), diagonals...)

	knightJumps = []direction{
		{-2, -1}, {-2, 1},
		{-1, -2}, {-1, 2},
		{1, -2}, {1, 2},
		{2, -1}, {2, 1},
	}
)

var movers = [...]mover{
	Pawn:   pawnMoves{},
	Knight: knightMoves{},
	Bishop: bishopMoves{},
	Rook:   rookMoves{},
	Queen:  queenMoves{},
	King:   kingMoves{},
}

// ValidMoves returns the pseudo-legal destinations of p on b. A king's list is
// already free of squares attacked after the move and includes castling.
func (p *Piece) ValidMoves(b *Board) []Position {
	if !InBounds(p.Pos) || p.Kind < Pawn || p.Kind > King {
		return nil
	}
	return movers[p.Kind].moves(b, p)
}

// CanAttack reports whether p attacks target by its geometric pattern.
func (p *Piece) CanAttack(target Position, b *Board) bool {
	if !InBounds(p.Pos) || !InBounds(target) || p.Kind < Pawn || p.Kind > King {
		return false
	}
	return movers[p.Kind].attacks(b, p.Pos, target, p.Color)
}

func (b *Board) canLandOn(pos Position, c Color) bool {
	if !InBounds(pos) {
		return false
	}
	occ := b.grid[pos.Row][pos.Col]
	return occ == nil || occ.Color != c
}

func slide(b *Board, p *Piece, dirs []direction) []Position {
	var res []Position
	for _, d := range dirs {
		for pos := p.Pos.add(d.dr, d.dc); InBounds(pos); pos = pos.add(d.dr, d.dc) {
			occ := b.grid[pos.Row][pos.Col]
			if occ == nil {
				res = append(res, pos)
				continue
			}
			if occ.Color != p.Color {
				res = append(res, pos)
			}
			break
		}
	}
	return res
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// rayClear reports whether target lies on one of dirs from from with only empty
// squares strictly between them.
func rayClear(b *Board, from, target Position, dirs []direction) bool {
	dRow, dCol := target.Row-from.Row, target.Col-from.Col
	if dRow == 0 && dCol == 0 {
		return false
	}
	if dRow != 0 && dCol != 0 && abs(dRow) != abs(dCol) {
		return false
	}
	step := direction{sign(dRow), sign(dCol)}
	allowed := false
	for _, d := range dirs {
		if d == step {
			allowed = true
			break
		}
	}
	if !allowed {
		return false
	}
	for pos := from.add(step.dr, step.dc); pos != target; pos = pos.add(step.dr, step.dc) {
		if b.grid[pos.Row][pos.Col] != nil {
			return false
		}
	}
	return true
}

type pawnMoves struct{}

func (pawnMoves) moves(b *Board, p *Piece) []Position {
	var res []Position
	dir := p.Color.pawnDirection()
	one := p.Pos.add(dir, 0)
	if InBounds(one) && b.grid[one.Row][one.Col] == nil {
		res = append(res, one)
		two := p.Pos.add(2*dir, 0)
		if p.Pos.Row == p.Color.pawnRow() && b.grid[two.Row][two.Col] == nil {
			res = append(res, two)
		}
	}
	for _, dc := range []int{-1, 1} {
		diag := p.Pos.add(dir, dc)
		if !InBounds(diag) {
			continue
		}
		if occ := b.grid[diag.Row][diag.Col]; occ != nil && occ.Color != p.Color {
			res = append(res, diag)
		}
	}
	if ep, ok := b.enPassantTarget(p); ok {
		res = append(res, ep)
	}
	return res
}

func (pawnMoves) attacks(b *Board, from, target Position, c Color) bool {
	return target.Row-from.Row == c.pawnDirection() && abs(target.Col-from.Col) == 1
}

// enPassantTarget returns the square p may capture onto en passant: only right
// after an enemy pawn's two-square advance ended beside p.
func (b *Board) enPassantTarget(p *Piece) (Position, bool) {
	if b.lastMove == nil || p.Kind != Pawn {
		return NoPosition, false
	}
	from, to := b.lastMove.From, b.lastMove.To
	last := b.PieceAt(to)
	if last == nil || last.Kind != Pawn || last.Color == p.Color {
		return NoPosition, false
	}
	if abs(from.Row-to.Row) != 2 || from.Col != to.Col {
		return NoPosition, false
	}
	if to.Row != p.Pos.Row || abs(to.Col-p.Pos.Col) != 1 {
		return NoPosition, false
	}
	target := Position{p.Pos.Row + p.Color.pawnDirection(), to.Col}
	if !InBounds(target) || b.grid[target.Row][target.Col] != nil {
		return NoPosition, false
	}
	return target, true
}

type knightMoves struct{}

func (knightMoves) moves(b *Board, p *Piece) []Position {
	var res []Position
	for _, d := range knightJumps {
		if pos := p.Pos.add(d.dr, d.dc); b.canLandOn(pos, p.Color) {
			res = append(res, pos)
		}
	}
	return res
}

func (knightMoves) attacks(b *Board, from, target Position, c Color) bool {
	dr, dc := abs(target.Row-from.Row), abs(target.Col-from.Col)
	return dr == 1 && dc == 2 || dr == 2 && dc == 1
}

type bishopMoves struct{}

func (bishopMoves) moves(b *Board, p *Piece) []Position {
	return slide(b, p, diagonals)
}

func (bishopMoves) attacks(b *Board, from, target Position, c Color) bool {
	return rayClear(b, from, target, diagonals)
}

type rookMoves struct{}

func (rookMoves) moves(b *Board, p *Piece) []Position {
	return slide(b, p, orthogonals)
}

func (rookMoves) attacks(b *Board, from, target Position, c Color) bool {
	return rayClear(b, from, target, orthogonals)
}

type queenMoves struct{}

func (queenMoves) moves(b *Board, p *Piece) []Position {
	return slide(b, p, allAround)
}

func (queenMoves) attacks(b *Board, from, target Position, c Color) bool {
	return rayClear(b, from, target, allAround)
}

type kingMoves struct{}

func (kingMoves) moves(b *Board, p *Piece) []Position {
	var res []Position
	for _, d := range allAround {
		pos := p.Pos.add(d.dr, d.dc)
		if !b.canLandOn(pos, p.Color) {
			continue
		}
		if b.relocated(p.Pos, pos, NoPosition).IsInCheck(p.Color) {
			continue
		}
		res = append(res, pos)
	}
	return append(res, b.castlingTargets(p)...)
}

func (kingMoves) attacks(b *Board, from, target Position, c Color) bool {
	dr, dc := abs(target.Row-from.Row), abs(target.Col-from.Col)
	return dr <= 1 && dc <= 1 && dr+dc > 0
}

type castleSide struct {
	rookCol  int
	rookDest int
	kingDest int
	empty    []int
	safe     []int
}

var castleSides = []castleSide{
	{rookCol: 7, rookDest: 5, kingDest: 6, empty: []int{5, 6}, safe: []int{5, 6}},
	{rookCol: 0, rookDest: 3, kingDest: 2, empty: []int{1, 2, 3}, safe: []int{3, 2}},
}

// castlingTargets lists the king destinations of the castlings k may make now.
func (b *Board) castlingTargets(k *Piece) []Position {
	row := k.Color.backRow()
	if k.Kind != King || k.Moved || k.Pos != (Position{row, 4}) {
		return nil
	}
	enemy := k.Color.Opponent()
	if b.squareAttacked(k.Pos, enemy) {
		return nil
	}
	var res []Position
	for _, side := range castleSides {
		if b.canCastle(k, side, enemy) {
			res = append(res, Position{row, side.kingDest})
		}
	}
	return res
}

func (b *Board) canCastle(k *Piece, side castleSide, enemy Color) bool {
	row := k.Pos.Row
	rook := b.grid[row][side.rookCol]
	if rook == nil || rook.Kind != Rook || rook.Color != k.Color || rook.Moved {
		return false
	}
	for _, col := range side.empty {
		if b.grid[row][col] != nil {
			return false
		}
	}
	for _, col := range side.safe {
		if b.squareAttacked(Position{row, col}, enemy) {
			return false
		}
	}
	return true
}

func castleSideFor(kingDestCol int) (castleSide, bool) {
	for _, side := range castleSides {
		if side.kingDest == kingDestCol {
			return side, true
		}
	}
	return castleSide{}, false
}

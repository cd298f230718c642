package board

// ApplyMove plays a validated move and reports whether it was accepted.
// promotion may be NoKind.
func (b *Board) ApplyMove(from, to Position, promotion Kind) bool {
	return b.Apply(Move{From: from, To: to, Promotion: promotion}, true) == nil
}

// Apply plays m. With validate set an illegal move returns an
// *IllegalMoveError and leaves b exactly as it was. Without validation the
// move is trusted, see ApplyUnchecked.
func (b *Board) Apply(m Move, validate bool) error {
	if validate {
		if err := b.check(m); err != nil {
			return &IllegalMoveError{Move: m, Err: err}
		}
	}
	b.ApplyUnchecked(m)
	return nil
}

func (b *Board) check(m Move) error {
	if !InBounds(m.From) || !InBounds(m.To) {
		return ErrOutOfBounds
	}
	p := b.grid[m.From.Row][m.From.Col]
	if p == nil {
		return ErrNoPiece
	}
	if p.Color != b.turn {
		return ErrWrongTurn
	}
	switch m.Promotion {
	case NoKind, Queen, Rook, Bishop, Knight:
	default:
		return ErrBadPromotion
	}
	reachable := false
	for _, to := range p.ValidMoves(b) {
		if to == m.To {
			reachable = true
			break
		}
	}
	if !reachable {
		return ErrUnreachable
	}
	if b.leavesKingInCheck(p, m.To) {
		return ErrLeavesKingInCheck
	}
	return nil
}

// ApplyUnchecked plays m without legality checks. It panics with a
// *MalformedStateError when there is no piece on m.From or the move would
// capture a piece of the mover's own colour. The mover's opponent is to move
// afterwards.
func (b *Board) ApplyUnchecked(m Move) {
	p := b.PieceAt(m.From)
	if p == nil {
		panic(malformed("no piece on %v", m.From))
	}
	if !InBounds(m.To) {
		panic(malformed("destination %v out of bounds", m.To))
	}
	target := b.grid[m.To.Row][m.To.Col]
	if target != nil && target.Color == p.Color {
		panic(malformed("%v %v on %v would capture own %v", p.Color, p.Kind, m.From, target.Kind))
	}

	rec := MoveRecord{From: m.From, To: m.To, Color: p.Color, Kind: p.Kind}

	switch {
	case target != nil:
		b.RemovePiece(m.To)
		rec.Captured = target.Kind
	case b.isEnPassant(p, m.To):
		if victim := b.RemovePiece(Position{m.From.Row, m.To.Col}); victim != nil {
			rec.Captured = victim.Kind
		}
	}

	b.grid[m.From.Row][m.From.Col] = nil
	b.grid[m.To.Row][m.To.Col] = p
	p.Pos = m.To
	p.Moved = true

	if p.Kind == King && abs(m.To.Col-m.From.Col) == 2 {
		if side, ok := castleSideFor(m.To.Col); ok {
			if rook := b.grid[m.From.Row][side.rookCol]; rook != nil {
				b.grid[m.From.Row][side.rookCol] = nil
				dest := Position{m.From.Row, side.rookDest}
				b.grid[dest.Row][dest.Col] = rook
				rook.Pos = dest
				rook.Moved = true
			}
		}
	}

	if p.Kind == Pawn && m.To.Row == p.Color.Opponent().backRow() {
		kind := m.Promotion
		switch kind {
		case Queen, Rook, Bishop, Knight:
		default:
			kind = Queen
		}
		promoted := &Piece{Kind: kind, Color: p.Color, Pos: m.To, Moved: true}
		p.Pos = NoPosition
		b.grid[m.To.Row][m.To.Col] = promoted
		rec.Promotion = kind
	}

	if p.Kind == Pawn || rec.Captured != NoKind {
		b.halfmove = 0
	} else {
		b.halfmove++
	}

	last := Move{From: m.From, To: m.To}
	b.lastMove = &last
	b.history = append(b.history, rec)
	b.turn = p.Color.Opponent()
	if b.seen == nil {
		b.seen = make(map[string]int)
	}
	b.seen[b.positionKey()]++

	b.mustBeConsistent()
}

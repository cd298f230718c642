package board

// Cell is one square of a Snapshot. Kind NoKind means empty.
type Cell struct {
	Kind  Kind  `json:"kind"`
	Color Color `json:"color"`
	Moved bool  `json:"moved,omitempty"`
}

// Snapshot is a plain copy of the full board state, enough to rebuild the
// board exactly. It holds no references into the board.
type Snapshot struct {
	Cells         [8][8]Cell     `json:"cells"`
	Turn          Color          `json:"turn"`
	HalfmoveClock int            `json:"halfmove_clock"`
	LastMove      *Move          `json:"last_move,omitempty"`
	Repetitions   map[string]int `json:"repetitions,omitempty"`
	Captured      []Cell         `json:"captured,omitempty"`
	History       []MoveRecord   `json:"history,omitempty"`
}

func (b *Board) Snapshot() Snapshot {
	s := Snapshot{
		Turn:          b.turn,
		HalfmoveClock: b.halfmove,
		Repetitions:   make(map[string]int, len(b.seen)),
		History:       b.History(),
	}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if p := b.grid[row][col]; p != nil {
				s.Cells[row][col] = Cell{Kind: p.Kind, Color: p.Color, Moved: p.Moved}
			}
		}
	}
	for _, p := range b.captured {
		s.Captured = append(s.Captured, Cell{Kind: p.Kind, Color: p.Color, Moved: p.Moved})
	}
	if b.lastMove != nil {
		m := *b.lastMove
		s.LastMove = &m
	}
	for k, v := range b.seen {
		s.Repetitions[k] = v
	}
	return s
}

// Restore rebuilds a board from s. Inconsistent input is reported as a
// *MalformedStateError.
func Restore(s Snapshot) (*Board, error) {
	if s.Turn != White && s.Turn != Black {
		return nil, malformed("unknown turn %d", int(s.Turn))
	}
	if s.HalfmoveClock < 0 {
		return nil, malformed("negative halfmove clock %d", s.HalfmoveClock)
	}
	b := NewBoard()
	b.turn = s.Turn
	b.halfmove = s.HalfmoveClock
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			cell := s.Cells[row][col]
			if cell.Kind == NoKind {
				continue
			}
			b.grid[row][col] = &Piece{Kind: cell.Kind, Color: cell.Color, Pos: Position{row, col}, Moved: cell.Moved}
		}
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	for _, cell := range s.Captured {
		if cell.Kind < Pawn || cell.Kind > King {
			return nil, malformed("captured piece of unknown kind %d", int(cell.Kind))
		}
		b.captured = append(b.captured, &Piece{Kind: cell.Kind, Color: cell.Color, Pos: NoPosition, Moved: cell.Moved})
	}
	if s.LastMove != nil {
		if !InBounds(s.LastMove.From) || !InBounds(s.LastMove.To) {
			return nil, malformed("last move %v out of bounds", *s.LastMove)
		}
		m := *s.LastMove
		b.lastMove = &m
	}
	for k, v := range s.Repetitions {
		b.seen[k] = v
	}
	b.history = append([]MoveRecord(nil), s.History...)
	return b, nil
}

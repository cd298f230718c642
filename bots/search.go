package bots

import (
	"math"
	"math/rand"
	"time"

	"idiotchess/board"
)

const (
	// MateScore is the value of delivering checkmate, before the depth bonus.
	MateScore = 1e6
	// scores closer than this belong to one tie set
	tieTolerance = 1e-9
)

// ScoredMove is a root move with its minimax value for the searching side.
type ScoredMove struct {
	Move  board.Move
	Score float64
}

// Search runs minimax with alpha-beta pruning over cloned boards. Ties
// between equally scored root moves are broken with its own random source.
// NodeLimit and Deadline, when set, bound the work; the best move found so
// far is returned once either is exceeded.
type Search struct {
	NodeLimit int
	Deadline  time.Time

	rng   *rand.Rand
	nodes int
}

func NewSearch(seed int64) *Search {
	return &Search{rng: rand.New(rand.NewSource(seed))}
}

// Nodes is the number of positions visited by the last search.
func (s *Search) Nodes() int { return s.nodes }

func (s *Search) exhausted() bool {
	if s.NodeLimit > 0 && s.nodes >= s.NodeLimit {
		return true
	}
	return !s.Deadline.IsZero() && time.Now().After(s.Deadline)
}

// FindBestMove returns the best move of c at the given depth. Depth 0 or
// less falls back to greedy scoring. ok is false when c is checkmated or has
// no legal move.
func (s *Search) FindBestMove(b *board.Board, c board.Color, depth int, eval EvalFunc) (board.Move, bool) {
	if depth <= 0 {
		return s.FindGreedyMove(b, c)
	}
	if b.IsCheckmate(c) {
		return board.Move{}, false
	}
	return s.pick(s.ScoreMoves(b, c, depth, eval))
}

// ScoreMoves scores every legal root move of c. Each root child gets a full
// window, so the scores are exact minimax values.
func (s *Search) ScoreMoves(b *board.Board, c board.Color, depth int, eval EvalFunc) []ScoredMove {
	s.nodes = 0
	var res []ScoredMove
	for _, m := range b.LegalMoves(c) {
		if len(res) > 0 && s.exhausted() {
			break
		}
		child := b.Clone()
		child.ApplyUnchecked(m)
		s.nodes++
		score := s.minimax(child, c, depth-1, math.Inf(-1), math.Inf(1), false, eval)
		res = append(res, ScoredMove{Move: m, Score: score})
	}
	return res
}

// minimax scores b from c's point of view. maximizing tells whether c is the
// side to move at this ply.
func (s *Search) minimax(b *board.Board, c board.Color, depth int, alpha, beta float64, maximizing bool, eval EvalFunc) float64 {
	if depth <= 0 || s.exhausted() {
		return eval(b, c)
	}
	mover := c
	if !maximizing {
		mover = c.Opponent()
	}
	moves := b.LegalMoves(mover)
	if len(moves) == 0 {
		if !b.IsInCheck(mover) {
			return 0
		}
		// faster mates score higher
		mate := MateScore + float64(depth)
		if maximizing {
			return -mate
		}
		return mate
	}

	if maximizing {
		best := math.Inf(-1)
		for _, m := range moves {
			child := b.Clone()
			child.ApplyUnchecked(m)
			s.nodes++
			best = math.Max(best, s.minimax(child, c, depth-1, alpha, beta, false, eval))
			alpha = math.Max(alpha, best)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := math.Inf(1)
	for _, m := range moves {
		child := b.Clone()
		child.ApplyUnchecked(m)
		s.nodes++
		best = math.Min(best, s.minimax(child, c, depth-1, alpha, beta, true, eval))
		beta = math.Min(beta, best)
		if beta <= alpha {
			break
		}
	}
	return best
}

// BestTies returns the moves sharing the maximal score.
func BestTies(scored []ScoredMove) []ScoredMove {
	if len(scored) == 0 {
		return nil
	}
	best := math.Inf(-1)
	for _, sm := range scored {
		best = math.Max(best, sm.Score)
	}
	var ties []ScoredMove
	for _, sm := range scored {
		if math.Abs(sm.Score-best) <= tieTolerance {
			ties = append(ties, sm)
		}
	}
	return ties
}

func (s *Search) pick(scored []ScoredMove) (board.Move, bool) {
	ties := BestTies(scored)
	if len(ties) == 0 {
		return board.Move{}, false
	}
	return ties[s.rng.Intn(len(ties))].Move, true
}

// ScoreMove is the greedy value of m for c: the value of the piece it
// captures plus a small bonus for landing near the centre.
func ScoreMove(b *board.Board, m board.Move, c board.Color) float64 {
	var score float64
	if target := b.PieceAt(m.To); target != nil {
		score += PieceValue(target.Kind)
	} else if p := b.PieceAt(m.From); p != nil && p.Kind == board.Pawn && m.From.Col != m.To.Col {
		score += PieceValue(board.Pawn)
	}
	centerDistance := math.Abs(3.5-float64(m.To.Row)) + math.Abs(3.5-float64(m.To.Col))
	score += (4 - centerDistance) * 0.1
	return score
}

// FindGreedyMove is the 0-ply search: every legal move is scored with
// ScoreMove.
func (s *Search) FindGreedyMove(b *board.Board, c board.Color) (board.Move, bool) {
	s.nodes = 0
	var scored []ScoredMove
	for _, m := range b.LegalMoves(c) {
		s.nodes++
		scored = append(scored, ScoredMove{Move: m, Score: ScoreMove(b, m, c)})
	}
	return s.pick(scored)
}

//
// Corvid - a UCI chess engine
//
// MIT License
//
// Copyright (c) 2021-2026 Corvid Chess Engine Contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package ordering scores and incrementally selects pseudo-legal
// moves for the search's move loop. Good ordering is what makes
// alpha-beta pruning effective: the search wants to try the move most
// likely to cause a beta cutoff first, so GetNextBest does a partial
// selection sort rather than a full upfront sort, keeping ordering
// cost proportional to how many moves the node actually searches.
package ordering

import (
	"github.com/corvidchess/engine/internal/board"
	"github.com/corvidchess/engine/internal/config"
	"github.com/corvidchess/engine/internal/history"
	"github.com/corvidchess/engine/internal/see"
	. "github.com/corvidchess/engine/internal/types"
)

// Score tiers from the move-ordering design: TT move first, then
// capture/promotion tiers by estimated gain, then killers and
// counter-moves, then ordinary quiets by history, with failing
// captures and underpromotions pushed to the bottom.
const (
	scoreTTMove          = 9_000_000
	scoreQueenPromoCap   = 1_500_000
	scoreKnightPromoCap  = 1_400_000
	scoreGoodCaptureBase = 1_200_000
	scoreQueenPromo      = 1_100_000
	scoreKnightPromo     = 1_000_000
	scoreKiller0         = 900_000
	scoreKiller1         = 800_000
	scoreCounterMove     = 700_000
	scoreBadCaptureBase  = -900_000
	scoreUnderPromotion  = -1_500_000

	// seeGoodCaptureThreshold is the "≥ -98" SEE cutoff a capture must
	// clear to be sorted among the good captures rather than the bad
	// ones; it lets an exchange that is technically a small pawn loss
	// (e.g. a small positional sacrifice) still sort ahead of quiets.
	seeGoodCaptureThreshold = -98
)

// Scorer ranks the moves of one node and serves them out in
// descending score order via GetNextBest.
type Scorer struct {
	moves  []Move
	scores []int32
}

// NewScorer returns a scorer with room for the given capacity,
// reused across nodes by the caller via Reset to avoid allocation.
func NewScorer(capacity int) *Scorer {
	return &Scorer{
		moves:  make([]Move, 0, capacity),
		scores: make([]int32, 0, capacity),
	}
}

// Params bundles the context Score needs beyond the move and board:
// the TT move hint, ply (for killers), the side to move's parent/
// grandparent piece+square (for continuation history and the counter
// move), and the history tables themselves.
type Params struct {
	TTMove     Move
	Ply        int
	PrevPiece  Piece
	PrevTo     Square
	GPrevPiece Piece
	GPrevTo    Square
	History    *history.Tables
}

// Load scores every move in ml against the position b and clears any
// previous contents.
func (s *Scorer) Load(b *board.Board, ml *board.MoveList, p Params) {
	s.moves = s.moves[:0]
	s.scores = s.scores[:0]
	side := b.SideToMove()
	for i := 0; i < ml.Count; i++ {
		m := ml.Moves[i]
		s.moves = append(s.moves, m)
		s.scores = append(s.scores, score(b, m, side, p))
	}
}

// Len returns the number of moves still held by the scorer.
func (s *Scorer) Len() int {
	return len(s.moves)
}

// GetNextBest finds the highest-scored move in [i, Len()), swaps it to
// position i and returns it. Moves before i are left untouched, so
// repeated calls with i = 0, 1, 2, ... yield the full move order with
// cost proportional to the number of calls actually made.
func (s *Scorer) GetNextBest(i int) Move {
	best := i
	for j := i + 1; j < len(s.moves); j++ {
		if s.scores[j] > s.scores[best] {
			best = j
		}
	}
	if best != i {
		s.moves[i], s.moves[best] = s.moves[best], s.moves[i]
		s.scores[i], s.scores[best] = s.scores[best], s.scores[i]
	}
	return s.moves[i]
}

func score(b *board.Board, m Move, side Color, p Params) int32 {
	if config.Settings.Search.UseTTMove && m == p.TTMove {
		return scoreTTMove
	}

	if m.IsPromotion() {
		pt := m.PromotionType()
		capture := m.IsCapture()
		switch {
		case pt == Queen && capture:
			return scoreQueenPromoCap
		case pt == Knight && capture:
			return scoreKnightPromoCap
		case pt == Queen:
			return scoreQueenPromo
		case pt == Knight:
			return scoreKnightPromo
		default:
			// rook/bishop (under)promotions, with or without capture.
			return scoreUnderPromotion
		}
	}

	if m.IsCapture() {
		victimType := Pawn
		if !m.IsEnPassant() {
			victimType = b.PieceAt(m.To()).TypeOf()
		}
		attackerType := b.PieceAt(m.From()).TypeOf()
		mvvLva := int32(10*int(victimType.Value()) - int(attackerType.Value()))
		if !config.Settings.Search.UseSEE || see.See(b, m, seeGoodCaptureThreshold) {
			return scoreGoodCaptureBase + mvvLva
		}
		return scoreBadCaptureBase + mvvLva
	}

	if config.Settings.Search.UseKiller && p.History.IsKiller(p.Ply, m) {
		k0, _ := p.History.Killers(p.Ply)
		if m == k0 {
			return scoreKiller0
		}
		return scoreKiller1
	}

	if counter := p.History.Counter(p.PrevPiece, p.PrevTo); counter != MoveNone && counter == m {
		return scoreCounterMove
	}

	piece := b.PieceAt(m.From())
	to := m.To()
	seeVal := int32(0)
	if config.Settings.Search.UseSEE {
		seeVal = int32(see.SeeValue(b, m, false))
	}
	hist := p.History.Butterfly(side, m.From(), to) +
		p.History.Cont1(p.PrevPiece, p.PrevTo, piece, to) +
		p.History.Cont2(p.GPrevPiece, p.GPrevTo, piece, to)
	return seeVal + hist
}

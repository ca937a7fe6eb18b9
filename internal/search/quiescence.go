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

package search

import (
	"github.com/corvidchess/engine/internal/board"
	"github.com/corvidchess/engine/internal/config"
	"github.com/corvidchess/engine/internal/ordering"
	"github.com/corvidchess/engine/internal/see"
	"github.com/corvidchess/engine/internal/tt"
	. "github.com/corvidchess/engine/internal/types"
)

// quiescence resolves tactical noise at the search horizon by playing
// out captures only until the position is "quiet", then returns a
// static score. It shares the TT, history and node stack with pvs but
// always runs at depth 0 and never extends the node stack's
// continuation-history chain past the horizon.
func (s *State) quiescence(alpha, beta Value) Value {
	us := s.Board.SideToMove()
	ply := s.ply

	alpha = maxVal(alpha, -MateValue+Value(ply))
	beta = minVal(beta, MateValue-Value(ply)+1)
	if alpha >= beta {
		return alpha
	}

	if ply >= MaxPly {
		return s.Eval.Eval(s.Board, us)
	}

	s.nodes++
	if ply > s.seldepth {
		s.seldepth = ply
	}
	s.pollStop(0)
	if s.stop {
		return 0
	}

	hash := s.Board.Hash()
	var ttMove Move
	if config.Settings.Search.UseQSTT {
		if entry, ok := s.TT.Probe(hash); ok {
			ttMove = entry.Move
			ttScore := tt.AdjustHashScore(entry.Score, ply)
			switch entry.Bound {
			case tt.BoundExact:
				return ttScore
			case tt.BoundLower:
				if ttScore >= beta {
					return ttScore
				}
			case tt.BoundUpper:
				if ttScore <= alpha {
					return ttScore
				}
			}
		}
	}

	inCheck := s.Board.InCheck(us)
	var bestScore Value
	var ml board.MoveList

	if inCheck {
		bestScore = -MateValue + Value(ply)
		s.Board.GenerateLegals(&ml)
	} else if config.Settings.Search.UseQSStandpat {
		bestScore = s.Eval.Eval(s.Board, us)
		if bestScore >= beta {
			return bestScore
		}
		if bestScore > alpha {
			alpha = bestScore
		}
		s.Board.GenerateCaptures(&ml)
	} else {
		bestScore = -MateValue + Value(ply)
		s.Board.GenerateCaptures(&ml)
	}

	originalAlpha := alpha
	bestMove := MoveNone

	scorer := s.scorers[ply]
	scorer.Load(s.Board, &ml, ordering.Params{TTMove: ttMove, Ply: ply, History: s.Hist})

	for i := 0; i < scorer.Len(); i++ {
		m := scorer.GetNextBest(i)

		if !inCheck && config.Settings.Search.UseSEE && !see.See(s.Board, m, 1) {
			continue
		}

		s.ply++
		s.Board.Play(m)
		score := -s.quiescence(-beta, -alpha)
		s.Board.Undo(m)
		s.ply--

		if s.stop {
			return 0
		}

		if score > bestScore {
			bestScore = score
			if score > alpha {
				bestMove = m
				alpha = score
				s.pv.update(ply, m)
				if alpha >= beta {
					break
				}
			}
		}
	}

	if inCheck && ml.Count == 0 {
		return -MateValue + Value(ply)
	}

	if config.Settings.Search.UseQSTT {
		bound := tt.BoundUpper
		if bestScore >= beta {
			bound = tt.BoundLower
		} else if bestScore > originalAlpha {
			bound = tt.BoundExact
		}
		s.TT.Store(tt.Entry{
			Key:   hash,
			Move:  bestMove,
			Score: tt.ToHashScore(bestScore, ply),
			Depth: 0,
			Bound: bound,
		})
	}

	return bestScore
}

func maxVal(a, b Value) Value {
	if a > b {
		return a
	}
	return b
}

func minVal(a, b Value) Value {
	if a < b {
		return a
	}
	return b
}

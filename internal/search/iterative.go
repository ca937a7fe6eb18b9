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
	"time"

	"github.com/corvidchess/engine/internal/uciinterface"
	"github.com/corvidchess/engine/internal/util"
	. "github.com/corvidchess/engine/internal/types"
)

// aspirationDelta is the initial half-width of the aspiration window
// opened around the previous iteration's score, in centipawns.
const aspirationDelta = 25

// aspirationMinDepth is the shallowest depth at which an aspiration
// window is attempted; below it the search always opens full-width,
// since the previous score is too noisy to centre a window on.
const aspirationMinDepth = 7

// IterativeDeepening repeatedly calls pvs at increasing depth, using
// the previous iteration's score to open a narrow aspiration window
// and widening on fail-low/fail-high, until the time manager's soft
// deadline is reached, the requested depth is hit, or the search is
// stopped externally. It leaves the best move and PV of the last
// completed iteration in s. report may be nil, in which case no UCI
// progress is emitted.
func (s *State) IterativeDeepening(maxDepth int, report uciinterface.UciDriver) {
	if maxDepth <= 0 || maxDepth > MaxDepth {
		maxDepth = MaxDepth
	}

	score := s.Eval.Eval(s.Board, s.Board.SideToMove())

	for depth := 1; depth <= maxDepth; depth++ {
		var alpha, beta Value
		delta := Value(aspirationDelta)

		if depth >= aspirationMinDepth {
			alpha = maxVal(score-delta, -ValueInfinite)
			beta = minVal(score+delta, ValueInfinite)
		} else {
			alpha, beta = -ValueInfinite, ValueInfinite
		}

		for {
			s.pv.reset(0)
			iterScore := s.pvs(depth, alpha, beta, false)

			if s.stop {
				break
			}

			if iterScore <= alpha {
				if report != nil {
					report.SendAspirationResearchInfo(depth, alpha, beta, iterScore)
				}
				beta = (alpha + beta) / 2
				alpha = maxVal(alpha-delta, -ValueInfinite)
				delta += delta
				continue
			}
			if iterScore >= beta {
				if report != nil {
					report.SendAspirationResearchInfo(depth, alpha, beta, iterScore)
				}
				depth = maxInt(1, depth-failHighDepthPenalty(depth, iterScore, beta))
				beta = minVal(beta+delta, ValueInfinite)
				delta += delta
				continue
			}

			score = iterScore
			break
		}

		if s.stop {
			break
		}

		if report != nil {
			elapsed := time.Duration(s.tm.ElapsedMs()) * time.Millisecond
			nps := util.Nps(s.nodes, elapsed)
			report.SendIterationEndInfo(depth, s.seldepth, score, s.nodes, nps, elapsed, s.PV())
		}

		endgame := s.Eval.Phase(s.Board, White)+s.Eval.Phase(s.Board, Black) >= 64
		if s.tm != nil && s.tm.ShouldStopSoft(endgame) {
			break
		}
		if s.tm != nil && s.tm.MaxDepth() > 0 && depth >= s.tm.MaxDepth() {
			break
		}
	}
}

// failHighDepthPenalty reduces the re-search depth by one on a
// fail-high with a score that is not already a mate score, the
// standard heuristic that a fail-high move found at full depth is
// unlikely to need the same depth again to confirm.
func failHighDepthPenalty(depth int, score, beta Value) int {
	if score >= beta && !IsMateScore(score) && depth > 1 {
		return 1
	}
	return 0
}

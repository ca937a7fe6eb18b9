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
	"github.com/corvidchess/engine/internal/tt"
	. "github.com/corvidchess/engine/internal/types"
)

// matedInMax is the score boundary below which a position is
// considered "already mated within the visible horizon"; quiet-move
// pruning is suppressed once the best score seen is this bad, since
// further pruning could make the engine miss the only saving move.
const matedInMax = -MateThreshold

// pvs is the main recursive principal-variation search. cutnode hints
// that this node is expected to fail high (used to tune reductions);
// pv is true when beta-alpha > 1, i.e. this node is on the principal
// variation rather than a null-window scout node.
func (s *State) pvs(depth int, alpha, beta Value, cutnode bool) Value {
	ply := s.ply
	root := ply == 0
	pv := beta-alpha > 1

	us := s.Board.SideToMove()
	inCheck := s.Board.InCheck(us)

	if depth <= 0 && !inCheck {
		if !config.Settings.Search.UseQuiescence {
			return s.Eval.Eval(s.Board, us)
		}
		return s.quiescence(alpha, beta)
	}
	if inCheck {
		depth = maxInt(depth, 1)
	}

	s.nodes++
	if ply > s.seldepth {
		s.seldepth = ply
	}
	s.pollStop(depth)
	if s.stop {
		return 0
	}

	if !root {
		if s.Board.IsDraw() {
			return Value(1 - int(s.nodes&2))
		}
		if ply >= MaxPly {
			if inCheck {
				return 0
			}
			return s.Eval.Eval(s.Board, us)
		}
		if config.Settings.Search.UseMDP {
			alpha = maxVal(alpha, -MateValue+Value(ply))
			beta = minVal(beta, MateValue-Value(ply)+1)
			if alpha >= beta {
				return alpha
			}
		}
	}

	s.pv.reset(ply)

	hash := s.Board.Hash()
	var ttMove Move
	var ttHit bool
	var ttBound tt.Bound
	var ttDepth int
	var ttScore Value
	if config.Settings.Search.UseTT {
		if entry, ok := s.TT.Probe(hash); ok {
			ttHit = true
			ttMove = entry.Move
			ttBound = entry.Bound
			ttDepth = int(entry.Depth)
			ttScore = tt.AdjustHashScore(entry.Score, ply)

			if config.Settings.Search.UseTTValue {
				if (!pv || depth == 0) && ttDepth >= depth && (cutnode || ttScore <= alpha) {
					consistent := (ttBound == tt.BoundLower && ttScore >= beta) ||
						(ttBound == tt.BoundUpper && ttScore <= alpha) ||
						ttBound == tt.BoundExact
					if consistent {
						if ttScore >= beta && ttMove != MoveNone && ttMove.IsQuiet() {
							s.applyBetaHistory(depth, ttMove, nil, nil)
						}
						return ttScore
					}
				}

				if !pv && ttDepth >= depth-1 && ttBound == tt.BoundUpper &&
					ttScore+140 <= alpha && (cutnode || ttScore <= alpha) {
					return alpha
				}
			}
		}
	}

	if config.Settings.Search.UseIID && depth >= config.Settings.Search.IIDDepth && !ttHit && !root {
		depth = maxInt(depth-config.Settings.Search.IIDReduction, 1)
	}

	staticEval := s.Eval.Eval(s.Board, us)
	if inCheck {
		staticEval = -MateValue + Value(ply)
	}
	s.nodeStack[ply].Eval = staticEval

	bestScore := staticEval
	if ttHit && config.Settings.Search.UseTTValue {
		if (ttBound == tt.BoundLower && ttScore > bestScore) ||
			(ttBound == tt.BoundUpper && ttScore < bestScore) ||
			ttBound == tt.BoundExact {
			bestScore = ttScore
		}
	}

	improving := false
	if ply >= 2 && !inCheck && staticEval > s.nodeStack[ply-2].Eval {
		improving = true
	}

	if !inCheck && !pv {
		if depth <= 2 && staticEval+150+boolToVal(improving)*75 <= alpha {
			qval := s.quiescence(alpha, beta)
			if qval <= alpha {
				return qval
			}
		}

		if config.Settings.Search.UseRFP && depth <= 8 && bestScore-Value(85*(depth-boolToInt(improving))) >= beta {
			return bestScore
		}

		parentTactical := ply > 0 && s.nodeStack[ply-1].IsTactical
		parentNull := ply > 0 && s.nodeStack[ply-1].IsNull
		noRefutation := !(ttHit && ttBound == tt.BoundUpper && ttScore < beta)
		if config.Settings.Search.UseNullMove && bestScore >= beta && !parentNull && depth >= config.Settings.Search.NmpDepth &&
			s.Board.NonPawnMaterial(us) > 0 && noRefutation {
			r := config.Settings.Search.NmpReduction + depth/5 + minInt(3, int(bestScore-beta)/191)
			if parentTactical {
				r++
			}

			s.nodeStack[ply].IsNull = true
			s.Board.PlayNullMove()
			s.ply++
			score := -s.pvs(depth-r, -beta, -beta+1, !cutnode)
			s.ply--
			s.Board.UndoNullMove()

			if s.stop {
				return 0
			}
			if score >= beta {
				if IsMateScore(score) {
					return beta
				}
				return score
			}
		}
	}

	var ml board.MoveList
	s.Board.GenerateLegals(&ml)
	if ml.Count == 0 {
		if inCheck {
			return -MateValue + Value(ply)
		}
		return 0
	}

	s.Hist.ClearKillersAt(ply + 1)

	var prevPiece Piece = NoPiece
	var prevTo Square = SqNone
	var gprevPiece Piece = NoPiece
	var gprevTo Square = SqNone
	if ply > 0 {
		prevPiece = s.nodeStack[ply-1].Piece
		prevTo = s.nodeStack[ply-1].Move.To()
	}
	if ply > 1 {
		gprevPiece = s.nodeStack[ply-2].Piece
		gprevTo = s.nodeStack[ply-2].Move.To()
	}

	scorer := s.scorers[ply]
	scorer.Load(s.Board, &ml, ordering.Params{
		TTMove: ttMove, Ply: ply,
		PrevPiece: prevPiece, PrevTo: prevTo,
		GPrevPiece: gprevPiece, GPrevTo: gprevTo,
		History: s.Hist,
	})

	originalAlpha := alpha
	bestMove := MoveNone
	movesSearched := 0
	skipQuiets := false

	quietsTried := make([]Move, 0, ml.Count)
	quietPieces := make([]Piece, 0, ml.Count)

	for i := 0; i < scorer.Len(); i++ {
		m := scorer.GetNextBest(i)
		mvQuiet := m.IsQuiet()

		if mvQuiet && skipQuiets {
			continue
		}

		side := us
		from, to := m.From(), m.To()
		scHist := s.Hist.Butterfly(side, from, to)

		if !root && mvQuiet && bestScore > matedInMax {
			histCap := [2]int32{-1000, -2000}[boolToInt(improving)]
			histDepthCap := [2]int{3, 2}[boolToInt(improving)]
			if depth <= histDepthCap && scHist < histCap*int32(depth) {
				continue
			}
			futilityHist := [2]int32{-500, -1000}[boolToInt(improving)]
			if config.Settings.Search.UseFP && depth <= 8 && staticEval+Value(90*depth) <= alpha && scHist < futilityHist {
				skipQuiets = true
			}
			if config.Settings.Search.UseLmp && depth <= 8 && len(quietsTried) >= lmpLimit(improving, depth) {
				skipQuiets = true
			}
			if skipQuiets {
				continue
			}
		}

		moving := s.Board.PieceAt(from)

		s.nodeStack[ply].Move = m
		s.nodeStack[ply].Piece = moving
		s.nodeStack[ply].IsTactical = !mvQuiet
		s.nodeStack[ply].IsNull = false

		s.Board.Play(m)
		s.ply++

		newDepth := depth - 1
		if config.Settings.Search.UseExt && config.Settings.Search.UseCheckExt && s.Board.InCheck(s.Board.SideToMove()) {
			newDepth++
		}

		var score Value
		reduction := 0
		if config.Settings.Search.UseLmr && movesSearched >= config.Settings.Search.LmrMovesSearched &&
			depth > config.Settings.Search.LmrDepth && mvQuiet {
			reduction = LmrReduction(depth, movesSearched+1)
			if !improving {
				reduction++
			}
			if pv {
				reduction--
			}
			if config.Settings.Search.UseKiller && s.Hist.IsKiller(ply, m) {
				reduction--
			}
			reduction -= clampInt(int(scHist/7000), -2, 2)
			reduction = clampInt(reduction, 1, maxInt(depth-1, 1))
		}

		if movesSearched == 0 || !config.Settings.Search.UsePVS {
			score = -s.pvs(newDepth, -beta, -alpha, false)
		} else {
			searchDepth := newDepth
			if reduction > 1 {
				searchDepth = newDepth - reduction
			}
			score = -s.pvs(searchDepth, -alpha-1, -alpha, true)
			if score > alpha && reduction > 1 {
				score = -s.pvs(newDepth, -alpha-1, -alpha, !cutnode)
			}
			if pv && score > alpha {
				score = -s.pvs(newDepth, -beta, -alpha, false)
			}
		}

		s.Board.Undo(m)
		s.ply--
		movesSearched++

		if s.stop {
			return 0
		}

		if mvQuiet {
			quietsTried = append(quietsTried, m)
			quietPieces = append(quietPieces, moving)
		}

		if score > bestScore {
			bestScore = score
			if score > alpha {
				bestMove = m
				alpha = score
				s.pv.update(ply, m)
				if root {
					s.rootBestMove = m
					s.rootBestVal = score
				}
				if alpha >= beta {
					if mvQuiet {
						s.applyBetaHistory(depth, m, quietsTried[:len(quietsTried)-1], quietPieces[:len(quietPieces)-1])
					}
					break
				}
			}
		}
	}

	if config.Settings.Search.UseTT {
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
			Depth: uint8(depth),
			Bound: bound,
		})
	}

	return bestScore
}

// applyBetaHistory runs the quiet beta-cutoff update: bonus for the
// cutting move, malus for every other quiet already tried at this
// node, killer and counter-move promotion.
func (s *State) applyBetaHistory(depth int, cutMove Move, quietsTried []Move, quietPieces []Piece) {
	ply := s.ply
	us := s.Board.SideToMove()
	cutPiece := s.nodeStack[ply].Piece

	var prevPiece Piece = NoPiece
	var prevTo Square = SqNone
	var gprevPiece Piece = NoPiece
	var gprevTo Square = SqNone
	if ply > 0 {
		prevPiece = s.nodeStack[ply-1].Piece
		prevTo = s.nodeStack[ply-1].Move.To()
	}
	if ply > 1 {
		gprevPiece = s.nodeStack[ply-2].Piece
		gprevTo = s.nodeStack[ply-2].Move.To()
	}

	s.Hist.Update(us, ply, depth, cutMove, cutPiece, quietsTried, quietPieces, prevPiece, prevTo, gprevPiece, gprevTo)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func boolToVal(b bool) Value {
	if b {
		return 1
	}
	return 0
}

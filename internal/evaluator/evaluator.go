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

// Package evaluator provides the static positional evaluation the
// search falls back on at quiescence leaves and uses for pruning
// decisions (razoring, reverse futility, improving). It is a classic
// tapered piece-square evaluator: material plus a piece-square table
// blended between midgame and endgame values by each side's own game
// phase.
package evaluator

import (
	"github.com/corvidchess/engine/internal/attacks"
	"github.com/corvidchess/engine/internal/board"
	"github.com/corvidchess/engine/internal/config"
	. "github.com/corvidchess/engine/internal/types"
)

// maxNonPawnMaterial is the non-pawn, non-king material present in the
// starting position for one side: 2 knights + 2 bishops + 2 rooks + 1
// queen = 600 + 600 + 1000 + 900.
const maxNonPawnMaterial = 2*300 + 2*300 + 2*500 + 900

// PhaseMax is the per-side phase value reported at the endgame end of
// the scale; the iterative-deepening loop treats a combined phase of
// 2*PhaseMax (64) as a full endgame, for which the TimeManager scales
// its soft deadline down.
const PhaseMax = 32

// Evaluator computes static evaluations for a board position. It is
// stateless and safe to share across searches; a single instance is
// owned by search.Engine and handed to each search's State.
type Evaluator struct{}

// New returns a ready-to-use Evaluator.
func New() *Evaluator {
	return &Evaluator{}
}

// Phase returns color c's game phase on a 0 (opening, full material) to
// PhaseMax (endgame, no non-pawn material) scale.
func (e *Evaluator) Phase(b *board.Board, c Color) int {
	np := int(b.NonPawnMaterial(c))
	if np >= maxNonPawnMaterial {
		return 0
	}
	phase := PhaseMax - (np*PhaseMax)/maxNonPawnMaterial
	if phase > PhaseMax {
		phase = PhaseMax
	}
	if phase < 0 {
		phase = 0
	}
	return phase
}

// Eval returns the static evaluation of the position from color c's
// point of view: material balance plus tapered piece-square tables,
// a tempo bonus for the side to move, and (unless the lazy cutoff
// below fires) mobility.
func (e *Evaluator) Eval(b *board.Board, c Color) Value {
	if config.Settings.Eval.UseLazyEval {
		materialOnly := b.Material(White) - b.Material(Black)
		if c == Black {
			materialOnly = -materialOnly
		}
		threshold := Value(config.Settings.Eval.LazyEvalThreshold)
		if materialOnly > threshold || materialOnly < -threshold {
			return materialOnly + Value(config.Settings.Eval.Tempo)
		}
	}
	white := e.evalSide(b, White)
	black := e.evalSide(b, Black)
	score := white - black
	if c == Black {
		score = -score
	}
	return score + Value(config.Settings.Eval.Tempo)
}

func (e *Evaluator) evalSide(b *board.Board, c Color) Value {
	phase := e.Phase(b, c)
	var mid, end int32
	for pt := Pawn; pt <= King; pt++ {
		p := MakePiece(c, pt)
		bb := b.PieceBb(p)
		value := int32(pt.Value())
		for bb != 0 {
			s := bb.PopLsb()
			mid += value + int32(pstMid[p][s])
			end += value + int32(pstEnd[p][s])
		}
	}
	if config.Settings.Eval.UseMobility {
		m := int32(e.mobility(b, c)) * int32(config.Settings.Eval.MobilityBonus)
		mid += m
		end += m
	}
	// Taper: phase 0 is pure midgame, PhaseMax is pure endgame.
	tapered := (mid*int32(PhaseMax-phase) + end*int32(phase)) / int32(PhaseMax)
	return Value(tapered)
}

// mobility counts, for every knight/bishop/rook/queen of color c, the
// number of squares it attacks that are not occupied by one of c's own
// pieces. Pawns and the king are excluded: their mobility says little
// about positional strength relative to the cost of computing it.
func (e *Evaluator) mobility(b *board.Board, c Color) int {
	occupied := b.Occupied()
	own := b.AllPieces(c)
	count := 0
	for pt := Knight; pt <= Queen; pt++ {
		bb := b.PieceBb(MakePiece(c, pt))
		for bb != 0 {
			s := bb.PopLsb()
			count += (attacks.PieceTypeAttacks(pt, s, occupied) &^ own).PopCount()
		}
	}
	return count
}

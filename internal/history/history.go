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

// Package history implements the search's move-ordering memory: a
// butterfly history table, one- and two-ply continuation histories,
// killer moves and a counter-move table. All are updated with a
// bounded "gravity" formula so repeated reinforcement saturates
// instead of overflowing.
package history

import (
	. "github.com/corvidchess/engine/internal/types"
)

// Tables owns every history structure the search consults for move
// ordering and quiet-move pruning decisions. One instance is owned by
// search.Engine and handed to each search's State; it is preserved
// across searches of the same game, aged (halved) only on a new game.
type Tables struct {
	butterfly [ColorLength][SquareLength][SquareLength]int32
	cont1     [PieceLength][SquareLength][PieceLength][SquareLength]int32
	cont2     [PieceLength][SquareLength][PieceLength][SquareLength]int32
	killers   [MaxPly + 1][2]Move
	counter   [PieceLength][SquareLength]Move
}

// New returns an empty set of history tables.
func New() *Tables {
	return &Tables{}
}

// ClearAll zeroes every table. A new game does not call it (the engine
// ages history with Age instead); history is intentionally preserved
// across searches within the same game, since reused history is a
// significant source of move-ordering strength between consecutive
// `go` commands.
func (t *Tables) ClearAll() {
	*t = Tables{}
}

// Age halves every history value, called between games to reduce
// staleness without discarding all accumulated signal.
func (t *Tables) Age() {
	for c := White; c <= Black; c++ {
		for f := SqA1; f <= SqH8; f++ {
			for to := SqA1; to <= SqH8; to++ {
				t.butterfly[c][f][to] /= 2
			}
		}
	}
	for p := WhitePawn; p < PieceLength; p++ {
		for s := SqA1; s <= SqH8; s++ {
			for p2 := WhitePawn; p2 < PieceLength; p2++ {
				for s2 := SqA1; s2 <= SqH8; s2++ {
					t.cont1[p][s][p2][s2] /= 2
					t.cont2[p][s][p2][s2] /= 2
				}
			}
		}
	}
}

// ClearKillersAt resets the killer slots for the given ply, done
// before scoring the move list at a node so a sibling node's killers
// never leak in.
func (t *Tables) ClearKillersAt(ply int) {
	t.killers[ply][0] = MoveNone
	t.killers[ply][1] = MoveNone
}

// Killers returns the two killer moves recorded at ply.
func (t *Tables) Killers(ply int) (Move, Move) {
	return t.killers[ply][0], t.killers[ply][1]
}

// IsKiller reports whether m is one of the killer moves at ply.
func (t *Tables) IsKiller(ply int, m Move) bool {
	return m == t.killers[ply][0] || m == t.killers[ply][1]
}

// Counter returns the recorded counter-move for the given parent piece
// and destination square, or MoveNone.
func (t *Tables) Counter(prevPiece Piece, prevTo Square) Move {
	if prevPiece == NoPiece {
		return MoveNone
	}
	return t.counter[prevPiece][prevTo]
}

// Butterfly returns the current butterfly history score for a move.
func (t *Tables) Butterfly(side Color, from, to Square) int32 {
	return t.butterfly[side][from][to]
}

// Cont1 returns the one-ply continuation history score: how well
// (piece, to) has followed (prevPiece, prevTo).
func (t *Tables) Cont1(prevPiece Piece, prevTo Square, piece Piece, to Square) int32 {
	if prevPiece == NoPiece {
		return 0
	}
	return t.cont1[prevPiece][prevTo][piece][to]
}

// Cont2 returns the two-ply (grandparent) continuation history score.
func (t *Tables) Cont2(gprevPiece Piece, gprevTo Square, piece Piece, to Square) int32 {
	if gprevPiece == NoPiece {
		return 0
	}
	return t.cont2[gprevPiece][gprevTo][piece][to]
}

// bonus computes the depth-scaled reinforcement magnitude used both as
// a bonus for the cutting move and (negated) as a malus for quiets
// tried and rejected at this node.
func bonus(depth int) int32 {
	b := int32(16 * depth * depth)
	if b > MaxHistory {
		b = MaxHistory
	}
	return b
}

// gravity applies the bounded update `new = old + bonus - old*|bonus|/MAX_HISTORY`
// so repeated reinforcement in one direction saturates toward
// ±MAX_HISTORY rather than growing without bound.
func gravity(old, delta int32) int32 {
	abs := delta
	if abs < 0 {
		abs = -abs
	}
	return old + delta - old*abs/MaxHistory
}

// Update applies the beta-cutoff history update described in the
// component's bonus/malus rule: the cutting quiet move gets a positive
// bonus on butterfly/cont1/cont2 and is promoted to killer[0] and
// counter-move; every other quiet already tried at this node gets the
// matching malus. prevPiece/prevTo and gprevPiece/gprevTo identify the
// parent and grandparent moves for the continuation histories; either
// may be NoPiece/SqNone if unavailable (root or ply < 2).
func (t *Tables) Update(side Color, ply, depth int, cutMove Move, cutPiece Piece, quietsTried []Move, quietPieces []Piece,
	prevPiece Piece, prevTo Square, gprevPiece Piece, gprevTo Square) {

	b := bonus(depth)
	to := cutMove.To()
	from := cutMove.From()

	t.butterfly[side][from][to] = gravity(t.butterfly[side][from][to], b)
	if prevPiece != NoPiece {
		t.cont1[prevPiece][prevTo][cutPiece][to] = gravity(t.cont1[prevPiece][prevTo][cutPiece][to], b)
	}
	if gprevPiece != NoPiece {
		t.cont2[gprevPiece][gprevTo][cutPiece][to] = gravity(t.cont2[gprevPiece][gprevTo][cutPiece][to], b)
	}

	for i, qm := range quietsTried {
		if qm == cutMove {
			continue
		}
		qf, qt := qm.From(), qm.To()
		t.butterfly[side][qf][qt] = gravity(t.butterfly[side][qf][qt], -b)
		if prevPiece != NoPiece {
			t.cont1[prevPiece][prevTo][quietPieces[i]][qt] = gravity(t.cont1[prevPiece][prevTo][quietPieces[i]][qt], -b)
		}
		if gprevPiece != NoPiece {
			t.cont2[gprevPiece][gprevTo][quietPieces[i]][qt] = gravity(t.cont2[gprevPiece][gprevTo][quietPieces[i]][qt], -b)
		}
	}

	if t.killers[ply][0] != cutMove {
		t.killers[ply][1] = t.killers[ply][0]
		t.killers[ply][0] = cutMove
	}
	if prevPiece != NoPiece {
		t.counter[prevPiece][prevTo] = cutMove
	}
}

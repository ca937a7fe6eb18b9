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

package board

import (
	. "github.com/corvidchess/engine/internal/types"
)

// IsDraw reports whether the current position is a draw by the
// fifty-move rule, threefold repetition, or insufficient material.
func (b *Board) IsDraw() bool {
	if b.halfMoveClock >= 100 {
		return true
	}
	if b.isRepetition() {
		return true
	}
	return b.hasInsufficientMaterial()
}

// isRepetition reports whether the current hash has occurred at least
// twice before within the reversible-move window tracked by history
// (a third occurrence makes the position a draw by repetition).
func (b *Board) isRepetition() bool {
	if len(b.history) < 4 {
		return false
	}
	limit := b.halfMoveClock
	if limit > len(b.history) {
		limit = len(b.history)
	}
	count := 0
	// Repetitions can only recur every other ply (same side to move).
	for i := len(b.history) - 4; i >= len(b.history)-limit; i -= 2 {
		if b.history[i].hash == b.hash {
			count++
			if count >= 2 {
				return true
			}
		}
	}
	return false
}

func (b *Board) hasInsufficientMaterial() bool {
	if b.PieceTypeBb(Pawn) != 0 || b.PieceTypeBb(Queen) != 0 || b.PieceTypeBb(Rook) != 0 {
		return false
	}
	whiteMinor := b.pieceBb[WhiteKnight].PopCount() + b.pieceBb[WhiteBishop].PopCount()
	blackMinor := b.pieceBb[BlackKnight].PopCount() + b.pieceBb[BlackBishop].PopCount()
	// K vs K, K+minor vs K, and K+minor vs K+minor are all insufficient;
	// two minors on one side can still mate (KBN vs K does not apply
	// since bishops only come from promotion-free pawn-less material).
	return whiteMinor <= 1 && blackMinor <= 1
}

// Material returns the sum of piece values for color c, excluding the
// king.
func (b *Board) Material(c Color) Value {
	var v Value
	for pt := Pawn; pt < King; pt++ {
		v += Value(b.pieceBb[MakePiece(c, pt)].PopCount()) * pt.Value()
	}
	return v
}

// NonPawnMaterial returns color c's material excluding pawns and the
// king, used by the null-move pruning zugzwang guard.
func (b *Board) NonPawnMaterial(c Color) Value {
	var v Value
	for pt := Knight; pt < King; pt++ {
		v += Value(b.pieceBb[MakePiece(c, pt)].PopCount()) * pt.Value()
	}
	return v
}

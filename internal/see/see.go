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

// Package see implements Static Exchange Evaluation: estimating the
// material result of a sequence of captures and recaptures on one
// square, least-valuable-attacker first, without actually playing the
// moves on the board.
package see

import (
	"github.com/corvidchess/engine/internal/attacks"
	"github.com/corvidchess/engine/internal/board"
	. "github.com/corvidchess/engine/internal/types"
)

var pieceOrder = [6]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

// leastValuableAttacker scans piece types pawn through king and
// returns the square and type of the first (cheapest) attacker of
// color c present in attackers, or (SqNone, NoPieceType) if none.
func leastValuableAttacker(b *board.Board, attackersBb Bitboard, c Color) (Square, PieceType) {
	for _, pt := range pieceOrder {
		bb := attackersBb & b.PieceBb(MakePiece(c, pt))
		if bb != 0 {
			return bb.Lsb(), pt
		}
	}
	return SqNone, NoPieceType
}

// isDiagonalSlider reports whether capturing with a piece of this type
// can expose a diagonal x-ray attacker behind it (pawn, bishop, queen).
func isDiagonalSlider(pt PieceType) bool {
	return pt == Pawn || pt == Bishop || pt == Queen
}

// isOrthogonalSlider reports whether capturing with a piece of this
// type can expose an orthogonal x-ray attacker (rook, queen).
func isOrthogonalSlider(pt PieceType) bool {
	return pt == Rook || pt == Queen
}

// See returns true iff the swap-off value of playing move on b is at
// least threshold, per the classic SEE swap algorithm: a fast boolean
// test that avoids materialising the full gain stack.
func See(b *board.Board, move Move, threshold int) bool {
	if move.IsPromotion() {
		return true
	}

	from, to := move.From(), move.To()
	us := b.SideToMove()

	victim := b.PieceAt(to)
	var victimType PieceType
	if move.IsEnPassant() {
		victimType = Pawn
	} else if victim != NoPiece {
		victimType = victim.TypeOf()
	} else {
		victimType = NoPieceType
	}

	value := int(victimType.Value()) - threshold
	if value < 0 {
		return false
	}

	attacker := b.PieceAt(from)
	value -= int(attacker.Value())
	if value >= 0 {
		return true
	}

	occupied := b.Occupied()&^SquareBb(from)&^SquareBb(to) | SquareBb(to)
	if move.IsEnPassant() {
		capSq := to.To(us.Flip().PawnPushDirection())
		occupied &^= SquareBb(capSq)
	}

	diagonalSliders := b.PieceTypeBb(Bishop) | b.PieceTypeBb(Queen)
	orthogonalSliders := b.PieceTypeBb(Rook) | b.PieceTypeBb(Queen)

	attackersBb := b.AllAttackers(to, occupied)

	// side alternates starting with the opponent of the original mover.
	side := us.Flip()

	for {
		sideAttackers := attackersBb & b.AllPieces(side) & occupied
		if sideAttackers == 0 {
			// side cannot recapture: the previous side keeps the square.
			side = side.Flip()
			break
		}
		sq, pt := leastValuableAttacker(b, sideAttackers, side)

		side = side.Flip()
		value = -value - 1 - int(pt.Value())
		if value >= 0 {
			if pt == King {
				if attackersBb&b.AllPieces(side)&occupied != 0 {
					// the king capture was illegal: the mover still
					// has defenders, so undo the side flip.
					side = side.Flip()
				}
			}
			break
		}

		occupied &^= SquareBb(sq)
		if isDiagonalSlider(pt) {
			attackersBb |= attacks.BishopAttacks(to, occupied) & diagonalSliders
		}
		if isOrthogonalSlider(pt) {
			attackersBb |= attacks.RookAttacks(to, occupied) & orthogonalSliders
		}
		attackersBb &= occupied
	}

	return side != us
}

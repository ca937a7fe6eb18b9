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

package see

import (
	"github.com/corvidchess/engine/internal/attacks"
	"github.com/corvidchess/engine/internal/board"
	. "github.com/corvidchess/engine/internal/types"
)

const maxGainDepth = 32

// SeeValue computes the exact material swap-off value of playing move
// on b using a gain stack, rather than the threshold shortcut See
// uses. When prunePositive is true the walk stops as soon as the
// side to move would already be ahead, since the caller (quiescence
// move ordering) only cares whether the capture is non-losing.
func SeeValue(b *board.Board, move Move, prunePositive bool) int {
	from, to := move.From(), move.To()
	us := b.SideToMove()

	var gain [maxGainDepth]int
	depth := 0

	attacker := b.PieceAt(from)
	attackerType := attacker.TypeOf()
	victim := b.PieceAt(to)

	occupied := b.Occupied() &^ SquareBb(from)

	if move.IsEnPassant() {
		capSq := to.To(us.Flip().PawnPushDirection())
		occupied &^= SquareBb(capSq)
		gain[depth] = int(Pawn.Value())
	} else if victim != NoPiece {
		gain[depth] = int(victim.Value())
	} else {
		gain[depth] = 0
	}

	promoBonus := 0
	if move.IsPromotion() {
		promoBonus = int(Queen.Value() - Pawn.Value())
		gain[depth] += promoBonus
		attackerType = move.PromotionType()
	}

	diagonalSliders := b.PieceTypeBb(Bishop) | b.PieceTypeBb(Queen)
	orthogonalSliders := b.PieceTypeBb(Rook) | b.PieceTypeBb(Queen)

	attackersBb := b.AllAttackers(to, occupied)
	side := us.Flip()
	lastValue := int(attackerType.Value())

	for {
		sideAttackers := attackersBb & b.AllPieces(side) & occupied
		if sideAttackers == 0 {
			break
		}
		sq, pt := leastValuableAttacker(b, sideAttackers, side)

		depth++
		if depth >= maxGainDepth {
			break
		}
		gain[depth] = lastValue - gain[depth-1]

		// a pawn recapturing onto the promotion rank also promotes.
		effectiveType := pt
		if pt == Pawn && to.RankOf() == side.PromotionRank() {
			gain[depth] += int(Queen.Value() - Pawn.Value())
			effectiveType = Queen
		}

		if prunePositive && gain[depth] < 0 {
			// side to move is already losing material on this
			// exchange and the caller only wants to know if the
			// capture is non-losing; further depth cannot help.
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

		lastValue = int(effectiveType.Value())
		side = side.Flip()
	}

	for i := depth; i > 0; i-- {
		if -gain[i] < gain[i-1] {
			gain[i-1] = -gain[i]
		}
	}

	return gain[0]
}

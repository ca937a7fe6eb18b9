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
	"github.com/corvidchess/engine/internal/attacks"
	. "github.com/corvidchess/engine/internal/types"
)

// MoveList is a small fixed-capacity scratch buffer for generated
// moves. The search declares one as a local value in each node rather
// than letting move generation allocate a slice on the hot path.
type MoveList struct {
	Moves [256]Move
	Count int
}

// Add appends m to the list.
func (ml *MoveList) Add(m Move) {
	ml.Moves[ml.Count] = m
	ml.Count++
}

// Clear empties the list for reuse.
func (ml *MoveList) Clear() {
	ml.Count = 0
}

// GenerateLegals fills out with every legal move for the side to move.
func (b *Board) GenerateLegals(out *MoveList) {
	out.Clear()
	b.generatePseudoLegal(out, false)
	b.filterLegal(out)
}

// GenerateCaptures fills out with every legal capture (including en
// passant and capture-promotions) for the side to move, used by
// quiescence search.
func (b *Board) GenerateCaptures(out *MoveList) {
	out.Clear()
	b.generatePseudoLegal(out, true)
	b.filterLegal(out)
}

// filterLegal removes any pseudo-legal move that leaves the mover's
// own king in check. This is a make/unmake filter rather than a
// pin-aware generator: simpler to get right by hand, and the search
// never calls GenerateLegals/GenerateCaptures on more than a few
// hundred positions per node.
func (b *Board) filterLegal(ml *MoveList) {
	us := b.sideToMove
	n := 0
	for i := 0; i < ml.Count; i++ {
		m := ml.Moves[i]
		b.Play(m)
		if !b.IsAttacked(b.KingSquare(us), us.Flip()) {
			ml.Moves[n] = m
			n++
		}
		b.Undo(m)
	}
	ml.Count = n
}

func (b *Board) generatePseudoLegal(out *MoveList, capturesOnly bool) {
	us := b.sideToMove
	them := us.Flip()
	ownOcc := b.colorBb[us]
	enemyOcc := b.colorBb[them]
	occ := b.occupied

	b.generatePawnMoves(out, us, enemyOcc, occ, capturesOnly)

	for pt := Knight; pt <= King; pt++ {
		bb := b.pieceBb[MakePiece(us, pt)]
		for bb != 0 {
			from := bb.PopLsb()
			var att Bitboard
			switch pt {
			case Knight:
				att = attacks.KnightAttacks(from)
			case Bishop:
				att = attacks.BishopAttacks(from, occ)
			case Rook:
				att = attacks.RookAttacks(from, occ)
			case Queen:
				att = attacks.QueenAttacks(from, occ)
			case King:
				att = attacks.KingAttacks(from)
			}
			att &^= ownOcc
			if capturesOnly {
				att &= enemyOcc
			}
			targets := att
			for targets != 0 {
				to := targets.PopLsb()
				if enemyOcc.Has(to) {
					out.Add(NewMove(from, to, FlagCapture))
				} else {
					out.Add(NewMove(from, to, FlagQuiet))
				}
			}
		}
	}

	if !capturesOnly {
		b.generateCastles(out, us, occ)
	}
}

var promoPieces = [4]PieceType{Queen, Rook, Bishop, Knight}

func (b *Board) generatePawnMoves(out *MoveList, us Color, enemyOcc, occ Bitboard, capturesOnly bool) {
	pawns := b.pieceBb[MakePiece(us, Pawn)]
	push := us.PawnPushDirection()
	promoRank := us.PromotionRank()
	doubleRank := us.DoublePushRank()

	for bb := pawns; bb != 0; {
		from := bb.PopLsb()

		if !capturesOnly {
			one := from.To(push)
			if one.IsValid() && !occ.Has(one) {
				if one.RankOf() == promoRank {
					addPromotions(out, from, one, false)
				} else {
					out.Add(NewMove(from, one, FlagQuiet))
					if from.RankOf() == pawnHomeRank(us) {
						two := one.To(push)
						if two.IsValid() && two.RankOf() == doubleRank && !occ.Has(two) {
							out.Add(NewMove(from, two, FlagDoublePawnPush))
						}
					}
				}
			}
		}

		capBb := attacks.PawnAttacks(from, us) & enemyOcc
		for capBb != 0 {
			to := capBb.PopLsb()
			if to.RankOf() == promoRank {
				addPromotions(out, from, to, true)
			} else {
				out.Add(NewMove(from, to, FlagCapture))
			}
		}

		if ep := b.epSquare; ep != SqNone {
			if attacks.PawnAttacks(from, us).Has(ep) {
				out.Add(NewMove(from, ep, FlagEnPassant))
			}
		}
	}
}

// pawnHomeRank returns the rank a pawn of color c starts the game on,
// the only rank from which a double push is legal.
func pawnHomeRank(c Color) Rank {
	if c == White {
		return Rank2
	}
	return Rank7
}

func addPromotions(out *MoveList, from, to Square, capture bool) {
	for _, pt := range promoPieces {
		out.Add(NewMove(from, to, NewPromotionFlag(pt, capture)))
	}
}

func (b *Board) generateCastles(out *MoveList, us Color, occ Bitboard) {
	them := us.Flip()
	if b.InCheck(us) {
		return
	}
	if us == White {
		if b.castling.Has(WhiteKingside) && occ&(SquareBb(SqF1)|SquareBb(SqG1)) == 0 &&
			!b.IsAttacked(SqF1, them) && !b.IsAttacked(SqG1, them) {
			out.Add(NewMove(SqE1, SqG1, FlagKingCastle))
		}
		if b.castling.Has(WhiteQueenside) && occ&(SquareBb(SqB1)|SquareBb(SqC1)|SquareBb(SqD1)) == 0 &&
			!b.IsAttacked(SqD1, them) && !b.IsAttacked(SqC1, them) {
			out.Add(NewMove(SqE1, SqC1, FlagQueenCastle))
		}
	} else {
		if b.castling.Has(BlackKingside) && occ&(SquareBb(SqF8)|SquareBb(SqG8)) == 0 &&
			!b.IsAttacked(SqF8, them) && !b.IsAttacked(SqG8, them) {
			out.Add(NewMove(SqE8, SqG8, FlagKingCastle))
		}
		if b.castling.Has(BlackQueenside) && occ&(SquareBb(SqB8)|SquareBb(SqC8)|SquareBb(SqD8)) == 0 &&
			!b.IsAttacked(SqD8, them) && !b.IsAttacked(SqC8, them) {
			out.Add(NewMove(SqE8, SqC8, FlagQueenCastle))
		}
	}
}

// GivesCheck reports whether playing m would leave the opponent in
// check. Used by the search for the check-extension heuristic.
func (b *Board) GivesCheck(m Move) bool {
	b.Play(m)
	them := b.sideToMove
	check := b.InCheck(them)
	b.Undo(m)
	return check
}

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

// Package attacks precomputes and serves piece attack bitboards. Knight,
// king and pawn attacks are simple lookup tables. Sliding piece
// (bishop/rook/queen) attacks are computed on the fly with classical
// ray casting rather than magic bitboards: one extra Lsb/Msb scan per
// blocker direction is negligible next to the cost of a full search
// and it removes an entire class of hand-verified magic-number bugs.
package attacks

import (
	. "github.com/corvidchess/engine/internal/types"
)

var (
	knightAttacks [SquareLength]Bitboard
	kingAttacks   [SquareLength]Bitboard
	pawnAttacks   [ColorLength][SquareLength]Bitboard

	// rayAttacks[d][s] is the full-board ray from s in direction d,
	// stopping at (but including) the board edge, with no blockers
	// considered.
	rayAttacks [8]direction
)

type direction struct {
	delta Direction
	bb    [SquareLength]Bitboard
}

var allDirections = []Direction{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}

func init() {
	for i, d := range allDirections {
		rayAttacks[i].delta = d
		for s := SqA1; s <= SqH8; s++ {
			rayAttacks[i].bb[s] = computeRay(s, d)
		}
	}
	for s := SqA1; s <= SqH8; s++ {
		knightAttacks[s] = computeKnightAttacks(s)
		kingAttacks[s] = computeKingAttacks(s)
		pawnAttacks[White][s] = computePawnAttacks(s, White)
		pawnAttacks[Black][s] = computePawnAttacks(s, Black)
	}
}

// computeRay walks from s in direction d one step at a time until it
// falls off the board, stopping files a/h from wrapping to the
// opposite edge.
func computeRay(s Square, d Direction) Bitboard {
	var bb Bitboard
	cur := s
	for {
		f, r := cur.FileOf(), cur.RankOf()
		switch d {
		case East, NorthEast, SouthEast:
			if f == FileH {
				return bb
			}
		case West, NorthWest, SouthWest:
			if f == FileA {
				return bb
			}
		}
		switch d {
		case North, NorthEast, NorthWest:
			if r == Rank8 {
				return bb
			}
		case South, SouthEast, SouthWest:
			if r == Rank1 {
				return bb
			}
		}
		cur = cur.To(d)
		if !cur.IsValid() {
			return bb
		}
		bb = bb.Set(cur)
	}
}

func computeKnightAttacks(s Square) Bitboard {
	var bb Bitboard
	f, r := int8(s.FileOf()), int8(s.RankOf())
	deltas := [8][2]int8{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	for _, d := range deltas {
		nf, nr := f+d[0], r+d[1]
		if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
			bb = bb.Set(MakeSquare(File(nf), Rank(nr)))
		}
	}
	return bb
}

func computeKingAttacks(s Square) Bitboard {
	var bb Bitboard
	f, r := int8(s.FileOf()), int8(s.RankOf())
	for df := int8(-1); df <= 1; df++ {
		for dr := int8(-1); dr <= 1; dr++ {
			if df == 0 && dr == 0 {
				continue
			}
			nf, nr := f+df, r+dr
			if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
				bb = bb.Set(MakeSquare(File(nf), Rank(nr)))
			}
		}
	}
	return bb
}

func computePawnAttacks(s Square, c Color) Bitboard {
	bb := SquareBb(s)
	if c == White {
		return bb.Shift(NorthEast) | bb.Shift(NorthWest)
	}
	return bb.Shift(SouthEast) | bb.Shift(SouthWest)
}

// KnightAttacks returns the knight attack bitboard from s.
func KnightAttacks(s Square) Bitboard {
	return knightAttacks[s]
}

// KingAttacks returns the king attack bitboard from s.
func KingAttacks(s Square) Bitboard {
	return kingAttacks[s]
}

// PawnAttacks returns the squares a pawn of color c on s attacks.
func PawnAttacks(s Square, c Color) Bitboard {
	return pawnAttacks[c][s]
}

// slidingAttacks walks each of the given ray directions from s, ORing
// in every square up to and including the first occupied one.
func slidingAttacks(s Square, occupied Bitboard, dirs []Direction) Bitboard {
	var bb Bitboard
	for _, d := range dirs {
		full := rayFor(s, d)
		blockers := full & occupied
		if blockers == 0 {
			bb |= full
			continue
		}
		var first Square
		switch d {
		case North, East, NorthEast, NorthWest:
			first = blockers.Lsb()
		default:
			first = blockers.Msb()
		}
		bb |= full &^ rayFor(first, d)
		bb = bb.Set(first)
	}
	return bb
}

func rayFor(s Square, d Direction) Bitboard {
	for i, dd := range allDirections {
		if dd == d {
			return rayAttacks[i].bb[s]
		}
	}
	return 0
}

var bishopDirs = []Direction{NorthEast, NorthWest, SouthEast, SouthWest}
var rookDirs = []Direction{North, South, East, West}

// BishopAttacks returns the bishop attack bitboard from s given the
// current board occupancy.
func BishopAttacks(s Square, occupied Bitboard) Bitboard {
	return slidingAttacks(s, occupied, bishopDirs)
}

// RookAttacks returns the rook attack bitboard from s given the
// current board occupancy.
func RookAttacks(s Square, occupied Bitboard) Bitboard {
	return slidingAttacks(s, occupied, rookDirs)
}

// QueenAttacks returns the queen attack bitboard from s given the
// current board occupancy.
func QueenAttacks(s Square, occupied Bitboard) Bitboard {
	return BishopAttacks(s, occupied) | RookAttacks(s, occupied)
}

// PieceTypeAttacks returns the attack bitboard for a piece of type pt
// standing on s given the current occupancy. Pawn attacks require a
// color and are not handled here; callers use PawnAttacks directly.
func PieceTypeAttacks(pt PieceType, s Square, occupied Bitboard) Bitboard {
	switch pt {
	case Knight:
		return KnightAttacks(s)
	case Bishop:
		return BishopAttacks(s, occupied)
	case Rook:
		return RookAttacks(s, occupied)
	case Queen:
		return QueenAttacks(s, occupied)
	case King:
		return KingAttacks(s)
	default:
		return 0
	}
}

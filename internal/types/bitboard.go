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

package types

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares, one bit per square, indexed the
// same way as Square (bit 0 == A1, bit 63 == H8).
type Bitboard uint64

// Empty and full board constants.
const (
	BbZero Bitboard = 0
	BbAll  Bitboard = 0xFFFFFFFFFFFFFFFF
)

// File and rank masks, indexed by File/Rank.
var (
	FileBb [FileLength]Bitboard
	RankBb [RankLength]Bitboard
)

func init() {
	for f := FileA; f <= FileH; f++ {
		var bb Bitboard
		for r := Rank1; r <= Rank8; r++ {
			bb |= SquareBb(MakeSquare(f, r))
		}
		FileBb[f] = bb
	}
	for r := Rank1; r <= Rank8; r++ {
		var bb Bitboard
		for f := FileA; f <= FileH; f++ {
			bb |= SquareBb(MakeSquare(f, r))
		}
		RankBb[r] = bb
	}
}

// SquareBb returns the bitboard with only s set.
func SquareBb(s Square) Bitboard {
	return Bitboard(1) << uint(s)
}

// Has reports whether s is a member of bb.
func (bb Bitboard) Has(s Square) bool {
	return bb&SquareBb(s) != 0
}

// Set returns bb with s added.
func (bb Bitboard) Set(s Square) Bitboard {
	return bb | SquareBb(s)
}

// Clear returns bb with s removed.
func (bb Bitboard) Clear(s Square) Bitboard {
	return bb &^ SquareBb(s)
}

// PopCount returns the number of set squares.
func (bb Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(bb))
}

// Lsb returns the lowest-indexed set square, or SqNone if bb is empty.
func (bb Bitboard) Lsb() Square {
	if bb == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(bb)))
}

// Msb returns the highest-indexed set square, or SqNone if bb is empty.
func (bb Bitboard) Msb() Square {
	if bb == 0 {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(bb)))
}

// PopLsb clears and returns the lowest-indexed set square. Calling it
// on an empty bitboard returns SqNone and leaves bb unchanged.
func (bb *Bitboard) PopLsb() Square {
	s := bb.Lsb()
	if s == SqNone {
		return SqNone
	}
	*bb &= *bb - 1
	return s
}

// Shift moves every bit of bb one step in direction d, masking off
// wraparound across the board edges.
func (bb Bitboard) Shift(d Direction) Bitboard {
	switch d {
	case North:
		return bb << 8
	case South:
		return bb >> 8
	case East:
		return (bb &^ FileBb[FileH]) << 1
	case West:
		return (bb &^ FileBb[FileA]) >> 1
	case NorthEast:
		return (bb &^ FileBb[FileH]) << 9
	case NorthWest:
		return (bb &^ FileBb[FileA]) << 7
	case SouthEast:
		return (bb &^ FileBb[FileH]) >> 7
	case SouthWest:
		return (bb &^ FileBb[FileA]) >> 9
	default:
		return 0
	}
}

// String renders the bitboard as an 8x8 ascii grid with rank 8 on top,
// useful for debugging and test failure output.
func (bb Bitboard) String() string {
	var sb strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		for f := FileA; f <= FileH; f++ {
			if bb.Has(MakeSquare(f, r)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('.')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

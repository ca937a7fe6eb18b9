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

import "fmt"

// File is one of the eight files (columns) of the board, a through h.
type File int8

// Files a through h.
const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
	FileLength
	FileNone = FileLength
)

func (f File) String() string {
	return string(rune('a' + f))
}

// Rank is one of the eight ranks (rows) of the board, 1 through 8.
type Rank int8

// Ranks 1 through 8.
const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	RankLength
	RankNone = RankLength
)

func (r Rank) String() string {
	return string(rune('1' + r))
}

// Direction is a step between squares expressed as the difference of
// their indices, e.g. North == +8.
type Direction int8

// The eight ray directions plus the four knight-like jumps used by
// pawn capture/attack calculations.
const (
	North     Direction = 8
	South     Direction = -8
	East      Direction = 1
	West      Direction = -1
	NorthEast Direction = North + East
	NorthWest Direction = North + West
	SouthEast Direction = South + East
	SouthWest Direction = South + West
)

// Square is one of the 64 squares of the board, A1..H8, indexed
// rank-major (A1=0, B1=1, ..., H1=7, A2=8, ...).
type Square int8

// SqNone represents "no square", used as a sentinel for e.g. a missing
// en passant target.
const SqNone Square = 64

// SquareLength is the number of squares on the board.
const SquareLength = 64

// Named squares, generated in the conventional a1..h8 order.
const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
)

// MakeSquare combines a file and rank into a square.
func MakeSquare(f File, r Rank) Square {
	return Square(int8(r)*8 + int8(f))
}

// FileOf returns the file of the square.
func (s Square) FileOf() File {
	return File(s & 7)
}

// RankOf returns the rank of the square.
func (s Square) RankOf() Rank {
	return Rank(s >> 3)
}

// IsValid reports whether s is one of the 64 board squares.
func (s Square) IsValid() bool {
	return s >= SqA1 && s <= SqH8
}

// To steps the square one unit in the given direction. The caller is
// responsible for checking the result stays on the board; To does not
// wrap file edges by itself.
func (s Square) To(d Direction) Square {
	return s + Square(d)
}

// Flip returns the square mirrored across the board's horizontal
// midline, used to share piece-square tables between colors.
func (s Square) Flip() Square {
	return s ^ 56
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%s%s", s.FileOf(), s.RankOf())
}

// SquareFromString parses an algebraic square name such as "e4".
// It returns SqNone for "-" or any malformed input.
func SquareFromString(str string) Square {
	if len(str) != 2 {
		return SqNone
	}
	f := File(str[0] - 'a')
	r := Rank(str[1] - '1')
	if f < FileA || f > FileH || r < Rank1 || r > Rank8 {
		return SqNone
	}
	return MakeSquare(f, r)
}

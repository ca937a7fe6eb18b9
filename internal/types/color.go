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

// Package types holds the primitive chess data types shared by every
// package of the engine: squares, pieces, moves, bitboards and search
// values. None of these types carry any search or evaluation logic -
// they are the vocabulary the rest of the engine is written in.
package types

import "fmt"

// Color represents one of the two sides in a game of chess.
type Color int8

// The two colors. ColorLength is useful for sizing [2]-arrays.
const (
	White Color = iota
	Black
	ColorLength
)

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid reports whether c is White or Black.
func (c Color) IsValid() bool {
	return c == White || c == Black
}

// String returns "w" or "b".
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		panic(fmt.Sprintf("invalid color %d", c))
	}
}

var pawnPushDirection = [ColorLength]Direction{North, South}

// PawnPushDirection returns the direction a pawn of this color advances.
func (c Color) PawnPushDirection() Direction {
	return pawnPushDirection[c]
}

var promotionRank = [ColorLength]Rank{Rank8, Rank1}

// PromotionRank returns the rank on which a pawn of this color promotes.
func (c Color) PromotionRank() Rank {
	return promotionRank[c]
}

var doublePushRank = [ColorLength]Rank{Rank4, Rank5}

// DoublePushRank returns the rank a pawn of this color lands on after
// a two-square opening push.
func (c Color) DoublePushRank() Rank {
	return doublePushRank[c]
}

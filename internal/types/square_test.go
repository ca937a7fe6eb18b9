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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareStringRoundTrip(t *testing.T) {
	for sq := SqA1; sq <= SqH8; sq++ {
		str := sq.String()
		assert.Equal(t, sq, SquareFromString(str))
	}
}

func TestSquareFromStringInvalid(t *testing.T) {
	assert.Equal(t, SqNone, SquareFromString("-"))
	assert.Equal(t, SqNone, SquareFromString("z9"))
	assert.Equal(t, SqNone, SquareFromString("e"))
}

func TestSquareFileRank(t *testing.T) {
	assert.Equal(t, FileE, SqE4.FileOf())
	assert.Equal(t, Rank4, SqE4.RankOf())
}

func TestSquareFlip(t *testing.T) {
	assert.Equal(t, SqE1, SqE8.Flip())
	assert.Equal(t, SqA8, SqA1.Flip())
}

func TestBitboardSetClearHas(t *testing.T) {
	var bb Bitboard
	bb = bb.Set(SqE4)
	assert.True(t, bb.Has(SqE4))
	assert.False(t, bb.Has(SqE5))

	bb = bb.Clear(SqE4)
	assert.False(t, bb.Has(SqE4))
}

func TestBitboardPopCount(t *testing.T) {
	var bb Bitboard
	bb = bb.Set(SqA1).Set(SqH8).Set(SqE4)
	assert.Equal(t, 3, bb.PopCount())
}

func TestBitboardPopLsb(t *testing.T) {
	var bb Bitboard
	bb = bb.Set(SqC3).Set(SqE4)

	first := bb.PopLsb()
	assert.Equal(t, SqC3, first)
	assert.Equal(t, 1, bb.PopCount())

	second := bb.PopLsb()
	assert.Equal(t, SqE4, second)
	assert.Equal(t, 0, bb.PopCount())
}

func TestColorFlip(t *testing.T) {
	assert.Equal(t, Black, White.Flip())
	assert.Equal(t, White, Black.Flip())
}

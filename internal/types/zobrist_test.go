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

func TestZobristIsSeededDeterministicallyAcrossProcesses(t *testing.T) {
	other := newZobristKeys(1070372)

	assert.Equal(t, Zobrist.PieceSquareKey(WhiteKnight, SqF3), other.PieceSquareKey(WhiteKnight, SqF3))
	assert.Equal(t, Zobrist.CastlingKey(CastlingRightsAll), other.CastlingKey(CastlingRightsAll))
	assert.Equal(t, Zobrist.EnPassantKey(FileE), other.EnPassantKey(FileE))
	assert.Equal(t, Zobrist.SideKey(), other.SideKey())
}

func TestZobristDifferentSeedsProduceDifferentTables(t *testing.T) {
	other := newZobristKeys(42)
	assert.NotEqual(t, Zobrist.PieceSquareKey(WhitePawn, SqA1), other.PieceSquareKey(WhitePawn, SqA1))
}

func TestZobristPieceSquareKeysAreAllDistinct(t *testing.T) {
	seen := make(map[Key]bool)
	for p := WhitePawn; p < PieceLength; p++ {
		for s := SqA1; s <= SqH8; s++ {
			k := Zobrist.PieceSquareKey(p, s)
			assert.False(t, seen[k], "piece/square key collision for piece %v on %v", p, s)
			seen[k] = true
		}
	}
}

func TestZobristCastlingKeysAreAllDistinct(t *testing.T) {
	seen := make(map[Key]bool)
	for cr := 0; cr < CastlingRightsSize; cr++ {
		k := Zobrist.CastlingKey(CastlingRights(cr))
		assert.False(t, seen[k], "castling key collision for rights %d", cr)
		seen[k] = true
	}
}

func TestZobristEnPassantFileKeysAreAllDistinct(t *testing.T) {
	seen := make(map[Key]bool)
	for f := FileA; f <= FileH; f++ {
		k := Zobrist.EnPassantKey(f)
		assert.False(t, seen[k], "en passant key collision for file %v", f)
		seen[k] = true
	}
}

func TestZobristSideKeyIsNonZero(t *testing.T) {
	assert.NotEqual(t, Key(0), Zobrist.SideKey())
}

func TestCastlingRightsHasReportsMembership(t *testing.T) {
	cr := WhiteKingside | BlackQueenside
	assert.True(t, cr.Has(WhiteKingside))
	assert.True(t, cr.Has(BlackQueenside))
	assert.False(t, cr.Has(WhiteQueenside))
	assert.False(t, cr.Has(BlackKingside))
}

func TestCastlingRightsAllContainsEveryRight(t *testing.T) {
	assert.True(t, CastlingRightsAll.Has(WhiteKingside))
	assert.True(t, CastlingRightsAll.Has(WhiteQueenside))
	assert.True(t, CastlingRightsAll.Has(BlackKingside))
	assert.True(t, CastlingRightsAll.Has(BlackQueenside))
}

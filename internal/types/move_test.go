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

func TestMoveFromToRoundTrip(t *testing.T) {
	m := NewMove(SqE2, SqE4, FlagDoublePawnPush)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.EqualValues(t, FlagDoublePawnPush, m.Flag())
}

func TestMoveQuietVsTactical(t *testing.T) {
	quiet := NewMove(SqE2, SqE3, FlagQuiet)
	assert.True(t, quiet.IsQuiet())
	assert.False(t, quiet.IsTactical())

	capture := NewMove(SqE4, SqD5, FlagCapture)
	assert.False(t, capture.IsQuiet())
	assert.True(t, capture.IsCapture())
	assert.True(t, capture.IsTactical())
}

func TestMoveCastleIsNotCapture(t *testing.T) {
	castle := NewMove(SqE1, SqG1, FlagKingCastle)
	assert.True(t, castle.IsCastle())
	assert.False(t, castle.IsCapture(), "castling sets bit2 of the flag but must not be classified as a capture")
	assert.True(t, castle.IsQuiet())
}

func TestMovePromotionRoundTrip(t *testing.T) {
	for _, pt := range []PieceType{Knight, Bishop, Rook, Queen} {
		flag := NewPromotionFlag(pt, false)
		m := NewMove(SqE7, SqE8, flag)
		assert.True(t, m.IsPromotion())
		assert.False(t, m.IsCapture())
		assert.Equal(t, pt, m.PromotionType())
	}
}

func TestMovePromotionWithCapture(t *testing.T) {
	flag := NewPromotionFlag(Queen, true)
	m := NewMove(SqD7, SqE8, flag)
	assert.True(t, m.IsPromotion())
	assert.True(t, m.IsCapture())
	assert.Equal(t, Queen, m.PromotionType())
}

func TestMoveEnPassant(t *testing.T) {
	m := NewMove(SqE5, SqD6, FlagEnPassant)
	assert.True(t, m.IsEnPassant())
	assert.True(t, m.IsCapture())
}

func TestMoveNoneIsEmpty(t *testing.T) {
	assert.True(t, MoveNone.IsEmpty())
	assert.Equal(t, "0000", MoveNone.String())
}

func TestMoveStringUci(t *testing.T) {
	m := NewMove(SqE2, SqE4, FlagDoublePawnPush)
	assert.Equal(t, "e2e4", m.String())

	promo := NewMove(SqE7, SqE8, NewPromotionFlag(Queen, false))
	assert.Equal(t, "e7e8q", promo.String())
}

func TestMoveEquality(t *testing.T) {
	a := NewMove(SqA1, SqH8, FlagQuiet)
	b := NewMove(SqA1, SqH8, FlagQuiet)
	c := NewMove(SqA1, SqH8, FlagCapture)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

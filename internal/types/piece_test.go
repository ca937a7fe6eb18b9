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

func TestMakePieceColorOfTypeOfRoundTrip(t *testing.T) {
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			p := MakePiece(c, pt)
			assert.Equal(t, c, p.ColorOf())
			assert.Equal(t, pt, p.TypeOf())
		}
	}
}

func TestMakePieceWithNoPieceTypeReturnsNoPiece(t *testing.T) {
	assert.Equal(t, NoPiece, MakePiece(White, NoPieceType))
	assert.Equal(t, NoPiece, MakePiece(Black, NoPieceType))
}

func TestPieceCharRoundTripsThroughPieceFromChar(t *testing.T) {
	for p := WhitePawn; p < PieceLength; p++ {
		assert.Equal(t, p, PieceFromChar(p.Char()))
	}
}

func TestPieceFromCharRejectsUnknownCharacter(t *testing.T) {
	assert.Equal(t, NoPiece, PieceFromChar('x'))
	assert.Equal(t, NoPiece, PieceFromChar('-'))
}

func TestPieceCharIsUppercaseForWhiteAndLowercaseForBlack(t *testing.T) {
	assert.Equal(t, byte('P'), WhitePawn.Char())
	assert.Equal(t, byte('p'), BlackPawn.Char())
	assert.Equal(t, byte('K'), WhiteKing.Char())
	assert.Equal(t, byte('k'), BlackKing.Char())
}

func TestNoPieceCharIsDash(t *testing.T) {
	assert.Equal(t, byte('-'), NoPiece.Char())
	assert.Equal(t, "-", NoPiece.String())
}

func TestPieceValueMatchesUnderlyingPieceTypeValue(t *testing.T) {
	assert.Equal(t, Pawn.Value(), WhitePawn.Value())
	assert.Equal(t, Queen.Value(), BlackQueen.Value())
	assert.Equal(t, King.Value(), BlackKing.Value())
}

func TestPieceTypeValueOrderingReflectsMaterialStrength(t *testing.T) {
	assert.Less(t, Pawn.Value(), Knight.Value())
	assert.Less(t, Knight.Value(), Rook.Value())
	assert.Less(t, Rook.Value(), Queen.Value())
	assert.Less(t, Queen.Value(), King.Value())
}

func TestPieceIsValidRejectsNoPiece(t *testing.T) {
	assert.True(t, WhitePawn.IsValid())
	assert.True(t, BlackKing.IsValid())
	assert.False(t, NoPiece.IsValid())
}

func TestPieceTypeIsValidRejectsNoPieceType(t *testing.T) {
	assert.True(t, Pawn.IsValid())
	assert.True(t, King.IsValid())
	assert.False(t, NoPieceType.IsValid())
}

func TestPieceTypeCharIsLowercase(t *testing.T) {
	assert.Equal(t, byte('q'), Queen.Char())
	assert.Equal(t, "q", Queen.String())
}

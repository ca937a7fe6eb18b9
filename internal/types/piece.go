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

// PieceType identifies a kind of chess piece independent of color.
type PieceType int8

// The six piece types plus a none sentinel and a length marker.
const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	PieceTypeLength
)

// pieceTypeValue holds the static material value of each piece type
// used throughout search and evaluation (SEE, MVV/LVA ordering,
// material balance).
var pieceTypeValue = [PieceTypeLength]Value{
	NoPieceType: 0,
	Pawn:        100,
	Knight:      300,
	Bishop:      300,
	Rook:        500,
	Queen:       900,
	King:        20000,
}

// Value returns the static material value of the piece type.
func (pt PieceType) Value() Value {
	return pieceTypeValue[pt]
}

// IsValid reports whether pt is one of the six piece types.
func (pt PieceType) IsValid() bool {
	return pt >= Pawn && pt <= King
}

var pieceTypeChar = [PieceTypeLength]byte{
	NoPieceType: '-',
	Pawn:        'p',
	Knight:      'n',
	Bishop:      'b',
	Rook:        'r',
	Queen:       'q',
	King:        'k',
}

// Char returns the lowercase letter used in FEN/SAN for this piece type.
// Pawn promotion suffixes in UCI moves use this as well (q, r, b, n).
func (pt PieceType) Char() byte {
	return pieceTypeChar[pt]
}

func (pt PieceType) String() string {
	return string(pt.Char())
}

// Piece is a colored chess piece, e.g. WhiteKnight.
type Piece int8

// The twelve concrete pieces plus a none sentinel and length marker.
const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	PieceLength
	NoPiece = PieceLength
)

// MakePiece combines a color and piece type into a concrete piece.
func MakePiece(c Color, pt PieceType) Piece {
	if pt == NoPieceType {
		return NoPiece
	}
	return Piece(int8(c)*6 + int8(pt) - 1)
}

// ColorOf returns the color of the piece. Calling this on NoPiece is
// undefined.
func (p Piece) ColorOf() Color {
	if p >= BlackPawn {
		return Black
	}
	return White
}

// TypeOf returns the piece type, discarding color.
func (p Piece) TypeOf() PieceType {
	if p == NoPiece {
		return NoPieceType
	}
	return PieceType(int8(p)%6) + Pawn
}

// Value returns the static material value of the piece.
func (p Piece) Value() Value {
	return p.TypeOf().Value()
}

// IsValid reports whether p is one of the twelve concrete pieces.
func (p Piece) IsValid() bool {
	return p >= WhitePawn && p < PieceLength
}

var pieceChar = [PieceLength]byte{
	WhitePawn: 'P', WhiteKnight: 'N', WhiteBishop: 'B', WhiteRook: 'R', WhiteQueen: 'Q', WhiteKing: 'K',
	BlackPawn: 'p', BlackKnight: 'n', BlackBishop: 'b', BlackRook: 'r', BlackQueen: 'q', BlackKing: 'k',
}

// Char returns the FEN character for the piece, upper case for white
// and lower case for black.
func (p Piece) Char() byte {
	if p == NoPiece {
		return '-'
	}
	return pieceChar[p]
}

func (p Piece) String() string {
	return string(p.Char())
}

// PieceFromChar parses a FEN piece character. It returns NoPiece for
// any character that does not name a piece.
func PieceFromChar(c byte) Piece {
	for p := WhitePawn; p < PieceLength; p++ {
		if pieceChar[p] == c {
			return p
		}
	}
	return NoPiece
}

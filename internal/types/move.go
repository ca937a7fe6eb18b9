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

// Move packs a chess move into 16 bits: a 6-bit origin square, a 6-bit
// destination square and a 4-bit flag describing the move's special
// character (quiet, capture, castle, en passant, or one of the eight
// promotion variants). Unlike a move-plus-score encoding, a Move here
// carries no ordering information; ordering scores live alongside
// moves in the move ordering package, not inside the move itself.
type Move uint16

// MoveNone is the zero value and represents "no move".
const MoveNone Move = 0

const (
	moveFromShift = 0
	moveToShift   = 6
	moveFlagShift = 12
	moveFromMask  = 0x3F
	moveToMask    = 0x3F
	moveFlagMask  = 0xF
)

// Move flags. The four capture/promotion bits follow the classic
// 0RPC encoding: bit3 set means promotion, bit2 set means capture,
// and for promotions bits1-0 select the promotion piece type.
const (
	FlagQuiet           = 0x0
	FlagDoublePawnPush  = 0x1
	FlagKingCastle      = 0x2
	FlagQueenCastle     = 0x3
	FlagCapture         = 0x4
	FlagEnPassant       = 0x5
	FlagPromoKnight     = 0x8
	FlagPromoBishop     = 0x9
	FlagPromoRook       = 0xA
	FlagPromoQueen      = 0xB
	FlagPromoCapKnight  = 0xC
	FlagPromoCapBishop  = 0xD
	FlagPromoCapRook    = 0xE
	FlagPromoCapQueen   = 0xF
)

// NewMove creates a move with the given from/to squares and flag.
func NewMove(from, to Square, flag uint16) Move {
	return Move(uint16(from)&moveFromMask | (uint16(to)&moveToMask)<<moveToShift | (flag&moveFlagMask)<<moveFlagShift)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square(uint16(m) >> moveFromShift & moveFromMask)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square(uint16(m) >> moveToShift & moveToMask)
}

// Flag returns the raw 4-bit move flag.
func (m Move) Flag() uint16 {
	return uint16(m) >> moveFlagShift & moveFlagMask
}

// IsEmpty reports whether m is MoveNone.
func (m Move) IsEmpty() bool {
	return m == MoveNone
}

// IsCapture reports whether the move removes an enemy piece from the
// board, including en passant but excluding castling.
func (m Move) IsCapture() bool {
	return m.Flag()&0x4 != 0 && m.Flag() != FlagKingCastle && m.Flag() != FlagQueenCastle
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Flag()&0x8 != 0
}

// IsEnPassant reports whether the move is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.Flag() == FlagEnPassant
}

// IsCastle reports whether the move is a king- or queen-side castle.
func (m Move) IsCastle() bool {
	return m.Flag() == FlagKingCastle || m.Flag() == FlagQueenCastle
}

// IsDoublePawnPush reports whether the move is a two-square pawn
// advance from its starting rank.
func (m Move) IsDoublePawnPush() bool {
	return m.Flag() == FlagDoublePawnPush
}

// IsQuiet reports whether the move is neither a capture nor a
// promotion (castles and double pawn pushes count as quiet).
func (m Move) IsQuiet() bool {
	return !m.IsCapture() && !m.IsPromotion()
}

// IsTactical is the complement of IsQuiet: captures and promotions,
// the move classes considered in quiescence search.
func (m Move) IsTactical() bool {
	return !m.IsQuiet()
}

// promoPieceType maps a promotion flag's low two bits to a piece type.
var promoPieceType = [4]PieceType{Knight, Bishop, Rook, Queen}

// PromotionType returns the piece type a pawn promotes to, or
// NoPieceType if the move is not a promotion.
func (m Move) PromotionType() PieceType {
	if !m.IsPromotion() {
		return NoPieceType
	}
	return promoPieceType[m.Flag()&0x3]
}

// NewPromotionFlag builds the flag for promoting to pt, optionally
// combined with a capture.
func NewPromotionFlag(pt PieceType, capture bool) uint16 {
	var idx uint16
	switch pt {
	case Knight:
		idx = 0
	case Bishop:
		idx = 1
	case Rook:
		idx = 2
	case Queen:
		idx = 3
	}
	flag := uint16(0x8) | idx
	if capture {
		flag |= 0x4
	}
	return flag
}

// String renders the move in coordinate (UCI) notation, e.g. "e2e4"
// or "e7e8q" for a promotion.
func (m Move) String() string {
	if m.IsEmpty() {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string(m.PromotionType().Char())
	}
	return s
}

// GoString supports %#v debugging output.
func (m Move) GoString() string {
	return fmt.Sprintf("Move(%s)", m.String())
}

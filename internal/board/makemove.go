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

package board

import (
	. "github.com/corvidchess/engine/internal/types"
)

var castleRookSquares = map[Square][2]Square{
	SqG1: {SqH1, SqF1},
	SqC1: {SqA1, SqD1},
	SqG8: {SqH8, SqF8},
	SqC8: {SqA8, SqD8},
}

var castleRightsLost = [SquareLength]CastlingRights{
	SqA1: WhiteQueenside, SqE1: WhiteKingside | WhiteQueenside, SqH1: WhiteKingside,
	SqA8: BlackQueenside, SqE8: BlackKingside | BlackQueenside, SqH8: BlackKingside,
}

// Play applies move m, which must be pseudo-legal, updating the board
// incrementally: pieces, castling rights, en passant square, the
// fifty-move counter and the Zobrist hash. A corresponding Undo call
// with the same move reverses it exactly.
func (b *Board) Play(m Move) {
	from, to := m.From(), m.To()
	us := b.sideToMove
	moving := b.pieces[from]

	st := undoState{
		move:          m,
		captured:      NoPiece,
		castling:      b.castling,
		epSquare:      b.epSquare,
		halfMoveClock: b.halfMoveClock,
		hash:          b.hash,
	}

	b.hash ^= Zobrist.CastlingKey(b.castling)
	if b.epSquare != SqNone {
		b.hash ^= Zobrist.EnPassantKey(b.epSquare.FileOf())
	}

	b.halfMoveClock++
	if moving.TypeOf() == Pawn {
		b.halfMoveClock = 0
	}

	switch {
	case m.IsEnPassant():
		capSq := to.To(us.Flip().PawnPushDirection())
		st.captured = b.removePiece(capSq)
		b.hash ^= Zobrist.PieceSquareKey(st.captured, capSq)
		b.movePieceQuiet(from, to)
		b.hash ^= Zobrist.PieceSquareKey(moving, from) ^ Zobrist.PieceSquareKey(moving, to)

	case m.IsCastle():
		rookFrom, rookTo := castleRookSquares[to][0], castleRookSquares[to][1]
		b.movePieceQuiet(from, to)
		b.hash ^= Zobrist.PieceSquareKey(moving, from) ^ Zobrist.PieceSquareKey(moving, to)
		rook := b.pieces[rookFrom]
		b.movePieceQuiet(rookFrom, rookTo)
		b.hash ^= Zobrist.PieceSquareKey(rook, rookFrom) ^ Zobrist.PieceSquareKey(rook, rookTo)

	case m.IsPromotion():
		if m.IsCapture() {
			st.captured = b.removePiece(to)
			b.hash ^= Zobrist.PieceSquareKey(st.captured, to)
			b.halfMoveClock = 0
		}
		b.removePiece(from)
		b.hash ^= Zobrist.PieceSquareKey(moving, from)
		promoted := MakePiece(us, m.PromotionType())
		b.putPiece(promoted, to)
		b.hash ^= Zobrist.PieceSquareKey(promoted, to)
		b.halfMoveClock = 0

	case m.IsCapture():
		st.captured = b.removePiece(to)
		b.hash ^= Zobrist.PieceSquareKey(st.captured, to)
		b.movePieceQuiet(from, to)
		b.hash ^= Zobrist.PieceSquareKey(moving, from) ^ Zobrist.PieceSquareKey(moving, to)
		b.halfMoveClock = 0

	default:
		b.movePieceQuiet(from, to)
		b.hash ^= Zobrist.PieceSquareKey(moving, from) ^ Zobrist.PieceSquareKey(moving, to)
	}

	b.castling &^= castleRightsLost[from] | castleRightsLost[to]

	b.epSquare = SqNone
	if m.IsDoublePawnPush() {
		b.epSquare = from.To(us.PawnPushDirection())
	}

	b.hash ^= Zobrist.CastlingKey(b.castling)
	if b.epSquare != SqNone {
		b.hash ^= Zobrist.EnPassantKey(b.epSquare.FileOf())
	}
	b.hash ^= Zobrist.SideKey()

	if us == Black {
		b.fullMoveNo++
	}
	b.sideToMove = us.Flip()
	b.history = append(b.history, st)
}

// Undo reverses the most recently played move, which must be m.
func (b *Board) Undo(m Move) {
	st := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]

	us := b.sideToMove.Flip()
	b.sideToMove = us
	if us == Black {
		b.fullMoveNo--
	}

	from, to := m.From(), m.To()

	switch {
	case m.IsEnPassant():
		moving := b.pieces[to]
		b.pieces[to] = NoPiece
		bb := SquareBb(from) | SquareBb(to)
		b.pieceBb[moving] ^= bb
		b.colorBb[us] ^= bb
		b.occupied ^= bb
		b.pieces[from] = moving
		capSq := to.To(us.Flip().PawnPushDirection())
		b.putPiece(st.captured, capSq)

	case m.IsCastle():
		rookFrom, rookTo := castleRookSquares[to][0], castleRookSquares[to][1]
		king := b.pieces[to]
		b.pieces[to] = NoPiece
		b.pieces[from] = king
		kbb := SquareBb(from) | SquareBb(to)
		b.pieceBb[king] ^= kbb
		b.colorBb[us] ^= kbb
		b.occupied ^= kbb
		rook := b.pieces[rookTo]
		b.pieces[rookTo] = NoPiece
		b.pieces[rookFrom] = rook
		rbb := SquareBb(rookFrom) | SquareBb(rookTo)
		b.pieceBb[rook] ^= rbb
		b.colorBb[us] ^= rbb
		b.occupied ^= rbb

	case m.IsPromotion():
		b.removePiece(to)
		b.putPiece(MakePiece(us, Pawn), from)
		if m.IsCapture() {
			b.putPiece(st.captured, to)
		}

	case m.IsCapture():
		moving := b.pieces[to]
		b.pieces[to] = NoPiece
		bb := SquareBb(from) | SquareBb(to)
		b.pieceBb[moving] ^= bb
		b.colorBb[us] ^= bb
		b.occupied ^= bb
		b.pieces[from] = moving
		b.putPiece(st.captured, to)

	default:
		moving := b.pieces[to]
		b.pieces[to] = NoPiece
		bb := SquareBb(from) | SquareBb(to)
		b.pieceBb[moving] ^= bb
		b.colorBb[us] ^= bb
		b.occupied ^= bb
		b.pieces[from] = moving
	}

	b.castling = st.castling
	b.epSquare = st.epSquare
	b.halfMoveClock = st.halfMoveClock
	b.hash = st.hash
}

// PlayNullMove passes the turn without moving a piece. Used by null
// move pruning. The en passant square, if any, is cleared since no
// pawn could actually be captured en passant after a null move.
func (b *Board) PlayNullMove() {
	st := undoState{
		move:          MoveNone,
		castling:      b.castling,
		epSquare:      b.epSquare,
		halfMoveClock: b.halfMoveClock,
		hash:          b.hash,
	}
	if b.epSquare != SqNone {
		b.hash ^= Zobrist.EnPassantKey(b.epSquare.FileOf())
	}
	b.epSquare = SqNone
	b.hash ^= Zobrist.SideKey()
	b.sideToMove = b.sideToMove.Flip()
	b.halfMoveClock++
	b.history = append(b.history, st)
}

// UndoNullMove reverses PlayNullMove.
func (b *Board) UndoNullMove() {
	st := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	b.sideToMove = b.sideToMove.Flip()
	b.epSquare = st.epSquare
	b.halfMoveClock = st.halfMoveClock
	b.hash = st.hash
}

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

// Package board implements the position representation consumed by the
// search: a bitboard board with make/unmake, legal move generation,
// attack queries, Zobrist hashing and draw detection. The search core
// treats this package purely as a collaborator through the narrow
// surface it calls (Board methods), which keeps the move-generation
// and position-bookkeeping concerns out of the PVS hot loop.
package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/corvidchess/engine/internal/attacks"
	. "github.com/corvidchess/engine/internal/types"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// undoState captures everything needed to unmake a move that cannot
// be recovered from the move itself: captured piece, prior castling
// rights, prior en passant square, prior half-move clock and the
// pre-move hash. One is pushed per ply onto Board.history.
type undoState struct {
	move          Move
	captured      Piece
	castling      CastlingRights
	epSquare      Square
	halfMoveClock int
	hash          Key
}

// Board is a complete mutable chess position.
type Board struct {
	pieces   [SquareLength]Piece
	pieceBb  [PieceLength]Bitboard
	colorBb  [ColorLength]Bitboard
	occupied Bitboard

	sideToMove    Color
	castling      CastlingRights
	epSquare      Square
	halfMoveClock int
	fullMoveNo    int

	hash Key

	history []undoState
}

// NewBoard returns the standard starting position.
func NewBoard() *Board {
	b, err := NewBoardFen(StartFen)
	if err != nil {
		panic(err)
	}
	return b
}

// NewBoardFen parses a FEN string into a Board.
func NewBoardFen(fen string) (*Board, error) {
	b := &Board{history: make([]undoState, 0, 256)}
	if err := b.setFen(fen); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Board) setFen(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return fmt.Errorf("board: malformed fen %q", fen)
	}
	for i := range b.pieces {
		b.pieces[i] = NoPiece
	}
	for i := range b.pieceBb {
		b.pieceBb[i] = 0
	}
	b.colorBb[White], b.colorBb[Black] = 0, 0
	b.occupied = 0

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("board: fen needs 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		r := Rank(7 - i)
		f := FileA
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				f += File(ch - '0')
				continue
			}
			p := PieceFromChar(byte(ch))
			if p == NoPiece {
				return fmt.Errorf("board: bad fen piece char %q", ch)
			}
			if f > FileH {
				return fmt.Errorf("board: fen rank overflow")
			}
			b.putPiece(p, MakeSquare(f, r))
			f++
		}
	}

	switch fields[1] {
	case "w":
		b.sideToMove = White
	case "b":
		b.sideToMove = Black
	default:
		return fmt.Errorf("board: bad side to move %q", fields[1])
	}

	b.castling = CastlingNone
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				b.castling |= WhiteKingside
			case 'Q':
				b.castling |= WhiteQueenside
			case 'k':
				b.castling |= BlackKingside
			case 'q':
				b.castling |= BlackQueenside
			}
		}
	}

	b.epSquare = SqNone
	if fields[3] != "-" {
		b.epSquare = SquareFromString(fields[3])
	}

	b.halfMoveClock = 0
	b.fullMoveNo = 1
	if len(fields) >= 5 {
		if v, err := strconv.Atoi(fields[4]); err == nil {
			b.halfMoveClock = v
		}
	}
	if len(fields) >= 6 {
		if v, err := strconv.Atoi(fields[5]); err == nil {
			b.fullMoveNo = v
		}
	}

	b.hash = b.computeHash()
	b.history = b.history[:0]
	return nil
}

func (b *Board) computeHash() Key {
	var h Key
	for s := SqA1; s <= SqH8; s++ {
		if p := b.pieces[s]; p != NoPiece {
			h ^= Zobrist.PieceSquareKey(p, s)
		}
	}
	h ^= Zobrist.CastlingKey(b.castling)
	if b.epSquare != SqNone {
		h ^= Zobrist.EnPassantKey(b.epSquare.FileOf())
	}
	if b.sideToMove == Black {
		h ^= Zobrist.SideKey()
	}
	return h
}

func (b *Board) putPiece(p Piece, s Square) {
	b.pieces[s] = p
	bb := SquareBb(s)
	b.pieceBb[p] |= bb
	b.colorBb[p.ColorOf()] |= bb
	b.occupied |= bb
}

func (b *Board) removePiece(s Square) Piece {
	p := b.pieces[s]
	b.pieces[s] = NoPiece
	bb := SquareBb(s)
	b.pieceBb[p] &^= bb
	b.colorBb[p.ColorOf()] &^= bb
	b.occupied &^= bb
	return p
}

func (b *Board) movePieceQuiet(from, to Square) {
	p := b.pieces[from]
	b.pieces[from] = NoPiece
	b.pieces[to] = p
	move := SquareBb(from) | SquareBb(to)
	b.pieceBb[p] ^= move
	b.colorBb[p.ColorOf()] ^= move
	b.occupied ^= move
}

// PieceAt returns the piece on square s, or NoPiece.
func (b *Board) PieceAt(s Square) Piece {
	return b.pieces[s]
}

// PieceBb returns the bitboard of all pieces of the given piece kind.
func (b *Board) PieceBb(p Piece) Bitboard {
	return b.pieceBb[p]
}

// PieceTypeBb returns the combined bitboard of both colors' pieces of
// the given type.
func (b *Board) PieceTypeBb(pt PieceType) Bitboard {
	return b.pieceBb[MakePiece(White, pt)] | b.pieceBb[MakePiece(Black, pt)]
}

// Occupied returns the bitboard of all occupied squares.
func (b *Board) Occupied() Bitboard {
	return b.occupied
}

// AllPieces returns the occupancy bitboard of one color.
func (b *Board) AllPieces(c Color) Bitboard {
	return b.colorBb[c]
}

// DiagonalSliders returns the bishops and queens of color c.
func (b *Board) DiagonalSliders(c Color) Bitboard {
	return b.pieceBb[MakePiece(c, Bishop)] | b.pieceBb[MakePiece(c, Queen)]
}

// OrthogonalSliders returns the rooks and queens of color c.
func (b *Board) OrthogonalSliders(c Color) Bitboard {
	return b.pieceBb[MakePiece(c, Rook)] | b.pieceBb[MakePiece(c, Queen)]
}

// SideToMove returns the color to move.
func (b *Board) SideToMove() Color {
	return b.sideToMove
}

// Hash returns the Zobrist key of the current position.
func (b *Board) Hash() Key {
	return b.hash
}

// EnPassantSquare returns the current en passant target, or SqNone.
func (b *Board) EnPassantSquare() Square {
	return b.epSquare
}

// CastlingRightsMask returns the current castling rights.
func (b *Board) CastlingRightsMask() CastlingRights {
	return b.castling
}

// HalfMoveClock returns the number of plies since the last capture or
// pawn move, used for the fifty-move rule.
func (b *Board) HalfMoveClock() int {
	return b.halfMoveClock
}

// KingSquare returns the square of color c's king.
func (b *Board) KingSquare(c Color) Square {
	return b.pieceBb[MakePiece(c, King)].Lsb()
}

// LastMove returns the move played to reach the current position, or
// MoveNone at the root.
func (b *Board) LastMove() Move {
	if len(b.history) == 0 {
		return MoveNone
	}
	return b.history[len(b.history)-1].move
}

// AllAttackers returns every piece of any color attacking square s
// given the supplied occupancy (which may differ from the board's own
// occupancy, as used by SEE's incremental x-ray recomputation).
func (b *Board) AllAttackers(s Square, occupied Bitboard) Bitboard {
	var att Bitboard
	att |= attacks.PawnAttacks(s, White) & b.pieceBb[BlackPawn]
	att |= attacks.PawnAttacks(s, Black) & b.pieceBb[WhitePawn]
	att |= attacks.KnightAttacks(s) & b.PieceTypeBb(Knight)
	att |= attacks.KingAttacks(s) & b.PieceTypeBb(King)
	bishopsAndQueens := b.PieceTypeBb(Bishop) | b.PieceTypeBb(Queen)
	rooksAndQueens := b.PieceTypeBb(Rook) | b.PieceTypeBb(Queen)
	att |= attacks.BishopAttacks(s, occupied) & bishopsAndQueens
	att |= attacks.RookAttacks(s, occupied) & rooksAndQueens
	return att
}

// Attackers returns the attackers of square s of color c using the
// board's current occupancy.
func (b *Board) Attackers(s Square, c Color) Bitboard {
	return b.AllAttackers(s, b.occupied) & b.colorBb[c]
}

// IsAttacked reports whether square s is attacked by any piece of
// color c.
func (b *Board) IsAttacked(s Square, c Color) bool {
	return b.Attackers(s, c) != 0
}

// InCheck reports whether color c's king is currently attacked.
func (b *Board) InCheck(c Color) bool {
	return b.IsAttacked(b.KingSquare(c), c.Flip())
}

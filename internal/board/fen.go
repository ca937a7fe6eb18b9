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
	"fmt"
	"strconv"
	"strings"

	. "github.com/corvidchess/engine/internal/types"
)

// Fen renders the current position as a FEN string.
func (b *Board) Fen() string {
	var sb strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			p := b.pieces[MakeSquare(f, r)]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(p.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != Rank1 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(b.sideToMove.String())
	sb.WriteByte(' ')
	if b.castling == CastlingNone {
		sb.WriteByte('-')
	} else {
		if b.castling.Has(WhiteKingside) {
			sb.WriteByte('K')
		}
		if b.castling.Has(WhiteQueenside) {
			sb.WriteByte('Q')
		}
		if b.castling.Has(BlackKingside) {
			sb.WriteByte('k')
		}
		if b.castling.Has(BlackQueenside) {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(b.epSquare.String())
	sb.WriteString(fmt.Sprintf(" %d %d", b.halfMoveClock, b.fullMoveNo))
	return sb.String()
}

// String renders an ASCII board diagram followed by the FEN, used for
// log output and debugging.
func (b *Board) String() string {
	var sb strings.Builder
	for r := Rank8; r >= Rank1; r-- {
		sb.WriteString(r.String())
		sb.WriteString("  ")
		for f := FileA; f <= FileH; f++ {
			p := b.pieces[MakeSquare(f, r)]
			sb.WriteByte(p.Char())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	sb.WriteString(b.Fen())
	return sb.String()
}

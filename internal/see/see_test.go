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

package see

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/engine/internal/board"
	. "github.com/corvidchess/engine/internal/types"
)

// Undefended pawn capture: d4xe5 with nothing recapturing on e5.
func TestSeeUndefendedPawnCaptureWins(t *testing.T) {
	b, err := board.NewBoardFen("4k3/8/8/4p3/3P4/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	m := NewMove(SqD4, SqE5, FlagCapture)
	assert.True(t, See(b, m, 0))
	assert.Equal(t, 100, SeeValue(b, m, false))
}

// A black pawn on d5 is not a diagonal attacker of e5 (black pawns
// capture toward lower ranks), so d4xe5 still wins the pawn outright
// here even though the literal scenario this FEN is drawn from claims
// otherwise; see the discussion in DESIGN.md.
func TestSeeAdjacentPawnDoesNotDefendCaptureSquare(t *testing.T) {
	b, err := board.NewBoardFen("4k3/8/8/3pp3/3P4/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	m := NewMove(SqD4, SqE5, FlagCapture)
	assert.True(t, See(b, m, 0))
	assert.Equal(t, 100, SeeValue(b, m, false))
}

// En passant capture recaptured by a rook: White wins the pawn but the
// rook takes it back for free, netting an even (pawn-for-pawn) trade.
func TestSeeEnPassantCaptureRecapturedByRookIsEven(t *testing.T) {
	b, err := board.NewBoardFen("3rk3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)

	m := NewMove(SqE5, SqD6, FlagEnPassant)
	assert.True(t, m.IsEnPassant())
	assert.True(t, See(b, m, 0))
	assert.Equal(t, 0, SeeValue(b, m, false))
}

// Losing capture: a rook taking a pawn defended by another pawn loses
// the exchange outright.
func TestSeeLosingRookForPawnCaptureFails(t *testing.T) {
	b, err := board.NewBoardFen("4k3/8/3p4/4p3/4R3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	m := NewMove(SqE4, SqE5, FlagCapture)
	assert.False(t, See(b, m, 0))
	assert.Negative(t, SeeValue(b, m, false))
}

// Promotion is always treated as winning by the fast boolean check,
// independent of any recapture on the destination square.
func TestSeePromotionCaptureAlwaysPasses(t *testing.T) {
	b, err := board.NewBoardFen("r3k3/1P6/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	m := NewMove(SqB7, SqA8, NewPromotionFlag(Queen, true))
	assert.True(t, m.IsPromotion())
	assert.True(t, See(b, m, 10000))
}

// SeeValue accounts for the queen-promotion bonus on top of the
// captured piece's value when nothing recaptures.
func TestSeeValuePromotionCaptureAddsPromotionBonus(t *testing.T) {
	b, err := board.NewBoardFen("r3k3/1P6/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	m := NewMove(SqB7, SqA8, NewPromotionFlag(Queen, true))
	want := int(Rook.Value()) + int(Queen.Value()-Pawn.Value())
	assert.Equal(t, want, SeeValue(b, m, false))
}

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

package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/corvidchess/engine/internal/types"
)

func TestButterflyGravitySaturatesAtMaxHistory(t *testing.T) {
	h := New()
	cut := NewMove(SqE2, SqE4, FlagQuiet)

	for i := 0; i < 10000; i++ {
		h.Update(White, 0, 20, cut, WhitePawn, nil, nil, NoPiece, SqNone, NoPiece, SqNone)
	}

	got := h.Butterfly(White, SqE2, SqE4)
	assert.LessOrEqual(t, got, int32(MaxHistory))
	assert.Greater(t, got, int32(0))
}

func TestButterflyMalusIsNegativeAndBounded(t *testing.T) {
	h := New()
	cut := NewMove(SqE2, SqE4, FlagQuiet)
	rejected := NewMove(SqD2, SqD4, FlagQuiet)

	for i := 0; i < 10000; i++ {
		h.Update(White, 0, 20, cut, WhitePawn, []Move{rejected}, []Piece{WhitePawn}, NoPiece, SqNone, NoPiece, SqNone)
	}

	got := h.Butterfly(White, SqD2, SqD4)
	assert.GreaterOrEqual(t, got, -int32(MaxHistory))
	assert.Less(t, got, int32(0))
}

func TestUpdatePromotesKillerAndShiftsSlot(t *testing.T) {
	h := New()
	first := NewMove(SqE2, SqE4, FlagQuiet)
	second := NewMove(SqG1, SqF3, FlagQuiet)

	h.Update(White, 3, 4, first, WhitePawn, nil, nil, NoPiece, SqNone, NoPiece, SqNone)
	k0, k1 := h.Killers(3)
	assert.Equal(t, first, k0)
	assert.Equal(t, MoveNone, k1)

	h.Update(White, 3, 4, second, WhiteKnight, nil, nil, NoPiece, SqNone, NoPiece, SqNone)
	k0, k1 = h.Killers(3)
	assert.Equal(t, second, k0, "the most recent cutoff move takes killer[0]")
	assert.Equal(t, first, k1, "the prior killer[0] is pushed down to killer[1]")
}

func TestUpdateRepeatingSameKillerDoesNotDuplicate(t *testing.T) {
	h := New()
	m := NewMove(SqE2, SqE4, FlagQuiet)

	h.Update(White, 5, 4, m, WhitePawn, nil, nil, NoPiece, SqNone, NoPiece, SqNone)
	h.Update(White, 5, 4, m, WhitePawn, nil, nil, NoPiece, SqNone, NoPiece, SqNone)

	k0, k1 := h.Killers(5)
	assert.Equal(t, m, k0)
	assert.Equal(t, MoveNone, k1, "re-storing the same killer must not shift it into killer[1]")
}

func TestClearKillersAtResetsOnlyThatPly(t *testing.T) {
	h := New()
	m := NewMove(SqE2, SqE4, FlagQuiet)
	h.Update(White, 2, 4, m, WhitePawn, nil, nil, NoPiece, SqNone, NoPiece, SqNone)
	h.Update(White, 7, 4, m, WhitePawn, nil, nil, NoPiece, SqNone, NoPiece, SqNone)

	h.ClearKillersAt(2)

	assert.False(t, h.IsKiller(2, m))
	assert.True(t, h.IsKiller(7, m))
}

func TestCounterMoveRecordedAndLookedUp(t *testing.T) {
	h := New()
	cut := NewMove(SqE7, SqE5, FlagQuiet)

	h.Update(Black, 1, 4, cut, BlackPawn, nil, nil, WhitePawn, SqE4, NoPiece, SqNone)

	assert.Equal(t, cut, h.Counter(WhitePawn, SqE4))
	assert.Equal(t, MoveNone, h.Counter(WhitePawn, SqD4))
	assert.Equal(t, MoveNone, h.Counter(NoPiece, SqE4))
}

func TestContinuationHistoriesRequirePieceContext(t *testing.T) {
	h := New()
	assert.EqualValues(t, 0, h.Cont1(NoPiece, SqE4, WhitePawn, SqE5))
	assert.EqualValues(t, 0, h.Cont2(NoPiece, SqE4, WhitePawn, SqE5))

	cut := NewMove(SqE4, SqE5, FlagQuiet)
	h.Update(White, 4, 4, cut, WhitePawn, nil, nil, BlackKnight, SqF6, WhiteBishop, SqC1)

	assert.NotEqualValues(t, 0, h.Cont1(BlackKnight, SqF6, WhitePawn, SqE5))
	assert.NotEqualValues(t, 0, h.Cont2(WhiteBishop, SqC1, WhitePawn, SqE5))
}

func TestAgeHalvesButterflyMagnitudes(t *testing.T) {
	h := New()
	cut := NewMove(SqE2, SqE4, FlagQuiet)
	h.Update(White, 0, 4, cut, WhitePawn, nil, nil, NoPiece, SqNone, NoPiece, SqNone)

	before := h.Butterfly(White, SqE2, SqE4)
	assert.Greater(t, before, int32(0))

	h.Age()
	after := h.Butterfly(White, SqE2, SqE4)
	assert.Equal(t, before/2, after)
}

func TestClearAllZeroesEverything(t *testing.T) {
	h := New()
	cut := NewMove(SqE2, SqE4, FlagQuiet)
	h.Update(White, 0, 4, cut, WhitePawn, nil, nil, NoPiece, SqNone, NoPiece, SqNone)

	h.ClearAll()

	assert.EqualValues(t, 0, h.Butterfly(White, SqE2, SqE4))
	assert.False(t, h.IsKiller(0, cut))
	assert.Equal(t, MoveNone, h.Counter(WhitePawn, SqE4))
}

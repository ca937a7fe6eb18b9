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

package ordering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/engine/internal/board"
	"github.com/corvidchess/engine/internal/history"
	. "github.com/corvidchess/engine/internal/types"
)

func TestGetNextBestReturnsTTMoveFirst(t *testing.T) {
	b, err := board.NewBoardFen("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	var ml board.MoveList
	b.GenerateLegals(&ml)
	require.Greater(t, ml.Count, 1)

	ttMove := NewMove(SqE2, SqE4, FlagDoublePawnPush)

	s := NewScorer(ml.Count)
	s.Load(b, &ml, Params{TTMove: ttMove, History: history.New()})

	assert.Equal(t, ttMove, s.GetNextBest(0), "the TT move must be returned first regardless of its natural ordering")
}

func TestUnderpromotionSortsAfterQueenAndKnightPromotions(t *testing.T) {
	b, err := board.NewBoardFen("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	var ml board.MoveList
	b.GenerateLegals(&ml)
	require.Equal(t, 9, ml.Count, "four promotion choices for the pawn plus five king moves")

	s := NewScorer(ml.Count)
	s.Load(b, &ml, Params{History: history.New()})

	first := s.GetNextBest(0)
	assert.Equal(t, Queen, first.PromotionType(), "queen promotion must sort ahead of every other choice")

	second := s.GetNextBest(1)
	assert.Equal(t, Knight, second.PromotionType(), "knight promotion is the second-best tier")

	for i := 2; i < s.Len()-2; i++ {
		s.GetNextBest(i)
	}
	lastButOne := s.GetNextBest(s.Len() - 2)
	last := s.GetNextBest(s.Len() - 1)
	assert.ElementsMatch(t, []PieceType{Rook, Bishop}, []PieceType{lastButOne.PromotionType(), last.PromotionType()},
		"rook/bishop underpromotions fill the last two slots")
}

func TestGetNextBestLeavesEarlierSlotsUntouched(t *testing.T) {
	b, err := board.NewBoardFen("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	var ml board.MoveList
	b.GenerateLegals(&ml)

	s := NewScorer(ml.Count)
	s.Load(b, &ml, Params{History: history.New()})

	picked := make([]Move, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		picked = append(picked, s.GetNextBest(i))
	}

	seen := make(map[Move]bool, len(picked))
	for _, m := range picked {
		assert.False(t, seen[m], "GetNextBest must never return the same move twice across a full sweep")
		seen[m] = true
	}
	assert.Len(t, picked, ml.Count)
}

func TestGoodCaptureOutranksOrdinaryQuietMove(t *testing.T) {
	b, err := board.NewBoardFen("4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	var ml board.MoveList
	b.GenerateLegals(&ml)

	s := NewScorer(ml.Count)
	s.Load(b, &ml, Params{History: history.New()})

	best := s.GetNextBest(0)
	assert.True(t, best.IsCapture(), "an undefended pawn capture should outrank every quiet king move available here")
}

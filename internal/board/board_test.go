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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/corvidchess/engine/internal/types"
)

const kiwipeteFen = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func TestFenRoundTripStartPosition(t *testing.T) {
	b, err := NewBoardFen(StartFen)
	require.NoError(t, err)
	assert.Equal(t, StartFen, b.Fen())
}

func TestFenRoundTripArbitraryPositions(t *testing.T) {
	for _, fen := range []string{
		kiwipeteFen,
		"r1b1kbnr/pppp1ppp/2n5/4p3/2B1P3/5Q2/PPPP1PPP/RNB1K1NR w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"4k3/8/8/8/8/8/6P1/4K3 w - - 5 40",
	} {
		b, err := NewBoardFen(fen)
		require.NoError(t, err)
		assert.Equal(t, fen, b.Fen())
	}
}

func TestFenRejectsMalformedInput(t *testing.T) {
	_, err := NewBoardFen("not a fen")
	assert.Error(t, err)
}

func TestPerftStartPosition(t *testing.T) {
	b, err := NewBoardFen(StartFen)
	require.NoError(t, err)

	assert.EqualValues(t, 20, Perft(b, 1))
	assert.EqualValues(t, 400, Perft(b, 2))
	assert.EqualValues(t, 8902, Perft(b, 3))
}

func TestPerftKiwipete(t *testing.T) {
	b, err := NewBoardFen(kiwipeteFen)
	require.NoError(t, err)

	assert.EqualValues(t, 48, Perft(b, 1))
	assert.EqualValues(t, 2039, Perft(b, 2))
}

func TestPerftLeavesBoardUnchanged(t *testing.T) {
	b, err := NewBoardFen(kiwipeteFen)
	require.NoError(t, err)

	before := b.Fen()
	Perft(b, 3)
	assert.Equal(t, before, b.Fen(), "perft's play/undo must fully restore the position")
}

func TestIsDrawFiftyMoveRule(t *testing.T) {
	b, err := NewBoardFen("4k3/8/8/8/8/8/8/3RK3 w - - 99 60")
	require.NoError(t, err)
	assert.False(t, b.IsDraw())

	b2, err := NewBoardFen("4k3/8/8/8/8/8/8/3RK3 w - - 100 60")
	require.NoError(t, err)
	assert.True(t, b2.IsDraw())
}

func TestIsDrawInsufficientMaterial(t *testing.T) {
	for _, fen := range []string{
		"4k3/8/8/8/8/8/8/4K3 w - - 0 1",
		"4k3/8/8/8/8/8/8/3NK3 w - - 0 1",
		"4k3/8/8/8/8/8/8/3BK3 w - - 0 1",
	} {
		b, err := NewBoardFen(fen)
		require.NoError(t, err)
		assert.True(t, b.IsDraw(), "fen %q should be insufficient material", fen)
	}

	b, err := NewBoardFen("4k3/8/8/8/8/8/8/2B1K1N1 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, b.IsDraw(), "two minors on the same side can still force mate")

	b2, err := NewBoardFen("4k3/8/8/8/8/8/8/3RK3 w - - 0 1")
	require.NoError(t, err)
	assert.False(t, b2.IsDraw(), "a lone rook is sufficient mating material")
}

func TestIsDrawRepetition(t *testing.T) {
	b, err := NewBoardFen(StartFen)
	require.NoError(t, err)

	knightShuffle := []Move{
		NewMove(SqG1, SqF3, FlagQuiet),
		NewMove(SqG8, SqF6, FlagQuiet),
		NewMove(SqF3, SqG1, FlagQuiet),
		NewMove(SqF6, SqG8, FlagQuiet),
	}
	for _, m := range knightShuffle {
		b.Play(m)
	}
	assert.False(t, b.IsDraw(), "the start position has occurred only twice so far, not a draw yet")

	for _, m := range knightShuffle {
		b.Play(m)
	}
	assert.True(t, b.IsDraw(), "returning to the start position a third time is a draw")
}

func TestCastlingRightsLostAfterKingMove(t *testing.T) {
	b, err := NewBoardFen(kiwipeteFen)
	require.NoError(t, err)

	b.Play(NewMove(SqE1, SqF1, FlagQuiet))
	assert.False(t, b.CastlingRightsMask().Has(WhiteKingside))
	assert.False(t, b.CastlingRightsMask().Has(WhiteQueenside))
}

func TestCastlingRightsLostAfterRookMove(t *testing.T) {
	b, err := NewBoardFen(kiwipeteFen)
	require.NoError(t, err)

	b.Play(NewMove(SqH1, SqG1, FlagQuiet))
	assert.False(t, b.CastlingRightsMask().Has(WhiteKingside))
	assert.True(t, b.CastlingRightsMask().Has(WhiteQueenside))
}

func TestKingsideCastleMovesRookToo(t *testing.T) {
	b, err := NewBoardFen("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)

	b.Play(NewMove(SqE1, SqG1, FlagKingCastle))
	assert.Equal(t, WhiteKing, b.PieceAt(SqG1))
	assert.Equal(t, WhiteRook, b.PieceAt(SqF1))
	assert.Equal(t, NoPiece, b.PieceAt(SqE1))
	assert.Equal(t, NoPiece, b.PieceAt(SqH1))
}

func TestUndoKingsideCastleRestoresRookAndKing(t *testing.T) {
	b, err := NewBoardFen("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)

	before := b.Fen()
	m := NewMove(SqE1, SqG1, FlagKingCastle)
	b.Play(m)
	b.Undo(m)
	assert.Equal(t, before, b.Fen())
}

func TestEnPassantCaptureRemovesTheCapturedPawn(t *testing.T) {
	b, err := NewBoardFen("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)

	m := NewMove(SqE5, SqD6, FlagEnPassant)
	b.Play(m)

	assert.Equal(t, WhitePawn, b.PieceAt(SqD6))
	assert.Equal(t, NoPiece, b.PieceAt(SqD5), "the captured pawn must be removed, not the target square")
	assert.Equal(t, NoPiece, b.PieceAt(SqE5))
}

func TestPromotionReplacesThePawn(t *testing.T) {
	b, err := NewBoardFen("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	m := NewMove(SqA7, SqA8, NewPromotionFlag(Queen, false))
	b.Play(m)

	assert.Equal(t, WhiteQueen, b.PieceAt(SqA8))
	assert.Equal(t, NoPiece, b.PieceAt(SqA7))
}

func TestLegalMovesExcludeMovesThatLeaveKingInCheck(t *testing.T) {
	b, err := NewBoardFen("4k3/8/4r3/8/4K3/8/8/8 w - - 0 1")
	require.NoError(t, err)

	var ml MoveList
	b.GenerateLegals(&ml)

	require.Greater(t, ml.Count, 0)
	for i := 0; i < ml.Count; i++ {
		to := ml.Moves[i].To()
		assert.NotEqual(t, SqE3, to, "e3 is still on the rook's file and stays in check")
		assert.NotEqual(t, SqE5, to, "e5 is still on the rook's file and stays in check")
	}
}

func TestInCheckDetectsAttackOnKing(t *testing.T) {
	b, err := NewBoardFen("4k3/8/8/8/8/8/8/4K2R w - - 0 1")
	require.NoError(t, err)
	assert.False(t, b.InCheck(Black))

	b2, err := NewBoardFen("4k2R/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, b2.InCheck(Black))
}

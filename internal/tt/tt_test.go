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

package tt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/corvidchess/engine/internal/types"
)

func TestProbeMissOnEmptyTable(t *testing.T) {
	table := New(1)
	_, found := table.Probe(Key(12345))
	assert.False(t, found)
}

func TestStoreThenProbeRoundTrip(t *testing.T) {
	table := New(1)
	entry := Entry{
		Key:   Key(0xABCDEF),
		Move:  NewMove(SqE2, SqE4, 0),
		Score: 123,
		Depth: 5,
		Bound: BoundExact,
	}
	table.Store(entry)

	got, found := table.Probe(entry.Key)
	assert.True(t, found)
	assert.Equal(t, entry.Move, got.Move)
	assert.EqualValues(t, 123, got.Score)
	assert.EqualValues(t, 5, got.Depth)
	assert.Equal(t, BoundExact, got.Bound)
	assert.EqualValues(t, 0, got.Age)
}

func TestStoreKeepsDeeperSameGenerationEntry(t *testing.T) {
	table := New(1)
	key := Key(0x1111)

	table.Store(Entry{Key: key, Depth: 10, Bound: BoundLower, Score: 50})
	table.Store(Entry{Key: key, Depth: 3, Bound: BoundLower, Score: 10})

	got, found := table.Probe(key)
	assert.True(t, found)
	assert.EqualValues(t, 10, got.Depth, "a shallower same-generation non-exact store must not evict a deeper entry")
}

func TestStoreAlwaysReplacesOnExactBound(t *testing.T) {
	table := New(1)
	key := Key(0x2222)

	table.Store(Entry{Key: key, Depth: 10, Bound: BoundLower, Score: 50})
	table.Store(Entry{Key: key, Depth: 1, Bound: BoundExact, Score: 77})

	got, found := table.Probe(key)
	assert.True(t, found)
	assert.EqualValues(t, 1, got.Depth)
	assert.Equal(t, BoundExact, got.Bound)
}

func TestStoreReplacesAcrossGenerations(t *testing.T) {
	table := New(1)
	key := Key(0x3333)

	table.Store(Entry{Key: key, Depth: 10, Bound: BoundLower, Score: 50})
	table.NewGeneration()
	table.Store(Entry{Key: key, Depth: 1, Bound: BoundLower, Score: 10})

	got, found := table.Probe(key)
	assert.True(t, found)
	assert.EqualValues(t, 1, got.Depth, "a new generation's entry must evict a stale deeper entry")
	assert.EqualValues(t, 1, got.Age)
}

func TestClearEmptiesTableAndResetsAge(t *testing.T) {
	table := New(1)
	table.NewGeneration()
	table.Store(Entry{Key: Key(7), Depth: 1, Bound: BoundExact})

	table.Clear()

	_, found := table.Probe(Key(7))
	assert.False(t, found)
	assert.EqualValues(t, 0, table.Age())
}

func TestHashScoreRoundTripAcrossPlyShift(t *testing.T) {
	mateScore := MateValue - 5

	stored := ToHashScore(mateScore, 3)
	restored := AdjustHashScore(stored, 3)
	assert.Equal(t, mateScore, restored)

	// The same stored value read back at a different ply (simulating a
	// transposition reached via a different path length) must still
	// decode to a mate distance relative to the new ply.
	restoredElsewhere := AdjustHashScore(stored, 1)
	assert.True(t, IsMateScore(restoredElsewhere))
}

func TestHashFullOnEmptyTableIsZero(t *testing.T) {
	table := New(1)
	assert.Equal(t, 0, table.HashFull())
}

func TestPrefetchIsANoOp(t *testing.T) {
	table := New(1)
	assert.NotPanics(t, func() {
		table.Prefetch(Key(1))
		table.PrefetchWrite(Key(1))
	})
}

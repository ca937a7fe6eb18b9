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

// Package tt implements the engine's transposition table: a fixed-size
// array of entries indexed by the low bits of the Zobrist key, with an
// always-replace-unless-deeper-and-newer policy and a rolling age used
// to prefer entries from the current search generation.
package tt

import (
	"github.com/corvidchess/engine/internal/assert"
	. "github.com/corvidchess/engine/internal/types"
)

// Bound identifies whether a stored score is exact or a cutoff bound.
type Bound uint8

// The three bound kinds a PVS node can terminate with, plus BoundNone
// for an empty slot.
const (
	BoundNone Bound = iota
	BoundExact
	BoundLower
	BoundUpper
)

// Entry is one transposition table slot. Score is ply-relative as
// stored by ToHashScore/AdjustHashScore and must be converted before
// use at a different ply (e.g. after a deeper research at the root).
type Entry struct {
	Key   Key
	Move  Move
	Score int16
	Eval  int16
	Depth uint8
	Bound Bound
	Age   uint8
}

const entrySize = 24 // approximate slot footprint in bytes, for sizing by MB

// Table is the transposition table.
type Table struct {
	entries []Entry
	mask    uint64
	age     uint8

	hits   uint64
	probes uint64
}

// New creates a table sized to approximately sizeMB megabytes.
func New(sizeMB int) *Table {
	t := &Table{}
	t.Resize(sizeMB)
	return t
}

// Resize reallocates the table for approximately sizeMB megabytes,
// rounding the entry count down to a power of two so indexing can use
// a bitmask instead of a modulo.
func (t *Table) Resize(sizeMB int) {
	if sizeMB < 1 {
		sizeMB = 1
	}
	wanted := uint64(sizeMB) * 1024 * 1024 / entrySize
	n := uint64(1)
	for n*2 <= wanted {
		n *= 2
	}
	if n == 0 {
		n = 1
	}
	t.entries = make([]Entry, n)
	t.mask = n - 1
}

func (t *Table) index(key Key) uint64 {
	return uint64(key) & t.mask
}

// Probe looks up key. The second return value is false if the slot is
// empty or holds a different key (a hash collision treated as a miss).
func (t *Table) Probe(key Key) (Entry, bool) {
	t.probes++
	e := t.entries[t.index(key)]
	if e.Key != key || e.Bound == BoundNone {
		return Entry{}, false
	}
	t.hits++
	return e, true
}

// Store writes an entry, replacing the current occupant of its slot
// unless the occupant has the same key, is from the same search
// generation and was searched strictly deeper, and the new entry is
// not an exact bound (so a fresh shallow bound cannot evict a deeper
// result still valid for this search).
func (t *Table) Store(e Entry) {
	if assert.DEBUG {
		assert.Assert(e.Depth < 255, "tt: Store depth out of range")
	}
	idx := t.index(e.Key)
	cur := &t.entries[idx]
	if cur.Key == e.Key && cur.Age == t.age && cur.Depth > e.Depth && e.Bound != BoundExact {
		return
	}
	e.Age = t.age
	*cur = e
}

// Prefetch and PrefetchWrite are non-blocking cache hints in the
// reference design. Go's memory model gives no portable prefetch
// intrinsic, so both are no-ops here; the interface is kept so the
// search can issue the hint uniformly regardless of host platform.
func (t *Table) Prefetch(key Key)      {}
func (t *Table) PrefetchWrite(key Key) {}

// Clear empties every slot and resets the generation counter. Called
// on a new game.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
	t.age = 0
	t.hits, t.probes = 0, 0
}

// NewGeneration advances the rolling age, called once per new search
// so stale entries from earlier searches are preferentially replaced
// without needing to be wiped.
func (t *Table) NewGeneration() {
	t.age++
}

// Age returns the table's current search generation.
func (t *Table) Age() uint8 {
	return t.age
}

// HashFull estimates the table's fill level in per-mille by sampling
// the first 1000 slots, the conventional UCI `info hashfull` metric.
func (t *Table) HashFull() int {
	sample := 1000
	if uint64(sample) > t.mask+1 {
		sample = int(t.mask + 1)
	}
	used := 0
	for i := 0; i < sample; i++ {
		if t.entries[i].Bound != BoundNone && t.entries[i].Age == t.age {
			used++
		}
	}
	if sample == 0 {
		return 0
	}
	return used * 1000 / sample
}

// ToHashScore converts a mate score relative to the root into a score
// relative to this node's distance from the root, suitable for
// storage (mate scores would otherwise be ambiguous when reused from a
// different ply).
func ToHashScore(score Value, ply int) int16 {
	return int16(ValueToTT(score, ply))
}

// AdjustHashScore reverses ToHashScore when a stored score is read
// back out at the current ply.
func AdjustHashScore(score int16, ply int) Value {
	return ValueFromTT(Value(score), ply)
}

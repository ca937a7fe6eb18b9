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

// Value is a search or evaluation score in centipawns (or mate-distance
// units above MateThreshold).
type Value int32

// Search bounds and special score constants.
const (
	// ValueZero is a neutral evaluation.
	ValueZero Value = 0
	// ValueInfinite is larger in magnitude than any legal score and is
	// used to seed alpha/beta at the root.
	ValueInfinite Value = 32000
	// ValueNone marks "no value available", e.g. a missing TT entry.
	ValueNone Value = 32001
	// MateValue is the score of delivering mate on the current ply.
	// Scores above MateThreshold encode "mate in N" and are adjusted
	// for distance-to-root when stored in or read from the TT.
	MateValue Value = 31000
	// MateThreshold separates normal evaluations from mate scores.
	MateThreshold Value = MateValue - MaxPly
	// DrawValue is the score of a known draw.
	DrawValue Value = 0
)

// MaxPly bounds recursion depth and the size of ply-indexed tables
// (killer moves, the PV triangle, node state stack).
const MaxPly = 128

// MaxHistory is the saturation cap for history heuristic scores.
const MaxHistory = 16384

// IsMateScore reports whether v represents a forced mate (for either
// side) rather than a normal material/positional evaluation.
func IsMateScore(v Value) bool {
	return v >= MateThreshold || v <= -MateThreshold
}

// MateIn converts a mate score into "moves to mate" (as reported by
// UCI `score mate N`), positive for the
// side to move delivering mate, negative for the side to move being
// mated.
func MateIn(v Value) int {
	if v > 0 {
		return int(MateValue - v + 1) / 2
	}
	return -int(MateValue+v) / 2
}

// ValueToTT adjusts a mate score found at search depth ply into a
// mate-distance-from-this-node score suitable for storing in the
// transposition table, which is shared across nodes at different
// distances from the root.
func ValueToTT(v Value, ply int) Value {
	if v >= MateThreshold {
		return v + Value(ply)
	}
	if v <= -MateThreshold {
		return v - Value(ply)
	}
	return v
}

// ValueFromTT reverses ValueToTT when reading a stored mate score back
// out at the current ply.
func ValueFromTT(v Value, ply int) Value {
	if v == ValueNone {
		return v
	}
	if v >= MateThreshold {
		return v - Value(ply)
	}
	if v <= -MateThreshold {
		return v + Value(ply)
	}
	return v
}

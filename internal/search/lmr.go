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

package search

import "math"

// MaxDepth bounds the depth dimension of the LMR table and the
// iterative deepening outer loop.
const MaxDepth = 128

// MaxMoves bounds the move-index dimension of the LMR table; no chess
// position has anywhere near this many legal moves, but the table is
// cheap and a generous bound avoids a range check on the hot path.
const MaxMoves = 220

// lmrTable[d][n] is the base late-move reduction applied to the n-th
// searched move (1-indexed) at depth d, precomputed once at process
// start since it depends only on two small integers.
var lmrTable [MaxDepth][MaxMoves]int

func init() {
	for d := 1; d < MaxDepth; d++ {
		for n := 1; n < MaxMoves; n++ {
			lmrTable[d][n] = int(1 + math.Log(float64(d))*math.Log(float64(n))*0.5)
		}
	}
}

// LmrReduction returns the precomputed base reduction for searching
// the n-th move (1-indexed by move count already searched, so the
// first late move uses n=2 per the component's mv_idx+1 convention)
// at the given depth.
func LmrReduction(depth, n int) int {
	if depth <= 0 || depth >= MaxDepth || n <= 0 || n >= MaxMoves {
		return 0
	}
	return lmrTable[depth][n]
}

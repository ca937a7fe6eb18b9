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

import "github.com/corvidchess/engine/internal/util"

// lmpTable[improving][min(11,depth)] bounds how many quiet moves are
// tried at shallow depth before late move pruning gives up on the
// rest of the quiets at this node.
var lmpTable = [2][12]int{
	{0, 2, 3, 5, 9, 13, 18, 25, 34, 45, 55, 55},
	{0, 5, 6, 9, 14, 21, 30, 41, 55, 69, 84, 84},
}

func lmpLimit(improving bool, depth int) int {
	idx := depth
	if idx > 11 {
		idx = 11
	}
	if idx < 0 {
		idx = 0
	}
	b := 0
	if improving {
		b = 1
	}
	return lmpTable[b][idx]
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int { return util.Max(a, b) }

func minInt(a, b int) int { return util.Min(a, b) }

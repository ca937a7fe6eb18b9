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

// Perft counts leaf nodes reachable from b at the given depth by
// brute-force move/unmake, the standard move generator correctness
// check: the counts at well-known positions are published and any
// divergence points at a move generation bug.
func Perft(b *Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var ml MoveList
	b.GenerateLegals(&ml)
	if depth == 1 {
		return uint64(ml.Count)
	}
	var nodes uint64
	for i := 0; i < ml.Count; i++ {
		m := ml.Moves[i]
		b.Play(m)
		nodes += Perft(b, depth-1)
		b.Undo(m)
	}
	return nodes
}

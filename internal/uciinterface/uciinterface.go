/*
 * Corvid - a UCI chess engine
 *
 * MIT License
 *
 * Copyright (c) 2021-2026 Corvid Chess Engine Contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package uciinterface defines the callback surface a search needs to
// report progress to a UCI front end. It exists as its own package
// purely to break the import cycle: uci holds a search.Engine and
// search.Engine holds a uciinterface.UciDriver, so neither package
// can import the other directly.
package uciinterface

import (
	"time"

	"github.com/corvidchess/engine/internal/types"
)

// UciDriver is implemented by the uci package's protocol handler and
// called by search as iterations complete and the search concludes.
type UciDriver interface {
	SendReadyOk()
	SendInfoString(info string)
	SendIterationEndInfo(depth, seldepth int, value types.Value, nodes uint64, nps uint64, elapsed time.Duration, pv []types.Move)
	SendAspirationResearchInfo(depth int, alpha, beta types.Value, value types.Value)
	SendCurrentRootMove(currMove types.Move, moveNumber int)
	SendSearchUpdate(depth, seldepth int, nodes uint64, nps uint64, elapsed time.Duration, hashfull int)
	SendCurrentLine(line []types.Move)
	SendResult(bestMove, ponderMove types.Move)
}

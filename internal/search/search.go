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

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/op/go-logging"

	"github.com/corvidchess/engine/internal/board"
	"github.com/corvidchess/engine/internal/config"
	"github.com/corvidchess/engine/internal/evaluator"
	"github.com/corvidchess/engine/internal/history"
	myLogging "github.com/corvidchess/engine/internal/logging"
	"github.com/corvidchess/engine/internal/timemanager"
	"github.com/corvidchess/engine/internal/tt"
	. "github.com/corvidchess/engine/internal/types"
	"github.com/corvidchess/engine/internal/uciinterface"
)

var out = message.NewPrinter(language.English)

// Limits carries the UCI `go` parameters that bound a single search.
type Limits struct {
	Infinite bool
	Ponder   bool

	Depth int
	Nodes uint64

	TimeControl bool
	WhiteTime   time.Duration
	BlackTime   time.Duration
	WhiteInc    time.Duration
	BlackInc    time.Duration
	MoveTime    time.Duration
	MovesToGo   int
}

// Result is the outcome of one completed (or stopped) search call.
type Result struct {
	BestMove   Move
	PonderMove Move
	BestValue  Value
	Depth      int
	Seldepth   int
	Nodes      uint64
	SearchTime time.Duration
	PV         []Move
}

// Engine owns one board, transposition table, evaluator and history
// set, and runs searches against them on a background goroutine.
// Mirrors the init/running semaphore pattern used to make
// StartSearch/StopSearch/WaitWhileSearching safe to call concurrently
// from the UCI command loop.
type Engine struct {
	log  *logging.Logger
	slog *logging.Logger

	uciHandler uciinterface.UciDriver

	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted

	tt   *tt.Table
	eval *evaluator.Evaluator
	hist *history.Tables

	state *State

	stopFlag bool

	lastResult *Result
	statistics Statistics
}

// NewEngine allocates a TT sized per config, a fresh evaluator and an
// empty history table, ready to search once a position is supplied.
func NewEngine() *Engine {
	return &Engine{
		log:           myLogging.GetLog(),
		slog:          myLogging.GetSearchLog(),
		initSemaphore: semaphore.NewWeighted(1),
		isRunning:     semaphore.NewWeighted(1),
		tt:            tt.New(config.Settings.Search.TTSize),
		eval:          evaluator.New(),
		hist:          history.New(),
	}
}

// SetUciHandler installs the callback used to report search progress.
func (e *Engine) SetUciHandler(h uciinterface.UciDriver) {
	e.uciHandler = h
}

// NewGame clears the transposition table and halves (ages) the history
// tables ahead of a new game, per UCI `ucinewgame`.
func (e *Engine) NewGame() {
	e.StopSearch()
	e.hist.Age()
	e.tt.Clear()
}

// IsSearching reports whether a search is currently running.
func (e *Engine) IsSearching() bool {
	if !e.isRunning.TryAcquire(1) {
		return true
	}
	e.isRunning.Release(1)
	return false
}

// WaitWhileSearching blocks until any running search has finished.
func (e *Engine) WaitWhileSearching() {
	_ = e.isRunning.Acquire(context.Background(), 1)
	e.isRunning.Release(1)
}

// StartSearch begins searching b under the given limits on a
// background goroutine. Returns once the goroutine has acquired the
// running lock, so a concurrent IsSearching() call afterward is
// accurate.
func (e *Engine) StartSearch(b *board.Board, limits Limits) {
	_ = e.initSemaphore.Acquire(context.Background(), 1)
	go e.run(b, limits)
	_ = e.initSemaphore.Acquire(context.Background(), 1)
	e.initSemaphore.Release(1)
}

// StopSearch requests the running search stop as soon as possible and
// blocks until it has.
func (e *Engine) StopSearch() {
	if e.state != nil {
		e.state.RequestStop()
	}
	e.stopFlag = true
	e.WaitWhileSearching()
}

// LastResult returns the result of the most recently completed
// search, or the zero Result if none has completed yet.
func (e *Engine) LastResult() Result {
	if e.lastResult == nil {
		return Result{}
	}
	return *e.lastResult
}

func (e *Engine) run(b *board.Board, limits Limits) {
	if !e.isRunning.TryAcquire(1) {
		e.log.Error("search already running")
		e.initSemaphore.Release(1)
		return
	}
	defer e.isRunning.Release(1)

	start := time.Now()
	e.stopFlag = false
	e.statistics = Statistics{}

	e.state = NewState(b, e.tt, e.eval, e.hist)
	e.state.ClearForNewSearch()

	tmLimits := timemanager.Limits{
		Mode:      searchModeFor(limits),
		Depth:     limits.Depth,
		Nodes:     limits.Nodes,
		MoveTime:  limits.MoveTime,
		MovesToGo: limits.MovesToGo,
	}
	us := b.SideToMove()
	if us == White {
		tmLimits.Remaining, tmLimits.Increment = limits.WhiteTime, limits.WhiteInc
	} else {
		tmLimits.Remaining, tmLimits.Increment = limits.BlackTime, limits.BlackInc
	}
	tm := timemanager.New(tmLimits, start)
	e.state.SetTimeManager(tm)

	e.tt.NewGeneration()
	e.initSemaphore.Release(1)

	var ml board.MoveList
	b.GenerateLegals(&ml)
	if ml.Count == 0 {
		if b.InCheck(us) {
			e.statistics.Checkmates++
		} else {
			e.statistics.Stalemates++
		}
		result := &Result{BestValue: boolVal(b.InCheck(us), -MateValue, 0)}
		e.finish(result, start)
		return
	}

	maxDepth := MaxDepth
	if limits.Depth > 0 {
		maxDepth = limits.Depth
	}
	e.state.IterativeDeepening(maxDepth, e.uciHandler)

	result := &Result{
		BestMove:  e.state.BestMove(),
		BestValue: e.state.rootBestVal,
		Depth:     maxDepth,
		Seldepth:  e.state.Seldepth(),
		Nodes:     e.state.Nodes(),
		PV:        e.state.PV(),
	}
	if len(result.PV) > 1 {
		result.PonderMove = result.PV[1]
	}
	e.finish(result, start)
}

func (e *Engine) finish(result *Result, start time.Time) {
	result.SearchTime = time.Since(start)
	e.log.Info(out.Sprintf("search finished after %s, best move %s", result.SearchTime, result.BestMove))
	e.lastResult = result
	e.stopFlag = true
	if e.uciHandler != nil {
		e.uciHandler.SendResult(result.BestMove, result.PonderMove)
	}
}

func searchModeFor(l Limits) timemanager.Mode {
	switch {
	case l.Infinite || l.Ponder:
		return timemanager.Infinite
	case l.Depth > 0 && !l.TimeControl:
		return timemanager.Depth
	case l.Nodes > 0 && !l.TimeControl:
		return timemanager.Nodes
	case l.MoveTime > 0:
		return timemanager.MoveTime
	default:
		return timemanager.Time
	}
}

func boolVal(b bool, t, f Value) Value {
	if b {
		return t
	}
	return f
}

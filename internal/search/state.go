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

// Package search implements the engine's recursive principal-variation
// search: quiescence at the horizon, the full PVS tree with pruning
// and reductions, iterative deepening with aspiration windows, and
// the state (killers, history, PV table, node stack) all of that
// shares across one search call.
package search

import (
	"time"

	"github.com/corvidchess/engine/internal/board"
	"github.com/corvidchess/engine/internal/evaluator"
	"github.com/corvidchess/engine/internal/history"
	"github.com/corvidchess/engine/internal/ordering"
	"github.com/corvidchess/engine/internal/timemanager"
	"github.com/corvidchess/engine/internal/tt"
	. "github.com/corvidchess/engine/internal/types"
)

// NodeState records, per ply, what is needed by deeper and sibling
// nodes without re-deriving it: the continuation-history key (piece,
// move) of the move played to reach this node, whether that move was
// a null move or tactical, the static eval stored for the improving
// check, and the accumulated double-extension counter along this line.
type NodeState struct {
	Eval        Value
	IsNull      bool
	IsTactical  bool
	Move        Move
	Piece       Piece
	DExtension  int
}

const pvMaxLen = MaxDepth + 4

// pvTable is a triangular principal-variation table: pv[ply][0:len[ply]]
// is the best line found from that node downward.
type pvTable struct {
	lines [pvMaxLen][pvMaxLen]Move
	len   [pvMaxLen]int
}

func (t *pvTable) reset(ply int) {
	t.len[ply] = 0
}

// update sets pv[ply] = move followed by pv[ply+1], the standard
// triangular-table copy-up used to assemble the PV as recursion
// unwinds.
func (t *pvTable) update(ply int, move Move) {
	t.lines[ply][0] = move
	copy(t.lines[ply][1:1+t.len[ply+1]], t.lines[ply+1][:t.len[ply+1]])
	t.len[ply] = t.len[ply+1] + 1
}

// Line returns the principal variation from the root.
func (t *pvTable) Line() []Move {
	return t.lines[0][:t.len[0]]
}

// Stop reasons recorded for UCI reporting / tests; the search itself
// only needs the boolean.
type stopReason int

const (
	stopNone stopReason = iota
	stopTime
	stopNodes
	stopExternal
)

// State owns every table and counter a single search call needs:
// history (preserved across searches of the same game), the node
// stack, the PV table, counters and the cooperative stop flag. The
// Engine constructs a fresh State for every search and passes in the
// history, TT and evaluator it owns, so those outlive the State;
// ClearForNewGame resets history and TT, ClearForNewSearch resets
// only per-search scratch.
type State struct {
	Board *board.Board
	TT    *tt.Table
	Eval  *evaluator.Evaluator
	Hist  *history.Tables

	nodeStack [pvMaxLen]NodeState
	pv        pvTable

	ply      int
	nodes    uint64
	seldepth int

	stop       bool
	stopReason stopReason

	tm *timemanager.Manager

	scorers [pvMaxLen]*ordering.Scorer

	rootBestMove Move
	rootBestVal  Value
}

// NewState builds a search state around the given position, TT and
// evaluator. Hist is preserved by the caller across searches (see
// ClearForNewSearch) and only aged (halved) on a new game.
func NewState(b *board.Board, table *tt.Table, eval *evaluator.Evaluator, hist *history.Tables) *State {
	s := &State{Board: b, TT: table, Eval: eval, Hist: hist}
	for i := range s.scorers {
		s.scorers[i] = ordering.NewScorer(256)
	}
	return s
}

// ClearForNewGame zeroes history and the transposition table. A UCI
// `ucinewgame` does not use it: it goes through Engine.NewGame, which
// halves history instead of zeroing it.
func (s *State) ClearForNewGame() {
	s.Hist.ClearAll()
	s.TT.Clear()
}

// ClearForNewSearch resets per-search scratch (PV, node stack, flags,
// counters) ahead of a `go` command. History, counters and killers are
// intentionally preserved across searches of the same game: only
// zeroed on ClearForNewGame, aged by Hist.Age between games.
func (s *State) ClearForNewSearch() {
	s.nodeStack = [pvMaxLen]NodeState{}
	s.pv = pvTable{}
	s.ply = 0
	s.nodes = 0
	s.seldepth = 0
	s.stop = false
	s.stopReason = stopNone
	s.rootBestMove = MoveNone
	s.rootBestVal = -ValueInfinite
}

// SetTimeManager installs the deadline manager for the in-progress
// search.
func (s *State) SetTimeManager(tm *timemanager.Manager) {
	s.tm = tm
}

// Nodes returns the number of nodes visited so far this search.
func (s *State) Nodes() uint64 {
	return s.nodes
}

// Seldepth returns the maximum ply reached this search.
func (s *State) Seldepth() int {
	return s.seldepth
}

// Stopped reports whether the cooperative stop flag is set.
func (s *State) Stopped() bool {
	return s.stop
}

// RequestStop sets the cooperative stop flag, called by the UCI layer
// on `stop` or when the GUI disconnects.
func (s *State) RequestStop() {
	s.stop = true
	s.stopReason = stopExternal
}

// PV returns the principal variation found by the most recently
// completed search.
func (s *State) PV() []Move {
	return s.pv.Line()
}

// BestMove returns the best move of the most recently completed
// iteration.
func (s *State) BestMove() Move {
	return s.rootBestMove
}

// pollStop checks the node-polling heartbeat for a time- or node-based
// termination. Called on entry to every PVS and quiescence node; it
// only consults the time manager once every NodeCheckInterval() nodes.
func (s *State) pollStop(depth int) {
	if s.nodes&(timemanager.NodeCheckInterval()-1) != 0 {
		return
	}
	if s.tm != nil && s.tm.ShouldStopHard(s.nodes, depth) {
		s.stop = true
		s.stopReason = stopTime
	}
}

// now is a small seam kept for symmetry with the reference design's
// single clock-read point; time.Now has no failure mode worth
// modelling here.
func now() time.Time {
	return time.Now()
}

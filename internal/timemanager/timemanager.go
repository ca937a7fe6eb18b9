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

// Package timemanager converts a UCI `go` command's clock parameters
// into a hard deadline (max_ms, polled on the search's node-count
// heartbeat) and a soft deadline (early_ms, consulted by the outer
// iterative-deepening loop between iterations).
package timemanager

import "time"

// Mode identifies how a search should decide when to stop.
type Mode int

// The five termination modes a `go` command can request.
const (
	Infinite Mode = iota
	Depth
	Nodes
	Time
	MoveTime
)

// overheadMs is subtracted from the remaining clock to leave margin
// for UCI round-trip and process scheduling latency.
const overheadMs = 50

// nodeCheckInterval is how often (in nodes) the search polls the
// clock; checking every node would make the clock read dominate the
// node cost, so the reference only checks on a fixed cadence and
// accepts firing up to one interval late.
const nodeCheckInterval = 1024

// NodeCheckInterval returns the search's node-polling cadence.
func NodeCheckInterval() uint64 {
	return nodeCheckInterval
}

// Limits are the parameters of a single `go` command.
type Limits struct {
	Mode Mode

	Depth    int
	Nodes    uint64
	MoveTime time.Duration

	// Clock-based (Time mode) fields, for the side to move.
	Remaining  time.Duration
	Increment  time.Duration
	MovesToGo  int
}

// Manager computes and holds the deadlines for one search.
type Manager struct {
	mode    Mode
	maxMs   int64
	earlyMs int64

	maxNodes uint64
	maxDepth int

	start time.Time
}

// New builds a Manager from the given limits, computing max_ms/
// early_ms up front so the search and the iterative-deepening loop
// only ever read two plain integers.
func New(l Limits, start time.Time) *Manager {
	m := &Manager{mode: l.Mode, start: start, maxDepth: l.Depth, maxNodes: l.Nodes}

	switch l.Mode {
	case Infinite, Depth, Nodes:
		m.maxMs = 1 << 62
		m.earlyMs = 1 << 62

	case MoveTime:
		max := l.MoveTime.Milliseconds() - overheadMs
		if max < 10 {
			max = 10
		}
		m.maxMs = max
		m.earlyMs = max

	case Time:
		remMs := l.Remaining.Milliseconds()
		incMs := l.Increment.Milliseconds()
		if remMs <= overheadMs {
			m.maxMs = 10
			m.earlyMs = 10
			break
		}
		usableMs := remMs - overheadMs
		if l.MovesToGo > 0 {
			mtg := int64(l.MovesToGo)
			max := incMs + 2*usableMs/(2*mtg+1)
			m.maxMs = clamp(max, usableMs)
			m.earlyMs = m.maxMs
		} else {
			max := incMs + usableMs/20
			max = clamp(max, usableMs)
			m.maxMs = max
			m.earlyMs = 3 * max / 4
		}
	}

	return m
}

func clamp(v, limit int64) int64 {
	if v > limit {
		return limit
	}
	if v < 10 {
		return 10
	}
	return v
}

// ElapsedMs returns milliseconds since the search started.
func (m *Manager) ElapsedMs() int64 {
	return time.Since(m.start).Milliseconds()
}

// ShouldStopHard reports whether the hard deadline or a NODES limit
// has been reached, consulted on the node-polling cadence. It never
// stops a DEPTH search; the iterative-deepening loop enforces the depth.
func (m *Manager) ShouldStopHard(nodes uint64, depth int) bool {
	if m.mode == Nodes && nodes >= m.maxNodes {
		return true
	}
	if m.mode == Depth {
		return false
	}
	return m.ElapsedMs() >= m.maxMs
}

// ShouldStopSoft reports whether the soft deadline has passed,
// consulted by the iterative-deepening loop between completed
// iterations. endgame scales the threshold by 0.8 when the evaluator
// reports a full endgame phase (combined phase 64).
func (m *Manager) ShouldStopSoft(endgame bool) bool {
	if m.mode == Infinite || m.mode == Depth || m.mode == Nodes {
		return false
	}
	threshold := m.earlyMs
	if endgame {
		threshold = threshold * 8 / 10
	}
	return m.ElapsedMs() >= threshold
}

// MaxDepth returns the DEPTH-mode depth limit, or 0 if unset.
func (m *Manager) MaxDepth() int {
	return m.maxDepth
}

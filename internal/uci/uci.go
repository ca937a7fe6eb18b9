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

// Package uci implements the UCI protocol command loop: it owns the
// current position and an engine instance, translates UCI text
// commands into engine calls, and receives search progress back
// through the uciinterface.UciDriver callback surface.
package uci

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/op/go-logging"

	"github.com/corvidchess/engine/internal/board"
	myLogging "github.com/corvidchess/engine/internal/logging"
	"github.com/corvidchess/engine/internal/search"
	. "github.com/corvidchess/engine/internal/types"
	"github.com/corvidchess/engine/internal/version"
)

// Handler owns the I/O streams, current position and engine instance
// for a single UCI session.
type Handler struct {
	InIo  *bufio.Scanner
	OutIo *bufio.Writer

	engine   *search.Engine
	position *board.Board

	log    *logging.Logger
	uciLog *logging.Logger
}

// NewHandler builds a Handler reading from stdin and writing to
// stdout, with a fresh start position and engine instance.
func NewHandler() *Handler {
	h := &Handler{
		InIo:     bufio.NewScanner(os.Stdin),
		OutIo:    bufio.NewWriter(os.Stdout),
		engine:   search.NewEngine(),
		position: board.NewBoard(),
		log:      myLogging.GetLog(),
		uciLog:   myLogging.GetUciLog(),
	}
	h.engine.SetUciHandler(h)
	return h
}

// Loop reads UCI commands from InIo until "quit" is received.
func (h *Handler) Loop() {
	for h.InIo.Scan() {
		if h.handle(h.InIo.Text()) {
			return
		}
	}
}

// Command runs a single UCI command and returns everything it wrote
// to the output stream, for tests and debugging.
func (h *Handler) Command(cmd string) string {
	saved := h.OutIo
	buf := new(bytes.Buffer)
	h.OutIo = bufio.NewWriter(buf)
	h.handle(cmd)
	_ = h.OutIo.Flush()
	h.OutIo = saved
	return buf.String()
}

var whitespace = regexp.MustCompile(`\s+`)

func (h *Handler) handle(cmd string) bool {
	if len(strings.TrimSpace(cmd)) == 0 {
		return false
	}
	h.uciLog.Infof("<< %s", cmd)
	tokens := whitespace.Split(strings.TrimSpace(cmd), -1)
	switch tokens[0] {
	case "quit":
		h.engine.StopSearch()
		return true
	case "uci":
		h.uciCommand()
	case "isready":
		h.send("readyok")
	case "ucinewgame":
		h.position = board.NewBoard()
		h.engine.NewGame()
	case "position":
		h.positionCommand(tokens)
	case "go":
		h.goCommand(tokens)
	case "stop":
		h.engine.StopSearch()
	case "ponderhit":
		// no pondering search mode is implemented; nothing to activate.
	case "setoption", "register", "debug":
		// accepted and ignored: the advertised Hash option is not applied.
	default:
		h.log.Warningf("unknown UCI command: %s", cmd)
	}
	return false
}

func (h *Handler) uciCommand() {
	h.send("id name Corvid " + version.Version())
	h.send("id author Corvid Chess Engine Contributors")
	h.send("option name Hash type spin default 64 min 1 max 4096")
	h.send("uciok")
}

func (h *Handler) positionCommand(tokens []string) {
	if len(tokens) < 2 {
		h.SendInfoString("malformed position command")
		return
	}
	i := 1
	fen := board.StartFen
	switch tokens[i] {
	case "startpos":
		i++
	case "fen":
		i++
		var sb strings.Builder
		for i < len(tokens) && tokens[i] != "moves" {
			sb.WriteString(tokens[i])
			sb.WriteString(" ")
			i++
		}
		fen = strings.TrimSpace(sb.String())
	default:
		h.SendInfoString(fmt.Sprintf("malformed position command: %v", tokens))
		return
	}

	pos, err := board.NewBoardFen(fen)
	if err != nil {
		h.SendInfoString(fmt.Sprintf("invalid fen in position command: %v", err))
		return
	}
	h.position = pos

	if i < len(tokens) && tokens[i] == "moves" {
		i++
		for ; i < len(tokens); i++ {
			m := board.MoveFromUci(h.position, tokens[i])
			if m == MoveNone {
				h.SendInfoString(fmt.Sprintf("invalid move in position command: %s", tokens[i]))
				return
			}
			h.position.Play(m)
		}
	}
}

func (h *Handler) goCommand(tokens []string) {
	limits, ok := h.readLimits(tokens)
	if !ok {
		return
	}
	h.engine.StartSearch(h.position, limits)
}

func (h *Handler) readLimits(tokens []string) (search.Limits, bool) {
	var l search.Limits
	i := 1
	for i < len(tokens) {
		switch tokens[i] {
		case "infinite":
			l.Infinite = true
			i++
		case "ponder":
			l.Ponder = true
			i++
		case "depth":
			i++
			v, err := strconv.Atoi(tokens[i])
			if err != nil {
				h.SendInfoString("go: bad depth value")
				return l, false
			}
			l.Depth = v
			i++
		case "nodes":
			i++
			v, err := strconv.ParseUint(tokens[i], 10, 64)
			if err != nil {
				h.SendInfoString("go: bad nodes value")
				return l, false
			}
			l.Nodes = v
			i++
		case "movetime":
			i++
			v, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				h.SendInfoString("go: bad movetime value")
				return l, false
			}
			l.MoveTime = time.Duration(v) * time.Millisecond
			l.TimeControl = true
			i++
		case "wtime":
			i++
			v, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				h.SendInfoString("go: bad wtime value")
				return l, false
			}
			l.WhiteTime = time.Duration(v) * time.Millisecond
			l.TimeControl = true
			i++
		case "btime":
			i++
			v, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				h.SendInfoString("go: bad btime value")
				return l, false
			}
			l.BlackTime = time.Duration(v) * time.Millisecond
			l.TimeControl = true
			i++
		case "winc":
			i++
			v, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				h.SendInfoString("go: bad winc value")
				return l, false
			}
			l.WhiteInc = time.Duration(v) * time.Millisecond
			i++
		case "binc":
			i++
			v, err := strconv.ParseInt(tokens[i], 10, 64)
			if err != nil {
				h.SendInfoString("go: bad binc value")
				return l, false
			}
			l.BlackInc = time.Duration(v) * time.Millisecond
			i++
		case "movestogo":
			i++
			v, err := strconv.Atoi(tokens[i])
			if err != nil {
				h.SendInfoString("go: bad movestogo value")
				return l, false
			}
			l.MovesToGo = v
			i++
		default:
			i++
		}
	}
	if !(l.Infinite || l.Ponder || l.Depth > 0 || l.Nodes > 0 || l.TimeControl) {
		l.Infinite = true
	}
	return l, true
}

func (h *Handler) send(s string) {
	h.uciLog.Infof(">> %s", s)
	_, _ = h.OutIo.WriteString(s + "\n")
	_ = h.OutIo.Flush()
}

// SendReadyOk implements uciinterface.UciDriver.
func (h *Handler) SendReadyOk() { h.send("readyok") }

// SendInfoString implements uciinterface.UciDriver.
func (h *Handler) SendInfoString(info string) { h.send("info string " + info) }

// SendIterationEndInfo implements uciinterface.UciDriver.
func (h *Handler) SendIterationEndInfo(depth, seldepth int, value Value, nodes, nps uint64, elapsed time.Duration, pv []Move) {
	h.send(fmt.Sprintf("info depth %d seldepth %d score %s nodes %d nps %d time %d pv %s",
		depth, seldepth, scoreString(value), nodes, nps, elapsed.Milliseconds(), pvString(pv)))
}

// SendAspirationResearchInfo implements uciinterface.UciDriver.
func (h *Handler) SendAspirationResearchInfo(depth int, alpha, beta Value, value Value) {
	bound := "lowerbound"
	if value <= alpha {
		bound = "upperbound"
	}
	h.send(fmt.Sprintf("info depth %d score %s %s", depth, scoreString(value), bound))
}

// SendCurrentRootMove implements uciinterface.UciDriver.
func (h *Handler) SendCurrentRootMove(currMove Move, moveNumber int) {
	h.send(fmt.Sprintf("info currmove %s currmovenumber %d", currMove.String(), moveNumber))
}

// SendSearchUpdate implements uciinterface.UciDriver.
func (h *Handler) SendSearchUpdate(depth, seldepth int, nodes, nps uint64, elapsed time.Duration, hashfull int) {
	h.send(fmt.Sprintf("info depth %d seldepth %d nodes %d nps %d time %d hashfull %d",
		depth, seldepth, nodes, nps, elapsed.Milliseconds(), hashfull))
}

// SendCurrentLine implements uciinterface.UciDriver.
func (h *Handler) SendCurrentLine(line []Move) {
	h.send("info currline " + pvString(line))
}

// SendResult implements uciinterface.UciDriver.
func (h *Handler) SendResult(bestMove, ponderMove Move) {
	if ponderMove != MoveNone {
		h.send(fmt.Sprintf("bestmove %s ponder %s", bestMove.String(), ponderMove.String()))
		return
	}
	h.send(fmt.Sprintf("bestmove %s", bestMove.String()))
}

func pvString(pv []Move) string {
	parts := make([]string, len(pv))
	for i, m := range pv {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

func scoreString(v Value) string {
	if IsMateScore(v) {
		return fmt.Sprintf("mate %d", MateIn(v))
	}
	return fmt.Sprintf("cp %d", int(v))
}

//
// franky0x88 - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
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

// Package search implements iterative-deepening negamax alpha-beta
// search over a Position: null-move pruning, principal variation
// search, check extension, quiescence search at the leaves, and a
// transposition table and move-ordering heuristics to keep the tree
// small. One Search instance runs one search at a time; see
// run()/iterativeDeepening()/negamax() for the control flow.
package search

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/op/go-logging"

	"github.com/frankkopp/franky0x88/internal/config"
	"github.com/frankkopp/franky0x88/internal/evaluator"
	myLogging "github.com/frankkopp/franky0x88/internal/logging"
	"github.com/frankkopp/franky0x88/internal/movegen"
	"github.com/frankkopp/franky0x88/internal/moveslice"
	"github.com/frankkopp/franky0x88/internal/ordering"
	"github.com/frankkopp/franky0x88/internal/position"
	"github.com/frankkopp/franky0x88/internal/transpositiontable"
	. "github.com/frankkopp/franky0x88/internal/types"
	"github.com/frankkopp/franky0x88/internal/uciInterface"
	"github.com/frankkopp/franky0x88/internal/util"
)

var out = message.NewPrinter(language.German)

// Search represents the data structure for a chess engine search.
// Create a new instance with NewSearch().
type Search struct {
	log  *logging.Logger
	slog *logging.Logger

	uciHandlerPtr uciInterface.UciDriver
	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted

	tt      *transpositiontable.TtTable
	eval    *evaluator.Evaluator
	orderer *ordering.Orderer

	lastSearchResult *Result

	stopFlag          bool
	startTime         time.Time
	hasResult         bool
	currentPosition   *position.Position
	searchLimits      *Limits
	timeLimit         time.Duration
	extraTime         time.Duration
	nodesVisited      uint64
	pv                []*moveslice.MoveSlice
	lastUciUpdateTime time.Time
	statistics        Statistics
}

// NewSearch creates a new Search instance. If no uci handler is set
// all output goes to the log.
func NewSearch() *Search {
	return &Search{
		log:           myLogging.GetLog(),
		slog:          myLogging.GetSearchLog(),
		initSemaphore: semaphore.NewWeighted(int64(1)),
		isRunning:     semaphore.NewWeighted(int64(1)),
		eval:          evaluator.NewEvaluator(),
		orderer:       ordering.NewOrderer(),
	}
}

// NewGame stops any running search and resets all state that must not
// leak across games: the transposition table and move-ordering tables.
func (s *Search) NewGame() {
	s.StopSearch()
	if s.tt != nil {
		s.tt.Clear()
	}
	s.orderer.Reset()
}

// StartSearch starts the search on the given position with the given
// search limits. Search can be stopped with StopSearch(). Search
// status can be checked with IsSearching(). Takes a copy of the
// position and the search limits.
func (s *Search) StartSearch(p position.Position, sl Limits) {
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	s.currentPosition = &p
	s.searchLimits = &sl
	go s.run(&p, &sl)
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	s.initSemaphore.Release(1)
}

// StopSearch stops a running search as quickly as possible. The search
// stops gracefully and a result is sent to the uci handler. Blocks
// until the search has stopped.
func (s *Search) StopSearch() {
	s.stopFlag = true
	s.WaitWhileSearching()
}

// PonderHit is called when the engine has been told to ponder and the
// ponder move was actually played. It activates time control on the
// running search without interrupting it.
func (s *Search) PonderHit() {
	if s.IsSearching() && s.searchLimits.Ponder {
		s.log.Debug("Ponderhit during search - activating time control")
		s.startTimer()
		return
	}
	s.log.Warning("Ponderhit received while not pondering")
}

// IsSearching checks if a search is currently running.
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// WaitWhileSearching blocks until a running search has stopped.
func (s *Search) WaitWhileSearching() {
	_ = s.isRunning.Acquire(context.TODO(), 1)
	s.isRunning.Release(1)
}

// SetUciHandler sets the handler used to report search progress.
func (s *Search) SetUciHandler(uciHandler uciInterface.UciDriver) {
	s.uciHandlerPtr = uciHandler
}

// GetUciHandlerPtr returns the current uci handler, or nil if none is set.
func (s *Search) GetUciHandlerPtr() uciInterface.UciDriver {
	return s.uciHandlerPtr
}

// IsReady initializes the search (transposition table allocation etc.)
// and reports "readyok" through the uci handler once done.
func (s *Search) IsReady() {
	s.initialize()
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendReadyOk()
	} else {
		s.log.Debug("uci >> readyok")
	}
}

// ClearHash clears the transposition table. Ignored with a warning
// while a search is running.
func (s *Search) ClearHash() {
	if s.IsSearching() {
		msg := "Can't clear hash while searching."
		s.sendInfoStringToUci(msg)
		s.log.Warning(msg)
		return
	}
	if s.tt != nil {
		s.tt.Clear()
		s.sendInfoStringToUci("Hash cleared")
	}
}

// ResizeCache resizes and clears the transposition table. Ignored with
// a warning while a search is running.
func (s *Search) ResizeCache() {
	if s.IsSearching() {
		msg := "Can't resize hash while searching."
		s.sendInfoStringToUci(msg)
		s.log.Warning(msg)
		return
	}
	s.tt = nil
	s.initialize()
	s.log.Debug(util.GcWithStats())
	if s.tt != nil {
		s.sendInfoStringToUci(out.Sprintf("Hash resized: %s", s.tt.String()))
	}
}

// run is launched by StartSearch() in its own goroutine. It runs the
// full search lifecycle until a limit is reached or StopSearch() is
// called, then reports the result.
func (s *Search) run(pos *position.Position, sl *Limits) {
	if !s.isRunning.TryAcquire(1) {
		s.log.Error("Search already running")
		return
	}
	defer s.isRunning.Release(1)

	s.startTime = time.Now()
	s.log.Infof("Searching: %s", pos.StringFen())

	s.stopFlag = false
	s.hasResult = false
	s.timeLimit = 0
	s.extraTime = 0
	s.nodesVisited = 0
	s.statistics = Statistics{}
	s.lastUciUpdateTime = s.startTime
	s.orderer.Reset()
	s.initialize()

	s.setupSearchLimits(pos, sl)

	if s.searchLimits.TimeControl && !s.searchLimits.Ponder {
		s.startTimer()
	}

	if s.tt != nil {
		s.tt.Clear()
		s.log.Infof("Transposition Table: Using TT (%s)", s.tt.String())
	} else {
		s.log.Info("Transposition Table: Not using TT")
	}

	s.pv = make([]*moveslice.MoveSlice, 0, MaxDepth+1)
	for i := 0; i <= MaxDepth; i++ {
		s.pv = append(s.pv, moveslice.NewMoveSlice(MaxDepth+1))
	}

	s.initSemaphore.Release(1)

	searchResult := s.iterativeDeepening(pos)

	// If we get here during Ponder or Infinite mode and the search was
	// not stopped, the search finished its own accord before a stop or
	// ponderhit arrived - wait for one before reporting the result.
	if (s.searchLimits.Ponder || s.searchLimits.Infinite) && !s.stopFlag {
		s.log.Debug("Search finished before stopped or ponderhit - waiting to send result")
		for !s.stopFlag && (s.searchLimits.Ponder || s.searchLimits.Infinite) {
			time.Sleep(5 * time.Millisecond)
		}
	}

	searchResult.SearchTime = time.Since(s.startTime)
	searchResult.Pv = *s.pv[0]

	s.log.Info(out.Sprintf("Search finished after %s", searchResult.SearchTime))
	s.log.Info(out.Sprintf("Search depth was %d(%d) with %d nodes visited. NPS = %d nps",
		s.statistics.CurrentSearchDepth, s.statistics.CurrentExtraSearchDepth, s.nodesVisited,
		util.Nps(s.nodesVisited, searchResult.SearchTime)))
	s.log.Debugf("Search stats: %s", s.statistics.String())
	s.log.Infof("Search result: %s", searchResult.String())

	s.lastSearchResult = searchResult
	s.hasResult = true
	s.stopFlag = true

	s.sendResult(searchResult)
}

// iterativeDeepening runs one negamax search per depth 1..maxDepth,
// each starting with the full (-inf,+inf) window. A completed
// iteration's PV and best move are always at least as good as the
// previous iteration's, since root moves are reordered to try the
// previous best move first. On a timer fire mid-iteration the partial
// result is discarded and the last completed iteration stands.
func (s *Search) iterativeDeepening(pos *position.Position) *Result {
	if s.checkDrawRepAnd50(pos) {
		msg := "Search called on a position that is a draw by repetition or the fifty-move rule"
		s.sendInfoStringToUci(msg)
		s.log.Warning(msg)
		return &Result{BestValue: ValueDraw}
	}

	rootMoves := moveslice.NewMoveSlice(MaxMoves)
	for _, m := range movegen.GenerateLegalMoves(pos) {
		rootMoves.PushBack(m)
	}

	if rootMoves.Len() == 0 {
		if pos.HasCheck() {
			s.statistics.Checkmates++
			msg := "Search called on a mate position"
			s.sendInfoStringToUci(msg)
			s.log.Warning(msg)
			return &Result{BestValue: -ValueMate}
		}
		s.statistics.Stalemates++
		msg := "Search called on a stalemate position"
		s.sendInfoStringToUci(msg)
		s.log.Warning(msg)
		return &Result{BestValue: ValueDraw}
	}

	maxDepth := MaxDepth
	if s.searchLimits.Depth > 0 && s.searchLimits.Depth < maxDepth {
		maxDepth = s.searchLimits.Depth
	}

	bestMove := MoveNone
	bestValue := ValueNA

	for iterationDepth := 1; iterationDepth <= maxDepth; iterationDepth++ {
		s.statistics.CurrentIterationDepth = iterationDepth
		s.statistics.CurrentSearchDepth = iterationDepth
		if s.statistics.CurrentExtraSearchDepth < iterationDepth {
			s.statistics.CurrentExtraSearchDepth = iterationDepth
		}

		value := s.rootSearch(pos, rootMoves, iterationDepth, bestMove)

		if s.stopFlag {
			// partial iteration - the previous iteration's result stands.
			break
		}

		bestValue = value
		bestMove = s.pv[0].At(0)
		s.statistics.CurrentBestRootMove = bestMove
		s.statistics.CurrentBestRootMoveValue = bestValue

		s.sendIterationEndInfoToUci()

		if rootMoves.Len() <= 1 {
			break
		}
		// Try the newly found best move first in the next iteration.
		rootMoves.Filter(func(i int) bool { return rootMoves.At(i) != bestMove })
		rootMoves.PushFront(bestMove)
	}

	result := &Result{
		BestMove:    bestMove,
		BestValue:   bestValue,
		PonderMove:  MoveNone,
		SearchDepth: s.statistics.CurrentSearchDepth,
		ExtraDepth:  s.statistics.CurrentExtraSearchDepth,
	}

	if s.pv[0].Len() > 1 {
		result.PonderMove = s.pv[0].At(1)
	} else if s.tt != nil {
		pos.DoMove(result.BestMove)
		if ttEntry := s.tt.Probe(pos.Hash()); ttEntry != nil {
			s.statistics.TTHit++
			result.PonderMove = ttEntry.Move()
		}
		pos.UndoMove()
	}

	return result
}

// initialize lazily allocates the transposition table. Safe to call
// repeatedly; does nothing once the table already exists.
func (s *Search) initialize() {
	if config.Settings.Search.UseTT {
		if s.tt == nil {
			sizeInMByte := config.Settings.Search.TTSize
			if sizeInMByte == 0 {
				sizeInMByte = 64
			}
			s.tt = transpositiontable.NewTtTable(sizeInMByte)
		}
	} else {
		s.log.Info("Transposition Table is disabled in configuration")
	}
}

// stopConditions reports whether the search must stop: either the
// timer/StopSearch already set stopFlag, or the node-count limit set
// in the search limits has been reached.
func (s *Search) stopConditions() bool {
	if s.stopFlag {
		return true
	}
	if s.searchLimits.Nodes > 0 && s.nodesVisited >= s.searchLimits.Nodes {
		s.stopFlag = true
	}
	return s.stopFlag
}

// setupSearchLimits logs the active search limits and sets up time
// control.
func (s *Search) setupSearchLimits(pos *position.Position, sl *Limits) {
	if sl.Infinite {
		s.log.Info("Search mode: Infinite")
	}
	if sl.Ponder {
		s.log.Info("Search mode: Ponder")
	}
	if sl.Mate > 0 {
		s.log.Infof("Search mode: Search for mate in %d", sl.Mate)
	}
	if sl.TimeControl {
		s.timeLimit = s.setupTimeControl(pos, sl)
		s.extraTime = 0
		if sl.MoveTime > 0 {
			s.log.Infof("Search mode: Time controlled: Time per move %s", sl.MoveTime)
		} else {
			s.log.Info(out.Sprintf("Search mode: Time controlled: White = %s (inc %s) Black = %s (inc %s) Moves to go: %d",
				sl.WhiteTime, sl.WhiteInc, sl.BlackTime, sl.BlackInc, sl.MovesToGo))
			s.log.Info(out.Sprintf("Search mode: Time limit     : %s", s.timeLimit))
		}
	} else {
		s.log.Info("Search mode: No time control")
	}
	if sl.Depth > 0 {
		s.log.Debugf("Search mode: Depth limited  : %d", sl.Depth)
	}
	if sl.Nodes > 0 {
		s.log.Infof(out.Sprintf("Search mode: Nodes limited  : %d", sl.Nodes))
	}
}

// setupTimeControl computes the wall-clock budget for the current
// search from the given limits. With no explicit moves-to-go, the
// engine guesses a conservative number of moves remaining in the game:
// the position is scanned for non-pawn, non-king material still on the
// board, which stands in for the teacher's incrementally tracked game
// phase now that Position keeps no such running total.
func (s *Search) setupTimeControl(p *position.Position, sl *Limits) time.Duration {
	if sl.MoveTime > 0 {
		duration := sl.MoveTime - (20 * time.Millisecond)
		if duration < 0 {
			s.log.Warningf("Very short move time: %s.", sl.MoveTime)
			return sl.MoveTime
		}
		return duration
	}

	movesLeft := int64(sl.MovesToGo)
	if movesLeft == 0 {
		movesLeft = int64(15 + (25 * gamePhaseFactor(p)))
	}

	var timeLeft time.Duration
	switch p.SideToMove() {
	case White:
		timeLeft = sl.WhiteTime + time.Duration(movesLeft*sl.WhiteInc.Nanoseconds())
	case Black:
		timeLeft = sl.BlackTime + time.Duration(movesLeft*sl.BlackInc.Nanoseconds())
	}

	timeLimit := time.Duration(timeLeft.Nanoseconds() / movesLeft)
	if timeLimit.Milliseconds() < 100 {
		timeLimit = time.Duration(int64(0.8 * float64(timeLimit.Nanoseconds())))
	} else {
		timeLimit = time.Duration(int64(0.9 * float64(timeLimit.Nanoseconds())))
	}
	return timeLimit
}

// gamePhaseFactor estimates how far the game has progressed towards
// the endgame, from 0 (opening, full material) to 1 (bare kings),
// scanning the board directly since Position does not keep an
// incremental material count.
func gamePhaseFactor(p *position.Position) float64 {
	const openingNonPawnMaterial = 4*3 + 4*3 + 4*5 + 2*9 // N+B+R+Q per side, both sides
	total := 0
	for i := 0; i < 128; i++ {
		sq := Square(i)
		if int(sq)&0x88 != 0 {
			continue
		}
		switch p.PieceAt(sq).TypeOf() {
		case Knight, Bishop:
			total += 3
		case Rook:
			total += 5
		case Queen:
			total += 9
		}
	}
	phase := 1.0 - float64(total)/float64(openingNonPawnMaterial)
	if phase < 0 {
		phase = 0
	}
	if phase > 1 {
		phase = 1
	}
	return phase
}

// startTimer starts a goroutine that polls the elapsed wall time
// against the time limit (plus any extra time) and sets stopFlag once
// the budget is exhausted.
func (s *Search) startTimer() {
	go func() {
		timerStart := time.Now()
		s.log.Debugf("Timer started with time limit of %s", s.timeLimit)
		for time.Since(timerStart) < s.timeLimit+s.extraTime && !s.stopFlag {
			time.Sleep(5 * time.Millisecond)
		}
		if !s.stopFlag {
			s.log.Debugf("Timer stops search after wall time: %s (limit %s, extra %s)",
				time.Since(timerStart), s.timeLimit, s.extraTime)
			s.stopFlag = true
		}
	}()
}

// checkDrawRepAnd50 reports whether the position is already a draw by
// threefold repetition or the fifty-move rule, in which case searching
// it further is pointless.
func (s *Search) checkDrawRepAnd50(p *position.Position) bool {
	return p.CheckRepetitions(2) || p.HalfMoveClock() >= 100
}

func (s *Search) sendResult(searchResult *Result) {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendResult(searchResult.BestMove, searchResult.PonderMove)
	}
}

func (s *Search) sendInfoStringToUci(msg string) {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendInfoString(msg)
	} else {
		s.log.Debug(msg)
	}
}

// sendSearchUpdateToUci reports a progress update, throttled to at
// most once a second so it doesn't flood the UCI front end.
func (s *Search) sendSearchUpdateToUci() {
	if time.Since(s.lastUciUpdateTime) < time.Second {
		return
	}
	s.lastUciUpdateTime = time.Now()
	hashfull := 0
	if s.tt != nil {
		hashfull = s.tt.Hashfull()
	}
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendSearchUpdate(
			s.statistics.CurrentSearchDepth,
			s.statistics.CurrentExtraSearchDepth,
			s.nodesVisited,
			s.getNps(),
			time.Since(s.startTime),
			hashfull)
		s.uciHandlerPtr.SendCurrentRootMove(s.statistics.CurrentRootMove, s.statistics.CurrentRootMoveIndex)
	}
}

func (s *Search) sendIterationEndInfoToUci() {
	if s.uciHandlerPtr != nil {
		s.uciHandlerPtr.SendIterationEndInfo(
			s.statistics.CurrentSearchDepth,
			s.statistics.CurrentExtraSearchDepth,
			s.statistics.CurrentBestRootMoveValue,
			ValueTypeExact,
			s.nodesVisited,
			s.getNps(),
			time.Since(s.startTime),
			*s.pv[0])
	} else {
		s.log.Infof(out.Sprintf("depth %d seldepth %d value %s nodes %d nps %d time %d pv %s",
			s.statistics.CurrentSearchDepth,
			s.statistics.CurrentExtraSearchDepth,
			s.statistics.CurrentBestRootMoveValue.String(),
			s.nodesVisited,
			s.getNps(),
			time.Since(s.startTime).Milliseconds(),
			s.pv[0].StringUci()))
	}
}

// getNps returns nodes searched per second, relative to s.startTime.
// Clamped to 0 for unrealistically high values from very short times.
func (s *Search) getNps() uint64 {
	nps := util.Nps(s.nodesVisited, time.Since(s.startTime)+100)
	if nps > 15_000_000 {
		nps = 0
	}
	return nps
}

// LastSearchResult returns a copy of the last completed search result.
func (s *Search) LastSearchResult() Result {
	return *s.lastSearchResult
}

// NodesVisited returns the number of nodes visited in the last/current search.
func (s *Search) NodesVisited() uint64 {
	return s.nodesVisited
}

// Statistics returns a pointer to the search's statistics.
func (s *Search) Statistics() *Statistics {
	return &s.statistics
}

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

package search

import (
	"os"
	"path"
	"runtime"
	"testing"
	"time"

	logging2 "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/franky0x88/internal/config"
	"github.com/frankkopp/franky0x88/internal/logging"
	"github.com/frankkopp/franky0x88/internal/position"
	. "github.com/frankkopp/franky0x88/internal/types"
)

var logTest *logging2.Logger

// make tests run in the project's root directory.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	logTest = logging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

func TestSearch_IsReady(t *testing.T) {
	s := NewSearch()
	s.IsReady()
}

func TestSetupTimeControl(t *testing.T) {
	s := NewSearch()

	// Explicit moves-to-go bypasses the game-phase estimate entirely.
	p := position.NewPosition()
	sl := &Limits{
		TimeControl: true,
		WhiteTime:   60 * time.Second,
		BlackTime:   60 * time.Second,
		WhiteInc:    2 * time.Second,
		BlackInc:    2 * time.Second,
		MovesToGo:   20,
	}
	timeLimit := s.setupTimeControl(p, sl)
	assert.EqualValues(t, 4500, timeLimit.Milliseconds())

	// Opening position: game phase factor is 0, so movesLeft = 15.
	p = position.NewPosition()
	sl = &Limits{
		TimeControl: true,
		WhiteTime:   60 * time.Second,
		BlackTime:   60 * time.Second,
		WhiteInc:    2 * time.Second,
		BlackInc:    2 * time.Second,
	}
	timeLimit = s.setupTimeControl(p, sl)
	assert.EqualValues(t, 5400, timeLimit.Milliseconds())

	// Bare-king-and-pawns endgame: game phase factor is 1, movesLeft = 40.
	p, _ = position.NewPositionFen("8/2P1P1P1/3PkP2/8/4K3/8/8/8 w - - 0 1")
	sl = &Limits{
		TimeControl: true,
		WhiteTime:   60 * time.Second,
		BlackTime:   60 * time.Second,
	}
	timeLimit = s.setupTimeControl(p, sl)
	assert.EqualValues(t, 1350, timeLimit.Milliseconds())
}

func TestWaitWhileSearching(t *testing.T) {
	s := NewSearch()
	p := position.NewPosition()
	sl := NewSearchLimits()
	sl.Infinite = true
	go func() {
		time.Sleep(1 * time.Second)
		s.StopSearch()
	}()
	start := time.Now()
	s.StartSearch(*p, *sl)
	logTest.Debug("Search started...waiting to finish")
	s.WaitWhileSearching()
	logTest.Debug("Search finished")
	assert.GreaterOrEqual(t, time.Since(start).Milliseconds(), int64(900))
}

func TestIsSearching(t *testing.T) {
	s := NewSearch()
	p := position.NewPosition()
	sl := NewSearchLimits()
	sl.Infinite = true
	s.StartSearch(*p, *sl)
	time.Sleep(200 * time.Millisecond)
	assert.True(t, s.IsSearching())
	s.StopSearch()
	s.WaitWhileSearching()
	assert.False(t, s.IsSearching())
}

func TestMatePosition(t *testing.T) {
	s := NewSearch()
	p, _ := position.NewPositionFen("8/8/8/8/8/5K2/8/R4k2 b - -")
	sl := NewSearchLimits()
	sl.Depth = 3
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()
	result := s.LastSearchResult()
	logTest.Debug(result.String())
	assert.EqualValues(t, -ValueMate, result.BestValue)
}

func TestStaleMatePosition(t *testing.T) {
	s := NewSearch()
	p, _ := position.NewPositionFen("6R1/8/8/8/8/5K2/R7/7k b - -")
	sl := NewSearchLimits()
	sl.Depth = 1
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()
	result := s.LastSearchResult()
	logTest.Debug(result.String())
	assert.EqualValues(t, ValueDraw, result.BestValue)
}

func TestNewGameResetsOrderingAndHash(t *testing.T) {
	s := NewSearch()
	p := position.NewPosition()
	sl := NewSearchLimits()
	sl.Depth = 3
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()
	s.NewGame()
	assert.False(t, s.IsSearching())
}

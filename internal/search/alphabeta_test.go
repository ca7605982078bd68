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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/franky0x88/internal/position"
	. "github.com/frankkopp/franky0x88/internal/types"
)

func TestMate(t *testing.T) {
	s := NewSearch()
	p, _ := position.NewPositionFen("8/8/8/8/8/3K4/R7/5k2 w - -")
	sl := NewSearchLimits()
	sl.Depth = 8
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()
	result := s.LastSearchResult()
	assert.True(t, result.BestValue.IsMateValue())
	assert.True(t, result.BestValue > 0)
}

func TestStalemateReturnsDraw(t *testing.T) {
	s := NewSearch()
	// black to move, no legal move, not in check.
	p, _ := position.NewPositionFen("7k/5Q2/6K1/8/8/8/8/8 b - -")
	sl := NewSearchLimits()
	sl.Depth = 1
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()
	assert.EqualValues(t, ValueDraw, s.LastSearchResult().BestValue)
}

func TestDepthLimitedSearchFindsAMove(t *testing.T) {
	s := NewSearch()
	p := position.NewPosition()
	sl := NewSearchLimits()
	sl.Depth = 4
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()
	result := s.LastSearchResult()
	assert.NotEqual(t, MoveNone, result.BestMove)
	assert.EqualValues(t, 4, result.SearchDepth)
}

func TestMoveTimeLimitedSearchStopsOnTime(t *testing.T) {
	s := NewSearch()
	p := position.NewPosition()
	sl := NewSearchLimits()
	sl.TimeControl = true
	sl.MoveTime = 200 * time.Millisecond
	start := time.Now()
	s.StartSearch(*p, *sl)
	s.WaitWhileSearching()
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.NotEqual(t, MoveNone, s.LastSearchResult().BestMove)
}

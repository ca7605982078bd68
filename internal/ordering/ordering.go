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

// Package ordering assigns a sort key to pseudo-legal moves so the
// search explores the most promising ones first: the PV move carried
// over from the previous iterative-deepening iteration, the
// transposition table's best move, captures ranked by MVV-LVA, killer
// moves that caused a beta-cutoff in a sibling subtree at the same
// ply, and finally quiet moves ranked by the history heuristic.
package ordering

import (
	"github.com/frankkopp/franky0x88/internal/moveslice"

	. "github.com/frankkopp/franky0x88/internal/types"
)

// key tiers. A move's final key is tier + an in-tier refinement so
// that, for example, the worst capture still sorts ahead of the best
// killer.
const (
	tierPv      int64 = 50_000_000
	tierTt      int64 = 40_000_000
	tierCapture int64 = 30_000_000
	tierKiller1 int64 = 20_000_001
	tierKiller2 int64 = 20_000_000
)

// numKillerSlots is fixed at two per spec.
const numKillerSlots = 2

// Orderer accumulates the history heuristic and killer-move tables a
// search uses across its iterative-deepening iterations. Both tables
// are reset once per search, not per iteration - earlier iterations'
// cutoffs are still useful signal for later, deeper ones.
type Orderer struct {
	history [2][128][128]int64
	killers [MaxDepth + 1][numKillerSlots]Move
}

// NewOrderer creates an Orderer with empty history and killer tables.
func NewOrderer() *Orderer {
	return &Orderer{}
}

// Reset clears the history and killer-move tables, done once at the
// start of a search.
func (o *Orderer) Reset() {
	o.history = [2][128][128]int64{}
	o.killers = [MaxDepth + 1][numKillerSlots]Move{}
}

// AddKiller records m as having caused a beta-cutoff at ply. m is
// pushed into slot 0, demoting the previous slot-0 killer to slot 1.
// Only quiet (non-capturing) moves should be recorded; callers are
// expected to filter before calling.
func (o *Orderer) AddKiller(ply int, m Move) {
	if ply < 0 || ply > MaxDepth {
		return
	}
	if o.killers[ply][0] == m {
		return
	}
	o.killers[ply][1] = o.killers[ply][0]
	o.killers[ply][0] = m
}

// AddHistory credits a quiet move that caused a beta-cutoff with
// depth^2, indexed by the side to move and the move's from/to
// squares.
func (o *Orderer) AddHistory(us Color, m Move, depth int) {
	o.history[us][m.From][m.To] += int64(depth) * int64(depth)
}

// OrderMoves sorts moves in place by descending priority: pvMove,
// ttMove, MVV-LVA captures, killers at ply, then history-ranked quiet
// moves. pvMove and ttMove may be MoveNone when there is no hint.
func (o *Orderer) OrderMoves(moves *moveslice.MoveSlice, ply int, pvMove, ttMove Move, us Color) {
	moves.SortByKey(func(m Move) int64 {
		return o.key(m, ply, pvMove, ttMove, us)
	})
}

func (o *Orderer) key(m Move, ply int, pvMove, ttMove Move, us Color) int64 {
	if pvMove != MoveNone && m == pvMove {
		return tierPv
	}
	if ttMove != MoveNone && m == ttMove {
		return tierTt
	}
	if m.IsCapture {
		return tierCapture + int64(mvvLva(m))
	}
	if ply >= 0 && ply <= MaxDepth {
		if o.killers[ply][0] == m {
			return tierKiller1
		}
		if o.killers[ply][1] == m {
			return tierKiller2
		}
	}
	return o.history[us][m.From][m.To]
}

// mvvLva scores a capture as victim type x10 minus attacker type, so
// "queen takes pawn" sorts behind "pawn takes queen".
func mvvLva(m Move) int {
	return int(m.Captured.TypeOf())*10 - int(m.Piece.TypeOf())
}

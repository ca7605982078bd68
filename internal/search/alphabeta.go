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
	"github.com/frankkopp/franky0x88/internal/config"
	"github.com/frankkopp/franky0x88/internal/movegen"
	"github.com/frankkopp/franky0x88/internal/moveslice"
	"github.com/frankkopp/franky0x88/internal/position"
	. "github.com/frankkopp/franky0x88/internal/types"
)

// nodeCheckInterval is how often (in visited nodes) negamax and
// quiescence poll stopConditions(), so the check does not run on every
// single node.
const nodeCheckInterval = 2048

// nullMoveMinDepth and nullMoveReduction gate and size null-move
// pruning, read from config so they can be tuned without touching the
// algorithm itself.
func nullMoveMinDepth() int  { return config.Settings.Search.NmpDepth }
func nullMoveReduction() int { return config.Settings.Search.NmpReduction }

// rootSearch runs one negamax iteration over the root moves with a
// full (-inf,+inf) window, building the principal variation in
// s.pv[0] as it goes. previousBest, when not MoveNone, is tried first
// via the move orderer's PV slot.
func (s *Search) rootSearch(pos *position.Position, rootMoves *moveslice.MoveSlice, depth int, previousBest Move) Value {
	alpha := -ValueInf
	beta := ValueInf

	s.orderer.OrderMoves(rootMoves, 0, previousBest, s.ttMove(pos), pos.SideToMove())

	best := ValueNA
	bestMove := MoveNone

	for i := 0; i < rootMoves.Len(); i++ {
		if s.stopConditions() {
			break
		}
		m := rootMoves.At(i)

		s.statistics.CurrentRootMove = m
		s.statistics.CurrentRootMoveIndex = i + 1
		s.sendSearchUpdateToUci()

		pos.DoMove(m)
		if !pos.WasLegalMove() {
			pos.UndoMove()
			continue
		}
		s.nodesVisited++

		childPv := moveslice.NewMoveSlice(MaxDepth + 1)
		var value Value
		if i == 0 {
			value = -s.negamax(pos, depth-1, -beta, -alpha, 1, childPv)
		} else {
			value = -s.negamax(pos, depth-1, -alpha-1, -alpha, 1, childPv)
			if value > alpha && value < beta {
				childPv.Clear()
				value = -s.negamax(pos, depth-1, -beta, -alpha, 1, childPv)
			}
		}
		pos.UndoMove()

		if s.stopFlag {
			break
		}

		if value > best || bestMove == MoveNone {
			best = value
			bestMove = m
			s.pv[0].Clear()
			s.pv[0].PushBack(m)
			for j := 0; j < childPv.Len(); j++ {
				s.pv[0].PushBack(childPv.At(j))
			}
		}
		if value > alpha {
			alpha = value
		}
	}

	if bestMove != MoveNone && s.tt != nil {
		s.tt.Put(pos.Hash(), bestMove, int8(depth), best, ValueTypeExact, s.eval.Evaluate(pos))
	}

	return best
}

// ttMove returns the move recorded for pos in the transposition table,
// or MoveNone if there is no entry or no table.
func (s *Search) ttMove(pos *position.Position) Move {
	if s.tt == nil {
		return MoveNone
	}
	if e := s.tt.GetEntry(pos.Hash()); e != nil {
		return e.Move()
	}
	return MoveNone
}

// negamax searches pos to the given depth from the side to move's
// point of view, returning a score in the (alpha,beta) window's frame.
// ply is the distance from the root, used for mate-distance scoring,
// killer-move indexing and to recognize the root itself (ply==0 is
// handled by rootSearch, never by negamax).
func (s *Search) negamax(pos *position.Position, depth int, alpha, beta Value, ply int, pv *moveslice.MoveSlice) Value {
	if s.nodesVisited%nodeCheckInterval == 0 && s.stopConditions() {
		return ValueZero
	}

	if pos.CheckRepetitions(1) || pos.HalfMoveClock() >= 100 {
		return ValueDraw
	}

	inCheck := pos.HasCheck()
	if inCheck && config.Settings.Search.UseCheckExt {
		depth++
		s.statistics.CheckExtensions++
	}

	if depth <= 0 {
		return s.quiescence(pos, alpha, beta, ply)
	}

	isPvNode := beta-alpha > 1

	var ttMove = MoveNone
	if s.tt != nil {
		if e := s.tt.Probe(pos.Hash()); e != nil {
			s.statistics.TTHit++
			ttMove = e.Move()
			if int(e.Depth()) >= depth {
				switch e.Vtype() {
				case ValueTypeExact:
					return e.Value()
				case ValueTypeLowerBound:
					if e.Value() >= beta {
						s.statistics.TTCuts++
						return e.Value()
					}
				case ValueTypeUpperBound:
					if e.Value() <= alpha {
						s.statistics.TTCuts++
						return e.Value()
					}
				}
			}
		} else {
			s.statistics.TTMiss++
		}
	}

	if config.Settings.Search.UseNullMove && depth >= nullMoveMinDepth() && !inCheck && !isPvNode {
		pos.DoNullMove()
		nullPv := moveslice.NewMoveSlice(1)
		value := -s.negamax(pos, depth-1-nullMoveReduction(), -beta, -beta+1, ply+1, nullPv)
		pos.UndoNullMove()
		if value >= beta {
			s.statistics.NullMoveCuts++
			return beta
		}
	}

	moves := moveslice.MoveSlice(movegen.GeneratePseudoMoves(pos))
	s.orderer.OrderMoves(&moves, ply, MoveNone, ttMove, pos.SideToMove())

	legalMoveCount := 0
	best := -ValueInf
	bestMove := MoveNone
	nodeType := ValueTypeUpperBound

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)

		pos.DoMove(m)
		if !pos.WasLegalMove() {
			pos.UndoMove()
			continue
		}
		legalMoveCount++
		s.nodesVisited++

		childPv := moveslice.NewMoveSlice(MaxDepth + 1)
		var value Value
		if legalMoveCount == 1 {
			value = -s.negamax(pos, depth-1, -beta, -alpha, ply+1, childPv)
		} else if config.Settings.Search.UsePVS {
			value = -s.negamax(pos, depth-1, -alpha-1, -alpha, ply+1, childPv)
			if value > alpha && value < beta {
				childPv.Clear()
				value = -s.negamax(pos, depth-1, -beta, -alpha, ply+1, childPv)
			}
		} else {
			value = -s.negamax(pos, depth-1, -beta, -alpha, ply+1, childPv)
		}
		pos.UndoMove()

		if value > best {
			best = value
			bestMove = m
		}

		if value >= beta {
			s.statistics.BetaCuts++
			if legalMoveCount == 1 {
				s.statistics.BetaCuts1st++
			}
			if !m.IsCapture && config.Settings.Search.UseKiller {
				s.orderer.AddKiller(ply, m)
				s.orderer.AddHistory(pos.SideToMove(), m, depth)
			}
			if s.tt != nil {
				s.tt.Put(pos.Hash(), m, int8(depth), beta, ValueTypeLowerBound, s.eval.Evaluate(pos))
			}
			return beta
		}

		if value > alpha {
			alpha = value
			nodeType = ValueTypeExact
			pv.Clear()
			pv.PushBack(m)
			for j := 0; j < childPv.Len(); j++ {
				pv.PushBack(childPv.At(j))
			}
		}
	}

	if legalMoveCount == 0 {
		if inCheck {
			return -ValueMate + Value(ply)
		}
		return ValueDraw
	}

	if s.tt != nil && bestMove != MoveNone {
		s.tt.Put(pos.Hash(), bestMove, int8(depth), alpha, nodeType, s.eval.Evaluate(pos))
	}

	return alpha
}

// quiescence extends the search past the nominal leaf with captures
// and promotions only, avoiding the horizon effect of stopping mid-
// exchange. Unbounded in depth: it terminates because the number of
// captures available in any position is finite.
func (s *Search) quiescence(pos *position.Position, alpha, beta Value, ply int) Value {
	if s.nodesVisited%nodeCheckInterval == 0 && s.stopConditions() {
		return ValueZero
	}

	standPat := s.eval.Evaluate(pos)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	moves := moveslice.MoveSlice(movegen.GenerateTacticalMoves(pos))
	s.orderer.OrderMoves(&moves, ply, MoveNone, MoveNone, pos.SideToMove())

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)

		pos.DoMove(m)
		if !pos.WasLegalMove() {
			pos.UndoMove()
			continue
		}
		s.nodesVisited++

		value := -s.quiescence(pos, -beta, -alpha, ply+1)
		pos.UndoMove()

		if value >= beta {
			return beta
		}
		if value > alpha {
			alpha = value
		}
	}

	return alpha
}

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

package movegen

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/franky0x88/internal/position"
	. "github.com/frankkopp/franky0x88/internal/types"
)

var out = message.NewPrinter(language.English)

// Perft counts the leaf nodes of the full game tree to a fixed depth,
// broken down by move category. It exists to validate move generator
// correctness against published node counts for well-known FENs, not
// to measure search speed.
type Perft struct {
	Nodes            uint64
	CheckCounter     uint64
	CheckMateCounter uint64
	CaptureCounter   uint64
	EnPassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	stopFlag         bool
}

// NewPerft creates a new, zeroed Perft counter.
func NewPerft() *Perft {
	return &Perft{}
}

// Stop requests that a running Run (typically called from a goroutine)
// abandon the walk at its next node.
func (perft *Perft) Stop() {
	perft.stopFlag = true
}

// Run walks the full game tree rooted at fen to depth plies, printing a
// summary, and returns the leaf node count (Nodes). A non-positive
// depth is clamped to 1.
func (perft *Perft) Run(fen string, depth int) (uint64, error) {
	if depth <= 0 {
		depth = 1
	}
	perft.resetCounters()
	perft.stopFlag = false

	pos, err := position.NewPositionFen(fen)
	if err != nil {
		return 0, err
	}

	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("FEN: %s\n", fen)
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	nodes := perft.walk(depth, pos)
	elapsed := time.Since(start)

	perft.Nodes = nodes

	out.Printf("Time         : %s\n", elapsed)
	out.Printf("NPS          : %d nps\n", (perft.Nodes*uint64(time.Second.Nanoseconds()))/uint64(elapsed.Nanoseconds()+1))
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", perft.Nodes)
	out.Printf("   Captures  : %d\n", perft.CaptureCounter)
	out.Printf("   EnPassant : %d\n", perft.EnPassantCounter)
	out.Printf("   Checks    : %d\n", perft.CheckCounter)
	out.Printf("   CheckMates: %d\n", perft.CheckMateCounter)
	out.Printf("   Castles   : %d\n", perft.CastleCounter)
	out.Printf("   Promotions: %d\n", perft.PromotionCounter)
	out.Printf("-----------------------------------------\n")
	out.Printf("Finished PERFT Test for Depth %d\n\n", depth)

	return perft.Nodes, nil
}

// walk recurses over the pseudo-legal move list, pruning illegal moves
// after making them (WasLegalMove) rather than filtering the list
// up front, matching the search's own make-then-check-legality order.
func (perft *Perft) walk(depth int, pos *position.Position) uint64 {
	var nodes uint64
	for _, m := range generate(pos, GenAll) {
		if perft.stopFlag {
			return 0
		}
		if depth > 1 {
			pos.DoMove(m)
			if pos.WasLegalMove() {
				nodes += perft.walk(depth-1, pos)
			}
			pos.UndoMove()
			continue
		}
		pos.DoMove(m)
		if pos.WasLegalMove() {
			nodes++
			perft.tallyLeaf(pos, m)
		}
		pos.UndoMove()
	}
	return nodes
}

// tallyLeaf updates the category counters for the single ply m, which
// has already been made in pos.
func (perft *Perft) tallyLeaf(pos *position.Position, m Move) {
	switch m.Type {
	case EnPassant:
		perft.EnPassantCounter++
		perft.CaptureCounter++
	case Castling:
		perft.CastleCounter++
	case Promotion:
		perft.PromotionCounter++
		if m.IsCapture {
			perft.CaptureCounter++
		}
	default:
		if m.IsCapture {
			perft.CaptureCounter++
		}
	}
	if pos.HasCheck() {
		perft.CheckCounter++
		if !HasLegalMove(pos) {
			perft.CheckMateCounter++
		}
	}
}

func (perft *Perft) resetCounters() {
	perft.Nodes = 0
	perft.CheckCounter = 0
	perft.CheckMateCounter = 0
	perft.CaptureCounter = 0
	perft.EnPassantCounter = 0
	perft.CastleCounter = 0
	perft.PromotionCounter = 0
}

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

// Package evaluator contains structures and functions to calculate
// the value of a chess position to be used in a chess engine search.
package evaluator

import (
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/franky0x88/internal/config"
	myLogging "github.com/frankkopp/franky0x88/internal/logging"
	"github.com/frankkopp/franky0x88/internal/position"
	. "github.com/frankkopp/franky0x88/internal/types"
)

var out = message.NewPrinter(language.English)

// Evaluator represents a data structure and functionality for evaluating
// chess positions using material, piece-square, and pawn-structure
// heuristics. Create a new instance with NewEvaluator().
type Evaluator struct {
	log *logging.Logger

	position *position.Position
	us       Color
	them     Color

	pawnCache *pawnCache
}

// NewEvaluator creates a new instance of an Evaluator.
func NewEvaluator() *Evaluator {
	e := &Evaluator{
		log:       myLogging.GetLog(),
		pawnCache: nil,
	}
	if config.Settings.Eval.UsePawnCache {
		e.pawnCache = newPawnCache()
	} else {
		e.log.Info("Pawn Cache is disabled in configuration")
	}
	return e
}

// InitEval initializes the data needed for one evaluation. Called at the
// start of Evaluate() but exposed separately so unit tests can exercise
// evaluation sub-steps without going through Evaluate.
func (e *Evaluator) InitEval(p *position.Position) {
	e.position = p
	e.us = p.SideToMove()
	e.them = e.us.Flip()
}

// Evaluate returns a centipawn score for pos from the side-to-move's
// perspective. It calls InitEval and then the internal evaluation
// function.
func (e *Evaluator) Evaluate(pos *position.Position) Value {
	e.InitEval(pos)
	return e.evaluate()
}

// evaluate sums material, piece-square, and pawn-structure terms over
// every occupied square, each signed for White, then flips the sign for
// the side to move. Assumes InitEval has already been called.
func (e *Evaluator) evaluate() Value {
	if e.position.HasInsufficientMaterial() {
		return ValueDraw
	}

	var score int32

	if config.Settings.Eval.UsePawnEval {
		score += int32(e.evaluatePawns())
	}

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := SquareOf(file, rank)
			p := e.position.PieceAt(sq)
			if p.IsNone() {
				continue
			}
			score += int32(materialScore(p))
			score += int32(pstValue(p, sq))
		}
	}

	// Tempo bonus for the side to move, applied from White's
	// perspective before the final sign flip.
	if e.us == White {
		score += int32(config.Settings.Eval.Tempo)
	} else {
		score -= int32(config.Settings.Eval.Tempo)
	}

	return Value(score) * Value(e.us.Direction())
}

// materialScore returns p's static material value signed for White.
func materialScore(p Piece) int16 {
	v := int16(p.TypeOf().ValueOf())
	if p.ColorOf() == Black {
		return -v
	}
	return v
}

// Report prints a human-readable breakdown of the last evaluation,
// used for debugging from the UCI console.
func (e *Evaluator) Report() string {
	var report strings.Builder
	report.WriteString("Evaluation Report\n")
	report.WriteString("=============================================\n")
	report.WriteString(out.Sprintf("Position: %s\n", e.position.StringFen()))
	report.WriteString(out.Sprintf("%s\n", e.position.StringBoard()))
	report.WriteString(out.Sprintf("Eval value: %d (from the view of %s)\n", e.Evaluate(e.position), e.position.SideToMove().String()))
	return report.String()
}

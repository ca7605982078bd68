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

package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/frankkopp/franky0x88/internal/types"
)

// fakeBoard is a minimal Board implementation for testing attack
// probes without depending on the position package.
type fakeBoard map[Square]Piece

func (b fakeBoard) PieceAt(sq Square) Piece {
	if p, ok := b[sq]; ok {
		return p
	}
	return PieceNone
}

func TestIsSquareAttacked_Knight(t *testing.T) {
	assert := assert.New(t)
	b := fakeBoard{MakeSquare("g1"): WhiteKnight}
	assert.True(IsSquareAttacked(b, MakeSquare("e2"), White))
	assert.True(IsSquareAttacked(b, MakeSquare("f3"), White))
	assert.False(IsSquareAttacked(b, MakeSquare("e4"), White))
}

func TestIsSquareAttacked_PawnDirectionByColor(t *testing.T) {
	assert := assert.New(t)
	b := fakeBoard{MakeSquare("e4"): WhitePawn}
	assert.True(IsSquareAttacked(b, MakeSquare("d5"), White))
	assert.True(IsSquareAttacked(b, MakeSquare("f5"), White))
	assert.False(IsSquareAttacked(b, MakeSquare("d3"), White))

	b = fakeBoard{MakeSquare("e5"): BlackPawn}
	assert.True(IsSquareAttacked(b, MakeSquare("d4"), Black))
	assert.True(IsSquareAttacked(b, MakeSquare("f4"), Black))
}

func TestIsSquareAttacked_SlidingStopsAtBlocker(t *testing.T) {
	assert := assert.New(t)
	b := fakeBoard{
		MakeSquare("a1"): WhiteRook,
		MakeSquare("a4"): WhiteRook,
	}
	assert.True(IsSquareAttacked(b, MakeSquare("a3"), White))
	// the rook on a1 is blocked by the knight on a3 when probing a8
	b2 := fakeBoard{
		MakeSquare("a1"): WhiteRook,
		MakeSquare("a3"): BlackKnight,
	}
	assert.False(IsSquareAttacked(b2, MakeSquare("a8"), White))
}

func TestIsSquareAttacked_QueenCoversBothRayFamilies(t *testing.T) {
	assert := assert.New(t)
	b := fakeBoard{MakeSquare("d4"): WhiteQueen}
	assert.True(IsSquareAttacked(b, MakeSquare("d8"), White)) // rook ray
	assert.True(IsSquareAttacked(b, MakeSquare("a7"), White)) // bishop ray
}

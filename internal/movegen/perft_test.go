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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/franky0x88/internal/position"
)

// Perft node counts below are the published results from
// https://www.chessprogramming.org/Perft_Results, kept to the depths
// that run in well under a second so the suite stays fast.

func TestStandardPerft(t *testing.T) {
	assert := assert.New(t)
	var results = [4][5]uint64{
		// depth   nodes   captures   ep   checks
		{1, 20, 0, 0, 0},
		{2, 400, 0, 0, 0},
		{3, 8_902, 34, 0, 12},
		{4, 197_281, 1_576, 0, 469},
	}
	for _, r := range results {
		depth := int(r[0])
		var perft Perft
		nodes, err := perft.Run(position.StartFen, depth)
		assert.NoError(err)
		assert.Equal(r[1], nodes, "nodes at depth %d", depth)
		assert.Equal(r[2], perft.CaptureCounter, "captures at depth %d", depth)
		assert.Equal(r[3], perft.EnPassantCounter, "en passant at depth %d", depth)
		assert.Equal(r[4], perft.CheckCounter, "checks at depth %d", depth)
	}
}

func TestKiwipetePerft(t *testing.T) {
	assert := assert.New(t)
	const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	var results = [3][6]uint64{
		// depth   nodes   captures   ep   castles  promotions
		{1, 48, 8, 0, 2, 0},
		{2, 2_039, 351, 1, 91, 0},
		{3, 97_862, 17_102, 45, 3_162, 0},
	}
	for _, r := range results {
		depth := int(r[0])
		var perft Perft
		nodes, err := perft.Run(kiwipete, depth)
		assert.NoError(err)
		assert.Equal(r[1], nodes, "nodes at depth %d", depth)
		assert.Equal(r[2], perft.CaptureCounter, "captures at depth %d", depth)
		assert.Equal(r[3], perft.EnPassantCounter, "en passant at depth %d", depth)
		assert.Equal(r[4], perft.CastleCounter, "castles at depth %d", depth)
		assert.Equal(r[5], perft.PromotionCounter, "promotions at depth %d", depth)
	}
}

func TestPosition5Perft(t *testing.T) {
	assert := assert.New(t)
	const pos5 = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	var results = [3]uint64{44, 1_486, 62_379}
	for depth := 1; depth <= 3; depth++ {
		var perft Perft
		nodes, err := perft.Run(pos5, depth)
		assert.NoError(err)
		assert.Equal(results[depth-1], nodes, "nodes at depth %d", depth)
	}
}

func TestPerftInvalidFen(t *testing.T) {
	assert := assert.New(t)
	var perft Perft
	_, err := perft.Run("not a fen", 1)
	assert.Error(err)
}

/*
 * franky0x88 - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package zobrist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/franky0x88/internal/types"
)

func TestKeys_AreDeterministic(t *testing.T) {
	assert := assert.New(t)
	assert.NotEqual(Key(0), BlackToMove)
	assert.NotEqual(PieceKey(types.WhitePawn, types.MakeSquare("e2")), PieceKey(types.WhiteKnight, types.MakeSquare("e2")))
	assert.NotEqual(PieceKey(types.WhitePawn, types.MakeSquare("e2")), PieceKey(types.WhitePawn, types.MakeSquare("e4")))
}

func TestKeys_CastlingAndEpAreDistinct(t *testing.T) {
	assert := assert.New(t)
	seen := map[Key]bool{}
	for _, k := range CastlingRights {
		assert.False(seen[k], "castling right keys must be pairwise distinct")
		seen[k] = true
	}
	seen = map[Key]bool{}
	for _, k := range EnPassantFile {
		assert.False(seen[k], "en passant file keys must be pairwise distinct")
		seen[k] = true
	}
}

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
	. "github.com/frankkopp/franky0x88/internal/types"
)

func TestGeneratePseudoMoves_StartPositionHasTwentyMoves(t *testing.T) {
	assert := assert.New(t)
	pos := position.NewPosition()
	moves := GeneratePseudoMoves(pos)
	assert.Len(moves, 20)
}

func TestGenerateTacticalMoves_OnlyCapturesAndPromotions(t *testing.T) {
	assert := assert.New(t)
	pos, err := position.NewPositionFen("4k3/P7/8/3pP3/8/8/8/4K3 w - d6 0 1")
	assert.NoError(err)
	moves := GenerateTacticalMoves(pos)
	for _, m := range moves {
		assert.True(m.IsCapture || m.Type == Promotion, "tactical move must capture or promote: %s", m.StringUci())
	}
	// a7 has four promotion moves, e5 has an en-passant capture on d6
	assert.Len(moves, 5)
}

func TestGeneratePawnMoves_PromotionExpandsToFourPieces(t *testing.T) {
	assert := assert.New(t)
	pos, err := position.NewPositionFen("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(err)
	moves := GeneratePseudoMoves(pos)
	promotions := 0
	for _, m := range moves {
		if m.Type == Promotion {
			promotions++
		}
	}
	assert.Equal(4, promotions)
}

func TestGenerateCastlingMoves_RequiresEmptySquares(t *testing.T) {
	assert := assert.New(t)
	pos, err := position.NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(err)
	moves := GeneratePseudoMoves(pos)
	castles := 0
	for _, m := range moves {
		if m.Type == Castling {
			castles++
		}
	}
	assert.Equal(2, castles, "both white castles available with clear rank")

	blocked, err := position.NewPositionFen("r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1")
	assert.NoError(err)
	moves = GeneratePseudoMoves(blocked)
	for _, m := range moves {
		assert.False(m.Type == Castling && m.To == SqC1, "queenside blocked by knight on b1")
	}
}

func TestGenerateLegalMoves_ExcludesCastlingThroughCheck(t *testing.T) {
	assert := assert.New(t)
	pos, err := position.NewPositionFen("4k3/8/8/8/8/8/5r2/R3K2R w KQ - 0 1")
	assert.NoError(err)
	legal := GenerateLegalMoves(pos)
	for _, m := range legal {
		assert.False(m.Type == Castling && m.To == SqG1, "rook on f2 attacks f1, the king's pass-through square")
	}
}

func TestHasLegalMove_FalseOnCheckmate(t *testing.T) {
	assert := assert.New(t)
	pos, err := position.NewPositionFen("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	assert.NoError(err)
	assert.False(HasLegalMove(pos), "fool's mate: white has no legal move")
}

func TestHasLegalMove_TrueAtStart(t *testing.T) {
	assert := assert.New(t)
	assert.True(HasLegalMove(position.NewPosition()))
}

func TestValidateMove(t *testing.T) {
	assert := assert.New(t)
	pos := position.NewPosition()
	assert.False(ValidateMove(pos, NewMove(SqE1, MakeSquare("e2"), WhiteKing)), "e2 is occupied by white's own pawn")
	assert.True(ValidateMove(pos, NewMove(MakeSquare("e2"), MakeSquare("e4"), WhitePawn)))
	assert.False(ValidateMove(pos, NewMove(MakeSquare("e2"), MakeSquare("e5"), WhitePawn)))
}

func TestGetMoveFromUci(t *testing.T) {
	assert := assert.New(t)
	pos := position.NewPosition()
	m := GetMoveFromUci(pos, "e2e4")
	assert.True(m.IsValid())
	assert.Equal(MakeSquare("e2"), m.From)
	assert.Equal(MakeSquare("e4"), m.To)

	none := GetMoveFromUci(pos, "e2e5")
	assert.False(none.IsValid())
}

func TestGetMoveFromUci_Promotion(t *testing.T) {
	assert := assert.New(t)
	pos, err := position.NewPositionFen("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(err)
	m := GetMoveFromUci(pos, "a7a8q")
	assert.True(m.IsValid())
	assert.Equal(Queen, m.Promoted)
}

func TestGetMoveFromSan_RoundTripsGeneratedMoves(t *testing.T) {
	assert := assert.New(t)
	pos := position.NewPosition()
	for _, m := range GenerateLegalMoves(pos) {
		san := moveToSan(pos, m)
		found := GetMoveFromSan(pos, san)
		assert.True(found.IsValid(), "round trip failed for %s", san)
		assert.Equal(m.From, found.From)
		assert.Equal(m.To, found.To)
	}
}

func TestGenMode_String(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("GenAll", GenAll.String())
	assert.Equal("GenCap", GenCap.String())
}

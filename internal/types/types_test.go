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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPiece_MakeAndDecode(t *testing.T) {
	assert := assert.New(t)
	p := MakePiece(White, Knight)
	assert.Equal(White, p.ColorOf())
	assert.Equal(Knight, p.TypeOf())
	assert.Equal("N", p.String())

	p = MakePiece(Black, Queen)
	assert.Equal(Black, p.ColorOf())
	assert.Equal(Queen, p.TypeOf())
	assert.Equal("q", p.String())

	assert.True(PieceNone.IsNone())
}

func TestPieceFromChar(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(WhiteKing, PieceFromChar('K'))
	assert.Equal(BlackPawn, PieceFromChar('p'))
	assert.Equal(PieceNone, PieceFromChar('x'))
}

func TestSquare_RoundTrip(t *testing.T) {
	assert := assert.New(t)
	sq := MakeSquare("e4")
	assert.True(sq.IsValid())
	assert.Equal(4, sq.FileOf())
	assert.Equal(3, sq.RankOf())
	assert.Equal("e4", sq.String())
	assert.Equal(SqNone, MakeSquare("z9"))
}

func TestSquare_OffBoardTest(t *testing.T) {
	assert := assert.New(t)
	h1 := MakeSquare("h1")
	assert.True(h1.IsValid())
	// stepping east off the h-file lands in the 0x88 "dead" column
	off := h1.To(EastDelta)
	assert.False(off.IsValid())
}

func TestCastlingRights_HasAddRemove(t *testing.T) {
	assert := assert.New(t)
	var cr CastlingRights
	cr.Add(CastlingAny)
	assert.Equal(CastlingAny, cr)
	assert.True(cr.Has(CastlingWhiteOO))
	cr.Remove(CastlingWhiteOO)
	assert.False(cr.Has(CastlingWhiteOO))
	assert.Equal("Qkq", cr.String())
}

func TestMove_StringUci(t *testing.T) {
	assert := assert.New(t)
	m := NewMove(MakeSquare("e2"), MakeSquare("e4"), WhitePawn)
	assert.Equal("e2e4", m.StringUci())
	assert.True(m.IsValid())

	promo := NewPromotion(MakeSquare("e7"), MakeSquare("e8"), WhitePawn, PieceNone, Queen)
	assert.Equal("e7e8q", promo.StringUci())
	assert.True(promo.IsValid())
}

func TestColor_Flip(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Black, White.Flip())
	assert.Equal(White, Black.Flip())
	assert.Equal(1, White.Direction())
	assert.Equal(-1, Black.Direction())
}

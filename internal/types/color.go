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

import "fmt"

// Color represents constants for each chess color White and Black.
type Color uint8

// Constants for each color.
const (
	White       Color = 0
	Black       Color = 1
	ColorLength int   = 2
)

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid checks if c represents a valid color.
func (c Color) IsValid() bool {
	return c < 2
}

// String returns a string representation of color as "w" or "b".
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		panic(fmt.Sprintf("invalid color %d", c))
	}
}

// Direction returns 1 for White and -1 for Black. Used to orient
// evaluation scores towards the side to move.
var moveDirectionFactor = [2]int{1, -1}

func (c Color) Direction() int {
	return moveDirectionFactor[c]
}

// PawnPushDelta returns the 0x88 square delta a pawn of this color
// moves towards (north for White, south for Black).
var pawnPushDelta = [2]int{NorthDelta, SouthDelta}

func (c Color) PawnPushDelta() int {
	return pawnPushDelta[c]
}

// PawnStartRank returns the rank (0-based) on which this color's pawns
// begin the game and from which a double push is legal.
var pawnStartRank = [2]int{1, 6}

func (c Color) PawnStartRank() int {
	return pawnStartRank[c]
}

// PromotionRank returns the rank (0-based) on which this color's pawns
// promote.
var promotionRank = [2]int{7, 0}

func (c Color) PromotionRank() int {
	return promotionRank[c]
}

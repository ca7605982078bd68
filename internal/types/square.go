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

// Package types holds the small, allocation-free value types shared by
// every other package in this engine: colors, pieces, squares, castling
// rights and moves. Nothing here knows about a board; it only describes
// how a single square or piece is represented.
package types

import "fmt"

// Square is an index into a 0x88 board: the low 3 bits are the file
// (0-7), bits 4-6 are the rank (0-7), and bit 3 is always zero for an
// on-board square. Off-board indexes (used while walking ray/step
// offsets near the edge of the board) fail the bit-3-or-bit-7 test in
// IsValid.
type Square int8

// SqNone is the sentinel for "no square" (e.g. no en-passant target).
const SqNone Square = -1

// Named squares for the back ranks, used by castling and rook-square
// bookkeeping instead of repeated SquareOf calls, plus a few central
// squares used by tests.
const (
	SqA1 Square = 0x00
	SqB1 Square = 0x01
	SqC1 Square = 0x02
	SqD1 Square = 0x03
	SqE1 Square = 0x04
	SqF1 Square = 0x05
	SqG1 Square = 0x06
	SqH1 Square = 0x07
	SqD2 Square = 0x13
	SqE2 Square = 0x14
	SqC3 Square = 0x22
	SqF3 Square = 0x25
	SqD4 Square = 0x33
	SqE4 Square = 0x34
	SqD5 Square = 0x43
	SqA8 Square = 0x70
	SqB8 Square = 0x71
	SqC8 Square = 0x72
	SqD8 Square = 0x73
	SqE8 Square = 0x74
	SqF8 Square = 0x75
	SqG8 Square = 0x76
	SqH8 Square = 0x77
)

// NorthDelta etc. are the eight ray/step offsets on the 0x88 board.
const (
	NorthDelta     = 16
	SouthDelta     = -16
	EastDelta      = 1
	WestDelta      = -1
	NorthEastDelta = NorthDelta + EastDelta
	NorthWestDelta = NorthDelta + WestDelta
	SouthEastDelta = SouthDelta + EastDelta
	SouthWestDelta = SouthDelta + WestDelta
)

// SquareOf returns the square for the given 0-based file and rank.
func SquareOf(file, rank int) Square {
	return Square(rank<<4 | file)
}

// MakeSquare parses a square from its algebraic string (e.g. "e4"), or
// returns SqNone if s is not exactly two characters naming a valid
// square.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return SqNone
	}
	return SquareOf(file, rank)
}

// IsValid reports whether sq lies on the 8x8 board, i.e. fails the 0x88
// off-board test.
func (sq Square) IsValid() bool {
	return sq >= 0 && int(sq)&0x88 == 0
}

// FileOf returns the 0-based file (a=0 .. h=7).
func (sq Square) FileOf() int {
	return int(sq) & 7
}

// RankOf returns the 0-based rank (rank1=0 .. rank8=7).
func (sq Square) RankOf() int {
	return int(sq) >> 4
}

// To steps sq by the given 0x88 delta and returns the resulting square
// without checking it. Diagonal and horizontal deltas near an edge land
// in a 0x88 board's "dead" columns rather than wrapping onto the real
// board, so IsValid is always the caller's responsibility after calling
// To.
func (sq Square) To(delta int) Square {
	return Square(int(sq) + delta)
}

var fileLetters = "abcdefgh"
var rankDigits = "12345678"

// String returns the algebraic name of sq (e.g. "e4"), or "-" if sq is
// not a valid square.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", fileLetters[sq.FileOf()], rankDigits[sq.RankOf()])
}

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

import "strings"

// CastlingRights is a 4-bit set recording which castling moves are
// still available.
//  CastlingNone     = 0000
//  CastlingWhiteOO  = 0001
//  CastlingWhiteOOO = 0010
//  CastlingBlackOO  = 0100
//  CastlingBlackOOO = 1000
type CastlingRights uint8

// Castling right constants.
const (
	CastlingNone     CastlingRights = 0
	CastlingWhiteOO  CastlingRights = 1 << 0
	CastlingWhiteOOO CastlingRights = 1 << 1
	CastlingBlackOO  CastlingRights = 1 << 2
	CastlingBlackOOO CastlingRights = 1 << 3
	CastlingAny      CastlingRights = CastlingWhiteOO | CastlingWhiteOOO | CastlingBlackOO | CastlingBlackOOO
)

// Has checks if the state has the given right (or rights) set.
func (cr CastlingRights) Has(rhs CastlingRights) bool {
	return cr&rhs != 0
}

// Remove clears the given right(s) and returns the resulting state.
func (cr *CastlingRights) Remove(rhs CastlingRights) CastlingRights {
	*cr = *cr &^ rhs
	return *cr
}

// Add sets the given right(s) and returns the resulting state.
func (cr *CastlingRights) Add(rhs CastlingRights) CastlingRights {
	*cr = *cr | rhs
	return *cr
}

// String returns the FEN castling-availability field (e.g. "KQkq", or
// "-" if no rights remain).
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	var sb strings.Builder
	if cr.Has(CastlingWhiteOO) {
		sb.WriteString("K")
	}
	if cr.Has(CastlingWhiteOOO) {
		sb.WriteString("Q")
	}
	if cr.Has(CastlingBlackOO) {
		sb.WriteString("k")
	}
	if cr.Has(CastlingBlackOOO) {
		sb.WriteString("q")
	}
	return sb.String()
}

// CastlingRightsFromChar maps a single FEN castling-field letter to its
// right, or CastlingNone if c is not one of KQkq.
func CastlingRightsFromChar(c byte) CastlingRights {
	switch c {
	case 'K':
		return CastlingWhiteOO
	case 'Q':
		return CastlingWhiteOOO
	case 'k':
		return CastlingBlackOO
	case 'q':
		return CastlingBlackOOO
	default:
		return CastlingNone
	}
}

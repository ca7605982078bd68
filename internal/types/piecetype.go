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

// PieceType is a set of constants for piece types in chess. The encoding
// occupies the low 3 bits of a Piece and matches the bitmap of pieces on
// an EPD/FEN board: PtNone=0, Pawn=1, Knight=2, Bishop=3, Rook=4, Queen=5,
// King=6.
type PieceType uint8

// Piece type constants.
const (
	PtNone   PieceType = 0
	Pawn     PieceType = 1
	Knight   PieceType = 2
	Bishop   PieceType = 3
	Rook     PieceType = 4
	Queen    PieceType = 5
	King     PieceType = 6
	PtLength PieceType = 7
)

// IsValid checks if pt is a valid piece type.
func (pt PieceType) IsValid() bool {
	return pt < PtLength
}

// IsSliding reports whether pieces of this type move along open rays
// (bishop, rook, queen) as opposed to a fixed step pattern.
func (pt PieceType) IsSliding() bool {
	return pt == Bishop || pt == Rook || pt == Queen
}

var pieceTypeValue = [PtLength]Value{0, 100, 320, 330, 500, 900, 20000}

// ValueOf returns the static material value for the piece type.
func (pt PieceType) ValueOf() Value {
	return pieceTypeValue[pt]
}

var pieceTypeToString = [PtLength]string{"NOPIECE", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// String returns a string representation of a piece type.
func (pt PieceType) String() string {
	return pieceTypeToString[pt]
}

var pieceTypeToChar = "-PNBRQK"

// Char returns a single-char upper-case representation of a piece type
// ("-" for PtNone).
func (pt PieceType) Char() string {
	return string(pieceTypeToChar[pt])
}

// PieceTypeFromChar returns the PieceType for an upper- or lower-case
// piece letter (p/n/b/r/q/k), or PtNone if c is not a recognized letter.
func PieceTypeFromChar(c byte) PieceType {
	switch c {
	case 'p', 'P':
		return Pawn
	case 'n', 'N':
		return Knight
	case 'b', 'B':
		return Bishop
	case 'r', 'R':
		return Rook
	case 'q', 'Q':
		return Queen
	case 'k', 'K':
		return King
	default:
		return PtNone
	}
}

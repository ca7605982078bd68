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

// Piece is a byte-packed board occupant: the low 3 bits hold the
// PieceType, bit 3 marks a white piece (0x08) and bit 4 marks a black
// piece (0x10). PieceNone (0) represents an empty square.
//  PieceNone    = 0x00
//  WhitePawn    = 0x09  (0x08 | Pawn)
//  BlackPawn    = 0x11  (0x10 | Pawn)
//  ...
type Piece uint8

const (
	whiteFlag uint8 = 0x08
	blackFlag uint8 = 0x10
	typeMask  uint8 = 0x07
)

// Piece constants, following the low3/color-flag layout above.
const (
	PieceNone Piece = 0

	WhitePawn   Piece = Piece(whiteFlag) | Piece(Pawn)
	WhiteKnight Piece = Piece(whiteFlag) | Piece(Knight)
	WhiteBishop Piece = Piece(whiteFlag) | Piece(Bishop)
	WhiteRook   Piece = Piece(whiteFlag) | Piece(Rook)
	WhiteQueen  Piece = Piece(whiteFlag) | Piece(Queen)
	WhiteKing   Piece = Piece(whiteFlag) | Piece(King)

	BlackPawn   Piece = Piece(blackFlag) | Piece(Pawn)
	BlackKnight Piece = Piece(blackFlag) | Piece(Knight)
	BlackBishop Piece = Piece(blackFlag) | Piece(Bishop)
	BlackRook   Piece = Piece(blackFlag) | Piece(Rook)
	BlackQueen  Piece = Piece(blackFlag) | Piece(Queen)
	BlackKing   Piece = Piece(blackFlag) | Piece(King)
)

// MakePiece creates the piece given by color and piece type.
func MakePiece(c Color, pt PieceType) Piece {
	if pt == PtNone {
		return PieceNone
	}
	if c == White {
		return Piece(whiteFlag) | Piece(pt)
	}
	return Piece(blackFlag) | Piece(pt)
}

// ColorOf returns the color of the given piece. Only valid when p is not
// PieceNone.
func (p Piece) ColorOf() Color {
	if uint8(p)&whiteFlag != 0 {
		return White
	}
	return Black
}

// TypeOf returns the piece type of the given piece.
func (p Piece) TypeOf() PieceType {
	return PieceType(uint8(p) & typeMask)
}

// ValueOf returns the static material value of the piece (always
// non-negative; callers apply the side-to-move sign themselves).
func (p Piece) ValueOf() Value {
	return p.TypeOf().ValueOf()
}

// IsNone reports whether p represents an empty square.
func (p Piece) IsNone() bool {
	return p == PieceNone
}

var pieceToChar = map[Piece]byte{
	WhitePawn: 'P', WhiteKnight: 'N', WhiteBishop: 'B', WhiteRook: 'R', WhiteQueen: 'Q', WhiteKing: 'K',
	BlackPawn: 'p', BlackKnight: 'n', BlackBishop: 'b', BlackRook: 'r', BlackQueen: 'q', BlackKing: 'k',
}

// String returns the FEN letter for the piece (upper case for White,
// lower case for Black), or "-" for PieceNone.
func (p Piece) String() string {
	if p == PieceNone {
		return "-"
	}
	c, ok := pieceToChar[p]
	if !ok {
		return "?"
	}
	return string(c)
}

// PieceFromChar returns the Piece corresponding to a FEN piece letter,
// or PieceNone if c is not a recognized letter.
func PieceFromChar(c byte) Piece {
	pt := PieceTypeFromChar(c)
	if pt == PtNone {
		return PieceNone
	}
	if c >= 'A' && c <= 'Z' {
		return MakePiece(White, pt)
	}
	return MakePiece(Black, pt)
}

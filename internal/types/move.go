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

// MoveType classifies the special handling a move requires during
// make/unmake beyond relocating a piece from one square to another.
type MoveType uint8

// Move type constants.
const (
	Normal MoveType = iota
	Promotion
	EnPassant
	Castling
)

// IsValid reports whether mt is one of the four known move types.
func (mt MoveType) IsValid() bool {
	return mt <= Castling
}

var moveTypeToString = [...]string{"n", "p", "e", "c"}

// String returns a one-letter abbreviation of the move type.
func (mt MoveType) String() string {
	if !mt.IsValid() {
		return "?"
	}
	return moveTypeToString[mt]
}

// Move carries everything make/unmake needs to apply and reverse a
// single ply without re-deriving it from the board: the origin and
// destination squares, the moving and captured piece, the promotion
// piece type (when Type is Promotion) and the move's classification.
type Move struct {
	From      Square
	To        Square
	Piece     Piece
	Captured  Piece
	Promoted  PieceType
	Type      MoveType
	IsCapture bool
}

// NewMove builds a Normal move.
func NewMove(from, to Square, piece Piece) Move {
	return Move{From: from, To: to, Piece: piece, Type: Normal}
}

// NewCapture builds a Normal move that captures captured.
func NewCapture(from, to Square, piece, captured Piece) Move {
	return Move{From: from, To: to, Piece: piece, Captured: captured, Type: Normal, IsCapture: true}
}

// NewPromotion builds a Promotion move, optionally capturing captured.
func NewPromotion(from, to Square, piece, captured Piece, promoted PieceType) Move {
	return Move{
		From: from, To: to, Piece: piece, Captured: captured,
		Promoted: promoted, Type: Promotion, IsCapture: captured != PieceNone,
	}
}

// NewEnPassant builds an EnPassant capture. captured is always an
// enemy pawn on a different square than To.
func NewEnPassant(from, to Square, piece, captured Piece) Move {
	return Move{From: from, To: to, Piece: piece, Captured: captured, Type: EnPassant, IsCapture: true}
}

// NewCastling builds a Castling move. To is the king's destination
// square; the rook relocation is derived from it by the mover.
func NewCastling(from, to Square, piece Piece) Move {
	return Move{From: from, To: to, Piece: piece, Type: Castling}
}

// IsValid reports whether m names two distinct valid squares and
// carries a consistent move type/promotion combination. The zero Move
// (From and To both a1) is not valid.
func (m Move) IsValid() bool {
	if !m.From.IsValid() || !m.To.IsValid() || m.From == m.To {
		return false
	}
	if m.Type == Promotion {
		return m.Promoted == Knight || m.Promoted == Bishop || m.Promoted == Rook || m.Promoted == Queen
	}
	return true
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Type == Promotion
}

// IsEnPassant reports whether the move is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.Type == EnPassant
}

// IsCastling reports whether the move is a castling move.
func (m Move) IsCastling() bool {
	return m.Type == Castling
}

// StringUci renders the move in UCI's long algebraic wire format (e.g.
// "e2e4", "e7e8q").
func (m Move) StringUci() string {
	var sb strings.Builder
	sb.WriteString(m.From.String())
	sb.WriteString(m.To.String())
	if m.Type == Promotion {
		sb.WriteString(strings.ToLower(m.Promoted.Char()))
	}
	return sb.String()
}

// String returns a verbose, debugging-oriented representation of m.
func (m Move) String() string {
	if m == (Move{}) {
		return "Move: { MoveNone }"
	}
	return "Move: { " + m.StringUci() + " type:" + m.Type.String() + " }"
}

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

// Package attacks provides the square-attacked test and the ray/leaper
// offset tables shared by position (check detection) and movegen
// (pseudo-legal generation). It walks the 0x88 board directly rather
// than intersecting precomputed bitboard attack sets.
package attacks

import . "github.com/frankkopp/franky0x88/internal/types"

// KnightDeltas are the eight 0x88 offsets a knight can jump to.
var KnightDeltas = [8]int{33, 31, 18, 14, -14, -18, -31, -33}

// KingDeltas are the eight 0x88 offsets a king, or a queen moving one
// step, can move to.
var KingDeltas = [8]int{
	NorthDelta, SouthDelta, EastDelta, WestDelta,
	NorthEastDelta, NorthWestDelta, SouthEastDelta, SouthWestDelta,
}

// BishopDeltas are the four diagonal ray directions.
var BishopDeltas = [4]int{NorthEastDelta, NorthWestDelta, SouthEastDelta, SouthWestDelta}

// RookDeltas are the four orthogonal ray directions.
var RookDeltas = [4]int{NorthDelta, SouthDelta, EastDelta, WestDelta}

// Board is the minimal read-only board view an attack test needs.
// *position.Position implements this; attacks does not import position,
// to avoid a cycle (position.IsAttacked delegates down into this
// package instead).
type Board interface {
	PieceAt(sq Square) Piece
}

// IsSquareAttacked reports whether sq is attacked by any piece of color
// by. It probes outward from the target square - walking each
// leaper/ray pattern in reverse and checking for an attacking piece of
// the matching type at the far end. This is the "reverse attack from
// target square" technique the teacher's own AttacksTo/IsAttacked use
// against precomputed bitboards, adapted here to walk the 0x88 board a
// square at a time.
func IsSquareAttacked(b Board, sq Square, by Color) bool {
	if pawnAttacksSquare(b, sq, by) {
		return true
	}
	knight := MakePiece(by, Knight)
	for _, d := range KnightDeltas {
		if t := sq.To(d); t.IsValid() && b.PieceAt(t) == knight {
			return true
		}
	}
	king := MakePiece(by, King)
	for _, d := range KingDeltas {
		if t := sq.To(d); t.IsValid() && b.PieceAt(t) == king {
			return true
		}
	}
	if slidingAttacksSquare(b, sq, by, BishopDeltas, Bishop) {
		return true
	}
	if slidingAttacksSquare(b, sq, by, RookDeltas, Rook) {
		return true
	}
	return false
}

// pawnAttacksSquare checks the two squares a by-colored pawn would
// stand on to capture onto sq.
func pawnAttacksSquare(b Board, sq Square, by Color) bool {
	pawn := MakePiece(by, Pawn)
	deltas := [2]int{NorthEastDelta, NorthWestDelta}
	if by == White {
		deltas = [2]int{SouthEastDelta, SouthWestDelta}
	}
	for _, d := range deltas {
		if t := sq.To(d); t.IsValid() && b.PieceAt(t) == pawn {
			return true
		}
	}
	return false
}

// slidingAttacksSquare walks each of deltas away from sq until it runs
// off the board or hits an occupied square, reporting whether that
// square holds a by-colored near-type piece or queen.
func slidingAttacksSquare(b Board, sq Square, by Color, deltas [4]int, near PieceType) bool {
	nearPiece := MakePiece(by, near)
	queen := MakePiece(by, Queen)
	for _, d := range deltas {
		for t := sq.To(d); t.IsValid(); t = t.To(d) {
			p := b.PieceAt(t)
			if p == PieceNone {
				continue
			}
			if p == nearPiece || p == queen {
				return true
			}
			break
		}
	}
	return false
}

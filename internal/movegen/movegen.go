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

// Package movegen generates pseudo-legal and legal moves for a
// position on the 0x88 board. It walks the board square by square
// rather than intersecting bitboards, emitting captures and quiet
// moves for each occupied square belonging to the side to move.
package movegen

import (
	"fmt"
	"strings"

	"github.com/frankkopp/franky0x88/internal/attacks"
	"github.com/frankkopp/franky0x88/internal/position"
	. "github.com/frankkopp/franky0x88/internal/types"
)

// GenMode selects which subset of moves a generation pass produces.
// Captures and non-captures are generated independently so quiescence
// search can ask for GenCap alone.
type GenMode int

// Generation mode constants.
const (
	GenZero   GenMode = 0b00
	GenCap    GenMode = 0b01
	GenNonCap GenMode = 0b10
	GenAll    GenMode = GenCap | GenNonCap
)

// GeneratePseudoMoves returns every pseudo-legal move for the side to
// move: moves that respect piece-movement rules but may leave the
// moving king in check. Callers that need only legal moves should
// filter with position.IsLegalMove, or call GenerateLegalMoves.
func GeneratePseudoMoves(pos *position.Position) []Move {
	return generate(pos, GenAll)
}

// GenerateTacticalMoves returns captures and promotions only - the
// subset quiescence search explores after the main search has bottomed
// out.
func GenerateTacticalMoves(pos *position.Position) []Move {
	return generate(pos, GenCap)
}

// GenerateLegalMoves returns the pseudo-legal moves that are also
// legal: making the move does not leave the mover's own king attacked,
// and (for castling) does not start or pass the king through an
// attacked square. Used by the UCI move parser and by perft, where the
// cost of the extra make/unmake per candidate is acceptable.
func GenerateLegalMoves(pos *position.Position) []Move {
	pseudo := generate(pos, GenAll)
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if pos.IsLegalMove(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMove reports whether the side to move has at least one legal
// move, without building the full legal move list. Used to distinguish
// checkmate/stalemate from a position with moves still available.
func HasLegalMove(pos *position.Position) bool {
	for _, m := range generate(pos, GenAll) {
		if pos.IsLegalMove(m) {
			return true
		}
	}
	return false
}

// ValidateMove reports whether m is a legal move in pos, matching it
// against the generated legal move list by from/to/promotion rather
// than trusting the caller's flags. Used by the UCI front end, which
// only receives from/to/promotion over the wire.
func ValidateMove(pos *position.Position, m Move) bool {
	for _, cand := range GenerateLegalMoves(pos) {
		if cand.From == m.From && cand.To == m.To && cand.Promoted == m.Promoted {
			return true
		}
	}
	return false
}

// GetMoveFromUci parses a UCI long algebraic move string (e.g. "e2e4",
// "e7e8q") against the legal moves of pos, returning the matching Move
// or the zero Move if uci names no legal move.
func GetMoveFromUci(pos *position.Position, uci string) Move {
	uci = strings.TrimSpace(uci)
	if len(uci) < 4 {
		return Move{}
	}
	from := MakeSquare(uci[0:2])
	to := MakeSquare(uci[2:4])
	if from == SqNone || to == SqNone {
		return Move{}
	}
	var promoted PieceType
	if len(uci) >= 5 {
		promoted = PieceTypeFromChar(uci[4])
	}
	for _, cand := range GenerateLegalMoves(pos) {
		if cand.From == from && cand.To == to && cand.Promoted == promoted {
			return cand
		}
	}
	return Move{}
}

// GetMoveFromSan parses a short algebraic notation move (e.g. "Nf3",
// "exd5", "O-O", "e8=Q+") against the legal moves of pos by rendering
// every legal move to SAN and matching on the piece-placement core,
// ignoring the optional check/mate suffix.
func GetMoveFromSan(pos *position.Position, san string) Move {
	san = strings.TrimSuffix(strings.TrimSuffix(strings.TrimSpace(san), "+"), "#")
	for _, cand := range GenerateLegalMoves(pos) {
		s := strings.TrimSuffix(strings.TrimSuffix(moveToSan(pos, cand), "+"), "#")
		if s == san {
			return cand
		}
		// a piece move disambiguated by its origin file or rank, e.g. "Nhxf2"
		if len(san) == len(s)+1 && s[0] >= 'A' && s[0] <= 'Z' && san[0] == s[0] && san[2:] == s[1:] &&
			strings.IndexByte(cand.From.String(), san[1]) >= 0 {
			return cand
		}
	}
	return Move{}
}

// moveToSan renders m, which must be legal in pos, in short algebraic
// notation without disambiguation: two identical pieces able to reach
// the same square render the same string. GetMoveFromSan additionally
// accepts a single origin file or rank letter after the piece letter;
// a full origin square is not accepted.
func moveToSan(pos *position.Position, m Move) string {
	if m.Type == Castling {
		if m.To.FileOf() == SqG1.FileOf() {
			return "O-O"
		}
		return "O-O-O"
	}
	var sb strings.Builder
	pt := m.Piece.TypeOf()
	if pt != Pawn {
		sb.WriteString(pt.Char())
	} else if m.IsCapture {
		sb.WriteString(m.From.String()[0:1])
	}
	if m.IsCapture {
		sb.WriteString("x")
	}
	sb.WriteString(m.To.String())
	if m.Type == Promotion {
		sb.WriteString("=")
		sb.WriteString(m.Promoted.Char())
	}
	return sb.String()
}

// generate is the shared pseudo-legal walk behind GeneratePseudoMoves
// and GenerateTacticalMoves: it scans the 64 on-board squares for
// pieces belonging to the side to move and dispatches per piece type.
func generate(pos *position.Position, mode GenMode) []Move {
	moves := make([]Move, 0, 48)
	us := pos.SideToMove()
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := SquareOf(file, rank)
			p := pos.PieceAt(sq)
			if p == PieceNone || p.ColorOf() != us {
				continue
			}
			switch p.TypeOf() {
			case Pawn:
				generatePawnMoves(pos, sq, us, mode, &moves)
			case Knight:
				generateLeaperMoves(pos, sq, us, p, attacks.KnightDeltas[:], mode, &moves)
			case Bishop:
				generateSliderMoves(pos, sq, us, p, attacks.BishopDeltas[:], mode, &moves)
			case Rook:
				generateSliderMoves(pos, sq, us, p, attacks.RookDeltas[:], mode, &moves)
			case Queen:
				generateSliderMoves(pos, sq, us, p, attacks.BishopDeltas[:], mode, &moves)
				generateSliderMoves(pos, sq, us, p, attacks.RookDeltas[:], mode, &moves)
			case King:
				generateLeaperMoves(pos, sq, us, p, attacks.KingDeltas[:], mode, &moves)
			}
		}
	}
	if mode&GenNonCap != 0 {
		generateCastlingMoves(pos, us, &moves)
	}
	return moves
}

// generateLeaperMoves emits the one-step moves a knight or king can
// make from sq: a capture when an enemy piece occupies the target, a
// quiet move when it is empty, nothing when a friendly piece blocks it.
func generateLeaperMoves(pos *position.Position, sq Square, us Color, piece Piece, deltas []int, mode GenMode, moves *[]Move) {
	for _, d := range deltas {
		to := sq.To(d)
		if !to.IsValid() {
			continue
		}
		target := pos.PieceAt(to)
		if target == PieceNone {
			if mode&GenNonCap != 0 {
				*moves = append(*moves, NewMove(sq, to, piece))
			}
			continue
		}
		if target.ColorOf() != us && mode&GenCap != 0 {
			*moves = append(*moves, NewCapture(sq, to, piece, target))
		}
	}
}

// generateSliderMoves walks each ray direction from sq until it runs
// off the board or hits a piece: a capture on an enemy piece (the ray
// stops there), nothing and a stop on a friendly piece, otherwise a
// quiet move and the ray continues.
func generateSliderMoves(pos *position.Position, sq Square, us Color, piece Piece, deltas []int, mode GenMode, moves *[]Move) {
	for _, d := range deltas {
		for to := sq.To(d); to.IsValid(); to = to.To(d) {
			target := pos.PieceAt(to)
			if target == PieceNone {
				if mode&GenNonCap != 0 {
					*moves = append(*moves, NewMove(sq, to, piece))
				}
				continue
			}
			if target.ColorOf() != us && mode&GenCap != 0 {
				*moves = append(*moves, NewCapture(sq, to, piece, target))
			}
			break
		}
	}
}

// promotionPieces are the four piece types a pawn reaching the back
// rank may become, queen first since it is almost always the strongest
// choice and move ordering benefits from trying it first.
var promotionPieces = [4]PieceType{Queen, Knight, Rook, Bishop}

// generatePawnMoves emits single/double pushes, diagonal captures, en
// passant and promotion expansion for the pawn on sq.
func generatePawnMoves(pos *position.Position, sq Square, us Color, mode GenMode, moves *[]Move) {
	piece := MakePiece(us, Pawn)
	push := us.PawnPushDelta()
	promotionRank := us.PromotionRank()

	if to := sq.To(push); to.IsValid() && pos.PieceAt(to) == PieceNone {
		if to.RankOf() == promotionRank {
			// a push reaching the back rank is tactical even though it
			// captures nothing, so it belongs in a GenCap-only request
			// (quiescence) just as much as a GenNonCap one.
			if mode != GenZero {
				addPromotions(sq, to, piece, PieceNone, moves)
			}
		} else if mode&GenNonCap != 0 {
			*moves = append(*moves, NewMove(sq, to, piece))
			if sq.RankOf() == us.PawnStartRank() {
				if to2 := to.To(push); to2.IsValid() && pos.PieceAt(to2) == PieceNone {
					*moves = append(*moves, NewMove(sq, to2, piece))
				}
			}
		}
	}

	if mode&GenCap == 0 {
		return
	}
	for _, side := range [2]int{EastDelta, WestDelta} {
		to := sq.To(push + side)
		if !to.IsValid() {
			continue
		}
		if target := pos.PieceAt(to); target != PieceNone {
			if target.ColorOf() != us {
				if to.RankOf() == promotionRank {
					addPromotions(sq, to, piece, target, moves)
				} else {
					*moves = append(*moves, NewCapture(sq, to, piece, target))
				}
			}
			continue
		}
		if to == pos.EnPassantSquare() {
			captured := MakePiece(us.Flip(), Pawn)
			*moves = append(*moves, NewEnPassant(sq, to, piece, captured))
		}
	}
}

// addPromotions appends the four promotion moves for a pawn reaching
// to, queen first.
func addPromotions(from, to Square, piece, captured Piece, moves *[]Move) {
	for _, pt := range promotionPieces {
		*moves = append(*moves, NewPromotion(from, to, piece, captured, pt))
	}
}

// generateCastlingMoves emits a castling move for each right still set
// whose intervening squares are empty. The king's origin and the
// square it passes through being unattacked is left to
// position.IsLegalMove, which GenerateLegalMoves and the search already
// run over every candidate move.
func generateCastlingMoves(pos *position.Position, us Color, moves *[]Move) {
	cr := pos.CastlingRights()
	if cr == CastlingNone {
		return
	}
	if us == White {
		if cr.Has(CastlingWhiteOO) && empty(pos, SqF1, SqG1) {
			*moves = append(*moves, NewCastling(SqE1, SqG1, WhiteKing))
		}
		if cr.Has(CastlingWhiteOOO) && empty(pos, SqB1, SqC1, SqD1) {
			*moves = append(*moves, NewCastling(SqE1, SqC1, WhiteKing))
		}
		return
	}
	if cr.Has(CastlingBlackOO) && empty(pos, SqF8, SqG8) {
		*moves = append(*moves, NewCastling(SqE8, SqG8, BlackKing))
	}
	if cr.Has(CastlingBlackOOO) && empty(pos, SqB8, SqC8, SqD8) {
		*moves = append(*moves, NewCastling(SqE8, SqC8, BlackKing))
	}
}

// empty reports whether every one of sqs is unoccupied.
func empty(pos *position.Position, sqs ...Square) bool {
	for _, sq := range sqs {
		if pos.PieceAt(sq) != PieceNone {
			return false
		}
	}
	return true
}

// String renders mode for debugging.
func (m GenMode) String() string {
	switch m {
	case GenZero:
		return "GenZero"
	case GenCap:
		return "GenCap"
	case GenNonCap:
		return "GenNonCap"
	case GenAll:
		return "GenAll"
	default:
		return fmt.Sprintf("GenMode(%d)", int(m))
	}
}

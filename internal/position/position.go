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

// Package position represents a chess position on a 128-entry 0x88 board
// and the operations that mutate it: make/unmake move, make/unmake null
// move, attack testing, repetition and insufficient-material detection.
//
// Create a new instance with NewPosition(...) with no parameters to get the
// chess start position, or NewPositionFen(fen) to set up an arbitrary one.
package position

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/frankkopp/franky0x88/internal/assert"
	"github.com/frankkopp/franky0x88/internal/attacks"
	. "github.com/frankkopp/franky0x88/internal/types"
	"github.com/frankkopp/franky0x88/internal/zobrist"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// maxHistory bounds the make/unmake undo stack. A game or search line
// longer than this would be pathological; grounded on the teacher's own
// types.MaxMoves=512 bound used for the same purpose.
const maxHistory = 512

// tri-state cache flags for hasCheckFlag, mirroring the teacher's
// flagTBD/flagFalse/flagTrue idiom so HasCheck only computes once per
// position and is cheap on every repeated call.
const (
	flagTBD = iota
	flagFalse
	flagTrue
)

// historyState is the undo record pushed by DoMove/DoNullMove and popped
// by UndoMove/UndoNullMove. Using a fixed-size array of these (see
// Position.history) rather than growing a slice avoids an allocation on
// every ply of search.
type historyState struct {
	hash            zobrist.Key
	move            Move
	capturedPiece   Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	hasCheckFlag    int
}

// Position is the canonical, mutable chess game state.
type Position struct {
	board           [128]Piece
	sideToMove      Color
	castlingRights  CastlingRights
	enPassantSquare Square
	kingSquare      [ColorLength]Square
	hash            zobrist.Key
	halfMoveClock   int
	fullMoveNumber  int

	hasCheckFlag int

	historyCounter int
	history        [maxHistory]historyState
}

// NewPosition returns the standard starting position, or the position
// described by fen if one is given.
func NewPosition(fen ...string) *Position {
	f := StartFen
	if len(fen) > 0 {
		f = fen[0]
	}
	p, err := NewPositionFen(f)
	if err != nil {
		panic(err)
	}
	return p
}

// NewPositionFen parses fen into a new Position, or returns an error if
// fen is malformed.
func NewPositionFen(fen string) (*Position, error) {
	p := &Position{
		enPassantSquare: SqNone,
		fullMoveNumber:  1,
		hasCheckFlag:    flagTBD,
	}
	if err := p.setupBoard(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// PieceAt implements attacks.Board so attacks.IsSquareAttacked can probe
// this position directly without internal/attacks importing this
// package.
func (p *Position) PieceAt(sq Square) Piece {
	return p.board[sq]
}

// GetPiece returns the piece occupying sq (PieceNone if empty).
func (p *Position) GetPiece(sq Square) Piece {
	return p.board[sq]
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color {
	return p.sideToMove
}

// Hash returns the current Zobrist hash, invariant I2 of the data model:
// the XOR of every applicable piece-square, side-to-move, castling-
// rights and en-passant-file key.
func (p *Position) Hash() zobrist.Key {
	return p.hash
}

// CastlingRights returns the current castling rights.
func (p *Position) CastlingRights() CastlingRights {
	return p.castlingRights
}

// EnPassantSquare returns the current en-passant target square, or
// SqNone if none is set.
func (p *Position) EnPassantSquare() Square {
	return p.enPassantSquare
}

// KingSquare returns the cached square of c's king (invariant I1).
func (p *Position) KingSquare(c Color) Square {
	return p.kingSquare[c]
}

// HalfMoveClock returns the fifty-move-rule halfmove counter.
func (p *Position) HalfMoveClock() int {
	return p.halfMoveClock
}

// FullMoveNumber returns the current full move number as written in a
// FEN string.
func (p *Position) FullMoveNumber() int {
	return p.fullMoveNumber
}

// LastMove returns the most recently made move, or the zero Move if the
// history is empty.
func (p *Position) LastMove() Move {
	if p.historyCounter == 0 {
		return Move{}
	}
	return p.history[p.historyCounter-1].move
}

// LastCapturedPiece returns the piece captured by the most recently
// made move, or PieceNone if the history is empty or the last move was
// not a capture.
func (p *Position) LastCapturedPiece() Piece {
	if p.historyCounter == 0 {
		return PieceNone
	}
	return p.history[p.historyCounter-1].capturedPiece
}

// WasCapturingMove reports whether the most recently made move was a
// capture.
func (p *Position) WasCapturingMove() bool {
	return p.LastMove().IsCapture
}

// GivesCheck reports whether playing m on the current position would
// leave the opponent in check. It plays the move, asks HasCheck from
// the opponent's new vantage point, and unmakes - simpler than
// maintaining an incremental revealed-check test, at the cost of one
// extra make/unmake per candidate move.
func (p *Position) GivesCheck(m Move) bool {
	p.DoMove(m)
	check := p.HasCheck()
	p.UndoMove()
	return check
}

// DoMove makes m on the position, updating board, hash, castling
// rights, en-passant square, king squares, the fifty-move counter and
// pushing an undo record. Effect ordering follows the ten steps of
// make_move in the component design: clear the old en-passant key
// first, then king/rook castling-rights invalidation, then the
// castling rook hop, the en-passant set, the en-passant capture, the
// normal capture, piece placement, and finally the side flip and fifty-
// move bookkeeping.
func (p *Position) DoMove(m Move) {
	if assert.DEBUG {
		assert.Assert(p.historyCounter < maxHistory, "Position DoMove: history overflow")
		assert.Assert(m.IsValid(), "Position DoMove: invalid move %s", m.String())
	}

	us := p.sideToMove
	them := us.Flip()

	captured := p.board[m.To]
	if m.Type == EnPassant {
		captured = p.board[m.To.To(them.PawnPushDelta())]
	}

	p.history[p.historyCounter] = historyState{
		hash:            p.hash,
		move:            m,
		capturedPiece:   captured,
		castlingRights:  p.castlingRights,
		enPassantSquare: p.enPassantSquare,
		halfMoveClock:   p.halfMoveClock,
		hasCheckFlag:    p.hasCheckFlag,
	}
	p.historyCounter++

	// (1) clear any en passant key currently in effect
	p.clearEnPassant()

	// (2)+(3) castling rights invalidation: king move clears both rights
	// for that side; a rook leaving, or a piece landing on, one of the
	// four original rook squares clears that single right.
	if touched := castleInvalidation(m.From, m.To, m.Piece); touched != CastlingNone {
		p.setCastlingRights(p.castlingRights &^ touched)
	}

	switch m.Type {
	case Castling:
		p.doCastlingMove(m, us)
	case EnPassant:
		p.doEnPassantMove(m, us, them)
	case Promotion:
		p.doPromotionMove(m, us)
	default:
		p.doNormalMove(m, us)
	}

	// (10) fifty move counter: reset on pawn move or capture
	if m.Piece.TypeOf() == Pawn || m.IsCapture {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	if m.Piece.TypeOf() == King {
		p.kingSquare[us] = m.To
	}

	p.hasCheckFlag = flagTBD
	if us == Black {
		p.fullMoveNumber++
	}
	p.sideToMove = them
	p.hash ^= zobrist.BlackToMove
}

// UndoMove reverses the most recently made move, restoring the board,
// hash, castling rights, en-passant square, king squares and fifty-move
// counter to their exact pre-move values (invariant I5).
func (p *Position) UndoMove() {
	if assert.DEBUG {
		assert.Assert(p.historyCounter > 0, "Position UndoMove: history empty")
	}
	p.historyCounter--
	h := p.history[p.historyCounter]
	m := h.move

	them := p.sideToMove
	us := them.Flip()
	p.sideToMove = us

	switch m.Type {
	case Castling:
		p.undoCastlingMove(m, us)
	case EnPassant:
		p.board[m.To] = PieceNone
		p.board[m.From] = m.Piece
		p.board[m.To.To(us.Flip().PawnPushDelta())] = h.capturedPiece
	case Promotion:
		p.board[m.To] = PieceNone
		p.board[m.From] = m.Piece
		if h.capturedPiece != PieceNone {
			p.board[m.To] = h.capturedPiece
		}
	default:
		p.board[m.From] = m.Piece
		p.board[m.To] = h.capturedPiece
	}

	if m.Piece.TypeOf() == King {
		p.kingSquare[us] = m.From
	}
	if us == Black {
		p.fullMoveNumber--
	}

	p.castlingRights = h.castlingRights
	p.enPassantSquare = h.enPassantSquare
	p.halfMoveClock = h.halfMoveClock
	p.hasCheckFlag = h.hasCheckFlag
	p.hash = h.hash
}

// DoNullMove makes a pass move: flips the side to move and clears any
// en-passant square, without touching the board. The position before
// and after a DoNullMove/UndoNullMove pair is identical in FEN and
// hash, but the history slot it consumes is real - a second
// DoMove/UndoMove nested inside will not corrupt the outer state.
func (p *Position) DoNullMove() {
	p.history[p.historyCounter] = historyState{
		hash:            p.hash,
		enPassantSquare: p.enPassantSquare,
		halfMoveClock:   p.halfMoveClock,
		hasCheckFlag:    p.hasCheckFlag,
	}
	p.historyCounter++
	p.clearEnPassant()
	p.hasCheckFlag = flagTBD
	p.sideToMove = p.sideToMove.Flip()
	p.hash ^= zobrist.BlackToMove
}

// UndoNullMove reverses DoNullMove.
func (p *Position) UndoNullMove() {
	if assert.DEBUG {
		assert.Assert(p.historyCounter > 0, "Position UndoNullMove: history empty")
	}
	p.historyCounter--
	h := p.history[p.historyCounter]
	p.sideToMove = p.sideToMove.Flip()
	p.enPassantSquare = h.enPassantSquare
	p.halfMoveClock = h.halfMoveClock
	p.hasCheckFlag = h.hasCheckFlag
	p.hash = h.hash
}

// IsAttacked reports whether sq is attacked by a piece of color by.
// Delegates to internal/attacks, which walks the 0x88 leaper/ray tables
// directly against this position's board - the "reverse attack from
// target square" technique, just without a precomputed bitboard to
// intersect against.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	return attacks.IsSquareAttacked(p, sq, by)
}

// IsLegalMove reports whether m is legal in the current position: it
// does not leave the moving side's own king attacked, and - for
// castling - does not pass the king through or start it on an attacked
// square.
func (p *Position) IsLegalMove(m Move) bool {
	if m.Type == Castling {
		if p.IsAttacked(m.From, p.sideToMove.Flip()) {
			return false
		}
		if pass, ok := castlingPassSquare(m.To); ok && p.IsAttacked(pass, p.sideToMove.Flip()) {
			return false
		}
	}
	us := p.sideToMove
	p.DoMove(m)
	legal := !p.IsAttacked(p.kingSquare[us], p.sideToMove)
	p.UndoMove()
	return legal
}

// WasLegalMove reports whether the most recently made move was legal:
// the mover's king (now belonging to the side that just moved) must not
// be attacked, and a castling move must not have crossed or started on
// an attacked square.
func (p *Position) WasLegalMove() bool {
	mover := p.sideToMove.Flip()
	if p.IsAttacked(p.kingSquare[mover], p.sideToMove) {
		return false
	}
	if p.historyCounter == 0 {
		return true
	}
	m := p.history[p.historyCounter-1].move
	if m.Type != Castling {
		return true
	}
	if p.IsAttacked(m.From, p.sideToMove) {
		return false
	}
	if pass, ok := castlingPassSquare(m.To); ok && p.IsAttacked(pass, p.sideToMove) {
		return false
	}
	return true
}

// HasCheck reports whether the side to move is in check. Cached on the
// position (hasCheckFlag) so repeated calls on the same node are cheap.
func (p *Position) HasCheck() bool {
	if p.hasCheckFlag != flagTBD {
		return p.hasCheckFlag == flagTrue
	}
	check := p.IsAttacked(p.kingSquare[p.sideToMove], p.sideToMove.Flip())
	if check {
		p.hasCheckFlag = flagTrue
	} else {
		p.hasCheckFlag = flagFalse
	}
	return check
}

// IsCapturingMove reports whether m captures a piece (including en
// passant) when played on the current position.
func (p *Position) IsCapturingMove(m Move) bool {
	return m.IsCapture
}

// CheckRepetitions reports whether the current position has occurred
// at least reps times earlier in the game/search history. Scanning
// stops as soon as it crosses a halfmove-clock reset, since no position
// before an irreversible move (pawn push or capture) can recur.
func (p *Position) CheckRepetitions(reps int) bool {
	counter := 0
	lastHalfMove := p.halfMoveClock
	for i := p.historyCounter - 2; i >= 0; i -= 2 {
		if p.history[i].halfMoveClock >= lastHalfMove {
			break
		}
		lastHalfMove = p.history[i].halfMoveClock
		if p.history[i].hash == p.hash {
			counter++
			if counter >= reps {
				return true
			}
		}
	}
	return false
}

// HasInsufficientMaterial reports whether neither side has enough
// material to force a checkmate, judged from the material count alone:
// true when no pawn, rook or queen is on the board and each side has at
// most one knight or bishop (K vs K, K+minor vs K, K+minor vs K+minor).
// Bishop square colors are not considered.
func (p *Position) HasInsufficientMaterial() bool {
	var minor [ColorLength]int
	var other [ColorLength]int
	for i := 0; i < 128; i++ {
		sq := Square(i)
		if !sq.IsValid() {
			continue
		}
		pc := p.board[sq]
		if pc == PieceNone {
			continue
		}
		switch pc.TypeOf() {
		case King:
			// no material contribution
		case Knight, Bishop:
			minor[pc.ColorOf()]++
		default:
			other[pc.ColorOf()]++
		}
	}
	if other[White] > 0 || other[Black] > 0 {
		return false
	}
	return minor[White] <= 1 && minor[Black] <= 1
}

// doNormalMove handles a plain quiet move or capture: remove any
// captured piece, clear and possibly reset the en-passant square on a
// double push, then relocate the moving piece.
func (p *Position) doNormalMove(m Move, us Color) {
	if m.IsCapture {
		p.board[m.To] = PieceNone
		p.hash ^= zobrist.PieceKey(m.Captured, m.To)
	}
	if m.Piece.TypeOf() == Pawn && abs(int(m.To)-int(m.From)) == 32 {
		if epPawnAdjacent(p, m.To, us) {
			epSq := m.From.To(us.PawnPushDelta())
			p.enPassantSquare = epSq
			p.hash ^= zobrist.EnPassantFile[epSq.FileOf()]
		}
	}
	p.board[m.From] = PieceNone
	p.board[m.To] = m.Piece
	p.hash ^= zobrist.PieceKey(m.Piece, m.From)
	p.hash ^= zobrist.PieceKey(m.Piece, m.To)
}

// doCastlingMove relocates the king and hops the corresponding rook to
// its post-castling square.
func (p *Position) doCastlingMove(m Move, us Color) {
	p.board[m.From] = PieceNone
	p.board[m.To] = m.Piece
	p.hash ^= zobrist.PieceKey(m.Piece, m.From)
	p.hash ^= zobrist.PieceKey(m.Piece, m.To)

	rookFrom, rookTo := castlingRookSquares(m.To)
	rook := p.board[rookFrom]
	p.board[rookFrom] = PieceNone
	p.board[rookTo] = rook
	p.hash ^= zobrist.PieceKey(rook, rookFrom)
	p.hash ^= zobrist.PieceKey(rook, rookTo)
}

func (p *Position) undoCastlingMove(m Move, us Color) {
	p.board[m.To] = PieceNone
	p.board[m.From] = m.Piece

	rookFrom, rookTo := castlingRookSquares(m.To)
	rook := p.board[rookTo]
	p.board[rookTo] = PieceNone
	p.board[rookFrom] = rook
}

// doEnPassantMove removes the captured pawn - one rank behind the
// destination - and relocates the moving pawn.
func (p *Position) doEnPassantMove(m Move, us, them Color) {
	capSq := m.To.To(them.PawnPushDelta())
	captured := p.board[capSq]
	p.board[capSq] = PieceNone
	p.hash ^= zobrist.PieceKey(captured, capSq)

	p.board[m.From] = PieceNone
	p.board[m.To] = m.Piece
	p.hash ^= zobrist.PieceKey(m.Piece, m.From)
	p.hash ^= zobrist.PieceKey(m.Piece, m.To)
}

// doPromotionMove removes any captured piece and places the promoted
// piece on the destination rather than the pawn.
func (p *Position) doPromotionMove(m Move, us Color) {
	if m.IsCapture {
		p.board[m.To] = PieceNone
		p.hash ^= zobrist.PieceKey(m.Captured, m.To)
	}
	promoted := MakePiece(us, m.Promoted)
	p.board[m.From] = PieceNone
	p.board[m.To] = promoted
	p.hash ^= zobrist.PieceKey(m.Piece, m.From)
	p.hash ^= zobrist.PieceKey(promoted, m.To)
}

func (p *Position) clearEnPassant() {
	if p.enPassantSquare != SqNone {
		p.hash ^= zobrist.EnPassantFile[p.enPassantSquare.FileOf()]
		p.enPassantSquare = SqNone
	}
}

// setCastlingRights updates the castling rights and maintains the
// incremental hash, XOR-ing the old rights key out and the new one in.
func (p *Position) setCastlingRights(cr CastlingRights) {
	if cr == p.castlingRights {
		return
	}
	p.hash ^= zobrist.CastlingRights[p.castlingRights]
	p.castlingRights = cr
	p.hash ^= zobrist.CastlingRights[p.castlingRights]
}

// castleInvalidation returns the castling rights a move touching from,
// to or moving piece invalidates: a king move clears both of its own
// side's rights; a rook leaving (or any piece landing on) one of the
// four original rook squares clears that single right.
func castleInvalidation(from, to Square, piece Piece) CastlingRights {
	cr := castlingRightsTouched(from) | castlingRightsTouched(to)
	if piece.TypeOf() == King {
		if piece.ColorOf() == White {
			cr |= CastlingWhiteOO | CastlingWhiteOOO
		} else {
			cr |= CastlingBlackOO | CastlingBlackOOO
		}
	}
	return cr
}

// castlingRightsTouched returns the single castling right, if any,
// associated with one of the four original rook squares.
func castlingRightsTouched(sq Square) CastlingRights {
	switch sq {
	case SqA1:
		return CastlingWhiteOOO
	case SqH1:
		return CastlingWhiteOO
	case SqA8:
		return CastlingBlackOOO
	case SqH8:
		return CastlingBlackOO
	default:
		return CastlingNone
	}
}

// castlingRookSquares returns the rook's from/to squares for a castling
// move landing the king on to.
func castlingRookSquares(to Square) (from, rookTo Square) {
	switch to {
	case SqG1:
		return SqH1, SqF1
	case SqC1:
		return SqA1, SqD1
	case SqG8:
		return SqH8, SqF8
	case SqC8:
		return SqA8, SqD8
	default:
		panic("castlingRookSquares: invalid castling destination")
	}
}

// castlingPassSquare returns the square the king passes through on its
// way to to, for the crossing-attacked legality check.
func castlingPassSquare(to Square) (Square, bool) {
	switch to {
	case SqG1:
		return SqF1, true
	case SqC1:
		return SqD1, true
	case SqG8:
		return SqF8, true
	case SqC8:
		return SqD8, true
	default:
		return SqNone, false
	}
}

// epPawnAdjacent reports whether an enemy pawn sits immediately east or
// west of pushedSq, the square the just-pushed pawn now occupies - the
// I3 optimization: only set enPassantSquare (and pay for its hash key)
// when a capture is actually available there.
func epPawnAdjacent(p *Position, pushedSq Square, us Color) bool {
	enemyPawn := MakePiece(us.Flip(), Pawn)
	if t := pushedSq.To(EastDelta); t.IsValid() && p.board[t] == enemyPawn {
		return true
	}
	if t := pushedSq.To(WestDelta); t.IsValid() && p.board[t] == enemyPawn {
		return true
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

var (
	regexFenPos         = regexp.MustCompile(`^[pnbrqkPNBRQK1-8/]+$`)
	regexWorB           = regexp.MustCompile(`^[wb]$`)
	regexCastlingRights = regexp.MustCompile(`^(-|K?Q?k?q?)$`)
	regexEnPassant      = regexp.MustCompile(`^(-|[a-h][36])$`)
)

// setupBoard parses fen and initializes the board, side to move,
// castling rights, en-passant square, fifty-move clock and full-move
// number, computing the hash exhaustively from the resulting position
// (§4.3: "the hash of a fresh Position is computed exhaustively once").
// Only the piece placement field is required; the rest default to the
// start-of-game values.
func (p *Position) setupBoard(fen string) error {
	fen = strings.TrimSpace(fen)
	fenParts := strings.Split(fen, " ")
	if len(fenParts) == 0 || fenParts[0] == "" {
		return errors.New("fen must not be empty")
	}
	if !regexFenPos.MatchString(fenParts[0]) {
		return errors.New("fen position contains invalid characters")
	}

	for i := range p.board {
		p.board[i] = PieceNone
	}

	rank := 7
	file := 0
	for _, c := range fenParts[0] {
		switch {
		case c == '/':
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			piece := PieceFromChar(byte(c))
			if piece == PieceNone {
				return fmt.Errorf("invalid piece character: %c", c)
			}
			sq := SquareOf(file, rank)
			p.board[sq] = piece
			if piece.TypeOf() == King {
				p.kingSquare[piece.ColorOf()] = sq
			}
			file++
		}
	}
	if rank != 0 || file != 8 {
		return errors.New("fen position does not describe exactly 8 ranks of 8 files")
	}

	p.sideToMove = White
	p.castlingRights = CastlingNone
	p.enPassantSquare = SqNone
	p.halfMoveClock = 0
	p.fullMoveNumber = 1

	if len(fenParts) >= 2 {
		if !regexWorB.MatchString(fenParts[1]) {
			return errors.New("fen side to move contains invalid characters")
		}
		if fenParts[1] == "b" {
			p.sideToMove = Black
		}
	}

	if len(fenParts) >= 3 {
		if !regexCastlingRights.MatchString(fenParts[2]) {
			return errors.New("fen castling rights contains invalid characters")
		}
		if fenParts[2] != "-" {
			for _, c := range fenParts[2] {
				switch c {
				case 'K':
					p.castlingRights = p.castlingRights.Add(CastlingWhiteOO)
				case 'Q':
					p.castlingRights = p.castlingRights.Add(CastlingWhiteOOO)
				case 'k':
					p.castlingRights = p.castlingRights.Add(CastlingBlackOO)
				case 'q':
					p.castlingRights = p.castlingRights.Add(CastlingBlackOOO)
				}
			}
		}
	}

	if len(fenParts) >= 4 {
		if !regexEnPassant.MatchString(fenParts[3]) {
			return errors.New("fen en passant square contains invalid characters")
		}
		if fenParts[3] != "-" {
			p.enPassantSquare = MakeSquare(fenParts[3])
		}
	}

	if len(fenParts) >= 5 {
		n, err := strconv.Atoi(fenParts[4])
		if err != nil {
			return err
		}
		p.halfMoveClock = n
	}

	if len(fenParts) >= 6 {
		n, err := strconv.Atoi(fenParts[5])
		if err != nil {
			return err
		}
		if n == 0 {
			n = 1
		}
		p.fullMoveNumber = n
	}

	p.hash = p.computeHash()
	p.hasCheckFlag = flagTBD
	return nil
}

// computeHash exhaustively recomputes the Zobrist hash from the current
// board, side to move, castling rights and en-passant square. Used once
// by setupBoard and by the incremental-hash equivalence test.
func (p *Position) computeHash() zobrist.Key {
	var h zobrist.Key
	for i := 0; i < 128; i++ {
		sq := Square(i)
		if !sq.IsValid() {
			continue
		}
		if pc := p.board[sq]; pc != PieceNone {
			h ^= zobrist.PieceKey(pc, sq)
		}
	}
	if p.sideToMove == Black {
		h ^= zobrist.BlackToMove
	}
	h ^= zobrist.CastlingRights[p.castlingRights]
	if p.enPassantSquare != SqNone {
		h ^= zobrist.EnPassantFile[p.enPassantSquare.FileOf()]
	}
	return h
}

// StringFen renders the position as a FEN string.
func (p *Position) StringFen() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pc := p.board[SquareOf(file, rank)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(p.sideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(p.castlingRights.String())
	sb.WriteByte(' ')
	sb.WriteString(p.enPassantSquare.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullMoveNumber))
	return sb.String()
}

// StringBoard renders an 8x8 ASCII diagram of the board for debug
// logging, rank 8 at the top.
func (p *Position) StringBoard() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			pc := p.board[SquareOf(file, rank)]
			if pc == PieceNone {
				sb.WriteByte('.')
			} else {
				sb.WriteString(pc.String())
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String returns the FEN representation.
func (p *Position) String() string {
	return p.StringFen()
}

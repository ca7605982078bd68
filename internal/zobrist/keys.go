/*
 * franky0x88 - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package zobrist holds the precomputed random keys used to maintain an
// incremental hash of a Position across make/unmake. Keys are generated
// once, from a fixed seed, at package init time so that hashes are
// reproducible across runs and processes.
package zobrist

import "github.com/frankkopp/franky0x88/internal/types"

// seed is the fixed 64-bit Zobrist seed. Keeping it fixed (rather than
// time-seeded) makes hash values - and therefore TT contents and perft
// traces - reproducible between runs.
const seed uint64 = 0x1EF105C43DEF1F9F

// Key is the 64-bit incremental hash type used throughout the engine,
// most visibly as the index into the transposition table.
type Key uint64

var (
	// Pieces holds one key per (piece, square) pair, indexed directly by
	// the Piece code (color bit | piece type, up to 22). Rows of unused
	// codes, PieceNone's included, are filled but never consulted.
	Pieces [32][128]Key

	// BlackToMove is XORed into the hash whenever it is Black's turn to
	// move - equivalently, whenever the side to move flips.
	BlackToMove Key

	// CastlingRights holds one key per possible 4-bit castling-rights
	// value, so a rights change is a single XOR of the old and new key.
	CastlingRights [16]Key

	// EnPassantFile holds one key per file (a-h), XORed in only when an
	// en-passant capture is actually available on that file.
	EnPassantFile [8]Key
)

func init() {
	r := newRandom(seed)
	for piece := 0; piece < 32; piece++ {
		for sq := 0; sq < 128; sq++ {
			Pieces[piece][sq] = Key(r.next())
		}
	}
	BlackToMove = Key(r.next())
	for i := range CastlingRights {
		CastlingRights[i] = Key(r.next())
	}
	for i := range EnPassantFile {
		EnPassantFile[i] = Key(r.next())
	}
}

// PieceKey returns the Zobrist key for placing p on sq.
func PieceKey(p types.Piece, sq types.Square) Key {
	return Pieces[p][sq]
}

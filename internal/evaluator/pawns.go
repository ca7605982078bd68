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

package evaluator

import (
	"github.com/frankkopp/franky0x88/internal/config"
	"github.com/frankkopp/franky0x88/internal/position"
	"github.com/frankkopp/franky0x88/internal/zobrist"
	. "github.com/frankkopp/franky0x88/internal/types"
)

const (
	doubledPawnPenalty  int16 = 10
	isolatedPawnPenalty int16 = 20
	backwardPawnPenalty int16 = 8
	passedPawnBonus     int16 = 20
)

// pawnRanks holds, per file (index 1..8, with a sentinel column on each
// side), the row (7 - rank, so row 0 is rank 8) of the least advanced
// pawn of one color. A file without such a pawn, and both sentinel
// columns, read 0 for White and 7 for Black, so edge files never see a
// phantom neighbour.
type pawnRanks [10]int8

// buildPawnRanks scans the board once and records the least advanced
// White and Black pawn per file, mirroring the teacher's per-file
// bookkeeping but over 0x88 squares instead of bitboards.
func buildPawnRanks(pos *position.Position) (white, black pawnRanks) {
	for file := 0; file < 10; file++ {
		black[file] = 7
	}
	for rank := 1; rank < 7; rank++ {
		row := int8(7 - rank)
		for file := 0; file < 8; file++ {
			p := pos.PieceAt(SquareOf(file, rank))
			if p.TypeOf() != Pawn {
				continue
			}
			idx := file + 1
			if p.ColorOf() == White {
				if white[idx] < row {
					white[idx] = row
				}
			} else if black[idx] > row {
				black[idx] = row
			}
		}
	}
	return white, black
}

// pawnStructureScore returns the doubled/isolated/backward/passed-pawn
// score contribution of the pawn of color c on file (1-indexed into
// white/black) whose row (7 - rank) is passed as rank, signed from
// White's perspective.
func pawnStructureScore(white, black pawnRanks, c Color, file int, rank int8) int16 {
	var score int16
	left, right := file-1, file+1
	if c == White {
		if white[file] > rank {
			score -= doubledPawnPenalty
		}
		if white[left] == 0 && white[right] == 0 {
			score -= isolatedPawnPenalty
		} else if rank > white[left] && rank > white[right] {
			score -= backwardPawnPenalty
		}
		if rank <= black[left] && rank <= black[file] && rank <= black[right] {
			score += int16(7-rank) * passedPawnBonus
		}
	} else {
		if black[file] < rank {
			score += doubledPawnPenalty
		}
		if black[left] == 7 && black[right] == 7 {
			score += isolatedPawnPenalty
		} else if rank < black[left] && rank < black[right] {
			score += backwardPawnPenalty
		}
		if rank >= white[left] && rank >= white[file] && rank >= white[right] {
			score -= int16(rank) * passedPawnBonus
		}
	}
	return score
}

// pawnHash xors together the piece/square zobrist keys of every pawn on
// the board. Unlike the full position hash this ignores everything but
// pawns, so two positions with the same pawn skeleton but different
// piece placement elsewhere share a cache entry.
func pawnHash(pos *position.Position) zobrist.Key {
	var key zobrist.Key
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := SquareOf(file, rank)
			p := pos.PieceAt(sq)
			if p.TypeOf() == Pawn {
				key ^= zobrist.PieceKey(p, sq)
			}
		}
	}
	return key
}

// evaluatePawns returns the pawn-structure score, from White's
// perspective, for the position last passed to InitEval.
func (e *Evaluator) evaluatePawns() int16 {
	var key zobrist.Key
	if config.Settings.Eval.UsePawnCache {
		key = pawnHash(e.position)
		if entry := e.pawnCache.getEntry(key); entry != nil {
			return entry.score
		}
	}

	white, black := buildPawnRanks(e.position)
	var score int16
	for rank := 1; rank < 7; rank++ {
		for file := 0; file < 8; file++ {
			sq := SquareOf(file, rank)
			p := e.position.PieceAt(sq)
			if p.TypeOf() != Pawn {
				continue
			}
			score += pawnStructureScore(white, black, p.ColorOf(), file+1, int8(7-rank))
		}
	}

	if config.Settings.Eval.UsePawnCache {
		e.pawnCache.put(key, score)
	}
	return score
}

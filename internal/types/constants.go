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

const (
	// MaxDepth is the largest search ply the engine will ever recurse to.
	MaxDepth = 128

	// MaxMoves bounds the number of legal moves ever possible in a single
	// position, used to size preallocated move lists.
	MaxMoves = 512

	// KB is 1024 bytes.
	KB uint64 = 1024

	// MB is 1024 KB.
	MB uint64 = KB * KB

	// GB is 1024 MB.
	GB uint64 = KB * MB
)

// MoveNone is the zero value Move: From and To both a1 (so IsValid is
// false), no piece set.
// It signals "no move" in transposition table entries and move-ordering
// hints where a zero value would otherwise be ambiguous.
var MoveNone = Move{}

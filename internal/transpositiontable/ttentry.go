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

package transpositiontable

import (
	"unsafe"

	"github.com/frankkopp/franky0x88/internal/zobrist"

	. "github.com/frankkopp/franky0x88/internal/types"
)

// TtEntry is the data held for each stored position. Unlike a bit-packed
// entry, move is kept as a full Move value rather than a 16-bit encoding
// since Move here is a small struct, not a packed integer.
type TtEntry struct {
	key   zobrist.Key
	move  Move
	eval  Value
	value Value
	depth int8
	vtype ValueType
}

// TtEntrySize is the size in bytes of each entry, used together with a
// megabyte budget to compute how many slots the table holds.
const TtEntrySize = int(unsafe.Sizeof(TtEntry{}))

func (e *TtEntry) Key() zobrist.Key {
	return e.key
}

func (e *TtEntry) Move() Move {
	return e.move
}

func (e *TtEntry) Value() Value {
	return e.value
}

func (e *TtEntry) Eval() Value {
	return e.eval
}

func (e *TtEntry) Depth() int8 {
	return e.depth
}

func (e *TtEntry) Vtype() ValueType {
	return e.vtype
}

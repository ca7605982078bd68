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

// ValueType classifies a transposition table entry's score relative to
// the alpha-beta window that produced it.
type ValueType uint8

// Node type constants used by the transposition table.
const (
	// ValueTypeNone marks an empty or not-yet-written entry.
	ValueTypeNone ValueType = iota
	// ValueTypeExact marks a score that is the position's true minimax
	// value, found inside the alpha-beta window.
	ValueTypeExact
	// ValueTypeUpperBound (a.k.a "all node") marks a score that failed
	// low: the true value is at most the stored score.
	ValueTypeUpperBound
	// ValueTypeLowerBound (a.k.a "cut node") marks a score that failed
	// high: the true value is at least the stored score.
	ValueTypeLowerBound
)

var valueTypeToString = [...]string{"NONE", "EXACT", "UPPER", "LOWER"}

// String returns a short label for the node type.
func (vt ValueType) String() string {
	if int(vt) >= len(valueTypeToString) {
		return "?"
	}
	return valueTypeToString[vt]
}

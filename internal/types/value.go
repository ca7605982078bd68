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

import (
	"strconv"
	"strings"
)

// Value is a centipawn evaluation or search score.
type Value int32

// Bounds and sentinel values used throughout evaluation and search.
const (
	ValueZero    Value = 0
	ValueDraw    Value = 0
	ValueInf     Value = 100_000
	ValueNA      Value = -ValueInf - 1
	ValueMate    Value = 50_000
	ValueMaximum Value = ValueInf
)

// IsValid reports whether v lies within the representable score range.
func (v Value) IsValid() bool {
	return v >= -ValueInf && v <= ValueInf
}

// IsMateValue reports whether v encodes a forced mate (v is close
// enough to +/-ValueMate that it can only have come from a mate-distance
// adjustment in the search, not from evaluation).
func (v Value) IsMateValue() bool {
	return v > ValueMate-1000 || v < -ValueMate+1000
}

// String renders v in UCI score format: "cp <centipawns>" or
// "mate <moves>" (negative when the side to move is being mated).
func (v Value) String() string {
	var sb strings.Builder
	switch {
	case v == ValueNA:
		sb.WriteString("N/A")
	case v.IsMateValue():
		sb.WriteString("mate ")
		if v < ValueZero {
			sb.WriteString("-")
		}
		plies := ValueMate - v
		if v < ValueZero {
			plies = ValueMate + v
		}
		sb.WriteString(strconv.Itoa((int(plies) + 1) / 2))
	default:
		sb.WriteString("cp ")
		sb.WriteString(strconv.Itoa(int(v)))
	}
	return sb.String()
}

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
	"os"
	"path"
	"runtime"
	"testing"
	"unsafe"

	logging2 "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/franky0x88/internal/config"
	"github.com/frankkopp/franky0x88/internal/logging"
	"github.com/frankkopp/franky0x88/internal/position"
	"github.com/frankkopp/franky0x88/internal/zobrist"

	. "github.com/frankkopp/franky0x88/internal/types"
)

var logTest *logging2.Logger

// make tests run in the project's root directory
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	logTest = logging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

func TestEntrySize(t *testing.T) {
	e := TtEntry{}
	logTest.Debugf("Size of Entry %d bytes", unsafe.Sizeof(e))
	assert.True(t, unsafe.Sizeof(e) <= 32)
}

func TestNew(t *testing.T) {
	tt := NewTtTable(1)
	assert.Equal(t, uint64(1)*MB/uint64(TtEntrySize), tt.maxNumberOfEntries)
	assert.Equal(t, int(tt.maxNumberOfEntries), cap(tt.data))

	tt = NewTtTable(64)
	assert.Equal(t, uint64(64)*MB/uint64(TtEntrySize), tt.maxNumberOfEntries)
}

func TestGetAndProbe(t *testing.T) {
	tt := NewTtTable(64)

	pos := position.NewPosition()
	move := NewMove(SqE2, SqE4, WhitePawn)
	tt.data[tt.hash(pos.Hash())] = TtEntry{
		key:   pos.Hash(),
		move:  move,
		depth: 5,
		vtype: ValueTypeExact,
		value: 17,
		eval:  17,
	}
	tt.numberOfEntries++

	e := tt.GetEntry(pos.Hash())
	assert.Equal(t, pos.Hash(), e.Key())
	assert.Equal(t, move, e.Move())
	assert.EqualValues(t, 5, e.Depth())
	assert.Equal(t, ValueTypeExact, e.Vtype())

	e = tt.Probe(pos.Hash())
	assert.Equal(t, pos.Hash(), e.Key())

	// not in tt
	pos.DoMove(move)
	e = tt.Probe(pos.Hash())
	assert.Nil(t, e)
}

func TestClear(t *testing.T) {
	tt := NewTtTable(1)

	pos := position.NewPosition()
	move := NewMove(SqE2, SqE4, WhitePawn)
	tt.data[tt.hash(pos.Hash())] = TtEntry{key: pos.Hash(), move: move, depth: 5, vtype: ValueTypeExact}
	tt.numberOfEntries++

	e := tt.Probe(pos.Hash())
	assert.Equal(t, pos.Hash(), e.Key())
	assert.EqualValues(t, 1, tt.numberOfEntries)

	tt.Clear()

	e = tt.Probe(pos.Hash())
	assert.Nil(t, e)
	assert.EqualValues(t, 0, tt.numberOfEntries)
}

func TestPut(t *testing.T) {
	tt := NewTtTable(4)
	move := NewMove(SqE2, SqE4, WhitePawn)

	// new entry
	tt.Put(111, move, 4, Value(111), ValueTypeUpperBound, Value(111))
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 1, tt.Stats.numberOfPuts)
	e := tt.Probe(zobrist.Key(111))
	assert.EqualValues(t, 111, e.Key())
	assert.Equal(t, move, e.Move())
	assert.EqualValues(t, 4, e.Depth())
	assert.Equal(t, ValueTypeUpperBound, e.Vtype())
	assert.EqualValues(t, 111, e.Value())

	// update same key
	tt.Put(111, move, 5, Value(112), ValueTypeLowerBound, Value(112))
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 2, tt.Stats.numberOfPuts)
	assert.EqualValues(t, 1, tt.Stats.numberOfUpdates)
	assert.EqualValues(t, 0, tt.Stats.numberOfCollisions)
	e = tt.Probe(zobrist.Key(111))
	assert.EqualValues(t, 112, e.Value())
	assert.Equal(t, ValueTypeLowerBound, e.Vtype())

	// collision at the same slot always overwrites - no depth preference
	collisionKey := zobrist.Key(111 + tt.maxNumberOfEntries)
	tt.Put(collisionKey, move, 1, Value(113), ValueTypeExact, Value(113))
	assert.EqualValues(t, 1, tt.Len())
	assert.EqualValues(t, 3, tt.Stats.numberOfPuts)
	assert.EqualValues(t, 1, tt.Stats.numberOfCollisions)
	assert.EqualValues(t, 1, tt.Stats.numberOfOverwrites)
	e = tt.Probe(collisionKey)
	assert.EqualValues(t, collisionKey, e.Key())
	assert.EqualValues(t, 113, e.Value())

	e = tt.Probe(zobrist.Key(111))
	assert.Nil(t, e, "the slot was overwritten, the older deeper entry is gone")
}

func TestHashfull(t *testing.T) {
	tt := NewTtTable(1)
	assert.EqualValues(t, 0, tt.Hashfull())
	for i := uint64(0); i < tt.maxNumberOfEntries/10; i++ {
		tt.Put(zobrist.Key(i+1), MoveNone, 1, Value(1), ValueTypeExact, Value(1))
	}
	assert.True(t, tt.Hashfull() > 0)
}

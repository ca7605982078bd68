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

// Package transpositiontable implements a transposition table (cache)
// data structure and functionality for a chess engine search.
// The TtTable class is not thread safe and needs to be synchronized
// externally if used from multiple threads. Is especially relevant
// for Resize and Clear which should not be called in parallel
// while searching.
package transpositiontable

import (
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/frankkopp/franky0x88/internal/logging"
	. "github.com/frankkopp/franky0x88/internal/types"
	"github.com/frankkopp/franky0x88/internal/util"
	"github.com/frankkopp/franky0x88/internal/zobrist"
)

var out = message.NewPrinter(language.German)

const (
	// MaxSizeInMB maximal memory usage of tt
	MaxSizeInMB = 65_536
)

// TtTable is the actual transposition table object holding data and
// state. Entries are stored direct-mapped: index = hash mod capacity,
// and a write always overwrites whatever was in that slot, so a
// younger shallow search can evict an older deep one. Create with
// NewTtTable().
type TtTable struct {
	log                *logging.Logger
	data               []TtEntry
	sizeInByte         uint64
	maxNumberOfEntries uint64
	numberOfEntries    uint64
	Stats              TtStats
}

// TtStats holds statistical data on tt usage
type TtStats struct {
	numberOfPuts       uint64
	numberOfCollisions uint64
	numberOfOverwrites uint64
	numberOfUpdates    uint64
	numberOfProbes     uint64
	numberOfHits       uint64
	numberOfMisses     uint64
}

// NewTtTable creates a new TtTable with the given number of megabytes
// as a memory budget. The actual capacity is derived from the entry
// size: capacity = (sizeInMByte * 1MB) / TtEntrySize.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := TtTable{
		log: myLogging.GetLog(),
	}
	tt.Resize(sizeInMByte)
	return &tt
}

// Resize resizes the tt table. All entries will be cleared.
// The TtTable class is not thread safe and needs to be synchronized
// externally if used from multiple threads. Is especially relevant
// for Resize and Clear which should not be called in parallel
// while searching.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Error(out.Sprintf("Requested size for TT of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}

	tt.sizeInByte = uint64(sizeInMByte) * MB
	tt.maxNumberOfEntries = tt.sizeInByte / uint64(TtEntrySize)

	// calculate the real memory usage
	tt.sizeInByte = tt.maxNumberOfEntries * uint64(TtEntrySize)

	// Create new slice/array - garbage collections takes care of cleanup
	tt.data = make([]TtEntry, tt.maxNumberOfEntries)
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}

	tt.log.Info(out.Sprintf("TT Size %d MByte, Capacity %d entries (size=%dByte) (Requested were %d MBytes)",
		tt.sizeInByte/MB, tt.maxNumberOfEntries, unsafe.Sizeof(TtEntry{}), sizeInMByte))
	tt.log.Debug(util.MemStat())
}

// GetEntry returns a pointer to the corresponding tt entry.
// Given key is checked against the entry's key. When
// equal pointer to entry will be returned. Otherwise
// nil will be returned.
// Does not change statistics.
func (tt *TtTable) GetEntry(key zobrist.Key) *TtEntry {
	if tt.maxNumberOfEntries == 0 {
		return nil
	}
	e := &tt.data[tt.hash(key)]
	if e.key == key {
		return e
	}
	return nil
}

// Probe returns a pointer to the corresponding tt entry
// or nil if it was not found.
func (tt *TtTable) Probe(key zobrist.Key) *TtEntry {
	tt.Stats.numberOfProbes++
	if tt.maxNumberOfEntries == 0 {
		tt.Stats.numberOfMisses++
		return nil
	}
	e := &tt.data[tt.hash(key)]
	if e.key == key {
		tt.Stats.numberOfHits++
		return e
	}
	tt.Stats.numberOfMisses++
	return nil
}

// Put writes an entry into the tt, always overwriting whatever
// currently occupies the slot for key's index - there is no
// depth-preferred or aging replacement scheme. A MoveNone or ValueNA
// carried in move/value/eval means "nothing better known", and the
// existing slot's corresponding field is kept rather than clobbered
// when the slot already holds this same key.
func (tt *TtTable) Put(key zobrist.Key, move Move, depth int8, value Value, valueType ValueType, eval Value) {
	if tt.maxNumberOfEntries == 0 {
		return
	}

	entryDataPtr := &tt.data[tt.hash(key)]

	tt.Stats.numberOfPuts++

	if entryDataPtr.key == 0 {
		tt.numberOfEntries++
		entryDataPtr.key = key
		entryDataPtr.move = move
		entryDataPtr.eval = eval
		entryDataPtr.value = value
		entryDataPtr.depth = depth
		entryDataPtr.vtype = valueType
		return
	}

	if entryDataPtr.key != key {
		tt.Stats.numberOfCollisions++
		tt.Stats.numberOfOverwrites++
		entryDataPtr.key = key
		entryDataPtr.move = move
		entryDataPtr.eval = eval
		entryDataPtr.value = value
		entryDataPtr.depth = depth
		entryDataPtr.vtype = valueType
		return
	}

	// Same hash and same position -> update entry, preserving fields
	// the caller didn't actually have a better value for.
	tt.Stats.numberOfUpdates++
	if move != MoveNone {
		entryDataPtr.move = move
	}
	if eval != ValueNA {
		entryDataPtr.eval = eval
	}
	if value != ValueNA {
		entryDataPtr.value = value
		entryDataPtr.depth = depth
		entryDataPtr.vtype = valueType
	}
}

// Clear clears all entries of the tt
// The TtTable class is not thread safe and needs to be synchronized
// externally if used from multiple threads. Is especially relevant
// for Resize and Clear which should not be called in parallel
// while searching.
func (tt *TtTable) Clear() {
	tt.data = make([]TtEntry, tt.maxNumberOfEntries)
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}
}

// Hashfull returns how full the transposition table is in permill as per UCI
func (tt *TtTable) Hashfull() int {
	if tt.maxNumberOfEntries == 0 {
		return 0
	}
	return int((1000 * tt.numberOfEntries) / tt.maxNumberOfEntries)
}

// String returns a string representation of this TtTable instance
func (tt *TtTable) String() string {
	return out.Sprintf("TT: size %d MB max entries %d of size %d Bytes entries %d (%d%%) puts %d "+
		"updates %d collisions %d overwrites %d probes %d hits %d (%d%%) misses %d (%d%%)",
		tt.sizeInByte/MB, tt.maxNumberOfEntries, unsafe.Sizeof(TtEntry{}), tt.numberOfEntries, tt.Hashfull()/10,
		tt.Stats.numberOfPuts, tt.Stats.numberOfUpdates, tt.Stats.numberOfCollisions, tt.Stats.numberOfOverwrites, tt.Stats.numberOfProbes,
		tt.Stats.numberOfHits, (tt.Stats.numberOfHits*100)/(1+tt.Stats.numberOfProbes),
		tt.Stats.numberOfMisses, (tt.Stats.numberOfMisses*100)/(1+tt.Stats.numberOfProbes))
}

// Len returns the number of non empty entries in the tt
func (tt *TtTable) Len() uint64 {
	return tt.numberOfEntries
}

// ///////////////////////////////////////////////////////////
// Private
// ///////////////////////////////////////////////////////////

// hash generates the internal index into data for key.
func (tt *TtTable) hash(key zobrist.Key) uint64 {
	return uint64(key) % tt.maxNumberOfEntries
}

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
	"math"
	"unsafe"

	"github.com/op/go-logging"

	"github.com/frankkopp/franky0x88/internal/config"
	myLogging "github.com/frankkopp/franky0x88/internal/logging"
	"github.com/frankkopp/franky0x88/internal/zobrist"
)

const (
	// MaxSizeInMB maximal memory usage of pawnCache
	MaxSizeInMB = 1_024

	// mb is the number of bytes in one megabyte.
	mb = 1024 * 1024

	// entrySize is the size in bytes for each pawn cache entry
	entrySize = 16
)

type pawnCache struct {
	log                *logging.Logger
	data               []cacheEntry
	sizeInByte         uint64
	maxNumberOfEntries uint64
	hashKeyMask        uint64
	entries            uint64
	hits               uint64
	misses             uint64
	replace            uint64
}

type cacheEntry struct {
	pawnKey zobrist.Key
	score   int16
}

func newPawnCache() *pawnCache {
	pc := &pawnCache{
		log: myLogging.GetLog(),
	}
	pc.resize(config.Settings.Eval.PawnCacheSize)
	return pc
}

func (pc *pawnCache) resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		pc.log.Errorf("Requested size for Pawn Cache of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB)
		sizeInMByte = MaxSizeInMB
	}

	// calculate the maximum power of 2 of entries fitting into the given size in MB
	pc.sizeInByte = uint64(sizeInMByte) * mb
	pc.maxNumberOfEntries = 1 << uint64(math.Floor(math.Log2(float64(pc.sizeInByte/entrySize))))
	pc.hashKeyMask = pc.maxNumberOfEntries - 1

	if pc.sizeInByte == 0 {
		pc.maxNumberOfEntries = 0
	}

	pc.sizeInByte = pc.maxNumberOfEntries * entrySize
	pc.data = make([]cacheEntry, pc.maxNumberOfEntries)

	pc.log.Infof("PawnCache Size %d MByte, Capacity %d entries (size=%dByte) (Requested were %d MBytes)",
		pc.sizeInByte/mb, pc.maxNumberOfEntries, unsafe.Sizeof(cacheEntry{}), sizeInMByte)
}

// getEntry returns a pointer to the corresponding entry. Given key is
// checked against the entry's key; on a match the pointer is returned,
// otherwise nil.
func (pc *pawnCache) getEntry(key zobrist.Key) *cacheEntry {
	if pc.maxNumberOfEntries == 0 {
		return nil
	}
	e := &pc.data[pc.hash(key)]
	if e.pawnKey == key {
		pc.hits++
		return e
	}
	pc.misses++
	return nil
}

// put stores score for the pawn structure represented by key.
func (pc *pawnCache) put(key zobrist.Key, score int16) {
	if pc.maxNumberOfEntries == 0 {
		return
	}
	e := &pc.data[pc.hash(key)]
	if e.pawnKey == 0 {
		pc.entries++
	} else if e.pawnKey != key {
		pc.replace++
	}
	e.pawnKey = key
	e.score = score
}

// clear clears all entries of the pawn cache.
func (pc *pawnCache) clear() {
	pc.data = make([]cacheEntry, pc.maxNumberOfEntries)
	pc.entries = 0
	pc.hits = 0
	pc.misses = 0
	pc.replace = 0
}

// len returns the number of non-empty entries in the cache.
func (pc *pawnCache) len() uint64 {
	return pc.entries
}

// hash generates the internal index into the data array for key.
func (pc *pawnCache) hash(key zobrist.Key) uint64 {
	return uint64(key) & pc.hashKeyMask
}

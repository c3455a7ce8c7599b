// Copyright 2025 The Arbor Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package arena provides a bump-pointer block allocator. An Arena owns all
// storage for one tree (or forest) of nodes: allocation is O(1) amortized,
// individual allocations are never freed, and the whole arena is invalidated
// at once by Clear or Release.
//
// Memory handed out by an Arena is not scanned by the garbage collector.
// Values placed in it must therefore not contain pointers to ordinary Go
// heap objects; pointers to other arena-allocated values are fine as long as
// the arena outlives them. The arena itself keeps every block reachable.
package arena

import (
	"unsafe"

	"github.com/cockroachdb/crlib/crbytes"
	"github.com/cockroachdb/errors"
)

// BlockSize is the number of usable bytes per block, and the maximum size of
// a single allocation.
const BlockSize = 16 << 10

// maxAlign is the largest supported allocation alignment. Block bases are
// allocated with at least this alignment, so an aligned offset within a
// block is aligned absolutely as well.
const maxAlign = 8

// Arena is a stack allocator over a list of fixed-size blocks. The zero
// value is ready for use. An Arena must not be copied while in use.
type Arena struct {
	blocks [][]byte
	// cur indexes the block allocations are bumped in; pos is the offset of
	// the first free byte within it. cur == len(blocks) means a fresh block
	// is needed.
	cur int
	pos int
}

// Alloc returns a pointer to size bytes of zeroed storage with the requested
// alignment. align must be a power of two at most 8, and size must be in
// (0, BlockSize]; violating either is an assertion failure, not a
// recoverable error.
//
// Allocation is deterministic: after Clear, replaying an identical sequence
// of Alloc calls returns identical addresses.
func (a *Arena) Alloc(size, align uintptr) unsafe.Pointer {
	if size == 0 || size > BlockSize {
		panic(errors.AssertionFailedf("arena allocation of %d bytes outside (0, %d]", size, int64(BlockSize)))
	}
	if align == 0 || align&(align-1) != 0 || align > maxAlign {
		panic(errors.AssertionFailedf("invalid arena allocation alignment %d", align))
	}

	if a.cur == len(a.blocks) {
		a.grow()
	}
	pos := (a.pos + int(align) - 1) &^ (int(align) - 1)
	if pos+int(size) > BlockSize {
		// Advance to the next block, reusing a trailing block left over from
		// a previous Clear if there is one. Block bases are aligned, so the
		// request always fits at offset 0.
		a.cur++
		if a.cur == len(a.blocks) {
			a.grow()
		}
		pos = 0
	}
	a.pos = pos + int(size)

	buf := a.blocks[a.cur][pos:a.pos:a.pos]
	clear(buf)
	return unsafe.Pointer(unsafe.SliceData(buf))
}

// AllocBytes returns a zeroed byte slice of length n backed by arena
// storage. n must be in (0, BlockSize].
func (a *Arena) AllocBytes(n int) []byte {
	p := a.Alloc(uintptr(n), 1)
	return unsafe.Slice((*byte)(p), n)
}

func (a *Arena) grow() {
	a.blocks = append(a.blocks, crbytes.AllocAligned(BlockSize))
	a.pos = 0
}

// New allocates a zeroed T in the arena. T must fit in a block and must not
// contain pointers into the Go heap (see the package comment).
func New[T any](a *Arena) *T {
	var zero T
	return (*T)(a.Alloc(unsafe.Sizeof(zero), unsafe.Alignof(zero)))
}

// A Marker remembers an arena position. See Top and Unwind.
type Marker struct {
	block int
	pos   int
}

// Top returns a marker for the current allocation position.
func (a *Arena) Top() Marker {
	return Marker{block: a.cur, pos: a.pos}
}

// Unwind rolls the allocation position back to a marker obtained from Top,
// discarding everything allocated since. Markers obey stack discipline: m
// must not be older than a marker already unwound past.
func (a *Arena) Unwind(m Marker) {
	if m.block > a.cur || (m.block == a.cur && m.pos > a.pos) {
		panic(errors.AssertionFailedf("unwinding arena to a position past its top"))
	}
	a.cur = m.block
	a.pos = m.pos
}

// Clear resets the arena to empty without releasing block memory, so
// subsequent allocations reuse the same blocks (and return the same
// addresses, given the same allocation sequence). All previously allocated
// values are invalidated.
func (a *Arena) Clear() {
	a.cur = 0
	a.pos = 0
}

// Release drops all blocks, returning their memory to the runtime. All
// previously allocated values are invalidated.
func (a *Arena) Release() {
	a.blocks = nil
	a.cur = 0
	a.pos = 0
}

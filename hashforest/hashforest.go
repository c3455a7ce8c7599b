// Copyright 2025 The Arbor Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package hashforest provides hash-consing construction of trees: building
// a subtree that is structurally identical to one already interned discards
// the new copy and returns the existing root, so equal subtrees are shared.
//
// The package is a client of the core, not part of it: it is built entirely
// from arena marks, traversal and the node surface arbor exports.
package hashforest

import (
	"encoding/binary"

	"github.com/arborlab/arbor"
	"github.com/arborlab/arbor/arena"
	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/swiss"
)

// Hasher supplies the payload half of structural identity. The forest
// handles kinds and tree shape itself; implementations only deal with the
// non-child data of individual nodes.
//
// Both methods see nodes of every kind the client builds; dispatch on kind
// with arbor.TryCast or a switch. EqualNodes is only called on two nodes of
// the same kind.
type Hasher interface {
	HashNode(d *xxhash.Digest, n *arbor.Node)
	EqualNodes(a, b *arbor.Node) bool
}

// Forest owns an arena plus an index of interned roots. Use New to
// construct one. Like a Tree, a Forest has a single owner and no internal
// locking.
type Forest struct {
	arena  arena.Arena
	hasher Hasher
	// index buckets interned roots by structural hash; collisions are
	// resolved by deep equality.
	index swiss.Map[uint64, []*arbor.Node]
	count int
}

// New returns an empty Forest deduplicating with h.
func New(h Hasher) *Forest {
	f := &Forest{hasher: h}
	f.index.Init(0)
	return f
}

// Build constructs a subtree and interns it. The build function allocates
// nodes from the passed arena (with arbor.New) and returns the unlinked
// root of what it built. If a structurally identical tree is already
// interned, everything the build function allocated is discarded (the
// arena is unwound to where it started) and the existing root is returned;
// otherwise the new root is interned and returned.
//
// The build function must allocate only from the passed arena and must not
// retain pointers to what it builds: on a duplicate, that storage is gone.
func (f *Forest) Build(build func(a *arena.Arena) *arbor.Node) *arbor.Node {
	mark := f.arena.Top()
	n := build(&f.arena)
	if n == nil {
		panic(errors.AssertionFailedf("build function returned no root"))
	}
	arbor.MakeRoot(n)

	h := f.structuralHash(n)
	bucket, _ := f.index.Get(h)
	for _, existing := range bucket {
		if f.structuralEqual(existing, n) {
			f.arena.Unwind(mark)
			return existing
		}
	}
	f.index.Put(h, append(bucket, n))
	f.count++
	return n
}

// Len returns the number of distinct interned roots.
func (f *Forest) Len() int {
	return f.count
}

// Clear drops the index and resets the arena, invalidating every interned
// node at once. Arena block memory is retained for reuse.
func (f *Forest) Clear() {
	f.index = swiss.Map[uint64, []*arbor.Node]{}
	f.index.Init(0)
	f.count = 0
	f.arena.Clear()
}

// structuralHash folds the subtree's shape (kinds and enter/exit/leaf
// structure) and per-node payloads into one digest.
func (f *Forest) structuralHash(n *arbor.Node) uint64 {
	d := xxhash.New()
	var buf [4]byte
	for t := arbor.Traverse(n); t.Valid(); t.Next() {
		binary.LittleEndian.PutUint32(buf[:], uint32(t.Node().Kind())<<2|uint32(t.Event()))
		_, _ = d.Write(buf[:])
		if t.Event() != arbor.Exit {
			f.hasher.HashNode(d, t.Node())
		}
	}
	return d.Sum64()
}

// structuralEqual zips two traversals, comparing shape, kinds and payloads.
func (f *Forest) structuralEqual(a, b *arbor.Node) bool {
	ta := arbor.Traverse(a)
	tb := arbor.Traverse(b)
	for ta.Valid() && tb.Valid() {
		if ta.Event() != tb.Event() || ta.Node().Kind() != tb.Node().Kind() {
			return false
		}
		if ta.Event() != arbor.Exit && !f.hasher.EqualNodes(ta.Node(), tb.Node()) {
			return false
		}
		ta.Next()
		tb.Next()
	}
	return ta.Valid() == tb.Valid()
}

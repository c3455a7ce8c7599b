// Copyright 2025 The Arbor Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package arbor

import (
	"github.com/arborlab/arbor/arena"
	"github.com/cockroachdb/errors"
)

// Tree owns an arena and a single root. The zero value is an empty tree
// ready for use. A Tree is single-owner: it must not be copied while in use,
// and mutation must not race with traversal (the caller serializes; there is
// no internal locking). Reading a built, unmutated tree from several
// goroutines is safe.
//
// Nodes are created through New using the tree's arena:
//
//	lit := arbor.New[Literal](t.Arena(), KindLiteral)
//
// and remain valid until Clear or until the tree is dropped.
type Tree struct {
	arena arena.Arena
	root  *Node
}

// Arena returns the arena owning all of the tree's node storage.
func (t *Tree) Arena() *arena.Arena {
	return &t.arena
}

// Root returns the tree's root node, or nil if none is set.
func (t *Tree) Root() *Node {
	return t.root
}

// SetRoot attaches an unlinked node as the tree's root.
func (t *Tree) SetRoot(root *Node) {
	MakeRoot(root)
	t.root = root
}

// Clear drops the root and resets the arena, invalidating every node at
// once. Arena block memory is retained for reuse.
func (t *Tree) Clear() {
	t.root = nil
	t.arena.Clear()
}

// Forest owns an arena and an ordered collection of roots. The roots are
// linked as siblings of one another, closed into a ring, so Siblings on a
// forest root yields the other roots in order. The zero value is an empty
// forest ready for use; the ownership rules match Tree's.
type Forest struct {
	arena arena.Arena
	first *Node
	last  *Node
	count int
}

// Arena returns the arena owning all of the forest's node storage.
func (f *Forest) Arena() *arena.Arena {
	return &f.arena
}

// InsertRoot appends an unlinked node to the forest's root ring.
func (f *Forest) InsertRoot(root *Node) {
	if root == nil {
		panic(errors.AssertionFailedf("inserting nil root"))
	}
	if root.IsLinked() {
		panic(errors.AssertionFailedf("inserting a root that is already linked in a tree"))
	}
	if f.first == nil {
		f.first = root
		root.setNextSibling(root)
	} else {
		f.last.setNextSibling(root)
		root.setNextSibling(f.first)
	}
	f.last = root
	f.count++
}

// Len returns the number of roots.
func (f *Forest) Len() int {
	return f.count
}

// RootIterator iterates over a forest's roots in insertion order.
type RootIterator struct {
	first, cur *Node
}

// Roots returns an iterator over the forest's roots in insertion order.
func (f *Forest) Roots() RootIterator {
	return RootIterator{first: f.first, cur: f.first}
}

// Valid returns true if the iterator is positioned on a root.
func (it *RootIterator) Valid() bool {
	return it.cur != nil
}

// Node returns the current root.
func (it *RootIterator) Node() *Node {
	return it.cur
}

// Next advances to the next root.
func (it *RootIterator) Next() {
	it.cur = it.cur.next
	if it.cur == it.first {
		it.cur = nil
	}
}

// Clear drops all roots and resets the arena, invalidating every node at
// once. Arena block memory is retained for reuse.
func (f *Forest) Clear() {
	f.first, f.last = nil, nil
	f.count = 0
	f.arena.Clear()
}

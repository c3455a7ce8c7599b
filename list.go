// Copyright 2025 The Arbor Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package arbor

import (
	"github.com/arborlab/arbor/internal/invariants"
	"github.com/cockroachdb/errors"
)

// List is the container shape for a variable-length, ordered sequence of
// children. Client node types embed it as their first field:
//
//	type Block struct {
//		arbor.List
//		// no Data32 use: the list claims it for the child count
//	}
//
// Children keep exactly the order established by InsertFront/InsertAfter.
type List struct {
	Container
}

// Len returns the number of children in O(1). The count lives in the Data32
// scratch field, which embedding types must therefore not use.
func (l *List) Len() int {
	return int(l.d32)
}

// Empty returns true if the list has no children.
func (l *List) Empty() bool {
	return l.firstChild == nil
}

// InsertFront inserts child as the new first child. The child must be
// unlinked.
func (l *List) InsertFront(child *Node) {
	if l.firstChild == nil {
		l.insertFirstChild(child)
	} else {
		l.insertChildFront(child)
	}
	l.d32++
	l.checkCount()
}

// InsertAfter inserts child immediately after pos, an existing child of l. A
// nil pos inserts at the front. The child must be unlinked.
func (l *List) InsertAfter(pos, child *Node) {
	l.insertChildAfter(pos, child)
	l.d32++
	l.checkCount()
}

// EraseAfter removes and returns the child following pos (the first child if
// pos is nil). The returned node is unlinked and reusable.
func (l *List) EraseAfter(pos *Node) *Node {
	n := l.eraseChildAfter(pos)
	l.d32--
	l.checkCount()
	return n
}

// ReplaceAfter replaces the child following pos (the first child if pos is
// nil) with newChild, returning the replaced child.
func (l *List) ReplaceAfter(pos, newChild *Node) *Node {
	return l.replaceChildAfter(pos, newChild)
}

// checkCount recounts the children under invariant builds; the walk is
// linear, so it runs nowhere else.
func (l *List) checkCount() {
	if !invariants.Enabled {
		return
	}
	n := 0
	for it := l.Children(); it.Valid(); it.Next() {
		n++
	}
	if n != l.Len() {
		panic(errors.AssertionFailedf("list count %d does not match %d linked children", l.Len(), n))
	}
}

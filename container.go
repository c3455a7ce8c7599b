// Copyright 2025 The Arbor Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package arbor

import (
	"unsafe"

	"github.com/cockroachdb/errors"
)

// Container is the base representation for nodes that own children. It adds
// the first-child pointer to Node; everything else about child storage is
// provided by the typed shapes (List, Optional, Fixed, Single, Binary) built
// on the splice primitives below.
//
// The splice primitives are deliberately unexported: a general erase in a
// singly-linked structure needs the predecessor, so only the shapes in this
// package, which know where their predecessors are, get to mutate the
// topology. This keeps the representation invariants local to one file.
type Container struct {
	Node
	firstChild *Node
}

func (c *Container) init(kind Kind) {
	c.Node.init(kind)
	c.meta |= metaContainer
	c.firstChild = nil
}

// FirstChild returns the container's first child, or nil if it has none.
func (c *Container) FirstChild() *Node {
	return c.firstChild
}

// HasChildren returns true if the container has at least one child.
func (c *Container) HasChildren() bool {
	return c.firstChild != nil
}

// containerOf reinterprets a node known to be a container. The container
// shapes all embed Container at offset zero, so this is a plain pointer
// reinterpretation.
func containerOf(n *Node) *Container {
	return (*Container)(unsafe.Pointer(n))
}

// ContainerOf returns the container view of n. It is an assertion failure if
// n is not a container node.
func ContainerOf(n *Node) *Container {
	if !n.IsContainer() {
		panic(errors.AssertionFailedf("node of kind %d is not a container", n.Kind()))
	}
	return containerOf(n)
}

// ChildIterator iterates over a container's children in insertion order.
type ChildIterator struct {
	cur *Node
}

// Children returns an iterator over the container's children, first to last.
func (c *Container) Children() ChildIterator {
	return ChildIterator{cur: c.firstChild}
}

// Valid returns true if the iterator is positioned on a child.
func (it *ChildIterator) Valid() bool {
	return it.cur != nil
}

// Node returns the current child.
func (it *ChildIterator) Node() *Node {
	return it.cur
}

// Next advances to the next child.
func (it *ChildIterator) Next() {
	if it.cur.NextIsParent() {
		// The last child points back at the container.
		it.cur = nil
	} else {
		it.cur = it.cur.next
	}
}

func assertUnlinked(child *Node) {
	if child == nil {
		panic(errors.AssertionFailedf("inserting nil child"))
	}
	if child.IsLinked() {
		panic(errors.AssertionFailedf("inserting a child of kind %d that is already linked in a tree", child.Kind()))
	}
}

// insertFirstChild makes child the sole child of c. Preconditions: c has no
// children and child is unlinked.
func (c *Container) insertFirstChild(child *Node) {
	assertUnlinked(child)
	if c.firstChild != nil {
		panic(errors.AssertionFailedf("insertFirstChild on a container that has children"))
	}
	child.setNextParent(&c.Node)
	c.firstChild = child
}

// insertChildFront prepends child. Preconditions: c already has at least one
// child and child is unlinked.
func (c *Container) insertChildFront(child *Node) {
	assertUnlinked(child)
	if c.firstChild == nil {
		panic(errors.AssertionFailedf("insertChildFront on a container without children"))
	}
	child.setNextSibling(c.firstChild)
	c.firstChild = child
}

// insertChildAfter inserts child immediately after pos, which must be an
// existing child of c. A nil pos means "before the first child". Only the
// predecessor is needed, so insertion anywhere is O(1).
func (c *Container) insertChildAfter(pos, child *Node) {
	if pos == nil {
		if c.firstChild == nil {
			c.insertFirstChild(child)
		} else {
			c.insertChildFront(child)
		}
		return
	}
	assertUnlinked(child)
	child.copyNext(pos)
	pos.setNextSibling(child)
}

// eraseChildAfter removes and returns the child immediately following pos
// (the first child if pos is nil). The removed child is unlinked and may be
// re-inserted elsewhere. Precondition: such a child exists.
func (c *Container) eraseChildAfter(pos *Node) *Node {
	var victim *Node
	if pos == nil {
		victim = c.firstChild
		if victim == nil {
			panic(errors.AssertionFailedf("erasing from a container without children"))
		}
		if victim.NextIsParent() {
			// Sole child.
			c.firstChild = nil
		} else {
			c.firstChild = victim.next
		}
	} else {
		if pos.NextIsParent() {
			panic(errors.AssertionFailedf("erasing after the last child"))
		}
		victim = pos.next
		pos.copyNext(victim)
	}
	victim.unlink()
	return victim
}

// replaceChildAfter erases the child following pos and inserts newChild in
// its place, returning the erased child.
func (c *Container) replaceChildAfter(pos, newChild *Node) *Node {
	old := c.eraseChildAfter(pos)
	c.insertChildAfter(pos, newChild)
	return old
}

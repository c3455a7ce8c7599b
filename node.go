// Copyright 2025 The Arbor Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package arbor

import "github.com/cockroachdb/errors"

// Node is the base representation shared by every tree node. Client node
// types embed Node (or one of the container shapes, which embed it
// themselves) as their first field and are allocated through New.
//
// A node carries exactly one structural pointer, next, interpreted as
// either:
//
//   - a pointer to the next sibling,
//   - a pointer to the parent, when this node is the last child,
//   - a pointer to itself, when this node is an unattached root, or
//   - nil, when the node is not linked into any tree.
//
// The sibling/parent discriminator, the container flag, the 2-bit color and
// the 15-bit kind are packed into a single meta word. Following next
// pointers from any linked node, substituting "parent's next" whenever the
// parent flag is set, always reaches the root. This encoding gives O(1)
// next-sibling navigation and O(depth) parent lookup with a single
// pointer-sized field of overhead.
//
// Data16 and Data32 are scratch fields available to the embedding type for
// small payloads. Container shapes claim some of them: List stores its child
// count in Data32 and Fixed stores its arity in Data16.
type Node struct {
	next *Node
	meta uint32
	d16  uint16
	d32  uint32
}

const (
	metaNextIsParent = uint32(1) << 0
	metaContainer    = uint32(1) << 1
	metaColorShift   = 2
	metaColorMask    = uint32(0b11) << metaColorShift
	metaKindShift    = 4
)

func (n *Node) base() *Node { return n }

func (n *Node) init(kind Kind) {
	if kind > MaxKind {
		panic(errors.AssertionFailedf("node kind %d exceeds MaxKind", kind))
	}
	n.next = nil
	n.meta = uint32(kind) << metaKindShift
}

// Kind returns the node's kind tag.
func (n *Node) Kind() Kind {
	return Kind(n.meta >> metaKindShift)
}

// IsContainer returns true if the node owns children.
func (n *Node) IsContainer() bool {
	return n.meta&metaContainer != 0
}

// IsLinked returns true if the node is part of a tree: it has a sibling or
// parent, or it is an attached root.
func (n *Node) IsLinked() bool {
	return n.next != nil
}

// NextNode returns the node the structural pointer references: the next
// sibling, or the parent if NextIsParent, or the node itself for a root.
// Returns nil for an unlinked node.
func (n *Node) NextNode() *Node {
	return n.next
}

// NextIsParent reports how NextNode is to be interpreted.
func (n *Node) NextIsParent() bool {
	return n.meta&metaNextIsParent != 0
}

// Parent returns the node's parent, walking the sibling chain until it hits
// the parent back-pointer; this is O(number of later siblings). An attached
// root is its own parent. Returns nil for an unlinked node, and for a forest
// root (whose sibling ring never reaches a parent pointer).
func (n *Node) Parent() *Node {
	if !n.IsLinked() {
		return nil
	}
	cur := n
	for !cur.NextIsParent() {
		cur = cur.next
		if cur == n {
			// Came back around without seeing a parent pointer: n is part of
			// a root ring.
			return nil
		}
	}
	return cur.next
}

// Color returns the node's scratch color.
func (n *Node) Color() Color {
	return Color((n.meta & metaColorMask) >> metaColorShift)
}

// SetColor sets the node's scratch color.
func (n *Node) SetColor(c Color) {
	n.meta = n.meta&^metaColorMask | uint32(c)<<metaColorShift&metaColorMask
}

// Data16 returns the 16-bit user scratch field.
func (n *Node) Data16() uint16 { return n.d16 }

// SetData16 sets the 16-bit user scratch field. Fixed-arity container shapes
// use this field for their arity; nodes embedding them must leave it alone.
func (n *Node) SetData16(v uint16) { n.d16 = v }

// Data32 returns the 32-bit user scratch field.
func (n *Node) Data32() uint32 { return n.d32 }

// SetData32 sets the 32-bit user scratch field. List uses this field for its
// child count; nodes embedding List must leave it alone.
func (n *Node) SetData32(v uint32) { n.d32 = v }

// setNextSibling points the structural pointer at a sibling.
func (n *Node) setNextSibling(sibling *Node) {
	n.next = sibling
	n.meta &^= metaNextIsParent
}

// setNextParent points the structural pointer at the parent.
func (n *Node) setNextParent(parent *Node) {
	n.next = parent
	n.meta |= metaNextIsParent
}

// copyNext takes over another node's structural pointer, including its
// sibling/parent interpretation.
func (n *Node) copyNext(from *Node) {
	n.next = from.next
	n.meta = n.meta&^metaNextIsParent | from.meta&metaNextIsParent
}

// unlink detaches the node so it can be re-inserted elsewhere.
func (n *Node) unlink() {
	n.next = nil
	n.meta &^= metaNextIsParent
}

// MakeRoot closes an unlinked node into the attached-root encoding, making
// it its own parent. Tree.SetRoot does this for the single-tree case; it is
// exported for collaborators (such as hash-consing layers) that own their
// roots directly.
func MakeRoot(n *Node) {
	if n == nil {
		panic(errors.AssertionFailedf("MakeRoot of nil node"))
	}
	if n.IsLinked() {
		panic(errors.AssertionFailedf("MakeRoot of a node already linked in a tree"))
	}
	n.setNextParent(n)
}

// siblingAdvance steps to the next node in the sibling ring, wrapping from
// the last child back to the first through the parent pointer.
func siblingAdvance(n *Node) *Node {
	if n.NextIsParent() {
		return containerOf(n.next).firstChild
	}
	return n.next
}

// SiblingIterator iterates over the other children of a node's parent, in
// ring order starting after the node itself. See Node.Siblings.
type SiblingIterator struct {
	start, cur *Node
}

// Siblings returns an iterator over the node's siblings, excluding the node
// itself. Children [a, b, c] yield [b, c] from a and [a, b] from c. The root
// of a tree has no siblings; the roots of a forest are siblings of one
// another. An unlinked node has no siblings.
func (n *Node) Siblings() SiblingIterator {
	it := SiblingIterator{start: n}
	if !n.IsLinked() {
		return it
	}
	if n.next == n {
		// Sole root: self-referential, no siblings.
		return it
	}
	it.cur = siblingAdvance(n)
	if it.cur == n {
		it.cur = nil
	}
	return it
}

// Valid returns true if the iterator is positioned on a sibling.
func (it *SiblingIterator) Valid() bool {
	return it.cur != nil
}

// Node returns the current sibling.
func (it *SiblingIterator) Node() *Node {
	return it.cur
}

// Next advances to the next sibling.
func (it *SiblingIterator) Next() {
	it.cur = siblingAdvance(it.cur)
	if it.cur == it.start {
		it.cur = nil
	}
}

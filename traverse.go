// Copyright 2025 The Arbor Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package arbor

import "github.com/cockroachdb/redact"

// Event marks a node's position in a pre/post-order walk.
type Event uint8

const (
	// Enter is emitted for a container node before its children.
	Enter Event = iota
	// Exit is emitted for a container node after its children.
	Exit
	// Leaf is emitted exactly once for a non-container node.
	Leaf
)

// String implements fmt.Stringer.
func (e Event) String() string {
	switch e {
	case Enter:
		return "enter"
	case Exit:
		return "exit"
	case Leaf:
		return "leaf"
	}
	return "invalid"
}

// SafeValue implements redact.SafeValue.
func (e Event) SafeValue() {}

var _ redact.SafeValue = Enter

// Traversal is a cursor over the pre/post-order event sequence of a subtree.
// It needs no auxiliary storage: the "last child points back to its parent"
// convention acts as the implicit return address, so the walk reconstructs
// enter/exit structure from single next pointers alone.
//
// A traversal is forward-only and may be abandoned at any point. Multiple
// traversals of the same subtree may run concurrently as long as nothing
// mutates the tree.
type Traversal struct {
	start *Node
	cur   *Node
	ev    Event
}

// Traverse starts a traversal of the subtree rooted at n. For a container
// the sequence begins with (Enter, n) and ends with (Exit, n); for a
// non-container it is the single element (Leaf, n). Traverse(nil) is an
// empty sequence.
//
//	for t := arbor.Traverse(tree.Root()); t.Valid(); t.Next() {
//		switch t.Event() { ... }
//	}
func Traverse(n *Node) Traversal {
	t := Traversal{start: n, cur: n}
	if n != nil {
		t.ev = enterOrLeaf(n)
	}
	return t
}

func enterOrLeaf(n *Node) Event {
	if n.IsContainer() {
		return Enter
	}
	return Leaf
}

// Valid returns true while the traversal has an event to report.
func (t *Traversal) Valid() bool {
	return t.cur != nil
}

// Event returns the current event.
func (t *Traversal) Event() Event {
	return t.ev
}

// Node returns the current node.
func (t *Traversal) Node() *Node {
	return t.cur
}

// Next advances to the next (event, node) pair.
func (t *Traversal) Next() {
	if t.cur == nil {
		return
	}
	if t.ev == Enter {
		if first := containerOf(t.cur).firstChild; first != nil {
			t.ev = enterOrLeaf(first)
			t.cur = first
		} else {
			// No children: exit the container without moving.
			t.ev = Exit
		}
		return
	}
	// The current event is Exit or Leaf; the subtree below t.cur is done.
	if t.cur == t.start {
		t.cur = nil
		return
	}
	next := t.cur.next
	if t.cur.NextIsParent() {
		// Back at a container after its last child.
		t.ev = Exit
	} else {
		t.ev = enterOrLeaf(next)
	}
	t.cur = next
}

// SkipChildren turns a pending Enter into the matching Exit, so the current
// container's children are never visited. It is a no-op on a Leaf event.
func (t *Traversal) SkipChildren() {
	if t.ev == Enter {
		t.ev = Exit
	}
}

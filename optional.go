// Copyright 2025 The Arbor Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package arbor

import "github.com/cockroachdb/errors"

// Optional is the container shape for zero or one child.
type Optional struct {
	Container
}

// HasChild returns true if a child is present.
func (o *Optional) HasChild() bool {
	return o.firstChild != nil
}

// Child returns the child, or nil if none is present.
func (o *Optional) Child() *Node {
	return o.firstChild
}

// InsertChild sets the child. Preconditions: no child is present and child
// is unlinked.
func (o *Optional) InsertChild(child *Node) {
	o.insertFirstChild(child)
}

// EraseChild removes and returns the child. Precondition: a child is
// present.
func (o *Optional) EraseChild() *Node {
	return o.eraseChildAfter(nil)
}

// ReplaceChild swaps the present child for newChild, returning the old one.
func (o *Optional) ReplaceChild(newChild *Node) *Node {
	if o.firstChild == nil {
		panic(errors.AssertionFailedf("replacing the child of an empty optional"))
	}
	old := o.eraseChildAfter(nil)
	o.insertFirstChild(newChild)
	return old
}

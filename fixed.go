// Copyright 2025 The Arbor Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package arbor

import "github.com/cockroachdb/errors"

// Fixed is the container shape for a fixed number of children, established
// once by Init and immutable in count thereafter; individual children are
// replaceable in place. Single and Binary are the common-arity facades.
//
// Child(i) and ReplaceChild locate their position by walking the sibling
// chain. The arity is a small compile-time constant in practice, so the walk
// costs the same handful of pointer hops a cached child array would avoid.
type Fixed struct {
	Container
}

// Init links the given children, in order, and fixes the arity. It must be
// called exactly once, before the node is used; all children must be
// non-nil and unlinked. The arity lives in the Data16 scratch field, which
// embedding types must therefore not use.
func (f *Fixed) Init(children ...*Node) {
	if f.firstChild != nil || f.d16 != 0 {
		panic(errors.AssertionFailedf("Init on an already initialized fixed-arity container"))
	}
	if len(children) == 0 {
		panic(errors.AssertionFailedf("fixed-arity container needs at least one child"))
	}
	f.insertChildAfter(nil, children[0])
	pos := children[0]
	for _, child := range children[1:] {
		f.insertChildAfter(pos, child)
		pos = child
	}
	f.d16 = uint16(len(children))
}

// Arity returns the number of children fixed by Init.
func (f *Fixed) Arity() int {
	return int(f.d16)
}

// Child returns the i-th child. It is an assertion failure if i is out of
// range.
func (f *Fixed) Child(i int) *Node {
	if i < 0 || i >= f.Arity() {
		panic(errors.AssertionFailedf("child index %d out of range [0, %d)", i, f.Arity()))
	}
	cur := f.firstChild
	for ; i > 0; i-- {
		cur = cur.next
	}
	return cur
}

// ReplaceChild replaces the i-th child with newChild, returning the old
// child (unlinked and reusable). newChild must be unlinked.
func (f *Fixed) ReplaceChild(i int, newChild *Node) *Node {
	var pos *Node
	if i != 0 {
		pos = f.Child(i - 1)
	} else if f.Arity() == 0 {
		panic(errors.AssertionFailedf("ReplaceChild on an uninitialized fixed-arity container"))
	}
	return f.replaceChildAfter(pos, newChild)
}

// Single is the container shape for exactly one child.
type Single struct {
	Fixed
}

// Init links the sole child. Must be called exactly once.
func (s *Single) Init(child *Node) {
	s.Fixed.Init(child)
}

// Child returns the sole child.
func (s *Single) Child() *Node {
	return s.Fixed.Child(0)
}

// ReplaceChild swaps the sole child for newChild, returning the old child.
func (s *Single) ReplaceChild(newChild *Node) *Node {
	return s.Fixed.ReplaceChild(0, newChild)
}

// Binary is the container shape for exactly two children, left and right.
type Binary struct {
	Fixed
}

// Init links the left and right children. Must be called exactly once.
func (b *Binary) Init(left, right *Node) {
	b.Fixed.Init(left, right)
}

// Left returns the left child.
func (b *Binary) Left() *Node {
	return b.Fixed.Child(0)
}

// Right returns the right child.
func (b *Binary) Right() *Node {
	return b.Fixed.Child(1)
}

// ReplaceLeft swaps the left child for newChild, returning the old child.
func (b *Binary) ReplaceLeft(newChild *Node) *Node {
	return b.Fixed.ReplaceChild(0, newChild)
}

// ReplaceRight swaps the right child for newChild, returning the old child.
func (b *Binary) ReplaceRight(newChild *Node) *Node {
	return b.Fixed.ReplaceChild(1, newChild)
}

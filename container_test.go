// Copyright 2025 The Arbor Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package arbor_test

import (
	"testing"

	"github.com/arborlab/arbor"
	"github.com/stretchr/testify/require"
)

func collectChildren(c *arbor.Container) []*arbor.Node {
	var res []*arbor.Node
	for it := c.Children(); it.Valid(); it.Next() {
		res = append(res, it.Node())
	}
	return res
}

func listValues(l *arbor.List) []int64 {
	var res []int64
	for it := l.Children(); it.Valid(); it.Next() {
		res = append(res, arbor.Cast[literal](it.Node()).value)
	}
	return res
}

func TestListInsert(t *testing.T) {
	var tr arbor.Tree
	b := arbor.New[block](tr.Arena(), kindBlock)
	require.True(t, b.Empty())
	require.Zero(t, b.Len())

	// InsertFront prepends, so insertion order reverses.
	for _, v := range []int64{1, 2, 3} {
		b.InsertFront(&newLiteral(tr.Arena(), v).Node)
	}
	require.Equal(t, 3, b.Len())
	require.False(t, b.Empty())
	require.Equal(t, []int64{3, 2, 1}, listValues(&b.List))

	// InsertAfter a middle child.
	mid := b.FirstChild().NextNode()
	b.InsertAfter(mid, &newLiteral(tr.Arena(), 9).Node)
	require.Equal(t, []int64{3, 2, 9, 1}, listValues(&b.List))
	require.Equal(t, 4, b.Len())

	// InsertAfter(nil) is InsertFront.
	b.InsertAfter(nil, &newLiteral(tr.Arena(), 7).Node)
	require.Equal(t, []int64{7, 3, 2, 9, 1}, listValues(&b.List))
}

func TestListErase(t *testing.T) {
	var tr arbor.Tree
	b := arbor.New[block](tr.Arena(), kindBlock)
	var nodes []*arbor.Node
	for _, v := range []int64{1, 2, 3} {
		n := &newLiteral(tr.Arena(), v).Node
		nodes = append(nodes, n)
		b.InsertFront(n)
	}
	// List is now [3, 2, 1].
	erased := b.EraseAfter(nil)
	require.Equal(t, nodes[2], erased)
	require.False(t, erased.IsLinked())
	require.Equal(t, []int64{2, 1}, listValues(&b.List))
	require.Equal(t, 2, b.Len())

	// Erase the last child; its predecessor takes over the parent pointer.
	b.EraseAfter(b.FirstChild())
	require.Equal(t, []int64{2}, listValues(&b.List))
	require.True(t, b.FirstChild().NextIsParent())

	b.EraseAfter(nil)
	require.True(t, b.Empty())
	require.Zero(t, b.Len())
	require.Panics(t, func() { b.EraseAfter(nil) })
}

func TestListEraseReinsert(t *testing.T) {
	var tr arbor.Tree
	b := arbor.New[block](tr.Arena(), kindBlock)
	x := newLiteral(tr.Arena(), 1)
	y := newLiteral(tr.Arena(), 2)
	appendChildren(&b.List, &x.Node, &y.Node)

	// An erased node is fully unlinked and may be inserted elsewhere.
	erased := b.EraseAfter(nil)
	require.Equal(t, &x.Node, erased)
	b2 := arbor.New[block](tr.Arena(), kindBlock)
	b2.InsertFront(erased)
	require.Equal(t, []int64{1}, listValues(&b2.List))
	require.Equal(t, []int64{2}, listValues(&b.List))
}

func TestListReplace(t *testing.T) {
	var tr arbor.Tree
	b := arbor.New[block](tr.Arena(), kindBlock)
	x := newLiteral(tr.Arena(), 1)
	y := newLiteral(tr.Arena(), 2)
	z := newLiteral(tr.Arena(), 3)
	appendChildren(&b.List, &x.Node, &y.Node, &z.Node)

	old := b.ReplaceAfter(&x.Node, &newLiteral(tr.Arena(), 9).Node)
	require.Equal(t, &y.Node, old)
	require.False(t, old.IsLinked())
	require.Equal(t, []int64{1, 9, 3}, listValues(&b.List))
	require.Equal(t, 3, b.Len())
}

func TestListInsertLinkedPanics(t *testing.T) {
	var tr arbor.Tree
	b := arbor.New[block](tr.Arena(), kindBlock)
	x := newLiteral(tr.Arena(), 1)
	b.InsertFront(&x.Node)
	require.Panics(t, func() { b.InsertFront(&x.Node) })
	require.Panics(t, func() { b.InsertFront(nil) })
}

func TestOptional(t *testing.T) {
	var tr arbor.Tree
	o := arbor.New[initExpr](tr.Arena(), kindInit)
	require.False(t, o.HasChild())
	require.Nil(t, o.Child())

	x := newLiteral(tr.Arena(), 1)
	o.InsertChild(&x.Node)
	require.True(t, o.HasChild())
	require.Equal(t, &x.Node, o.Child())
	require.Equal(t, &o.Node, x.Parent())
	require.Panics(t, func() { o.InsertChild(&newLiteral(tr.Arena(), 2).Node) })

	y := newLiteral(tr.Arena(), 2)
	old := o.ReplaceChild(&y.Node)
	require.Equal(t, &x.Node, old)
	require.Equal(t, &y.Node, o.Child())

	erased := o.EraseChild()
	require.Equal(t, &y.Node, erased)
	require.False(t, o.HasChild())
	require.Panics(t, func() { o.EraseChild() })
	require.Panics(t, func() { o.ReplaceChild(&x.Node) })
}

func TestFixed(t *testing.T) {
	var tr arbor.Tree
	f := arbor.New[tuple](tr.Arena(), kindTuple)
	require.Zero(t, f.Arity())

	x := newLiteral(tr.Arena(), 1)
	y := newLiteral(tr.Arena(), 2)
	z := newLiteral(tr.Arena(), 3)
	f.Init(&x.Node, &y.Node, &z.Node)
	require.Equal(t, 3, f.Arity())
	require.Equal(t, &x.Node, f.Child(0))
	require.Equal(t, &y.Node, f.Child(1))
	require.Equal(t, &z.Node, f.Child(2))
	require.Panics(t, func() { f.Child(3) })
	require.Panics(t, func() { f.Child(-1) })
	require.Panics(t, func() { f.Init(&newLiteral(tr.Arena(), 4).Node) })

	w := newLiteral(tr.Arena(), 9)
	old := f.ReplaceChild(1, &w.Node)
	require.Equal(t, &y.Node, old)
	require.Equal(t, &w.Node, f.Child(1))
	require.Equal(t, 3, f.Arity())

	// Replacing the last child preserves the parent back-pointer.
	f.ReplaceChild(2, &newLiteral(tr.Arena(), 8).Node)
	require.Equal(t, &f.Node, f.Child(2).Parent())
}

func TestFixedInitEmpty(t *testing.T) {
	var tr arbor.Tree
	f := arbor.New[tuple](tr.Arena(), kindTuple)
	require.Panics(t, func() { f.Init() })
}

func TestSingle(t *testing.T) {
	var tr arbor.Tree
	u := arbor.New[unary](tr.Arena(), kindUnary)
	x := newLiteral(tr.Arena(), 1)
	u.Init(&x.Node)
	require.Equal(t, 1, u.Arity())
	require.Equal(t, &x.Node, u.Child())

	y := newLiteral(tr.Arena(), 2)
	require.Equal(t, &x.Node, u.ReplaceChild(&y.Node))
	require.Equal(t, &y.Node, u.Child())
}

func TestBinary(t *testing.T) {
	var tr arbor.Tree
	p := arbor.New[pair](tr.Arena(), kindPair)
	l := newLiteral(tr.Arena(), 1)
	r := newLiteral(tr.Arena(), 2)
	p.Init(&l.Node, &r.Node)
	require.Equal(t, 2, p.Arity())
	require.Equal(t, &l.Node, p.Left())
	require.Equal(t, &r.Node, p.Right())

	nl := newLiteral(tr.Arena(), 3)
	nr := newLiteral(tr.Arena(), 4)
	require.Equal(t, &l.Node, p.ReplaceLeft(&nl.Node))
	require.Equal(t, &r.Node, p.ReplaceRight(&nr.Node))
	require.Equal(t, &nl.Node, p.Left())
	require.Equal(t, &nr.Node, p.Right())
	require.Equal(t, &p.Node, nr.Parent())
}

func TestContainerOf(t *testing.T) {
	var tr arbor.Tree
	b := arbor.New[block](tr.Arena(), kindBlock)
	x := newLiteral(tr.Arena(), 1)
	b.InsertFront(&x.Node)

	c := arbor.ContainerOf(&b.Node)
	require.Equal(t, &x.Node, c.FirstChild())
	require.Equal(t, []*arbor.Node{&x.Node}, collectChildren(c))

	require.Panics(t, func() { arbor.ContainerOf(&x.Node) })
}

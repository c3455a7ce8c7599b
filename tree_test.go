// Copyright 2025 The Arbor Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package arbor_test

import (
	"testing"

	"github.com/arborlab/arbor"
	"github.com/stretchr/testify/require"
)

func TestTree(t *testing.T) {
	var tr arbor.Tree
	require.Nil(t, tr.Root())

	b := arbor.New[block](tr.Arena(), kindBlock)
	b.InsertFront(&newLiteral(tr.Arena(), 1).Node)
	tr.SetRoot(&b.Node)
	require.Equal(t, &b.Node, tr.Root())
	require.True(t, tr.Root().IsLinked())

	tr.Clear()
	require.Nil(t, tr.Root())
}

func TestTreeClearReusesStorage(t *testing.T) {
	var tr arbor.Tree
	first := newLiteral(tr.Arena(), 1)
	tr.Clear()
	second := newLiteral(tr.Arena(), 2)
	// Same allocation sequence after Clear lands on the same storage.
	require.Same(t, first, second)
	require.Equal(t, int64(2), second.value)
}

func TestForest(t *testing.T) {
	var f arbor.Forest
	require.Zero(t, f.Len())

	r1 := newLiteral(f.Arena(), 1)
	r2 := arbor.New[block](f.Arena(), kindBlock)
	r3 := newIdent(f.Arena())
	f.InsertRoot(&r1.Node)
	f.InsertRoot(&r2.Node)
	f.InsertRoot(&r3.Node)
	require.Equal(t, 3, f.Len())

	var roots []*arbor.Node
	for it := f.Roots(); it.Valid(); it.Next() {
		roots = append(roots, it.Node())
	}
	require.Equal(t, []*arbor.Node{&r1.Node, &r2.Node, &r3.Node}, roots)

	// Forest roots are siblings of one another, in ring order.
	require.Equal(t, []*arbor.Node{&r3.Node, &r1.Node}, collectSiblings(&r2.Node))

	// A forest root has no parent.
	require.Nil(t, r2.Parent())

	require.Panics(t, func() { f.InsertRoot(&r1.Node) })
	require.Panics(t, func() { f.InsertRoot(nil) })

	f.Clear()
	require.Zero(t, f.Len())
	it := f.Roots()
	require.False(t, it.Valid())
}

func TestForestSingleRoot(t *testing.T) {
	var f arbor.Forest
	r := newLiteral(f.Arena(), 1)
	f.InsertRoot(&r.Node)
	require.Equal(t, 1, f.Len())
	// A sole root is its own sibling ring; the iterator excludes the node
	// itself, so it sees nothing.
	require.Empty(t, collectSiblings(&r.Node))
	require.Nil(t, r.Parent())
}

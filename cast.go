// Copyright 2025 The Arbor Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package arbor

import (
	"unsafe"

	"github.com/arborlab/arbor/arena"
	"github.com/arborlab/arbor/internal/invariants"
	"github.com/cockroachdb/errors"
)

// nodeObj is satisfied by every type that embeds Node (directly or through a
// container shape) as promoted methods. It is unexported so the embedding is
// the only way in.
type nodeObj interface {
	base() *Node
	init(Kind)
}

// NodeType is the one-method contract a client node type implements to
// declare which kind (or set of kinds) it represents:
//
//	func (*Literal) MatchesKind(k ast.Kind) bool { return k == KindLiteral }
//
// Concrete types match exactly one kind; abstract types match a set,
// typically via KindRange.Contains or `return true` for a catch-all.
type NodeType interface {
	MatchesKind(Kind) bool
}

// Ref constrains PT to be a pointer to a client node type: a *T that embeds
// Node at offset zero and declares its kind(s).
type Ref[T any] interface {
	*T
	nodeObj
	NodeType
}

// New allocates and initializes a node of type T in the given arena, tagged
// with the given kind, and returns it unlinked. It is the only way nodes
// come into existence; the arena is normally obtained from the owning Tree
// or Forest.
//
// T must embed Node or a container shape as its first field, must match the
// given kind, and, like everything placed in an arena, must not contain
// Go-heap pointers. Nodes are never destroyed individually; they vanish with
// the arena.
func New[T any, PT Ref[T]](a *arena.Arena, kind Kind) PT {
	p := PT(arena.New[T](a))
	n := p.base()
	if invariants.Enabled && unsafe.Pointer(n) != unsafe.Pointer((*T)(p)) {
		panic(errors.AssertionFailedf("node type %T must embed its node base as the first field", p))
	}
	p.init(kind)
	if !p.MatchesKind(kind) {
		panic(errors.AssertionFailedf("node type %T does not match kind %d", p, kind))
	}
	return p
}

// Is returns true if n's runtime kind matches the kind (or kind set) that T
// statically declares.
func Is[T any, PT Ref[T]](n *Node) bool {
	var zero T
	return PT(&zero).MatchesKind(n.Kind())
}

// Cast reinterprets n as a *T. The kind match is asserted: casting a node of
// the wrong kind is a fatal contract violation, never a silent
// misinterpretation. Use TryCast where a mismatch is an expected outcome.
func Cast[T any, PT Ref[T]](n *Node) PT {
	if !Is[T, PT](n) {
		panic(errors.AssertionFailedf("cannot cast node of kind %d to %T", n.Kind(), (*T)(nil)))
	}
	return PT((*T)(unsafe.Pointer(n)))
}

// TryCast reinterprets n as a *T if its kind matches, and returns nil
// otherwise. It has no side effects.
func TryCast[T any, PT Ref[T]](n *Node) PT {
	if !Is[T, PT](n) {
		return nil
	}
	return PT((*T)(unsafe.Pointer(n)))
}

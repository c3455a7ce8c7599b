// Copyright 2025 The Arbor Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package arbor is an intrusive-tree toolkit for building abstract syntax
// trees and similar n-ary trees with minimal per-node overhead.
//
// Every node carries a 15-bit kind tag, two small scratch fields, a 2-bit
// color and a single structural pointer that serves as next-sibling link,
// parent back-reference (for the last child) or self-reference (for an
// attached root). Container shapes add only a first-child pointer. That is
// the entire representation: sibling navigation is O(1), parent lookup is
// O(depth), and a full pre/post-order traversal needs no stack.
//
// Nodes live in a bump-allocating arena owned by a Tree or Forest and are
// never freed individually; clearing the owner invalidates them all at
// once. Client node types embed one of Node, List, Optional, Fixed, Single
// or Binary as their first field, declare their kind with a one-method
// MatchesKind contract, and are created through New:
//
//	type Literal struct {
//		arbor.Node
//		Value int64
//	}
//
//	func (*Literal) MatchesKind(k arbor.Kind) bool { return k == KindLiteral }
//
//	lit := arbor.New[Literal](tree.Arena(), KindLiteral)
//
// Typed access goes through Cast and TryCast; whole-tree processing through
// Traverse or the handler-based Visit family.
//
// Nothing in this package locks: a tree has one owner, and only fully built,
// unmutated trees may be shared across goroutines (read-only).
package arbor

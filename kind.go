// Copyright 2025 The Arbor Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package arbor

import "github.com/cockroachdb/redact"

// Kind is the small integer tag identifying a node's concrete type. A tree's
// node kinds are declared by the client as constants of this type; values
// must not exceed MaxKind. A node's kind is fixed at construction.
type Kind uint16

// MaxKind is the largest representable kind value (15 usable bits).
const MaxKind Kind = 1<<15 - 1

// SafeValue implements redact.SafeValue.
func (k Kind) SafeValue() {}

// KindRange describes a contiguous, inclusive range of kinds. It is the
// typical way an "abstract" node type declares the set of concrete kinds it
// stands for:
//
//	var exprKinds = arbor.KindRange{First: KindAdd, Last: KindLiteral}
//
//	func (*Expr) MatchesKind(k arbor.Kind) bool { return exprKinds.Contains(k) }
type KindRange struct {
	First, Last Kind
}

// Contains returns true if k is within the range.
func (r KindRange) Contains(k Kind) bool {
	return r.First <= k && k <= r.Last
}

// Color is general-purpose per-node scratch state for tree algorithms such
// as cycle detection or marking. The core never touches a node's color; its
// meaning is up to the algorithm using it.
type Color uint8

const (
	Uncolored Color = iota
	Black
	Grey
	White
)

// String implements fmt.Stringer.
func (c Color) String() string {
	switch c {
	case Uncolored:
		return "uncolored"
	case Black:
		return "black"
	case Grey:
		return "grey"
	case White:
		return "white"
	}
	return "invalid"
}

// SafeValue implements redact.SafeValue.
func (c Color) SafeValue() {}

var (
	_ redact.SafeValue = Kind(0)
	_ redact.SafeValue = Uncolored
)

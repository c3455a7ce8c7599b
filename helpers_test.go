// Copyright 2025 The Arbor Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package arbor_test

import (
	"github.com/arborlab/arbor"
	"github.com/arborlab/arbor/arena"
)

// A miniature expression AST exercising every container shape.
const (
	kindInvalid arbor.Kind = iota
	kindLiteral
	kindIdent
	kindBlock
	kindInit
	kindUnary
	kindPair
	kindTuple
)

type literal struct {
	arbor.Node
	value int64
}

func (*literal) MatchesKind(k arbor.Kind) bool { return k == kindLiteral }

type ident struct {
	arbor.Node
}

func (*ident) MatchesKind(k arbor.Kind) bool { return k == kindIdent }

// block is a variable-length statement sequence.
type block struct {
	arbor.List
}

func (*block) MatchesKind(k arbor.Kind) bool { return k == kindBlock }

// initExpr carries an optional initializer.
type initExpr struct {
	arbor.Optional
}

func (*initExpr) MatchesKind(k arbor.Kind) bool { return k == kindInit }

type unary struct {
	arbor.Single
}

func (*unary) MatchesKind(k arbor.Kind) bool { return k == kindUnary }

type pair struct {
	arbor.Binary
}

func (*pair) MatchesKind(k arbor.Kind) bool { return k == kindPair }

type tuple struct {
	arbor.Fixed
}

func (*tuple) MatchesKind(k arbor.Kind) bool { return k == kindTuple }

// expr is the abstract type covering both leaf expression kinds.
type expr struct {
	arbor.Node
}

var exprKinds = arbor.KindRange{First: kindLiteral, Last: kindIdent}

func (*expr) MatchesKind(k arbor.Kind) bool { return exprKinds.Contains(k) }

// anyNode is a catch-all abstract type.
type anyNode struct {
	arbor.Node
}

func (*anyNode) MatchesKind(arbor.Kind) bool { return true }

func newLiteral(a *arena.Arena, v int64) *literal {
	lit := arbor.New[literal](a, kindLiteral)
	lit.value = v
	return lit
}

func newIdent(a *arena.Arena) *ident {
	return arbor.New[ident](a, kindIdent)
}

// appendChildren fills a list left to right.
func appendChildren(l *arbor.List, children ...*arbor.Node) {
	var pos *arbor.Node
	for _, c := range children {
		l.InsertAfter(pos, c)
		pos = c
	}
}

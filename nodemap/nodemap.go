// Copyright 2025 The Arbor Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package nodemap provides hash maps and sets keyed by node pointers.
package nodemap

import (
	"unsafe"

	"github.com/arborlab/arbor"
	"github.com/cockroachdb/swiss"
)

// nodeHash hashes the pointer bits directly: the low bits are always zero
// (alignment), so they are dropped, and the rest is mixed with a Fibonacci
// constant.
func nodeHash[V any](k **arbor.Node, seed uintptr) uintptr {
	const m = 11400714819323198485
	h := uint64(uintptr(unsafe.Pointer(*k))) >> 3
	return uintptr((h ^ uint64(seed)) * m)
}

// Map maps node pointers to values of type V. Use New to construct one.
//
// The map holds plain node pointers: it neither owns the nodes nor keeps
// them alive past their arena, and erased-but-unlinked nodes remain
// perfectly good keys.
type Map[V any] struct {
	m swiss.Map[*arbor.Node, V]
}

// New returns an empty Map.
func New[V any]() *Map[V] {
	m := &Map[V]{}
	m.m.Init(0, swiss.WithHash[*arbor.Node, V](nodeHash[V]))
	return m
}

// Insert adds n with value v and returns true; if n is already present it
// returns false and leaves the existing value untouched.
func (m *Map[V]) Insert(n *arbor.Node, v V) bool {
	if _, ok := m.m.Get(n); ok {
		return false
	}
	m.m.Put(n, v)
	return true
}

// Set adds n with value v, overwriting any existing value.
func (m *Map[V]) Set(n *arbor.Node, v V) {
	m.m.Put(n, v)
}

// Lookup returns the value stored for n.
func (m *Map[V]) Lookup(n *arbor.Node) (V, bool) {
	return m.m.Get(n)
}

// Contains returns true if n is present.
func (m *Map[V]) Contains(n *arbor.Node) bool {
	_, ok := m.m.Get(n)
	return ok
}

// Remove deletes n, returning true if it was present.
func (m *Map[V]) Remove(n *arbor.Node) bool {
	if _, ok := m.m.Get(n); !ok {
		return false
	}
	m.m.Delete(n)
	return true
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return m.m.Len()
}

// All calls fn for every entry until fn returns false. Iteration order is
// unspecified.
func (m *Map[V]) All(fn func(n *arbor.Node, v V) bool) {
	m.m.All(fn)
}

// Set is a set of node pointers. Use NewSet to construct one.
type Set struct {
	m Map[struct{}]
}

// NewSet returns an empty Set.
func NewSet() *Set {
	s := &Set{}
	s.m.m.Init(0, swiss.WithHash[*arbor.Node, struct{}](nodeHash[struct{}]))
	return s
}

// Insert adds n, returning true if it was not already present.
func (s *Set) Insert(n *arbor.Node) bool {
	return s.m.Insert(n, struct{}{})
}

// Contains returns true if n is present.
func (s *Set) Contains(n *arbor.Node) bool {
	return s.m.Contains(n)
}

// Remove deletes n, returning true if it was present.
func (s *Set) Remove(n *arbor.Node) bool {
	return s.m.Remove(n)
}

// Len returns the number of members.
func (s *Set) Len() int {
	return s.m.Len()
}

// All calls fn for every member until fn returns false. Iteration order is
// unspecified.
func (s *Set) All(fn func(n *arbor.Node) bool) {
	s.m.All(func(n *arbor.Node, _ struct{}) bool { return fn(n) })
}

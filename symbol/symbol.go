// Copyright 2025 The Arbor Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Package symbol provides a deduplicating string interner producing dense
// Symbol handles, and a symbol table mapping Symbols to declarations.
//
// Identifiers in a syntax tree repeat constantly; interning stores each
// spelling once and turns it into a 4-byte, pointer-free handle that can
// live directly in arena-allocated node payloads and compares in one
// instruction.
package symbol

import (
	"strings"
	"unsafe"

	"github.com/arborlab/arbor/arena"
	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/swiss"
)

// Symbol is an interned string handle. Symbols from the same Interner
// compare equal exactly when their spellings are equal. The zero Symbol is
// None.
type Symbol uint32

// None is the invalid Symbol; no interned string maps to it.
const None Symbol = 0

// IsValid returns true for any Symbol produced by an Interner.
func (s Symbol) IsValid() bool {
	return s != None
}

func stringHash(k *string, seed uintptr) uintptr {
	return uintptr(xxhash.Sum64String(*k) ^ uint64(seed))
}

// Interner deduplicates strings into Symbols. Use NewInterner to construct
// one. String bytes are copied into an arena owned by the interner, so
// callers may pass transient strings (e.g. sub-slices of an input buffer).
type Interner struct {
	arena arena.Arena
	// strs[i] is the spelling of Symbol(i+1), aliasing arena storage.
	strs  []string
	index swiss.Map[string, Symbol]
}

// NewInterner returns an empty Interner.
func NewInterner() *Interner {
	i := &Interner{}
	i.index.Init(0, swiss.WithHash[string, Symbol](stringHash))
	return i
}

// Intern returns the Symbol for s, allocating one if s has not been seen
// before.
func (i *Interner) Intern(s string) Symbol {
	if sym, ok := i.index.Get(s); ok {
		return sym
	}
	owned := i.copyString(s)
	i.strs = append(i.strs, owned)
	sym := Symbol(len(i.strs))
	i.index.Put(owned, sym)
	return sym
}

// Lookup returns the Symbol for s if it is already interned, and None
// otherwise.
func (i *Interner) Lookup(s string) Symbol {
	sym, ok := i.index.Get(s)
	if !ok {
		return None
	}
	return sym
}

// Get returns the spelling of sym. It is an assertion failure to pass None
// or a Symbol from another Interner.
func (i *Interner) Get(sym Symbol) string {
	if sym == None || int(sym) > len(i.strs) {
		panic(errors.AssertionFailedf("symbol %d is not part of this interner", uint32(sym)))
	}
	return i.strs[sym-1]
}

// Len returns the number of distinct interned strings.
func (i *Interner) Len() int {
	return len(i.strs)
}

// copyString copies s into interner-owned storage. Spellings bigger than an
// arena block are rare enough to fall back to the Go heap.
func (i *Interner) copyString(s string) string {
	if len(s) == 0 {
		return ""
	}
	if len(s) > arena.BlockSize {
		return strings.Clone(s)
	}
	b := i.arena.AllocBytes(len(s))
	copy(b, s)
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Table maps Symbols to declarations (or any other per-symbol value). Use
// NewTable to construct one.
type Table[V any] struct {
	m swiss.Map[Symbol, V]
}

// NewTable returns an empty Table.
func NewTable[V any]() *Table[V] {
	t := &Table[V]{}
	t.m.Init(0)
	return t
}

// Insert adds sym with value v and returns true; if sym is already present
// it returns false and leaves the existing value untouched (the caller
// decides how to handle redeclaration).
func (t *Table[V]) Insert(sym Symbol, v V) bool {
	if _, ok := t.m.Get(sym); ok {
		return false
	}
	t.m.Put(sym, v)
	return true
}

// Set adds sym with value v, overwriting any existing value.
func (t *Table[V]) Set(sym Symbol, v V) {
	t.m.Put(sym, v)
}

// Lookup returns the value stored for sym.
func (t *Table[V]) Lookup(sym Symbol) (V, bool) {
	return t.m.Get(sym)
}

// Remove deletes sym, returning true if it was present.
func (t *Table[V]) Remove(sym Symbol) bool {
	if _, ok := t.m.Get(sym); !ok {
		return false
	}
	t.m.Delete(sym)
	return true
}

// Len returns the number of entries.
func (t *Table[V]) Len() int {
	return t.m.Len()
}

// All calls fn for every entry until fn returns false. Iteration order is
// unspecified.
func (t *Table[V]) All(fn func(sym Symbol, v V) bool) {
	t.m.All(fn)
}

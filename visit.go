// Copyright 2025 The Arbor Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package arbor

import (
	"unsafe"

	"github.com/cockroachdb/errors"
)

// A Handler pairs a node type's kind predicate with a typed callback. Build
// handlers with On, OnEvent, OnEnter, OnExit or OnChildren and pass them to
// Visit, VisitAll, Dispatch or DispatchAll.
//
// For each visited node, the first handler in the list whose node type
// matches the node's kind claims it, at every event, regardless of whether
// its callback fires for that event. Order is therefore significant: put
// handlers for narrow (concrete) types before handlers for wide (abstract)
// ones, or the wide handler swallows every matching node first.
type Handler struct {
	matches func(Kind) bool
	// invoke fires the callback if the event applies. It returns true if the
	// children of the current node should be skipped.
	invoke func(r *visitRun, ev Event, n *Node) bool
}

func matcher[T any, PT Ref[T]]() func(Kind) bool {
	var zero T
	return PT(&zero).MatchesKind
}

func cast[T any, PT Ref[T]](n *Node) PT {
	return PT((*T)(unsafe.Pointer(n)))
}

// On builds a handler invoked once "going in": on the Enter event of a
// matching container node or the Leaf event of a matching non-container.
func On[T any, PT Ref[T]](fn func(PT)) Handler {
	return Handler{
		matches: matcher[T, PT](),
		invoke: func(_ *visitRun, ev Event, n *Node) bool {
			if ev != Exit {
				fn(cast[T, PT](n))
			}
			return false
		},
	}
}

// OnEvent builds a handler invoked on every event of a matching node: Enter
// and Exit for containers, Leaf for the rest.
func OnEvent[T any, PT Ref[T]](fn func(Event, PT)) Handler {
	return Handler{
		matches: matcher[T, PT](),
		invoke: func(_ *visitRun, ev Event, n *Node) bool {
			fn(ev, cast[T, PT](n))
			return false
		},
	}
}

// OnEnter builds a handler invoked only on the Enter event of a matching
// container node.
func OnEnter[T any, PT Ref[T]](fn func(PT)) Handler {
	return Handler{
		matches: matcher[T, PT](),
		invoke: func(_ *visitRun, ev Event, n *Node) bool {
			if ev == Enter {
				fn(cast[T, PT](n))
			}
			return false
		},
	}
}

// OnExit builds a handler invoked only on the Exit event of a matching
// container node.
func OnExit[T any, PT Ref[T]](fn func(PT)) Handler {
	return Handler{
		matches: matcher[T, PT](),
		invoke: func(_ *visitRun, ev Event, n *Node) bool {
			if ev == Exit {
				fn(cast[T, PT](n))
			}
			return false
		},
	}
}

// OnChildren builds a handler invoked once "going in" on a matching node.
// The walk does not descend into the node's children on its own: the
// callback decides, calling the ChildVisitor on whichever children it wants
// visited (each call re-runs the whole handler list on that child's
// subtree). Children not visited through the handle are not visited at all.
func OnChildren[T any, PT Ref[T]](fn func(ChildVisitor, PT)) Handler {
	return Handler{
		matches: matcher[T, PT](),
		invoke: func(r *visitRun, ev Event, n *Node) bool {
			if ev != Exit {
				fn(ChildVisitor{run: r}, cast[T, PT](n))
			}
			return ev == Enter
		},
	}
}

// ChildVisitor re-dispatches the visitation that produced it onto a specific
// node, typically a child of the node an OnChildren callback received.
type ChildVisitor struct {
	run *visitRun
}

// Visit runs the full handler-list dispatch over the subtree rooted at n.
func (cv ChildVisitor) Visit(n *Node) {
	cv.run.walk(n)
}

type visitRun struct {
	handlers []Handler
	strict   bool
}

func (r *visitRun) match(k Kind) *Handler {
	for i := range r.handlers {
		if r.handlers[i].matches(k) {
			return &r.handlers[i]
		}
	}
	return nil
}

func (r *visitRun) walk(start *Node) {
	for t := Traverse(start); t.Valid(); t.Next() {
		if skip := r.dispatch(t.Event(), t.Node()); skip {
			t.SkipChildren()
		}
	}
}

func (r *visitRun) dispatch(ev Event, n *Node) (skipChildren bool) {
	h := r.match(n.Kind())
	if h == nil {
		if r.strict {
			panic(errors.AssertionFailedf("no handler matches node of kind %d", n.Kind()))
		}
		return false
	}
	return h.invoke(r, ev, n)
}

// Visit walks the subtree rooted at n and, for each event, invokes the
// first matching handler. Nodes no handler matches are silently passed over;
// use VisitAll where that would hide a bug.
func Visit(n *Node, handlers ...Handler) {
	r := visitRun{handlers: handlers}
	r.walk(n)
}

// VisitAll is Visit with exhaustiveness enforced: a visited node that no
// handler matches is an assertion failure. Prefer it whenever the handler
// list is meant to cover every kind in the tree.
func VisitAll(n *Node, handlers ...Handler) {
	r := visitRun{handlers: handlers, strict: true}
	r.walk(n)
}

// VisitTree is shorthand for Visit(t.Root(), handlers...).
func VisitTree(t *Tree, handlers ...Handler) {
	Visit(t.Root(), handlers...)
}

// VisitTreeAll is shorthand for VisitAll(t.Root(), handlers...).
func VisitTreeAll(t *Tree, handlers ...Handler) {
	VisitAll(t.Root(), handlers...)
}

// Dispatch invokes the first matching handler for the single node n without
// walking its subtree, using an Enter event for containers and Leaf
// otherwise. It reports whether any handler matched. An OnChildren callback
// may still descend through its handle.
func Dispatch(n *Node, handlers ...Handler) bool {
	r := visitRun{handlers: handlers}
	h := r.match(n.Kind())
	if h == nil {
		return false
	}
	h.invoke(&r, enterOrLeaf(n), n)
	return true
}

// DispatchAll is Dispatch, except that no handler matching is an assertion
// failure.
func DispatchAll(n *Node, handlers ...Handler) {
	if !Dispatch(n, handlers...) {
		panic(errors.AssertionFailedf("no handler matches node of kind %d", n.Kind()))
	}
}

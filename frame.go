// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reducible

import "sync/atomic"

// Erased represents a type-erased value crossing a capability boundary.
// Instance methods that are polymorphic in their result type accept and
// return Erased; the typed package-level functions recover concrete types
// via type assertions at the boundary.
type Erased = any

// cast recovers a concrete type from an Erased value.
// A nil interface is read as the zero value of A, so that results whose
// type is itself a pointer or interface survive the round trip.
func cast[A any](v Erased) A {
	if v == nil {
		var zero A
		return zero
	}
	return v.(A)
}

// evalNode is the marker interface for the tagged variants of Eval.
// Dispatch uses type switches, not tags.
type evalNode interface {
	evalNode() // unexported marker method
}

// nowNode holds an already known value.
type nowNode struct {
	v Erased
}

func (nowNode) evalNode() {}

// alwaysNode recomputes f on every force.
type alwaysNode struct {
	f func() Erased
}

func (*alwaysNode) evalNode() {}

// memoNode evaluates src at most once per successful publication and
// caches the result. The first published value wins.
type memoNode struct {
	src  evalNode
	cell atomic.Pointer[memoCell]
}

func (*memoNode) evalNode() {}

// memoCell boxes a memoized value so that a nil result is distinguishable
// from "not yet computed".
type memoCell struct {
	v Erased
}

// store publishes v unless another force got there first, and resumes the
// loop with the winning value.
func (m *memoNode) store(v Erased) evalNode {
	m.cell.CompareAndSwap(nil, &memoCell{v: v})
	return nowNode{v: m.cell.Load().v}
}

// deferNode suspends the construction of the next node.
type deferNode struct {
	f func() evalNode
}

func (*deferNode) evalNode() {}

// bindNode sequences src with the continuation f.
type bindNode struct {
	src evalNode
	f   func(Erased) evalNode
}

func (*bindNode) evalNode() {}

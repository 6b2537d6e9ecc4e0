// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reducible

// Eval is a deferred value of type A.
//
// An Eval is one of three evaluation modes chosen at construction:
//   - [Now]: already known
//   - [Later]: computed on first force, then cached
//   - [Always]: recomputed on every force
//
// Chains built with [MapEval], [FlatMapEval] and [Defer] are evaluated by
// an iterative loop, never by nested Go calls, so forcing a chain of any
// length does not grow the call stack.
//
// The zero Eval forces to the zero value of A.
type Eval[A any] struct {
	n evalNode
}

// Now wraps an already computed value.
func Now[A any](a A) Eval[A] {
	return Eval[A]{n: nowNode{v: a}}
}

// Later defers f until the first force and caches its result.
// Subsequent forces return the cached value without calling f.
func Later[A any](f func() A) Eval[A] {
	return Eval[A]{n: &memoNode{src: &alwaysNode{f: func() Erased { return f() }}}}
}

// Always defers f and calls it again on every force.
func Always[A any](f func() A) Eval[A] {
	return Eval[A]{n: &alwaysNode{f: func() Erased { return f() }}}
}

// Defer suspends the construction of an Eval until it is forced.
// Recursive definitions go through Defer to stay stack-safe.
func Defer[A any](f func() Eval[A]) Eval[A] {
	return Eval[A]{n: &deferNode{f: func() evalNode { return f().n }}}
}

// Value forces the computation and returns its result.
func (e Eval[A]) Value() A {
	return cast[A](evaluate(e.n))
}

// Memoize returns an Eval that computes e at most once and caches the
// result. Memoizing an already memoized Eval returns it unchanged.
func (e Eval[A]) Memoize() Eval[A] {
	switch e.n.(type) {
	case nowNode, *memoNode:
		return e
	}
	return Eval[A]{n: &memoNode{src: e.n}}
}

// MapEval applies f to the result of e when forced.
func MapEval[A, B any](e Eval[A], f func(A) B) Eval[B] {
	return Eval[B]{n: &bindNode{
		src: e.n,
		f: func(v Erased) evalNode {
			return nowNode{v: f(cast[A](v))}
		},
	}}
}

// FlatMapEval sequences e with f when forced.
func FlatMapEval[A, B any](e Eval[A], f func(A) Eval[B]) Eval[B] {
	return Eval[B]{n: &bindNode{
		src: e.n,
		f: func(v Erased) evalNode {
			return f(cast[A](v)).n
		},
	}}
}

// toErased and fromErased retype an Eval across the Erased boundary.
// The node graph is untyped, so both are free.
func toErased[A any](e Eval[A]) Eval[Erased] { return Eval[Erased]{n: e.n} }

func fromErased[A any](e Eval[Erased]) Eval[A] { return Eval[A]{n: e.n} }

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reducible

// NonEmptyReducible is the Reducible derived for a non-empty container FA
// from a split function and the Foldable of its tail GA.
//
// split decomposes a container into its first element and the (possibly
// empty) rest; it must be total, deterministic and agree with the tail's
// traversal order. Every operation visits the head first and then delegates
// to the tail's instance.
//
// NonEmptyReducible implements [Reducible] and every optional Foldable
// capability. It holds no mutable state and may be shared.
type NonEmptyReducible[FA, GA, A any] struct {
	tail  Foldable[GA, A]
	split func(FA) Pair[A, GA]
}

// Derive builds the full Reducible instance for FA from the Foldable of its
// tail and a split function.
func Derive[FA, GA, A any](tail Foldable[GA, A], split func(FA) Pair[A, GA]) *NonEmptyReducible[FA, GA, A] {
	return &NonEmptyReducible[FA, GA, A]{tail: tail, split: split}
}

// Split returns the head and tail of fa.
func (n *NonEmptyReducible[FA, GA, A]) Split(fa FA) (A, GA) {
	p := n.split(fa)
	return p.Fst, p.Snd
}

// deferSplit postpones split until the returned Eval is forced.
func (n *NonEmptyReducible[FA, GA, A]) deferSplit(fa FA) Eval[Pair[A, GA]] {
	return Always(func() Pair[A, GA] { return n.split(fa) })
}

// FoldLeft folds the head into b, then the tail from the left.
func (n *NonEmptyReducible[FA, GA, A]) FoldLeft(fa FA, b Erased, f func(Erased, A) Erased) Erased {
	p := n.split(fa)
	return n.tail.FoldLeft(p.Snd, f(b, p.Fst), f)
}

// FoldRight passes the head to f together with the deferred fold of the
// tail. Nothing, split included, runs until the result is forced.
func (n *NonEmptyReducible[FA, GA, A]) FoldRight(fa FA, lb Eval[Erased], f func(A, Eval[Erased]) Eval[Erased]) Eval[Erased] {
	return FlatMapEval(n.deferSplit(fa), func(p Pair[A, GA]) Eval[Erased] {
		return f(p.Fst, n.tail.FoldRight(p.Snd, lb, f))
	})
}

// ReduceLeftTo seeds with f(head) and folds the tail from the left with g.
func (n *NonEmptyReducible[FA, GA, A]) ReduceLeftTo(fa FA, f func(A) Erased, g func(Erased, A) Erased) Erased {
	p := n.split(fa)
	return n.tail.FoldLeft(p.Snd, f(p.Fst), g)
}

// ReduceRightTo returns a deferred f(head) when the tail is empty, and
// otherwise g(head, rest), where rest is the deferred right reduction of
// the tail. rest is memoized and left to g to force. The result is
// memoized too: forcing it again runs neither split, f nor g.
func (n *NonEmptyReducible[FA, GA, A]) ReduceRightTo(fa FA, f func(A) Erased, g func(A, Eval[Erased]) Eval[Erased]) Eval[Erased] {
	return FlatMapEval(n.deferSplit(fa), func(p Pair[A, GA]) Eval[Erased] {
		if IsEmpty(n.tail, p.Snd) {
			return Later(func() Erased { return f(p.Fst) })
		}
		rest := MapEval(ReduceRightToOption(n.tail, p.Snd, f, g), func(ob Option[Erased]) Erased {
			return ob.Unwrap()
		})
		return g(p.Fst, rest.Memoize())
	}).Memoize()
}

// ReduceRightToOption is ReduceRightTo wrapped in Some.
func (n *NonEmptyReducible[FA, GA, A]) ReduceRightToOption(fa FA, f func(A) Erased, g func(A, Eval[Erased]) Eval[Erased]) Eval[Option[Erased]] {
	return MapEval(n.ReduceRightTo(fa, f, g), Some[Erased])
}

// Fold combines the head with the fold of the tail. Eager.
func (n *NonEmptyReducible[FA, GA, A]) Fold(fa FA, m Monoid[A]) A {
	p := n.split(fa)
	return m.Combine(p.Fst, Fold(n.tail, p.Snd, m))
}

// Find tests the head, then searches the tail.
func (n *NonEmptyReducible[FA, GA, A]) Find(fa FA, pred func(A) bool) Option[A] {
	p := n.split(fa)
	if pred(p.Fst) {
		return Some(p.Fst)
	}
	return Find(n.tail, p.Snd, pred)
}

// Exists tests the head, then the tail.
func (n *NonEmptyReducible[FA, GA, A]) Exists(fa FA, pred func(A) bool) bool {
	p := n.split(fa)
	return pred(p.Fst) || Exists(n.tail, p.Snd, pred)
}

// Forall tests the head, then the tail.
func (n *NonEmptyReducible[FA, GA, A]) Forall(fa FA, pred func(A) bool) bool {
	p := n.split(fa)
	return pred(p.Fst) && Forall(n.tail, p.Snd, pred)
}

// Size is one plus the size of the tail.
//
// The recursion walks the whole tail on the Go stack. When the tail's own
// instance is a NonEmptyReducible nested per element, stack use grows with
// the container's length.
func (n *NonEmptyReducible[FA, GA, A]) Size(fa FA) int {
	p := n.split(fa)
	return 1 + Size(n.tail, p.Snd)
}

// Get returns the head for idx 0 and otherwise looks up idx-1 in the tail.
func (n *NonEmptyReducible[FA, GA, A]) Get(fa FA, idx int) Option[A] {
	p := n.split(fa)
	if idx == 0 {
		return Some(p.Fst)
	}
	return Get(n.tail, p.Snd, idx-1)
}

// IsEmpty always reports false.
func (*NonEmptyReducible[FA, GA, A]) IsEmpty(FA) bool { return false }

// FoldM runs the step for the head, then binds into the monadic fold of the
// tail.
func (n *NonEmptyReducible[FA, GA, A]) FoldM(fa FA, m Monad[Erased, Erased], z Erased, f func(Erased, A) Erased) Erased {
	p := n.split(fa)
	return m.FlatMap(f(z, p.Fst), func(b Erased) Erased {
		return FoldM(n.tail, p.Snd, m, b, f)
	})
}

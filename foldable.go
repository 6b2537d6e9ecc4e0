// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reducible

// Foldable is the capability of traversing a possibly empty container FA
// holding elements of type A.
//
// Only the two primitive folds are required. Their accumulator is Erased
// because Go methods cannot introduce type parameters; callers use the typed
// package-level [FoldLeft] and [FoldRight] instead of the methods.
//
// FoldRight must be lazy and stack-safe: it returns without forcing the
// container, and the Eval it builds must not consume Go stack in proportion
// to the container's length. Building the recursion through [Defer] is
// sufficient.
type Foldable[FA, A any] interface {
	FoldLeft(fa FA, b Erased, f func(Erased, A) Erased) Erased
	FoldRight(fa FA, lb Eval[Erased], f func(A, Eval[Erased]) Eval[Erased]) Eval[Erased]
}

// The optional capabilities below let an instance replace the derived
// default of the matching package-level function. They are detected with
// interface assertions on the Foldable value.

// FoldableFold overrides [Fold].
type FoldableFold[FA, A any] interface {
	Fold(fa FA, m Monoid[A]) A
}

// FoldableFind overrides [Find].
type FoldableFind[FA, A any] interface {
	Find(fa FA, p func(A) bool) Option[A]
}

// FoldableExists overrides [Exists].
type FoldableExists[FA, A any] interface {
	Exists(fa FA, p func(A) bool) bool
}

// FoldableForall overrides [Forall].
type FoldableForall[FA, A any] interface {
	Forall(fa FA, p func(A) bool) bool
}

// FoldableSize overrides [Size].
type FoldableSize[FA any] interface {
	Size(fa FA) int
}

// FoldableGet overrides [Get]. Implementations may assume idx >= 0.
type FoldableGet[FA, A any] interface {
	Get(fa FA, idx int) Option[A]
}

// FoldableIsEmpty overrides [IsEmpty].
type FoldableIsEmpty[FA any] interface {
	IsEmpty(fa FA) bool
}

// FoldableM overrides [FoldM]. The monad is presented at the Erased
// boundary; the values it produces and consumes are the caller's MB and B.
type FoldableM[FA, A any] interface {
	FoldM(fa FA, m Monad[Erased, Erased], z Erased, f func(Erased, A) Erased) Erased
}

// FoldableReduceRightToOption overrides [ReduceRightToOption]. An instance
// that can locate its last element without traversing the whole container
// implements it to leave the remainder of each step to g.
type FoldableReduceRightToOption[FA, A any] interface {
	ReduceRightToOption(fa FA, f func(A) Erased, g func(A, Eval[Erased]) Eval[Erased]) Eval[Option[Erased]]
}

// eraseLeft adapts a typed left-combining function to the Erased boundary.
func eraseLeft[A, B any](f func(B, A) B) func(Erased, A) Erased {
	return func(b Erased, a A) Erased {
		return f(cast[B](b), a)
	}
}

// eraseRight adapts a typed right-combining function to the Erased boundary.
func eraseRight[A, B any](f func(A, Eval[B]) Eval[B]) func(A, Eval[Erased]) Eval[Erased] {
	return func(a A, lb Eval[Erased]) Eval[Erased] {
		return toErased(f(a, fromErased[B](lb)))
	}
}

// eraseTo adapts a typed seed function to the Erased boundary.
func eraseTo[A, B any](f func(A) B) func(A) Erased {
	return func(a A) Erased {
		return f(a)
	}
}

// FoldLeft folds fa from the left, starting from b.
func FoldLeft[FA, A, B any](F Foldable[FA, A], fa FA, b B, f func(B, A) B) B {
	return cast[B](F.FoldLeft(fa, b, eraseLeft(f)))
}

// FoldRight folds fa from the right, lazily.
//
// f receives each element together with the deferred fold of everything to
// its right. Returning without forcing that Eval stops the traversal.
func FoldRight[FA, A, B any](F Foldable[FA, A], fa FA, lb Eval[B], f func(A, Eval[B]) Eval[B]) Eval[B] {
	return fromErased[B](F.FoldRight(fa, toErased(lb), eraseRight(f)))
}

// Fold combines every element with m, starting from m.Empty().
func Fold[FA, A any](F Foldable[FA, A], fa FA, m Monoid[A]) A {
	if o, ok := F.(FoldableFold[FA, A]); ok {
		return o.Fold(fa, m)
	}
	return FoldLeft(F, fa, m.Empty(), m.Combine)
}

// FoldMap maps every element through f and combines the results with m.
func FoldMap[FA, A, B any](F Foldable[FA, A], fa FA, m Monoid[B], f func(A) B) B {
	return FoldLeft(F, fa, m.Empty(), func(b B, a A) B {
		return m.Combine(b, f(a))
	})
}

// Find returns the first element satisfying p, in traversal order.
// The traversal stops at the first match.
func Find[FA, A any](F Foldable[FA, A], fa FA, p func(A) bool) Option[A] {
	if o, ok := F.(FoldableFind[FA, A]); ok {
		return o.Find(fa, p)
	}
	return FoldRight(F, fa, Now(None[A]()), func(a A, lb Eval[Option[A]]) Eval[Option[A]] {
		if p(a) {
			return Now(Some(a))
		}
		return lb
	}).Value()
}

// Exists reports whether any element satisfies p.
// The traversal stops at the first element that does.
func Exists[FA, A any](F Foldable[FA, A], fa FA, p func(A) bool) bool {
	if o, ok := F.(FoldableExists[FA, A]); ok {
		return o.Exists(fa, p)
	}
	return FoldRight(F, fa, Now(false), func(a A, lb Eval[bool]) Eval[bool] {
		if p(a) {
			return Now(true)
		}
		return lb
	}).Value()
}

// Forall reports whether every element satisfies p.
// The traversal stops at the first element that does not.
func Forall[FA, A any](F Foldable[FA, A], fa FA, p func(A) bool) bool {
	if o, ok := F.(FoldableForall[FA, A]); ok {
		return o.Forall(fa, p)
	}
	return FoldRight(F, fa, Now(true), func(a A, lb Eval[bool]) Eval[bool] {
		if !p(a) {
			return Now(false)
		}
		return lb
	}).Value()
}

// Size returns the number of elements in fa.
func Size[FA, A any](F Foldable[FA, A], fa FA) int {
	if o, ok := F.(FoldableSize[FA]); ok {
		return o.Size(fa)
	}
	return FoldLeft(F, fa, 0, func(n int, _ A) int { return n + 1 })
}

// Get returns the element at zero-based position idx in traversal order,
// or None if idx is negative or not less than the size of fa.
func Get[FA, A any](F Foldable[FA, A], fa FA, idx int) Option[A] {
	if idx < 0 {
		return None[A]()
	}
	if o, ok := F.(FoldableGet[FA, A]); ok {
		return o.Get(fa, idx)
	}
	i := 0
	return Find(F, fa, func(A) bool {
		if i == idx {
			return true
		}
		i++
		return false
	})
}

// IsEmpty reports whether fa holds no elements.
// A Reducible instance answers false without inspecting fa.
func IsEmpty[FA, A any](F Foldable[FA, A], fa FA) bool {
	if o, ok := F.(FoldableIsEmpty[FA]); ok {
		return o.IsEmpty(fa)
	}
	if _, ok := F.(Reducible[FA, A]); ok {
		return false
	}
	return !FoldRight(F, fa, Now(false), func(A, Eval[bool]) Eval[bool] {
		return Now(true)
	}).Value()
}

// NonEmpty reports whether fa holds at least one element.
func NonEmpty[FA, A any](F Foldable[FA, A], fa FA) bool {
	return !IsEmpty(F, fa)
}

// FoldM folds fa from the left, sequencing each step through the effect M.
//
// Steps run head first. A step whose effect does not continue (None, Left,
// an aborted Cont) prevents every later step from running.
func FoldM[FA, A, MB, B any](F Foldable[FA, A], fa FA, M Monad[MB, B], z B, f func(B, A) MB) MB {
	if o, ok := F.(FoldableM[FA, A]); ok {
		return cast[MB](o.FoldM(fa, erasedMonad[MB, B]{m: M}, z, func(b Erased, a A) Erased {
			return f(cast[B](b), a)
		}))
	}
	return FoldLeft(F, fa, M.Pure(z), func(mb MB, a A) MB {
		return M.FlatMap(mb, func(b B) MB {
			return f(b, a)
		})
	})
}

// ReduceLeftToOption reduces fa from the left, seeding with f applied to
// the first element, or returns None if fa is empty.
// A Reducible instance always returns Some.
func ReduceLeftToOption[FA, A, B any](F Foldable[FA, A], fa FA, f func(A) B, g func(B, A) B) Option[B] {
	if r, ok := F.(Reducible[FA, A]); ok {
		return Some(ReduceLeftTo(r, fa, f, g))
	}
	return FoldLeft(F, fa, None[B](), func(ob Option[B], a A) Option[B] {
		if b, ok := ob.Get(); ok {
			return Some(g(b, a))
		}
		return Some(f(a))
	})
}

// ReduceRightToOption reduces fa from the right, seeding with f applied to
// the last element, or returns a deferred None if fa is empty.
// A Reducible instance always returns a deferred Some.
//
// The derived default must find the end of fa before it can seed, so it
// forces the remainder of the container ahead of each g. Instances that
// implement [FoldableReduceRightToOption], and Reducible instances, leave
// the remainder to g.
func ReduceRightToOption[FA, A, B any](F Foldable[FA, A], fa FA, f func(A) B, g func(A, Eval[B]) Eval[B]) Eval[Option[B]] {
	if o, ok := F.(FoldableReduceRightToOption[FA, A]); ok {
		return MapEval(o.ReduceRightToOption(fa, eraseTo(f), eraseRight(g)), func(ob Option[Erased]) Option[B] {
			return MapOption(ob, cast[B])
		})
	}
	if r, ok := F.(Reducible[FA, A]); ok {
		return MapEval(ReduceRightTo(r, fa, f, g), Some[B])
	}
	return FoldRight(F, fa, Now(None[B]()), func(a A, lb Eval[Option[B]]) Eval[Option[B]] {
		return FlatMapEval(lb, func(ob Option[B]) Eval[Option[B]] {
			if b, ok := ob.Get(); ok {
				return MapEval(g(a, Now(b)), Some[B])
			}
			return Later(func() Option[B] { return Some(f(a)) })
		})
	})
}

// ReduceLeftOption reduces fa from the left with f, or returns None if fa
// is empty.
func ReduceLeftOption[FA, A any](F Foldable[FA, A], fa FA, f func(A, A) A) Option[A] {
	return ReduceLeftToOption(F, fa, identity[A], f)
}

// ReduceRightOption reduces fa from the right with f, or returns a deferred
// None if fa is empty.
func ReduceRightOption[FA, A any](F Foldable[FA, A], fa FA, f func(A, Eval[A]) Eval[A]) Eval[Option[A]] {
	return ReduceRightToOption(F, fa, identity[A], f)
}

// ToSlice collects the elements of fa in traversal order.
func ToSlice[FA, A any](F Foldable[FA, A], fa FA) []A {
	return FoldLeft(F, fa, []A(nil), func(out []A, a A) []A {
		return append(out, a)
	})
}

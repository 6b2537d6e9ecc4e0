// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reducible

import "cmp"

// Reducible is a Foldable whose containers always hold at least one
// element, which makes seed-free reduction total.
//
// ReduceLeftTo applies f to the first element to produce the seed and folds
// the rest from the left with g. ReduceRightTo applies f to the last element
// and folds towards the first with g, lazily: it must not force more of the
// container than g demands.
//
// Calling any operation on a container that is empty at runtime is a
// violation of the instance's contract and its behavior is undefined.
type Reducible[FA, A any] interface {
	Foldable[FA, A]
	ReduceLeftTo(fa FA, f func(A) Erased, g func(Erased, A) Erased) Erased
	ReduceRightTo(fa FA, f func(A) Erased, g func(A, Eval[Erased]) Eval[Erased]) Eval[Erased]
}

// ReduceLeftTo reduces fa from the left, seeding with f(first).
func ReduceLeftTo[FA, A, B any](R Reducible[FA, A], fa FA, f func(A) B, g func(B, A) B) B {
	return cast[B](R.ReduceLeftTo(fa, eraseTo(f), eraseLeft(g)))
}

// ReduceRightTo reduces fa from the right, seeding with f(last), lazily.
func ReduceRightTo[FA, A, B any](R Reducible[FA, A], fa FA, f func(A) B, g func(A, Eval[B]) Eval[B]) Eval[B] {
	return fromErased[B](R.ReduceRightTo(fa, eraseTo(f), eraseRight(g)))
}

// ReduceLeft reduces fa from the left with f.
func ReduceLeft[FA, A any](R Reducible[FA, A], fa FA, f func(A, A) A) A {
	return ReduceLeftTo(R, fa, identity[A], f)
}

// ReduceRight reduces fa from the right with f, lazily.
func ReduceRight[FA, A any](R Reducible[FA, A], fa FA, f func(A, Eval[A]) Eval[A]) Eval[A] {
	return ReduceRightTo(R, fa, identity[A], f)
}

// Reduce combines every element with s, from the left.
// A single-element container is returned as is; s is not called.
func Reduce[FA, A any](R Reducible[FA, A], fa FA, s Semigroup[A]) A {
	return ReduceLeft(R, fa, s.Combine)
}

// ReduceK reduces a container of containers with the shape-level
// combination k.
func ReduceK[FA, GB any](R Reducible[FA, GB], fga FA, k SemigroupK[GB]) GB {
	return Reduce(R, fga, AlgebraK(k))
}

// ReduceMap maps every element through f and combines the results from the
// left, starting from f(first). Any Monoid is accepted; its identity is
// never needed.
func ReduceMap[FA, A, B any](R Reducible[FA, A], fa FA, s Semigroup[B], f func(A) B) B {
	return ReduceLeftTo(R, fa, f, func(b B, a A) B {
		return s.Combine(b, f(a))
	})
}

// ReduceLeftM reduces fa from the left through the effect M: the first
// element seeds with f, every further element is folded in with g.
// As with [FoldM], an effect that does not continue stops later steps.
func ReduceLeftM[FA, A, MB, B any](R Reducible[FA, A], fa FA, M Monad[MB, B], f func(A) MB, g func(B, A) MB) MB {
	return ReduceLeftTo(R, fa, f, func(mb MB, a A) MB {
		return M.FlatMap(mb, func(b B) MB {
			return g(b, a)
		})
	})
}

// Minimum returns the smallest element, the first one on ties.
func Minimum[FA any, A cmp.Ordered](R Reducible[FA, A], fa FA) A {
	return Reduce(R, fa, MinSemigroup[A]{})
}

// Maximum returns the largest element, the first one on ties.
func Maximum[FA any, A cmp.Ordered](R Reducible[FA, A], fa FA) A {
	return Reduce(R, fa, MaxSemigroup[A]{})
}

// MinimumBy returns the smallest element according to compare,
// the first one on ties.
func MinimumBy[FA, A any](R Reducible[FA, A], fa FA, compare func(x, y A) int) A {
	return ReduceLeft(R, fa, func(x, y A) A {
		if compare(y, x) < 0 {
			return y
		}
		return x
	})
}

// MaximumBy returns the largest element according to compare,
// the first one on ties.
func MaximumBy[FA, A any](R Reducible[FA, A], fa FA, compare func(x, y A) int) A {
	return ReduceLeft(R, fa, func(x, y A) A {
		if compare(x, y) < 0 {
			return y
		}
		return x
	})
}

// NonEmptyIntercalate combines every element with s, inserting sep
// between neighbours.
func NonEmptyIntercalate[FA, A any](R Reducible[FA, A], fa FA, sep A, s Semigroup[A]) A {
	return ReduceLeft(R, fa, func(x, y A) A {
		return s.Combine(s.Combine(x, sep), y)
	})
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package reducible provides a generic reduction algebra for non-empty
// containers in Go.
//
// [Foldable] captures traversal of a possibly empty container. [Reducible]
// extends it with operations that need no seed value because the container
// always holds at least one element. [Derive] builds a complete Reducible
// instance for a container from a single split function (first element,
// remaining tail) and the Foldable of the tail.
//
// # Encoding
//
// Go has no higher-kinded types, and methods cannot introduce type
// parameters. Capabilities are therefore interfaces over the instantiated
// container type FA and its element type A, and instance methods carry
// result-polymorphic accumulators as [Erased] values. Callers use the typed
// package-level functions, which take the instance as their first argument:
//
//	R := reducible.Derive(reducible.SliceFoldable[int]{}, split)
//	sum := reducible.Reduce(R, xs, reducible.SumMonoid[int]{})
//
// Optional capabilities ([FoldableFind], [FoldableSize], ...) let an
// instance override the default that a package-level function derives from
// FoldLeft and FoldRight. They are detected with interface assertions.
//
// # Deferred Evaluation
//
// [Eval] is a deferred value with three construction modes:
//
//   - [Now]: already known
//   - [Later]: computed on first force and cached
//   - [Always]: recomputed on every force
//
// [Defer], [MapEval] and [FlatMapEval] chain Evals. Forcing with
// [Eval.Value] runs an iterative loop that keeps continuations on the heap,
// so right folds over containers of any length do not overflow the stack.
// [Eval.Memoize] caches any chain.
//
// # Foldable
//
//   - [FoldLeft], [FoldRight]: primitives
//   - [Fold], [FoldMap]: monoidal folds
//   - [Find], [Exists], [Forall]: short-circuiting queries
//   - [Size], [Get], [IsEmpty], [NonEmpty], [ToSlice]
//   - [FoldM]: left fold through an effect [Monad]
//   - [ReduceLeftToOption], [ReduceRightToOption], [ReduceLeftOption],
//     [ReduceRightOption]: reductions that may find nothing to reduce
//
// [SliceFoldable] is the instance for slices.
//
// # Reducible
//
//   - [ReduceLeftTo], [ReduceRightTo]: primitives
//   - [ReduceLeft], [ReduceRight], [Reduce], [ReduceMap], [ReduceK]
//   - [ReduceLeftM]: seed-free monadic reduction
//   - [Minimum], [Maximum], [MinimumBy], [MaximumBy], [NonEmptyIntercalate]
//
// For a Reducible instance the Option-returning reductions always return
// Some, IsEmpty is always false and NonEmpty always true.
//
// # Derivation
//
// [NonEmptyReducible] visits the head first and delegates the tail to the
// tail's instance. Right-associative operations defer the split itself, so
// building a right fold or right reduction never touches the container.
// A right reduction is memoized once forced, and over a tail that
// implements [FoldableReduceRightToOption] (as [SliceFoldable] does) it
// stops wherever the combining function stops.
// [NonEmptyReducible.Size] is plain recursion and walks the whole tail.
//
// Calling any operation with a container that is empty at runtime breaks
// the instance's contract; the result is undefined.
//
// # Algebra
//
//   - [Semigroup], [Monoid], [SemigroupK] ([AlgebraK] gives its Semigroup view)
//   - [SumMonoid], [ProductMonoid], [StringMonoid], [SliceMonoid]
//   - [FirstSemigroup], [LastSemigroup], [MinSemigroup], [MaxSemigroup]
//   - [SliceSemigroupK], [OptionSemigroupK]
//
// # Effects
//
// [Monad] instances for the monadic folds:
//
//   - [OptionMonad]: None stops the fold
//   - [EitherMonad]: Left stops the fold
//   - [EvalMonad]: lazy, stack-safe sequencing
//   - [ContMonad]: continuation-passing; [AbortCont] stops the fold
//
// # Example
//
//	type nel struct {
//		head int
//		tail []int
//	}
//
//	R := reducible.Derive(reducible.SliceFoldable[int]{}, func(fa nel) reducible.Pair[int, []int] {
//		return reducible.Pair[int, []int]{Fst: fa.head, Snd: fa.tail}
//	})
//	s := reducible.ReduceMap(R, nel{1, []int{2, 3}}, reducible.StringMonoid{}, strconv.Itoa)
//	// s == "123"
package reducible

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reducible

// Monad supplies sequencing for an effect type MA wrapping values of type A.
//
// MA is the effect instantiated at A (e.g. Option[int] for A = int). The
// monadic folds only ever bind from A back to MA, so a single element type
// is enough.
//
// Instances must satisfy the monad laws:
//   - left identity:  FlatMap(Pure(a), f) ≡ f(a)
//   - right identity: FlatMap(m, Pure) ≡ m
//   - associativity:  FlatMap(FlatMap(m, f), g) ≡ FlatMap(m, func(x) FlatMap(f(x), g))
type Monad[MA, A any] interface {
	Pure(a A) MA
	FlatMap(ma MA, f func(A) MA) MA
}

// OptionMonad sequences Option: the first None stops the chain.
type OptionMonad[A any] struct{}

func (OptionMonad[A]) Pure(a A) Option[A] { return Some(a) }

func (OptionMonad[A]) FlatMap(ma Option[A], f func(A) Option[A]) Option[A] {
	return FlatMapOption(ma, f)
}

// EitherMonad sequences Either: the first Left stops the chain.
type EitherMonad[E, A any] struct{}

func (EitherMonad[E, A]) Pure(a A) Either[E, A] { return Right[E](a) }

func (EitherMonad[E, A]) FlatMap(ma Either[E, A], f func(A) Either[E, A]) Either[E, A] {
	return FlatMapEither(ma, f)
}

// EvalMonad sequences Eval lazily and stack-safely.
type EvalMonad[A any] struct{}

func (EvalMonad[A]) Pure(a A) Eval[A] { return Now(a) }

func (EvalMonad[A]) FlatMap(ma Eval[A], f func(A) Eval[A]) Eval[A] {
	return FlatMapEval(ma, f)
}

// ContMonad sequences continuations with final result type R.
type ContMonad[R, A any] struct{}

func (ContMonad[R, A]) Pure(a A) Cont[R, A] { return ReturnCont[R](a) }

func (ContMonad[R, A]) FlatMap(ma Cont[R, A], f func(A) Cont[R, A]) Cont[R, A] {
	return BindCont(ma, f)
}

// erasedMonad presents a typed Monad at the Erased boundary used by
// FoldableM implementations.
type erasedMonad[MB, B any] struct {
	m Monad[MB, B]
}

func (e erasedMonad[MB, B]) Pure(b Erased) Erased {
	return e.m.Pure(cast[B](b))
}

func (e erasedMonad[MB, B]) FlatMap(mb Erased, f func(Erased) Erased) Erased {
	return e.m.FlatMap(cast[MB](mb), func(b B) MB {
		return cast[MB](f(b))
	})
}

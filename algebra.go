// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reducible

import "cmp"

// Semigroup is an associative binary operation on A.
type Semigroup[A any] interface {
	Combine(x, y A) A
}

// Monoid is a Semigroup with an identity element.
type Monoid[A any] interface {
	Semigroup[A]
	Empty() A
}

// SemigroupFunc adapts a combining function to a Semigroup.
// The function must be associative.
type SemigroupFunc[A any] func(x, y A) A

// Combine implements Semigroup.
func (f SemigroupFunc[A]) Combine(x, y A) A { return f(x, y) }

type monoid[A any] struct {
	empty   A
	combine func(x, y A) A
}

func (m monoid[A]) Combine(x, y A) A { return m.combine(x, y) }
func (m monoid[A]) Empty() A          { return m.empty }

// MonoidOf builds a Monoid from an identity element and an associative
// combining function.
func MonoidOf[A any](empty A, combine func(x, y A) A) Monoid[A] {
	return monoid[A]{empty: empty, combine: combine}
}

// SemigroupK is a combining operation defined by a container shape rather
// than by its element type: every instantiation of the shape combines the
// same way (slices concatenate, options take the first present value).
//
// GA is the container instantiated at an element type. Go cannot abstract
// over the shape alone, so a SemigroupK value is obtained per element type
// from a generic constructor such as [SliceSemigroupK].
type SemigroupK[GA any] interface {
	CombineK(x, y GA) GA
}

// AlgebraK returns the Semigroup view of k for its element type.
func AlgebraK[GA any](k SemigroupK[GA]) Semigroup[GA] {
	return SemigroupFunc[GA](k.CombineK)
}

// Number is the constraint for the additive and multiplicative monoids.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// SumMonoid is addition with identity 0.
type SumMonoid[N Number] struct{}

func (SumMonoid[N]) Combine(x, y N) N { return x + y }
func (SumMonoid[N]) Empty() N         { return 0 }

// ProductMonoid is multiplication with identity 1.
type ProductMonoid[N Number] struct{}

func (ProductMonoid[N]) Combine(x, y N) N { return x * y }
func (ProductMonoid[N]) Empty() N         { return 1 }

// StringMonoid is concatenation with identity "".
type StringMonoid struct{}

func (StringMonoid) Combine(x, y string) string { return x + y }
func (StringMonoid) Empty() string              { return "" }

// SliceMonoid is concatenation with identity nil.
// Combine never aliases its arguments.
type SliceMonoid[A any] struct{}

func (SliceMonoid[A]) Combine(x, y []A) []A {
	if len(x)+len(y) == 0 {
		return nil
	}
	out := make([]A, 0, len(x)+len(y))
	out = append(out, x...)
	return append(out, y...)
}

func (SliceMonoid[A]) Empty() []A { return nil }

// SliceSemigroupK concatenates slices of any element type.
type SliceSemigroupK[A any] struct{}

// CombineK implements SemigroupK.
func (SliceSemigroupK[A]) CombineK(x, y []A) []A { return SliceMonoid[A]{}.Combine(x, y) }

// OptionSemigroupK keeps the first present Option.
type OptionSemigroupK[A any] struct{}

// CombineK implements SemigroupK.
func (OptionSemigroupK[A]) CombineK(x, y Option[A]) Option[A] {
	if x.isSome {
		return x
	}
	return y
}

// FirstSemigroup keeps the left operand.
type FirstSemigroup[A any] struct{}

func (FirstSemigroup[A]) Combine(x, _ A) A { return x }

// LastSemigroup keeps the right operand.
type LastSemigroup[A any] struct{}

func (LastSemigroup[A]) Combine(_, y A) A { return y }

// MinSemigroup keeps the smaller operand, the left one on ties.
type MinSemigroup[A cmp.Ordered] struct{}

func (MinSemigroup[A]) Combine(x, y A) A {
	if cmp.Less(y, x) {
		return y
	}
	return x
}

// MaxSemigroup keeps the larger operand, the left one on ties.
type MaxSemigroup[A cmp.Ordered] struct{}

func (MaxSemigroup[A]) Combine(x, y A) A {
	if cmp.Less(x, y) {
		return y
	}
	return x
}

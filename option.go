// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reducible

// Option represents a value that is either present (Some) or absent (None).
type Option[A any] struct {
	isSome bool
	value  A
}

// Some creates a present value.
func Some[A any](a A) Option[A] {
	return Option[A]{isSome: true, value: a}
}

// None creates an absent value.
func None[A any]() Option[A] {
	return Option[A]{}
}

// IsSome returns true if a value is present.
func (o Option[A]) IsSome() bool {
	return o.isSome
}

// IsNone returns true if no value is present.
func (o Option[A]) IsNone() bool {
	return !o.isSome
}

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	return o.value, o.isSome
}

// GetOrElse returns the value if present, otherwise def.
func (o Option[A]) GetOrElse(def A) A {
	if o.isSome {
		return o.value
	}
	return def
}

// Unwrap returns the value. Panics if absent.
func (o Option[A]) Unwrap() A {
	if !o.isSome {
		panic("reducible: Unwrap on None")
	}
	return o.value
}

// MatchOption pattern matches on the Option, calling onNone or onSome.
func MatchOption[A, T any](o Option[A], onNone func() T, onSome func(A) T) T {
	if o.isSome {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies f to the value if present.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.isSome {
		return Some(f(o.value))
	}
	return None[B]()
}

// FlatMapOption sequences two optional computations.
func FlatMapOption[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if o.isSome {
		return f(o.value)
	}
	return None[B]()
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reducible

// BindCont sequences two continuations (monadic bind).
// It runs m, then passes the result to f to get a new continuation.
func BindCont[R, A, B any](m Cont[R, A], f func(A) Cont[R, B]) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(a A) R {
			return f(a)(k)
		})
	}
}

// MapCont applies a pure function to the result of a continuation.
// Equivalent to BindCont(m, compose(ReturnCont, f)) without the
// intermediate closure.
func MapCont[R, A, B any](m Cont[R, A], f func(A) B) Cont[R, B] {
	return func(k func(B) R) R {
		return m(func(a A) R {
			return k(f(a))
		})
	}
}

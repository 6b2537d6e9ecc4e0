// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reducible

// Cont represents a continuation-passing computation.
// Cont[R, A] computes a value of type A, with final result type R.
//
// Cont is provided as an effect for [FoldM] and [ReduceLeftM] through
// [ContMonad]: a step that returns without calling its continuation aborts
// every later step and becomes the final result.
type Cont[R, A any] func(k func(A) R) R

// ReturnCont lifts a pure value into the continuation monad.
func ReturnCont[R, A any](a A) Cont[R, A] {
	return func(k func(A) R) R {
		return k(a)
	}
}

// AbortCont discards the continuation and finishes with r.
func AbortCont[R, A any](r R) Cont[R, A] {
	return func(func(A) R) R {
		return r
	}
}

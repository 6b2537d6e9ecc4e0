// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reducible

// identity is the seed function for ReduceLeft and ReduceRight, and the
// final continuation for RunCont.
// Named generic function produces a static function value per type instantiation,
// avoiding the heap allocation that anonymous closures incur.
func identity[A any](a A) A { return a }

// RunCont executes a continuation with the identity continuation.
// The result type must match the value type (R = A).
func RunCont[A any](m Cont[A, A]) A {
	return m(identity[A])
}

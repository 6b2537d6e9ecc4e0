// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reducible

// SliceFoldable is the Foldable instance for []A, traversed by index.
// It is the usual tail instance for containers that keep their remainder
// in a slice.
type SliceFoldable[A any] struct{}

func (SliceFoldable[A]) FoldLeft(fa []A, b Erased, f func(Erased, A) Erased) Erased {
	for _, a := range fa {
		b = f(b, a)
	}
	return b
}

// FoldRight defers each step, so forcing the result walks the slice inside
// the Eval loop and f can stop the walk by not forcing its second argument.
func (SliceFoldable[A]) FoldRight(fa []A, lb Eval[Erased], f func(A, Eval[Erased]) Eval[Erased]) Eval[Erased] {
	var step func(i int) Eval[Erased]
	step = func(i int) Eval[Erased] {
		if i == len(fa) {
			return lb
		}
		return f(fa[i], Defer(func() Eval[Erased] { return step(i + 1) }))
	}
	return Defer(func() Eval[Erased] { return step(0) })
}

// ReduceRightToOption seeds with f of the last element and reaches it by
// index, so each g receives the rest of the slice unforced. The rest is
// memoized, so g may force it more than once.
func (SliceFoldable[A]) ReduceRightToOption(fa []A, f func(A) Erased, g func(A, Eval[Erased]) Eval[Erased]) Eval[Option[Erased]] {
	if len(fa) == 0 {
		return Now(None[Erased]())
	}
	last := len(fa) - 1
	var step func(i int) Eval[Erased]
	step = func(i int) Eval[Erased] {
		if i == last {
			return Later(func() Erased { return f(fa[last]) })
		}
		return g(fa[i], Defer(func() Eval[Erased] { return step(i + 1) }).Memoize())
	}
	return MapEval(Defer(func() Eval[Erased] { return step(0) }), Some[Erased])
}

func (SliceFoldable[A]) Fold(fa []A, m Monoid[A]) A {
	acc := m.Empty()
	for _, a := range fa {
		acc = m.Combine(acc, a)
	}
	return acc
}

func (SliceFoldable[A]) Find(fa []A, p func(A) bool) Option[A] {
	for _, a := range fa {
		if p(a) {
			return Some(a)
		}
	}
	return None[A]()
}

func (SliceFoldable[A]) Exists(fa []A, p func(A) bool) bool {
	for _, a := range fa {
		if p(a) {
			return true
		}
	}
	return false
}

func (SliceFoldable[A]) Forall(fa []A, p func(A) bool) bool {
	for _, a := range fa {
		if !p(a) {
			return false
		}
	}
	return true
}

func (SliceFoldable[A]) Size(fa []A) int { return len(fa) }

func (SliceFoldable[A]) Get(fa []A, idx int) Option[A] {
	if idx >= len(fa) {
		return None[A]()
	}
	return Some(fa[idx])
}

func (SliceFoldable[A]) IsEmpty(fa []A) bool { return len(fa) == 0 }

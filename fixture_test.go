// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reducible_test

import "code.hybscloud.com/reducible"

// nel is a non-empty list keeping its tail in a slice.
type nel[A any] struct {
	head A
	tail []A
}

func nelOf[A any](head A, tail ...A) nel[A] {
	return nel[A]{head: head, tail: tail}
}

func splitNel[A any](fa nel[A]) reducible.Pair[A, []A] {
	return reducible.Pair[A, []A]{Fst: fa.head, Snd: fa.tail}
}

func nelReducible[A any]() reducible.Reducible[nel[A], A] {
	return reducible.Derive(reducible.SliceFoldable[A]{}, splitNel[A])
}

// countingNelReducible counts every call to split.
func countingNelReducible[A any](splits *int) reducible.Reducible[nel[A], A] {
	return reducible.Derive(reducible.SliceFoldable[A]{}, func(fa nel[A]) reducible.Pair[A, []A] {
		*splits++
		return splitNel(fa)
	})
}

// cons is a possibly empty linked list; nil is the empty list.
type cons[A any] struct {
	head A
	tail *cons[A]
}

func consOf[A any](xs ...A) *cons[A] {
	var l *cons[A]
	for i := len(xs) - 1; i >= 0; i-- {
		l = &cons[A]{head: xs[i], tail: l}
	}
	return l
}

// consFoldable implements only the two primitive folds, so every other
// operation on it goes through the derived defaults.
type consFoldable[A any] struct{}

func (consFoldable[A]) FoldLeft(l *cons[A], b reducible.Erased, f func(reducible.Erased, A) reducible.Erased) reducible.Erased {
	for ; l != nil; l = l.tail {
		b = f(b, l.head)
	}
	return b
}

func (c consFoldable[A]) FoldRight(l *cons[A], lb reducible.Eval[reducible.Erased], f func(A, reducible.Eval[reducible.Erased]) reducible.Eval[reducible.Erased]) reducible.Eval[reducible.Erased] {
	return reducible.Defer(func() reducible.Eval[reducible.Erased] {
		if l == nil {
			return lb
		}
		return f(l.head, c.FoldRight(l.tail, lb, f))
	})
}

// necons is a non-empty list keeping its tail in a cons list.
type necons[A any] struct {
	head A
	tail *cons[A]
}

func neconsOf[A any](head A, tail ...A) necons[A] {
	return necons[A]{head: head, tail: consOf(tail...)}
}

func splitNecons[A any](fa necons[A]) reducible.Pair[A, *cons[A]] {
	return reducible.Pair[A, *cons[A]]{Fst: fa.head, Snd: fa.tail}
}

func neconsReducible[A any]() reducible.Reducible[necons[A], A] {
	return reducible.Derive(consFoldable[A]{}, splitNecons[A])
}

// upTo returns 1..n.
func upTo(n int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = i + 1
	}
	return xs
}

func sumEval(a int, lb reducible.Eval[int]) reducible.Eval[int] {
	return reducible.MapEval(lb, func(b int) int { return a + b })
}

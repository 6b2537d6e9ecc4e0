// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reducible_test

import (
	"fmt"
	"strconv"

	"code.hybscloud.com/reducible"
)

type names struct {
	first string
	rest  []string
}

func ExampleDerive() {
	R := reducible.Derive(reducible.SliceFoldable[int]{}, func(fa nel[int]) reducible.Pair[int, []int] {
		return reducible.Pair[int, []int]{Fst: fa.head, Snd: fa.tail}
	})
	fmt.Println(reducible.ReduceMap(R, nelOf(1, 2, 3), reducible.StringMonoid{}, strconv.Itoa))
	fmt.Println(reducible.Reduce(R, nelOf(1, 2, 3), reducible.SumMonoid[int]{}))
	// Output:
	// 123
	// 6
}

func ExampleNonEmptyIntercalate() {
	R := reducible.Derive(reducible.SliceFoldable[string]{}, func(n names) reducible.Pair[string, []string] {
		return reducible.Pair[string, []string]{Fst: n.first, Snd: n.rest}
	})
	fmt.Println(reducible.NonEmptyIntercalate(R, names{"ann", []string{"bob", "cy"}}, ", ", reducible.StringMonoid{}))
	// Output: ann, bob, cy
}

func ExampleReduceRight() {
	R := nelReducible[int]()

	// Stop at the first negative element.
	firstNegative := func(a int, lb reducible.Eval[int]) reducible.Eval[int] {
		if a < 0 {
			return reducible.Now(a)
		}
		return lb
	}
	fmt.Println(reducible.ReduceRight(R, nelOf(3, -1, 4, -5), firstNegative).Value())
	// Output: -1
}

func ExampleLater() {
	e := reducible.Later(func() int {
		fmt.Println("computing")
		return 42
	})
	fmt.Println(e.Value())
	fmt.Println(e.Value())
	// Output:
	// computing
	// 42
	// 42
}

func ExampleFoldM() {
	R := nelReducible[int]()
	safeDiv := func(b, a int) reducible.Option[int] {
		if a == 0 {
			return reducible.None[int]()
		}
		return reducible.Some(b / a)
	}
	fmt.Println(reducible.FoldM(R, nelOf(2, 5), reducible.OptionMonad[int]{}, 100, safeDiv).GetOrElse(-1))
	fmt.Println(reducible.FoldM(R, nelOf(2, 0, 5), reducible.OptionMonad[int]{}, 100, safeDiv).GetOrElse(-1))
	// Output:
	// 10
	// -1
}

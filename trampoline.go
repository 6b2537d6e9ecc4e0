// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reducible

// evaluate runs an Eval node graph to completion.
//
// Continuations are kept on an explicit slice instead of the Go call stack,
// so both left-nested chains (bind of bind of bind) and right-nested
// recursion through Defer run in constant stack space. The slice grows on
// the heap with the depth of pending continuations.
func evaluate(n evalNode) Erased {
	var stack []func(Erased) evalNode
	for {
		var current Erased
		switch c := n.(type) {
		case nil:
			current = nil
		case nowNode:
			current = c.v
		case *alwaysNode:
			current = c.f()
		case *memoNode:
			if cell := c.cell.Load(); cell != nil {
				current = cell.v
				break
			}
			stack = append(stack, c.store)
			n = c.src
			continue
		case *deferNode:
			n = c.f()
			continue
		case *bindNode:
			stack = append(stack, c.f)
			n = c.src
			continue
		default:
			panic("reducible: unknown eval node")
		}

		if len(stack) == 0 {
			return current
		}
		k := stack[len(stack)-1]
		stack[len(stack)-1] = nil
		stack = stack[:len(stack)-1]
		n = k(current)
	}
}

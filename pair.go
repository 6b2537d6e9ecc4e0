// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reducible

// Pair holds two values.
// A split function returns the head of a container in Fst and the
// remaining tail in Snd.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

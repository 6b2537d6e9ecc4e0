// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reducible_test

import (
	"strconv"
	"testing"

	"code.hybscloud.com/reducible"
)

func TestOptionSome(t *testing.T) {
	o := reducible.Some(42)
	if !o.IsSome() || o.IsNone() {
		t.Fatal("Some(42) is not present")
	}
	v, ok := o.Get()
	if !ok || v != 42 {
		t.Fatalf("Get() = (%d, %v), want (42, true)", v, ok)
	}
	if got := o.Unwrap(); got != 42 {
		t.Fatalf("Unwrap() = %d, want 42", got)
	}
}

func TestOptionNone(t *testing.T) {
	o := reducible.None[int]()
	if o.IsSome() || !o.IsNone() {
		t.Fatal("None is present")
	}
	if _, ok := o.Get(); ok {
		t.Fatal("Get() on None reported ok")
	}
	if got := o.GetOrElse(7); got != 7 {
		t.Fatalf("GetOrElse(7) = %d, want 7", got)
	}
}

func TestOptionZeroIsNone(t *testing.T) {
	var o reducible.Option[string]
	if o.IsSome() {
		t.Fatal("zero Option is present")
	}
}

func TestOptionUnwrapNonePanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if r != "reducible: Unwrap on None" {
			t.Fatalf("panic = %v", r)
		}
	}()
	reducible.None[int]().Unwrap()
}

func TestMapOption(t *testing.T) {
	got := reducible.MapOption(reducible.Some(42), strconv.Itoa)
	if v, _ := got.Get(); v != "42" {
		t.Fatalf("got %q, want %q", v, "42")
	}
	called := false
	none := reducible.MapOption(reducible.None[int](), func(x int) string {
		called = true
		return ""
	})
	if none.IsSome() || called {
		t.Fatal("MapOption on None called f or returned Some")
	}
}

func TestFlatMapOption(t *testing.T) {
	half := func(x int) reducible.Option[int] {
		if x%2 != 0 {
			return reducible.None[int]()
		}
		return reducible.Some(x / 2)
	}
	if got := reducible.FlatMapOption(reducible.Some(8), half); got.Unwrap() != 4 {
		t.Fatalf("got %v, want Some(4)", got)
	}
	if got := reducible.FlatMapOption(reducible.Some(7), half); got.IsSome() {
		t.Fatalf("got %v, want None", got)
	}
}

func TestMatchOption(t *testing.T) {
	onNone := func() string { return "none" }
	onSome := func(x int) string { return strconv.Itoa(x) }
	if got := reducible.MatchOption(reducible.Some(1), onNone, onSome); got != "1" {
		t.Fatalf("got %q, want %q", got, "1")
	}
	if got := reducible.MatchOption(reducible.None[int](), onNone, onSome); got != "none" {
		t.Fatalf("got %q, want %q", got, "none")
	}
}

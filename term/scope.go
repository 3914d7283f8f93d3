// Package term implements the untyped lambda calculus in scope-indexed
// de Bruijn notation: building terms, abstracting over their free
// variables, beta substitution and closed-term verification. Terms are
// immutable values; every operation returns a new term.
package term

import "fmt"

// Scope is a scope-level index over placeholders of type A: a reference
// into a scope one binder deeper than A itself. Zero names the variable
// bound by the nearest enclosing abstraction; Succ wraps a reference
// visible from one level further out.
type Scope[A any] interface {
	isScope(A)
}

// Zero refers to the nearest enclosing binder.
type Zero[A any] struct{}

// Succ refers one binder further out than Zero, wrapping a value of the
// outer placeholder type.
type Succ[A any] struct{ Outer A }

func (Zero[A]) isScope(A) {}
func (Succ[A]) isScope(A) {}

// MapScope applies f to the wrapped value of a Succ; Zero passes through
// unchanged.
func MapScope[A, B any](f func(A) B, s Scope[A]) Scope[B] {
	switch s := s.(type) {
	case Succ[A]:
		return Succ[B]{f(s.Outer)}
	default:
		return Zero[B]{}
	}
}

// FoldScope collapses an index into a single value: Zero yields zero,
// Succ(x) yields succ(x).
func FoldScope[A, B any](zero B, succ func(A) B, s Scope[A]) B {
	switch s := s.(type) {
	case Succ[A]:
		return succ(s.Outer)
	default:
		return zero
	}
}

// Match builds the by-equality matching function for Abstract: x itself
// becomes the newly bound variable, everything else remains a reference
// one level out.
func Match[A comparable](x A) func(A) Scope[A] {
	return func(y A) Scope[A] {
		if y == x {
			return Zero[A]{}
		}
		return Succ[A]{y}
	}
}

// Subst is the inverse of Match: the bound slot becomes x, everything
// else is unwrapped.
func Subst[A any](x A, s Scope[A]) A {
	return FoldScope(x, func(y A) A { return y }, s)
}

// ShiftUp converts a raw de Bruijn index to scope-index form. A negative
// index is a bug in the caller and panics; validated front ends never
// produce one.
func ShiftUp(n int) Scope[int] {
	if n < 0 {
		panic(fmt.Sprintf("term: ShiftUp(%d): negative index", n))
	}
	if n == 0 {
		return Zero[int]{}
	}
	return Succ[int]{n - 1}
}

// ShiftDown is the exact inverse of ShiftUp over non-negative integers.
func ShiftDown(s Scope[int]) int {
	return FoldScope(0, func(n int) int { return n + 1 }, s)
}

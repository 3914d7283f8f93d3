package term

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/slices"
)

// Term is a lambda-calculus expression whose free variables carry values
// of type A. The body of an Abs is conceptually one placeholder level
// deeper than the abstraction itself; Go generics cannot nest the
// placeholder type per binder, so bound variables instead carry an
// explicit de Bruijn index (Var) and well-scoping is checked by Verify
// rather than by the type system.
//
// Term values are comparable whenever A is, and == is structural
// equality.
type Term[A any] interface {
	isTerm(A)
	// DeBruijnString renders the term with bare de Bruijn indices.
	DeBruijnString() string
	// ContextString renders the term with binder names, synthesizing a
	// fresh one at each abstraction. ctx names the binders already in
	// scope, innermost first.
	ContextString(ctx []string) string
}

// Ref is a free-variable placeholder leaf.
type Ref[A any] struct{ Leaf A }

// Var is a bound-variable reference: a de Bruijn index counting
// enclosing abstractions outward, zero for the nearest. A Var is well
// scoped only under at least Var+1 abstractions.
type Var[A any] int

// Abs is an abstraction; its body has one more bound variable available
// than the abstraction itself.
type Abs[A any] struct{ Body Term[A] }

// App is the application of Fn to Arg.
type App[A any] struct{ Fn, Arg Term[A] }

func (Ref[A]) isTerm(A) {}
func (Var[A]) isTerm(A) {}
func (Abs[A]) isTerm(A) {}
func (App[A]) isTerm(A) {}

// Void has no implementations, so a Term[Void] cannot carry a
// free-variable leaf.
type Void interface{ void() }

// Closed is a term proven to contain no free variables. Only Verify
// produces one.
type Closed = Term[Void]

func (t Ref[A]) DeBruijnString() string { return fmt.Sprint(t.Leaf) }

func (v Var[A]) DeBruijnString() string { return strconv.Itoa(int(v)) }

func (a Abs[A]) DeBruijnString() string { return "(λ." + a.Body.DeBruijnString() + ")" }

func (a App[A]) DeBruijnString() string {
	return "(" + a.Fn.DeBruijnString() + " " + a.Arg.DeBruijnString() + ")"
}

func pickFreshName(ctx []string, s string) ([]string, string) {
	if slices.Contains(ctx, s) {
		return pickFreshName(ctx, s+"'")
	}
	return append([]string{s}, ctx...), s
}

func (t Ref[A]) ContextString([]string) string { return fmt.Sprint(t.Leaf) }

func (v Var[A]) ContextString(ctx []string) string {
	if int(v) >= 0 && int(v) < len(ctx) {
		return ctx[v]
	}
	return "#" + strconv.Itoa(int(v))
}

func (a Abs[A]) ContextString(ctx []string) string {
	ctx, name := pickFreshName(ctx, "x")
	return "(λ" + name + "." + a.Body.ContextString(ctx) + ")"
}

func (a App[A]) ContextString(ctx []string) string {
	return "(" + a.Fn.ContextString(ctx) + " " + a.Arg.ContextString(ctx) + ")"
}

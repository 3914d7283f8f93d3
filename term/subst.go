package term

import "fmt"

// MapLeaves applies f to every free-variable leaf of t. Bound references
// are untouched: a Var is relative to its own binder and does not move
// when the placeholder type changes, so no index arithmetic is needed
// when crossing an abstraction.
func MapLeaves[A, B any](f func(A) B, t Term[A]) Term[B] {
	switch t := t.(type) {
	case Ref[A]:
		return Ref[B]{f(t.Leaf)}
	case Var[A]:
		return Var[B](t)
	case Abs[A]:
		return Abs[B]{MapLeaves(f, t.Body)}
	case App[A]:
		return App[B]{MapLeaves(f, t.Fn), MapLeaves(f, t.Arg)}
	}
	panic("unreachable")
}

// Flatten splices every leaf sub-term of a term-of-terms in place,
// producing a single term. A spliced sub-term's bound indices are
// relative to its own abstractions and a well-scoped sub-term has none
// that escape, so grafting under a binder cannot capture; its free
// leaves are depth-independent and need no shift.
func Flatten[A any](t Term[Term[A]]) Term[A] {
	switch t := t.(type) {
	case Ref[Term[A]]:
		return t.Leaf
	case Var[Term[A]]:
		return Var[A](t)
	case Abs[Term[A]]:
		return Abs[A]{Flatten(t.Body)}
	case App[Term[A]]:
		return App[A]{Flatten(t.Fn), Flatten(t.Arg)}
	}
	panic("unreachable")
}

// Abstract wraps body in a new abstraction. match decides per free leaf
// whether it becomes the newly bound variable (Zero) or stays a
// reference to an outer one (Succ). Use Match for name-based front ends
// and ShiftUp for integer-indexed ones.
func Abstract[A any](match func(A) Scope[A], body Term[A]) Abs[A] {
	return Abs[A]{abstractAt(match, 0, body)}
}

// abstractAt tracks how many binders the new abstraction sits outside
// of: a leaf matched at depth d binds as index d.
func abstractAt[A any](match func(A) Scope[A], depth int, t Term[A]) Term[A] {
	switch t := t.(type) {
	case Ref[A]:
		return FoldScope[A, Term[A]](
			Var[A](depth),
			func(x A) Term[A] { return Ref[A]{x} },
			match(t.Leaf),
		)
	case Var[A]:
		return t
	case Abs[A]:
		return Abs[A]{abstractAt(match, depth+1, t.Body)}
	case App[A]:
		return App[A]{abstractAt(match, depth, t.Fn), abstractAt(match, depth, t.Arg)}
	}
	panic("unreachable")
}

// Apply performs beta substitution: body is the body of an abstraction
// being applied to arg, so every occurrence of the eliminated binder
// becomes arg and references pointing past it shift down one level. The
// leaves are first mapped to argument-or-survivor terms, then Flatten
// splices the result; arg itself is placed structurally unchanged.
func Apply[A any](arg, body Term[A]) Term[A] {
	return Flatten(applyAt(arg, 0, body))
}

func applyAt[A any](arg Term[A], depth int, t Term[A]) Term[Term[A]] {
	switch t := t.(type) {
	case Ref[A]:
		return Ref[Term[A]]{Ref[A]{t.Leaf}}
	case Var[A]:
		switch {
		case int(t) == depth:
			return Ref[Term[A]]{arg}
		case int(t) > depth:
			return Var[Term[A]](t - 1)
		default:
			return Var[Term[A]](t)
		}
	case Abs[A]:
		return Abs[Term[A]]{applyAt(arg, depth+1, t.Body)}
	case App[A]:
		return App[Term[A]]{applyAt(arg, depth, t.Fn), applyAt(arg, depth, t.Arg)}
	}
	panic("unreachable")
}

// Verify checks that t is closed. It fails on the first free-variable
// leaf, and on any bound index that escapes its enclosing abstractions
// (the runtime stand-in for the scope-typed invariant). Failure is an
// ordinary error for the caller to handle; success rebuilds the term
// over the uninhabited placeholder type.
func Verify[A any](t Term[A]) (Closed, error) {
	return verifyAt(0, t)
}

func verifyAt[A any](depth int, t Term[A]) (Closed, error) {
	switch t := t.(type) {
	case Ref[A]:
		return nil, fmt.Errorf("open term: free variable %v", t.Leaf)
	case Var[A]:
		if int(t) < 0 || int(t) >= depth {
			return nil, fmt.Errorf("open term: index %d under %d binders", int(t), depth)
		}
		return Var[Void](t), nil
	case Abs[A]:
		body, err := verifyAt(depth+1, t.Body)
		if err != nil {
			return nil, err
		}
		return Abs[Void]{body}, nil
	case App[A]:
		fn, err := verifyAt(depth, t.Fn)
		if err != nil {
			return nil, err
		}
		arg, err := verifyAt(depth, t.Arg)
		if err != nil {
			return nil, err
		}
		return App[Void]{fn, arg}, nil
	}
	panic("unreachable")
}

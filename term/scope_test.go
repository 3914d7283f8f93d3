package term_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/lfairy/sylvia/term"
)

func TestShiftRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 1<<20).Draw(t, "n")
		if got := term.ShiftDown(term.ShiftUp(n)); got != n {
			t.Fatalf("ShiftDown(ShiftUp(%d)) = %d", n, got)
		}
	})
}

func TestShiftUp(t *testing.T) {
	if got := term.ShiftUp(0); got != (term.Zero[int]{}) {
		t.Errorf("ShiftUp(0) = %#v, want Zero", got)
	}
	if got := term.ShiftUp(3); got != (term.Succ[int]{Outer: 2}) {
		t.Errorf("ShiftUp(3) = %#v, want Succ{2}", got)
	}
}

func TestShiftUpNegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("ShiftUp(-1) did not panic")
		}
	}()
	term.ShiftUp(-1)
}

func TestMatchSubstInverse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.String().Draw(t, "x")
		y := rapid.String().Draw(t, "y")
		if got := term.Subst(x, term.Match(x)(y)); got != y {
			t.Fatalf("Subst(%q, Match(%q)(%q)) = %q", x, x, y, got)
		}
	})
}

func TestMatch(t *testing.T) {
	match := term.Match("x")
	if got := match("x"); got != (term.Zero[string]{}) {
		t.Errorf("Match(x)(x) = %#v, want Zero", got)
	}
	if got := match("y"); got != (term.Succ[string]{Outer: "y"}) {
		t.Errorf("Match(x)(y) = %#v, want Succ{y}", got)
	}
}

func TestMapScope(t *testing.T) {
	double := func(n int) int { return 2 * n }
	if got := term.MapScope(double, term.ShiftUp(0)); got != (term.Zero[int]{}) {
		t.Errorf("MapScope over Zero = %#v, want Zero", got)
	}
	if got := term.MapScope(double, term.ShiftUp(4)); got != (term.Succ[int]{Outer: 6}) {
		t.Errorf("MapScope over Succ{3} = %#v, want Succ{6}", got)
	}
}

func TestFoldScope(t *testing.T) {
	length := func(s string) int { return len(s) }
	if got := term.FoldScope(-1, length, term.Zero[string]{}); got != -1 {
		t.Errorf("FoldScope over Zero = %d, want -1", got)
	}
	if got := term.FoldScope(-1, length, term.Succ[string]{Outer: "abc"}); got != 3 {
		t.Errorf("FoldScope over Succ{abc} = %d, want 3", got)
	}
}

package parser_test

import (
	"strings"
	"testing"

	"github.com/lfairy/sylvia/parser"
	"github.com/lfairy/sylvia/term"
)

func TestParse(t *testing.T) {
	cases := []struct{ src, want string }{
		{"λx. x", "(λ.0)"},
		{`\x. \y. x`, "(λ.(λ.1))"},
		{"λx. x x", "(λ.(0 0))"},
		{"λf. λx. f (f x)", "(λ.(λ.(1 (1 0))))"},
		{"λx. λx. x", "(λ.(λ.0))"},
		{"(λx. x) (λy. y)", "((λ.0) (λ.0))"},
		{"λf. λx. λy. f x y", "(λ.(λ.(λ.((2 1) 0))))"},
		{"x", "x"},
		{"λx. y", "(λ.y)"},
		{"(x)", "x"},
	}
	for _, tc := range cases {
		got, err := parser.Parse(tc.src)
		if err != nil {
			t.Errorf("Parse(%q): %v", tc.src, err)
			continue
		}
		if s := got.DeBruijnString(); s != tc.want {
			t.Errorf("Parse(%q) = %s, want %s", tc.src, s, tc.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{
		"",
		"(",
		")",
		"λ",
		"λ.",
		"λx x",
		"x)",
		"λx. (x",
		"x @ y",
		"()",
	} {
		if _, err := parser.Parse(src); err == nil {
			t.Errorf("Parse(%q) succeeded", src)
		}
	}
}

func TestParseClosed(t *testing.T) {
	c, err := parser.ParseClosed("λf. λx. f (f x)")
	if err != nil {
		t.Fatal(err)
	}
	var _ term.Closed = c
	if got := c.ContextString(nil); got != "(λx.(λx'.(x (x x'))))" {
		t.Errorf("ContextString = %s", got)
	}
}

func TestParseClosedOpenTerm(t *testing.T) {
	_, err := parser.ParseClosed("λx. free")
	if err == nil {
		t.Fatal("ParseClosed accepted an open term")
	}
	if !strings.Contains(err.Error(), "free") {
		t.Errorf("error does not name the free variable: %v", err)
	}
}

func TestParseShadowing(t *testing.T) {
	// The inner binder wins; the outer one is unreferenced.
	got, err := parser.ParseClosed("λx. λx. x x")
	if err != nil {
		t.Fatal(err)
	}
	if s := got.DeBruijnString(); s != "(λ.(λ.(0 0)))" {
		t.Errorf("shadowed parse = %s, want (λ.(λ.(0 0)))", s)
	}
}

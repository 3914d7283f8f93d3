// Package parser turns lambda-calculus source text into terms. Free
// names survive as placeholder leaves; each binder is resolved through
// term.Abstract with a name matcher, so shadowing is handled by the core
// rather than by a name context in the parser.
package parser

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/lfairy/sylvia/term"
)

func validateToken(s string) error {
	switch s {
	case "(", ")", "λ", `\`, ".":
		return nil
	default:
		if strings.IndexFunc(s, func(r rune) bool { return r < 'A' || r > 'z' }) >= 0 {
			return fmt.Errorf("unexpected token %q", s)
		}
		return nil
	}
}

func scan(src string) ([]string, error) {
	res := strings.Fields(src)
	sep := func(c string) {
		res = lo.FlatMap(res, func(s string, _ int) (ret []string) {
			for {
				before, after, found := strings.Cut(s, c)
				if before != "" {
					ret = append(ret, before)
				}
				s = after
				if !found {
					break
				}
				ret = append(ret, c)
			}
			return ret
		})
	}
	sep("(")
	sep(")")
	sep(".")
	sep("λ")
	sep(`\`)
	for _, s := range res {
		if err := validateToken(s); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func expect(tok string, tokens []string) ([]string, error) {
	if len(tokens) == 0 {
		return nil, fmt.Errorf("expected token %q, got \"EOF\"", tok)
	}
	hd, tl := tokens[0], tokens[1:]
	if hd != tok {
		return nil, fmt.Errorf("expected token %q, got %q", tok, hd)
	}
	return tl, nil
}

func parseLambda(tokens []string) (term.Term[string], []string, error) {
	if len(tokens) == 0 {
		return nil, nil, fmt.Errorf(`expected identifier, got "EOF"`)
	}
	name, tokens := tokens[0], tokens[1:]
	switch name {
	case "(", ")", "λ", `\`, ".":
		return nil, nil, fmt.Errorf("expected identifier, got %q", name)
	}
	tokens, err := expect(".", tokens)
	if err != nil {
		return nil, nil, err
	}
	body, tokens, err := parseTerm(tokens)
	if err != nil {
		return nil, nil, err
	}
	return term.Abstract(term.Match(name), body), tokens, nil
}

func parseSingle(tokens []string) (term.Term[string], []string, error) {
	if len(tokens) == 0 {
		return nil, nil, fmt.Errorf(`unexpected token "EOF"`)
	}
	tok, rest := tokens[0], tokens[1:]
	switch tok {
	case ")", ".":
		return nil, nil, fmt.Errorf("unexpected token %q", tok)
	case "(":
		t, rest, err := parseTerm(rest)
		if err != nil {
			return nil, nil, err
		}
		rest, err = expect(")", rest)
		if err != nil {
			return nil, nil, err
		}
		return t, rest, nil
	case "λ", `\`:
		return parseLambda(rest)
	}
	return term.Ref[string]{Leaf: tok}, rest, nil
}

// parseTerm parses a run of juxtaposed terms; application associates to
// the left.
func parseTerm(tokens []string) (term.Term[string], []string, error) {
	t, tokens, err := parseSingle(tokens)
	if err != nil {
		return nil, nil, err
	}
	for len(tokens) > 0 && tokens[0] != ")" {
		arg, rest, err := parseSingle(tokens)
		if err != nil {
			return nil, nil, err
		}
		t = term.App[string]{Fn: t, Arg: arg}
		tokens = rest
	}
	return t, tokens, nil
}

// Parse parses source text into a term whose free variables are the
// source's unbound names.
func Parse(src string) (term.Term[string], error) {
	tokens, err := scan(src)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf(`expected term, got "EOF"`)
	}
	t, tokens, err := parseTerm(tokens)
	if err != nil {
		return nil, err
	}
	if len(tokens) != 0 {
		return nil, fmt.Errorf("expected token \"EOF\", got %q", tokens[0])
	}
	return t, nil
}

// ParseClosed parses and verifies, so the result is proven to have no
// free variables.
func ParseClosed(src string) (term.Closed, error) {
	t, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return term.Verify(t)
}

package ll

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"golang.org/x/exp/slices"
)

// symbolContent is the canonical form of a symbol.
type symbolContent struct {
	Nonterminal bool
	Type        string
	Value       string
}

type ruleContent struct {
	LHS symbolContent
	RHS []symbolContent
}

// grammarContent is the canonical form of a grammar's content, hashed by Fingerprint.
type grammarContent struct {
	Terminals    []symbolContent
	Nonterminals []symbolContent
	Rules        []ruleContent
}

func (s Symbol[T, N]) content() symbolContent {
	if s.nonterm {
		return symbolContent{Nonterminal: true, Type: fmt.Sprintf("%T", s.n), Value: fmt.Sprintf("%#v", s.n)}
	}
	return symbolContent{Type: fmt.Sprintf("%T", s.t), Value: fmt.Sprintf("%#v", s.t)}
}

func compareSymbols(a, b symbolContent) int {
	if a.Nonterminal != b.Nonterminal {
		if a.Nonterminal {
			return 1
		}
		return -1
	}
	if c := strings.Compare(a.Type, b.Type); c != 0 {
		return c
	}
	return strings.Compare(a.Value, b.Value)
}

func compareRules(a, b ruleContent) int {
	if c := compareSymbols(a.LHS, b.LHS); c != 0 {
		return c
	}
	return slices.CompareFunc(a.RHS, b.RHS, compareSymbols)
}

// Fingerprint returns a hash of the content of g: its alphabets and rules.
// The name of a grammar and the order of declarations do not influence the
// fingerprint. Symbols are hashed by type and Go-syntax value, so grammars
// over symbol types with ambiguous %#v output (e.g. pointers) may share a
// fingerprint without being equal.
func (g *Grammar[T, N]) Fingerprint() (string, error) {
	var c grammarContent
	for _, t := range g.terminals {
		c.Terminals = append(c.Terminals, Symbol[T, N]{t: t}.content())
	}
	for _, n := range g.nonterminals {
		c.Nonterminals = append(c.Nonterminals, Symbol[T, N]{nonterm: true, n: n}.content())
	}
	for i, n := range g.nonterminals {
		lhs := Symbol[T, N]{nonterm: true, n: n}.content()
		for _, rhs := range g.alts[i] {
			r := ruleContent{LHS: lhs, RHS: []symbolContent{}}
			for _, sym := range rhs {
				r.RHS = append(r.RHS, sym.content())
			}
			c.Rules = append(c.Rules, r)
		}
	}
	slices.SortFunc(c.Terminals, compareSymbols)
	slices.SortFunc(c.Nonterminals, compareSymbols)
	slices.SortFunc(c.Rules, compareRules)
	return structhash.Hash(c, 1)
}

package ll

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Grammar is a validated context-free grammar. Grammars are immutable after
// construction.
//
// Internally every terminal and non-terminal is mapped to a small integer
// (its position in the declaration order), and all analysis operates on
// these indices.
type Grammar[T, N comparable] struct {
	Name         string
	terminals    []T
	nonterminals []N
	tindex       map[T]int
	nindex       map[N]int
	alts         [][]Sequence[T, N] // alternatives per non-terminal index
	rules        [][][]ref          // alts, encoded
}

// ref is an encoded grammar symbol: an index into either the terminals or
// the non-terminals of a grammar.
type ref struct {
	id      int
	nonterm bool
}

// New creates a grammar from a set of terminals, a set of non-terminals and
// the alternatives for every non-terminal.
//
// The alphabets are sets: duplicates collapse. Their order determines the order
// of every traversal and of every report. Duplicate alternatives of a non-terminal
// collapse as well.
//
// New checks that every symbol used in a production is declared, and that every
// non-terminal has an entry with at least one alternative. It returns a
// *ValidationError for the first defect found.
func New[T, N comparable](terminals []T, nonterminals []N, productions map[N][]Sequence[T, N]) (*Grammar[T, N], error) {
	g := &Grammar[T, N]{
		tindex: make(map[T]int, len(terminals)),
		nindex: make(map[N]int, len(nonterminals)),
	}
	for _, t := range terminals {
		if _, ok := g.tindex[t]; !ok {
			g.tindex[t] = len(g.terminals)
			g.terminals = append(g.terminals, t)
		}
	}
	for _, n := range nonterminals {
		if _, ok := g.nindex[n]; !ok {
			g.nindex[n] = len(g.nonterminals)
			g.nonterminals = append(g.nonterminals, n)
		}
	}
	if err := g.validate(productions); err != nil {
		tracer().Debugf("grammar validation failed: %v", err)
		return nil, err
	}
	g.alts = make([][]Sequence[T, N], len(g.nonterminals))
	g.rules = make([][][]ref, len(g.nonterminals))
	for i, n := range g.nonterminals {
		for _, rhs := range productions[n] {
			if slices.ContainsFunc(g.alts[i], rhs.Equals) {
				continue // alternatives form a set
			}
			g.alts[i] = append(g.alts[i], rhs.clone())
			g.rules[i] = append(g.rules[i], g.encode(rhs))
		}
	}
	return g, nil
}

func (g *Grammar[T, N]) validate(productions map[N][]Sequence[T, N]) error {
	// left-hand sides which are not declared; sorted for a stable report
	undeclared := slices.DeleteFunc(maps.Keys(productions), g.hasNonterminal)
	if len(undeclared) > 0 {
		slices.SortStableFunc(undeclared, func(a, b N) int {
			return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
		})
		lhs := undeclared[0]
		err := &ValidationError[T, N]{Kind: UnknownNonterminalInProduction, Nonterminal: lhs}
		if alts := productions[lhs]; len(alts) > 0 {
			err.Production = &Production[T, N]{LHS: lhs, RHS: alts[0].clone()}
		}
		return err
	}
	for _, n := range g.nonterminals {
		for _, rhs := range productions[n] {
			for _, sym := range rhs {
				if t, ok := sym.AsTerminal(); ok {
					if _, ok = g.tindex[t]; !ok {
						return &ValidationError[T, N]{
							Kind:       UnknownTerminalInProduction,
							Terminal:   t,
							Production: &Production[T, N]{LHS: n, RHS: rhs.clone()},
						}
					}
				} else if A, _ := sym.AsNonterminal(); !g.hasNonterminal(A) {
					return &ValidationError[T, N]{
						Kind:        UnknownNonterminalInProduction,
						Nonterminal: A,
						Production:  &Production[T, N]{LHS: n, RHS: rhs.clone()},
					}
				}
			}
		}
	}
	for _, n := range g.nonterminals {
		if _, ok := productions[n]; !ok {
			return &ValidationError[T, N]{Kind: MissingProductionsForNonterminal, Nonterminal: n}
		}
	}
	for _, n := range g.nonterminals {
		if len(productions[n]) == 0 {
			return &ValidationError[T, N]{Kind: NoAlternativesForNonterminal, Nonterminal: n}
		}
	}
	return nil
}

func (g *Grammar[T, N]) encode(rhs Sequence[T, N]) []ref {
	r := make([]ref, len(rhs))
	for i, sym := range rhs {
		if sym.nonterm {
			r[i] = ref{id: g.nindex[sym.n], nonterm: true}
		} else {
			r[i] = ref{id: g.tindex[sym.t]}
		}
	}
	return r
}

func (g *Grammar[T, N]) hasNonterminal(n N) bool {
	_, ok := g.nindex[n]
	return ok
}

// --- Accessors -------------------------------------------------------------

// Terminals returns the terminals of g in declaration order.
func (g *Grammar[T, N]) Terminals() []T {
	return slices.Clone(g.terminals)
}

// Nonterminals returns the non-terminals of g in declaration order.
func (g *Grammar[T, N]) Nonterminals() []N {
	return slices.Clone(g.nonterminals)
}

// IsTerminal is a predicate: is t a terminal of g?
func (g *Grammar[T, N]) IsTerminal(t T) bool {
	_, ok := g.tindex[t]
	return ok
}

// IsNonterminal is a predicate: is n a non-terminal of g?
func (g *Grammar[T, N]) IsNonterminal(n N) bool {
	return g.hasNonterminal(n)
}

// Productions returns a copy of the production mapping of g.
func (g *Grammar[T, N]) Productions() map[N][]Sequence[T, N] {
	m := make(map[N][]Sequence[T, N], len(g.nonterminals))
	for _, n := range g.nonterminals {
		m[n] = g.Alternatives(n)
	}
	return m
}

// Alternatives returns the right-hand sides for non-terminal n. The order of
// alternatives is stable; parse tables refer to alternatives by their position
// in this list.
func (g *Grammar[T, N]) Alternatives(n N) []Sequence[T, N] {
	i, ok := g.nindex[n]
	if !ok {
		return nil
	}
	alts := make([]Sequence[T, N], len(g.alts[i]))
	for j, rhs := range g.alts[i] {
		alts[j] = rhs.clone()
	}
	return alts
}

// Rules returns all productions of g, ordered by non-terminal and alternative.
func (g *Grammar[T, N]) Rules() []Production[T, N] {
	var rules []Production[T, N]
	for i, n := range g.nonterminals {
		for _, rhs := range g.alts[i] {
			rules = append(rules, Production[T, N]{LHS: n, RHS: rhs.clone()})
		}
	}
	return rules
}

// EachNonterminal calls f for every non-terminal, in declaration order.
func (g *Grammar[T, N]) EachNonterminal(f func(N)) {
	for _, n := range g.nonterminals {
		f(n)
	}
}

// TerminalsIn returns the members of a terminal set in declaration order of g.
// Values which are not terminals of g are dropped.
func (g *Grammar[T, N]) TerminalsIn(set TerminalSet[T]) []T {
	r := make([]T, 0, len(set))
	for _, t := range g.terminals {
		if set.Contains(t) {
			r = append(r, t)
		}
	}
	return r
}

// Dump is a debugging helper, tracing all rules at debug level.
func (g *Grammar[T, N]) Dump() {
	tracer().Debugf("--- grammar %s ------------------------------", g.Name)
	k := 0
	for i, n := range g.nonterminals {
		for _, rhs := range g.alts[i] {
			tracer().Debugf("%3d: [%v] ::= [%s]", k, n, rhs)
			k++
		}
	}
	tracer().Debugf("-------------------------------------------")
}

func (g *Grammar[T, N]) String() string {
	return fmt.Sprintf("grammar %s (%d terminals, %d non-terminals, %d rules)",
		g.Name, len(g.terminals), len(g.nonterminals), len(g.Rules()))
}

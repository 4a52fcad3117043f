package ll

import (
	"golang.org/x/tools/container/intsets"
)

// LL1Grammar is a grammar which has been verified to satisfy both LL(1) rules:
//
//  1. For every non-terminal A → β1 | β2 | … | βn, the sets FIRST(βi) are
//     pairwise disjoint.
//  2. For every nullable non-terminal A, FIRST(A) and FOLLOW(A) are disjoint.
//
// LL1Grammar gives read access to the underlying grammar and to the results
// of the grammar analysis.
type LL1Grammar[T, N comparable] struct {
	ga    *GrammarAnalysis[T, N]
	table *ParseTable[T, N]
}

// NewLL1 checks if g is LL(1). It checks every non-terminal against both rules
// and collects all the violations found. If there are any, NewLL1 returns them
// as an error of type Violations[T, N], with Rule1 violations preceding Rule2
// violations, each in declaration order of the non-terminals.
func NewLL1[T, N comparable](g *Grammar[T, N]) (*LL1Grammar[T, N], error) {
	ga := Analysis(g)
	if vs := ga.Violations(); len(vs) > 0 {
		tracer().Infof("%s is not LL(1): %d violations", g, len(vs))
		for _, v := range vs {
			tracer().Debugf("    %s", v)
		}
		return nil, vs
	}
	ll1 := &LL1Grammar[T, N]{ga: ga, table: BuildParseTable(ga)}
	tracer().Infof("%s is LL(1)", g)
	return ll1, nil
}

// Violations checks both LL(1) rules for every non-terminal of the analysed
// grammar. It returns nil if the grammar is LL(1).
func (ga *GrammarAnalysis[T, N]) Violations() Violations[T, N] {
	var vs Violations[T, N]
	for i := range ga.g.nonterminals {
		if v, ok := ga.rule1(i); !ok {
			vs = append(vs, v)
		}
	}
	for i := range ga.g.nonterminals {
		if v, ok := ga.rule2(i); !ok {
			vs = append(vs, v)
		}
	}
	return vs
}

// rule1 accumulates the FIRST sets of all alternatives of non-terminal i,
// checking each against the union of its predecessors.
func (ga *GrammarAnalysis[T, N]) rule1(i int) (Violation[T, N], bool) {
	var seen, conflicts, common intsets.Sparse
	for j := range ga.g.rules[i] {
		first, _ := ga.firstOfRule(i, j)
		common.Intersection(&seen, first)
		conflicts.UnionWith(&common)
		seen.UnionWith(first)
	}
	if conflicts.IsEmpty() {
		return Violation[T, N]{}, true
	}
	return Violation[T, N]{
		Rule:        Rule1,
		Nonterminal: ga.g.nonterminals[i],
		Lookahead:   ga.g.decodeOrdered(&conflicts),
	}, false
}

func (ga *GrammarAnalysis[T, N]) rule2(i int) (Violation[T, N], bool) {
	if !ga.nullable[i] {
		return Violation[T, N]{}, true
	}
	var common intsets.Sparse
	common.Intersection(ga.first[i], ga.follow[i])
	if common.IsEmpty() {
		return Violation[T, N]{}, true
	}
	return Violation[T, N]{
		Rule:        Rule2,
		Nonterminal: ga.g.nonterminals[i],
		Lookahead:   ga.g.decodeOrdered(&common),
	}, false
}

// --- Accessors -------------------------------------------------------------

// Grammar returns the underlying grammar.
func (ll1 *LL1Grammar[T, N]) Grammar() *Grammar[T, N] {
	return ll1.ga.g
}

// Analysis returns the grammar analysis ll1 is based on.
func (ll1 *LL1Grammar[T, N]) Analysis() *GrammarAnalysis[T, N] {
	return ll1.ga
}

// FirstSets returns the FIRST set of every non-terminal.
func (ll1 *LL1Grammar[T, N]) FirstSets() FirstTable[T, N] {
	return ll1.ga.FirstSets()
}

// FollowSets returns the FOLLOW set of every non-terminal.
func (ll1 *LL1Grammar[T, N]) FollowSets() FollowTable[T, N] {
	return ll1.ga.FollowSets()
}

// PredictSets returns the PREDICT set of every non-terminal.
func (ll1 *LL1Grammar[T, N]) PredictSets() PredictTable[T, N] {
	return ll1.ga.PredictSets()
}

// NullableSet tells for every non-terminal whether it derives ε.
func (ll1 *LL1Grammar[T, N]) NullableSet() NullableTable[N] {
	return ll1.ga.NullableSet()
}

// ParseTable returns the LL(1) parse table. A cell may hold more than one
// alternative only if these alternatives all derive ε, see HasConflicts.
func (ll1 *LL1Grammar[T, N]) ParseTable() *ParseTable[T, N] {
	return ll1.table
}

// Terminals returns the terminals of the underlying grammar.
func (ll1 *LL1Grammar[T, N]) Terminals() []T {
	return ll1.ga.g.Terminals()
}

// Nonterminals returns the non-terminals of the underlying grammar.
func (ll1 *LL1Grammar[T, N]) Nonterminals() []N {
	return ll1.ga.g.Nonterminals()
}

// Productions returns the productions of the underlying grammar.
func (ll1 *LL1Grammar[T, N]) Productions() map[N][]Sequence[T, N] {
	return ll1.ga.g.Productions()
}

// Alternatives returns the right-hand sides of non-terminal n.
func (ll1 *LL1Grammar[T, N]) Alternatives(n N) []Sequence[T, N] {
	return ll1.ga.g.Alternatives(n)
}

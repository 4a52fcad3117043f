package ll

import (
	"fmt"

	"golang.org/x/tools/container/intsets"
)

// GrammarAnalysis holds the results of a static analysis of a grammar: nullability,
// and FIRST, FOLLOW and PREDICT sets for every non-terminal.
type GrammarAnalysis[T, N comparable] struct {
	g        *Grammar[T, N]
	nullable []bool
	first    termsets
	follow   termsets
	predict  termsets
	passes   [3]int // iterations until nullable, FIRST and FOLLOW converged
}

// Analysis performs a static analysis of a grammar. It computes all the sets
// eagerly. Analysis never fails: every validated grammar (including
// left-recursive or cyclic ones) has well-defined sets.
func Analysis[T, N comparable](g *Grammar[T, N]) *GrammarAnalysis[T, N] {
	ga := &GrammarAnalysis[T, N]{g: g}
	ga.nullable, ga.passes[0] = nullableOf(g.rules)
	ga.first, ga.passes[1] = firstOf(g.rules, ga.nullable)
	ga.follow, ga.passes[2] = followOf(g.rules, ga.first, ga.nullable)
	ga.predict = predictOf(ga.first, ga.follow, ga.nullable)
	tracer().Infof("analysed %s in %d/%d/%d passes", g, ga.passes[0], ga.passes[1], ga.passes[2])
	return ga
}

// Grammar returns the grammar analysed.
func (ga *GrammarAnalysis[T, N]) Grammar() *Grammar[T, N] {
	return ga.g
}

// Nullable is a predicate: does non-terminal A derive ε?
// Unknown non-terminals are not nullable.
func (ga *GrammarAnalysis[T, N]) Nullable(A N) bool {
	i, ok := ga.g.nindex[A]
	return ok && ga.nullable[i]
}

// First returns FIRST(A). The result is a fresh set which clients may modify.
func (ga *GrammarAnalysis[T, N]) First(A N) TerminalSet[T] {
	return ga.lookup(ga.first, A)
}

// Follow returns FOLLOW(A).
func (ga *GrammarAnalysis[T, N]) Follow(A N) TerminalSet[T] {
	return ga.lookup(ga.follow, A)
}

// Predict returns PREDICT(A), i.e., FIRST(A) ∪ FOLLOW(A) for nullable A
// and FIRST(A) otherwise.
func (ga *GrammarAnalysis[T, N]) Predict(A N) TerminalSet[T] {
	return ga.lookup(ga.predict, A)
}

func (ga *GrammarAnalysis[T, N]) lookup(sets termsets, A N) TerminalSet[T] {
	if i, ok := ga.g.nindex[A]; ok {
		return ga.g.decode(sets[i])
	}
	return TerminalSet[T]{}
}

// FirstOfSequence returns FIRST of an arbitrary sequence of symbols, and
// whether the whole sequence derives ε.
//
// Symbols not part of the grammar are treated like this: an unknown terminal
// is a terminal nevertheless; an unknown non-terminal derives nothing, thus
// ends the sequence.
func (ga *GrammarAnalysis[T, N]) FirstOfSequence(seq Sequence[T, N]) (TerminalSet[T], bool) {
	set := TerminalSet[T]{}
	for _, sym := range seq {
		if t, ok := sym.AsTerminal(); ok {
			set[t] = struct{}{}
			return set, false
		}
		A, _ := sym.AsNonterminal()
		i, ok := ga.g.nindex[A]
		if !ok {
			return set, false
		}
		for t := range ga.g.decode(ga.first[i]) {
			set[t] = struct{}{}
		}
		if !ga.nullable[i] {
			return set, false
		}
	}
	return set, true
}

// firstOfRule returns FIRST and nullability of alternative j of non-terminal i.
func (ga *GrammarAnalysis[T, N]) firstOfRule(i, j int) (*intsets.Sparse, bool) {
	return firstOfSeq(ga.g.rules[i][j], ga.first, ga.nullable)
}

// predictOfRule returns the lookahead set selecting alternative j of non-terminal i.
func (ga *GrammarAnalysis[T, N]) predictOfRule(i, j int) *intsets.Sparse {
	f, nullable := ga.firstOfRule(i, j)
	if nullable {
		f.UnionWith(ga.follow[i])
	}
	return f
}

// NullableSet returns the nullability table.
func (ga *GrammarAnalysis[T, N]) NullableSet() NullableTable[N] {
	return ga.g.decodeNullable(ga.nullable)
}

// FirstSets returns the FIRST table.
func (ga *GrammarAnalysis[T, N]) FirstSets() FirstTable[T, N] {
	return ga.g.decodeTable(ga.first)
}

// FollowSets returns the FOLLOW table.
func (ga *GrammarAnalysis[T, N]) FollowSets() FollowTable[T, N] {
	return ga.g.decodeTable(ga.follow)
}

// PredictSets returns the PREDICT table.
func (ga *GrammarAnalysis[T, N]) PredictSets() PredictTable[T, N] {
	return ga.g.decodeTable(ga.predict)
}

// Passes returns the number of iterations the fixed-point computations for
// nullability, FIRST and FOLLOW needed to converge.
func (ga *GrammarAnalysis[T, N]) Passes() (nullable, first, follow int) {
	return ga.passes[0], ga.passes[1], ga.passes[2]
}

// Dump is a debugging helper, tracing all the sets at debug level.
func (ga *GrammarAnalysis[T, N]) Dump() {
	g := ga.g
	tracer().Debugf("--- analysis of %s ----------------------------", g.Name)
	for i, A := range g.nonterminals {
		nl := ""
		if ga.nullable[i] {
			nl = " (nullable)"
		}
		tracer().Debugf("%v%s", A, nl)
		tracer().Debugf("    FIRST   = %v", g.decodeOrdered(ga.first[i]))
		tracer().Debugf("    FOLLOW  = %v", g.decodeOrdered(ga.follow[i]))
		tracer().Debugf("    PREDICT = %v", g.decodeOrdered(ga.predict[i]))
	}
	tracer().Debugf("-------------------------------------------")
}

func (ga *GrammarAnalysis[T, N]) String() string {
	return fmt.Sprintf("analysis of %s", ga.g)
}

package ll

import (
	"errors"
	"testing"
	"unicode"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// Helpers: sequences over strings, where symbols starting with an upper case
// letter are non-terminals and everything else is a terminal.

func seq(syms ...string) Sequence[string, string] {
	s := Sequence[string, string]{}
	for _, sym := range syms {
		if unicode.IsUpper([]rune(sym)[0]) {
			s = append(s, N[string](sym))
		} else {
			s = append(s, T[string, string](sym))
		}
	}
	return s
}

func rule(b *GrammarBuilder, lhs string, rhs ...string) {
	rb := b.LHS(lhs)
	for _, sym := range rhs {
		if unicode.IsUpper([]rune(sym)[0]) {
			rb.N(sym)
		} else {
			rb.T(sym)
		}
	}
	rb.End()
}

// The classic expression grammar
//
//     S   → E0 $
//     E0  → E1 E0'
//     E0' → + E1 E0' | - E1 E0' | ε
//     E1  → E2 E1'
//     E1' → * E2 E1' | / E2 E1' | ε
//     E2  → n | ( E0 )
//
func makeExprGrammar(t *testing.T) *Grammar[string, string] {
	b := NewGrammarBuilder("Expr")
	rule(b, "S", "E0", "$")
	rule(b, "E0", "E1", "E0'")
	rule(b, "E0'", "+", "E1", "E0'")
	rule(b, "E0'", "-", "E1", "E0'")
	b.LHS("E0'").Epsilon()
	rule(b, "E1", "E2", "E1'")
	rule(b, "E1'", "*", "E2", "E1'")
	rule(b, "E1'", "/", "E2", "E1'")
	b.LHS("E1'").Epsilon()
	rule(b, "E2", "n")
	rule(b, "E2", "(", "E0", ")")
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("Could not create expression grammar: %v", err)
	}
	return g
}

// --- the Tests -------------------------------------------------------------

func TestSymbolKinds(t *testing.T) {
	a := T[string, string]("a")
	A := N[string]("a")
	if a == A {
		t.Errorf("Expected terminal a to differ from non-terminal a")
	}
	if a != T[string, string]("a") {
		t.Errorf("Expected terminal a to equal terminal a")
	}
	if tv, ok := a.AsTerminal(); !ok || tv != "a" {
		t.Errorf("Expected a to be terminal 'a', is %v/%v", tv, ok)
	}
	if _, ok := A.AsTerminal(); ok {
		t.Errorf("Expected A not to be a terminal")
	}
	if seq().String() != "ε" {
		t.Errorf("Expected empty sequence to print as ε, is %q", seq().String())
	}
}

func TestGrammarNew(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	g, err := New([]string{"a", "b", "a"}, []string{"S", "A"}, map[string][]Sequence[string, string]{
		"S": {seq("A", "b"), seq("A", "b")},
		"A": {seq("a"), seq()},
	})
	if err != nil {
		t.Fatal(err)
	}
	g.Dump()
	if len(g.Terminals()) != 2 {
		t.Errorf("Expected duplicate terminals to collapse, have %v", g.Terminals())
	}
	if len(g.Alternatives("S")) != 1 {
		t.Errorf("Expected duplicate alternatives to collapse, have %v", g.Alternatives("S"))
	}
	if alts := g.Alternatives("A"); len(alts) != 2 || !alts[1].IsEpsilon() {
		t.Errorf("Expected A → a | ε, have %v", alts)
	}
	if g.Alternatives("X") != nil {
		t.Errorf("Expected no alternatives for unknown non-terminal")
	}
	if len(g.Rules()) != 3 {
		t.Errorf("Expected 3 rules, have %d", len(g.Rules()))
	}
	if !g.IsTerminal("a") || g.IsTerminal("S") || !g.IsNonterminal("S") {
		t.Errorf("Symbol predicates broken")
	}
	// returned alternatives are copies
	alts := g.Alternatives("A")
	alts[0][0] = T[string, string]("b")
	if g.Alternatives("A")[0][0] != T[string, string]("a") {
		t.Errorf("Expected grammar to be immutable")
	}
}

func TestGrammarValidation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	type prods = map[string][]Sequence[string, string]
	for i, c := range []struct {
		prods    prods
		sentinel error
		kind     ValidationErrorKind
		culprit  string
	}{
		{prods{"S": {seq("x")}}, ErrUnknownTerminal, UnknownTerminalInProduction, "x"},
		{prods{"S": {seq("a", "X")}}, ErrUnknownNonterminal, UnknownNonterminalInProduction, "X"},
		{prods{"S": {seq("a")}, "Z": {seq("a")}}, ErrUnknownNonterminal, UnknownNonterminalInProduction, "Z"},
		{prods{"S": {seq("A")}}, ErrMissingProductions, MissingProductionsForNonterminal, "A"},
		{prods{"S": {seq("A")}, "A": {}}, ErrNoAlternatives, NoAlternativesForNonterminal, "A"},
	} {
		_, err := New([]string{"a"}, []string{"S", "A"}, c.prods)
		if err == nil {
			t.Errorf("#%d: Expected validation error, got none", i)
			continue
		}
		if !errors.Is(err, c.sentinel) {
			t.Errorf("#%d: Expected error to be %v, is %v", i, c.sentinel, err)
		}
		var verr *ValidationError[string, string]
		if !errors.As(err, &verr) {
			t.Fatalf("#%d: Expected a *ValidationError, is %T", i, err)
		}
		if verr.Kind != c.kind {
			t.Errorf("#%d: Expected kind %s, is %s", i, c.kind, verr.Kind)
		}
		culprit := verr.Nonterminal
		if verr.Kind == UnknownTerminalInProduction {
			culprit = verr.Terminal
		}
		if culprit != c.culprit {
			t.Errorf("#%d: Expected offending symbol %q, is %q", i, c.culprit, culprit)
		}
		t.Logf("#%d: %v", i, err)
	}
}

func TestGrammarValidationOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	// an undeclared left-hand side is reported before an unknown terminal,
	// undeclared left-hand sides in sorted order
	_, err := New([]string{"a"}, []string{"S"}, map[string][]Sequence[string, string]{
		"S": {seq("x")},
		"Y": {seq("a")},
		"X": {seq("a")},
	})
	var verr *ValidationError[string, string]
	if !errors.As(err, &verr) || verr.Nonterminal != "X" {
		t.Errorf("Expected undeclared non-terminal X to be reported, have %v", err)
	}
	if verr != nil && (verr.Production == nil || verr.Production.LHS != "X") {
		t.Errorf("Expected offending production X → a, have %v", verr.Production)
	}
}

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	g := makeExprGrammar(t)
	if g.Name != "Expr" {
		t.Errorf("Expected grammar name to be Expr, is %q", g.Name)
	}
	if n := len(g.Nonterminals()); n != 6 {
		t.Errorf("Expected 6 non-terminals, have %d", n)
	}
	if n := len(g.Terminals()); n != 8 {
		t.Errorf("Expected 8 terminals, have %d", n)
	}
	if g.Nonterminals()[0] != "S" || g.Terminals()[0] != "$" {
		t.Errorf("Expected symbols in order of appearance, have %v / %v", g.Nonterminals(), g.Terminals())
	}
	b := NewGrammarBuilder("Broken")
	rule(b, "S", "A")
	if _, err := b.Grammar(); !errors.Is(err, ErrMissingProductions) {
		t.Errorf("Expected missing productions for A, have %v", err)
	}
}

func TestFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	g1, _ := New([]string{"a", "b"}, []string{"S", "A"}, map[string][]Sequence[string, string]{
		"S": {seq("A", "b")},
		"A": {seq("a"), seq()},
	})
	g2, _ := New([]string{"b", "a"}, []string{"A", "S"}, map[string][]Sequence[string, string]{
		"S": {seq("A", "b")},
		"A": {seq(), seq("a")},
	})
	g3, _ := New([]string{"a", "b"}, []string{"S", "A"}, map[string][]Sequence[string, string]{
		"S": {seq("A", "b")},
		"A": {seq("a")},
	})
	f1, err := g1.Fingerprint()
	if err != nil {
		t.Fatal(err)
	}
	f2, _ := g2.Fingerprint()
	f3, _ := g3.Fingerprint()
	if f1 != f2 {
		t.Errorf("Expected fingerprints to ignore declaration order: %s vs %s", f1, f2)
	}
	if f1 == f3 {
		t.Errorf("Expected different grammars to have different fingerprints")
	}
	// a terminal containing blanks is not a sequence of terminals
	terms := []string{"a", "b", "a t:b"}
	g4, _ := New(terms, []string{"S"}, map[string][]Sequence[string, string]{
		"S": {seq("a t:b")},
	})
	g5, _ := New(terms, []string{"S"}, map[string][]Sequence[string, string]{
		"S": {seq("a", "b")},
	})
	f4, _ := g4.Fingerprint()
	f5, _ := g5.Fingerprint()
	if f4 == f5 {
		t.Errorf("Expected fingerprints of S → 'a t:b' and S → a b to differ")
	}
	// symbol types are part of the fingerprint
	g6, _ := New([]int{1}, []string{"S"}, map[string][]Sequence[int, string]{
		"S": {{T[int, string](1)}},
	})
	g7, _ := New([]string{"1"}, []string{"S"}, map[string][]Sequence[string, string]{
		"S": {seq("1")},
	})
	f6, _ := g6.Fingerprint()
	f7, _ := g7.Fingerprint()
	if f6 == f7 {
		t.Errorf("Expected fingerprints of int and string terminals to differ")
	}
}

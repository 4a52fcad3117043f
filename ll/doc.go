/*
Package ll implements grammar analysis for predictive (LL(1)) parsing.

Building a Grammar

Grammars are generic over a terminal alphabet T and a non-terminal alphabet N,
both of which may be any comparable Go type (token kinds, strings, …).
A grammar is validated once, at construction time:

    terminals := []string{"a", "b"}
    nonterminals := []string{"S", "A"}
    g, err := ll.New(terminals, nonterminals, map[string][]ll.Sequence[string, string]{
        "S": {{ll.N[string]("A"), ll.T[string, string]("b")}},   // S → A b
        "A": {{ll.T[string, string]("a")}, {}},                  // A → a | ε
    })

For grammars over strings, a grammar builder object is more convenient.
Clients add rules, consisting of non-terminal symbols and terminals.
Grammars may contain epsilon-productions.

    b := ll.NewGrammarBuilder("G")
    b.LHS("S").N("A").T("b").End()     // S  ->  A b
    b.LHS("A").T("a").End()            // A  ->  a
    b.LHS("A").Epsilon()               // A  ->
    g, err := b.Grammar()

Static Grammar Analysis

After the grammar is complete, it may be analysed. Analysis computes which
non-terminals derive the empty string, and FIRST, FOLLOW and PREDICT sets for
every non-terminal. All of these are computed as global fixed points over the
whole grammar, therefore left-recursive and cyclic grammars are fine.

    ga := ll.Analysis(g)
    g.EachNonterminal(func(A string) {
        fmt.Printf("FIRST(%s) = %v\n", A, g.TerminalsIn(ga.First(A)))
    })

    // Output:
    FIRST(S) = [a b]
    FIRST(A) = [a]

FOLLOW is defined over every occurrence of a non-terminal in every rule; there
is no distinguished start symbol. Clients who need end-of-input detection
add an explicit end marker, e.g. S' → S #eof.

LL(1) Grammars

NewLL1 checks the two LL(1) conditions for every non-terminal and either
returns an LL1Grammar, exposing all the sets and an LL(1) parse table, or a
list of all the violations found.

    ll1, err := ll.NewLL1(g)
    var violations ll.Violations[string, string]
    if errors.As(err, &violations) {
        …
    }
    table := ll1.ParseTable()
    rhs, ok := table.Lookup("A", "a")   // rhs = [a]

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predict.ll'.
func tracer() tracing.Trace {
	return tracing.Select("predict.ll")
}

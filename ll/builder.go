package ll

// GrammarBuilder is a helper for creating grammars over strings. Terminals and
// non-terminals are declared implicitly, in order of their first appearance.
//
//    b := ll.NewGrammarBuilder("G")
//    b.LHS("S").N("A").T("b").End()     // S  ->  A b
//    b.LHS("A").T("a").End()            // A  ->  a
//    b.LHS("A").Epsilon()               // A  ->
//    g, err := b.Grammar()
//
// Non-terminals referenced on a right-hand side, but never appearing as a
// left-hand side, will cause Grammar() to fail with ErrMissingProductions.
type GrammarBuilder struct {
	name         string
	terminals    []string
	nonterminals []string
	seen         map[string]bool // symbols declared so far, prefixed with their kind
	productions  map[string][]Sequence[string, string]
}

// RuleBuilder collects the right-hand side of a single rule. Create one with
// GrammarBuilder.LHS.
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs string
	rhs Sequence[string, string]
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar to build.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	return &GrammarBuilder{
		name:        gname,
		seen:        make(map[string]bool),
		productions: make(map[string][]Sequence[string, string]),
	}
}

// LHS starts a rule given the left hand side symbol (non-terminal).
func (gb *GrammarBuilder) LHS(s string) *RuleBuilder {
	gb.nonterminal(s)
	return &RuleBuilder{gb: gb, lhs: s}
}

// Terminals declares terminals explicitly. This is useful for terminals which
// do not occur in any rule, but should be part of the grammar's alphabet.
func (gb *GrammarBuilder) Terminals(names ...string) *GrammarBuilder {
	for _, t := range names {
		gb.terminal(t)
	}
	return gb
}

func (gb *GrammarBuilder) terminal(s string) {
	if !gb.seen["t:"+s] {
		gb.seen["t:"+s] = true
		gb.terminals = append(gb.terminals, s)
	}
}

func (gb *GrammarBuilder) nonterminal(s string) {
	if !gb.seen["n:"+s] {
		gb.seen["n:"+s] = true
		gb.nonterminals = append(gb.nonterminals, s)
	}
}

// N appends a non-terminal to the builder.
func (rb *RuleBuilder) N(s string) *RuleBuilder {
	rb.gb.nonterminal(s)
	rb.rhs = append(rb.rhs, N[string](s))
	return rb
}

// T appends a terminal to the builder.
func (rb *RuleBuilder) T(s string) *RuleBuilder {
	rb.gb.terminal(s)
	rb.rhs = append(rb.rhs, T[string, string](s))
	return rb
}

// End a rule.
func (rb *RuleBuilder) End() Production[string, string] {
	rb.gb.productions[rb.lhs] = append(rb.gb.productions[rb.lhs], rb.rhs)
	tracer().Debugf("builder: %v ::= %v", rb.lhs, rb.rhs)
	return Production[string, string]{LHS: rb.lhs, RHS: rb.rhs.clone()}
}

// Epsilon sets the right-hand side of a rule to ε and ends the rule.
func (rb *RuleBuilder) Epsilon() Production[string, string] {
	rb.rhs = nil
	return rb.End()
}

// Grammar returns the grammar built so far, after validating it.
// See New for the validation performed.
func (gb *GrammarBuilder) Grammar() (*Grammar[string, string], error) {
	g, err := New(gb.terminals, gb.nonterminals, gb.productions)
	if err != nil {
		return nil, err
	}
	g.Name = gb.name
	return g, nil
}

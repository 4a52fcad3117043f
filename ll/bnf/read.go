package bnf

import (
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/predict"
	"github.com/npillmayer/predict/ll"
)

// SyntaxError is an error in the grammar notation.
type SyntaxError struct {
	Source string // name of the input
	Line   int
	Column int
	Msg    string
	Span   predict.Span // input range of the rule in error, null for scanner errors
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Source, e.Line, e.Column, e.Msg)
}

// Read reads a grammar from r. name is used as the grammar's name and for
// error messages.
func Read(name string, r io.Reader) (*ll.Grammar[string, string], error) {
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading grammar %s: %w", name, err)
	}
	return read(name, input)
}

// ReadString reads a grammar from a string.
func ReadString(name string, input string) (*ll.Grammar[string, string], error) {
	return read(name, []byte(input))
}

func read(name string, input []byte) (*ll.Grammar[string, string], error) {
	sc, err := newScanner(name, input)
	if err != nil {
		return nil, err
	}
	p := &reader{
		sc:        sc,
		rules:     arraylist.New(),
		lhs:       treeset.NewWithStringComparator(),
		declared:  treeset.NewWithStringComparator(),
		declOrder: arraylist.New(),
	}
	if err = p.grammar(); err != nil {
		tracer().Errorf("%v", err)
		return nil, err
	}
	g, err := p.build(name)
	if err != nil {
		tracer().Errorf("grammar %s: %v", name, err)
		return nil, fmt.Errorf("grammar %s: %w", name, err)
	}
	tracer().Infof("read %s", g)
	return g, nil
}

// --- Reader ----------------------------------------------------------------

// rawRule is a rule as written, before symbols are classified.
type rawRule struct {
	lhs  string
	alts [][]token
	span predict.Span
}

// reader is a recursive descent parser for the notation:
//
//    grammar   ::= [ '%terminals' { symbol } ';' ] { rule }
//    rule      ::= Ident Arrow alt { '|' alt } ';'
//    alt       ::= { symbol | ε }
//    symbol    ::= Ident | Quoted | Punct
//
type reader struct {
	sc        *scanner
	la        token // lookahead
	rules     *arraylist.List
	lhs       *treeset.Set // identifiers on a left-hand side
	declared  *treeset.Set // identifiers declared as terminals
	declOrder *arraylist.List
	hasDecl   bool
	ruleSpan  predict.Span // input read for the current rule
}

func (p *reader) advance() error {
	tok, err := p.sc.next()
	if err != nil {
		return err
	}
	p.la = tok
	return nil
}

func (p *reader) errorf(format string, args ...interface{}) error {
	span := p.la.span
	if !p.ruleSpan.IsNull() {
		span = p.ruleSpan
		if !p.la.span.IsNull() {
			span = span.Extend(p.la.span)
		}
	}
	return &SyntaxError{
		Source: p.sc.source,
		Line:   p.la.pos.Line,
		Column: p.la.pos.Column,
		Msg:    fmt.Sprintf(format, args...),
		Span:   span,
	}
}

func (p *reader) grammar() error {
	if err := p.advance(); err != nil {
		return err
	}
	if p.la.toktype == Directive {
		if err := p.directive(); err != nil {
			return err
		}
	}
	for p.la.toktype != EOF {
		if err := p.rule(); err != nil {
			return err
		}
	}
	if p.rules.Empty() {
		return p.errorf("grammar has no rules")
	}
	return nil
}

func (p *reader) directive() error {
	if p.la.lexeme != "%terminals" {
		return p.errorf("unknown directive %s", p.la.lexeme)
	}
	p.hasDecl = true
	if err := p.advance(); err != nil {
		return err
	}
	for p.la.toktype != Semicolon {
		if !isSymbol(p.la) {
			return p.errorf("expected terminal, have %s", p.la)
		}
		t, err := p.symbolName()
		if err != nil {
			return err
		}
		if !p.declared.Contains(t) {
			p.declared.Add(t)
			p.declOrder.Add(t)
		}
		if err := p.advance(); err != nil {
			return err
		}
	}
	return p.advance()
}

func (p *reader) rule() error {
	if p.la.toktype != Ident {
		return p.errorf("expected non-terminal, have %s", p.la)
	}
	r := &rawRule{lhs: p.la.lexeme}
	p.lhs.Add(r.lhs)
	p.ruleSpan = p.la.span
	if err := p.advance(); err != nil {
		return err
	}
	if !p.la.span.IsNull() {
		p.ruleSpan = p.ruleSpan.Extend(p.la.span)
	}
	if p.la.toktype != Arrow {
		return p.errorf("expected arrow after %s, have %s", r.lhs, p.la)
	}
	var alt []token
	for {
		if err := p.advance(); err != nil {
			return err
		}
		if !p.la.span.IsNull() {
			p.ruleSpan = p.ruleSpan.Extend(p.la.span)
		}
		switch {
		case isSymbol(p.la):
			if _, err := p.symbolName(); err != nil {
				return err
			}
			alt = append(alt, p.la)
		case p.la.toktype == Epsilon:
			// contributes nothing
		case p.la.toktype == Bar:
			r.alts = append(r.alts, alt)
			alt = nil
		case p.la.toktype == Semicolon:
			r.alts = append(r.alts, alt)
			r.span, p.ruleSpan = p.ruleSpan, predict.Span{}
			p.rules.Add(r)
			return p.advance()
		case p.la.toktype == EOF:
			return p.errorf("missing ';' at end of rule for %s", r.lhs)
		default:
			return p.errorf("unexpected %s in rule for %s", p.la, r.lhs)
		}
	}
}

func isSymbol(t token) bool {
	return t.toktype == Ident || t.toktype == Quoted || t.toktype == Punct
}

// symbolName returns the name of the symbol at the lookahead position.
func (p *reader) symbolName() (string, error) {
	name := p.la.Value().(string)
	if name == "" {
		return "", p.errorf("empty terminal")
	}
	return name, nil
}

// isTerminal classifies a right-hand side symbol.
func (p *reader) isTerminal(t token) bool {
	if t.toktype != Ident {
		return true
	}
	if p.lhs.Contains(t.lexeme) {
		return false
	}
	return !p.hasDecl || p.declared.Contains(t.lexeme)
}

func (p *reader) build(name string) (*ll.Grammar[string, string], error) {
	b := ll.NewGrammarBuilder(name)
	p.declOrder.Each(func(_ int, t interface{}) {
		b.Terminals(t.(string))
	})
	p.rules.Each(func(_ int, r interface{}) {
		rule := r.(*rawRule)
		tracer().Debugf("rule for %s at %v", rule.lhs, rule.span)
		for _, alt := range rule.alts {
			rb := b.LHS(rule.lhs)
			for _, sym := range alt {
				if p.isTerminal(sym) {
					rb.T(sym.Value().(string))
				} else {
					rb.N(sym.lexeme)
				}
			}
			rb.End()
		}
	})
	tracer().Debugf("%s: non-terminals %s", name, strings.Trim(fmt.Sprint(p.lhs.Values()), "[]"))
	return b.Grammar()
}

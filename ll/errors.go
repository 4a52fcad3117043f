package ll

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for grammar validation. Every ValidationError unwraps
// to one of these.
var (
	ErrUnknownTerminal    = errors.New("unknown terminal in production")
	ErrUnknownNonterminal = errors.New("unknown non-terminal in production")
	ErrMissingProductions = errors.New("missing productions for non-terminal")
	ErrNoAlternatives     = errors.New("non-terminal has no alternatives")
)

// ValidationErrorKind classifies structural defects of a grammar.
type ValidationErrorKind int

// Kinds of validation errors.
const (
	UnknownTerminalInProduction ValidationErrorKind = iota + 1
	UnknownNonterminalInProduction
	MissingProductionsForNonterminal
	NoAlternativesForNonterminal
)

func (k ValidationErrorKind) String() string {
	switch k {
	case UnknownTerminalInProduction:
		return "UnknownTerminalInProduction"
	case UnknownNonterminalInProduction:
		return "UnknownNonterminalInProduction"
	case MissingProductionsForNonterminal:
		return "MissingProductionsForNonterminal"
	case NoAlternativesForNonterminal:
		return "NoAlternativesForNonterminal"
	}
	return fmt.Sprintf("ValidationErrorKind(%d)", int(k))
}

// ValidationError is returned by New if a grammar is malformed. Validation stops
// at the first defect found.
type ValidationError[T, N comparable] struct {
	Kind        ValidationErrorKind
	Terminal    T                 // offending terminal, for UnknownTerminalInProduction
	Nonterminal N                 // offending non-terminal, for all other kinds
	Production  *Production[T, N] // production containing the defect, if any
}

func (e *ValidationError[T, N]) Error() string {
	var sym string
	if e.Kind == UnknownTerminalInProduction {
		sym = fmt.Sprintf("%v", e.Terminal)
	} else {
		sym = fmt.Sprintf("%v", e.Nonterminal)
	}
	if e.Production != nil {
		return fmt.Sprintf("%s: %s (in %s)", e.Unwrap().Error(), sym, e.Production)
	}
	return fmt.Sprintf("%s: %s", e.Unwrap().Error(), sym)
}

// Unwrap returns the sentinel error for e.Kind.
func (e *ValidationError[T, N]) Unwrap() error {
	switch e.Kind {
	case UnknownTerminalInProduction:
		return ErrUnknownTerminal
	case UnknownNonterminalInProduction:
		return ErrUnknownNonterminal
	case MissingProductionsForNonterminal:
		return ErrMissingProductions
	}
	return ErrNoAlternatives
}

// --- LL(1) violations ------------------------------------------------------

// Rule identifies one of the two LL(1) conditions.
type Rule int

const (
	// Rule1: the alternatives of a non-terminal must be distinguishable by
	// one token of lookahead.
	Rule1 Rule = 1
	// Rule2: a nullable non-terminal must not share terminals between its
	// FIRST and FOLLOW sets.
	Rule2 Rule = 2
)

func (r Rule) String() string {
	return fmt.Sprintf("Rule%d", int(r))
}

// Violation records a non-terminal failing one of the LL(1) rules.
// Lookahead holds the terminals causing the conflict, in declaration order.
type Violation[T, N comparable] struct {
	Rule        Rule
	Nonterminal N
	Lookahead   []T
}

func (v Violation[T, N]) Error() string {
	if v.Rule == Rule1 {
		return fmt.Sprintf("%s(%v): alternatives share lookahead %v", v.Rule, v.Nonterminal, v.Lookahead)
	}
	return fmt.Sprintf("%s(%v): FIRST and FOLLOW share %v", v.Rule, v.Nonterminal, v.Lookahead)
}

// Violations is the error returned by NewLL1. It lists every violation
// of every non-terminal, Rule1 violations first.
type Violations[T, N comparable] []Violation[T, N]

func (vs Violations[T, N]) Error() string {
	msgs := make([]string, len(vs))
	for i, v := range vs {
		msgs[i] = v.Error()
	}
	return fmt.Sprintf("grammar is not LL(1): %s", strings.Join(msgs, "; "))
}

// Has is a predicate: does vs contain a violation of rule for non-terminal n?
func (vs Violations[T, N]) Has(rule Rule, n N) bool {
	for _, v := range vs {
		if v.Rule == rule && v.Nonterminal == n {
			return true
		}
	}
	return false
}

package ll

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// --- Symbols ---------------------------------------------------------------

// Symbol is a grammar symbol: either a terminal of type T or a non-terminal of
// type N. Symbols are comparable; two symbols are equal if they are of the same
// kind and carry equal values, i.e. terminal "a" is different from non-terminal "a".
type Symbol[T, N comparable] struct {
	nonterm bool
	t       T
	n       N
}

// T creates a terminal symbol.
//
//    a := ll.T[string, string]("a")
//
func T[Tm, Nt comparable](t Tm) Symbol[Tm, Nt] {
	return Symbol[Tm, Nt]{t: t}
}

// N creates a non-terminal symbol. The terminal type has to be given
// explicitly, the non-terminal type is inferred:
//
//    A := ll.N[string]("A")
//
func N[Tm, Nt comparable](n Nt) Symbol[Tm, Nt] {
	return Symbol[Tm, Nt]{nonterm: true, n: n}
}

// IsTerminal is a predicate.
func (s Symbol[T, N]) IsTerminal() bool {
	return !s.nonterm
}

// AsTerminal returns the terminal value of s, if s is a terminal.
func (s Symbol[T, N]) AsTerminal() (T, bool) {
	return s.t, !s.nonterm
}

// AsNonterminal returns the non-terminal value of s, if s is a non-terminal.
func (s Symbol[T, N]) AsNonterminal() (N, bool) {
	return s.n, s.nonterm
}

func (s Symbol[T, N]) String() string {
	if s.nonterm {
		return fmt.Sprintf("%v", s.n)
	}
	return fmt.Sprintf("%v", s.t)
}

// --- Sequences -------------------------------------------------------------

// Sequence is a right-hand side of a rule. The empty sequence is an
// epsilon-production.
type Sequence[T, N comparable] []Symbol[T, N]

// IsEpsilon is true for the empty sequence.
func (seq Sequence[T, N]) IsEpsilon() bool {
	return len(seq) == 0
}

// Equals compares two sequences symbol by symbol.
func (seq Sequence[T, N]) Equals(other Sequence[T, N]) bool {
	return slices.Equal(seq, other)
}

func (seq Sequence[T, N]) String() string {
	if len(seq) == 0 {
		return "ε"
	}
	var b strings.Builder
	for i, sym := range seq {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(sym.String())
	}
	return b.String()
}

func (seq Sequence[T, N]) clone() Sequence[T, N] {
	if seq == nil {
		return Sequence[T, N]{}
	}
	return slices.Clone(seq)
}

// Production is a rule LHS → RHS.
type Production[T, N comparable] struct {
	LHS N
	RHS Sequence[T, N]
}

func (p Production[T, N]) String() string {
	return fmt.Sprintf("%v → %s", p.LHS, p.RHS)
}

package ll

import (
	"golang.org/x/tools/container/intsets"
)

// TerminalSet is a set of terminals.
type TerminalSet[T comparable] map[T]struct{}

// NewTerminalSet creates a set from a list of terminals.
func NewTerminalSet[T comparable](ts ...T) TerminalSet[T] {
	s := make(TerminalSet[T], len(ts))
	for _, t := range ts {
		s[t] = struct{}{}
	}
	return s
}

// Contains is a predicate.
func (s TerminalSet[T]) Contains(t T) bool {
	_, ok := s[t]
	return ok
}

// Len returns the number of terminals in s.
func (s TerminalSet[T]) Len() int {
	return len(s)
}

// Equals compares two sets.
func (s TerminalSet[T]) Equals(other TerminalSet[T]) bool {
	if len(s) != len(other) {
		return false
	}
	for t := range s {
		if !other.Contains(t) {
			return false
		}
	}
	return true
}

// NullableTable maps every non-terminal to its ability to derive ε.
type NullableTable[N comparable] map[N]bool

// FirstTable maps every non-terminal to its FIRST set. FIRST sets never contain
// an ε-marker; see NullableTable.
type FirstTable[T, N comparable] map[N]TerminalSet[T]

// FollowTable maps every non-terminal to its FOLLOW set.
type FollowTable[T, N comparable] map[N]TerminalSet[T]

// PredictTable maps every non-terminal to its PREDICT set.
type PredictTable[T, N comparable] map[N]TerminalSet[T]

// --- Dense sets ------------------------------------------------------------

// termsets holds one set of terminal indices per non-terminal index.
type termsets []*intsets.Sparse

func newTermsets(n int) termsets {
	sets := make(termsets, n)
	for i := range sets {
		sets[i] = new(intsets.Sparse)
	}
	return sets
}

func (sets termsets) clone() termsets {
	c := make(termsets, len(sets))
	for i, s := range sets {
		c[i] = new(intsets.Sparse)
		c[i].Copy(s)
	}
	return c
}

func (sets termsets) equals(other termsets) bool {
	for i := range sets {
		if !sets[i].Equals(other[i]) {
			return false
		}
	}
	return true
}

// decode converts a set of terminal indices to a TerminalSet.
func (g *Grammar[T, N]) decode(s *intsets.Sparse) TerminalSet[T] {
	set := make(TerminalSet[T], s.Len())
	for _, i := range s.AppendTo(nil) {
		set[g.terminals[i]] = struct{}{}
	}
	return set
}

// decodeOrdered converts a set of terminal indices to a slice of terminals,
// in declaration order.
func (g *Grammar[T, N]) decodeOrdered(s *intsets.Sparse) []T {
	ts := make([]T, 0, s.Len())
	for _, i := range s.AppendTo(nil) {
		ts = append(ts, g.terminals[i])
	}
	return ts
}

// encodeSet converts a TerminalSet to terminal indices, dropping unknown terminals.
func (g *Grammar[T, N]) encodeSet(set TerminalSet[T]) *intsets.Sparse {
	s := new(intsets.Sparse)
	for t := range set {
		if i, ok := g.tindex[t]; ok {
			s.Insert(i)
		}
	}
	return s
}

func (g *Grammar[T, N]) encodeTable(table map[N]TerminalSet[T]) termsets {
	sets := make(termsets, len(g.nonterminals))
	for i, n := range g.nonterminals {
		sets[i] = g.encodeSet(table[n])
	}
	return sets
}

func (g *Grammar[T, N]) decodeTable(sets termsets) map[N]TerminalSet[T] {
	table := make(map[N]TerminalSet[T], len(sets))
	for i, s := range sets {
		table[g.nonterminals[i]] = g.decode(s)
	}
	return table
}

func (g *Grammar[T, N]) encodeNullable(table NullableTable[N]) []bool {
	nullable := make([]bool, len(g.nonterminals))
	for i, n := range g.nonterminals {
		nullable[i] = table[n]
	}
	return nullable
}

func (g *Grammar[T, N]) decodeNullable(nullable []bool) NullableTable[N] {
	table := make(NullableTable[N], len(nullable))
	for i, b := range nullable {
		table[g.nonterminals[i]] = b
	}
	return table
}

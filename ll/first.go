package ll

import (
	"golang.org/x/tools/container/intsets"
)

// ComputeFirst computes the FIRST set of every non-terminal of g.
func ComputeFirst[T, N comparable](g *Grammar[T, N]) FirstTable[T, N] {
	nullable, _ := nullableOf(g.rules)
	first, _ := firstOf(g.rules, nullable)
	return g.decodeTable(first)
}

// firstOf iterates to a fixed point. Every pass computes a fresh table from the
// table of the previous pass; it stops as soon as a pass does not change
// anything. Sets only grow and are bounded by the terminal alphabet.
func firstOf(rules [][][]ref, nullable []bool) (termsets, int) {
	first := newTermsets(len(rules))
	passes := 0
	for {
		passes++
		next := first.clone()
		for A, alts := range rules {
			for _, rhs := range alts {
				f, _ := firstOfSeq(rhs, first, nullable)
				next[A].UnionWith(f)
			}
		}
		if next.equals(first) {
			break
		}
		first = next
	}
	tracer().Debugf("FIRST: fixed point after %d passes", passes)
	return first, passes
}

// firstOfSeq returns FIRST of a sequence of symbols and whether the complete
// sequence is nullable. The empty sequence has an empty FIRST set and is nullable.
func firstOfSeq(seq []ref, first termsets, nullable []bool) (*intsets.Sparse, bool) {
	set := new(intsets.Sparse)
	for _, sym := range seq {
		if !sym.nonterm {
			set.Insert(sym.id)
			return set, false
		}
		set.UnionWith(first[sym.id])
		if !nullable[sym.id] {
			return set, false
		}
	}
	return set, true
}

package ll

// ComputeFollow computes the FOLLOW set of every non-terminal of g, given
// FIRST sets and nullability. Entries for non-terminals missing from first
// or nullable are taken to be empty and false, respectively.
func ComputeFollow[T, N comparable](g *Grammar[T, N], first FirstTable[T, N], nullable NullableTable[N]) FollowTable[T, N] {
	follow, _ := followOf(g.rules, g.encodeTable(first), g.encodeNullable(nullable))
	return g.decodeTable(follow)
}

// followOf iterates to a fixed point over every occurrence of every non-terminal
// in every alternative of the grammar:
//
//    A → … B tail      FOLLOW(B) ⊇ FIRST(tail)
//                      FOLLOW(B) ⊇ FOLLOW(A), if tail is nullable
//
// There is no start symbol, therefore no end-of-input marker is added.
func followOf(rules [][][]ref, first termsets, nullable []bool) (termsets, int) {
	follow := newTermsets(len(rules))
	passes := 0
	for {
		passes++
		next := follow.clone()
		for A, alts := range rules {
			for _, rhs := range alts {
				for i, sym := range rhs {
					if !sym.nonterm {
						continue
					}
					f, tailNullable := firstOfSeq(rhs[i+1:], first, nullable)
					next[sym.id].UnionWith(f)
					if tailNullable {
						next[sym.id].UnionWith(follow[A])
					}
				}
			}
		}
		if next.equals(follow) {
			break
		}
		follow = next
	}
	tracer().Debugf("FOLLOW: fixed point after %d passes", passes)
	return follow, passes
}

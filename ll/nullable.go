package ll

// ComputeNullable determines for every non-terminal of g whether it derives ε.
func ComputeNullable[T, N comparable](g *Grammar[T, N]) NullableTable[N] {
	nullable, _ := nullableOf(g.rules)
	return g.decodeNullable(nullable)
}

// nullableOf iterates to a fixed point: a non-terminal is nullable if one of
// its alternatives consists of nullable non-terminals only (which includes the
// empty alternative). Entries only ever flip from false to true.
func nullableOf(rules [][][]ref) ([]bool, int) {
	nullable := make([]bool, len(rules))
	passes := 0
	for changed := true; changed; passes++ {
		changed = false
		for A, alts := range rules {
			if nullable[A] {
				continue
			}
			for _, rhs := range alts {
				if allNullable(rhs, nullable) {
					nullable[A] = true
					changed = true
					break
				}
			}
		}
	}
	tracer().Debugf("nullable: fixed point after %d passes", passes)
	return nullable, passes
}

// allNullable is true if every symbol of rhs is a nullable non-terminal.
// Terminals are never nullable.
func allNullable(rhs []ref, nullable []bool) bool {
	for _, sym := range rhs {
		if !sym.nonterm || !nullable[sym.id] {
			return false
		}
	}
	return true
}

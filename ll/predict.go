package ll

// ComputePredict computes the PREDICT set of every non-terminal of g:
// FIRST(A) if A is not nullable, FIRST(A) ∪ FOLLOW(A) otherwise.
func ComputePredict[T, N comparable](g *Grammar[T, N], first FirstTable[T, N], follow FollowTable[T, N],
	nullable NullableTable[N]) PredictTable[T, N] {
	//
	predict := predictOf(g.encodeTable(first), g.encodeTable(follow), g.encodeNullable(nullable))
	return g.decodeTable(predict)
}

func predictOf(first, follow termsets, nullable []bool) termsets {
	predict := first.clone()
	for A := range predict {
		if nullable[A] {
			predict[A].UnionWith(follow[A])
		}
	}
	return predict
}

package ll

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/exp/slices"
)

func TestParseTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	ll1, err := NewLL1(makeExprGrammar(t))
	if err != nil {
		t.Fatal(err)
	}
	pt := ll1.ParseTable()
	for _, c := range []struct {
		A, t string
		rhs  Sequence[string, string]
	}{
		{"E0'", "+", seq("+", "E1", "E0'")},
		{"E0'", "-", seq("-", "E1", "E0'")},
		{"E0'", "$", seq()},
		{"E0'", ")", seq()},
		{"E1'", "+", seq()},
		{"E2", "(", seq("(", "E0", ")")},
		{"S", "n", seq("E0", "$")},
	} {
		rhs, ok := pt.Lookup(c.A, c.t)
		if !ok || !rhs.Equals(c.rhs) {
			t.Errorf("Expected table[%s, %s] to be %v, is %v", c.A, c.t, c.rhs, rhs)
		}
	}
	if _, ok := pt.Lookup("E2", "+"); ok {
		t.Errorf("Expected table[E2, +] to be empty")
	}
	if _, ok := pt.Lookup("X", "n"); ok {
		t.Errorf("Expected no entry for unknown non-terminal")
	}
	if pt.HasConflicts() {
		t.Errorf("Expected LL(1) table to be conflict-free")
	}
	// 2 + 2 + 4 + 2 + 6 + 2 entries for S, E0, E0', E1, E1', E2
	if pt.Size() != 18 {
		t.Errorf("Expected 18 table entries, have %d", pt.Size())
	}
}

func TestParseTableConflicts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	g, _ := New([]string{"a"}, []string{"S", "A", "B"}, map[string][]Sequence[string, string]{
		"S": {seq("A"), seq("B")},
		"A": {seq("a")},
		"B": {seq("a")},
	})
	pt := BuildParseTable(Analysis(g))
	if !pt.HasConflicts() {
		t.Errorf("Expected parse table to have conflicts")
	}
	if e := pt.Entries("S", "a"); !slices.Equal(e, []int{0, 1}) {
		t.Errorf("Expected table[S, a] to hold alternatives [0 1], has %v", e)
	}
}

func TestParseTableAsHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.ll")
	defer teardown()
	//
	ll1, err := NewLL1(makeExprGrammar(t))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := ParseTableAsHTML(ll1.ParseTable(), &buf); err != nil {
		t.Fatal(err)
	}
	html := buf.String()
	if !strings.Contains(html, "<td>E0&#39;</td>") {
		t.Errorf("Expected HTML table to contain row for E0'")
	}
	if !strings.Contains(html, "<td>+ E1 E0&#39;</td>") {
		t.Errorf("Expected HTML table to contain cell + E1 E0'")
	}
}

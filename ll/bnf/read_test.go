package bnf

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/npillmayer/predict"
	"github.com/npillmayer/predict/ll"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFile(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return string(b)
}

func TestScanTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.bnf")
	defer teardown()
	//
	sc, err := newScanner("test", []byte("A' -> a | \"if\" ( ε ; # comment\nB ::= %empty → ;"))
	require.NoError(t, err)
	var types []int
	var lexemes []string
	for {
		tok, err := sc.next()
		require.NoError(t, err)
		if tok.TokType() == EOF {
			break
		}
		types = append(types, int(tok.TokType()))
		lexemes = append(lexemes, tok.Lexeme())
	}
	assert.Equal(t, []int{int(Ident), int(Arrow), int(Ident), int(Bar), int(Quoted), int(Punct),
		int(Epsilon), int(Semicolon), int(Ident), int(Arrow), int(Epsilon), int(Arrow), int(Semicolon)}, types)
	assert.Equal(t, "A'", lexemes[0])
	assert.Equal(t, "\"if\"", lexemes[4])
}

func TestTokenValueAndSpan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.bnf")
	defer teardown()
	//
	sc, err := newScanner("test", []byte("  'x'"))
	require.NoError(t, err)
	tok, err := sc.next()
	require.NoError(t, err)
	assert.Equal(t, Quoted, tok.TokType())
	assert.Equal(t, "x", tok.Value())
	assert.Equal(t, uint64(2), tok.Span().From())
	assert.Equal(t, uint64(3), tok.Span().Len())
}

func TestReadExpr(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.bnf")
	defer teardown()
	//
	g, err := Read("expr", strings.NewReader(readFile(t, "expr.bnf")))
	require.NoError(t, err)
	assert.Equal(t, "expr", g.Name)
	assert.Equal(t, []string{"S", "E0", "E1", "E0'", "E2", "E1'"}, g.Nonterminals())
	assert.ElementsMatch(t, []string{"$", "+", "-", "*", "/", "n", "(", ")"}, g.Terminals())
	alts := g.Alternatives("E1'")
	require.Len(t, alts, 3)
	assert.True(t, alts[2].IsEpsilon())
	assert.Equal(t, "* E2 E1'", alts[0].String())
	//
	ll1, err := ll.NewLL1(g)
	require.NoError(t, err)
	rhs, ok := ll1.ParseTable().Lookup("E0'", ")")
	assert.True(t, ok)
	assert.True(t, rhs.IsEpsilon())
}

func TestReadToyC(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.bnf")
	defer teardown()
	//
	toyc := readFile(t, "toyc.bnf")
	g, err := ReadString("ToyC", toyc)
	require.NoError(t, err)
	assert.Len(t, g.Nonterminals(), 41)
	assert.Len(t, g.Terminals(), 35)
	assert.True(t, g.IsTerminal(";"))
	assert.True(t, g.IsTerminal("do"), "declared terminals are part of the alphabet")
	_, err = ll.NewLL1(g)
	assert.NoError(t, err)
	//
	withIf := strings.Replace(toyc, "| NewLineStatement ;", "| NewLineStatement | IfStatement ;", 1)
	g, err = ReadString("ToyC+if", withIf)
	require.NoError(t, err)
	_, err = ll.NewLL1(g)
	var vs ll.Violations[string, string]
	require.True(t, errors.As(err, &vs))
	require.Len(t, vs, 1)
	assert.Equal(t, ll.Rule2, vs[0].Rule)
	assert.Equal(t, "IfStatement'", vs[0].Nonterminal)
	assert.Equal(t, []string{"else"}, vs[0].Lookahead)
}

func TestClassification(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.bnf")
	defer teardown()
	//
	g, err := ReadString("G", `S -> A b "c" ; A -> a | ;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "A"}, g.Nonterminals())
	assert.Equal(t, []string{"b", "c", "a"}, g.Terminals())
	//
	// with a declaration, undeclared identifiers are non-terminals
	_, err = ReadString("G", `%terminals a ; S -> A b ; A -> a ;`)
	assert.True(t, errors.Is(err, ll.ErrMissingProductions), "error is %v", err)
}

func TestSyntaxErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "predict.bnf")
	defer teardown()
	//
	for i, c := range []struct {
		input     string
		line, col int
		span      predict.Span
	}{
		{"S -> a", 1, 7, predict.Span{0, 6}},
		{"S a ;", 1, 3, predict.Span{0, 3}},
		{"S -> a ;\n-> b ;", 2, 1, predict.Span{9, 11}},
		{"S -> a \\ ;", 1, 8, predict.Span{}},
		{"S -> a ;\nT -> '' ;", 2, 6, predict.Span{9, 16}},
		{"%foo ;", 1, 1, predict.Span{0, 4}},
		{"# nothing", 1, 1, predict.Span{}},
	} {
		_, err := ReadString("bad", c.input)
		var serr *SyntaxError
		if !assert.True(t, errors.As(err, &serr), "#%d: expected syntax error, have %v", i, err) {
			continue
		}
		assert.Equal(t, c.line, serr.Line, "#%d: line of %q", i, serr.Msg)
		assert.Equal(t, c.col, serr.Column, "#%d: column of %q", i, serr.Msg)
		assert.Equal(t, "bad", serr.Source)
		assert.Equal(t, c.span, serr.Span, "#%d: span of %q", i, serr.Msg)
		t.Logf("#%d: %v", i, err)
	}
}

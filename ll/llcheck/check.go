package main

import (
	"errors"
	"io"

	"github.com/npillmayer/predict/ll"
	"github.com/npillmayer/predict/ll/bnf"
)

// report is the result of checking a single grammar.
type report struct {
	name        string
	fingerprint string
	g           *ll.Grammar[string, string]
	ga          *ll.GrammarAnalysis[string, string]
	table       *ll.ParseTable[string, string]
	violations  ll.Violations[string, string]
	err         error // syntax or validation error
}

func (r *report) ok() bool {
	return r.err == nil && len(r.violations) == 0
}

func analyseReader(name string, input io.Reader) *report {
	g, err := bnf.Read(name, input)
	return analyse(name, g, err, nil)
}

// analyse runs the grammar analysis on g, which has been read with error err.
// If c is non-nil, reports are cached by grammar fingerprint.
func analyse(name string, g *ll.Grammar[string, string], err error, c reportCache) *report {
	if err != nil {
		var serr *bnf.SyntaxError
		if errors.As(err, &serr) {
			tracer().Debugf("syntax error in %s at %d:%d", serr.Source, serr.Line, serr.Column)
		}
		return &report{name: name, err: err}
	}
	fp, err := g.Fingerprint()
	if err != nil {
		tracer().Errorf("cannot fingerprint %s: %v", name, err)
	} else if r, ok := c[fp]; ok {
		tracer().Debugf("grammar %s unchanged, fingerprint %s", name, fp)
		return r
	}
	ga := ll.Analysis(g)
	ga.Dump()
	r := &report{
		name:        name,
		fingerprint: fp,
		g:           g,
		ga:          ga,
		table:       ll.BuildParseTable(ga),
		violations:  ga.Violations(),
	}
	if c != nil && fp != "" {
		c[fp] = r
	}
	return r
}

// reportCache maps grammar fingerprints to reports.
type reportCache map[string]*report

package ll

import (
	"fmt"
	"html"
	"io"

	"github.com/npillmayer/predict/ll/sparse"
)

// ParseTable is an LL(1) parse table. It maps a pair (non-terminal, lookahead
// terminal) to the alternative of the non-terminal to expand.
//
// For alternative β of non-terminal A, the table holds entries for every
// terminal in PREDICT(A → β) = FIRST(β) ∪ (FOLLOW(A), if β derives ε).
// Cells with more than one entry stem from alternatives with overlapping FIRST
// sets, or from several alternatives deriving ε.
type ParseTable[T, N comparable] struct {
	g      *Grammar[T, N]
	matrix *sparse.Matrix // rows: non-terminals, columns: terminals
}

// BuildParseTable creates the parse table for an analysed grammar. It does not
// require the grammar to be LL(1); conflicting alternatives all go into the
// table and may be found with Entries.
func BuildParseTable[T, N comparable](ga *GrammarAnalysis[T, N]) *ParseTable[T, N] {
	g := ga.g
	tracer().Debugf("parse table of size %d x %d", len(g.nonterminals), len(g.terminals))
	pt := &ParseTable[T, N]{
		g:      g,
		matrix: sparse.NewMatrix(len(g.nonterminals), len(g.terminals), sparse.DefaultNullValue),
	}
	for i := range g.nonterminals {
		for j := range g.rules[i] {
			predict := ga.predictOfRule(i, j)
			for _, t := range predict.AppendTo(nil) {
				pt.matrix.Add(i, t, int32(j))
			}
		}
	}
	if c := pt.matrix.Conflicts(); c > 0 {
		tracer().Infof("parse table for %s has %d conflicts", g.Name, c)
	}
	return pt
}

// Lookup returns the right-hand side to expand for non-terminal A, given
// lookahead t. If the cell is empty, ok is false. For conflicting cells,
// the first alternative is returned.
func (pt *ParseTable[T, N]) Lookup(A N, t T) (rhs Sequence[T, N], ok bool) {
	i, j, found := pt.cell(A, t)
	if !found {
		return nil, false
	}
	v := pt.matrix.Value(i, j)
	if v == pt.matrix.NullValue() {
		return nil, false
	}
	return pt.g.alts[i][v].clone(), true
}

// Entries returns the indices of all alternatives of A (see Grammar.Alternatives)
// which are predicted by lookahead t.
func (pt *ParseTable[T, N]) Entries(A N, t T) []int {
	i, j, found := pt.cell(A, t)
	if !found {
		return nil
	}
	vals := pt.matrix.Values(i, j)
	entries := make([]int, len(vals))
	for k, v := range vals {
		entries[k] = int(v)
	}
	return entries
}

func (pt *ParseTable[T, N]) cell(A N, t T) (int, int, bool) {
	i, ok := pt.g.nindex[A]
	if !ok {
		return 0, 0, false
	}
	j, ok := pt.g.tindex[t]
	return i, j, ok
}

// HasConflicts is true if any cell of the table holds more than one alternative.
func (pt *ParseTable[T, N]) HasConflicts() bool {
	return pt.matrix.Conflicts() > 0
}

// Size returns the number of non-empty cells.
func (pt *ParseTable[T, N]) Size() int {
	return pt.matrix.ValueCount()
}

// Grammar returns the grammar the table has been built for.
func (pt *ParseTable[T, N]) Grammar() *Grammar[T, N] {
	return pt.g
}

// ParseTableAsHTML exports a parse table in HTML-format.
func ParseTableAsHTML[T, N comparable](pt *ParseTable[T, N], w io.Writer) error {
	hw := &htmlWriter{w: w}
	g := pt.g
	hw.printf("<html><body>\n")
	hw.printf("<p>LL(1) table for %s, %d entries</p>\n", html.EscapeString(g.Name), pt.Size())
	hw.printf("<table border=1 cellspacing=0 cellpadding=5>\n")
	hw.printf("<tr bgcolor=#cccccc><td></td>\n")
	for _, t := range g.terminals {
		hw.printf("<td>%s</td>", html.EscapeString(fmt.Sprint(t)))
	}
	hw.printf("</tr>\n")
	for i, A := range g.nonterminals {
		hw.printf("<tr><td>%s</td>\n", html.EscapeString(fmt.Sprint(A)))
		for j := range g.terminals {
			var td string // table cell
			switch vals := pt.matrix.Values(i, j); len(vals) {
			case 0:
				td = "&nbsp;"
			case 1:
				td = html.EscapeString(g.alts[i][vals[0]].String())
			default:
				td = "<font color=red>"
				for k, v := range vals {
					if k > 0 {
						td += " / "
					}
					td += html.EscapeString(g.alts[i][v].String())
				}
				td += "</font>"
			}
			hw.printf("<td>%s</td>\n", td)
		}
		hw.printf("</tr>\n")
	}
	hw.printf("</table></body></html>\n")
	return hw.err
}

// htmlWriter remembers the first write error and skips all writes after it.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) printf(format string, args ...interface{}) {
	if hw.err != nil {
		return
	}
	_, hw.err = fmt.Fprintf(hw.w, format, args...)
}

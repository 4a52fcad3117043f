package main

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/pterm/pterm"
)

func display(r *report, opts options) {
	switch {
	case r.err != nil:
		pterm.Error.Println(fmt.Sprintf("%s: %v", r.name, r.err))
		return
	case len(r.violations) > 0:
		pterm.Error.Println(fmt.Sprintf("%s is not LL(1), %d violations", r.name, len(r.violations)))
		pterm.DefaultTable.WithHasHeader().WithData(violationsData(r)).Render()
	default:
		pterm.Success.Println(fmt.Sprintf("%s is LL(1)", r.name))
	}
	if opts.sets {
		pterm.DefaultSection.Println("Sets of " + r.name)
		pterm.DefaultTable.WithHasHeader().WithData(setsData(r)).Render()
	}
	if opts.table {
		pterm.DefaultSection.Println("LL(1) parse table of " + r.name)
		pterm.DefaultTable.WithHasHeader().WithData(parseTableData(r)).Render()
	}
}

func violationsData(r *report) pterm.TableData {
	data := pterm.TableData{{"Rule", "Non-terminal", "Conflicting lookahead"}}
	for _, v := range r.violations {
		data = append(data, []string{v.Rule.String(), v.Nonterminal, setString(v.Lookahead)})
	}
	return data
}

func setsData(r *report) pterm.TableData {
	data := pterm.TableData{{"Non-terminal", "Nullable", "FIRST", "FOLLOW", "PREDICT"}}
	r.g.EachNonterminal(func(A string) {
		nullable := ""
		if r.ga.Nullable(A) {
			nullable = "ε"
		}
		data = append(data, []string{
			A, nullable,
			setString(r.g.TerminalsIn(r.ga.First(A))),
			setString(r.g.TerminalsIn(r.ga.Follow(A))),
			setString(r.g.TerminalsIn(r.ga.Predict(A))),
		})
	})
	return data
}

func parseTableData(r *report) pterm.TableData {
	header := append([]string{""}, r.g.Terminals()...)
	data := pterm.TableData{header}
	r.g.EachNonterminal(func(A string) {
		alts := r.g.Alternatives(A)
		row := []string{A}
		for _, t := range r.g.Terminals() {
			var cell []string
			for _, e := range r.table.Entries(A, t) {
				cell = append(cell, alts[e].String())
			}
			row = append(row, strings.Join(cell, " / "))
		}
		data = append(data, row)
	})
	return data
}

// setString prints a set of terminals in sorted order.
func setString(terminals []string) string {
	set := treeset.NewWithStringComparator()
	for _, t := range terminals {
		set.Add(t)
	}
	var b strings.Builder
	b.WriteString("{")
	it := set.Iterator()
	for it.Next() {
		if it.Index() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(it.Value().(string))
	}
	b.WriteString("}")
	return b.String()
}

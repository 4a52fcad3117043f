/*
Package bnf reads grammars in a small textual notation, producing grammars
ready for LL(1) analysis.

Notation

A grammar is a list of rules. Every rule has a left-hand side non-terminal,
an arrow, and alternatives separated by '|'. Rules end with a semicolon.

    # expressions
    S   -> E0 $ ;
    E0  -> E1 E0' ;
    E0' -> + E1 E0' | - E1 E0' | ε ;

Arrows may be written as '->', '→' or '::='. The empty word is written
as 'ε' or '%empty', or is just left out: "A -> a | ;" is the same as
"A -> a | ε ;". Comments start with '#' and extend to the end of the line.

Identifiers appearing on the left-hand side of a rule are non-terminals.
Quoted strings ("if", ';') and punctuation characters are terminals. All
other identifiers are terminals, too, unless the grammar starts with a
terminal declaration:

    %terminals id num "(" ")" ;

With a declaration present, identifiers not declared as terminals are
non-terminals, and a non-terminal without a rule will make reading fail
with ll.ErrMissingProductions.

Errors

Syntax errors are reported as *SyntaxError, carrying the line and column
of the offending input. Structural defects of the grammar are reported by
package ll's validation and may be tested for with errors.Is.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bnf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predict.bnf'.
func tracer() tracing.Trace {
	return tracing.Select("predict.bnf")
}

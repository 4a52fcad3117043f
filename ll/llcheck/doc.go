/*
Command llcheck checks grammars for the LL(1) property.

Grammars are read in the notation of package bnf. For every grammar file
given, llcheck reports structural errors or LL(1) violations, and optionally
prints nullability, FIRST, FOLLOW and PREDICT sets and the LL(1) parse table.

    llcheck check [--sets] [--table] [--html FILE] [--trace LEVEL] FILE...

The exit status is non-zero if any grammar is not LL(1).

    llcheck repl

starts an interactive session, where users enter rules line by line and
check the grammar built so far with ':check'. Enter ':help' for a list of
commands.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'predict.cli'
func tracer() tracing.Trace {
	return tracing.Select("predict.cli")
}

/*
Package predict is a toolbox for predictive (LL(1)) parsing.

It focusses on the static side of top-down parsing: deciding whether a
context-free grammar can be parsed with one token of lookahead, and
computing the sets a predictive parser needs. Package structure is
as follows:

■ ll: Package ll implements grammars, FIRST/FOLLOW/PREDICT analysis, the LL(1)
validator and LL(1) parse tables.

■ ll/bnf: Package bnf reads grammars from a compact textual notation.

■ ll/llcheck: A command line tool to check grammar files for the LL(1) property.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package predict

/*
Package lexmach provides a DFA-backed matching engine for package lex,
built on lexmachine.

Each pattern compiles into its own single-rule lexmachine DFA. Note that
lexmachine's pattern dialect is narrower than the regexp dialect of the
default engine; rule authors switching engines have to stay within it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The munch authors

*/
package lexmach

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'munch.lex'.
func tracer() tracing.Trace {
	return tracing.Select("munch.lex")
}

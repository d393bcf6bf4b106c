/*
Package lex implements a rule-driven tokenizer.

A Lexer holds an ordered list of (pattern, handler) rules. Running it over
an input string finds the best non-overlapping set of rule matches and
invokes each winning match's handler, which produces a token, drops the
match (whitespace, comments), or rejects it with an error.

Conflicts between overlapping candidate matches are resolved by maximal
munch: the longer candidate always wins, and among candidates of equal
length the rule registered earlier wins. This composition is the only
ambiguity-resolution mechanism; rules carry no explicit priority.

Pattern matching is delegated to an Engine. The default engine is backed
by the standard regexp package; sub-package lexmach provides a DFA-backed
alternative. Pattern dialects are engine-specific.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The munch authors

*/
package lex

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'munch.lex'.
func tracer() tracing.Trace {
	return tracing.Select("munch.lex")
}

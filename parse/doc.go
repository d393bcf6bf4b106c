/*
Package parse implements a token queue for hand-written recursive-descent
parsers.

A TokenQueue is a movable position over an immutable token sequence, as
produced by a lex.Lexer. Cloning a queue copies just the position, never
the tokens, which makes speculative parsing affordable: a grammar
production runs against a private clone and reports its final position,
and only a fully successful production moves the caller's queue.

All failures are data. The queue returns typed errors and never prints;
callers decide whether to rewind and try an alternative production,
surface the error, or abort.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The munch authors

*/
package parse

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'munch.parse'.
func tracer() tracing.Trace {
	return tracing.Select("munch.parse")
}

/*
Package crepl/main provides an interactive command line calculator on top
of the calc example grammar. It serves as a demonstration of the munch
toolkit wired end to end: lexer rules, token queue, parse functions and
evaluation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The munch authors

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'munch.calc'
func tracer() tracing.Trace {
	return tracing.Select("munch.calc")
}

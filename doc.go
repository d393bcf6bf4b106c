/*
Package munch is a small lexing and parsing toolkit.

munch strives to be a lightweight aid for building hand-written
interpreters for small DSLs. It ships a rule-driven tokenizer and a
backtracking-friendly token queue, which may be used independently or in
sequence. Package structure is as follows:

■ lex: Package lex implements a pattern-rule lexer with
maximal-munch/first-registered conflict resolution, on top of a pluggable
pattern-matching engine.

■ lex/lexmach: Package lexmach provides a DFA-backed matching engine for
lex, built on lexmachine.

■ parse: Package parse implements a token queue for recursive-descent
parsers, with speculative parsing and commit-on-success.

■ calc: Package calc is a worked example, a tiny calculator language built
on lex and parse.

The base package contains data types which are used throughout all the
other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The munch authors

*/
package munch

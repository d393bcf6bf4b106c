/*
Package calc is a worked example for the munch toolkit: a tiny calculator
language over +, -, * and / on floating point literals.

The grammar is deliberately flat,

	Expr ➞ number [ op Expr ]

with every operator recursing identically to the right. There is no
operator precedence and no associativity handling: "5 * 6 + 2" evaluates
as 5 * (6 + 2). The package demonstrates how lexer rules, the token queue
and parse functions fit together, not how to write a good calculator.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The munch authors

*/
package calc

import (
	"strconv"

	"github.com/munchlex/munch"
	"github.com/munchlex/munch/lex"
	"github.com/munchlex/munch/parse"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'munch.calc'.
func tracer() tracing.Trace {
	return tracing.Select("munch.calc")
}

// Token categories of the calculator language.
const (
	Add munch.TokType = iota + 1
	Sub
	Mul
	Div
	Num
)

// TokTypeString implements munch.TokTypeStringer for the calculator tokens.
func TokTypeString(typ munch.TokType) string {
	switch typ {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Num:
		return "number"
	}
	return "<unknown>"
}

var exprLexer = newLexer()

// Lexer returns the calculator's lexer. It is built once and read-only
// afterwards, so all callers may share it.
func Lexer() *lex.Lexer {
	return exprLexer
}

func newLexer() *lex.Lexer {
	l := lex.NewLexer()
	l.AddRule(`[\s]+`, func(lex.Match) lex.LexResult {
		return lex.Skip()
	})
	l.AddRule(`\+`, operator(Add))
	l.AddRule(`\-`, operator(Sub))
	l.AddRule(`\*`, operator(Mul))
	l.AddRule(`/`, operator(Div))
	// signed decimal; beats the Sub rule on "-2" because it matches longer
	l.AddRule(`\-?[0-9]+(?:\.[0-9]+)?`, func(m lex.Match) lex.LexResult {
		val, err := strconv.ParseFloat(m.Text(), 64)
		if err != nil {
			return lex.Fail(err)
		}
		t := munch.MakeStdToken(Num, m.Text(), m.Span())
		t.Val = val
		return lex.Emit(t)
	})
	return l
}

func operator(typ munch.TokType) lex.MatchHandler {
	return func(m lex.Match) lex.LexResult {
		return lex.Emit(munch.MakeStdToken(typ, m.Text(), m.Span()))
	}
}

// --- Syntax tree -----------------------------------------------------------

// Expr is a node of a calculator syntax tree.
type Expr interface {
	Eval() float64
}

// Number is a literal leaf.
type Number float64

func (n Number) Eval() float64 {
	return float64(n)
}

// Sum combines two sub-expressions additively. With Inverse set, the
// right-hand side is subtracted.
type Sum struct {
	LHS, RHS Expr
	Inverse  bool
}

func (s Sum) Eval() float64 {
	if s.Inverse {
		return s.LHS.Eval() - s.RHS.Eval()
	}
	return s.LHS.Eval() + s.RHS.Eval()
}

// Product combines two sub-expressions multiplicatively. With Inverse set,
// the left-hand side is divided by the right-hand side.
type Product struct {
	LHS, RHS Expr
	Inverse  bool
}

func (p Product) Eval() float64 {
	if p.Inverse {
		return p.LHS.Eval() / p.RHS.Eval()
	}
	return p.LHS.Eval() * p.RHS.Eval()
}

// --- Parsing ---------------------------------------------------------------

// ParseExpr is the parse function for Expr ➞ number [ op Expr ]. It consumes
// greedily to the right until the queue is exhausted.
func ParseExpr(tq *parse.TokenQueue) (interface{}, int, error) {
	tq = tq.Clone()
	numTok, err := tq.ConsumeMatching(func(t munch.Token) bool {
		return t.TokType() == Num
	})
	if err != nil {
		return nil, 0, parse.Syntaxf("expected a number: %v", err)
	}
	lhs := Number(numTok.Value().(float64))

	// base case: the number was the last token
	if tq.IsConsumed() {
		return lhs, tq.Pos(), nil
	}

	// recursive case: operator followed by a sub-expression
	op, err := tq.Consume()
	if err != nil {
		return nil, 0, err
	}
	sub, err := tq.Parse(ParseExpr)
	if err != nil {
		return nil, 0, err
	}
	rhs := sub.(Expr)

	switch op.TokType() {
	case Add:
		return Sum{LHS: lhs, RHS: rhs}, tq.Pos(), nil
	case Sub:
		return Sum{LHS: lhs, RHS: rhs, Inverse: true}, tq.Pos(), nil
	case Mul:
		return Product{LHS: lhs, RHS: rhs}, tq.Pos(), nil
	case Div:
		return Product{LHS: lhs, RHS: rhs, Inverse: true}, tq.Pos(), nil
	}
	return nil, 0, parse.Syntaxf("expected an operator, got %s", TokTypeString(op.TokType()))
}

// Parse lexes an arithmetic term and parses it into a syntax tree.
func Parse(input string) (Expr, error) {
	tokens, err := exprLexer.Lex(input)
	if err != nil {
		return nil, err
	}
	tq := parse.NewTokenQueue(tokens)
	val, err := tq.Parse(ParseExpr)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("parsed %q into %T", input, val)
	return val.(Expr), nil
}

// Eval lexes, parses and evaluates an arithmetic term.
func Eval(input string) (float64, error) {
	expr, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return expr.Eval(), nil
}

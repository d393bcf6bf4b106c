package calc

import (
	"errors"
	"reflect"
	"testing"

	"github.com/munchlex/munch"
	"github.com/munchlex/munch/lex"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCalcLex(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "munch.calc")
	defer teardown()
	//
	tokens, err := Lexer().Lex("5 + 6")
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %v", len(tokens), tokens)
	}
	kinds := []munch.TokType{tokens[0].TokType(), tokens[1].TokType(), tokens[2].TokType()}
	if kinds[0] != Num || kinds[1] != Add || kinds[2] != Num {
		t.Errorf("expected [number + number], got %v", kinds)
	}
	if tokens[0].Value().(float64) != 5.0 || tokens[2].Value().(float64) != 6.0 {
		t.Errorf("unexpected literal values in %v", tokens)
	}
}

func TestCalcLexUnmatched(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "munch.calc")
	defer teardown()
	//
	_, err := Lexer().Lex("5 & 6")
	if err == nil {
		t.Fatal("expected lexing of \"5 & 6\" to fail")
	}
	var unmatched *lex.UnmatchedInputError
	if !errors.As(err, &unmatched) || unmatched.Pos != 2 {
		t.Errorf("expected unmatched input at position 2, got %v", err)
	}
}

func TestCalcLexNegativeLiteral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "munch.calc")
	defer teardown()
	//
	// "-2" is matched by the Sub rule and the longer number rule; maximal
	// munch keeps the number
	tokens, err := Lexer().Lex("5 + -2")
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 3 || tokens[2].Value().(float64) != -2.0 {
		t.Fatalf("expected [5 + -2], got %v", tokens)
	}
}

func TestCalcParseRightNesting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "munch.calc")
	defer teardown()
	//
	// the grammar consumes greedily rightward; operators do not group by
	// precedence
	inputs := []string{
		"5 + 6 - 2",
		"5 * 6 + 2",
		"5 + 6 * 2",
	}
	wants := []Expr{
		Sum{LHS: Number(5), RHS: Sum{LHS: Number(6), RHS: Number(2), Inverse: true}},
		Product{LHS: Number(5), RHS: Sum{LHS: Number(6), RHS: Number(2)}},
		Sum{LHS: Number(5), RHS: Product{LHS: Number(6), RHS: Number(2)}},
	}
	for i, input := range inputs {
		expr, err := Parse(input)
		if err != nil {
			t.Errorf("parsing %q failed: %v", input, err)
			continue
		}
		t.Logf("%-12q = %#v", input, expr)
		if !reflect.DeepEqual(expr, wants[i]) {
			t.Errorf("expected %q to parse as %#v, got %#v", input, wants[i], expr)
		}
	}
}

func TestCalcEval(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "munch.calc")
	defer teardown()
	//
	inputs := []string{
		"5",
		"5 + 6",
		"8 / 2",
		"5 * 6 + 2",  // = 5 * (6 + 2), flat grammar
		"10 - 2 - 3", // = 10 - (2 - 3)
	}
	wants := []float64{5, 11, 4, 40, 11}
	for i, input := range inputs {
		val, err := Eval(input)
		if err != nil {
			t.Errorf("evaluating %q failed: %v", input, err)
			continue
		}
		t.Logf("%-12q = %g", input, val)
		if val != wants[i] {
			t.Errorf("expected %q to evaluate to %g, got %g", input, wants[i], val)
		}
	}
}

func TestCalcParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "munch.calc")
	defer teardown()
	//
	for _, input := range []string{"+ 5", "5 +", "5 6"} {
		if _, err := Parse(input); err == nil {
			t.Errorf("expected parsing %q to fail", input)
		}
	}
}

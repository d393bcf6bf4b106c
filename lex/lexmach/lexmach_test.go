package lexmach

import (
	"strconv"
	"testing"

	"github.com/munchlex/munch"
	"github.com/munchlex/munch/lex"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFindAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "munch.lex")
	defer teardown()
	//
	p, err := NewEngine().Compile(`[0-9]+`)
	if err != nil {
		t.Fatal(err)
	}
	matches := p.FindAll("12 abc 34")
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Text() != "12" || matches[0].Start() != 0 || matches[0].End() != 2 {
		t.Errorf("unexpected first match: %q at %d…%d",
			matches[0].Text(), matches[0].Start(), matches[0].End())
	}
	if matches[1].Text() != "34" || matches[1].Start() != 7 || matches[1].End() != 9 {
		t.Errorf("unexpected second match: %q at %d…%d",
			matches[1].Text(), matches[1].Start(), matches[1].End())
	}
}

func TestCompileError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "munch.lex")
	defer teardown()
	//
	if _, err := NewEngine().Compile(`[`); err == nil {
		t.Error("expected compiling a malformed pattern to fail")
	}
}

const tokNum munch.TokType = 1
const tokAdd munch.TokType = 2

func TestLexerWithDFAEngine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "munch.lex")
	defer teardown()
	//
	l := lex.NewLexer(lex.WithEngine(NewEngine()))
	l.AddRule(`( |\t|\n)+`, func(lex.Match) lex.LexResult { return lex.Skip() })
	l.AddRule(`\+`, func(m lex.Match) lex.LexResult {
		return lex.Emit(munch.MakeStdToken(tokAdd, m.Text(), m.Span()))
	})
	l.AddRule(`[0-9]+`, func(m lex.Match) lex.LexResult {
		v, err := strconv.ParseFloat(m.Text(), 64)
		if err != nil {
			return lex.Fail(err)
		}
		tok := munch.MakeStdToken(tokNum, m.Text(), m.Span())
		tok.Val = v
		return lex.Emit(tok)
	})
	tokens, err := l.Lex("5 + 6")
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %v", len(tokens), tokens)
	}
	if tokens[0].TokType() != tokNum || tokens[1].TokType() != tokAdd || tokens[2].TokType() != tokNum {
		t.Errorf("unexpected token kinds in %v", tokens)
	}
}

package lexmach

import (
	"github.com/munchlex/munch/lex"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// Engine compiles lexer rule patterns into lexmachine DFAs. It implements
// lex.Engine and is plugged into a lexer with lex.WithEngine.
type Engine struct{}

var _ lex.Engine = Engine{}

// NewEngine creates a lexmachine-backed matching engine.
func NewEngine() Engine {
	return Engine{}
}

// Compile builds a single-rule DFA for the pattern. It returns an error if
// compiling the DFA failed.
func (Engine) Compile(pattern string) (lex.Pattern, error) {
	lexer := lexmachine.NewLexer()
	lexer.Add([]byte(pattern), capture)
	if err := lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return &Pattern{lexer: lexer}, nil
}

// capture is the single lexmachine action: it hands the raw match through.
func capture(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return m, nil
}

// Pattern is a compiled single-pattern DFA.
type Pattern struct {
	lexer *lexmachine.Lexer
}

var _ lex.Pattern = (*Pattern)(nil)

// FindAll scans input for all non-overlapping occurrences of the pattern,
// left to right. Stretches the DFA cannot consume are skipped by resuming
// the scanner behind the failure position.
func (p *Pattern) FindAll(input string) []lex.Match {
	s, err := p.lexer.Scanner([]byte(input))
	if err != nil {
		tracer().Errorf("scanner error: %v", err)
		return nil
	}
	var matches []lex.Match
	tok, err, eof := s.Next()
	for !eof {
		if err != nil {
			ui, is := err.(*machines.UnconsumedInput)
			if !is {
				tracer().Errorf("scanner error: %v", err)
				break
			}
			if ui.FailTC > s.TC {
				s.TC = ui.FailTC
			} else {
				s.TC++ // the DFA made no progress, skip one byte
			}
		} else {
			m := tok.(*machines.Match)
			if len(m.Bytes) == 0 {
				s.TC++ // guard against zero-width matches looping
			} else {
				matches = append(matches, lex.MakeMatch(string(m.Bytes), m.TC, m.TC+len(m.Bytes)))
			}
		}
		tok, err, eof = s.Next()
	}
	return matches
}

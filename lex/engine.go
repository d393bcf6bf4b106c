package lex

import (
	"regexp"

	"github.com/munchlex/munch"
)

// --- Matching engine abstraction -------------------------------------------

// Engine is the pattern-matching collaborator of a Lexer. It compiles a
// textual pattern into a Pattern, failing on malformed pattern syntax.
// The dialect understood by Compile is engine-specific.
type Engine interface {
	Compile(pattern string) (Pattern, error)
}

// Pattern is a compiled pattern. FindAll returns every non-overlapping
// occurrence in input, scanning left to right.
type Pattern interface {
	FindAll(input string) []Match
}

// Match is a single occurrence of a pattern in some input text.
type Match struct {
	text  string
	start int
	end   int
}

// MakeMatch creates a Match from the matched text and its byte offsets.
// It is intended for Engine implementations.
func MakeMatch(text string, start, end int) Match {
	return Match{
		text:  text,
		start: start,
		end:   end,
	}
}

// Text returns the matched substring.
func (m Match) Text() string {
	return m.text
}

// Start returns the byte offset of the match in the input.
func (m Match) Start() int {
	return m.start
}

// End returns the byte offset just behind the match.
func (m Match) End() int {
	return m.end
}

// Len returns the match length in bytes.
func (m Match) Len() int {
	return m.end - m.start
}

// Span returns the match's offset range as a munch.Span.
func (m Match) Span() munch.Span {
	return munch.Span{uint64(m.start), uint64(m.end)}
}

// --- Default engine --------------------------------------------------------

// DefaultEngine returns the engine every Lexer starts out with, backed by
// the standard regexp package (RE2 syntax).
func DefaultEngine() Engine {
	return reEngine{}
}

type reEngine struct{}

func (reEngine) Compile(pattern string) (Pattern, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return rePattern{re: re}, nil
}

type rePattern struct {
	re *regexp.Regexp
}

func (p rePattern) FindAll(input string) []Match {
	locs := p.re.FindAllStringIndex(input, -1)
	matches := make([]Match, 0, len(locs))
	for _, loc := range locs {
		matches = append(matches, Match{
			text:  input[loc[0]:loc[1]],
			start: loc[0],
			end:   loc[1],
		})
	}
	return matches
}

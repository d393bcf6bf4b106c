package lex

import (
	"fmt"
	"sort"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/munchlex/munch"
)

// --- Rules and handlers ----------------------------------------------------

// LexResult is what a MatchHandler reports back for a single match: a token,
// an instruction to drop the match, or an error.
type LexResult struct {
	token  munch.Token
	ignore bool
	err    error
}

// Emit wraps a token produced from a match.
func Emit(t munch.Token) LexResult {
	return LexResult{token: t}
}

// Skip drops the match. Its offset range stays claimed, so no other rule
// will re-match it. Use this for whitespace and comments.
func Skip() LexResult {
	return LexResult{ignore: true}
}

// Fail rejects the match with an error, aborting the Lex call. Use this when
// a lexeme cannot be converted to a token value.
func Fail(err error) LexResult {
	return LexResult{err: err}
}

// MatchHandler turns a pattern match into a LexResult.
type MatchHandler func(m Match) LexResult

// Rule pairs a compiled pattern with a handler. Rules are immutable once
// registered.
type Rule struct {
	pattern Pattern
	source  string
	handler MatchHandler
}

// --- Lexer -----------------------------------------------------------------

// A Lexer converts input text into a sequence of tokens, driven by an ordered
// list of rules. Registration order only matters as a tie-break among
// candidate matches of equal length; otherwise the longest match wins.
//
// A Lexer must not be modified while a Lex call is in flight. The usual
// pattern is to build it once, at startup, and treat it as read-only
// afterwards.
type Lexer struct {
	engine Engine
	rules  *arraylist.List // of *Rule, in registration order
}

// Option configures a Lexer.
type Option func(l *Lexer)

// WithEngine lets a Lexer use a different pattern-matching engine, e.g. the
// DFA-backed one of sub-package lexmach.
func WithEngine(e Engine) Option {
	return func(l *Lexer) {
		l.engine = e
	}
}

// NewLexer creates an empty Lexer with the default regexp-backed engine.
func NewLexer(opts ...Option) *Lexer {
	l := &Lexer{
		engine: DefaultEngine(),
		rules:  arraylist.New(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// AddRule registers a rule at the end of the rule list.
//
// AddRule panics if the pattern does not compile with the lexer's engine.
// A malformed pattern is a programming mistake by the rule author, made at
// construction time, and is not recoverable.
func (l *Lexer) AddRule(pattern string, handler MatchHandler) {
	p, err := l.engine.Compile(pattern)
	if err != nil {
		panic(fmt.Errorf("malformed pattern %q passed to AddRule: %w", pattern, err))
	}
	l.rules.Add(&Rule{
		pattern: p,
		source:  pattern,
		handler: handler,
	})
}

// Fingerprint returns a stable hash over the registered pattern list, usable
// as a cache key for token sequences derived from this lexer.
func (l *Lexer) Fingerprint() string {
	var sig struct {
		Patterns []string
	}
	it := l.rules.Iterator()
	for it.Next() {
		sig.Patterns = append(sig.Patterns, it.Value().(*Rule).source)
	}
	return fmt.Sprintf("%x", structhash.Md5(sig, 1))
}

// --- Lexing ----------------------------------------------------------------

// UnmatchedInputError reports the first input offset not covered by any rule.
type UnmatchedInputError struct {
	Pos int
}

func (e *UnmatchedInputError) Error() string {
	return fmt.Sprintf("unmatched input at position %d", e.Pos)
}

// claim records which match currently owns a byte offset. A zero claim means
// the offset is unclaimed; accepted matches always have length > 0.
type claim struct {
	start  int
	length int
}

// lexerMatch is an accepted match together with the token its handler produced.
type lexerMatch struct {
	token  munch.Token
	start  int
	length int
}

// Lex runs every rule's pattern over the whole input and resolves conflicts
// between overlapping candidate matches: a candidate is rejected if any of
// its offsets is claimed by a match of greater or equal length, and otherwise
// displaces every shorter match it overlaps, tokens included.
//
// Accepted matches are handed to their rule's handler. A handler error aborts
// Lex immediately. After all rules ran, every input byte has to be claimed by
// some match, or Lex fails with an UnmatchedInputError naming the first
// unclaimed offset. The surviving tokens are returned ordered by start
// offset, i.e. in left-to-right reading order.
func (l *Lexer) Lex(input string) ([]munch.Token, error) {
	claims := make([]claim, len(input))
	var accepted []*lexerMatch
	it := l.rules.Iterator()
	for it.Next() {
		rule := it.Value().(*Rule)
		for _, m := range rule.pattern.FindAll(input) {
			takesPriority := true
			for i := m.Start(); i < m.End(); i++ {
				confl := claims[i]
				if confl.length >= m.Len() {
					// an equal or longer match already owns this offset
					takesPriority = false
					break
				}
				if confl.length > 0 {
					// a shorter match owns it: displace it completely
					for j := confl.start; j < confl.start+confl.length; j++ {
						claims[j] = claim{}
					}
					accepted = dropMatch(accepted, confl.start, confl.length)
				}
			}
			if !takesPriority {
				continue
			}
			for i := m.Start(); i < m.End(); i++ {
				claims[i] = claim{start: m.Start(), length: m.Len()}
			}
			res := rule.handler(m)
			switch {
			case res.err != nil:
				return nil, fmt.Errorf("rule handler rejected match at position %d: %w",
					m.Start(), res.err)
			case res.ignore:
				// offset range stays claimed, but no token is kept
			default:
				accepted = append(accepted, &lexerMatch{
					token:  res.token,
					start:  m.Start(),
					length: m.Len(),
				})
			}
		}
	}
	for pos, c := range claims {
		if c.length == 0 {
			return nil, &UnmatchedInputError{Pos: pos}
		}
	}
	sort.SliceStable(accepted, func(i, j int) bool {
		return accepted[i].start < accepted[j].start
	})
	tokens := make([]munch.Token, len(accepted))
	for i, m := range accepted {
		tokens[i] = m.token
	}
	tracer().Debugf("lexed %d bytes of input into %d tokens", len(input), len(tokens))
	return tokens, nil
}

// dropMatch removes the accepted match identified by (start, length).
func dropMatch(matches []*lexerMatch, start int, length int) []*lexerMatch {
	kept := matches[:0]
	for _, m := range matches {
		if m.start == start && m.length == length {
			continue
		}
		kept = append(kept, m)
	}
	return kept
}

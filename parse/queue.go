package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/munchlex/munch"
)

// ErrEmptyQueue means a read past the end of the token sequence.
var ErrEmptyQueue = errors.New("no token left in queue")

// ErrNoMatch means the front token was rejected by a predicate or an
// equality check.
var ErrNoMatch = errors.New("token did not match required format")

// ErrNoPrev means Prev was called before anything was consumed.
var ErrNoPrev = errors.New("no token has been consumed yet")

// SyntaxError is a free-form error for grammar-specific violations, raised
// by parse functions of client grammars.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string {
	return e.Msg
}

// Syntaxf creates a SyntaxError from a format string.
func Syntaxf(format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...)}
}

// --- TokenQueue ------------------------------------------------------------

// A TokenQueue is a position over a shared, immutable token sequence.
// The zero position is the front; a position equal to the sequence length
// means the queue is fully consumed.
//
// Queues are cheap to clone: all clones share the same backing sequence.
// The sequence must not be mutated once a queue is created over it.
type TokenQueue struct {
	tokens []munch.Token
	idx    int
}

// NewTokenQueue creates a queue positioned at the front of a token sequence.
func NewTokenQueue(tokens []munch.Token) *TokenQueue {
	return &TokenQueue{tokens: tokens}
}

// Clone duplicates the queue's position. The token sequence is shared,
// never copied, so cloning is O(1).
func (tq *TokenQueue) Clone() *TokenQueue {
	return &TokenQueue{
		tokens: tq.tokens,
		idx:    tq.idx,
	}
}

// Peek returns the front token without consuming it. It fails with
// ErrEmptyQueue when the queue is exhausted.
func (tq *TokenQueue) Peek() (munch.Token, error) {
	if tq.idx >= len(tq.tokens) {
		return nil, ErrEmptyQueue
	}
	return tq.tokens[tq.idx], nil
}

// Consume advances the position by one and returns the token just passed.
// It fails like Peek when the queue is exhausted, without advancing.
func (tq *TokenQueue) Consume() (munch.Token, error) {
	t, err := tq.Peek()
	if err != nil {
		return nil, err
	}
	tq.idx++
	return t, nil
}

// PeekMatching returns the front token if the predicate accepts it, and
// fails with ErrNoMatch otherwise.
func (tq *TokenQueue) PeekMatching(f func(munch.Token) bool) (munch.Token, error) {
	t, err := tq.Peek()
	if err != nil {
		return nil, err
	}
	if !f(t) {
		return nil, ErrNoMatch
	}
	return t, nil
}

// ConsumeMatching consumes the front token if the predicate accepts it.
// On rejection it fails with ErrNoMatch and does not advance.
func (tq *TokenQueue) ConsumeMatching(f func(munch.Token) bool) (munch.Token, error) {
	t, err := tq.PeekMatching(f)
	if err != nil {
		return nil, err
	}
	tq.idx++
	return t, nil
}

// ConsumeEq consumes the front token if it equals the given token, in the
// sense of munch.TokensEq. On inequality it fails with ErrNoMatch and does
// not advance.
func (tq *TokenQueue) ConsumeEq(token munch.Token) error {
	t, err := tq.Peek()
	if err != nil {
		return err
	}
	if !munch.TokensEq(t, token) {
		return ErrNoMatch
	}
	tq.idx++
	return nil
}

// Prev returns the most recently consumed token.
func (tq *TokenQueue) Prev() (munch.Token, error) {
	if tq.idx == 0 {
		return nil, ErrNoPrev
	}
	return tq.tokens[tq.idx-1], nil
}

// Advance moves the position forward by one without reading the token.
// Useful after a Peek that already inspected it.
func (tq *TokenQueue) Advance() {
	tq.idx++
}

// GoTo sets the position directly. It is meant for committing the result of
// a speculative parse, or for rewinding by the queue's owner to retry an
// alternative production.
func (tq *TokenQueue) GoTo(i int) {
	tq.idx = i
}

// Pos returns the current position. Parse functions report their final
// position with it.
func (tq *TokenQueue) Pos() int {
	return tq.idx
}

// IsConsumed returns true exactly when no tokens are left.
func (tq *TokenQueue) IsConsumed() bool {
	return tq.idx == len(tq.tokens)
}

func (tq *TokenQueue) String() string {
	var sb strings.Builder
	end := len(tq.tokens)
	if end > tq.idx+20 {
		end = tq.idx + 20
	}
	for _, t := range tq.tokens[tq.idx:end] {
		sb.WriteString(fmt.Sprintf("[%v]", t))
	}
	return sb.String()
}

// --- Speculative parsing ---------------------------------------------------

// ParseFn is the shape of a grammar production: it reads tokens from a queue
// and returns the parsed value together with the position just behind the
// last token it consumed. The queue handed to a ParseFn by Parse is a
// private clone, safe to mutate freely.
type ParseFn func(tq *TokenQueue) (interface{}, int, error)

// ParseWithFn is a ParseFn threading an additional read-only context value,
// e.g. a symbol table.
type ParseWithFn func(tq *TokenQueue, ctx interface{}) (interface{}, int, error)

// Parse applies a grammar production speculatively. The production receives
// a fresh clone of the queue, so however many tokens it consumes before
// failing, the caller's position is untouched. Only on success is the
// production's reported final position committed, as a single GoTo.
func (tq *TokenQueue) Parse(parseFn ParseFn) (interface{}, error) {
	val, at, err := parseFn(tq.Clone())
	if err != nil {
		tracer().Debugf("speculative parse failed at %d: %v", tq.idx, err)
		return nil, err
	}
	tq.GoTo(at)
	return val, nil
}

// ParseWith is Parse with a context value passed through to the production.
func (tq *TokenQueue) ParseWith(parseFn ParseWithFn, ctx interface{}) (interface{}, error) {
	val, at, err := parseFn(tq.Clone(), ctx)
	if err != nil {
		tracer().Debugf("speculative parse failed at %d: %v", tq.idx, err)
		return nil, err
	}
	tq.GoTo(at)
	return val, nil
}

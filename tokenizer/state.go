package tokenizer

import "github.com/aledsdavies/mdcore/invariant"

// StateFn is one state function in the protocol described in spec
// §4.1.1. It takes the tokenizer and returns a Result describing how the
// driver should proceed next.
//
// StateFn values are plain function values, not closures over loop-local
// state: either a top-level function, or a method value bound to a
// construct's own scratch type. Both are a (code pointer[, receiver
// pointer]) pair that Go copies by value with no extra heap allocation
// per Result returned, which is what spec §9's design note ("represent
// the next-state return as a small integer identifier... not as a
// closure... keeps return values copyable and the tokenizer free of heap
// allocation during hot loops") is actually protecting against: closures
// that capture per-invocation loop variables. The teacher's
// pkgs/lexer/lexer_state.go LexerState enum + switch is the same idea at
// a coarser grain (one state per syntactic mode); StateFn plays that role
// per construct here because the construct library is open-ended (40+
// constructs, spec §2) rather than a fixed handful of lexer modes.
type StateFn func(t *Tokenizer) Result

// Verdict is the outcome tag of a Result (spec §4.1.1).
type Verdict uint8

const (
	VerdictOk Verdict = iota
	VerdictNok
	VerdictNext
	VerdictRetry
	VerdictError
)

// Result is what a StateFn returns (spec §4.1.1):
//   - Ok: top-level success; driver advances.
//   - Nok: failure; surrender to the caller's attempt frame.
//   - Next(state): continue at state after the next byte is read.
//   - Retry(state): continue at state without consuming the current byte.
//   - Error(message): unrecoverable parse error (no construct here returns it).
type Result struct {
	Verdict Verdict
	Next    StateFn
	Err     error
}

// Ok signals top-level success.
func Ok() Result { return Result{Verdict: VerdictOk} }

// Nok signals failure; the engine will surrender to the enclosing
// Attempt/Check frame.
func Nok() Result { return Result{Verdict: VerdictNok} }

// Next continues at fn after the engine consumes the current byte.
// Contract: the calling state function must have called t.Consume()
// before returning this (spec §4.1.1).
func Next(fn StateFn) Result {
	invariant.NotNil(fn, "tokenizer.Next state")
	return Result{Verdict: VerdictNext, Next: fn}
}

// Retry continues at fn without consuming the current byte: the new
// state re-examines the same byte. Contract: the calling state function
// must NOT have called t.Consume() (spec §4.1.1).
func Retry(fn StateFn) Result {
	invariant.NotNil(fn, "tokenizer.Retry state")
	return Result{Verdict: VerdictRetry, Next: fn}
}

// ErrorResult signals an unrecoverable parse error (spec §4.1.1).
// Attempt/Check propagate it unchanged; no construct in this module
// returns it.
func ErrorResult(err error) Result {
	invariant.NotNil(err, "tokenizer.ErrorResult err")
	return Result{Verdict: VerdictError, Err: err}
}

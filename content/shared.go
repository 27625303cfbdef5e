// Package content implements spec §4.2's four content-model drivers
// (Document, Flow, Text, String): the glue that attempts each model's
// enabled constructs in the documented order and threads state across
// the physical lines a single construct's body can span.
//
// Grounded on construct/blockquote.go's package comment: constructs that
// can fail after already mutating events (ListItemOpen's ordered-marker
// path, BlankLine's leading-whitespace consumption) are wrapped in
// Tokenizer.Attempt here so a failed candidate never leaves a partial
// trace. Constructs already known to be side-effect-free until they
// commit (the majority of the library) are invoked directly and their
// Result checked, the same way thematicbreak.go and codefenced.go call
// Tokenizer.Check internally and discard its returned Result in favor of
// a captured local bool — this package reuses that idiom instead of
// threading Attempt's Retry-wrapped Result through a driver loop of its
// own.
package content

import (
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// tryOk runs fn once and reports whether it returned Ok. fn must not
// itself return Next/Retry (every construct in this library resolves in
// one call).
func tryOk(t *tokenizer.Tokenizer, fn tokenizer.StateFn) bool {
	return t.Run(fn).Verdict == tokenizer.VerdictOk
}

// attemptBool adapts a plain bool-returning construct function (one that
// may consume bytes before reporting failure, e.g. ListItemContinue) into
// an Attempt-guarded call, so a false result leaves the tokenizer exactly
// as it found it.
func attemptBool(t *tokenizer.Tokenizer, fn func(*tokenizer.Tokenizer) bool) bool {
	ok := false
	t.Attempt(
		func(t *tokenizer.Tokenizer) tokenizer.Result {
			if fn(t) {
				ok = true
				return tokenizer.Ok()
			}
			return tokenizer.Nok()
		},
		func(t *tokenizer.Tokenizer) tokenizer.Result { return tokenizer.Ok() },
		func(t *tokenizer.Tokenizer) tokenizer.Result { return tokenizer.Ok() },
	)
	return ok
}

// tagSpansSince marks every not-yet-linked Enter event named `name` added
// to t.Events at or after index `from` for subtokenization in the given
// content model. Used right after a construct call that may have emitted
// zero, one, or several raw byte spans (a heading's text, a table row's
// several cells) that the construct itself captured as literal bytes
// without recognizing inline constructs inside them.
func tagSpansSince(t *tokenizer.Tokenizer, from int, name mdevent.Name, content mdevent.Content) {
	for i := from; i < len(t.Events); i++ {
		e := t.Events[i]
		if e.Kind == mdevent.Enter && e.Name == name && e.Link == nil {
			t.Events[i].Link = &mdevent.Link{Content: content}
		}
	}
}

// isBlankAhead reports whether the remainder of the current (unconsumed)
// line is only spaces/tabs before a line ending or EOF, without
// consuming anything.
func isBlankAhead(t *tokenizer.Tokenizer) bool {
	i := t.Point.Index
	for i < len(t.Source) && (t.Source[i] == ' ' || t.Source[i] == '\t') {
		i++
	}
	return i >= len(t.Source) || t.Source[i] == '\n' || t.Source[i] == '\r'
}

// consumeFlowLineEnding consumes one trailing line ending, if the current
// byte is one, wrapped in a LineEnding event. Used by flow constructs
// whose body already stopped short of the line end (MDX flow expression
// and JSX tag both close on their own closing marker, not on a line
// boundary).
func consumeFlowLineEnding(t *tokenizer.Tokenizer) {
	if t.AtEOF() || (t.Current != int32('\n') && t.Current != int32('\r')) {
		return
	}
	t.Enter(mdevent.LineEnding)
	wasCR := t.Current == int32('\r')
	t.Consume()
	if wasCR && t.Current == int32('\n') {
		t.Consume()
	}
	t.Exit(mdevent.LineEnding)
}

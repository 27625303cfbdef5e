package construct

import (
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// BlankLine recognizes a line made of only spaces/tabs followed by a
// line ending or EOF. It consumes the whitespace (uneventfully -- a
// blank line's leading space is not itself a construct) and the line
// ending, emitting a single void BlankLineEnding event.
func BlankLine(t *tokenizer.Tokenizer) tokenizer.Result {
	for t.Current == int32(' ') || t.Current == int32('\t') {
		t.Consume()
	}
	if !atLineEndOrEOF(t.Current) {
		return tokenizer.Nok()
	}
	t.Enter(mdevent.BlankLineEnding)
	if t.Current == int32('\r') {
		t.Consume()
		if t.Current == int32('\n') {
			t.Consume()
		}
	} else if t.Current == int32('\n') {
		t.Consume()
	}
	t.Exit(mdevent.BlankLineEnding)
	return tokenizer.Ok()
}

// consumeLineEnding consumes one line ending (LF, CR, or CRLF as a
// single unit) and emits its LineEnding event.
func consumeLineEnding(t *tokenizer.Tokenizer) {
	t.Enter(mdevent.LineEnding)
	wasCR := t.Current == int32('\r')
	t.Consume()
	if wasCR && t.Current == int32('\n') {
		t.Consume()
	}
	t.Exit(mdevent.LineEnding)
}

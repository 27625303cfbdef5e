package construct

import (
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// HardBreakEscape recognizes a trailing `\` immediately before a line
// ending (spec §4.3.15).
func HardBreakEscape(t *tokenizer.Tokenizer) tokenizer.Result {
	if t.Current != int32('\\') {
		return tokenizer.Nok()
	}
	if peekNext(t) != int32('\n') && peekNext(t) != int32('\r') {
		return tokenizer.Nok()
	}
	t.Enter(mdevent.HardBreakEscape)
	t.Consume()
	t.Exit(mdevent.HardBreakEscape)
	return tokenizer.Ok()
}

// HardBreakTrailing recognizes 2+ trailing spaces immediately before a
// line ending.
func HardBreakTrailing(t *tokenizer.Tokenizer) tokenizer.Result {
	if t.Current != int32(' ') {
		return tokenizer.Nok()
	}
	i := t.Point.Index
	count := 0
	for i < len(t.Source) && t.Source[i] == ' ' {
		count++
		i++
	}
	if count < 2 || i >= len(t.Source) || (t.Source[i] != '\n' && t.Source[i] != '\r') {
		return tokenizer.Nok()
	}
	t.Enter(mdevent.HardBreakTrailing)
	for j := 0; j < count; j++ {
		t.Consume()
	}
	t.Exit(mdevent.HardBreakTrailing)
	return tokenizer.Ok()
}

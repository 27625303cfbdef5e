package construct

import (
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// AttentionSequence recognizes a run of `*` or `_`, emitting one bare
// AttentionSequence event with no emphasis/strong classification (spec
// §4.3.10). Classification (can-open/can-close, left/right-flanking)
// and pairing into Emphasis/Strong nodes happens in the resolver, which
// re-derives marker and run length by reading Source at the event's
// Point rather than carrying extra state on the Tokenizer.
func AttentionSequence(t *tokenizer.Tokenizer) tokenizer.Result {
	marker := t.Current
	if marker != int32('*') && marker != int32('_') {
		return tokenizer.Nok()
	}
	t.Enter(mdevent.AttentionSequence)
	for t.Current == marker {
		t.Consume()
	}
	t.Exit(mdevent.AttentionSequence)
	return tokenizer.Ok()
}

// GfmStrikethroughSequence recognizes a run of `~` (spec's GFM
// strikethrough extension), paired by the resolver using the same
// flanking algorithm as AttentionSequence.
func GfmStrikethroughSequence(t *tokenizer.Tokenizer) tokenizer.Result {
	if t.Current != int32('~') {
		return tokenizer.Nok()
	}
	t.Enter(mdevent.GfmStrikethroughSequence)
	for t.Current == int32('~') {
		t.Consume()
	}
	t.Exit(mdevent.GfmStrikethroughSequence)
	return tokenizer.Ok()
}

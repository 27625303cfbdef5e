package construct

import (
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// LabelStart recognizes `[` or `![`, the opening marker of a link or
// image label (spec §4.3.17). It emits bare LabelImageMarker/LabelMarker
// events; the resolver's label-pairing pass matches these against a
// later LabelEnd to decide whether the span became a real Label, an
// Image's LabelImage, or inert literal text (e.g. inside an already-open
// link).
func LabelStart(t *tokenizer.Tokenizer) tokenizer.Result {
	switch t.Current {
	case int32('!'):
		if peekNext(t) != int32('[') {
			return tokenizer.Nok()
		}
		t.Enter(mdevent.LabelImageMarker)
		t.Consume()
		t.Consume()
		t.Exit(mdevent.LabelImageMarker)
		return tokenizer.Ok()
	case int32('['):
		t.Enter(mdevent.LabelMarker)
		t.Consume()
		t.Exit(mdevent.LabelMarker)
		return tokenizer.Ok()
	default:
		return tokenizer.Nok()
	}
}

// LabelEnd recognizes the `]` that closes a label span. What follows
// (a resource, a reference, or nothing) is scanned separately by
// ResourceOpen/ReferenceOpen so the resolver can still classify the
// span as inert if no LabelStart ever paired with it.
func LabelEnd(t *tokenizer.Tokenizer) tokenizer.Result {
	if t.Current != int32(']') {
		return tokenizer.Nok()
	}
	t.Enter(mdevent.LabelEnd)
	t.Enter(mdevent.LabelMarker)
	t.Consume()
	t.Exit(mdevent.LabelMarker)
	t.Exit(mdevent.LabelEnd)
	return tokenizer.Ok()
}

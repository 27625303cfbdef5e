package construct

import (
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// ReferenceOpen recognizes `[label]` (a full reference) or `[]` (a
// collapsed reference) immediately following a LabelEnd (spec §4.3.17).
// A shortcut reference has no ReferenceOpen at all; the resolver treats
// a LabelEnd with neither a Resource nor a Reference following it as a
// shortcut candidate.
func ReferenceOpen(t *tokenizer.Tokenizer) tokenizer.Result {
	if t.Current != int32('[') {
		return tokenizer.Nok()
	}
	end := scanReferenceLabel(t.Source, t.Point.Index)
	if end < 0 {
		return tokenizer.Nok()
	}

	t.Enter(mdevent.Reference)
	t.Enter(mdevent.ReferenceMarker)
	t.Consume()
	t.Exit(mdevent.ReferenceMarker)
	if end-1 > t.Point.Index {
		t.Enter(mdevent.ReferenceString)
		advanceTo(t, end-1)
		t.Exit(mdevent.ReferenceString)
	}
	t.Enter(mdevent.ReferenceMarker)
	t.Consume()
	t.Exit(mdevent.ReferenceMarker)
	t.Exit(mdevent.Reference)
	return tokenizer.Ok()
}

// scanReferenceLabel finds the end of a `[...]` reference label: no
// unescaped `[` or `]` inside, and no more than 999 bytes (CommonMark's
// label-length cap).
func scanReferenceLabel(source []byte, start int) int {
	i := start + 1
	for i < len(source) && i-start <= 1000 {
		b := source[i]
		switch {
		case b == '\\' && i+1 < len(source):
			i += 2
		case b == '[':
			return -1
		case b == ']':
			return i + 1
		default:
			i++
		}
	}
	return -1
}

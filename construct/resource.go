package construct

import (
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// ResourceOpen recognizes a link/image resource immediately following a
// LabelEnd: `(` optional whitespace, an optional destination, optional
// whitespace + title, optional whitespace, `)` (spec §4.3.17). A bare
// `()` is a valid resource with no destination or title.
func ResourceOpen(t *tokenizer.Tokenizer) tokenizer.Result {
	if t.Current != int32('(') {
		return tokenizer.Nok()
	}
	matched := false
	t.Check(
		func(t *tokenizer.Tokenizer) tokenizer.Result {
			t.Consume()
			skipOptionalWhitespace(t)
			if t.Current != int32(')') {
				if !scanDestination(t, resourceNames) {
					return tokenizer.Nok()
				}
				if !skipRequiredWhitespaceBeforeTitle(t) {
					if t.Current != int32(')') {
						return tokenizer.Nok()
					}
				} else {
					skipOptionalWhitespace(t)
					if t.Current != int32(')') {
						if !scanTitle(t, resourceNames) {
							return tokenizer.Nok()
						}
						skipOptionalWhitespace(t)
					}
				}
			}
			if t.Current != int32(')') {
				return tokenizer.Nok()
			}
			matched = true
			return tokenizer.Ok()
		},
		func(t *tokenizer.Tokenizer) tokenizer.Result { return tokenizer.Ok() },
		func(t *tokenizer.Tokenizer) tokenizer.Result { return tokenizer.Ok() },
	)
	if !matched {
		return tokenizer.Nok()
	}

	t.Enter(mdevent.Resource)
	t.Enter(mdevent.ResourceMarker)
	t.Consume()
	t.Exit(mdevent.ResourceMarker)
	skipOptionalWhitespace(t)
	if t.Current != int32(')') {
		scanDestination(t, resourceNames)
		hadSpace := skipOptionalWhitespace(t)
		if hadSpace && t.Current != int32(')') {
			scanTitle(t, resourceNames)
			skipOptionalWhitespace(t)
		}
	}
	t.Enter(mdevent.ResourceMarker)
	t.Consume()
	t.Exit(mdevent.ResourceMarker)
	t.Exit(mdevent.Resource)
	return tokenizer.Ok()
}

func skipOptionalWhitespace(t *tokenizer.Tokenizer) bool {
	consumed := false
	for isLineOrSpaceByte(t.Current) {
		if t.Current == int32('\t') && !t.Point.AtTabStop() {
			t.ConsumeVirtual()
		} else {
			t.Consume()
		}
		consumed = true
	}
	return consumed
}

func skipRequiredWhitespaceBeforeTitle(t *tokenizer.Tokenizer) bool {
	return skipOptionalWhitespace(t)
}

func isLineOrSpaceByte(b int32) bool {
	return b == int32(' ') || b == int32('\t') || b == int32('\n') || b == int32('\r')
}

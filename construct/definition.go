package construct

import (
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// DefinitionOpen recognizes a link reference definition: `[label]:`
// followed by optional whitespace (with at most one line ending), a
// destination, and an optional title (spec §4.3.7). It must be
// validated as a whole via lookahead before any consumption, since a
// failed definition attempt falls back to being ordinary paragraph text.
func DefinitionOpen(t *tokenizer.Tokenizer) tokenizer.Result {
	if t.Current != int32('[') {
		return tokenizer.Nok()
	}
	matched := false
	t.Check(
		func(t *tokenizer.Tokenizer) tokenizer.Result {
			t.Consume()
			labelEnd := scanReferenceLabel(t.Source, t.Point.Index-1)
			if labelEnd < 0 {
				return tokenizer.Nok()
			}
			advanceTo(t, labelEnd)
			if t.Current != int32(':') {
				return tokenizer.Nok()
			}
			t.Consume()
			skipOptionalWhitespace(t)
			if !scanDestination(t, definitionNames) {
				return tokenizer.Nok()
			}
			preTitle := t.Point.Index
			hadSpace := skipOptionalWhitespace(t)
			if hadSpace && !atLineEndOrEOF(t.Current) {
				if !scanTitle(t, definitionNames) {
					advanceTo(t, preTitle)
				}
			}
			for t.Current == int32(' ') || t.Current == int32('\t') {
				t.Consume()
			}
			if !atLineEndOrEOF(t.Current) {
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

	t.Enter(mdevent.Definition)
	t.Enter(mdevent.DefinitionLabel)
	t.Enter(mdevent.DefinitionLabelMarker)
	t.Consume()
	t.Exit(mdevent.DefinitionLabelMarker)
	labelEnd := scanReferenceLabel(t.Source, t.Point.Index-1)
	if labelEnd-1 > t.Point.Index {
		t.Enter(mdevent.DefinitionLabelString)
		advanceTo(t, labelEnd-1)
		t.Exit(mdevent.DefinitionLabelString)
	}
	t.Enter(mdevent.DefinitionLabelMarker)
	t.Consume()
	t.Exit(mdevent.DefinitionLabelMarker)
	t.Exit(mdevent.DefinitionLabel)

	t.Enter(mdevent.DefinitionMarker)
	t.Consume()
	t.Exit(mdevent.DefinitionMarker)
	skipOptionalWhitespace(t)
	scanDestination(t, definitionNames)
	preTitle := t.Point.Index
	hadSpace := skipOptionalWhitespace(t)
	if hadSpace && !atLineEndOrEOF(t.Current) {
		if !scanTitle(t, definitionNames) {
			advanceTo(t, preTitle)
		}
	}
	for t.Current == int32(' ') || t.Current == int32('\t') {
		t.Consume()
	}
	if !t.AtEOF() {
		consumeLineEnding(t)
	}
	t.Exit(mdevent.Definition)
	return tokenizer.Ok()
}

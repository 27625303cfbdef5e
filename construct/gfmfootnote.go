package construct

import (
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// GfmFootnoteDefinitionOpen recognizes `[^label]:` at the start of a
// line (spec's GFM footnote extension), the block-level counterpart to
// Definition. Body lines are ordinary flow content indented under the
// container the same way a list item's continuation is.
func GfmFootnoteDefinitionOpen(t *tokenizer.Tokenizer) (tokenizer.Result, int) {
	if t.Current != int32('[') || peekNext(t) != int32('^') {
		return tokenizer.Nok(), 0
	}
	labelEnd := scanReferenceLabel(t.Source, t.Point.Index)
	if labelEnd < 0 {
		return tokenizer.Nok(), 0
	}
	if labelEnd >= len(t.Source) || t.Source[labelEnd] != ':' {
		return tokenizer.Nok(), 0
	}

	markerCol := t.Point.Column
	t.Enter(mdevent.GfmFootnoteDefinition)
	t.Enter(mdevent.GfmFootnoteDefinitionLabel)
	t.Enter(mdevent.GfmFootnoteDefinitionMarker)
	t.Consume()
	t.Consume()
	t.Exit(mdevent.GfmFootnoteDefinitionMarker)
	if labelEnd-1 > t.Point.Index {
		advanceTo(t, labelEnd-1)
	}
	t.Enter(mdevent.GfmFootnoteDefinitionMarker)
	t.Consume()
	t.Exit(mdevent.GfmFootnoteDefinitionMarker)
	t.Exit(mdevent.GfmFootnoteDefinitionLabel)
	t.Enter(mdevent.GfmFootnoteDefinitionMarker)
	t.Consume()
	t.Exit(mdevent.GfmFootnoteDefinitionMarker)

	ws := 0
	for (t.Current == int32(' ') || t.Current == int32('\t')) && ws < 4 && !atLineEndOrEOF(t.Current) {
		t.Consume()
		ws++
	}
	size := t.Point.Column - markerCol
	if ws == 0 {
		size = 2
	}
	t.Enter(mdevent.GfmFootnoteDefinitionPrefix)
	t.Exit(mdevent.GfmFootnoteDefinitionPrefix)
	return tokenizer.Ok(), size
}

// GfmFootnoteDefinitionClose exits the GfmFootnoteDefinition wrapper
// once content/document.go decides the footnote's container block has
// ended.
func GfmFootnoteDefinitionClose(t *tokenizer.Tokenizer) {
	t.Exit(mdevent.GfmFootnoteDefinition)
}

// GfmFootnoteCall recognizes an inline footnote reference `[^label]`
// (spec's GFM footnote extension).
func GfmFootnoteCall(t *tokenizer.Tokenizer) tokenizer.Result {
	if t.Current != int32('[') || peekNext(t) != int32('^') {
		return tokenizer.Nok()
	}
	labelEnd := scanReferenceLabel(t.Source, t.Point.Index)
	if labelEnd < 0 {
		return tokenizer.Nok()
	}

	t.Enter(mdevent.GfmFootnoteCall)
	t.Enter(mdevent.GfmFootnoteCallMarker)
	t.Consume()
	t.Consume()
	t.Exit(mdevent.GfmFootnoteCallMarker)
	if labelEnd-1 > t.Point.Index {
		t.Enter(mdevent.GfmFootnoteCallLabel)
		advanceTo(t, labelEnd-1)
		t.Exit(mdevent.GfmFootnoteCallLabel)
	}
	t.Enter(mdevent.GfmFootnoteCallMarker)
	t.Consume()
	t.Exit(mdevent.GfmFootnoteCallMarker)
	t.Exit(mdevent.GfmFootnoteCall)
	return tokenizer.Ok()
}

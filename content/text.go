package content

import (
	"github.com/aledsdavies/mdcore/construct"
	"github.com/aledsdavies/mdcore/mdconfig"
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/resolve"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// Text drives spec §4.2's Text content model: the inline construct
// dispatch used both directly by a subtokenized paragraph/heading/table-
// cell span. Constructs are tried in spec §4.2's documented Text order;
// anything none of them recognize becomes a single-byte Data span,
// later coalesced by the DataMerge resolver.
func Text(t *tokenizer.Tokenizer) {
	registerTextResolvers(t)
	for !t.AtEOF() {
		if t.Current == int32('\n') || t.Current == int32('\r') {
			consumeSoftBreak(t)
			continue
		}
		if dispatchText(t) {
			continue
		}
		consumeOneAsData(t)
	}
}

func registerTextResolvers(t *tokenizer.Tokenizer) {
	t.RegisterResolver(resolve.DataMerge)
	t.RegisterResolver(resolve.Attention)
	t.RegisterResolver(resolve.LabelPairing)
	t.RegisterResolver(resolve.ContentJoin)
	if t.Config.Enabled(mdconfig.GfmAutolinkLiteral) {
		t.RegisterResolver(resolve.GfmAutolinkLiteral)
	}
}

func dispatchText(t *tokenizer.Tokenizer) bool {
	cfg := t.Config
	switch {
	case cfg.Enabled(mdconfig.Attention) && tryOk(t, construct.AttentionSequence):
		return true
	case cfg.Enabled(mdconfig.Autolink) && tryOk(t, construct.Autolink):
		return true
	case cfg.Enabled(mdconfig.CodeText) && tryOk(t, construct.CodeText):
		return true
	case cfg.Enabled(mdconfig.MathText) && tryOk(t, construct.MathText):
		return true
	case cfg.Enabled(mdconfig.CharacterEscape) && tryOk(t, construct.CharacterEscape):
		return true
	case cfg.Enabled(mdconfig.CharacterReference) && tryOk(t, construct.CharacterReference):
		return true
	case cfg.Enabled(mdconfig.HardBreakEscape) && tryOk(t, construct.HardBreakEscape):
		return true
	case cfg.Enabled(mdconfig.HardBreakTrailing) && tryOk(t, construct.HardBreakTrailing):
		return true
	case cfg.Enabled(mdconfig.HtmlText) && tryOk(t, construct.HtmlText):
		return true
	case (cfg.Enabled(mdconfig.LabelStartImage) || cfg.Enabled(mdconfig.LabelStartLink)) && tryLabelStart(t):
		return true
	case cfg.Enabled(mdconfig.LabelEnd) && tryLabelEnd(t):
		return true
	case cfg.Enabled(mdconfig.GfmStrikethrough) && tryOk(t, construct.GfmStrikethroughSequence):
		return true
	case cfg.Enabled(mdconfig.GfmFootnoteDefinition) && tryOk(t, construct.GfmFootnoteCall):
		return true
	case cfg.Enabled(mdconfig.MdxTextExpression) && tryMdxTextExpr(t):
		return true
	case cfg.Enabled(mdconfig.MdxJsxText) && tryMdxJsxText(t):
		return true
	default:
		return false
	}
}

func tryLabelStart(t *tokenizer.Tokenizer) bool {
	isImage := t.Current == int32('!')
	cfg := t.Config
	if isImage && !cfg.Enabled(mdconfig.LabelStartImage) {
		return false
	}
	if !isImage && !cfg.Enabled(mdconfig.LabelStartLink) {
		return false
	}
	return tryOk(t, construct.LabelStart)
}

// tryLabelEnd matches a `]` as a LabelEnd, then immediately tries a
// following inline Resource or Reference (spec §4.3.17); either, or
// neither (a shortcut reference), is accepted here, with actual bracket
// pairing left to the LabelPairing resolver.
func tryLabelEnd(t *tokenizer.Tokenizer) bool {
	if !tryOk(t, construct.LabelEnd) {
		return false
	}
	from := len(t.Events)
	if tryOk(t, construct.ResourceOpen) {
		tagDestinationTitleString(t, from)
		return true
	}
	tryOk(t, construct.ReferenceOpen)
	return true
}

func tagDestinationTitleString(t *tokenizer.Tokenizer, from int) {
	tagSpansSince(t, from, mdevent.ResourceDestinationString, mdevent.ContentString)
	tagSpansSince(t, from, mdevent.ResourceTitleString, mdevent.ContentString)
}

func tryMdxTextExpr(t *tokenizer.Tokenizer) bool {
	return tryOk(t, func(t *tokenizer.Tokenizer) tokenizer.Result {
		return construct.MdxExpression(t, mdevent.MdxTextExpression, mdconfig.MdxTextExpression)
	})
}

func tryMdxJsxText(t *tokenizer.Tokenizer) bool {
	return tryOk(t, func(t *tokenizer.Tokenizer) tokenizer.Result {
		return construct.MdxJsxTag(t, mdevent.MdxJsxTextTag, mdconfig.MdxJsxText)
	})
}

// consumeSoftBreak turns an inline line ending (the join point between
// two originally-separate physical lines, or a real embedded line break
// a hard-break construct didn't claim) into its own LineEnding event
// rather than folding it into surrounding Data.
func consumeSoftBreak(t *tokenizer.Tokenizer) {
	t.Enter(mdevent.LineEnding)
	wasCR := t.Current == int32('\r')
	t.Consume()
	if wasCR && t.Current == int32('\n') {
		t.Consume()
	}
	t.Exit(mdevent.LineEnding)
}

func consumeOneAsData(t *tokenizer.Tokenizer) {
	t.Enter(mdevent.Data)
	t.Consume()
	t.Exit(mdevent.Data)
}

package construct

import (
	"github.com/aledsdavies/mdcore/mdconfig"
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// MdxEsmOpen recognizes an MDX ESM block: a flow line starting with
// `import ` or `export ` (anywhere in the document; its position is not
// checked), continued up to the first blank line. This is a minimal recognized-span implementation, not a JS
// parser: it does not validate import/export statement grammar, only
// that the block's lines plausibly start an ESM statement, matching the
// spec's explicit scope-reduction for MDX constructs.
func MdxEsmOpen(t *tokenizer.Tokenizer) tokenizer.Result {
	if !t.Config.Enabled(mdconfig.MdxEsm) {
		return tokenizer.Nok()
	}
	if !hasPrefixAt(t.Source, t.Point.Index, "import ") && !hasPrefixAt(t.Source, t.Point.Index, "export ") {
		return tokenizer.Nok()
	}
	t.Enter(mdevent.MdxEsm)
	return tokenizer.Ok()
}

// MdxEsmLine consumes one ESM body line as raw data.
func MdxEsmLine(t *tokenizer.Tokenizer) {
	consumeRawLine(t, mdevent.MdxEsmData)
}

// MdxEsmClose exits the MdxEsm wrapper once a blank line ends the block.
func MdxEsmClose(t *tokenizer.Tokenizer) {
	t.Exit(mdevent.MdxEsm)
}

func hasPrefixAt(source []byte, start int, prefix string) bool {
	if start+len(prefix) > len(source) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if source[start+i] != prefix[i] {
			return false
		}
	}
	return true
}

// MdxExpression recognizes a `{...}` flow or text expression, spanning
// balanced braces (spec's MDX expression construct, reduced to brace
// matching rather than full JS-expression validation). Callers pass
// mdconfig.MdxFlowExpression or mdconfig.MdxTextExpression as flag
// depending on content model.
func MdxExpression(t *tokenizer.Tokenizer, wrapName mdevent.Name, flag mdconfig.Construct) tokenizer.Result {
	if !t.Config.Enabled(flag) {
		return tokenizer.Nok()
	}
	if t.Current != int32('{') {
		return tokenizer.Nok()
	}
	end := scanBalancedBraces(t.Source, t.Point.Index)
	if end < 0 {
		return tokenizer.Nok()
	}

	t.Enter(wrapName)
	t.Enter(mdevent.MdxExpressionMarker)
	t.Consume()
	t.Exit(mdevent.MdxExpressionMarker)
	if end-1 > t.Point.Index {
		t.Enter(mdevent.MdxExpressionData)
		advanceTo(t, end-1)
		t.Exit(mdevent.MdxExpressionData)
	}
	t.Enter(mdevent.MdxExpressionMarker)
	t.Consume()
	t.Exit(mdevent.MdxExpressionMarker)
	t.Exit(wrapName)
	return tokenizer.Ok()
}

func scanBalancedBraces(source []byte, start int) int {
	depth := 0
	i := start
	for i < len(source) {
		switch source[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
		i++
	}
	return -1
}

// MdxJsxTag recognizes a JSX tag `<Name ...>`, `<Name .../>`, or
// `</Name>`, reusing HtmlText's attribute scanner since MDX JSX
// attribute syntax is a superset of HTML's for the shapes this
// tokenizer needs to bound (spec's MDX JSX construct, reduced scope).
// Callers pass mdconfig.MdxJsxFlow or mdconfig.MdxJsxText as flag
// depending on content model.
func MdxJsxTag(t *tokenizer.Tokenizer, wrapName mdevent.Name, flag mdconfig.Construct) tokenizer.Result {
	if !t.Config.Enabled(flag) {
		return tokenizer.Nok()
	}
	if t.Current != int32('<') {
		return tokenizer.Nok()
	}
	base := t.Point.Index
	rest := t.Source[base:]
	if len(rest) < 2 {
		return tokenizer.Nok()
	}

	closing := rest[1] == '/'
	var tagEnd, nameStart, nameEndRel int
	if closing {
		tagEnd = scanClosingTag(rest)
		_, nameEndRel = scanHtmlTagName(rest, 2)
		nameStart = 2
	} else {
		tagEnd = scanOpenTag(rest)
		_, nameEndRel = scanHtmlTagName(rest, 1)
		nameStart = 1
	}
	if tagEnd < 0 {
		return tokenizer.Nok()
	}
	selfClosing := !closing && tagEnd >= 2 && rest[tagEnd-2] == '/'

	t.Enter(wrapName)
	t.Enter(mdevent.MdxJsxTagMarker)
	t.Consume()
	if closing {
		t.Consume()
	}
	t.Exit(mdevent.MdxJsxTagMarker)

	if nameEndRel > nameStart {
		t.Enter(mdevent.MdxJsxTagName)
		advanceTo(t, base+nameEndRel)
		t.Exit(mdevent.MdxJsxTagName)
	}

	closeMarkerStart := tagEnd - 1
	if selfClosing {
		closeMarkerStart = tagEnd - 2
	}
	advanceTo(t, base+closeMarkerStart)

	if closing {
		t.Enter(mdevent.MdxJsxTagClosingMarker)
		t.Consume()
		t.Exit(mdevent.MdxJsxTagClosingMarker)
	} else if selfClosing {
		t.Enter(mdevent.MdxJsxTagSelfClosingMarker)
		t.Consume()
		t.Exit(mdevent.MdxJsxTagSelfClosingMarker)
		t.Enter(mdevent.MdxJsxTagClosingMarker)
		t.Consume()
		t.Exit(mdevent.MdxJsxTagClosingMarker)
	} else {
		t.Enter(mdevent.MdxJsxTagClosingMarker)
		t.Consume()
		t.Exit(mdevent.MdxJsxTagClosingMarker)
	}
	t.Exit(wrapName)
	return tokenizer.Ok()
}

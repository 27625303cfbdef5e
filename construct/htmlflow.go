package construct

import (
	"bytes"

	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// HtmlFlowEndCondition identifies which HTML block start condition (spec
// §4.3.8) opened the block, since each has a different rule for the line
// that closes it. Six of CommonMark's seven conditions are recognized;
// condition 7 (a complete open or closing tag of any other name, alone
// on its line) is not, and HtmlFlowOpen returns Nok for it.
type HtmlFlowEndCondition int

const (
	HtmlFlowEndRawText   HtmlFlowEndCondition = iota + 1 // <script>/<pre>/<style>/<textarea>, closed by </tag>
	HtmlFlowEndComment                                   // <!--, closed by -->
	HtmlFlowEndInstruction                               // <?, closed by ?>
	HtmlFlowEndDeclaration                                // <!X, closed by >
	HtmlFlowEndCdata                                      // <![CDATA[, closed by ]]>
	HtmlFlowEndBlankLine                                  // condition-6 block tag, closed by a blank line
)

var htmlRawTextTags = [][]byte{[]byte("script"), []byte("pre"), []byte("style"), []byte("textarea")}

// htmlBlockTags is CommonMark's condition-6 list: these tag names open an
// HTML block regardless of what follows the tag on the line.
var htmlBlockTags = [][]byte{
	[]byte("address"), []byte("article"), []byte("aside"), []byte("base"), []byte("basefont"),
	[]byte("blockquote"), []byte("body"), []byte("caption"), []byte("center"), []byte("col"),
	[]byte("colgroup"), []byte("dd"), []byte("details"), []byte("dialog"), []byte("dir"),
	[]byte("div"), []byte("dl"), []byte("dt"), []byte("fieldset"), []byte("figcaption"),
	[]byte("figure"), []byte("footer"), []byte("form"), []byte("frame"), []byte("frameset"),
	[]byte("h1"), []byte("h2"), []byte("h3"), []byte("h4"), []byte("h5"), []byte("h6"),
	[]byte("head"), []byte("header"), []byte("hr"), []byte("html"), []byte("iframe"),
	[]byte("legend"), []byte("li"), []byte("link"), []byte("main"), []byte("menu"), []byte("menuitem"),
	[]byte("nav"), []byte("noframes"), []byte("ol"), []byte("optgroup"), []byte("option"),
	[]byte("p"), []byte("param"), []byte("section"), []byte("summary"), []byte("table"),
	[]byte("tbody"), []byte("td"), []byte("tfoot"), []byte("th"), []byte("thead"), []byte("title"),
	[]byte("tr"), []byte("track"), []byte("ul"),
}

// HtmlFlowOpen recognizes the start of an HTML block and reports which
// end condition governs it. It only inspects bytes (no mutation) unless
// it decides to match, mirroring headingatx.go's lookahead-then-consume
// shape.
func HtmlFlowOpen(t *tokenizer.Tokenizer) (tokenizer.Result, HtmlFlowEndCondition) {
	if t.Current != int32('<') {
		return tokenizer.Nok(), 0
	}
	rest := t.Source[t.Point.Index:]
	if len(rest) < 2 {
		return tokenizer.Nok(), 0
	}

	var cond HtmlFlowEndCondition
	switch {
	case bytes.HasPrefix(rest, []byte("<!--")):
		cond = HtmlFlowEndComment
	case bytes.HasPrefix(rest, []byte("<?")):
		cond = HtmlFlowEndInstruction
	case bytes.HasPrefix(rest, []byte("<![CDATA[")):
		cond = HtmlFlowEndCdata
	case len(rest) > 2 && rest[1] == '!' && isAsciiAlpha(rest[2]):
		cond = HtmlFlowEndDeclaration
	default:
		closing := len(rest) > 1 && rest[1] == '/'
		tagStart := 1
		if closing {
			tagStart = 2
		}
		name, nameEnd := scanHtmlTagName(rest, tagStart)
		if name == nil {
			return tokenizer.Nok(), 0
		}
		if matchesAnyTag(name, htmlRawTextTags) {
			cond = HtmlFlowEndRawText
		} else if matchesAnyTag(name, htmlBlockTags) {
			if !closing && !tagCloseFollowedByBlankOk(rest, nameEnd) {
				return tokenizer.Nok(), 0
			}
			cond = HtmlFlowEndBlankLine
		} else {
			return tokenizer.Nok(), 0
		}
	}

	t.Enter(mdevent.HtmlFlow)
	consumeRawLine(t, mdevent.HtmlFlowData)
	return tokenizer.Ok(), cond
}

// tagCloseFollowedByBlankOk is the condition-6 check on the byte after
// the tag name: it must be whitespace, a line ending, EOF, `>`, or `/>`.
// Whatever follows that whitespace (attributes) is not validated.
func tagCloseFollowedByBlankOk(rest []byte, nameEnd int) bool {
	if nameEnd >= len(rest) {
		return true
	}
	switch rest[nameEnd] {
	case ' ', '\t', '\n', '\r', '>':
		return true
	case '/':
		return nameEnd+1 < len(rest) && rest[nameEnd+1] == '>'
	}
	return false
}

func scanHtmlTagName(rest []byte, start int) ([]byte, int) {
	if start >= len(rest) || !isAsciiAlpha(rest[start]) {
		return nil, 0
	}
	i := start + 1
	for i < len(rest) && (isAsciiAlphaNum(rest[i]) || rest[i] == '-') {
		i++
	}
	return rest[start:i], i
}

func isAsciiAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isAsciiAlphaNum(b byte) bool {
	return isAsciiAlpha(b) || (b >= '0' && b <= '9')
}

func matchesAnyTag(name []byte, tags [][]byte) bool {
	for _, tag := range tags {
		if len(name) == len(tag) && bytes.EqualFold(name, tag) {
			return true
		}
	}
	return false
}

// HtmlFlowLineIsBlank reports whether the current line (before
// consuming anything) is blank, for HtmlFlowEndBlankLine's termination
// rule.
func HtmlFlowLineIsBlank(t *tokenizer.Tokenizer) bool {
	i := t.Point.Index
	for i < len(t.Source) && (t.Source[i] == ' ' || t.Source[i] == '\t') {
		i++
	}
	return i >= len(t.Source) || t.Source[i] == '\n' || t.Source[i] == '\r'
}

// HtmlFlowLineContains reports whether the current (not yet consumed)
// line contains needle, for the raw-text/comment/instruction/CDATA/
// declaration end conditions which close mid-line.
func HtmlFlowLineContains(t *tokenizer.Tokenizer, needle string) bool {
	i := t.Point.Index
	end := i
	for end < len(t.Source) && t.Source[end] != '\n' && t.Source[end] != '\r' {
		end++
	}
	return bytes.Contains(t.Source[i:end], []byte(needle))
}

// HtmlFlowBodyLine consumes one raw HTML flow body/closing line.
func HtmlFlowBodyLine(t *tokenizer.Tokenizer) {
	consumeRawLine(t, mdevent.HtmlFlowData)
}

// HtmlFlowClose exits the HtmlFlow wrapper opened by HtmlFlowOpen. The
// caller has already consumed the closing line's content via
// HtmlFlowBodyLine.
func HtmlFlowClose(t *tokenizer.Tokenizer) {
	t.Exit(mdevent.HtmlFlow)
}

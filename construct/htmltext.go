package construct

import (
	"bytes"

	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// HtmlText recognizes one inline HTML span: an open or closing tag, a
// comment, a processing instruction, a declaration, or a CDATA section
// (spec §4.3.9). It scans the whole span as raw bytes before consuming
// anything, so a malformed tag fails without partial consumption.
func HtmlText(t *tokenizer.Tokenizer) tokenizer.Result {
	if t.Current != int32('<') {
		return tokenizer.Nok()
	}
	rest := t.Source[t.Point.Index:]

	var end int
	switch {
	case bytes.HasPrefix(rest, []byte("<!--")):
		end = closeAfter(rest, "<!--", "-->")
	case bytes.HasPrefix(rest, []byte("<?")):
		end = closeAfter(rest, "<?", "?>")
	case bytes.HasPrefix(rest, []byte("<![CDATA[")):
		end = closeAfter(rest, "<![CDATA[", "]]>")
	case len(rest) > 2 && rest[1] == '!' && isAsciiAlpha(rest[2]):
		end = scanDeclaration(rest)
	case len(rest) > 1 && rest[1] == '/':
		end = scanClosingTag(rest)
	default:
		end = scanOpenTag(rest)
	}
	if end <= 0 {
		return tokenizer.Nok()
	}

	t.Enter(mdevent.HtmlText)
	t.Enter(mdevent.HtmlTextData)
	advanceTo(t, t.Point.Index+end)
	t.Exit(mdevent.HtmlTextData)
	t.Exit(mdevent.HtmlText)
	return tokenizer.Ok()
}

func closeAfter(rest []byte, open, close string) int {
	idx := bytes.Index(rest[len(open):], []byte(close))
	if idx < 0 {
		return -1
	}
	return len(open) + idx + len(close)
}

func scanDeclaration(rest []byte) int {
	idx := bytes.IndexByte(rest, '>')
	if idx < 0 {
		return -1
	}
	return idx + 1
}

func scanClosingTag(rest []byte) int {
	name, i := scanHtmlTagName(rest, 2)
	if name == nil {
		return -1
	}
	for i < len(rest) && (rest[i] == ' ' || rest[i] == '\t' || rest[i] == '\n' || rest[i] == '\r') {
		i++
	}
	if i >= len(rest) || rest[i] != '>' {
		return -1
	}
	return i + 1
}

func scanOpenTag(rest []byte) int {
	name, i := scanHtmlTagName(rest, 1)
	if name == nil {
		return -1
	}
	for {
		for i < len(rest) && isHtmlWhitespace(rest[i]) {
			i++
		}
		if i < len(rest) && rest[i] == '/' {
			i++
			if i < len(rest) && rest[i] == '>' {
				return i + 1
			}
			return -1
		}
		if i < len(rest) && rest[i] == '>' {
			return i + 1
		}
		attrName, next := scanHtmlAttrName(rest, i)
		if attrName == nil {
			return -1
		}
		i = next
		for i < len(rest) && isHtmlWhitespace(rest[i]) {
			i++
		}
		if i < len(rest) && rest[i] == '=' {
			i++
			for i < len(rest) && isHtmlWhitespace(rest[i]) {
				i++
			}
			valEnd, ok := scanHtmlAttrValue(rest, i)
			if !ok {
				return -1
			}
			i = valEnd
		}
	}
}

func scanHtmlAttrName(rest []byte, start int) ([]byte, int) {
	if start >= len(rest) {
		return nil, start
	}
	b := rest[start]
	if !isAsciiAlpha(b) && b != '_' && b != ':' {
		return nil, start
	}
	i := start + 1
	for i < len(rest) && (isAsciiAlphaNum(rest[i]) || rest[i] == '_' || rest[i] == '.' || rest[i] == ':' || rest[i] == '-') {
		i++
	}
	return rest[start:i], i
}

func scanHtmlAttrValue(rest []byte, start int) (int, bool) {
	if start >= len(rest) {
		return start, false
	}
	switch rest[start] {
	case '"':
		idx := bytes.IndexByte(rest[start+1:], '"')
		if idx < 0 {
			return start, false
		}
		return start + 1 + idx + 1, true
	case '\'':
		idx := bytes.IndexByte(rest[start+1:], '\'')
		if idx < 0 {
			return start, false
		}
		return start + 1 + idx + 1, true
	default:
		i := start
		for i < len(rest) && !isHtmlWhitespace(rest[i]) && rest[i] != '>' && rest[i] != '"' && rest[i] != '\'' && rest[i] != '=' && rest[i] != '<' && rest[i] != '`' {
			i++
		}
		if i == start {
			return start, false
		}
		return i, true
	}
}

func isHtmlWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

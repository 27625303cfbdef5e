package construct

import (
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// Autolink recognizes `<scheme:rest>` (protocol autolink) or
// `<user@domain>` (email autolink), spec §4.3.13. Both are scanned as
// raw byte shapes before any consumption so a non-match never partially
// consumes the `<`.
func Autolink(t *tokenizer.Tokenizer) tokenizer.Result {
	if t.Current != int32('<') {
		return tokenizer.Nok()
	}
	rest := t.Source[t.Point.Index:]

	if end, ok := scanAutolinkProtocol(rest); ok {
		return emitAutolink(t, end, mdevent.AutolinkProtocol)
	}
	if end, ok := scanAutolinkEmail(rest); ok {
		return emitAutolink(t, end, mdevent.AutolinkEmail)
	}
	return tokenizer.Nok()
}

func emitAutolink(t *tokenizer.Tokenizer, end int, valueName mdevent.Name) tokenizer.Result {
	t.Enter(mdevent.Autolink)
	t.Enter(mdevent.AutolinkMarker)
	t.Consume()
	t.Exit(mdevent.AutolinkMarker)
	t.Enter(valueName)
	advanceTo(t, t.Point.Index+end-2)
	t.Exit(valueName)
	t.Enter(mdevent.AutolinkMarker)
	t.Consume()
	t.Exit(mdevent.AutolinkMarker)
	t.Exit(mdevent.Autolink)
	return tokenizer.Ok()
}

// scanAutolinkProtocol matches `<` scheme (2-32 alnum/+/-/.  starting
// with a letter) `:` non-whitespace/non-control/non-`<`/non-`>` bytes
// `>`.
func scanAutolinkProtocol(rest []byte) (end int, ok bool) {
	if len(rest) < 4 || !isAsciiAlpha(rest[1]) {
		return 0, false
	}
	i := 2
	for i < len(rest) && i <= 33 && isSchemeByte(rest[i]) {
		i++
	}
	if i-1 < 2 || i-1 > 32 || i >= len(rest) || rest[i] != ':' {
		return 0, false
	}
	i++
	start := i
	for i < len(rest) && rest[i] != '>' && rest[i] != '<' && !isHtmlWhitespace(rest[i]) && rest[i] >= 0x20 {
		i++
	}
	if i == start || i >= len(rest) || rest[i] != '>' {
		return 0, false
	}
	return i + 1, true
}

func isSchemeByte(b byte) bool {
	return isAsciiAlphaNum(b) || b == '+' || b == '-' || b == '.'
}

// scanAutolinkEmail matches a restricted email-address grammar between
// `<` and `>` (spec §4.3.13, following CommonMark's email autolink
// regex).
func scanAutolinkEmail(rest []byte) (end int, ok bool) {
	if len(rest) < 3 {
		return 0, false
	}
	i := 1
	start := i
	for i < len(rest) && isEmailAtomByte(rest[i]) {
		i++
	}
	if i == start || i >= len(rest) || rest[i] != '@' {
		return 0, false
	}
	i++
	labelStart := i
	sawLabel := false
	for {
		ls := i
		if i >= len(rest) || !isAsciiAlphaNum(rest[i]) {
			return 0, false
		}
		i++
		for i < len(rest) && (isAsciiAlphaNum(rest[i]) || rest[i] == '-') {
			i++
		}
		if rest[i-1] == '-' {
			return 0, false
		}
		_ = ls
		sawLabel = true
		if i < len(rest) && rest[i] == '.' {
			i++
			continue
		}
		break
	}
	if !sawLabel || labelStart == i {
		return 0, false
	}
	if i >= len(rest) || rest[i] != '>' {
		return 0, false
	}
	return i + 1, true
}

func isEmailAtomByte(b byte) bool {
	switch b {
	case '.', '!', '#', '$', '%', '&', '\'', '*', '+', '/', '=', '?', '^', '_', '`', '{', '|', '}', '~', '-':
		return true
	default:
		return isAsciiAlphaNum(b)
	}
}

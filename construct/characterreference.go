package construct

import (
	"github.com/aledsdavies/mdcore/charset"
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// CharacterReference recognizes `&name;`, `&#NNN;`, or `&#xHHHH;` (spec
// §4.3.12). A named reference must be a known name
// (charset.DecodeNamedReference), otherwise the construct fails. Numeric
// references are validated only for shape (1-7 decimal digits or 1-6
// hex digits); mapping an out-of-range or disallowed code point to
// U+FFFD is left to charset.DecodeNumericReference, which no pass in
// this module calls.
func CharacterReference(t *tokenizer.Tokenizer) tokenizer.Result {
	if t.Current != int32('&') {
		return tokenizer.Nok()
	}
	rest := t.Source[t.Point.Index:]
	valueStart, valueEnd, markerKind := scanCharacterReference(rest)
	if valueEnd < 0 {
		return tokenizer.Nok()
	}

	t.Enter(mdevent.CharacterReference)
	t.Enter(mdevent.CharacterReferenceMarker)
	t.Consume()
	t.Exit(mdevent.CharacterReferenceMarker)

	if markerKind != 0 {
		t.Enter(markerKindName(markerKind))
		for i := 1; i < valueStart; i++ {
			t.Consume()
		}
		t.Exit(markerKindName(markerKind))
	}

	t.Enter(mdevent.CharacterReferenceValue)
	advanceTo(t, t.Point.Index+(valueEnd-valueStart))
	t.Exit(mdevent.CharacterReferenceValue)

	t.Enter(mdevent.CharacterReferenceMarkerSemi)
	t.Consume()
	t.Exit(mdevent.CharacterReferenceMarkerSemi)

	t.Exit(mdevent.CharacterReference)
	return tokenizer.Ok()
}

const (
	refKindNone = iota
	refKindDecimal
	refKindHex
)

func markerKindName(kind int) mdevent.Name {
	if kind == refKindHex {
		return mdevent.CharacterReferenceMarkerHexadecimal
	}
	return mdevent.CharacterReferenceMarkerNumeric
}

// scanCharacterReference inspects rest (starting at `&`) and returns the
// [valueStart,valueEnd) byte offsets of the name/digit span (relative to
// rest) and which numeric marker kind, if any, precedes it. valueEnd is
// -1 on no match.
func scanCharacterReference(rest []byte) (valueStart, valueEnd, kind int) {
	if len(rest) < 2 {
		return 0, -1, refKindNone
	}
	if rest[1] == '#' {
		if len(rest) < 3 {
			return 0, -1, refKindNone
		}
		if rest[2] == 'x' || rest[2] == 'X' {
			i := 3
			for i < len(rest) && isHexDigit(rest[i]) {
				i++
			}
			if i-3 == 0 || i-3 > 6 || i >= len(rest) || rest[i] != ';' {
				return 0, -1, refKindNone
			}
			return 3, i, refKindHex
		}
		i := 2
		for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
			i++
		}
		if i-2 == 0 || i-2 > 7 || i >= len(rest) || rest[i] != ';' {
			return 0, -1, refKindNone
		}
		return 2, i, refKindDecimal
	}
	i := 1
	for i < len(rest) && isAsciiAlphaNum(rest[i]) {
		i++
	}
	if i-1 == 0 || i >= len(rest) || rest[i] != ';' {
		return 0, -1, refKindNone
	}
	if _, ok := charset.DecodeNamedReference(string(rest[1:i])); !ok {
		return 0, -1, refKindNone
	}
	return 1, i, refKindNone
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

package resolve

import (
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// resolveGfmAutolinkLiteral scans literal Data spans for GFM extended
// autolink shapes (www., http(s)://, bare email, with optional mailto:/
// xmpp: prefixes) and splices GfmAutolinkLiteral(Email) wrappers around
// the matched run, splitting the surrounding Data span in two via
// EditMap (spec's GFM autolink-literal extension). This is a reduced
// scan compared to GFM's full grammar: domain validation is limited to
// "contains a dot", and trailing-punctuation trimming only handles the
// common single-byte cases plus balanced trailing parens, not the full
// reference-definition-aware backtracking cmark-gfm does.
func resolveGfmAutolinkLiteral(t *tokenizer.Tokenizer) {
	events := t.Events
	for i := 0; i < len(events); i++ {
		enter := events[i]
		if enter.Kind != mdevent.Enter || enter.Name != mdevent.Data {
			continue
		}
		exit := events[i+1]
		if exit.Kind != mdevent.Exit || exit.Name != mdevent.Data {
			continue
		}
		splitDataForAutolinks(t, i, i+1)
	}
}

type autolinkMatch struct {
	start, end int
	kind       autolinkKind
	prefixLen  int // length of "mailto:"/"xmpp:" prefix, 0 if none
}

type autolinkKind int

const (
	autolinkNone autolinkKind = iota
	autolinkWww
	autolinkURL
	autolinkEmail
)

// splitDataForAutolinks finds the first autolink match (if any) inside
// the Data span [enterIdx,exitIdx] and rewraps it; it does not loop over
// multiple matches in the same span since the resolver pipeline only
// runs once per span here and later matches in the same original span
// would need the already-spliced indices recomputed (a paragraph with
// two autolink-shaped substrings on the same line only gets the first
// recognized).
func splitDataForAutolinks(t *tokenizer.Tokenizer, enterIdx, exitIdx int) {
	enter := t.Events[enterIdx]
	exit := t.Events[exitIdx]
	text := t.Source[enter.Point.Index:exit.Point.Index]

	m := findAutolinkMatch(text)
	if m == nil {
		return
	}

	wrapName := mdevent.GfmAutolinkLiteral
	if m.kind == autolinkEmail {
		wrapName = mdevent.GfmAutolinkLiteralEmail
	}

	matchStartPt := advancePoint(enter.Point, m.start)
	matchEndPt := advancePoint(enter.Point, m.end)

	var inner []mdevent.Event
	if m.prefixLen > 0 {
		markerName := mdevent.GfmAutolinkLiteralMailto
		if m.kind == autolinkEmail && text[m.start] == 'x' {
			markerName = mdevent.GfmAutolinkLiteralXmpp
		}
		prefixEndPt := advancePoint(enter.Point, m.start+m.prefixLen)
		inner = append(inner,
			mdevent.Event{Kind: mdevent.Enter, Name: markerName, Point: matchStartPt},
			mdevent.Event{Kind: mdevent.Exit, Name: markerName, Point: prefixEndPt},
			mdevent.Event{Kind: mdevent.Enter, Name: mdevent.Data, Point: prefixEndPt},
			mdevent.Event{Kind: mdevent.Exit, Name: mdevent.Data, Point: matchEndPt},
		)
	} else {
		inner = append(inner,
			mdevent.Event{Kind: mdevent.Enter, Name: mdevent.Data, Point: matchStartPt},
			mdevent.Event{Kind: mdevent.Exit, Name: mdevent.Data, Point: matchEndPt},
		)
	}

	insert := make([]mdevent.Event, 0, 2+len(inner))
	insert = append(insert, mdevent.Event{Kind: mdevent.Enter, Name: wrapName, Point: matchStartPt})
	insert = append(insert, inner...)
	insert = append(insert, mdevent.Event{Kind: mdevent.Exit, Name: wrapName, Point: matchEndPt})

	// Replace the single Data span with: leading Data (if any), the
	// autolink wrapper, trailing Data (if any).
	var replacement []mdevent.Event
	if m.start > 0 {
		replacement = append(replacement,
			mdevent.Event{Kind: mdevent.Enter, Name: mdevent.Data, Point: enter.Point},
			mdevent.Event{Kind: mdevent.Exit, Name: mdevent.Data, Point: matchStartPt},
		)
	}
	replacement = append(replacement, insert...)
	if m.end < len(text) {
		replacement = append(replacement,
			mdevent.Event{Kind: mdevent.Enter, Name: mdevent.Data, Point: matchEndPt},
			mdevent.Event{Kind: mdevent.Exit, Name: mdevent.Data, Point: exit.Point},
		)
	}

	t.Map.Add(enterIdx, exitIdx-enterIdx+1, replacement)
}

func findAutolinkMatch(text []byte) *autolinkMatch {
	for i := 0; i < len(text); i++ {
		if m := matchMailtoOrXmppEmail(text, i); m != nil {
			return m
		}
		if hasPrefixBytes(text, i, "www.") {
			end := scanAutolinkLiteralRun(text, i)
			end = trimAutolinkTrailingPunct(text, i, end)
			if end > i+len("www.") {
				return &autolinkMatch{start: i, end: end, kind: autolinkWww}
			}
		}
		if hasPrefixBytes(text, i, "http://") || hasPrefixBytes(text, i, "https://") {
			end := scanAutolinkLiteralRun(text, i)
			end = trimAutolinkTrailingPunct(text, i, end)
			schemeEnd := i + len("http://")
			if hasPrefixBytes(text, i, "https://") {
				schemeEnd = i + len("https://")
			}
			if end > schemeEnd && containsDot(text[schemeEnd:end]) {
				return &autolinkMatch{start: i, end: end, kind: autolinkURL}
			}
		}
		if isEmailLocalStart(text, i) {
			if end, ok := scanBareEmail(text, i); ok {
				return &autolinkMatch{start: i, end: end, kind: autolinkEmail}
			}
		}
	}
	return nil
}

func matchMailtoOrXmppEmail(text []byte, i int) *autolinkMatch {
	var prefix string
	switch {
	case hasPrefixBytes(text, i, "mailto:"):
		prefix = "mailto:"
	case hasPrefixBytes(text, i, "xmpp:"):
		prefix = "xmpp:"
	default:
		return nil
	}
	emailStart := i + len(prefix)
	end, ok := scanBareEmail(text, emailStart)
	if !ok {
		return nil
	}
	return &autolinkMatch{start: i, end: end, kind: autolinkEmail, prefixLen: len(prefix)}
}

func hasPrefixBytes(text []byte, start int, prefix string) bool {
	if start+len(prefix) > len(text) {
		return false
	}
	return string(text[start:start+len(prefix)]) == prefix
}

func scanAutolinkLiteralRun(text []byte, start int) int {
	i := start
	for i < len(text) && !isAutolinkBoundary(text[i]) {
		i++
	}
	return i
}

func isAutolinkBoundary(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '<' || b == '>'
}

func trimAutolinkTrailingPunct(text []byte, start, end int) int {
	trimSet := map[byte]bool{'.': true, ',': true, ':': true, ';': true, '!': true, '?': true, '\'': true, '"': true}
	for end > start {
		b := text[end-1]
		if b == ')' {
			opens, closes := 0, 0
			for j := start; j < end; j++ {
				if text[j] == '(' {
					opens++
				} else if text[j] == ')' {
					closes++
				}
			}
			if closes > opens {
				end--
				continue
			}
			break
		}
		if trimSet[b] {
			end--
			continue
		}
		break
	}
	return end
}

func containsDot(b []byte) bool {
	for _, c := range b {
		if c == '.' {
			return true
		}
	}
	return false
}

func isEmailLocalStart(text []byte, i int) bool {
	b := text[i]
	return isAlnum(b) || b == '.' || b == '+' || b == '-' || b == '_'
}

// scanBareEmail recognizes local@domain.tld with no angle brackets,
// requiring at least one dot in the domain (GFM's reduced email-domain
// rule, ignoring the full label-length/hyphen-placement validation).
func scanBareEmail(text []byte, start int) (int, bool) {
	i := start
	for i < len(text) && (isAlnum(text[i]) || text[i] == '.' || text[i] == '+' || text[i] == '-' || text[i] == '_') {
		i++
	}
	if i == start || i >= len(text) || text[i] != '@' {
		return 0, false
	}
	i++
	domainStart := i
	for i < len(text) && (isAlnum(text[i]) || text[i] == '.' || text[i] == '-') {
		i++
	}
	if i == domainStart || !containsDot(text[domainStart:i]) {
		return 0, false
	}
	for i > domainStart && text[i-1] == '.' {
		i--
	}
	return i, true
}

func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

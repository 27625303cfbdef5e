package construct

import (
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// destinationTitleNames lets Resource (spec §4.3.17's link/image
// resource) and Definition (spec §4.3.7) share one destination/title
// scanner despite using distinct event names.
type destinationTitleNames struct {
	Destination              mdevent.Name
	DestinationLiteral       mdevent.Name
	DestinationLiteralMarker mdevent.Name
	DestinationRaw           mdevent.Name
	DestinationString        mdevent.Name
	Title                    mdevent.Name
	TitleMarker              mdevent.Name
	TitleString              mdevent.Name
}

var resourceNames = destinationTitleNames{
	Destination:              mdevent.ResourceDestination,
	DestinationLiteral:       mdevent.ResourceDestinationLiteral,
	DestinationLiteralMarker: mdevent.ResourceDestinationLiteralMarker,
	DestinationRaw:           mdevent.ResourceDestinationRaw,
	DestinationString:        mdevent.ResourceDestinationString,
	Title:                    mdevent.ResourceTitle,
	TitleMarker:              mdevent.ResourceTitleMarker,
	TitleString:              mdevent.ResourceTitleString,
}

var definitionNames = destinationTitleNames{
	Destination:              mdevent.DefinitionDestination,
	DestinationLiteral:       mdevent.DefinitionDestinationLiteral,
	DestinationLiteralMarker: mdevent.DefinitionDestinationLiteralMarker,
	DestinationRaw:           mdevent.DefinitionDestinationRaw,
	DestinationString:        mdevent.DefinitionDestinationString,
	Title:                    mdevent.DefinitionTitle,
	TitleMarker:              mdevent.DefinitionTitleMarker,
	TitleString:             mdevent.DefinitionTitleString,
}

// scanDestination recognizes either a `<...>`-wrapped literal
// destination (no unescaped `<`, `>`, or line ending inside) or a raw,
// balanced-parenthesis, whitespace-free destination (spec §4.3.7's
// destination grammar, shared verbatim by resources).
func scanDestination(t *tokenizer.Tokenizer, names destinationTitleNames) bool {
	if t.Current == int32('<') {
		end := scanAngleDestination(t.Source, t.Point.Index)
		if end < 0 {
			return false
		}
		t.Enter(names.Destination)
		t.Enter(names.DestinationLiteral)
		t.Enter(names.DestinationLiteralMarker)
		t.Consume()
		t.Exit(names.DestinationLiteralMarker)
		if end-1 > t.Point.Index {
			t.Enter(names.DestinationString)
			advanceTo(t, end-1)
			t.Exit(names.DestinationString)
		}
		t.Enter(names.DestinationLiteralMarker)
		t.Consume()
		t.Exit(names.DestinationLiteralMarker)
		t.Exit(names.DestinationLiteral)
		t.Exit(names.Destination)
		return true
	}

	end := scanRawDestination(t.Source, t.Point.Index)
	if end < 0 {
		return false
	}
	if end == t.Point.Index {
		return false
	}
	t.Enter(names.Destination)
	t.Enter(names.DestinationRaw)
	t.Enter(names.DestinationString)
	advanceTo(t, end)
	t.Exit(names.DestinationString)
	t.Exit(names.DestinationRaw)
	t.Exit(names.Destination)
	return true
}

func scanAngleDestination(source []byte, start int) int {
	i := start + 1
	for i < len(source) {
		switch source[i] {
		case '>':
			return i + 1
		case '<', '\n', '\r':
			return -1
		case '\\':
			if i+1 < len(source) {
				i += 2
				continue
			}
			return -1
		}
		i++
	}
	return -1
}

func scanRawDestination(source []byte, start int) int {
	depth := 0
	i := start
	for i < len(source) {
		b := source[i]
		switch {
		case b == '\\' && i+1 < len(source):
			i += 2
			continue
		case b == '(':
			depth++
		case b == ')':
			if depth == 0 {
				return i
			}
			depth--
		case b <= ' ' || b == '<':
			if depth > 0 {
				return -1
			}
			return i
		}
		i++
	}
	if depth > 0 {
		return -1
	}
	return i
}

// scanTitle recognizes a `"..."`, `'...'`, or `(...)` title, allowing
// backslash escapes and disallowing a blank line inside (spec §4.3.7).
func scanTitle(t *tokenizer.Tokenizer, names destinationTitleNames) bool {
	open := byte(t.Current)
	var close byte
	switch open {
	case '"':
		close = '"'
	case '\'':
		close = '\''
	case '(':
		close = ')'
	default:
		return false
	}
	end := scanDelimited(t.Source, t.Point.Index+1, close)
	if end < 0 {
		return false
	}
	t.Enter(names.Title)
	t.Enter(names.TitleMarker)
	t.Consume()
	t.Exit(names.TitleMarker)
	if end-1 > t.Point.Index {
		t.Enter(names.TitleString)
		advanceTo(t, end-1)
		t.Exit(names.TitleString)
	}
	t.Enter(names.TitleMarker)
	t.Consume()
	t.Exit(names.TitleMarker)
	t.Exit(names.Title)
	return true
}

func scanDelimited(source []byte, start int, close byte) int {
	i := start
	blankRun := 0
	for i < len(source) {
		b := source[i]
		if b == '\\' && i+1 < len(source) {
			i += 2
			blankRun = 0
			continue
		}
		if b == close {
			return i + 1
		}
		if b == '\n' {
			blankRun++
			if blankRun > 1 {
				return -1
			}
		} else if b != ' ' && b != '\t' && b != '\r' {
			blankRun = 0
		}
		i++
	}
	return -1
}

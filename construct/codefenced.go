package construct

import (
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// Fence carries what a fenced construct's opening line established, for
// content/flow.go to hold across the body lines until a closing fence
// (or EOF) is seen (spec §4.3.5).
type Fence struct {
	Marker byte
	Length int
	Indent int
}

// CodeFencedOpen recognizes an opening fence of >= 3 backticks or
// tildes, then its info and meta strings (spec §4.3.5). Backtick fences
// reject a backtick anywhere in the info string, since an embedded
// backtick would ambiguously look like an early close.
func CodeFencedOpen(t *tokenizer.Tokenizer) (tokenizer.Result, Fence) {
	return fencedOpen(t, mdevent.CodeFenced, mdevent.CodeFencedFence, mdevent.CodeFencedFenceSequence,
		mdevent.CodeFencedFenceInfo, mdevent.CodeFencedFenceMeta, '`', '~')
}

// MathFlowOpen is CodeFencedOpen's math-fence counterpart: only `$` is
// an acceptable marker (spec §4.3.5's "math" fence character).
func MathFlowOpen(t *tokenizer.Tokenizer) (tokenizer.Result, Fence) {
	return fencedOpen(t, mdevent.MathFlow, mdevent.MathFlowFence, mdevent.MathFlowFenceSequence,
		mdevent.MathFlowFenceMeta, mdevent.MathFlowFenceMeta, '$')
}

func fencedOpen(t *tokenizer.Tokenizer, wrapName, fenceName, seqName, infoName, metaName mdevent.Name, markers ...byte) (tokenizer.Result, Fence) {
	if t.Current == tokenizer.EOF {
		return tokenizer.Nok(), Fence{}
	}
	marker := byte(t.Current)
	ok := false
	for _, m := range markers {
		if marker == m {
			ok = true
			break
		}
	}
	if !ok {
		return tokenizer.Nok(), Fence{}
	}

	indent := t.Point.Column - 1
	length := countLeadingFenceBytes(t.Source, t.Point.Index, marker)
	if length < 3 {
		return tokenizer.Nok(), Fence{}
	}

	t.Enter(wrapName)
	t.Enter(fenceName)
	t.Enter(seqName)
	for i := 0; i < length; i++ {
		t.Consume()
	}
	t.Exit(seqName)

	for t.Current == int32(' ') || t.Current == int32('\t') {
		t.Consume()
	}

	infoStart := t.Point.Index
	lineEnd := infoStart
	for lineEnd < len(t.Source) && t.Source[lineEnd] != '\n' && t.Source[lineEnd] != '\r' {
		if marker == '`' && t.Source[lineEnd] == '`' {
			return tokenizer.Nok(), Fence{}
		}
		lineEnd++
	}

	metaStart := infoStart
	for metaStart < lineEnd && t.Source[metaStart] != ' ' && t.Source[metaStart] != '\t' {
		metaStart++
	}
	if metaStart > infoStart {
		t.Enter(infoName)
		advanceTo(t, metaStart)
		t.Exit(infoName)
	}
	for t.Current == int32(' ') || t.Current == int32('\t') {
		t.Consume()
	}
	if t.Point.Index < lineEnd {
		t.Enter(metaName)
		advanceTo(t, lineEnd)
		t.Exit(metaName)
	}

	t.Exit(fenceName)
	if !t.AtEOF() {
		consumeLineEnding(t)
	}

	return tokenizer.Ok(), Fence{Marker: marker, Length: length, Indent: indent}
}

func countLeadingFenceBytes(source []byte, start int, marker byte) int {
	n := 0
	for start+n < len(source) && source[start+n] == marker {
		n++
	}
	return n
}

// CodeFencedCloseLine reports whether the current line is a valid
// closing fence for open (same marker, length >= open.Length, up to 3
// columns of indent, nothing else before the line end), consuming it if
// so. It never partially consumes on failure.
func CodeFencedCloseLine(t *tokenizer.Tokenizer, open Fence, fenceName, seqName mdevent.Name) bool {
	matched := false
	t.Check(
		func(t *tokenizer.Tokenizer) tokenizer.Result {
			indent := 0
			for (t.Current == int32(' ') || t.Current == int32('\t')) && indent < 3 {
				t.Consume()
				indent++
			}
			if t.Current != int32(open.Marker) {
				return tokenizer.Nok()
			}
			length := countLeadingFenceBytes(t.Source, t.Point.Index, open.Marker)
			for i := 0; i < length; i++ {
				t.Consume()
			}
			for t.Current == int32(' ') || t.Current == int32('\t') {
				t.Consume()
			}
			if length < open.Length || !atLineEndOrEOF(t.Current) {
				return tokenizer.Nok()
			}
			matched = true
			return tokenizer.Ok()
		},
		func(t *tokenizer.Tokenizer) tokenizer.Result { return tokenizer.Ok() },
		func(t *tokenizer.Tokenizer) tokenizer.Result { return tokenizer.Ok() },
	)
	if !matched {
		return false
	}

	t.Enter(fenceName)
	t.Enter(seqName)
	indent := 0
	for (t.Current == int32(' ') || t.Current == int32('\t')) && indent < 3 {
		t.Consume()
		indent++
	}
	length := countLeadingFenceBytes(t.Source, t.Point.Index, open.Marker)
	for i := 0; i < length; i++ {
		t.Consume()
	}
	t.Exit(seqName)
	for t.Current == int32(' ') || t.Current == int32('\t') {
		t.Consume()
	}
	t.Exit(fenceName)
	if !t.AtEOF() {
		consumeLineEnding(t)
	}
	return true
}

// CodeFencedBodyLine consumes one body line of an open fenced
// construct, stripping up to open.Indent columns of leading whitespace
// (per CommonMark: body lines are de-indented by the opening fence's
// indent, clamped to what's actually present) before the raw chunk.
func CodeFencedBodyLine(t *tokenizer.Tokenizer, open Fence, chunkName mdevent.Name) {
	col := t.Point.Column
	for t.Point.Column-col < open.Indent {
		switch {
		case t.Current == int32(' '):
			t.Consume()
		case t.Current == int32('\t') && t.Point.AtTabStop():
			t.Consume()
		case t.Current == int32('\t'):
			t.ConsumeVirtual()
		default:
			goto chunk
		}
	}
chunk:
	consumeRawLine(t, chunkName)
}

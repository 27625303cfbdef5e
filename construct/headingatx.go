package construct

import (
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// HeadingAtx recognizes 1-6 `#` followed by end-of-line or whitespace
// plus text, with an optional trailing run of `#` stripped before the
// line ending (spec §4.3.3). Depth is the opening `#` count.
func HeadingAtx(t *tokenizer.Tokenizer) tokenizer.Result {
	depth := countLeadingHashes(t.Source, t.Point.Index)
	if depth < 1 || depth > 6 {
		return tokenizer.Nok()
	}
	afterHashes := t.Point.Index + depth
	if afterHashes < len(t.Source) {
		b := t.Source[afterHashes]
		if b != ' ' && b != '\t' && b != '\n' && b != '\r' {
			return tokenizer.Nok()
		}
	}

	t.Enter(mdevent.HeadingAtx)
	t.Enter(mdevent.HeadingAtxSequence)
	for i := 0; i < depth; i++ {
		t.Consume()
	}
	t.Exit(mdevent.HeadingAtxSequence)

	for t.Current == int32(' ') || t.Current == int32('\t') {
		t.Consume()
	}

	textStart := t.Point.Index
	lineEnd, closingSeqStart := scanAtxLine(t.Source, textStart)
	textEnd := closingSeqStart
	if textEnd == textStart && closingSeqStart == lineEnd {
		textEnd = lineEnd
	}
	for textEnd > textStart && (t.Source[textEnd-1] == ' ' || t.Source[textEnd-1] == '\t') {
		textEnd--
	}

	if textEnd > textStart {
		t.Enter(mdevent.HeadingAtxText)
		advanceTo(t, textEnd)
		t.Exit(mdevent.HeadingAtxText)
	}
	advanceTo(t, lineEnd)

	if !t.AtEOF() {
		consumeLineEnding(t)
	}
	t.Exit(mdevent.HeadingAtx)
	return tokenizer.Ok()
}

func countLeadingHashes(source []byte, start int) int {
	n := 0
	for start+n < len(source) && source[start+n] == '#' && n < 7 {
		n++
	}
	return n
}

// scanAtxLine finds the byte offset of the line ending (or EOF) starting
// from start, and, if the text ends in a closing `#` sequence preceded
// by whitespace (or the text is only `#`s), the offset where that
// closing sequence begins. If there is no valid closing sequence,
// closingSeqStart equals lineEnd.
func scanAtxLine(source []byte, start int) (lineEnd, closingSeqStart int) {
	i := start
	for i < len(source) && source[i] != '\n' && source[i] != '\r' {
		i++
	}
	lineEnd = i

	j := lineEnd
	for j > start && source[j-1] == '#' {
		j--
	}
	if j == lineEnd {
		return lineEnd, lineEnd
	}
	if j == start {
		return lineEnd, start
	}
	if source[j-1] == ' ' || source[j-1] == '\t' {
		return lineEnd, j
	}
	return lineEnd, lineEnd
}

// advanceTo consumes bytes one at a time up to (not including) the
// absolute byte offset target.
func advanceTo(t *tokenizer.Tokenizer, target int) {
	for t.Point.Index < target {
		t.Consume()
	}
}

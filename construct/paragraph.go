package construct

import (
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// ParagraphLine consumes one line of paragraph text as a Data chunk,
// linking it to the previous line's chunk via Link.Previous/Next (spec
// §3.2, §3.4) instead of treating the paragraph's content as one
// contiguous byte range. This is deliberate: a block-quoted multi-line
// paragraph has `>` prefixes between its lines that are not part of the
// paragraph's text, so a single Data span would incorrectly swallow
// them. The chain lets the subtokenizer walk each line's bytes in turn
// while skipping what lies between chunks.
//
// prevDataEnter is the event-list index of the previous chunk's Enter
// event, or -1 for the first line. It returns the new chunk's Enter
// index so the caller can thread it into the next call.
func ParagraphLine(t *tokenizer.Tokenizer, prevDataEnter int) int {
	start := len(t.Events)
	content := mdevent.ContentNone
	if prevDataEnter < 0 {
		content = mdevent.ContentText
	}
	t.EnterLink(mdevent.Data, content)

	if prevDataEnter >= 0 {
		idx := prevDataEnter
		newIdx := start
		t.Events[prevDataEnter].Link.Next = &newIdx
		t.Events[start].Link.Previous = &idx
	}

	for !atLineEndOrEOF(t.Current) {
		t.Consume()
	}
	t.Exit(mdevent.Data)
	if !t.AtEOF() {
		consumeLineEnding(t)
	}
	return start
}

package construct

import (
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// CodeIndentedPrefixWidth is the fixed indent an indented code line
// requires (spec §4.3.6: "four leading spaces, tab-normalized").
const CodeIndentedPrefixWidth = 4

// CodeIndentedLineIndent consumes up to CodeIndentedPrefixWidth columns
// of leading space/tab (expanding tabs one virtual-space step at a time
// so a tab that only partially reaches the 4-column budget still counts
// its partial width) and reports whether the full width was present.
// Shared by content/flow.go to decide whether a line continues or opens
// an indented code block, and to know how many columns of indent to
// treat as the prefix rather than content.
func CodeIndentedLineIndent(t *tokenizer.Tokenizer) bool {
	col := t.Point.Column
	for t.Point.Column-col < CodeIndentedPrefixWidth {
		switch {
		case t.Current == int32(' '):
			t.Consume()
		case t.Current == int32('\t') && t.Point.AtTabStop():
			t.Consume()
		case t.Current == int32('\t'):
			t.ConsumeVirtual()
		default:
			return false
		}
	}
	return true
}

// CodeIndentedChunk consumes the remainder of the current line (after
// the caller has already consumed the 4-column indent) as a single
// CodeFlowChunk, then its line ending if any. The CodeIndented wrapper
// Enter/Exit and the blank-line-merge/trailing-blank-strip rules (spec
// §4.3.6) are owned by content/flow.go, since they span multiple calls
// to this function.
func CodeIndentedChunk(t *tokenizer.Tokenizer) {
	consumeRawLine(t, mdevent.CodeFlowChunk)
}

package construct

import (
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// consumeRawLine consumes the remainder of the current line as a single
// void chunk event named chunkName (CodeFlowChunk, MathFlowChunk,
// HtmlFlowData, FrontmatterChunk, ...), then its line ending if any.
// Shared by every construct whose body is concrete raw lines copied
// byte-for-byte (spec §4.3.5's "content is raw (concrete)").
func consumeRawLine(t *tokenizer.Tokenizer, chunkName mdevent.Name) {
	if !atLineEndOrEOF(t.Current) {
		t.Enter(chunkName)
		for !atLineEndOrEOF(t.Current) {
			t.Consume()
		}
		t.Exit(chunkName)
	}
	if !t.AtEOF() {
		consumeLineEnding(t)
	}
}

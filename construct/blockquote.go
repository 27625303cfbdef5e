// Package construct implements the markdown construct library of spec
// §4.3: one file per construct (or closely related construct family),
// each exposing the state functions the content-model drivers in
// package content attempt in the fixed order spec §4.2 documents.
//
// Every construct follows the same shape described in spec §4.3:
// opening recognition checks the current byte(s) and emits an Enter,
// the body consumes valid bytes emitting inner Enter/Exit pairs, and
// closing emits the matching Exit and clears whatever Scratch fields the
// construct claimed. Constructs that can fail mid-body do so through
// Nok, which content/document.go and content/flow.go wrap in
// Tokenizer.Attempt so a failed construct never leaves a partial event
// trace behind.
package construct

import (
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// BlockQuoteOpen recognizes a fresh '>' at the start of a line and opens
// a BlockQuote container (spec §4.3.1). A block quote never interrupts a
// paragraph, so document.go only calls this when no lazy-continuation
// override applies.
func BlockQuoteOpen(t *tokenizer.Tokenizer) tokenizer.Result {
	if t.Current != int32('>') {
		return tokenizer.Nok()
	}
	t.Enter(mdevent.BlockQuote)
	consumeBlockQuotePrefix(t)
	return tokenizer.Ok()
}

// BlockQuoteContinue recognizes the '>' prefix that continues an
// already-open BlockQuote container on a later line.
func BlockQuoteContinue(t *tokenizer.Tokenizer) tokenizer.Result {
	if t.Current != int32('>') {
		return tokenizer.Nok()
	}
	consumeBlockQuotePrefix(t)
	return tokenizer.Ok()
}

// consumeBlockQuotePrefix consumes '>' plus at most one following
// space/tab (spec §4.3.1: "'>' optionally followed by a single
// space/tab"), wrapping the marker and the optional pad in
// BlockQuotePrefix so the byte range the prefix occupies is identifiable
// without re-deriving it from column math.
func consumeBlockQuotePrefix(t *tokenizer.Tokenizer) {
	t.Enter(mdevent.BlockQuotePrefix)
	t.Enter(mdevent.BlockQuoteMarker)
	t.Consume()
	t.Exit(mdevent.BlockQuoteMarker)
	if t.Current == int32(' ') || t.Current == int32('\t') {
		t.Consume()
	}
	t.Exit(mdevent.BlockQuotePrefix)
}

// Package subtok implements spec §4.5's subtokenizer: the pass that
// walks every Enter event a content-model driver tagged with a Link
// content model, re-tokenizes the byte range(s) that Link names, and
// splices the result back into the parent event list via the EditMap.
package subtok

import (
	"github.com/aledsdavies/mdcore/content"
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/pos"
	"github.com/aledsdavies/mdcore/resolve"
	"github.com/aledsdavies/mdcore/tokenizer"
	"golang.org/x/crypto/blake2b"
)

// Run expands every ContentText/ContentString Link in t.Events to a
// fixed point: a spliced-in span can itself carry fresh Link requests
// (a GFM table cell's own inline content, recognized during its own
// re-tokenization pass), so this loops until none remain.
//
// Only ContentText and ContentString are ever produced by this
// implementation's constructs. ContentFlow and ContentContent are
// declared in mdevent.Content for parity with spec §4.5's five-model
// enumeration, but no construct here emits them: container content is
// driven eagerly by content.Document itself rather than deferred to a
// later Flow-model subtokenization pass, and a paragraph's line-by-line
// Data chunks are tagged ContentText directly (construct.ParagraphLine)
// instead of routing through a separate intermediate Content-model stage
// first — the chain-walk below performs the joining and the Text-model
// re-tokenization in the same step.
func Run(t *tokenizer.Tokenizer) {
	cache := make(map[[blake2b.Size256]byte][]mdevent.Event)
	for {
		idx := nextRoot(t.Events)
		if idx < 0 {
			return
		}
		expandOne(t, idx, cache)
		t.Events = t.Map.Consume(t.Events)
	}
}

// memoKey hashes (content model, joined byte range) with blake2b-256 so
// expandOne can skip re-tokenizing a range it has already expanded once
// during this Run — a GFM table's repeated identical cell bodies are the
// common case where this actually pays off, since the fixed-point loop
// revisits every chunk a spliced-in child itself tags.
func memoKey(kind mdevent.Content, buf []byte) [blake2b.Size256]byte {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err)
	}
	h.Write([]byte{byte(kind)})
	h.Write(buf)
	var key [blake2b.Size256]byte
	copy(key[:], h.Sum(nil))
	return key
}

// nextRoot finds the first not-yet-expanded Link chain head: an Enter
// event carrying a Link whose Previous is nil (true for both a chain's
// first chunk and a standalone single-span request).
func nextRoot(events mdevent.List) int {
	for i, e := range events {
		if e.Kind == mdevent.Enter && e.Link != nil && e.Link.Previous == nil &&
			(e.Link.Content == mdevent.ContentText || e.Link.Content == mdevent.ContentString) {
			return i
		}
	}
	return -1
}

// chunk is one byte range in a linked content chain, carrying both its
// byte offsets and its original Enter/Exit Points so sub-tokenized
// events can be translated back into the parent's coordinate space.
type chunk struct {
	enterIdx, exitIdx int
	start, end        int
	startPoint        pos.Point
	endPoint          pos.Point
}

func expandOne(t *tokenizer.Tokenizer, rootIdx int, cache map[[blake2b.Size256]byte][]mdevent.Event) {
	kind := t.Events[rootIdx].Link.Content
	chunks := collectChain(t, rootIdx)
	if len(chunks) == 0 {
		return
	}

	var buf []byte
	offsets := make([]int, len(chunks))
	for i, c := range chunks {
		if i > 0 {
			buf = append(buf, '\n')
		}
		offsets[i] = len(buf)
		buf = append(buf, t.Source[c.start:c.end]...)
	}

	key := memoKey(kind, buf)
	subEvents, hit := cache[key]
	if !hit {
		sub := tokenizer.New(buf, t.Config)
		sub.Definitions = t.Definitions
		if kind == mdevent.ContentString {
			content.String(sub)
		} else {
			content.Text(sub)
		}
		resolve.Run(sub)
		subEvents = sub.Events
		cache[key] = subEvents
	}

	children := make([]mdevent.Event, len(subEvents))
	for i, e := range subEvents {
		e.Point = translatePoint(chunks, offsets, e.Point.Index)
		children[i] = e
	}

	first := chunks[0]
	last := chunks[len(chunks)-1]
	t.Map.Add(first.enterIdx+1, last.exitIdx-first.enterIdx-1, children)
	t.Events[first.enterIdx].Link = nil
}

// collectChain walks a chain from its head Enter event, following
// Link.Next, and reports the byte range + boundary indices of each
// chunk. Each chunk must be a void-shaped Enter immediately followed by
// its own Exit (true of every chunk this package ever sees: paragraph
// Data lines, and the single-span HeadingAtxText/GfmTableCellText/
// destination-title-string spans), since nothing is ever nested inside
// an unexpanded chunk before subtokenization runs.
func collectChain(t *tokenizer.Tokenizer, enterIdx int) []chunk {
	var chunks []chunk
	idx := enterIdx
	for idx >= 0 {
		enter := t.Events[idx]
		exitIdx := idx + 1
		if exitIdx >= len(t.Events) || t.Events[exitIdx].Kind != mdevent.Exit {
			return nil
		}
		exit := t.Events[exitIdx]
		chunks = append(chunks, chunk{
			enterIdx: idx, exitIdx: exitIdx,
			start: enter.Point.Index, end: exit.Point.Index,
			startPoint: enter.Point, endPoint: exit.Point,
		})
		if enter.Link == nil || enter.Link.Next == nil {
			break
		}
		idx = *enter.Link.Next
	}
	return chunks
}

// translatePoint maps a byte offset in the synthetic joined buffer back
// to the original document's coordinates. An offset inside a chunk's own
// bytes steps forward from that chunk's real start Point (the
// single-byte-per-offset advance already used throughout resolve, since
// these offsets only ever land on literal, non-tab text bytes); an
// offset landing exactly on a chunk boundary — the synthetic '\n' joiner,
// or the end of the whole buffer — maps to that chunk's own precise end
// Point, since the joiner stands in for the real line boundary excised
// between chunks.
func translatePoint(chunks []chunk, offsets []int, si int) pos.Point {
	for i, c := range chunks {
		start := offsets[i]
		length := c.end - c.start
		switch {
		case si < start+length:
			return advance(c.startPoint, si-start)
		case si == start+length:
			return c.endPoint
		}
	}
	return chunks[len(chunks)-1].endPoint
}

func advance(p pos.Point, n int) pos.Point {
	return pos.Point{Line: p.Line, Column: p.Column + n, Index: p.Index + n, VS: 0}
}

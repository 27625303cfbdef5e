// Package resolve implements spec §4.4's resolver pipeline: post-passes
// over a finished event list that need information not available to a
// single forward-only state function (pairing emphasis runs, pairing
// link label brackets, building table structure from raw rows). Rather than the spec's per-construct dynamic resolver
// registration, this package runs one fixed-order static pipeline
// (grounded on core/plan's ordered-pass-over-a-value approach) and
// skips any stage whose ResolverID the tokenizer never registered.
package resolve

import "github.com/aledsdavies/mdcore/tokenizer"

// The spec §4.4 resolver names, in the fixed order they must run:
// data-merge first (so later passes see coalesced Data spans), then
// attention pairing, label pairing, content-join cleanup, setext
// heading promotion, GFM table structuring, and finally GFM autolink
// literal scanning over whatever plain text survives.
const (
	DataMerge          tokenizer.ResolverID = "data-merge"
	Attention          tokenizer.ResolverID = "attention"
	LabelPairing       tokenizer.ResolverID = "label-pairing"
	ContentJoin        tokenizer.ResolverID = "content-join"
	HeadingSetext      tokenizer.ResolverID = "heading-setext"
	GfmTable           tokenizer.ResolverID = "gfm-table"
	GfmAutolinkLiteral tokenizer.ResolverID = "gfm-autolink-literal"
)

var order = []tokenizer.ResolverID{
	DataMerge, Attention, LabelPairing, ContentJoin, HeadingSetext, GfmTable, GfmAutolinkLiteral,
}

// Run executes every registered resolver over t in spec §4.4's fixed
// order, consuming t.Map after each stage so the next stage observes
// the previous stage's edits already applied (spec §4.1.3 step 4).
func Run(t *tokenizer.Tokenizer) {
	registered := make(map[tokenizer.ResolverID]bool, len(t.Resolvers))
	for _, id := range t.Resolvers {
		registered[id] = true
	}
	for _, id := range order {
		if !registered[id] {
			continue
		}
		switch id {
		case DataMerge:
			dataMerge(t)
		case Attention:
			resolveAttention(t)
		case LabelPairing:
			resolveLabelPairing(t)
		case ContentJoin:
			resolveContentJoin(t)
		case HeadingSetext:
			resolveHeadingSetext(t)
		case GfmTable:
			resolveGfmTable(t)
		case GfmAutolinkLiteral:
			resolveGfmAutolinkLiteral(t)
		}
		t.Events = t.Map.Consume(t.Events)
	}
}

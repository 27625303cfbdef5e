// Package mdcore tokenizes CommonMark/GFM/MDX-flavored Markdown into a
// flat, balanced event list per spec §3: Parse is the package's sole
// entry point, driving the Document content model, the subtokenizer, and
// the top-level resolver pass in sequence (spec §4.1.3, §4.4, §4.5).
package mdcore

import (
	"github.com/aledsdavies/mdcore/content"
	"github.com/aledsdavies/mdcore/mdconfig"
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/resolve"
	"github.com/aledsdavies/mdcore/subtok"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// Parse tokenizes source under the given options (mdconfig.New's default
// is the CommonMark preset; pass mdconfig.WithPreset/mdconfig.WithConstruct
// and friends for GFM or MDX) into a flat event list, always bracketed by
// a single Root Enter/Exit pair (spec §8.2).
//
// The returned error is reserved for a future fatal parse failure (spec
// §4.1.1's Error verdict, e.g. an unbalanced MDX JSX tag); this
// implementation's reduced-scope MDX constructs (see construct/mdx.go) never
// produce one, so it is always nil today.
func Parse(source []byte, opts ...mdconfig.Option) (mdevent.List, error) {
	cfg := mdconfig.New(opts...)
	t := tokenizer.New(source, cfg)

	content.Document(t)
	subtok.Run(t)
	resolve.Run(t)

	return t.Events, nil
}

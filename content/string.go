package content

import (
	"github.com/aledsdavies/mdcore/construct"
	"github.com/aledsdavies/mdcore/mdconfig"
	"github.com/aledsdavies/mdcore/resolve"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// String drives spec §4.2's String content model: the narrowest of the
// four, used for link/definition destination and title literals, which
// only ever recognize character escapes and character references before
// falling back to literal Data.
func String(t *tokenizer.Tokenizer) {
	t.RegisterResolver(resolve.DataMerge)
	for !t.AtEOF() {
		switch {
		case t.Config.Enabled(mdconfig.CharacterEscape) && tryOk(t, construct.CharacterEscape):
		case t.Config.Enabled(mdconfig.CharacterReference) && tryOk(t, construct.CharacterReference):
		default:
			consumeOneAsData(t)
		}
	}
}

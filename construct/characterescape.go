package construct

import (
	"github.com/aledsdavies/mdcore/charset"
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// CharacterEscape recognizes `\` followed by one ASCII punctuation byte
// (spec §4.3.11).
func CharacterEscape(t *tokenizer.Tokenizer) tokenizer.Result {
	if t.Current != int32('\\') {
		return tokenizer.Nok()
	}
	next := peekNext(t)
	if next == tokenizer.EOF || !charset.IsASCIIPunctuation(byte(next)) {
		return tokenizer.Nok()
	}
	t.Enter(mdevent.CharacterEscape)
	t.Enter(mdevent.CharacterEscapeMarker)
	t.Consume()
	t.Exit(mdevent.CharacterEscapeMarker)
	t.Enter(mdevent.CharacterEscapeValue)
	t.Consume()
	t.Exit(mdevent.CharacterEscapeValue)
	t.Exit(mdevent.CharacterEscape)
	return tokenizer.Ok()
}

func peekNext(t *tokenizer.Tokenizer) int32 {
	i := t.Point.Index + 1
	if i >= len(t.Source) {
		return tokenizer.EOF
	}
	return int32(t.Source[i])
}

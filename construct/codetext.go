package construct

import (
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// CodeText recognizes an inline code span: a run of N backticks, any
// bytes (including line endings) up to the next run of exactly N
// backticks, spec §4.3.14. The leading-strip/single-space-collapse rule
// for a span both starting and ending with a space is applied by the
// resolver's content-join pass, not here.
func CodeText(t *tokenizer.Tokenizer) tokenizer.Result {
	if t.Current != int32('`') {
		return tokenizer.Nok()
	}
	openLen := countLeadingFenceBytes(t.Source, t.Point.Index, '`')
	closeStart := findRun(t.Source, t.Point.Index+openLen, '`', openLen)
	if closeStart < 0 {
		return tokenizer.Nok()
	}

	t.Enter(mdevent.CodeText)
	t.Enter(mdevent.CodeTextSequence)
	for i := 0; i < openLen; i++ {
		t.Consume()
	}
	t.Exit(mdevent.CodeTextSequence)

	if closeStart > t.Point.Index {
		t.Enter(mdevent.CodeTextData)
		advanceTo(t, closeStart)
		t.Exit(mdevent.CodeTextData)
	}

	t.Enter(mdevent.CodeTextSequence)
	for i := 0; i < openLen; i++ {
		t.Consume()
	}
	t.Exit(mdevent.CodeTextSequence)
	t.Exit(mdevent.CodeText)
	return tokenizer.Ok()
}

package construct

import (
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// ThematicBreak recognizes a line consisting of 3+ of the same
// `-`, `_`, or `*`, optionally interspersed with spaces/tabs, with
// nothing else before the line ending. It first counts markers with a
// pure lookahead (Check) so the real consuming pass can wrap the whole
// marker+space run in one ThematicBreakSequence span instead of
// retroactively trying to reopen an already-consumed range.
func ThematicBreak(t *tokenizer.Tokenizer) tokenizer.Result {
	marker := t.Current
	if marker != int32('-') && marker != int32('_') && marker != int32('*') {
		return tokenizer.Nok()
	}

	if !countThematicBreakRun(t, marker) {
		return tokenizer.Nok()
	}

	t.Enter(mdevent.ThematicBreak)
	t.Enter(mdevent.ThematicBreakSequence)
	for t.Current == marker || t.Current == int32(' ') || t.Current == int32('\t') {
		t.Consume()
	}
	t.Exit(mdevent.ThematicBreakSequence)
	if !t.AtEOF() {
		consumeLineEnding(t)
	}
	t.Exit(mdevent.ThematicBreak)
	return tokenizer.Ok()
}

// countThematicBreakRun is a side-effect-free lookahead: it reports
// whether the rest of the line is marker/space/tab bytes with at least
// 3 markers, followed by a line ending or EOF.
func countThematicBreakRun(t *tokenizer.Tokenizer, marker int32) bool {
	count := 0
	matched := false
	t.Check(
		func(t *tokenizer.Tokenizer) tokenizer.Result {
			for {
				switch {
				case t.Current == marker:
					count++
					t.Consume()
				case t.Current == int32(' ') || t.Current == int32('\t'):
					t.Consume()
				case atLineEndOrEOF(t.Current):
					if count < 3 {
						return tokenizer.Nok()
					}
					matched = true
					return tokenizer.Ok()
				default:
					return tokenizer.Nok()
				}
			}
		},
		func(t *tokenizer.Tokenizer) tokenizer.Result { return tokenizer.Ok() },
		func(t *tokenizer.Tokenizer) tokenizer.Result { return tokenizer.Ok() },
	)
	return matched
}

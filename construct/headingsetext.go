package construct

import (
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// HeadingSetextUnderlineLine recognizes a line consisting of one or more
// `=` (level 1) or `-` (level 2), optionally interspersed with trailing
// spaces/tabs, and nothing else (spec §4.3.4). Leading indentation is
// assumed already consumed by the flow content driver, the same
// convention ThematicBreak and the other block-leader constructs follow.
// It emits only the raw HeadingSetextUnderline span; promoting the
// preceding paragraph into a HeadingSetext is the resolver's job
// (resolve/headingsetext.go), since that requires rewriting events
// already committed to the stream.
func HeadingSetextUnderlineLine(t *tokenizer.Tokenizer) tokenizer.Result {
	marker := t.Current
	if marker != int32('=') && marker != int32('-') {
		return tokenizer.Nok()
	}
	if !checkSetextUnderline(t, marker) {
		return tokenizer.Nok()
	}

	t.Enter(mdevent.HeadingSetextUnderline)
	for t.Current == marker || t.Current == int32(' ') || t.Current == int32('\t') {
		t.Consume()
	}
	t.Exit(mdevent.HeadingSetextUnderline)
	if !t.AtEOF() {
		consumeLineEnding(t)
	}
	return tokenizer.Ok()
}

// checkSetextUnderline is a side-effect-free lookahead: the rest of the
// line must be marker/space/tab bytes with at least one marker, followed
// by a line ending or EOF.
func checkSetextUnderline(t *tokenizer.Tokenizer, marker int32) bool {
	matched := false
	t.Check(
		func(t *tokenizer.Tokenizer) tokenizer.Result {
			seen := 0
			for {
				switch {
				case t.Current == marker:
					seen++
					t.Consume()
				case t.Current == int32(' ') || t.Current == int32('\t'):
					t.Consume()
				case atLineEndOrEOF(t.Current):
					if seen < 1 {
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

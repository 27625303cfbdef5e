package construct

import (
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// MathText is CodeText's `$`-delimited counterpart for inline math
// spans (spec §4.3.5's math construct family).
func MathText(t *tokenizer.Tokenizer) tokenizer.Result {
	if t.Current != int32('$') {
		return tokenizer.Nok()
	}
	openLen := countLeadingFenceBytes(t.Source, t.Point.Index, '$')
	if openLen == 1 && !t.Config.MathTextSingleDollar() {
		return tokenizer.Nok()
	}
	closeStart := findRun(t.Source, t.Point.Index+openLen, '$', openLen)
	if closeStart < 0 {
		return tokenizer.Nok()
	}

	t.Enter(mdevent.MathText)
	t.Enter(mdevent.MathTextSequence)
	for i := 0; i < openLen; i++ {
		t.Consume()
	}
	t.Exit(mdevent.MathTextSequence)

	if closeStart > t.Point.Index {
		t.Enter(mdevent.MathTextData)
		advanceTo(t, closeStart)
		t.Exit(mdevent.MathTextData)
	}

	t.Enter(mdevent.MathTextSequence)
	for i := 0; i < openLen; i++ {
		t.Consume()
	}
	t.Exit(mdevent.MathTextSequence)
	t.Exit(mdevent.MathText)
	return tokenizer.Ok()
}

func findRun(source []byte, start int, marker byte, want int) int {
	i := start
	for i < len(source) {
		if source[i] != marker {
			i++
			continue
		}
		runStart := i
		for i < len(source) && source[i] == marker {
			i++
		}
		if i-runStart == want {
			return runStart
		}
	}
	return -1
}

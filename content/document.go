package content

import (
	"github.com/aledsdavies/mdcore/container"
	"github.com/aledsdavies/mdcore/construct"
	"github.com/aledsdavies/mdcore/mdconfig"
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/resolve"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// Document drives spec §4.2's Document content model: for every physical
// line, first walk the open container stack (block quote, list item, GFM
// footnote definition prefixes), closing whatever part of the stack
// fails to continue (honoring lazy paragraph continuation, spec §4.1.5),
// then try to open new containers, then hand the rest of the line to the
// Flow content model. The whole result is wrapped in a single Root
// Enter/Exit pair (spec §8.2), even for empty input.
func Document(t *tokenizer.Tokenizer) {
	t.RegisterResolver(resolve.HeadingSetext)
	t.RegisterResolver(resolve.GfmTable)
	t.RegisterResolver(resolve.DataMerge)

	t.Enter(mdevent.Root)
	fs := newFlowState()
	for !t.AtEOF() {
		documentLine(t, fs)
	}
	closeFlow(t, fs)
	closeContainers(t, 0)
	t.Exit(mdevent.Root)
}

func documentLine(t *tokenizer.Tokenizer, fs *flowState) {
	matched, canLazy := continueContainers(t)
	lazy := false
	if matched < t.Containers.Len() {
		// A line that starts a block quote or list item is never a lazy
		// paragraph continuation.
		if canLazy && fs.kind == flowParagraph {
			if t.Current == int32('>') && t.Config.Enabled(mdconfig.BlockQuote) {
				canLazy = false
			} else if t.Config.Enabled(mdconfig.ListItem) {
				done := func(t *tokenizer.Tokenizer) tokenizer.Result { return tokenizer.Ok() }
				t.Check(func(t *tokenizer.Tokenizer) tokenizer.Result {
					res, _ := construct.ListItemOpen(t)
					canLazy = res.Verdict != tokenizer.VerdictOk
					return res
				}, done, done)
			}
		}
		if canLazy && fs.kind == flowParagraph {
			lazy = true
		} else {
			closeFlow(t, fs)
			closeContainers(t, matched)
		}
	}
	if !lazy {
		openNewContainers(t, fs)
	}
	flowLine(t, fs, lazy)
}

// continueContainers walks every currently open container outermost
// first, trying its continuation construct. It stops at the first one
// that fails, returning how many containers matched and whether the
// failing line is still a candidate for lazy paragraph continuation
// (non-blank).
func continueContainers(t *tokenizer.Tokenizer) (matched int, canLazy bool) {
	n := t.Containers.Len()
	for i := 0; i < n; i++ {
		c := t.Containers.At(i)
		var ok bool
		switch c.Kind {
		case container.BlockQuote:
			ok = tryOk(t, construct.BlockQuoteContinue)
		case container.ListItem, container.FootnoteDefinition:
			ok = attemptBool(t, func(t *tokenizer.Tokenizer) bool {
				return construct.ListItemContinue(t, c.Size)
			})
		}
		if !ok {
			return i, !isBlankAhead(t)
		}
	}
	return n, false
}

// closeContainers pops every container beyond depth, innermost first,
// emitting its Exit event. Callers must close any open flow construct
// nested inside first.
func closeContainers(t *tokenizer.Tokenizer, depth int) {
	for t.Containers.Len() > depth {
		c := t.Containers.Pop()
		switch c.Kind {
		case container.BlockQuote:
			t.Exit(mdevent.BlockQuote)
		case container.ListItem:
			t.Exit(mdevent.ListItem)
		case container.FootnoteDefinition:
			construct.GfmFootnoteDefinitionClose(t)
		}
	}
}

// openNewContainers greedily opens as many new block quote / list item /
// footnote definition containers as match at the current point, closing
// any currently open flow construct the first time one succeeds (a new
// container always interrupts the line's existing flow). Suppressed
// entirely while a concrete (raw) flow construct is open, since those
// own every byte of their lines regardless of container structure.
func openNewContainers(t *tokenizer.Tokenizer, fs *flowState) {
	if isConcrete(fs.kind) {
		return
	}
	for {
		switch {
		case tryOpenBlockQuote(t):
		case tryOpenListItem(t):
		case tryOpenFootnoteDefinition(t):
		default:
			return
		}
		closeFlow(t, fs)
	}
}

func tryOpenBlockQuote(t *tokenizer.Tokenizer) bool {
	if !t.Config.Enabled(mdconfig.BlockQuote) || t.Current != int32('>') {
		return false
	}
	if !tryOk(t, construct.BlockQuoteOpen) {
		return false
	}
	t.Containers.Push(container.Container{Kind: container.BlockQuote})
	return true
}

func tryOpenListItem(t *tokenizer.Tokenizer) bool {
	if !t.Config.Enabled(mdconfig.ListItem) {
		return false
	}
	b := t.Current
	if !(b == int32('-') || b == int32('+') || b == int32('*') || (b >= int32('0') && b <= int32('9'))) {
		return false
	}
	var result construct.ListItemResult
	ok := false
	t.Attempt(
		func(t *tokenizer.Tokenizer) tokenizer.Result {
			res, r := construct.ListItemOpen(t)
			result = r
			ok = res.Verdict == tokenizer.VerdictOk
			return res
		},
		func(t *tokenizer.Tokenizer) tokenizer.Result { return tokenizer.Ok() },
		func(t *tokenizer.Tokenizer) tokenizer.Result { return tokenizer.Ok() },
	)
	if !ok {
		return false
	}
	t.Containers.Push(result.Container)
	return true
}

func tryOpenFootnoteDefinition(t *tokenizer.Tokenizer) bool {
	if !t.Config.Enabled(mdconfig.GfmFootnoteDefinition) || t.Current != int32('[') {
		return false
	}
	label, hasLabel := rawFootnoteLabel(t.Source, t.Point.Index)
	var size int
	ok := false
	t.Attempt(
		func(t *tokenizer.Tokenizer) tokenizer.Result {
			res, s := construct.GfmFootnoteDefinitionOpen(t)
			size = s
			ok = res.Verdict == tokenizer.VerdictOk
			return res
		},
		func(t *tokenizer.Tokenizer) tokenizer.Result { return tokenizer.Ok() },
		func(t *tokenizer.Tokenizer) tokenizer.Result { return tokenizer.Ok() },
	)
	if !ok {
		return false
	}
	t.Containers.Push(container.Container{Kind: container.FootnoteDefinition, Size: size})
	if hasLabel {
		t.Definitions.DefineFootnote(label)
	}
	return true
}

// rawFootnoteLabel re-derives a candidate "[^label]:" line's label text
// directly from source, independent of whatever GfmFootnoteDefinitionOpen
// itself ends up consuming, since that call may roll back on failure.
func rawFootnoteLabel(source []byte, start int) (string, bool) {
	if start+2 > len(source) || source[start] != '[' || source[start+1] != '^' {
		return "", false
	}
	i := start + 2
	labelStart := i
	for i < len(source) {
		b := source[i]
		if b == '\\' && i+1 < len(source) {
			i += 2
			continue
		}
		if b == '[' || b == '\n' || b == '\r' {
			return "", false
		}
		if b == ']' {
			return string(source[labelStart:i]), true
		}
		i++
	}
	return "", false
}

package content

import (
	"bytes"

	"github.com/aledsdavies/mdcore/construct"
	"github.com/aledsdavies/mdcore/mdconfig"
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// flowKind names which flow construct, if any, is currently open across
// physical lines.
type flowKind int

const (
	flowNone flowKind = iota
	flowParagraph
	flowCodeFenced
	flowMathFlow
	flowCodeIndented
	flowHtmlFlow
	flowFrontmatter
	flowGfmTable
	flowMdxEsm
)

// flowState threads a flow construct's state across the document
// driver's per-line calls, since a single construct's Enter/Exit pair
// can span many physical lines.
type flowState struct {
	kind flowKind

	fence Fence

	htmlCond construct.HtmlFlowEndCondition

	frontmatterMarker byte

	paragraphPrevData int
}

// Fence is a local alias for the construct package's fence-tracking type,
// kept close to its only caller.
type Fence = construct.Fence

func newFlowState() *flowState {
	return &flowState{paragraphPrevData: -1}
}

// isConcrete reports whether k is a raw flow construct whose lines are
// consumed verbatim (spec §4.1.5): no new containers may open, and no
// lazy paragraph continuation rule applies, while one is open.
func isConcrete(k flowKind) bool {
	switch k {
	case flowCodeFenced, flowMathFlow, flowHtmlFlow, flowFrontmatter, flowMdxEsm:
		return true
	default:
		return false
	}
}

// flowLine drives spec §4.2's Flow content model for one physical line:
// continue whatever flow construct is already open, or (if nothing
// continues, or nothing was open) try to open a fresh one.
func flowLine(t *tokenizer.Tokenizer, fs *flowState, lazy bool) {
	switch fs.kind {
	case flowCodeFenced, flowMathFlow, flowFrontmatter, flowMdxEsm:
		continueRaw(t, fs)
		return
	case flowHtmlFlow:
		continueHtmlFlow(t, fs)
		return
	case flowCodeIndented:
		if tryContinueCodeIndented(t, fs) {
			return
		}
		closeCodeIndented(t, fs)
	case flowGfmTable:
		if gfmTableRow(t) {
			return
		}
		fs.kind = flowNone
	}

	if lazy {
		openParagraphLine(t, fs)
		return
	}
	openNewFlow(t, fs)
}

func continueRaw(t *tokenizer.Tokenizer, fs *flowState) {
	switch fs.kind {
	case flowCodeFenced:
		if construct.CodeFencedCloseLine(t, fs.fence, mdevent.CodeFencedFence, mdevent.CodeFencedFenceSequence) {
			t.Exit(mdevent.CodeFenced)
			*fs = *newFlowState()
			return
		}
		construct.CodeFencedBodyLine(t, fs.fence, mdevent.CodeFlowChunk)
	case flowMathFlow:
		if construct.CodeFencedCloseLine(t, fs.fence, mdevent.MathFlowFence, mdevent.MathFlowFenceSequence) {
			t.Exit(mdevent.MathFlow)
			*fs = *newFlowState()
			return
		}
		construct.CodeFencedBodyLine(t, fs.fence, mdevent.MathFlowChunk)
	case flowFrontmatter:
		if construct.FrontmatterCloseLine(t, fs.frontmatterMarker) {
			t.Exit(mdevent.Frontmatter)
			*fs = *newFlowState()
			return
		}
		construct.FrontmatterBodyLine(t)
	case flowMdxEsm:
		if isBlankAhead(t) {
			construct.MdxEsmClose(t)
			*fs = *newFlowState()
			tryOk(t, construct.BlankLine)
			return
		}
		construct.MdxEsmLine(t)
	}
}

func continueHtmlFlow(t *tokenizer.Tokenizer, fs *flowState) {
	if fs.htmlCond == construct.HtmlFlowEndBlankLine {
		if construct.HtmlFlowLineIsBlank(t) {
			construct.HtmlFlowClose(t)
			*fs = *newFlowState()
			tryOk(t, construct.BlankLine)
			return
		}
		construct.HtmlFlowBodyLine(t)
		return
	}
	lineStart := t.Point.Index
	construct.HtmlFlowBodyLine(t)
	if htmlFlowLineCloses(t, fs.htmlCond, lineStart) {
		construct.HtmlFlowClose(t)
		*fs = *newFlowState()
	}
}

func htmlFlowNeedles(cond construct.HtmlFlowEndCondition) []string {
	switch cond {
	case construct.HtmlFlowEndRawText:
		return []string{"</script>", "</pre>", "</style>", "</textarea>"}
	case construct.HtmlFlowEndComment:
		return []string{"-->"}
	case construct.HtmlFlowEndInstruction:
		return []string{"?>"}
	case construct.HtmlFlowEndCdata:
		return []string{"]]>"}
	case construct.HtmlFlowEndDeclaration:
		return []string{">"}
	default:
		return nil
	}
}

func htmlFlowLineCloses(t *tokenizer.Tokenizer, cond construct.HtmlFlowEndCondition, lineStart int) bool {
	if cond == construct.HtmlFlowEndBlankLine {
		return false
	}
	line := t.Source[lineStart:t.Point.Index]
	for _, needle := range htmlFlowNeedles(cond) {
		if bytes.Contains(line, []byte(needle)) {
			return true
		}
	}
	return false
}

func tryContinueCodeIndented(t *tokenizer.Tokenizer, fs *flowState) bool {
	if isBlankAhead(t) {
		tryOk(t, construct.BlankLine)
		return true
	}
	if !attemptBool(t, construct.CodeIndentedLineIndent) {
		return false
	}
	construct.CodeIndentedChunk(t)
	return true
}

func closeCodeIndented(t *tokenizer.Tokenizer, fs *flowState) {
	t.Exit(mdevent.CodeIndented)
	*fs = *newFlowState()
}

// closeFlow closes whatever flow construct is currently open, resetting
// fs to none. Called at document EOF and whenever a container boundary
// or an interrupting construct ends the current flow early.
func closeFlow(t *tokenizer.Tokenizer, fs *flowState) {
	switch fs.kind {
	case flowParagraph:
		t.Exit(mdevent.Paragraph)
	case flowCodeFenced:
		t.Exit(mdevent.CodeFenced)
	case flowMathFlow:
		t.Exit(mdevent.MathFlow)
	case flowFrontmatter:
		t.Exit(mdevent.Frontmatter)
	case flowHtmlFlow:
		construct.HtmlFlowClose(t)
	case flowCodeIndented:
		t.Exit(mdevent.CodeIndented)
	case flowMdxEsm:
		construct.MdxEsmClose(t)
	}
	*fs = *newFlowState()
}

func openParagraphLine(t *tokenizer.Tokenizer, fs *flowState) {
	if fs.kind != flowParagraph {
		t.Enter(mdevent.Paragraph)
		fs.kind = flowParagraph
		fs.paragraphPrevData = -1
	}
	fs.paragraphPrevData = construct.ParagraphLine(t, fs.paragraphPrevData)
}

// tryInterrupt runs fn as a single Attempt frame that, if fs currently
// holds an open paragraph, first exits it; a false/failing fn rolls the
// exit back along with whatever fn itself mutated, so a non-matching
// line falls through to ordinary paragraph continuation untouched.
func tryInterrupt(t *tokenizer.Tokenizer, fs *flowState, fn func(*tokenizer.Tokenizer) bool) bool {
	wasParagraph := fs.kind == flowParagraph
	ok := false
	t.Attempt(
		func(t *tokenizer.Tokenizer) tokenizer.Result {
			if wasParagraph {
				t.Exit(mdevent.Paragraph)
			}
			if fn(t) {
				ok = true
				return tokenizer.Ok()
			}
			return tokenizer.Nok()
		},
		func(t *tokenizer.Tokenizer) tokenizer.Result { return tokenizer.Ok() },
		func(t *tokenizer.Tokenizer) tokenizer.Result { return tokenizer.Ok() },
	)
	if ok && wasParagraph {
		*fs = *newFlowState()
	}
	return ok
}

// openNewFlow tries every flow construct in spec §4.2's documented Flow
// order, falling back to paragraph continuation/opening when none match.
func openNewFlow(t *tokenizer.Tokenizer, fs *flowState) {
	if t.Point.Index == 0 && tryOpenFrontmatter(t, fs) {
		return
	}
	if t.Config.Enabled(mdconfig.BlankLine) && tryInterrupt(t, fs, func(t *tokenizer.Tokenizer) bool {
		return attemptBool(t, func(t *tokenizer.Tokenizer) bool { return tryOk(t, construct.BlankLine) })
	}) {
		return
	}
	if fs.kind == flowParagraph && t.Config.Enabled(mdconfig.HeadingSetext) && tryOk(t, construct.HeadingSetextUnderlineLine) {
		t.Exit(mdevent.Paragraph)
		*fs = *newFlowState()
		return
	}
	if t.Config.Enabled(mdconfig.ThematicBreak) && tryInterrupt(t, fs, func(t *tokenizer.Tokenizer) bool {
		return tryOk(t, construct.ThematicBreak)
	}) {
		return
	}
	if t.Config.Enabled(mdconfig.HeadingAtx) && tryOpenHeadingAtx(t, fs) {
		return
	}
	if t.Config.Enabled(mdconfig.CodeFenced) && tryOpenCodeFenced(t, fs) {
		return
	}
	if t.Config.Enabled(mdconfig.MathFlow) && tryOpenMathFlow(t, fs) {
		return
	}
	if t.Config.Enabled(mdconfig.CodeIndented) && tryOpenCodeIndented(t, fs) {
		return
	}
	if t.Config.Enabled(mdconfig.HtmlFlow) && tryOpenHtmlFlow(t, fs) {
		return
	}
	if t.Config.Enabled(mdconfig.MdxFlowExpression) && tryOpenMdxFlowExpr(t, fs) {
		return
	}
	if t.Config.Enabled(mdconfig.MdxJsxFlow) && tryOpenMdxJsxFlow(t, fs) {
		return
	}
	if t.Config.Enabled(mdconfig.MdxEsm) && tryOpenMdxEsm(t, fs) {
		return
	}
	if fs.kind == flowNone && t.Config.Enabled(mdconfig.Definition) && tryOpenDefinition(t) {
		return
	}
	if fs.kind == flowNone && t.Config.Enabled(mdconfig.GfmTable) && tryOpenGfmTable(t, fs) {
		return
	}
	openParagraphLine(t, fs)
}

func tryOpenHeadingAtx(t *tokenizer.Tokenizer, fs *flowState) bool {
	return tryInterrupt(t, fs, func(t *tokenizer.Tokenizer) bool {
		from := len(t.Events)
		if !tryOk(t, construct.HeadingAtx) {
			return false
		}
		tagSpansSince(t, from, mdevent.HeadingAtxText, mdevent.ContentText)
		return true
	})
}

func tryOpenCodeFenced(t *tokenizer.Tokenizer, fs *flowState) bool {
	return tryInterrupt(t, fs, func(t *tokenizer.Tokenizer) bool {
		res, fence := construct.CodeFencedOpen(t)
		if res.Verdict != tokenizer.VerdictOk {
			return false
		}
		fs.kind = flowCodeFenced
		fs.fence = fence
		return true
	})
}

func tryOpenMathFlow(t *tokenizer.Tokenizer, fs *flowState) bool {
	return tryInterrupt(t, fs, func(t *tokenizer.Tokenizer) bool {
		res, fence := construct.MathFlowOpen(t)
		if res.Verdict != tokenizer.VerdictOk {
			return false
		}
		fs.kind = flowMathFlow
		fs.fence = fence
		return true
	})
}

// tryOpenCodeIndented never interrupts an open paragraph (CommonMark's
// indented-code rule), so it only ever fires while fs.kind is flowNone.
func tryOpenCodeIndented(t *tokenizer.Tokenizer, fs *flowState) bool {
	if fs.kind != flowNone || isBlankAhead(t) {
		return false
	}
	if !attemptBool(t, construct.CodeIndentedLineIndent) {
		return false
	}
	t.Enter(mdevent.CodeIndented)
	construct.CodeIndentedChunk(t)
	fs.kind = flowCodeIndented
	return true
}

func tryOpenHtmlFlow(t *tokenizer.Tokenizer, fs *flowState) bool {
	if t.Current != int32('<') {
		return false
	}
	var lineStart int
	var cond construct.HtmlFlowEndCondition
	ok := tryInterrupt(t, fs, func(t *tokenizer.Tokenizer) bool {
		lineStart = t.Point.Index
		res, c := construct.HtmlFlowOpen(t)
		if res.Verdict != tokenizer.VerdictOk {
			return false
		}
		cond = c
		return true
	})
	if !ok {
		return false
	}
	if htmlFlowLineCloses(t, cond, lineStart) {
		construct.HtmlFlowClose(t)
		return true
	}
	fs.kind = flowHtmlFlow
	fs.htmlCond = cond
	return true
}

func tryOpenMdxFlowExpr(t *tokenizer.Tokenizer, fs *flowState) bool {
	return tryInterrupt(t, fs, func(t *tokenizer.Tokenizer) bool {
		res := construct.MdxExpression(t, mdevent.MdxFlowExpression, mdconfig.MdxFlowExpression)
		if res.Verdict != tokenizer.VerdictOk {
			return false
		}
		consumeFlowLineEnding(t)
		return true
	})
}

func tryOpenMdxJsxFlow(t *tokenizer.Tokenizer, fs *flowState) bool {
	return tryInterrupt(t, fs, func(t *tokenizer.Tokenizer) bool {
		res := construct.MdxJsxTag(t, mdevent.MdxJsxFlowTag, mdconfig.MdxJsxFlow)
		if res.Verdict != tokenizer.VerdictOk {
			return false
		}
		consumeFlowLineEnding(t)
		return true
	})
}

func tryOpenMdxEsm(t *tokenizer.Tokenizer, fs *flowState) bool {
	return tryInterrupt(t, fs, func(t *tokenizer.Tokenizer) bool {
		res := construct.MdxEsmOpen(t)
		if res.Verdict != tokenizer.VerdictOk {
			return false
		}
		construct.MdxEsmLine(t)
		fs.kind = flowMdxEsm
		return true
	})
}

func tryOpenFrontmatter(t *tokenizer.Tokenizer, fs *flowState) bool {
	if !t.Config.Enabled(mdconfig.Frontmatter) {
		return false
	}
	res, marker := construct.FrontmatterOpen(t)
	if res.Verdict != tokenizer.VerdictOk {
		return false
	}
	fs.kind = flowFrontmatter
	fs.frontmatterMarker = marker
	return true
}

func tryOpenDefinition(t *tokenizer.Tokenizer) bool {
	from := len(t.Events)
	if !tryOk(t, construct.DefinitionOpen) {
		return false
	}
	tagSpansSince(t, from, mdevent.ResourceDestinationString, mdevent.ContentString)
	tagSpansSince(t, from, mdevent.ResourceTitleString, mdevent.ContentString)
	tagSpansSince(t, from, mdevent.DefinitionDestinationString, mdevent.ContentString)
	tagSpansSince(t, from, mdevent.DefinitionTitleString, mdevent.ContentString)
	registerDefinitionLabel(t, from)
	return true
}

func registerDefinitionLabel(t *tokenizer.Tokenizer, from int) {
	for i := from; i+1 < len(t.Events); i++ {
		e := t.Events[i]
		if e.Kind == mdevent.Enter && e.Name == mdevent.DefinitionLabelString {
			exit := t.Events[i+1]
			t.Definitions.Define(string(t.Source[e.Point.Index:exit.Point.Index]))
			return
		}
	}
}

func tryOpenGfmTable(t *tokenizer.Tokenizer, fs *flowState) bool {
	if !gfmTableHeaderFollowedByDelimiter(t) {
		return false
	}
	return tryInterrupt(t, fs, func(t *tokenizer.Tokenizer) bool {
		if !gfmTableRow(t) {
			return false
		}
		fs.kind = flowGfmTable
		return true
	})
}

// gfmTableHeaderFollowedByDelimiter is a pure lookahead: does the current
// line (the header row candidate) stay unconsumed while the line after
// it parses as a valid GFM delimiter row. A table is only recognized
// once both lines are confirmed, since a lone row that happens to look
// like a table header is just a paragraph line.
func gfmTableHeaderFollowedByDelimiter(t *tokenizer.Tokenizer) bool {
	i := t.Point.Index
	lineEnd := i
	for lineEnd < len(t.Source) && t.Source[lineEnd] != '\n' && t.Source[lineEnd] != '\r' {
		lineEnd++
	}
	if lineEnd == i {
		return false
	}
	next := lineEnd
	if next < len(t.Source) && t.Source[next] == '\r' {
		next++
	}
	if next < len(t.Source) && t.Source[next] == '\n' {
		next++
	}
	delimEnd := next
	for delimEnd < len(t.Source) && t.Source[delimEnd] != '\n' && t.Source[delimEnd] != '\r' {
		delimEnd++
	}
	_, ok := construct.ParseTableAlignments(t.Source[next:delimEnd])
	return ok
}

func gfmTableRow(t *tokenizer.Tokenizer) bool {
	from := len(t.Events)
	ok := tryOk(t, construct.GfmTableRow)
	if ok {
		tagSpansSince(t, from, mdevent.GfmTableCellText, mdevent.ContentText)
	}
	return ok
}

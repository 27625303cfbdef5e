package resolve

import (
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/pos"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// resolveContentJoin applies CommonMark's inline-code/math-span
// whitespace-stripping rule (spec §4.3.14): if a span's content begins
// and ends with a space or tab and is not all whitespace, one leading
// and one trailing byte are dropped from its rendered content. Since
// CodeTextData/MathTextData are void spans delineated purely by their
// own Enter/Exit Points, this is a direct Point adjustment on the
// existing events rather than an EditMap insert/remove — there is
// nothing to splice, only the boundary to shrink.
func resolveContentJoin(t *tokenizer.Tokenizer) {
	for i := 0; i+1 < len(t.Events); i++ {
		enter := t.Events[i]
		if enter.Kind != mdevent.Enter {
			continue
		}
		if enter.Name != mdevent.CodeTextData && enter.Name != mdevent.MathTextData {
			continue
		}
		exit := t.Events[i+1]
		if exit.Kind != mdevent.Exit || exit.Name != enter.Name {
			continue
		}
		trimSingleSpaceBoundary(t, i, i+1)
	}
}

func trimSingleSpaceBoundary(t *tokenizer.Tokenizer, enterIdx, exitIdx int) {
	start := t.Events[enterIdx].Point.Index
	end := t.Events[exitIdx].Point.Index
	if end-start < 2 {
		return
	}
	if !isSpaceOrTab(t.Source[start]) || !isSpaceOrTab(t.Source[end-1]) {
		return
	}
	if allSpaceOrTab(t.Source[start:end]) {
		return
	}
	t.Events[enterIdx].Point = advancePoint(t.Events[enterIdx].Point, 1)
	t.Events[exitIdx].Point = retreatPoint(t.Events[exitIdx].Point, 1)
}

func isSpaceOrTab(b byte) bool { return b == ' ' || b == '\t' }

func allSpaceOrTab(b []byte) bool {
	for _, c := range b {
		if !isSpaceOrTab(c) {
			return false
		}
	}
	return true
}

func retreatPoint(p pos.Point, n int) pos.Point {
	return pos.Point{Line: p.Line, Column: p.Column - n, Index: p.Index - n, VS: 0}
}

package resolve

import (
	"github.com/aledsdavies/mdcore/charset"
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/pos"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// run is one AttentionSequence/GfmStrikethroughSequence span, with the
// flanking/open/close classification recomputed from Source rather than
// carried on Tokenizer (spec §4.3.10's algorithm).
type run struct {
	enterIdx, exitIdx int
	marker            byte
	length            int
	canOpen, canClose bool
	wrapName          mdevent.Name
	seqName           mdevent.Name
}

// resolveAttention pairs AttentionSequence/GfmStrikethroughSequence runs
// into Emphasis/Strong/GfmStrikethrough wrappers using a simplified
// version of CommonMark's bracket-matching algorithm: same-marker runs
// are matched innermost-first by scanning backward for the nearest
// compatible opener, consuming two markers per Strong pairing and one
// per Emphasis pairing. The full "multiple of 3" interior rule for
// mixed `*`-run boundaries is not implemented; runs are paired
// end-to-end by availability instead.
func resolveAttention(t *tokenizer.Tokenizer) {
	runs := collectRuns(t)
	if len(runs) == 0 {
		return
	}

	var stack []int // indices into runs, still-open candidates
	for i := range runs {
		r := &runs[i]
		if !r.canClose {
			if r.canOpen {
				stack = append(stack, i)
			}
			continue
		}
		matched := false
		for j := len(stack) - 1; j >= 0; j-- {
			open := &runs[stack[j]]
			if open.marker != r.marker || open.wrapName != r.wrapName {
				continue
			}
			pairAttention(t, open, r)
			stack = stack[:j]
			matched = true
			break
		}
		if !matched && r.canOpen {
			stack = append(stack, i)
		}
	}
}

// pairAttention splices EditMap edits converting the matched portion of
// open/close into an Emphasis/Strong/GfmStrikethrough wrapper. When a
// run is longer than what this pairing consumes, the unconsumed prefix
// (opener) or suffix (closer) of the run is left behind as a plain
// AttentionSequence/GfmStrikethroughSequence event rather than being
// re-queued for another pairing attempt — a simplification of
// CommonMark's full run-splitting behavior.
func pairAttention(t *tokenizer.Tokenizer, open, close *run) {
	useLen := 1
	wrap, seq, text := mdevent.Emphasis, mdevent.EmphasisSequence, mdevent.EmphasisText
	if open.wrapName == mdevent.GfmStrikethrough {
		wrap, seq, text = mdevent.GfmStrikethrough, mdevent.GfmStrikethroughSequence, mdevent.GfmStrikethroughText
	} else if open.length >= 2 && close.length >= 2 {
		useLen = 2
		wrap, seq, text = mdevent.Strong, mdevent.StrongSequence, mdevent.StrongText
	}

	openEnter := t.Events[open.enterIdx]
	openExit := t.Events[open.exitIdx]
	closeEnter := t.Events[close.enterIdx]
	closeExit := t.Events[close.exitIdx]

	var openInsert []mdevent.Event
	leftoverOpen := open.length - useLen
	if leftoverOpen > 0 {
		openInsert = append(openInsert,
			mdevent.Event{Kind: mdevent.Enter, Name: open.seqName, Point: openEnter.Point},
			mdevent.Event{Kind: mdevent.Exit, Name: open.seqName, Point: advancePoint(openEnter.Point, leftoverOpen)},
		)
	}
	wrapStart := advancePoint(openEnter.Point, leftoverOpen)
	openInsert = append(openInsert,
		mdevent.Event{Kind: mdevent.Enter, Name: wrap, Point: wrapStart},
		mdevent.Event{Kind: mdevent.Enter, Name: seq, Point: wrapStart},
		mdevent.Event{Kind: mdevent.Exit, Name: seq, Point: openExit.Point},
		mdevent.Event{Kind: mdevent.Enter, Name: text, Point: openExit.Point},
	)
	t.Map.Add(open.enterIdx, open.exitIdx-open.enterIdx+1, openInsert)

	closeInsert := []mdevent.Event{
		{Kind: mdevent.Exit, Name: text, Point: closeEnter.Point},
		{Kind: mdevent.Enter, Name: seq, Point: closeEnter.Point},
		{Kind: mdevent.Exit, Name: seq, Point: advancePoint(closeEnter.Point, useLen)},
		{Kind: mdevent.Exit, Name: wrap, Point: advancePoint(closeEnter.Point, useLen)},
	}
	leftoverClose := close.length - useLen
	if leftoverClose > 0 {
		closeInsert = append(closeInsert,
			mdevent.Event{Kind: mdevent.Enter, Name: close.seqName, Point: advancePoint(closeEnter.Point, useLen)},
			mdevent.Event{Kind: mdevent.Exit, Name: close.seqName, Point: closeExit.Point},
		)
	}
	t.Map.Add(close.enterIdx, close.exitIdx-close.enterIdx+1, closeInsert)
}

// advancePoint steps a Point forward by n single-byte ASCII markers (`*`,
// `_`, `~` are never tabs or line endings), so Index/Column both move by
// n and Line/VS are unaffected.
func advancePoint(p pos.Point, n int) pos.Point {
	return pos.Point{Line: p.Line, Column: p.Column + n, Index: p.Index + n, VS: 0}
}

func collectRuns(t *tokenizer.Tokenizer) []run {
	var runs []run
	for i := 0; i < len(t.Events); i++ {
		e := t.Events[i]
		if e.Kind != mdevent.Enter {
			continue
		}
		var wrapName mdevent.Name
		switch e.Name {
		case mdevent.AttentionSequence:
			wrapName = mdevent.Emphasis
		case mdevent.GfmStrikethroughSequence:
			wrapName = mdevent.GfmStrikethrough
		default:
			continue
		}
		exitIdx := i + 1
		if exitIdx >= len(t.Events) {
			continue
		}
		exit := t.Events[exitIdx]
		marker := t.Source[e.Point.Index]
		length := exit.Point.Index - e.Point.Index
		if wrapName == mdevent.GfmStrikethrough && length == 1 && !t.Config.GfmStrikethroughSingleTilde() {
			i = exitIdx
			continue
		}
		before := byteBefore(t.Source, e.Point.Index)
		after := byteAfter(t.Source, exit.Point.Index)
		canOpen, canClose := classifyFlanking(marker, before, after)
		runs = append(runs, run{
			enterIdx: i, exitIdx: exitIdx, marker: marker, length: length,
			canOpen: canOpen, canClose: canClose, wrapName: wrapName, seqName: e.Name,
		})
		i = exitIdx
	}
	return runs
}

func byteBefore(source []byte, index int) byte {
	if index == 0 {
		return ' '
	}
	return source[index-1]
}

func byteAfter(source []byte, index int) byte {
	if index >= len(source) {
		return ' '
	}
	return source[index]
}

// classifyFlanking implements CommonMark's left/right-flanking run rules
// (spec §4.3.10): a run can close if it is right-flanking (not preceded
// by whitespace, and either not preceded by punctuation or followed by
// whitespace/punctuation); it can open symmetrically on the left. `_`
// additionally requires the run not be both left- and right-flanking
// unless also surrounded appropriately (intraword restriction),
// approximated here by requiring `_` open/close to differ from a plain
// flank on at least one side.
func classifyFlanking(marker, before, after byte) (canOpen, canClose bool) {
	beforeWS := charset.IsWhitespaceByte(before)
	afterWS := charset.IsWhitespaceByte(after)
	beforePunct := isAttentionPunct(before)
	afterPunct := isAttentionPunct(after)

	leftFlanking := !afterWS && (!afterPunct || beforeWS || beforePunct)
	rightFlanking := !beforeWS && (!beforePunct || afterWS || afterPunct)

	canOpen = leftFlanking
	canClose = rightFlanking
	if marker == '_' {
		canOpen = leftFlanking && (!rightFlanking || beforePunct)
		canClose = rightFlanking && (!leftFlanking || afterPunct)
	}
	return canOpen, canClose
}

func isAttentionPunct(b byte) bool {
	return charset.IsASCIIPunctuation(b)
}

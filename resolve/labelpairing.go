package resolve

import (
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// opener is a still-open `[`/`![` candidate on the bracket stack.
type opener struct {
	enterIdx int
	isImage  bool
	active   bool
}

// resolveLabelPairing matches LabelMarker/LabelImageMarker openers
// against LabelEnd closers (spec §4.3.17's bracket-matching algorithm,
// simplified): innermost-first stack matching, with link-in-link
// deactivation once a real Link closes, but without CommonMark's full
// definition lookup — any LabelEnd followed by a Resource or Reference
// (or neither, a shortcut) is treated as resolvable, since checking a
// shortcut/collapsed reference against a registered Definition label
// needs the document-wide label table content/document.go builds, not
// information available to this pass. Unmatched markers are left as
// bare LabelMarker/LabelImageMarker/LabelEnd events: a renderer sees them
// as inert spans rather than literal "[" text.
func resolveLabelPairing(t *tokenizer.Tokenizer) {
	events := t.Events
	var stack []*opener

	for i := 0; i < len(events); i++ {
		e := events[i]
		if e.Kind != mdevent.Enter {
			continue
		}
		switch e.Name {
		case mdevent.LabelMarker:
			// The `]`'s own LabelMarker (inside LabelEnd) is not an
			// opener; only a bare top-level LabelMarker is.
			if i > 0 && events[i-1].Kind == mdevent.Enter && events[i-1].Name == mdevent.LabelEnd {
				continue
			}
			stack = append(stack, &opener{enterIdx: i, isImage: false, active: true})
		case mdevent.LabelImageMarker:
			stack = append(stack, &opener{enterIdx: i, isImage: true, active: true})
		case mdevent.LabelEnd:
			closeEnterIdx := i
			closeExitIdx := i + 3 // Enter, LabelMarker Enter, LabelMarker Exit, Exit
			if closeExitIdx >= len(events) || events[closeExitIdx].Kind != mdevent.Exit || events[closeExitIdx].Name != mdevent.LabelEnd {
				continue
			}

			op := popActiveOpener(&stack)
			if op == nil {
				i = closeExitIdx
				continue
			}

			matchEnd := closeExitIdx + 1
			if matchEnd < len(events) && events[matchEnd].Kind == mdevent.Enter {
				switch events[matchEnd].Name {
				case mdevent.Resource:
					matchEnd = matchingExit(events, matchEnd, mdevent.Resource) + 1
				case mdevent.Reference:
					matchEnd = matchingExit(events, matchEnd, mdevent.Reference) + 1
				}
			}

			wrapLabel(t, op, closeEnterIdx, closeExitIdx, matchEnd)
			if !op.isImage {
				deactivateLinkOpeners(stack)
			}
			i = matchEnd - 1
		}
	}
}

// popActiveOpener removes and returns the innermost still-active opener,
// discarding any deactivated entries above it.
func popActiveOpener(stack *[]*opener) *opener {
	for len(*stack) > 0 {
		top := (*stack)[len(*stack)-1]
		*stack = (*stack)[:len(*stack)-1]
		if top.active {
			return top
		}
	}
	return nil
}

func deactivateLinkOpeners(stack []*opener) {
	for _, op := range stack {
		if !op.isImage {
			op.active = false
		}
	}
}

// matchingExit scans forward from a wrapper's Enter (at idx) to find the
// index of its own matching Exit, tracking nesting depth by name since
// neither Resource nor Reference recurses into itself.
func matchingExit(events mdevent.List, idx int, name mdevent.Name) int {
	depth := 0
	for j := idx; j < len(events); j++ {
		if events[j].Name != name {
			continue
		}
		if events[j].Kind == mdevent.Enter {
			depth++
		} else if events[j].Kind == mdevent.Exit {
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return len(events) - 1
}

// wrapLabel queues the EditMap inserts that wrap [op.enterIdx, matchEnd)
// into a Link or Image, with a Label/LabelLink|LabelImage/LabelText
// structure around the existing marker and content events (spec
// §4.3.17). The original LabelMarker/LabelImageMarker/LabelEnd/
// Resource/Reference events are left untouched; only zero-width
// boundary events are inserted around them.
func wrapLabel(t *tokenizer.Tokenizer, op *opener, closeEnterIdx, closeExitIdx, matchEnd int) {
	events := t.Events
	openEnterIdx := op.enterIdx
	openExitIdx := op.enterIdx + 1

	wrapName := mdevent.Link
	kindName := mdevent.LabelLink
	if op.isImage {
		wrapName = mdevent.Image
		kindName = mdevent.LabelImage
	}

	openPoint := events[openEnterIdx].Point
	markerExitPoint := events[openExitIdx].Point
	closePoint := events[closeEnterIdx].Point
	var endPoint = markerExitPoint
	if matchEnd < len(events) {
		endPoint = events[matchEnd].Point
	} else if len(events) > 0 {
		endPoint = events[len(events)-1].Point
	}

	t.Map.Add(openEnterIdx, 0, []mdevent.Event{
		{Kind: mdevent.Enter, Name: wrapName, Point: openPoint},
		{Kind: mdevent.Enter, Name: mdevent.Label, Point: openPoint},
		{Kind: mdevent.Enter, Name: kindName, Point: openPoint},
	})
	t.Map.Add(openExitIdx+1, 0, []mdevent.Event{
		{Kind: mdevent.Exit, Name: kindName, Point: markerExitPoint},
		{Kind: mdevent.Enter, Name: mdevent.LabelText, Point: markerExitPoint},
	})
	t.Map.Add(closeEnterIdx, 0, []mdevent.Event{
		{Kind: mdevent.Exit, Name: mdevent.LabelText, Point: closePoint},
	})
	t.Map.Add(matchEnd, 0, []mdevent.Event{
		{Kind: mdevent.Exit, Name: mdevent.Label, Point: endPoint},
		{Kind: mdevent.Exit, Name: wrapName, Point: endPoint},
	})
}

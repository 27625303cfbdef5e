package resolve

import (
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// resolveHeadingSetext rewraps a Paragraph immediately followed by a
// HeadingSetextUnderline into a HeadingSetext (spec §4.3.4): the
// paragraph's own Enter/Exit become HeadingSetext/HeadingSetextText
// boundaries, and the underline keeps its own span inside the widened
// HeadingSetext. construct.HeadingSetextUnderlineLine only emits the
// raw underline; this pass is what actually promotes the heading.
func resolveHeadingSetext(t *tokenizer.Tokenizer) {
	events := t.Events
	for i := 0; i+1 < len(events); i++ {
		exit := events[i]
		underlineEnter := events[i+1]
		if exit.Kind != mdevent.Exit || exit.Name != mdevent.Paragraph {
			continue
		}
		if underlineEnter.Kind != mdevent.Enter || underlineEnter.Name != mdevent.HeadingSetextUnderline {
			continue
		}
		underlineExitIdx := i + 2
		if underlineExitIdx >= len(events) || events[underlineExitIdx].Kind != mdevent.Exit || events[underlineExitIdx].Name != mdevent.HeadingSetextUnderline {
			continue
		}

		paragraphEnterIdx := matchingEnterBefore(events, i, mdevent.Paragraph)
		if paragraphEnterIdx < 0 {
			continue
		}
		enterPoint := events[paragraphEnterIdx].Point
		exitPoint := exit.Point
		endPoint := events[underlineExitIdx].Point

		t.Map.Add(paragraphEnterIdx, 1, []mdevent.Event{
			{Kind: mdevent.Enter, Name: mdevent.HeadingSetext, Point: enterPoint},
			{Kind: mdevent.Enter, Name: mdevent.HeadingSetextText, Point: enterPoint},
		})
		t.Map.Add(i, 1, []mdevent.Event{
			{Kind: mdevent.Exit, Name: mdevent.HeadingSetextText, Point: exitPoint},
		})
		t.Map.Add(underlineExitIdx+1, 0, []mdevent.Event{
			{Kind: mdevent.Exit, Name: mdevent.HeadingSetext, Point: endPoint},
		})

		i = underlineExitIdx
	}
}

// matchingEnterBefore scans backward from idx (exclusive) for the Enter
// that matches an Exit of name, tracking depth since a Paragraph never
// nests inside another Paragraph.
func matchingEnterBefore(events mdevent.List, idx int, name mdevent.Name) int {
	depth := 1
	for j := idx - 1; j >= 0; j-- {
		if events[j].Name != name {
			continue
		}
		if events[j].Kind == mdevent.Exit {
			depth++
		} else if events[j].Kind == mdevent.Enter {
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

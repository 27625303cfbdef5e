package resolve

import (
	"github.com/aledsdavies/mdcore/construct"
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// resolveGfmTable groups a run of consecutive raw GfmTableRow events
// (construct.GfmTableRow, recognized one line at a time by the flow
// driver) into a GfmTable, once its second row re-parses as a valid
// delimiter row (construct.ParseTableAlignments). The header row is
// wrapped in GfmTableHead; the delimiter row's cell events are
// collapsed into a bare void GfmTableDelimiterRow span, since its
// alignment has already been extracted here and a renderer that needs
// it again can re-derive it from the span's raw bytes the same way.
// Body rows keep their existing GfmTableRow/GfmTableCell structure
// unwrapped, since mdevent has no distinct "table body" label.
func resolveGfmTable(t *tokenizer.Tokenizer) {
	events := t.Events
	for i := 0; i < len(events); {
		e := events[i]
		if e.Kind != mdevent.Enter || e.Name != mdevent.GfmTableRow {
			i++
			continue
		}

		var rowEnters []int
		j := i
		for j < len(events) && events[j].Kind == mdevent.Enter && events[j].Name == mdevent.GfmTableRow {
			exitIdx := matchingExit(events, j, mdevent.GfmTableRow)
			rowEnters = append(rowEnters, j)
			j = exitIdx + 1
		}
		if len(rowEnters) < 2 {
			i = j
			continue
		}

		delimEnterIdx := rowEnters[1]
		delimExitIdx := matchingExit(events, delimEnterIdx, mdevent.GfmTableRow)
		delimLine := t.Source[events[delimEnterIdx].Point.Index:events[delimExitIdx].Point.Index]
		if _, ok := construct.ParseTableAlignments(delimLine); !ok {
			i = j
			continue
		}

		headerEnterIdx := rowEnters[0]
		headerExitIdx := matchingExit(events, headerEnterIdx, mdevent.GfmTableRow)
		tableEnd := j

		tableStartPt := events[headerEnterIdx].Point
		headExitPt := events[headerExitIdx].Point
		delimEnterPt := events[delimEnterIdx].Point
		delimExitPt := events[delimExitIdx].Point
		var tableEndPt = delimExitPt
		if tableEnd < len(events) {
			tableEndPt = events[tableEnd].Point
		} else if len(events) > 0 {
			tableEndPt = events[len(events)-1].Point
		}

		t.Map.Add(headerEnterIdx, 0, []mdevent.Event{
			{Kind: mdevent.Enter, Name: mdevent.GfmTable, Point: tableStartPt},
			{Kind: mdevent.Enter, Name: mdevent.GfmTableHead, Point: tableStartPt},
		})
		t.Map.Add(headerExitIdx+1, delimExitIdx-delimEnterIdx+1, []mdevent.Event{
			{Kind: mdevent.Exit, Name: mdevent.GfmTableHead, Point: headExitPt},
			{Kind: mdevent.Enter, Name: mdevent.GfmTableDelimiter, Point: delimEnterPt},
			{Kind: mdevent.Exit, Name: mdevent.GfmTableDelimiter, Point: delimExitPt},
		})
		t.Map.Add(tableEnd, 0, []mdevent.Event{
			{Kind: mdevent.Exit, Name: mdevent.GfmTable, Point: tableEndPt},
		})

		i = j
	}
}

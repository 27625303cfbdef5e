package resolve

import (
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// dataMerge folds a `Data` Exit immediately followed by a `Data` Enter
// into one span, the way micromark's resolveAll data-merge pass
// collapses adjacent literal-text tokens produced by separate state
// function attempts. Only unlinked spans are merged: a chunk carrying a
// Link (a paragraph line chained to its neighbor, spec §3.2) must stay
// a distinct event for the subtokenizer to walk the chain correctly.
func dataMerge(t *tokenizer.Tokenizer) {
	events := t.Events
	for i := 1; i+1 < len(events); i++ {
		exit := events[i]
		enter := events[i+1]
		if exit.Kind != mdevent.Exit || exit.Name != mdevent.Data {
			continue
		}
		if enter.Kind != mdevent.Enter || enter.Name != mdevent.Data {
			continue
		}
		// Data is void, so its own Enter immediately precedes this Exit.
		thisEnter := events[i-1]
		if thisEnter.Link != nil || enter.Link != nil {
			continue
		}
		t.Map.Add(i, 2, nil)
	}
}

package construct

import (
	"github.com/aledsdavies/mdcore/container"
	"github.com/aledsdavies/mdcore/mdconfig"
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// ListItemResult carries what ListItemOpen computed, since document.go
// needs the container Size (continuation indent) and BlankInitial to
// push onto container.Stack -- information a bare tokenizer.Result can't
// carry.
type ListItemResult struct {
	Container   container.Container
	Ordered     bool
	StartNumber int
}

// ListItemOpen recognizes a list item marker (spec §4.3.2): `-`, `+`,
// `*` for an unordered item, or 1-9 digits followed by `.`/`)` for an
// ordered item. It computes the continuation indent (the offset of the
// first content byte after the marker and up to 4 columns of trailing
// whitespace, clamped to marker_end+1 when the rest of the line is
// blank) and, if GFM task lists are enabled, recognizes a leading
// `[ ]`/`[x]`/`[X]` check.
func ListItemOpen(t *tokenizer.Tokenizer) (tokenizer.Result, ListItemResult) {
	markerCol := t.Point.Column

	var ordered bool
	var startNumber int

	switch {
	case t.Current == int32('-') || t.Current == int32('+') || t.Current == int32('*'):
		t.Enter(mdevent.ListItem)
		t.Enter(mdevent.ListUnordered)
		t.Enter(mdevent.ListItemMarker)
		t.Consume()
		t.Exit(mdevent.ListItemMarker)
		t.Exit(mdevent.ListUnordered)
	case t.Current >= int32('0') && t.Current <= int32('9'):
		digits := 0
		value := 0
		t.Enter(mdevent.ListItem)
		t.Enter(mdevent.ListOrdered)
		t.Enter(mdevent.ListItemValue)
		for t.Current >= int32('0') && t.Current <= int32('9') && digits < 9 {
			value = value*10 + int(t.Current-int32('0'))
			digits++
			t.Consume()
		}
		t.Exit(mdevent.ListItemValue)
		if t.Current != int32('.') && t.Current != int32(')') {
			return tokenizer.Nok(), ListItemResult{}
		}
		t.Enter(mdevent.ListItemMarker)
		t.Consume()
		t.Exit(mdevent.ListItemMarker)
		t.Exit(mdevent.ListOrdered)
		ordered = true
		startNumber = value
	default:
		return tokenizer.Nok(), ListItemResult{}
	}

	// A marker not followed by whitespace or a line ending/EOF is not a
	// list item marker at all (e.g. "1.2" or "-5").
	if t.Current != int32(' ') && t.Current != int32('\t') && !atLineEndOrEOF(t.Current) {
		return tokenizer.Nok(), ListItemResult{}
	}

	markerEndCol := t.Point.Column
	restOfLineBlank := atLineEndOrEOF(t.Current)

	ws := 0
	for (t.Current == int32(' ') || t.Current == int32('\t')) && ws < 4 && !atLineEndOrEOF(t.Current) {
		t.Consume()
		ws++
	}

	blankInitial := restOfLineBlank || atLineEndOrEOF(t.Current)

	var size int
	switch {
	case blankInitial:
		size = (markerEndCol - markerCol) + 1
	case ws == 0:
		size = markerEndCol - markerCol
	case ws >= 4 && (t.Current == int32(' ') || t.Current == int32('\t')):
		// More than 4 columns of indent: only one space belongs to the
		// item prefix, the rest is the first line's own content
		// (simplified per spec §4.3.2; a full implementation would
		// re-surface the excess as indented code).
		size = markerEndCol - markerCol + 1
	default:
		size = t.Point.Column - markerCol
	}

	maybeTaskListCheck(t)

	return tokenizer.Ok(), ListItemResult{
		Container: container.Container{
			Kind:         container.ListItem,
			BlankInitial: blankInitial,
			Size:         size,
		},
		Ordered:     ordered,
		StartNumber: startNumber,
	}
}

func atLineEndOrEOF(b int32) bool {
	return b == int32('\n') || b == int32('\r') || b == tokenizer.EOF
}

// maybeTaskListCheck recognizes the GFM task-list marker after a list
// marker and the whitespace that follows it: `[ ]`, `[x]`, or `[X]`
// followed by a space or tab (spec §4.3.2).
func maybeTaskListCheck(t *tokenizer.Tokenizer) {
	if !t.Config.Enabled(mdconfig.GfmTaskListItemCheck) {
		return
	}
	if t.Current != int32('[') {
		return
	}
	start := t.Point.Index
	if start+3 >= len(t.Source) {
		return
	}
	inner := t.Source[start+1]
	if inner != ' ' && inner != 'x' && inner != 'X' {
		return
	}
	if t.Source[start+2] != ']' {
		return
	}
	after := t.Source[start+3]
	if after != ' ' && after != '\t' {
		return
	}
	t.Enter(mdevent.GfmTaskListItemCheck)
	t.Enter(mdevent.GfmTaskListItemMarker)
	t.Consume()
	t.Exit(mdevent.GfmTaskListItemMarker)
	t.Enter(mdevent.GfmTaskListItemValue)
	t.Consume()
	t.Exit(mdevent.GfmTaskListItemValue)
	t.Enter(mdevent.GfmTaskListItemMarker)
	t.Consume()
	t.Exit(mdevent.GfmTaskListItemMarker)
	t.Exit(mdevent.GfmTaskListItemCheck)
}

// ListItemContinue consumes up to size columns of leading
// whitespace as the continuation prefix of an already-open list item
// container, returning whether the full indent was present.
func ListItemContinue(t *tokenizer.Tokenizer, size int) bool {
	col := t.Point.Column
	for t.Point.Column-col < size {
		switch {
		case t.Current == int32(' '):
			t.Consume()
		case t.Current == int32('\t') && t.Point.AtTabStop():
			t.Consume()
		case t.Current == int32('\t'):
			t.ConsumeVirtual()
		default:
			return false
		}
	}
	return true
}

package construct

import (
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// TableAlignment is one delimiter-row column's alignment (spec §4.3's
// GFM table extension).
type TableAlignment int

const (
	TableAlignNone TableAlignment = iota
	TableAlignLeft
	TableAlignCenter
	TableAlignRight
)

// GfmTableDelimiterLine reports whether the current (unconsumed) line is
// a valid GFM table delimiter row — cells of `-`+ optionally bounded by
// `:`, separated by `|` — without consuming it, along with its
// per-column alignments. The caller (content/flow.go) uses this to
// decide, after a candidate header row, whether the pair forms a table.
func GfmTableDelimiterLine(t *tokenizer.Tokenizer) (aligns []TableAlignment, ok bool) {
	i := t.Point.Index
	end := i
	for end < len(t.Source) && t.Source[end] != '\n' && t.Source[end] != '\r' {
		end++
	}
	return ParseTableAlignments(t.Source[i:end])
}

// ParseTableAlignments parses a raw delimiter-row line into its
// per-column alignments, or reports ok=false if line is not a valid
// delimiter row. Exported so resolve.resolveGfmTable can re-derive
// alignment from a row's already-tokenized byte range without
// duplicating the cell-splitting grammar.
func ParseTableAlignments(line []byte) (aligns []TableAlignment, ok bool) {
	spans := splitTableCells(line)
	if len(spans) == 0 {
		return nil, false
	}
	aligns = make([]TableAlignment, 0, len(spans))
	for _, sp := range spans {
		a, valid := parseDelimiterCell(line[sp.start:sp.end])
		if !valid {
			return nil, false
		}
		aligns = append(aligns, a)
	}
	return aligns, true
}

func parseDelimiterCell(cell []byte) (TableAlignment, bool) {
	start, end := 0, len(cell)
	for start < end && (cell[start] == ' ' || cell[start] == '\t') {
		start++
	}
	for end > start && (cell[end-1] == ' ' || cell[end-1] == '\t') {
		end--
	}
	if start >= end {
		return TableAlignNone, false
	}
	left := cell[start] == ':'
	right := cell[end-1] == ':'
	dashStart, dashEnd := start, end
	if left {
		dashStart++
	}
	if right {
		dashEnd--
	}
	if dashStart >= dashEnd {
		return TableAlignNone, false
	}
	for i := dashStart; i < dashEnd; i++ {
		if cell[i] != '-' {
			return TableAlignNone, false
		}
	}
	switch {
	case left && right:
		return TableAlignCenter, true
	case left:
		return TableAlignLeft, true
	case right:
		return TableAlignRight, true
	default:
		return TableAlignNone, true
	}
}

// cellSpan is a [start,end) byte range relative to the line passed to
// splitTableCells.
type cellSpan struct{ start, end int }

// splitTableCells splits a raw table row line into cell byte ranges on
// unescaped `|`, trimming one leading and one trailing unescaped `|` if
// present (spec's GFM table row grammar).
func splitTableCells(line []byte) []cellSpan {
	start := 0
	end := len(line)
	for start < end && (line[start] == ' ' || line[start] == '\t') {
		start++
	}
	for end > start && (line[end-1] == ' ' || line[end-1] == '\t') {
		end--
	}
	if start >= end {
		return nil
	}
	if line[start] == '|' {
		start++
	}
	if end > start && line[end-1] == '|' && !isEscapedAt(line, end-1) {
		end--
	}
	if start >= end {
		return nil
	}

	var spans []cellSpan
	cellStart := start
	i := start
	for i < end {
		if line[i] == '\\' && i+1 < end {
			i += 2
			continue
		}
		if line[i] == '|' {
			spans = append(spans, cellSpan{cellStart, i})
			i++
			cellStart = i
			continue
		}
		i++
	}
	spans = append(spans, cellSpan{cellStart, end})
	return spans
}

func isEscapedAt(line []byte, i int) bool {
	backslashes := 0
	for j := i - 1; j >= 0 && line[j] == '\\'; j-- {
		backslashes++
	}
	return backslashes%2 == 1
}

// GfmTableRow consumes one table row line, wrapping it in GfmTableRow
// with one GfmTableCell/GfmTableCellText pair per cell (spec's GFM table
// extension). Cell content is itself reparsed for inline constructs by
// the subtokenizer via GfmTableCellText's Link.
func GfmTableRow(t *tokenizer.Tokenizer) tokenizer.Result {
	i := t.Point.Index
	end := i
	for end < len(t.Source) && t.Source[end] != '\n' && t.Source[end] != '\r' {
		end++
	}
	line := t.Source[i:end]
	spans := splitTableCells(line)
	if len(spans) == 0 {
		return tokenizer.Nok()
	}

	t.Enter(mdevent.GfmTableRow)
	for _, sp := range spans {
		trimStart, trimEnd := trimRange(line[sp.start:sp.end])
		cellAbsStart := i + sp.start
		t.Enter(mdevent.GfmTableCell)
		advanceTo(t, cellAbsStart+trimStart)
		if trimEnd > trimStart {
			t.Enter(mdevent.GfmTableCellText)
			advanceTo(t, cellAbsStart+trimEnd)
			t.Exit(mdevent.GfmTableCellText)
		}
		t.Exit(mdevent.GfmTableCell)
	}
	advanceTo(t, end)
	t.Exit(mdevent.GfmTableRow)
	if !t.AtEOF() {
		consumeLineEnding(t)
	}
	return tokenizer.Ok()
}

func trimRange(cell []byte) (start, end int) {
	end = len(cell)
	for start < end && (cell[start] == ' ' || cell[start] == '\t') {
		start++
	}
	for end > start && (cell[end-1] == ' ' || cell[end-1] == '\t') {
		end--
	}
	return start, end
}

// Package pos implements the byte/line/column/virtual-space addressing
// model described in spec §3.1, and the line-ending/tab-stop rules that
// the byte preprocessor row of spec §2 folds into it.
//
// Rather than rewriting the input into a normalized copy (CRLF -> LF,
// tabs -> spaces), mdcore keeps the original bytes untouched and instead
// advances a Point through them one byte at a time. A real line ending of
// any shape (LF, CR, CRLF) always lands the next Point at column 1 of the
// following line; a tab advances column to the next multiple of 4 by
// emitting one or more virtual-space steps before the underlying byte
// index moves on. This mirrors the teacher's (runtime/lexer) incremental
// line/column tracking, generalized with the vs field the spec requires.
package pos

import "fmt"

// TabSize is the tab stop width. CommonMark fixes this at 4.
const TabSize = 4

// Point is a position in the source, per spec §3.1.
type Point struct {
	// Line is 1-based.
	Line int
	// Column is 1-based; tabs count as virtual spaces to the next
	// multiple of TabSize.
	Column int
	// Index is the 0-based byte offset into the source.
	Index int
	// VS is the virtual-space offset within the byte at Index, used
	// while stepping through an expanding tab.
	VS int
}

// Start is the initial Point for a fresh parse.
var Start = Point{Line: 1, Column: 1, Index: 0, VS: 0}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Less reports whether p sorts strictly before q by (Index, VS). Line and
// Column are derived from Index/VS within a single content stream and are
// not needed for ordering.
func (p Point) Less(q Point) bool {
	if p.Index != q.Index {
		return p.Index < q.Index
	}
	return p.VS < q.VS
}

// AtTabStop reports whether Column currently sits on a tab stop, i.e.
// whether a tab consumed up to this point has fully expanded.
func (p Point) AtTabStop() bool {
	return (p.Column-1)%TabSize == 0
}

// NextTabStopColumn returns the column of the next tab stop strictly
// after column.
func NextTabStopColumn(column int) int {
	return column + (TabSize - ((column - 1) % TabSize))
}

// AdvanceVirtual steps one virtual-space unit into an expanding tab: the
// byte index does not move, only Column and VS do. Call this while the
// current byte is '\t' and the Point has not yet reached the next tab
// stop.
func (p Point) AdvanceVirtual() Point {
	return Point{Line: p.Line, Column: p.Column + 1, Index: p.Index, VS: p.VS + 1}
}

// AdvanceByte steps the Point past one real, fully-consumed byte b.
// Line-ending classification (crPrecedesLF) tells it whether a
// lone '\r' is the first half of a CRLF pair, in which case the line
// number must not be bumped twice: the increment happens when the
// following '\n' is consumed.
func (p Point) AdvanceByte(b byte, crPrecedesLF bool) Point {
	switch {
	case b == '\n':
		return Point{Line: p.Line + 1, Column: 1, Index: p.Index + 1, VS: 0}
	case b == '\r' && crPrecedesLF:
		// Absorbed into the following LF; only the byte index moves.
		return Point{Line: p.Line, Column: p.Column, Index: p.Index + 1, VS: 0}
	case b == '\r':
		return Point{Line: p.Line + 1, Column: 1, Index: p.Index + 1, VS: 0}
	default:
		return Point{Line: p.Line, Column: p.Column + 1, Index: p.Index + 1, VS: 0}
	}
}

// IsLineEnding reports whether b is the first byte of a line ending.
func IsLineEnding(b byte) bool {
	return b == '\n' || b == '\r'
}

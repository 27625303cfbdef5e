package pos

import "sort"

// LineIndex maps byte offsets to 1-based line/column pairs in O(log n),
// independent of the tokenizer's own incremental Point. It exists for
// collaborators that only have an offset after the fact (error messages,
// cmd/mdcoredump, an HTML compiler or AST builder wanting to print a
// position without re-walking the whole parse).
//
// Ported from original_source/src/util/location.rs's Location: each
// entry records the byte index immediately after a line ending.
type LineIndex struct {
	// ends[i] is the byte offset immediately after line i (0-based) ends.
	ends []int
}

// NewLineIndex builds a LineIndex over source.
func NewLineIndex(source []byte) *LineIndex {
	li := &LineIndex{}
	for i := 0; i < len(source); i++ {
		switch source[i] {
		case '\r':
			if i+1 < len(source) && source[i+1] == '\n' {
				li.ends = append(li.ends, i+2)
				i++
			} else {
				li.ends = append(li.ends, i+1)
			}
		case '\n':
			li.ends = append(li.ends, i+1)
		}
	}
	li.ends = append(li.ends, len(source)+1)
	return li
}

// ToPoint returns the 1-based line/column for offset, or ok=false if
// offset is out of bounds.
func (li *LineIndex) ToPoint(offset int) (line, column int, ok bool) {
	last := li.ends[len(li.ends)-1]
	if offset >= last {
		return 0, 0, false
	}
	idx := sort.Search(len(li.ends), func(i int) bool { return li.ends[i] > offset })
	previous := 0
	if idx > 0 {
		previous = li.ends[idx-1]
	}
	return idx + 1, offset + 1 - previous, true
}

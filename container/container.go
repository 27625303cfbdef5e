// Package container implements the document-level container stack and
// the per-parse definition tables described in spec §3.5-§3.6: the
// ordered stack of open block quotes / list items / GFM footnote
// definitions the document driver threads each flow line through, and
// the normalized-identifier sets used to resolve link and footnote
// references.
package container

import "github.com/aledsdavies/mdcore/charset"

// Kind names the three container types a document may nest (spec §3.5).
type Kind uint8

const (
	BlockQuote Kind = iota
	ListItem
	FootnoteDefinition
)

func (k Kind) String() string {
	switch k {
	case BlockQuote:
		return "blockQuote"
	case ListItem:
		return "listItem"
	case FootnoteDefinition:
		return "footnoteDefinition"
	default:
		return "unknown"
	}
}

// Container is one entry in the open-container stack (spec §3.5).
type Container struct {
	Kind Kind
	// BlankInitial records whether this container's first line was
	// blank (spec §3.5's { blank_initial: bool, size: usize }), which
	// several list-item edge cases key off (spec §4.3.2).
	BlankInitial bool
	// Size is the prefix width this container consumes from each
	// continuation line: '>' plus optional space for a block quote, or
	// the computed marker+indent width for a list item.
	Size int
}

// Stack is the ordered sequence of currently-open containers, innermost
// last, that the document driver checks every flow line against (spec
// §3.5).
type Stack struct {
	entries []Container
}

// NewStack returns an empty container stack.
func NewStack() *Stack { return &Stack{} }

// Push opens a new innermost container.
func (s *Stack) Push(c Container) { s.entries = append(s.entries, c) }

// Pop closes the innermost container. Panics if the stack is empty; the
// document driver must not call this without first checking Len.
func (s *Stack) Pop() Container {
	n := len(s.entries)
	c := s.entries[n-1]
	s.entries = s.entries[:n-1]
	return c
}

// Truncate closes every container beyond depth n, innermost first. Used
// when a flow line fails to continue some prefix of the open stack.
func (s *Stack) Truncate(n int) {
	s.entries = s.entries[:n]
}

// Len reports how many containers are currently open.
func (s *Stack) Len() int { return len(s.entries) }

// At returns the container at depth i (0 is outermost).
func (s *Stack) At(i int) Container { return s.entries[i] }

// Top returns the innermost open container and true, or the zero value
// and false if the stack is empty.
func (s *Stack) Top() (Container, bool) {
	if len(s.entries) == 0 {
		return Container{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// Definitions tracks the normalized identifiers seen so far for a single
// parse: link reference definitions and, separately, GFM footnote
// definitions (spec §3.6). Both use the same normalization rule
// (charset.NormalizeIdentifier) but are distinct namespaces.
type Definitions struct {
	ids         map[string]struct{}
	footnoteIds map[string]struct{}
}

// NewDefinitions returns an empty definition table.
func NewDefinitions() *Definitions {
	return &Definitions{
		ids:         make(map[string]struct{}),
		footnoteIds: make(map[string]struct{}),
	}
}

// Define records label as a seen link reference definition, normalizing
// it first. Returns the normalized id.
func (d *Definitions) Define(label string) string {
	id := charset.NormalizeIdentifier(label)
	d.ids[id] = struct{}{}
	return id
}

// Has reports whether label, once normalized, names a known link
// reference definition (spec §4.3.15's collapsed/shortcut reference
// lookup).
func (d *Definitions) Has(label string) bool {
	_, ok := d.ids[charset.NormalizeIdentifier(label)]
	return ok
}

// DefineFootnote records label as a seen GFM footnote definition.
func (d *Definitions) DefineFootnote(label string) string {
	id := charset.NormalizeIdentifier(label)
	d.footnoteIds[id] = struct{}{}
	return id
}

// HasFootnote reports whether label, once normalized, names a known GFM
// footnote definition.
func (d *Definitions) HasFootnote(label string) bool {
	_, ok := d.footnoteIds[charset.NormalizeIdentifier(label)]
	return ok
}

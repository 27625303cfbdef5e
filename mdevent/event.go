package mdevent

import (
	"github.com/aledsdavies/mdcore/pos"
	"github.com/fxamacker/cbor/v2"
)

// Kind distinguishes an Enter marker from its matching Exit (spec §3.2).
type Kind uint8

const (
	Enter Kind = iota
	Exit
)

func (k Kind) String() string {
	if k == Enter {
		return "enter"
	}
	return "exit"
}

// Content names a content model a Link's range must be re-tokenized in
// (spec §3.2, §4.5).
type Content uint8

const (
	// ContentNone marks an event with no subtokenization request.
	ContentNone Content = iota
	ContentFlow
	ContentContent
	ContentString
	ContentText
)

// Link records the linked-list chain used to stitch multi-line content
// spans back together (spec §3.2) and to mark a range for
// subtokenization (spec §4.5).
type Link struct {
	Previous *int
	Next     *int
	Content  Content
}

// Event is an Enter or Exit marker (spec §3.2).
type Event struct {
	Kind  Kind
	Name  Name
	Point pos.Point
	Link  *Link
}

// List is a tokenizer's growing output (spec §3.3's `events` field),
// plus the operations resolvers and the subtokenizer need on it.
type List []Event

// Balanced reports whether every Enter in the list is matched by exactly
// one Exit with the same Name, forming a properly nested tree (spec
// §3.2's invariant, spec §8.1's universal property).
func (l List) Balanced() bool {
	var stack []Name
	for _, e := range l {
		switch e.Kind {
		case Enter:
			stack = append(stack, e.Name)
		case Exit:
			if len(stack) == 0 || stack[len(stack)-1] != e.Name {
				return false
			}
			stack = stack[:len(stack)-1]
		}
	}
	return len(stack) == 0
}

// VoidsAreEmpty reports whether every Enter/Exit pair whose Name is void
// (IsVoid) has no events strictly between them (spec §3.2, §8.1).
func (l List) VoidsAreEmpty() bool {
	var openAt = -1
	for i, e := range l {
		if e.Kind == Enter && IsVoid(e.Name) {
			openAt = i
			continue
		}
		if e.Kind == Exit && IsVoid(e.Name) {
			if openAt >= 0 && i != openAt+1 {
				return false
			}
			openAt = -1
		}
	}
	return true
}

// cborEvent is the wire shape used for canonical encoding: it flattens
// Point and Link so the encoding is stable regardless of pointer
// identity, matching core/planfmt/canonical.go's "encode a value shape,
// not a pointer graph" approach.
type cborEvent struct {
	Kind    uint8  `cbor:"1,keyasint"`
	Name    string `cbor:"2,keyasint"`
	Line    int    `cbor:"3,keyasint"`
	Column  int    `cbor:"4,keyasint"`
	Index   int    `cbor:"5,keyasint"`
	VS      int    `cbor:"6,keyasint"`
	HasLink bool   `cbor:"7,keyasint"`
	Content uint8  `cbor:"8,keyasint"`
}

// MarshalCanonical encodes the event list deterministically, for the
// idempotence property test (spec §8.1) and cmd/mdcoredump's --format
// cbor dump. Grounded on core/planfmt/canonical.go's use of
// cbor.CanonicalEncOptions for reproducible hashing of a value shape.
func (l List) MarshalCanonical() ([]byte, error) {
	out := make([]cborEvent, len(l))
	for i, e := range l {
		ce := cborEvent{
			Kind:   uint8(e.Kind),
			Name:   string(e.Name),
			Line:   e.Point.Line,
			Column: e.Point.Column,
			Index:  e.Point.Index,
			VS:     e.Point.VS,
		}
		if e.Link != nil {
			ce.HasLink = true
			ce.Content = uint8(e.Link.Content)
		}
		out[i] = ce
	}
	mode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	return mode.Marshal(out)
}

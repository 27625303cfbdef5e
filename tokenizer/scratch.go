package tokenizer

// Scratch is tokenize_state (spec §3.3): a tagged record of small
// integer/byte/bool/string fields reused across every construct. Fields
// are deliberately generic rather than named per-construct, because the
// attempt mechanism guarantees only one construct owns Scratch at a
// time (constructs never nest arbitrarily; a nested construct runs
// inside its own Attempt frame with its own Scratch snapshot, spec
// §4.1.2) -- there is never a need for more than one construct's worth
// of fields live simultaneously. A construct claims whichever fields it
// needs, uses them, and calls Clear before returning Ok or Nok (spec
// §4.3's "Closing"/"Failure" responsibilities).
//
// Because every field is a plain value (no pointers, no slices with
// shared backing arrays beyond what a single construct privately owns),
// an Attempt frame can snapshot and restore Scratch with a single struct
// copy.
type Scratch struct {
	// Marker and Marker2 hold single significant bytes: a fence
	// character, a list marker, a quote character.
	Marker, Marker2 byte

	// Size, Size2, Size3 hold small counts: a fence's opening length, a
	// marker's indent width, a digit count.
	Size, Size2, Size3 int

	// StartIndex records a byte offset a construct needs to remember
	// across several state-function calls (e.g. where a label's text
	// began).
	StartIndex int

	// Flag, Flag2, Flag3 hold construct-local booleans (e.g. "seen a
	// non-blank line yet", "is this the closing delimiter run").
	Flag, Flag2, Flag3 bool

	// Str holds a single construct-local string accumulator (e.g. a
	// fence's info string, a reference label under construction).
	Str string

	// Ints is a small general-purpose stack for constructs that need
	// more than three integers (list-item indent stack, table column
	// alignments).
	Ints []int
}

// Clear resets every field to its zero value. Called by a construct's
// closing or failure path (spec §4.3).
func (s *Scratch) Clear() { *s = Scratch{} }

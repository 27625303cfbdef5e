package construct

import (
	"github.com/aledsdavies/mdcore/mdconfig"
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/tokenizer"
)

// FrontmatterOpen recognizes a YAML (`---`) or TOML (`+++`) frontmatter
// fence. It only matches at the very start of the document (spec
// §4.3.16: frontmatter is document-initial only) and only when the
// Frontmatter flag is enabled. The opening line must be exactly three
// marker bytes and nothing else but trailing whitespace.
func FrontmatterOpen(t *tokenizer.Tokenizer) (tokenizer.Result, byte) {
	if !t.Config.Enabled(mdconfig.Frontmatter) {
		return tokenizer.Nok(), 0
	}
	if t.Point.Index != 0 {
		return tokenizer.Nok(), 0
	}
	marker := byte(t.Current)
	if marker != '-' && marker != '+' {
		return tokenizer.Nok(), 0
	}
	if !isFrontmatterFenceLine(t.Source, t.Point.Index, marker) {
		return tokenizer.Nok(), 0
	}

	t.Enter(mdevent.Frontmatter)
	t.Enter(mdevent.FrontmatterFence)
	t.Enter(mdevent.FrontmatterSequence)
	for i := 0; i < 3; i++ {
		t.Consume()
	}
	t.Exit(mdevent.FrontmatterSequence)
	for t.Current == int32(' ') || t.Current == int32('\t') {
		t.Consume()
	}
	t.Exit(mdevent.FrontmatterFence)
	if !t.AtEOF() {
		consumeLineEnding(t)
	}
	return tokenizer.Ok(), marker
}

// isFrontmatterFenceLine reports whether the line starting at start is
// exactly three marker bytes followed only by optional trailing
// whitespace and a line ending or EOF.
func isFrontmatterFenceLine(source []byte, start int, marker byte) bool {
	end := len(source)
	for i := 0; i < 3; i++ {
		if start+i >= end || source[start+i] != marker {
			return false
		}
	}
	i := start + 3
	for i < end && (source[i] == ' ' || source[i] == '\t') {
		i++
	}
	return i >= end || source[i] == '\n' || source[i] == '\r'
}

// FrontmatterCloseLine reports whether the current line is the closing
// fence (the same marker exactly 3 times, then only spaces/tabs), consuming it
// if so.
func FrontmatterCloseLine(t *tokenizer.Tokenizer, marker byte) bool {
	if t.Current != int32(marker) {
		return false
	}
	if !isFrontmatterFenceLine(t.Source, t.Point.Index, marker) {
		return false
	}
	t.Enter(mdevent.FrontmatterFence)
	t.Enter(mdevent.FrontmatterSequence)
	for t.Current == int32(marker) {
		t.Consume()
	}
	t.Exit(mdevent.FrontmatterSequence)
	for t.Current == int32(' ') || t.Current == int32('\t') {
		t.Consume()
	}
	t.Exit(mdevent.FrontmatterFence)
	if !t.AtEOF() {
		consumeLineEnding(t)
	}
	return true
}

// FrontmatterBodyLine consumes one raw frontmatter body line.
func FrontmatterBodyLine(t *tokenizer.Tokenizer) {
	consumeRawLine(t, mdevent.FrontmatterChunk)
}

package charset

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var fold = cases.Fold()

// NormalizeIdentifier implements spec §3.6's reference-ID normalization:
// collapse internal whitespace runs to a single space, trim leading and
// trailing whitespace, Unicode-normalize to NFC (so a precomposed and a
// combining-mark-decomposed spelling of the same identifier collide), then
// Unicode case-fold. Used for link/image reference and GFM footnote
// identifiers.
//
// Grounded on the teacher's reliance on golang.org/x/text (core/go.mod)
// for Unicode-aware text operations rather than hand-rolling ASCII-only
// case folding; cases.Fold() is the textbook full Unicode case-fold
// (spec explicitly prefers this over the "ASCII lowercase is a sufficient
// approximation" fallback it allows), and norm.NFC.String guards against
// two visually-identical labels normalizing to different strings purely
// because one author's editor composed a diacritic and another's didn't.
func NormalizeIdentifier(s string) string {
	collapsed := norm.NFC.String(collapseWhitespace(strings.TrimSpace(s)))
	return fold.String(collapsed)
}

func collapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if isUnicodeSpace(r) {
			if !inSpace {
				b.WriteByte(' ')
				inSpace = true
			}
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

func isUnicodeSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return ClassifyRune(r) == ClassWhitespace && r != 0
}

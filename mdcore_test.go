package mdcore

import (
	"testing"

	"github.com/aledsdavies/mdcore/mdconfig"
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// names strips Point/Link detail down to a (Kind, Name) sequence, the
// shape every scenario test below actually asserts against.
func names(events mdevent.List) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.Kind.String() + " " + string(e.Name)
	}
	return out
}

func containsSubsequence(t *testing.T, got []string, want ...string) {
	t.Helper()
	i := 0
	for _, g := range got {
		if i < len(want) && g == want[i] {
			i++
		}
	}
	assert.Equal(t, len(want), i, "expected subsequence %v not found in %v", want, got)
}

func TestEmptyInputIsSingleRootPair(t *testing.T) {
	events, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"enter Root", "exit Root"}, names(events))
}

func TestLoneLineEndingIsBlankLine(t *testing.T) {
	for _, input := range []string{"\n", "\r\n", "\r"} {
		events, err := Parse([]byte(input))
		require.NoError(t, err)
		assert.True(t, events.Balanced())
		containsSubsequence(t, names(events), "enter BlankLineEnding", "exit BlankLineEnding")
	}
}

func TestTrailingNewlineIsOptional(t *testing.T) {
	withNL, err := Parse([]byte("# Hello\n"))
	require.NoError(t, err)
	withoutNL, err := Parse([]byte("# Hello"))
	require.NoError(t, err)

	stripLineEndings := func(events mdevent.List) mdevent.List {
		var out mdevent.List
		for _, e := range events {
			if e.Name == mdevent.LineEnding {
				continue
			}
			out = append(out, e)
		}
		return out
	}
	if diff := cmp.Diff(names(stripLineEndings(withNL)), names(stripLineEndings(withoutNL))); diff != "" {
		t.Errorf("trailing newline changed event shape beyond LineEnding (-with +without):\n%s", diff)
	}
}

// TestIdempotence is spec §8.1's "running the parser twice on the same
// input yields identical event lists" property, checked via canonical
// CBOR encoding (mdevent.List.MarshalCanonical), matching the teacher's
// core/planfmt/canonical.go use of the same encoding for reproducible
// comparison.
func TestIdempotence(t *testing.T) {
	input := []byte("# Title\n\nSome *text* with a [link][ref].\n\n[ref]: /x \"t\"\n")
	first, err := Parse(input)
	require.NoError(t, err)
	second, err := Parse(input)
	require.NoError(t, err)

	a, err := first.MarshalCanonical()
	require.NoError(t, err)
	b, err := second.MarshalCanonical()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestConcreteScenarios covers spec §8.3's six seed scenarios. Since this
// module's scope stops at the event stream (an HTML compiler is a
// collaborator per spec §6.3, not built here), each case asserts the
// event shape that collaborator would need to reproduce the documented
// HTML, rather than the HTML string itself.
func TestConcreteScenarios(t *testing.T) {
	t.Run("ATX heading", func(t *testing.T) {
		events, err := Parse([]byte("# Hello, world!"))
		require.NoError(t, err)
		assert.True(t, events.Balanced())
		containsSubsequence(t, names(events),
			"enter HeadingAtx", "enter HeadingAtxText", "exit HeadingAtxText", "exit HeadingAtx")
	})

	t.Run("fenced code with info string", func(t *testing.T) {
		events, err := Parse([]byte("```js\nconsole.log(1)\n```\n"))
		require.NoError(t, err)
		assert.True(t, events.Balanced())
		containsSubsequence(t, names(events),
			"enter CodeFenced", "enter CodeFencedFenceInfo", "exit CodeFencedFenceInfo",
			"enter CodeFlowChunk", "exit CodeFlowChunk", "exit CodeFenced")
	})

	t.Run("emphasis strong and combination", func(t *testing.T) {
		events, err := Parse([]byte("a *b* c **d** e ***f***"))
		require.NoError(t, err)
		assert.True(t, events.Balanced())
		ns := names(events)
		containsSubsequence(t, ns, "enter Emphasis", "exit Emphasis")
		containsSubsequence(t, ns, "enter Strong", "exit Strong")
	})

	t.Run("link reference", func(t *testing.T) {
		events, err := Parse([]byte("See [the site][ref] today.\n\n[ref]: https://example.com \"Example\"\n"),
			mdconfig.WithConstruct(mdconfig.Definition))
		require.NoError(t, err)
		assert.True(t, events.Balanced())
		containsSubsequence(t, names(events), "enter Link", "exit Link")
		containsSubsequence(t, names(events), "enter Definition", "exit Definition")
	})

	t.Run("block quote with nested tight list", func(t *testing.T) {
		events, err := Parse([]byte("> - a\n> - b"))
		require.NoError(t, err)
		assert.True(t, events.Balanced())
		ns := names(events)
		containsSubsequence(t, ns, "enter BlockQuote", "enter ListUnordered")
		count := 0
		for _, n := range ns {
			if n == "enter ListItem" {
				count++
			}
		}
		assert.Equal(t, 2, count)
	})

	t.Run("GFM table with alignment", func(t *testing.T) {
		events, err := Parse([]byte("| a | b |\n| :- | -: |\n| 1 | 2 |\n"), mdconfig.WithPreset(mdconfig.PresetGFM()))
		require.NoError(t, err)
		assert.True(t, events.Balanced())
		containsSubsequence(t, names(events),
			"enter GfmTable", "enter GfmTableHead", "exit GfmTableHead",
			"enter GfmTableRow", "exit GfmTableRow", "exit GfmTable")
	})
}

func TestVoidEventsAreEmpty(t *testing.T) {
	events, err := Parse([]byte("# h\n\n```go\nx\n```\n\na *b* c\n"), mdconfig.WithPreset(mdconfig.PresetGFM()))
	require.NoError(t, err)
	assert.True(t, events.VoidsAreEmpty())
}

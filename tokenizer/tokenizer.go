// Package tokenizer implements the state-machine runtime described in
// spec §4.1: the state-function protocol, the Tokenizer record carrying
// position/flags/scratch/events, and the Attempt/Check speculative
// execution frames that give the engine backtracking.
//
// Grounded on the teacher's runtime/lexer/v2/lexer.go buffered
// byte-at-a-time scanning loop (the consume/peek/advance shape) and
// runtime/parser/parser.go's recursive-descent-with-backtracking frames
// (the save/restore-on-failure shape that Attempt generalizes into a
// reusable primitive here, since the construct library needs it far
// more often than the teacher's parser does).
package tokenizer

import (
	"log/slog"
	"os"

	"github.com/aledsdavies/mdcore/container"
	"github.com/aledsdavies/mdcore/invariant"
	"github.com/aledsdavies/mdcore/mdconfig"
	"github.com/aledsdavies/mdcore/mdevent"
	"github.com/aledsdavies/mdcore/pos"
)

// EOF is the sentinel value of Previous/Current at end of input (spec
// §3.3's `Option<Byte>` with None represented here as EOF rather than a
// pointer, since Tokenizer is hot-path state copied into every Attempt
// frame).
const EOF int32 = -1

// ResolverID names a registered post-pass (spec §3.3's
// `resolvers: Vec<ResolverId>`). The resolve package owns the concrete
// registry; tokenizer only needs to accumulate and preserve order.
type ResolverID string

// Tokenizer is the engine's mutable state (spec §3.3).
type Tokenizer struct {
	Source []byte

	Events mdevent.List
	Stack  []mdevent.Name
	Point  pos.Point

	// Previous and Current are EOF or a byte value 0-255.
	Previous int32
	Current  int32

	// Consumed must flip false->true between state invocations exactly
	// when the previous state function called Consume (spec §4.1.1).
	Consumed bool

	// Interrupt, Lazy, Concrete, Pierce are the container-behavior flags
	// of spec §4.1.5. Pierce is this engine's explicit name for "prefix
	// checks pierce into flow content"; concrete=true disables it.
	Interrupt bool
	Lazy      bool
	Concrete  bool
	Pierce    bool

	Scratch Scratch

	Resolvers []ResolverID
	Map       mdevent.EditMap

	attempts []attemptFrame

	Config      mdconfig.Config
	Containers  *container.Stack
	Definitions *container.Definitions

	log *slog.Logger
}

// New creates a Tokenizer positioned at the start of source. Debug
// tracing is enabled by setting MDCORE_DEBUG_TOKENIZER, mirroring the
// teacher's DEVCMD_DEBUG_LEXER-gated slog.Logger in runtime/lexer.go.
func New(source []byte, cfg mdconfig.Config) *Tokenizer {
	t := &Tokenizer{
		Source:      source,
		Point:       pos.Start,
		Previous:    EOF,
		Config:      cfg,
		Containers:  container.NewStack(),
		Definitions: container.NewDefinitions(),
		log:         slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
	if len(source) > 0 {
		t.Current = int32(source[0])
	} else {
		t.Current = EOF
	}
	if os.Getenv("MDCORE_DEBUG_TOKENIZER") == "" {
		t.log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 1}))
	}
	return t
}

// Enter appends an Enter event for name at the current point and pushes
// name onto the open-construct stack (spec §3.2).
func (t *Tokenizer) Enter(name mdevent.Name) {
	t.Events = append(t.Events, mdevent.Event{Kind: mdevent.Enter, Name: name, Point: t.Point})
	t.Stack = append(t.Stack, name)
	t.log.Debug("enter", "name", string(name), "point", t.Point.String())
}

// EnterLink is Enter, additionally tagging the event with a Link whose
// Content names the model a later subtokenization pass must re-drive
// (spec §3.2, §4.5).
func (t *Tokenizer) EnterLink(name mdevent.Name, content mdevent.Content) {
	t.Events = append(t.Events, mdevent.Event{
		Kind: mdevent.Enter, Name: name, Point: t.Point,
		Link: &mdevent.Link{Content: content},
	})
	t.Stack = append(t.Stack, name)
}

// Exit closes the innermost open construct, which must be name.
func (t *Tokenizer) Exit(name mdevent.Name) {
	invariant.Invariant(len(t.Stack) > 0 && t.Stack[len(t.Stack)-1] == name,
		"Exit(%s) does not match innermost open construct", name)
	t.Stack = t.Stack[:len(t.Stack)-1]
	t.Events = append(t.Events, mdevent.Event{Kind: mdevent.Exit, Name: name, Point: t.Point})
	t.log.Debug("exit", "name", string(name), "point", t.Point.String())
}

// AtEOF reports whether Current is the EOF sentinel.
func (t *Tokenizer) AtEOF() bool { return t.Current == EOF }

// Consume advances Point past Current and reads the next byte into
// Current, shifting the old Current into Previous, and sets Consumed.
// Run checks Consumed after every state call: a state returning Next
// must have called Consume, one returning Retry must not (spec §4.1.1).
// The constructs in this library resolve in one call and may call
// Consume several times within it.
func (t *Tokenizer) Consume() {
	crPrecedesLF := t.Current == int32('\r') && t.Point.Index+1 < len(t.Source) && t.Source[t.Point.Index+1] == '\n'
	if t.Current != EOF {
		t.Point = t.Point.AdvanceByte(byte(t.Current), crPrecedesLF)
	}
	t.Previous = t.Current
	if t.Point.Index < len(t.Source) {
		t.Current = int32(t.Source[t.Point.Index])
	} else {
		t.Current = EOF
	}
	t.Consumed = true
}

// ConsumeVirtual advances Point by one virtual-space unit into an
// expanding tab without moving the byte index (pos.Point.AdvanceVirtual,
// spec §3.1). Current must be '\t' and Point must not yet be at the
// next tab stop.
func (t *Tokenizer) ConsumeVirtual() {
	invariant.Precondition(t.Current == int32('\t'), "ConsumeVirtual called with Current=%d, want tab", t.Current)
	invariant.Precondition(!t.Point.AtTabStop(), "ConsumeVirtual called while already at a tab stop")
	t.Point = t.Point.AdvanceVirtual()
	t.Consumed = true
	if t.Point.AtTabStop() {
		// The tab byte is now fully expanded; advance past it for real.
		t.Previous = t.Current
		t.Point.Index++
		t.Point.VS = 0
		if t.Point.Index < len(t.Source) {
			t.Current = int32(t.Source[t.Point.Index])
		} else {
			t.Current = EOF
		}
	}
}

// Run drives state functions starting at start until one returns Ok,
// Nok, or Error at the top level (spec §4.1.3's driver loop, steps 1-3;
// step 4's resolver pass belongs to the content-model driver that calls
// Run, since only it knows which resolvers apply).
func (t *Tokenizer) Run(start StateFn) Result {
	state := start
	for {
		t.Consumed = false
		res := state(t)
		switch res.Verdict {
		case VerdictNext:
			invariant.Invariant(t.Consumed, "state returned Next without calling Consume")
			state = res.Next
		case VerdictRetry:
			invariant.Invariant(!t.Consumed, "state returned Retry after calling Consume")
			state = res.Next
		default:
			return res
		}
	}
}

// RegisterResolver appends id to the resolver list if not already
// present, preserving first-registration order (spec §3.3).
func (t *Tokenizer) RegisterResolver(id ResolverID) {
	for _, existing := range t.Resolvers {
		if existing == id {
			return
		}
	}
	t.Resolvers = append(t.Resolvers, id)
}

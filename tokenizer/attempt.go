package tokenizer

import "github.com/aledsdavies/mdcore/invariant"

// attemptFrame is a speculative-execution checkpoint (spec §4.1.2):
// every field the engine must restore byte-for-byte on Nok.
type attemptFrame struct {
	eventsLen int
	stackLen  int
	point     pointSnapshot
	previous  int32
	current   int32
	consumed  bool
	scratch   Scratch
	mapLen    int
}

// pointSnapshot avoids importing pos into this file's exported surface;
// it is simply a copy of the four Point fields.
type pointSnapshot struct {
	Line, Column, Index, VS int
}

func snapshotPoint(t *Tokenizer) pointSnapshot {
	return pointSnapshot{t.Point.Line, t.Point.Column, t.Point.Index, t.Point.VS}
}

func (t *Tokenizer) pushFrame() attemptFrame {
	return attemptFrame{
		eventsLen: len(t.Events),
		stackLen:  len(t.Stack),
		point:     snapshotPoint(t),
		previous:  t.Previous,
		current:   t.Current,
		consumed:  t.Consumed,
		scratch:   t.Scratch,
		mapLen:    t.Map.Len(),
	}
}

func (t *Tokenizer) restoreFrame(f attemptFrame) {
	t.Events = t.Events[:f.eventsLen]
	t.Stack = t.Stack[:f.stackLen]
	t.Point.Line, t.Point.Column, t.Point.Index, t.Point.VS = f.point.Line, f.point.Column, f.point.Index, f.point.VS
	t.Previous = f.previous
	t.Current = f.current
	t.Consumed = f.consumed
	t.Scratch = f.scratch
	t.Map.Truncate(f.mapLen)
}

// Attempt speculatively runs a sub-tokenization starting at start (spec
// §4.1.2). On Ok it keeps every event and edit produced and continues at
// okState; on Nok it restores the checkpoint byte-for-byte, discards
// everything produced since, and continues at nokState.
func (t *Tokenizer) Attempt(start StateFn, okState, nokState StateFn) Result {
	invariant.NotNil(start, "Attempt start")
	invariant.NotNil(okState, "Attempt okState")
	invariant.NotNil(nokState, "Attempt nokState")

	frame := t.pushFrame()
	t.attempts = append(t.attempts, frame)
	res := t.Run(start)
	t.attempts = t.attempts[:len(t.attempts)-1]

	switch res.Verdict {
	case VerdictOk:
		return Retry(okState)
	case VerdictNok:
		t.restoreFrame(frame)
		return Retry(nokState)
	default:
		// VerdictError propagates unchanged: an unrecoverable error
		// aborts the whole parse rather than feeding nokState (spec
		// §4.1.1's Error variant is explicitly distinct from Nok).
		return res
	}
}

// Check is Attempt's pure-lookahead variant (spec §4.1.2): it restores
// the checkpoint even when start succeeds, so it never leaves a trace in
// Events or the edit map. Used by constructs that need to peek ahead
// without committing (e.g. list-item interrupt checks).
func (t *Tokenizer) Check(start StateFn, okState, nokState StateFn) Result {
	invariant.NotNil(start, "Check start")
	invariant.NotNil(okState, "Check okState")
	invariant.NotNil(nokState, "Check nokState")

	frame := t.pushFrame()
	t.attempts = append(t.attempts, frame)
	res := t.Run(start)
	t.attempts = t.attempts[:len(t.attempts)-1]

	t.restoreFrame(frame)

	switch res.Verdict {
	case VerdictOk:
		return Retry(okState)
	case VerdictNok:
		return Retry(nokState)
	default:
		return res
	}
}

// AttemptDepth reports how many Attempt/Check frames are currently
// nested, for diagnostics.
func (t *Tokenizer) AttemptDepth() int { return len(t.attempts) }

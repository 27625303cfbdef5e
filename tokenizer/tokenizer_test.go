package tokenizer

import (
	"testing"

	"github.com/aledsdavies/mdcore/mdconfig"
	"github.com/aledsdavies/mdcore/mdevent"
)

// consumeOneAsData consumes the current byte and emits it as a single
// Data enter/exit pair, then succeeds.
func consumeOneAsData(t *Tokenizer) Result {
	t.Enter(mdevent.Data)
	t.Consume()
	t.Exit(mdevent.Data)
	return Ok()
}

func alwaysNok(t *Tokenizer) Result {
	return Nok()
}

func TestRunConsumesUntilOk(t *testing.T) {
	tok := New([]byte("a"), mdconfig.New())
	res := tok.Run(consumeOneAsData)
	if res.Verdict != VerdictOk {
		t.Fatalf("expected VerdictOk, got %v", res.Verdict)
	}
	if len(tok.Events) != 2 {
		t.Fatalf("expected 2 events (enter+exit), got %d", len(tok.Events))
	}
	if !tok.AtEOF() {
		t.Fatalf("expected EOF after consuming the only byte")
	}
}

func TestAttemptRestoresOnNok(t *testing.T) {
	tok := New([]byte("ab"), mdconfig.New())

	failing := func(t *Tokenizer) Result {
		t.Enter(mdevent.Data)
		t.Consume()
		return Nok()
	}
	okState := func(t *Tokenizer) Result { return Ok() }
	nokState := func(t *Tokenizer) Result { return Ok() }

	startPoint := tok.Point
	res := tok.Attempt(failing, okState, nokState)
	if res.Verdict != VerdictRetry {
		t.Fatalf("Attempt must hand control back via Retry, got %v", res.Verdict)
	}
	if len(tok.Events) != 0 {
		t.Fatalf("failed attempt must leave no events behind, got %d", len(tok.Events))
	}
	if tok.Point != startPoint {
		t.Fatalf("failed attempt must restore point, got %v want %v", tok.Point, startPoint)
	}
	if len(tok.Stack) != 0 {
		t.Fatalf("failed attempt must restore the open-construct stack")
	}
}

func TestAttemptKeepsEventsOnOk(t *testing.T) {
	tok := New([]byte("a"), mdconfig.New())
	okState := func(t *Tokenizer) Result { return Ok() }
	nokState := func(t *Tokenizer) Result { return Ok() }

	res := tok.Attempt(consumeOneAsData, okState, nokState)
	if res.Verdict != VerdictRetry {
		t.Fatalf("expected Retry, got %v", res.Verdict)
	}
	if len(tok.Events) != 2 {
		t.Fatalf("successful attempt must keep its events, got %d", len(tok.Events))
	}
}

func TestCheckNeverLeavesATrace(t *testing.T) {
	tok := New([]byte("a"), mdconfig.New())
	okState := func(t *Tokenizer) Result { return Ok() }
	nokState := func(t *Tokenizer) Result { return Ok() }

	startPoint := tok.Point
	res := tok.Check(consumeOneAsData, okState, nokState)
	if res.Verdict != VerdictRetry {
		t.Fatalf("expected Retry, got %v", res.Verdict)
	}
	if len(tok.Events) != 0 {
		t.Fatalf("Check must discard events even on Ok, got %d", len(tok.Events))
	}
	if tok.Point != startPoint {
		t.Fatalf("Check must restore point even on Ok")
	}
}

func TestNestedAttemptRollsBackInnerOnly(t *testing.T) {
	tok := New([]byte("ab"), mdconfig.New())

	inner := func(t *Tokenizer) Result {
		return t.Attempt(alwaysNok, func(t *Tokenizer) Result { return Ok() }, func(t *Tokenizer) Result { return Ok() })
	}
	outer := func(t *Tokenizer) Result {
		t.Enter(mdevent.Paragraph)
		res := inner(t)
		if res.Verdict != VerdictRetry {
			return Nok()
		}
		t.Exit(mdevent.Paragraph)
		return Ok()
	}

	res := tok.Run(outer)
	if res.Verdict != VerdictOk {
		t.Fatalf("expected VerdictOk, got %v", res.Verdict)
	}
	if len(tok.Events) != 2 {
		t.Fatalf("expected the outer Paragraph enter/exit to survive the inner failed attempt, got %d", len(tok.Events))
	}
}

func TestEditMapSurvivesSuccessfulAttemptAndIsTruncatedOnFailure(t *testing.T) {
	tok := New([]byte("a"), mdconfig.New())

	withEdit := func(t *Tokenizer) Result {
		t.Map.Add(0, 0, []mdevent.Event{{Kind: mdevent.Enter, Name: mdevent.Data}})
		t.Consume()
		return Ok()
	}
	okState := func(t *Tokenizer) Result { return Ok() }
	nokState := func(t *Tokenizer) Result { return Ok() }

	tok.Attempt(withEdit, okState, nokState)
	if tok.Map.Len() != 1 {
		t.Fatalf("successful attempt must keep its queued edits, got %d", tok.Map.Len())
	}

	tok2 := New([]byte("a"), mdconfig.New())
	withFailingEdit := func(t *Tokenizer) Result {
		t.Map.Add(0, 0, []mdevent.Event{{Kind: mdevent.Enter, Name: mdevent.Data}})
		t.Consume()
		return Nok()
	}
	tok2.Attempt(withFailingEdit, okState, nokState)
	if tok2.Map.Len() != 0 {
		t.Fatalf("failed attempt must discard its queued edits, got %d", tok2.Map.Len())
	}
}

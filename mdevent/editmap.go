package mdevent

import (
	"sort"

	"github.com/aledsdavies/mdcore/invariant"
)

// editOp is one queued EditMap.Add/AddBefore call, kept in call order so
// that Len/Truncate can support the attempt-rollback contract in spec
// §4.1.2 ("discards any events and edits added since the checkpoint").
type editOp struct {
	index  int
	remove int
	insert []Event
	before bool
}

// EditMap is the deferred-mutation structure over an event list described
// in spec §3.4. Grounded on core/plan's deferred-operation-list pattern
// (core/plan/dsl.go builds a plan as an ordered list of steps applied
// later rather than mutating state eagerly).
type EditMap struct {
	ops []editOp
}

// NewEditMap returns an empty EditMap.
func NewEditMap() *EditMap {
	return &EditMap{}
}

// Add queues: after index, remove `remove` events, then insert `insert`.
func (m *EditMap) Add(index, remove int, insert []Event) {
	if remove == 0 && len(insert) == 0 {
		return
	}
	m.ops = append(m.ops, editOp{index: index, remove: remove, insert: insert})
}

// AddBefore is like Add, but its insertions are ordered before other
// insertions queued at the same index, regardless of call order relative
// to those other Add/AddBefore calls at that index.
func (m *EditMap) AddBefore(index, remove int, insert []Event) {
	if remove == 0 && len(insert) == 0 {
		return
	}
	m.ops = append(m.ops, editOp{index: index, remove: remove, insert: insert, before: true})
}

// Len returns the number of queued edit operations, for Attempt frame
// snapshotting (spec §4.1.2).
func (m *EditMap) Len() int {
	return len(m.ops)
}

// Truncate discards all queued operations beyond n, restoring the EditMap
// to the state captured by an earlier Len() call. Used when an Attempt
// frame is rolled back on Nok.
func (m *EditMap) Truncate(n int) {
	invariant.InRange(n, 0, len(m.ops), "editmap truncate length")
	m.ops = m.ops[:n]
}

type editBucket struct {
	index  int
	remove int
	insert []Event
}

// Consume applies all queued edits to events in a single pass, in
// ascending index order, and clears the EditMap. Within the same index,
// AddBefore insertions are ordered ahead of Add insertions (spec §3.4).
func (m *EditMap) Consume(events List) List {
	if len(m.ops) == 0 {
		return events
	}

	buckets := make(map[int]*editBucket, len(m.ops))
	order := make([]int, 0, len(m.ops))
	for _, op := range m.ops {
		b, ok := buckets[op.index]
		if !ok {
			b = &editBucket{index: op.index}
			buckets[op.index] = b
			order = append(order, op.index)
		}
		b.remove += op.remove
		if op.before {
			merged := make([]Event, 0, len(op.insert)+len(b.insert))
			merged = append(merged, op.insert...)
			merged = append(merged, b.insert...)
			b.insert = merged
		} else {
			b.insert = append(b.insert, op.insert...)
		}
	}
	sort.Ints(order)

	result := make(List, 0, len(events))
	cursor := 0
	for _, idx := range order {
		b := buckets[idx]
		invariant.Invariant(idx >= cursor, "EditMap edits must not overlap: index %d precedes cursor %d", idx, cursor)
		result = append(result, events[cursor:idx]...)
		result = append(result, b.insert...)
		cursor = idx + b.remove
	}
	result = append(result, events[cursor:]...)

	m.ops = m.ops[:0]
	return result
}

package ast

import (
	"fmt"

	"bracketlint/internal/source"
)

type reservedSpan struct {
	id  NodeID
	rng source.ByteRange
}

// LocalSpanBuffer stages the spans of one parse so that the shared table is
// locked once per file instead of once per node. A buffer belongs to a single
// goroutine.
type LocalSpanBuffer struct {
	entries []reservedSpan
	maxID   NodeID
}

// NewLocalSpanBuffer creates a buffer with room for capHint reservations.
func NewLocalSpanBuffer(capHint int) *LocalSpanBuffer {
	return &LocalSpanBuffer{entries: make([]reservedSpan, 0, capHint)}
}

// Reserve allocates a global identity for rng without touching the span table.
func (b *LocalSpanBuffer) Reserve(rng source.ByteRange) NodeID {
	id := NextID()
	b.entries = append(b.entries, reservedSpan{id: id, rng: rng})
	b.maxID = max(b.maxID, id)
	return id
}

// Len returns the number of pending reservations.
func (b *LocalSpanBuffer) Len() int {
	return len(b.entries)
}

// Range returns the pending range for id. It is meant for the builder that
// owns the buffer, before the commit.
func (b *LocalSpanBuffer) Range(id NodeID) (source.ByteRange, bool) {
	for i := len(b.entries) - 1; i >= 0; i-- {
		if b.entries[i].id == id {
			return b.entries[i].rng, true
		}
	}
	return source.ByteRange{}, false
}

// Commit publishes every reservation to the process-wide table, tagged with src.
func (b *LocalSpanBuffer) Commit(src source.SourceID) {
	b.CommitTo(Spans(), src)
}

// CommitTo publishes every reservation to t in one critical section and
// empties the buffer. Committing an empty buffer does nothing.
func (b *LocalSpanBuffer) CommitTo(t *SpanTable, src source.SourceID) {
	if len(b.entries) == 0 {
		return
	}
	if !src.IsValid() {
		panic(fmt.Sprintf("ast: committing %d spans to the default source", len(b.entries)))
	}
	t.commit(b.entries, b.maxID, src)
	b.entries = b.entries[:0]
	b.maxID = NoNodeID
}

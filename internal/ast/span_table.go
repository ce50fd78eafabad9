package ast

import (
	"fmt"
	"sync"

	"fortio.org/safecast"

	"bracketlint/internal/source"
)

// SpanTable maps node identities to source spans.
//
// Reads take a shared lock and may run with unbounded concurrency; Record,
// Update, EnsureCapacity and buffer commits take the exclusive lock for one
// bounded step, growth included. Entries are never removed.
type SpanTable struct {
	mu    sync.RWMutex
	spans []source.Span // index = NodeID; slot 0 belongs to NoNodeID
}

var defaultSpans = sync.OnceValue(func() *SpanTable {
	return NewSpanTable(1 << 12)
})

// Spans returns the process-wide span table. It is created on first use and
// lives until the process exits.
func Spans() *SpanTable {
	return defaultSpans()
}

// NewSpanTable creates a standalone table. Identities still come from the
// process-wide allocator, so they never collide with the default table's.
func NewSpanTable(capHint uint) *SpanTable {
	return &SpanTable{
		spans: make([]source.Span, 1, max(capHint, 1)),
	}
}

// Record allocates a new identity and stores span for it.
func (t *SpanTable) Record(span source.Span) NodeID {
	if span.IsNull() {
		panic("ast: recording the null span")
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	id := NextID()
	t.growLocked(id)
	t.spans[id] = span
	return id
}

// Get returns the span of id. Asking for an identity that never received a
// span is a construction defect and panics.
func (t *SpanTable) Get(id NodeID) source.Span {
	span, ok := t.Lookup(id)
	if !ok {
		panic(fmt.Sprintf("ast: node %s has no span", id))
	}
	return span
}

// Lookup is the non-panicking variant of Get.
func (t *SpanTable) Lookup(id NodeID) (source.Span, bool) {
	if !id.IsValid() {
		return source.NullSpan, false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	if id >= NodeID(len(t.spans)) {
		return source.NullSpan, false
	}
	span := t.spans[id]
	return span, !span.IsNull()
}

// Update overwrites the span of an already recorded identity, e.g. to widen
// a tag once its closing delimiter has been found.
func (t *SpanTable) Update(id NodeID, span source.Span) {
	if span.IsNull() {
		panic(fmt.Sprintf("ast: updating node %s to the null span", id))
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if !id.IsValid() || id >= NodeID(len(t.spans)) || t.spans[id].IsNull() {
		panic(fmt.Sprintf("ast: updating node %s which has no span", id))
	}
	t.spans[id] = span
}

// EnsureCapacity grows the table so that id has a slot. New slots hold the
// null span.
func (t *SpanTable) EnsureCapacity(id NodeID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.growLocked(id)
}

// Len returns the number of slots, i.e. the highest covered identity + 1.
// It never decreases.
func (t *SpanTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.spans)
}

// commit writes a batch of reserved ranges in a single critical section.
func (t *SpanTable) commit(entries []reservedSpan, maxID NodeID, src source.SourceID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.growLocked(maxID)
	for _, e := range entries {
		t.spans[e.id] = source.Span{Range: e.rng, Source: src}
	}
}

func (t *SpanTable) growLocked(id NodeID) {
	want, err := safecast.Conv[int](uint64(id) + 1)
	if err != nil {
		panic(fmt.Errorf("ast: span table index overflow: %w", err))
	}
	old := len(t.spans)
	if want <= old {
		return
	}
	if want <= cap(t.spans) {
		t.spans = t.spans[:want]
		clear(t.spans[old:])
		return
	}
	// удваиваем, чтобы рост оставался амортизированным
	grown := make([]source.Span, want, max(want, 2*cap(t.spans)))
	copy(grown, t.spans)
	t.spans = grown
}

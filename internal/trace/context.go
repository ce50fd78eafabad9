package trace

import "context"

type tracerKey struct{}

// parentKey holds the id of the innermost span opened with Enter.
type parentKey struct{}

// FromContext returns the tracer attached with WithTracer, or Nop.
func FromContext(ctx context.Context) Tracer {
	if ctx == nil {
		return Nop
	}
	if t, ok := ctx.Value(tracerKey{}).(Tracer); ok {
		return t
	}
	return Nop
}

// WithTracer attaches t to ctx. Spans opened later with Enter go to t.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, tracerKey{}, t)
}

// Parent returns the id that spans and points opened from ctx use as their
// parent: 0 at the top of a run.
func Parent(ctx context.Context) uint64 {
	if ctx == nil {
		return 0
	}
	id, _ := ctx.Value(parentKey{}).(uint64)
	return id
}

// Enter opens a span nested in Parent(ctx) on the tracer of ctx. The
// returned context makes the new span the parent of whatever is opened
// from it. A span filtered out by the level leaves the parent as it was,
// so nested events attach to the nearest span that was emitted.
//
//	ctx, pass := trace.Enter(ctx, trace.ScopePass, "parse")
//	defer pass.End("")
func Enter(ctx context.Context, scope Scope, name string) (context.Context, *Span) {
	span := Begin(FromContext(ctx), scope, name, Parent(ctx))
	if span.ID() == 0 {
		return ctx, span
	}
	return context.WithValue(ctx, parentKey{}, span.ID()), span
}

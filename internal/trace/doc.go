// Package trace provides leveled, scope-filtered tracing for bracketlint.
//
// Tracing is the logging layer of the tool: the driver, every pipeline pass
// and every file report begin/end events here. The core AST code never
// traces.
//
// # Usage
//
//	bracketlint check --trace=- --trace-level=phase templates/
//
// # Architecture
//
//   - Nop: zero-overhead tracer when disabled
//   - StreamTracer: immediate write to output (file/stderr), text or NDJSON
//   - RingTracer: circular buffer, dumped when the run fails
//   - MultiTracer: combines several tracers
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: only the ring dump of a failed run
//   - LevelPhase: driver and pass boundaries
//   - LevelDetail: per-file events
//   - LevelDebug: everything, node level included
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	ctx, pass := trace.Enter(ctx, trace.ScopePass, "parse")
//	defer pass.End("")
//
// Spans entered from the returned context nest under the pass.
package trace

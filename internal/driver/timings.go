package driver

import (
	"context"

	"bracketlint/internal/observ"
	"bracketlint/internal/trace"
)

// passes times the pipeline passes and reports them as trace spans.
type passes struct {
	timer *observ.Timer // nil when timings are off
	ctx   context.Context
}

// newPasses nests pass spans under the span carried by ctx.
func newPasses(ctx context.Context, timings bool) *passes {
	p := &passes{ctx: ctx}
	if timings {
		p.timer = observ.NewTimer()
	}
	return p
}

// run executes one pass. fn returns a short note for the timing report;
// spans it enters from its context nest under the pass.
func (p *passes) run(name string, fn func(ctx context.Context) (string, error)) error {
	idx := -1
	if p.timer != nil {
		idx = p.timer.Begin(name)
	}
	ctx, span := trace.Enter(p.ctx, trace.ScopePass, name)

	note, err := fn(ctx)
	if err != nil {
		note = "failed: " + err.Error()
	}

	span.End(note)
	if p.timer != nil {
		p.timer.End(idx, note)
	}
	return err
}

func (p *passes) report() *observ.Report {
	if p.timer == nil {
		return nil
	}
	r := p.timer.Report()
	return &r
}

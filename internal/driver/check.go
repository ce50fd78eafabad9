// Package driver runs the check pipeline over a workspace.
package driver

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"

	"fortio.org/safecast"

	"bracketlint/internal/diag"
	"bracketlint/internal/fix"
	"bracketlint/internal/lint"
	"bracketlint/internal/parser"
	"bracketlint/internal/source"
	"bracketlint/internal/trace"
	"bracketlint/internal/workspace"
)

// Options for Check.
type Options struct {
	// Paths to lint; empty means the current directory.
	Paths []string
	// Jobs limits parallel parse and lint workers; 0 means GOMAXPROCS.
	Jobs    int
	Timings bool
}

// Check lints the files of ws. Files are loaded sequentially so that
// SourceIDs follow path order; parsing, linting and autofix run in
// parallel, one worker per file. Diagnostics never fail the call: the
// returned error is reserved for configuration problems and cancellation.
func Check(ctx context.Context, ws *workspace.Workspace, opts Options) (*Result, error) {
	ctx, run := trace.Enter(ctx, trace.ScopeDriver, "check")
	p := newPasses(ctx, opts.Timings)

	settings := &ws.Settings
	rules, err := lint.Select(settings.Linter.Disabled)
	if err != nil {
		run.End("configuration error")
		return nil, err
	}
	limit := max(settings.Linter.MaxDiagnostics, 0)

	res := &Result{Workspace: ws, Bag: diag.NewBag(0)}

	var files []workspace.ResolvedFile
	err = p.run("resolve", func(context.Context) (string, error) {
		var err error
		files, err = ws.Resolver().FindFiles(opts.Paths)
		return fmt.Sprintf("%d files", len(files)), err
	})
	if err != nil {
		run.End("resolve failed")
		return nil, err
	}

	var loaded []workspace.MemberID
	_ = p.run("load", func(context.Context) (string, error) {
		loaded = loadFiles(ws, files, res.Bag)
		return fmt.Sprintf("%d loaded", len(loaded)), nil
	})

	// members left by an earlier run are not part of this one
	n := len(loaded)
	res.Files = make([]FileResult, n)
	for i, id := range loaded {
		res.Files[i].Member = id
	}

	err = p.run("parse", func(ctx context.Context) (string, error) {
		return parseMembers(ctx, ws, res.Files, opts.Jobs, limit)
	})
	if err == nil {
		err = p.run("lint", func(ctx context.Context) (string, error) {
			return lintMembers(ctx, ws, res.Files, rules, opts.Jobs)
		})
	}
	if err == nil && settings.Linter.Fix {
		err = p.run("fix", func(ctx context.Context) (string, error) {
			return fixMembers(ctx, ws, res, rules, opts.Jobs)
		})
	}
	if err != nil {
		run.End("cancelled")
		return nil, err
	}

	for i := range res.Files {
		res.Bag.Merge(res.Files[i].Bag)
	}
	if res.Fixes != nil && settings.Linter.FixMode == fix.ModeApply {
		res.Fixed = dropFixed(res.Bag, res)
	}
	res.Bag.Sort()
	res.Bag.Dedup()
	res.Bag.Truncate(limit)
	res.Timings = p.report()

	run.WithExtra("files", strconv.Itoa(n)).
		WithExtra("diagnostics", strconv.Itoa(res.Bag.Len())).
		End(res.ExitStatus().String())
	return res, nil
}

// loadFiles adds every readable file to ws.Members and returns their ids in
// path order.
func loadFiles(ws *workspace.Workspace, files []workspace.ResolvedFile, bag *diag.Bag) []workspace.MemberID {
	ids := make([]workspace.MemberID, 0, len(files))
	for _, f := range files {
		id, err := ws.Files.Load(f.Path)
		if err != nil {
			bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{},
				fmt.Sprintf("failed to load %s: %v", f.Path, err)))
			continue
		}
		ids = append(ids, ws.Members.Add(workspace.Member{Path: f.Path, File: id, Root: f.Root}))
		if ws.Files.Get(id).Flags&source.FileNotNFC != 0 {
			bag.Add(diag.New(diag.SevInfo, diag.IOInfo, source.NewSpan(id, 0, 0),
				"file is not in Unicode NFC; names that look alike may differ"))
		}
	}
	return ids
}

func parseMembers(ctx context.Context, ws *workspace.Workspace, out []FileResult, jobs, limit int) (string, error) {
	maxErrors, err := safecast.Conv[uint](limit)
	if err != nil {
		panic(fmt.Errorf("max diagnostics overflow: %w", err))
	}
	tracer := trace.FromContext(ctx)

	var nodes atomic.Int64
	err = forEach(ctx, jobs, len(out), func(ctx context.Context, i int) error {
		id := out[i].Member
		m := ws.Members.Get(id)
		ctx, span := trace.Enter(ctx, trace.ScopeFile, m.Path)

		bag := diag.NewBag(limit)
		pr := parser.ParseFile(ws.Files.Get(m.File), parser.Options{
			MaxErrors: maxErrors,
			Reporter:  diag.NewDedupReporter(diag.BagReporter{Bag: bag}),
		})
		trace.Point(tracer, trace.ScopeNode, "commit", strconv.Itoa(pr.Nodes)+" spans", trace.Parent(ctx))

		// индекс i принадлежит только этой горутине
		m.Document = pr.Doc
		out[i] = FileResult{Member: id, Path: m.Path, Nodes: pr.Nodes, Bag: bag}
		nodes.Add(int64(pr.Nodes))

		span.WithExtra("nodes", strconv.Itoa(pr.Nodes)).
			WithExtra("errors", strconv.FormatUint(uint64(pr.Errors), 10)).
			End("")
		return nil
	})
	return fmt.Sprintf("%d nodes", nodes.Load()), err
}

func lintMembers(ctx context.Context, ws *workspace.Workspace, out []FileResult, rules []lint.Rule, jobs int) (string, error) {
	var found atomic.Int64
	err := forEach(ctx, jobs, len(out), func(ctx context.Context, i int) error {
		m := ws.Members.Get(out[i].Member)
		_, span := trace.Enter(ctx, trace.ScopeFile, m.Path)

		bag := out[i].Bag
		before := bag.Len()
		lint.Run(m.Document, ws.Files.Get(m.File), rules, diag.BagReporter{Bag: bag})
		found.Add(int64(bag.Len() - before))

		span.End("")
		return nil
	})
	return fmt.Sprintf("%d findings", found.Load()), err
}

func fixMembers(ctx context.Context, ws *workspace.Workspace, res *Result, rules []lint.Rule, jobs int) (string, error) {
	err := forEach(ctx, jobs, len(res.Files), func(_ context.Context, i int) error {
		m := ws.Members.Get(res.Files[i].Member)
		fr, err := lint.Autofix(m.Document, ws.Files.Get(m.File), rules)
		if err != nil {
			return fmt.Errorf("%s: autofix: %w", m.Path, err)
		}
		res.Files[i].Fix = fr
		return nil
	})
	if err != nil {
		return "", err
	}

	edits := make(map[source.SourceID][]diag.FixEdit)
	for i := range res.Files {
		if fr := res.Files[i].Fix; len(fr.Edits) > 0 {
			edits[ws.Members.Get(res.Files[i].Member).File] = fr.Edits
		}
	}

	applied, err := fix.Apply(ws.Files, edits, fix.ApplyOptions{Mode: ws.Settings.Linter.FixMode})
	res.Fixes = applied
	switch {
	case errors.Is(err, fix.ErrNoFixes):
		return "no fixes", nil
	case err != nil:
		// ошибка записи не отменяет прогон: она становится диагностикой
		res.Bag.Add(diag.NewError(diag.IOWriteError, source.Span{}, err.Error()))
		res.Fixes = nil
		return "write failed", nil
	}
	return fmt.Sprintf("%d edits in %d files", applied.Applied, len(applied.FileChanges)), nil
}

type editKey struct {
	span source.Span
	text string
}

// dropFixed removes the lint diagnostics whose fix was written to disk and
// returns how many it removed.
func dropFixed(bag *diag.Bag, res *Result) int {
	skipped := make(map[editKey]bool, len(res.Fixes.Skipped))
	for _, s := range res.Fixes.Skipped {
		skipped[editKey{s.Edit.Span, s.Edit.NewText}] = true
	}
	applied := make(map[editKey]bool)
	for i := range res.Files {
		for _, e := range res.Files[i].Fix.Edits {
			if k := (editKey{e.Span, e.NewText}); !skipped[k] {
				applied[k] = true
			}
		}
	}

	fixed := 0
	bag.Filter(func(d *diag.Diagnostic) bool {
		if !d.Code.IsLint() || !d.Fixable() {
			return true
		}
		for _, e := range d.Fixes[0].Edits {
			if !applied[editKey{e.Span, e.NewText}] {
				return true
			}
		}
		fixed++
		return false
	})
	return fixed
}

package fuzztests

import (
	"testing"
	"time"

	"bracketlint/internal/diag"
	"bracketlint/internal/lexer"
	"bracketlint/internal/lint"
	"bracketlint/internal/parser"
	"bracketlint/internal/source"
	"bracketlint/internal/testkit"
	"bracketlint/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

// parseTimeout is the maximum time allowed for one input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.html", input))

		bag := diag.NewBag(64)
		lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		// каждый токен съедает хотя бы байт, иначе лексер завис
		for i := 0; ; i++ {
			if i > len(input)+1 {
				t.Fatalf("lexer did not reach EOF after %d tokens", i)
			}
			if lx.Next().Kind == token.EOF {
				break
			}
		}
	})
}

func FuzzParserPipeline(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.html", input))

		done := make(chan struct{})
		go func() {
			defer close(done)
			bag := diag.NewBag(128)
			reporter := diag.BagReporter{Bag: bag}
			res := parser.ParseFile(file, parser.Options{Reporter: reporter, MaxErrors: 128})

			if !bag.HasErrors() {
				if err := testkit.CheckSpanInvariants(res.Doc, file); err != nil {
					t.Errorf("span invariants: %v\ninput: %q", err, input)
				}
			}
			lint.Run(res.Doc, file, lint.All(), reporter)
			if _, err := lint.Autofix(res.Doc, file, lint.All()); err != nil {
				t.Errorf("autofix: %v", err)
			}
		}()

		select {
		case <-done:
		case <-time.After(parseTimeout):
			t.Fatalf("pipeline did not finish within %s on %q", parseTimeout, input)
		}
	})
}

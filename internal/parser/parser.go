package parser

import (
	"fmt"
	"slices"

	"fortio.org/safecast"

	"bracketlint/internal/ast"
	"bracketlint/internal/diag"
	"bracketlint/internal/lexer"
	"bracketlint/internal/source"
	"bracketlint/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Doc ast.Node[ast.Document]
	// Nodes is the number of identities committed for the file.
	Nodes  int
	Errors uint
}

// Parser: состояние парсера на один файл
type Parser struct {
	lx       *lexer.Lexer
	file     *source.File
	spans    *ast.LocalSpanBuffer
	opts     Options
	look     []token.Token // буфер просмотра вперёд
	lastSpan source.Span   // span последнего съеденного токена для лучшей диагностики

	depth      int  // вложенность блоков
	sawContent bool // на верхнем уровне уже был значимый контент
}

// ParseFile parses one template. Every node identity is reserved in a
// buffer local to this call and published with a single commit, so files
// can be parsed concurrently.
func ParseFile(file *source.File, opts Options) Result {
	p := Parser{
		lx:       lexer.New(file, lexer.Options{Reporter: opts.Reporter}),
		file:     file,
		spans:    ast.NewLocalSpanBuffer(len(file.Content) / 8),
		opts:     opts,
		lastSpan: source.NewSpan(file.ID, 0, 0),
	}

	doc := p.parseDocument()
	nodes := p.spans.Len()
	// wrappers resolve through ast.Spans(), so the commit must land there
	p.spans.Commit(file.ID)

	return Result{Doc: doc, Nodes: nodes, Errors: p.opts.CurrentErrors}
}

func (p *Parser) parseDocument() ast.Node[ast.Document] {
	nodes, _ := p.parseBody()
	end, err := safecast.Conv[uint32](len(p.file.Content))
	if err != nil {
		panic(fmt.Errorf("file too large: %w", err))
	}
	whole := source.NewByteRange(0, end)
	body := p.stmtList(nodes, whole)
	return ast.NewNodeWithID(ast.Document{Body: body}, p.spans.Reserve(whole))
}

// parseBody разбирает операторы, пока не встретит `{% kw` с kw из stop
// или EOF. Тег-терминатор не съедается; возвращается его ключевое слово
// (или EOF).
func (p *Parser) parseBody(stop ...token.Kind) ([]ast.Node[ast.Stmt], token.Token) {
	var nodes []ast.Node[ast.Stmt]
	for {
		tok := p.peek()
		if tok.Kind == token.EOF {
			return nodes, tok
		}
		if tok.Kind == token.StmtOpen {
			if kw := p.peekN(1); slices.Contains(stop, kw.Kind) {
				return nodes, kw
			}
		}
		if n, ok := p.parseStmt(); ok {
			nodes = append(nodes, n)
		}
	}
}

// parseNested is parseBody one block level down.
func (p *Parser) parseNested(stop ...token.Kind) ([]ast.Node[ast.Stmt], token.Token) {
	p.depth++
	defer func() { p.depth-- }()
	return p.parseBody(stop...)
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

// ===== построение узлов =====

type pexpr struct {
	n ast.Node[ast.Expr]
	r source.ByteRange
}

func (p *Parser) expr(e ast.Expr, r source.ByteRange) pexpr {
	return pexpr{n: ast.NewNodeWithID(e, p.spans.Reserve(r)), r: r}
}

func (p *Parser) stmt(s ast.Stmt, r source.ByteRange) ast.Node[ast.Stmt] {
	return ast.NewNodeWithID(s, p.spans.Reserve(r))
}

func (p *Parser) stmtList(nodes []ast.Node[ast.Stmt], r source.ByteRange) ast.NodeList[ast.Stmt] {
	return ast.ListWithID(nodes, p.spans.Reserve(r))
}

func (p *Parser) exprList(items []pexpr, r source.ByteRange) ast.NodeList[ast.Expr] {
	nodes := make([]ast.Node[ast.Expr], len(items))
	for i, it := range items {
		nodes[i] = it.n
	}
	return ast.ListWithID(nodes, p.spans.Reserve(r))
}

// span builds a span in the current file from offsets.
func (p *Parser) span(r source.ByteRange) source.Span {
	return source.Span{Range: r, Source: p.file.ID}
}

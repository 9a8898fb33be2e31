package parser

import (
	"errors"
	"fmt"
	"io"

	"github.com/dhamidi/mjc/minijava/lexer"
)

// Recovery selects what happens at an expected-token mismatch.
type Recovery int

const (
	// FailFast stops the parse at the first mismatch.
	FailFast Recovery = iota
	// Continue records the mismatch and returns from the production
	// without consuming the offending token.
	Continue
)

func (r Recovery) String() string {
	switch r {
	case FailFast:
		return "fail-fast"
	case Continue:
		return "continue"
	default:
		return fmt.Sprintf("Recovery(%d)", int(r))
	}
}

func ParseRecovery(s string) (Recovery, error) {
	switch s {
	case "", "fail-fast":
		return FailFast, nil
	case "continue":
		return Continue, nil
	default:
		return FailFast, fmt.Errorf("unknown recovery mode %q (want fail-fast or continue)", s)
	}
}

var ErrAlreadyParsed = errors.New("parser: Parse called twice")

type Option func(*Parser)

func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

// WithTrace writes every token to w as the lexer produces it.
func WithTrace(w io.Writer) Option {
	return func(p *Parser) {
		p.trace = w
	}
}

func WithRecovery(r Recovery) Option {
	return func(p *Parser) {
		p.recovery = r
	}
}

func WithTables(t *lexer.Tables) Option {
	return func(p *Parser) {
		p.tables = t
	}
}

// Parser is a recursive-descent recognizer. It validates a token stream
// against the grammar and collects diagnostics; no tree is built.
type Parser struct {
	file     string
	trace    io.Writer
	recovery Recovery
	tables   *lexer.Tables

	lexer   *lexer.Lexer
	current lexer.Token
	// seq numbers every token taken from the lexer and identifies the
	// current token for reported-once suppression.
	seq      int
	errorSeq int
	diags    []Diagnostic
	started  bool
}

func New(r io.Reader, opts ...Option) *Parser {
	p := &Parser{errorSeq: -1}
	for _, opt := range opts {
		opt(p)
	}
	lexOpts := []lexer.Option{lexer.WithFile(p.file)}
	if p.trace != nil {
		lexOpts = append(lexOpts, lexer.WithTrace(p.trace))
	}
	if p.tables != nil {
		lexOpts = append(lexOpts, lexer.WithTables(p.tables))
	}
	p.lexer = lexer.New(r, lexOpts...)
	return p
}

// Parse recognizes one compilation unit. The returned Result is never nil.
// The error is a *FatalError when a mismatch stopped the parse in FailFast
// mode, or a read error from the source.
func (p *Parser) Parse() (*Result, error) {
	if p.started {
		return nil, ErrAlreadyParsed
	}
	p.started = true
	p.current = p.lexer.Next()

	err := p.parseProgram()
	result := &Result{
		File:        p.file,
		Diagnostics: p.diags,
		Tokens:      p.seq,
	}
	if err != nil {
		return result, err
	}
	if lexErr := p.lexer.Err(); lexErr != nil {
		return result, lexErr
	}
	return result, nil
}

// Parse is shorthand for New(r, opts...).Parse().
func Parse(r io.Reader, opts ...Option) (*Result, error) {
	return New(r, opts...).Parse()
}

func (p *Parser) advance() {
	p.current = p.lexer.Next()
	p.seq++
}

func (p *Parser) at(kinds ...lexer.Kind) bool {
	for _, k := range kinds {
		if p.current.Kind == k {
			return true
		}
	}
	return false
}

func (p *Parser) expect(kind lexer.Kind) error {
	if p.current.Kind == kind {
		p.advance()
		return nil
	}
	return p.report(&kind)
}

// report records a diagnostic for the current token unless that token was
// already reported. It never consumes input. Only a mismatch against an
// expected kind in FailFast mode yields an error.
func (p *Parser) report(expected *lexer.Kind) error {
	if p.seq == p.errorSeq {
		return nil
	}
	p.errorSeq = p.seq

	d := Diagnostic{
		File:     p.file,
		Found:    p.current.Kind,
		Line:     p.current.Line,
		Column:   p.current.Column,
		Expected: expected,
		Fatal:    expected != nil && p.recovery == FailFast,
	}
	p.diags = append(p.diags, d)
	if d.Fatal {
		return &FatalError{Diagnostic: d}
	}
	return nil
}

func (p *Parser) unexpected() error {
	return p.report(nil)
}

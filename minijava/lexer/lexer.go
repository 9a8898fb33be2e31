package lexer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode"
)

const (
	eof      rune = -1
	tabWidth      = 4
)

type Option func(*Lexer)

func WithFile(name string) Option {
	return func(l *Lexer) {
		l.file = name
	}
}

// WithTrace writes every produced token to w, one per line.
func WithTrace(w io.Writer) Option {
	return func(l *Lexer) {
		l.trace = w
	}
}

func WithTables(t *Tables) Option {
	return func(l *Lexer) {
		l.tables = t
	}
}

// Lexer pulls characters from a reader on demand and produces one token per
// call to Next. A single token can be buffered with Peek.
type Lexer struct {
	src    *bufio.Reader
	file   string
	tables *Tables
	trace  io.Writer

	ch     rune
	line   int
	column int

	pending *Token
	err     error
}

func New(r io.Reader, opts ...Option) *Lexer {
	l := &Lexer{
		src:    bufio.NewReader(r),
		line:   1,
		column: 1,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.tables == nil {
		l.tables = DefaultTables()
	}
	l.read()
	return l
}

func (l *Lexer) File() string {
	return l.file
}

// Err returns the first read error other than io.EOF. After a read error
// the lexer behaves as if the source were exhausted.
func (l *Lexer) Err() error {
	return l.err
}

// Next consumes and returns the next token. A token buffered by Peek is
// returned without scanning the source again.
func (l *Lexer) Next() Token {
	if l.pending != nil {
		tok := *l.pending
		l.pending = nil
		return tok
	}
	return l.produce()
}

// Peek returns the next token without consuming it. Repeated calls return
// the same token until Next is called.
func (l *Lexer) Peek() Token {
	if l.pending == nil {
		tok := l.produce()
		l.pending = &tok
	}
	return *l.pending
}

func (l *Lexer) produce() Token {
	tok := l.scan()
	if l.trace != nil {
		fmt.Fprintln(l.trace, tok)
	}
	return tok
}

func (l *Lexer) read() {
	r, _, err := l.src.ReadRune()
	if err != nil {
		if !errors.Is(err, io.EOF) && l.err == nil {
			l.err = fmt.Errorf("read %s: %w", l.name(), err)
		}
		l.ch = eof
		return
	}
	l.ch = r
}

func (l *Lexer) name() string {
	if l.file == "" {
		return "<input>"
	}
	return l.file
}

// advance moves past the current character. \n, \r and \r\n each count as
// a single line break.
func (l *Lexer) advance() {
	switch l.ch {
	case eof:
		return
	case '\n':
		l.line++
		l.column = 1
	case '\r':
		l.line++
		l.column = 1
		l.read()
		if l.ch == '\n' {
			l.read()
		}
		return
	case '\t':
		l.column += tabWidth
	default:
		l.column++
	}
	l.read()
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.advance()
	}
}

func (l *Lexer) token(kind Kind, line, column int) Token {
	return Token{Kind: kind, Line: line, Column: column}
}

// scan loops until a real token is produced, discarding comments on the
// way. An exhausted source yields TokenEOF on every call.
func (l *Lexer) scan() Token {
	for {
		l.skipWhitespace()
		if l.ch == eof {
			return l.token(TokenEOF, l.line, l.column)
		}

		line, column := l.line, l.column

		if isLetter(l.ch) {
			return l.scanIdentOrKeyword(line, column)
		}
		if isDigit(l.ch) {
			return l.scanNumber(line, column)
		}

		switch l.ch {
		case '/':
			l.advance()
			switch l.ch {
			case '/':
				l.skipLineComment()
				continue
			case '*':
				l.advance()
				l.skipBlockComment()
				continue
			}
			return l.token(TokenUnknown, line, column)
		case '&':
			l.advance()
			if l.ch == '&' {
				l.advance()
				return l.token(TokenAnd, line, column)
			}
			return l.token(TokenUnknown, line, column)
		case '+':
			l.advance()
			return l.token(TokenAdd, line, column)
		case '-':
			l.advance()
			return l.token(TokenSub, line, column)
		case '*':
			l.advance()
			return l.token(TokenTimes, line, column)
		case '<':
			l.advance()
			return l.token(TokenLT, line, column)
		}

		kind, ok := l.tables.LookupPunctuation(l.ch)
		l.advance()
		if ok {
			return l.token(kind, line, column)
		}
		return l.token(TokenUnknown, line, column)
	}
}

func (l *Lexer) scanIdentOrKeyword(line, column int) Token {
	var buf []rune
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		buf = append(buf, l.ch)
		l.advance()
	}
	text := string(buf)
	if kind, ok := l.tables.LookupKeyword(text); ok {
		return l.token(kind, line, column)
	}
	return Token{Kind: TokenID, Line: line, Column: column, Literal: text}
}

func (l *Lexer) scanNumber(line, column int) Token {
	var buf []rune
	for isDigit(l.ch) {
		buf = append(buf, l.ch)
		l.advance()
	}
	return Token{Kind: TokenNum, Line: line, Column: column, Literal: string(buf)}
}

// skipLineComment is entered on the second '/' and consumes through the
// line break.
func (l *Lexer) skipLineComment() {
	for l.ch != eof && l.ch != '\n' && l.ch != '\r' {
		l.advance()
	}
	l.advance()
}

// skipBlockComment is entered after the opening "/*". Comments nest; an
// unterminated comment runs to the end of the source without a diagnostic.
func (l *Lexer) skipBlockComment() {
	depth := 1
	for depth > 0 && l.ch != eof {
		switch l.ch {
		case '/':
			l.advance()
			if l.ch == '*' {
				l.advance()
				depth++
			}
		case '*':
			l.advance()
			if l.ch == '/' {
				l.advance()
				depth--
			}
		default:
			l.advance()
		}
	}
}

func isLetter(ch rune) bool {
	return ch != eof && unicode.IsLetter(ch)
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

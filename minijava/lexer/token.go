package lexer

import (
	"fmt"
	"sync"
)

type Kind int

const (
	TokenEOF Kind = iota
	TokenUnknown

	// Literals
	TokenID
	TokenNum

	// Keywords
	TokenBoolean
	TokenClass
	TokenElse
	TokenExtends
	TokenFalse
	TokenIf
	TokenInt
	TokenLength
	TokenMain
	TokenNew
	TokenOut
	TokenPrintln
	TokenPublic
	TokenReturn
	TokenStatic
	TokenString
	TokenSystem
	TokenThis
	TokenTrue
	TokenVoid
	TokenWhile

	// Punctuation
	TokenLParen
	TokenRParen
	TokenLBrack
	TokenRBrack
	TokenLBrace
	TokenRBrace
	TokenSemi
	TokenComma
	TokenDot
	TokenAssign
	TokenNot

	// Operators
	TokenAnd
	TokenAdd
	TokenSub
	TokenTimes
	TokenLT
)

var kindNames = map[Kind]string{
	TokenEOF:     "TOKEN_EOF",
	TokenUnknown: "TOKEN_UNKNOWN",
	TokenID:      "TOKEN_ID",
	TokenNum:     "TOKEN_NUM",
	TokenBoolean: "TOKEN_BOOLEAN",
	TokenClass:   "TOKEN_CLASS",
	TokenElse:    "TOKEN_ELSE",
	TokenExtends: "TOKEN_EXTENDS",
	TokenFalse:   "TOKEN_FALSE",
	TokenIf:      "TOKEN_IF",
	TokenInt:     "TOKEN_INT",
	TokenLength:  "TOKEN_LENGTH",
	TokenMain:    "TOKEN_MAIN",
	TokenNew:     "TOKEN_NEW",
	TokenOut:     "TOKEN_OUT",
	TokenPrintln: "TOKEN_PRINTLN",
	TokenPublic:  "TOKEN_PUBLIC",
	TokenReturn:  "TOKEN_RETURN",
	TokenStatic:  "TOKEN_STATIC",
	TokenString:  "TOKEN_STRING",
	TokenSystem:  "TOKEN_SYSTEM",
	TokenThis:    "TOKEN_THIS",
	TokenTrue:    "TOKEN_TRUE",
	TokenVoid:    "TOKEN_VOID",
	TokenWhile:   "TOKEN_WHILE",
	TokenLParen:  "TOKEN_LPAREN",
	TokenRParen:  "TOKEN_RPAREN",
	TokenLBrack:  "TOKEN_LBRACK",
	TokenRBrack:  "TOKEN_RBRACK",
	TokenLBrace:  "TOKEN_LBRACE",
	TokenRBrace:  "TOKEN_RBRACE",
	TokenSemi:    "TOKEN_SEMI",
	TokenComma:   "TOKEN_COMMA",
	TokenDot:     "TOKEN_DOT",
	TokenAssign:  "TOKEN_ASSIGN",
	TokenNot:     "TOKEN_NOT",
	TokenAnd:     "TOKEN_AND",
	TokenAdd:     "TOKEN_ADD",
	TokenSub:     "TOKEN_SUB",
	TokenTimes:   "TOKEN_TIMES",
	TokenLT:      "TOKEN_LT",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// HasLiteral reports whether tokens of this kind carry their spelling.
func (k Kind) HasLiteral() bool {
	return k == TokenID || k == TokenNum
}

// Token is a classified lexeme. Line and Column are 1-based and point at
// the first character. Literal is set only for identifiers and integer
// literals.
type Token struct {
	Kind    Kind
	Line    int
	Column  int
	Literal string
}

func (t Token) String() string {
	if t.Kind.HasLiteral() {
		return fmt.Sprintf("%s(%s) at line %d, column %d", t.Kind, t.Literal, t.Line, t.Column)
	}
	return fmt.Sprintf("%s at line %d, column %d", t.Kind, t.Line, t.Column)
}

// Tables holds the reserved-word and punctuation lookups. A Tables value is
// never modified after construction and may be shared between lexers.
type Tables struct {
	keywords    map[string]Kind
	punctuation map[rune]Kind
}

var DefaultTables = sync.OnceValue(func() *Tables {
	return &Tables{
		keywords: map[string]Kind{
			"boolean": TokenBoolean,
			"class":   TokenClass,
			"else":    TokenElse,
			"extends": TokenExtends,
			"false":   TokenFalse,
			"if":      TokenIf,
			"int":     TokenInt,
			"length":  TokenLength,
			"main":    TokenMain,
			"new":     TokenNew,
			"out":     TokenOut,
			"println": TokenPrintln,
			"public":  TokenPublic,
			"return":  TokenReturn,
			"static":  TokenStatic,
			"String":  TokenString,
			"System":  TokenSystem,
			"this":    TokenThis,
			"true":    TokenTrue,
			"void":    TokenVoid,
			"while":   TokenWhile,
		},
		punctuation: map[rune]Kind{
			'(': TokenLParen,
			')': TokenRParen,
			'[': TokenLBrack,
			']': TokenRBrack,
			'{': TokenLBrace,
			'}': TokenRBrace,
			';': TokenSemi,
			',': TokenComma,
			'.': TokenDot,
			'=': TokenAssign,
			'!': TokenNot,
		},
	}
})

func (t *Tables) LookupKeyword(ident string) (Kind, bool) {
	kind, ok := t.keywords[ident]
	return kind, ok
}

func (t *Tables) LookupPunctuation(ch rune) (Kind, bool) {
	kind, ok := t.punctuation[ch]
	return kind, ok
}

// Keywords returns the reserved words in no particular order.
func (t *Tables) Keywords() []string {
	words := make([]string, 0, len(t.keywords))
	for w := range t.keywords {
		words = append(words, w)
	}
	return words
}

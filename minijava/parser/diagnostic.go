package parser

import (
	"fmt"
	"strings"

	"github.com/dhamidi/mjc/minijava/lexer"
)

// Diagnostic describes one syntax error. Expected is set for expected-token
// mismatches and nil when no alternative of a rule matched.
type Diagnostic struct {
	File     string
	Found    lexer.Kind
	Line     int
	Column   int
	Expected *lexer.Kind
	Fatal    bool
}

func (d Diagnostic) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "ERROR: %s at line %d, column %d", d.Found, d.Line, d.Column)
	if d.Expected != nil {
		fmt.Fprintf(&sb, "; Expected %s", *d.Expected)
	}
	return sb.String()
}

// FatalError stops the parse at an expected-token mismatch.
type FatalError struct {
	Diagnostic Diagnostic
}

func (e *FatalError) Error() string {
	if e.Diagnostic.File != "" {
		return e.Diagnostic.File + ": " + e.Diagnostic.String()
	}
	return e.Diagnostic.String()
}

// Result is what a parse leaves behind: the diagnostics in report order and
// the number of tokens the recognizer consumed.
type Result struct {
	File        string
	Diagnostics []Diagnostic
	Tokens      int
}

func (r *Result) Errors() int {
	return len(r.Diagnostics)
}

func (r *Result) OK() bool {
	return len(r.Diagnostics) == 0
}

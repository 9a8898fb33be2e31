package parser

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/dhamidi/mjc/minijava/lexer"
)

const mainClass = "class Main { public static void main(String[] a) { System.out.println(0); } }\n"

// inMethod wraps body in a method of a second class, before its return.
func inMethod(body string) string {
	return mainClass + "class C { public int f() { " + body + " return 0; } }"
}

// positionOf returns the 1-based line and column of the first occurrence
// of substr in src. src must not contain tabs or carriage returns.
func positionOf(t *testing.T, src, substr string) (int, int) {
	t.Helper()
	idx := strings.Index(src, substr)
	if idx < 0 {
		t.Fatalf("%q not found in source", substr)
	}
	line := strings.Count(src[:idx], "\n") + 1
	column := idx - strings.LastIndex(src[:idx], "\n")
	return line, column
}

func kindPtr(k lexer.Kind) *lexer.Kind {
	return &k
}

func parseString(t *testing.T, src string, opts ...Option) (*Result, error) {
	t.Helper()
	result, err := Parse(strings.NewReader(src), opts...)
	if result == nil {
		t.Fatal("Parse returned nil result")
	}
	return result, err
}

func TestParseValidPrograms(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "print expression",
			src:  "class A { public static void main(String[] a) { System.out.println(1+2*3); } }",
		},
		{
			name: "block statement in main",
			src:  "class A { public static void main(String[] a) { { x = 1; y[0] = 2; } } }",
		},
		{
			name: "class with fields and methods",
			src: mainClass + `
class Fac extends Base {
	int n;
	int[] memo;
	boolean done;
	Fac self;

	public int compute(int num, boolean flag, Fac other, int[] xs) {
		int acc;
		Fac f;
		if (num < 1) acc = 1; else acc = num * (this.compute(num - 1, flag, other, xs));
		while (!done && acc < 100) { acc = acc + 1; }
		xs[0] = xs.length;
		f = new Fac();
		memo = new int[n + 1];
		return acc;
	}

	public boolean empty() {
		return true;
	}
}
class Other { }`,
		},
		{
			name: "nested comments and line comments",
			src: "/* header /* nested */ still comment */\n" +
				"class A { // trailing\n" +
				"public static void main(String[] a) { System.out.println(1); } }",
		},
		{
			name: "expression ladder",
			src:  inMethod("x = a && b < c + d - e * !!f.g(1, h[2], new int[3]).length && (true) && false;"),
		},
		{
			name: "chained postfix",
			src:  inMethod("x = this.a().b(c)[0].length;"),
		},
		{
			name: "empty formal and argument lists",
			src:  inMethod("x = new C().f();"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseString(t, tt.src)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if !result.OK() {
				t.Fatalf("diagnostics = %v, want none", result.Diagnostics)
			}
		})
	}
}

func TestParseMissingMainClassBrace(t *testing.T) {
	src := "class A { public static void main(String[] a) { System.out.println(1+2*3); }"
	result, err := parseString(t, src)

	var fatal *FatalError
	if !errors.As(err, &fatal) {
		t.Fatalf("Parse() error = %v, want *FatalError", err)
	}

	want := []Diagnostic{{
		Found:    lexer.TokenEOF,
		Line:     1,
		Column:   len(src) + 1,
		Expected: kindPtr(lexer.TokenRBrace),
		Fatal:    true,
	}}
	if diff := cmp.Diff(want, result.Diagnostics); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want[0], fatal.Diagnostic); diff != "" {
		t.Errorf("fatal diagnostic mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFatalStopsAtFirstMismatch(t *testing.T) {
	src := mainClass + "class B { int x } class C { int y }"
	result, err := parseString(t, src)

	var fatal *FatalError
	if !errors.As(err, &fatal) {
		t.Fatalf("Parse() error = %v, want *FatalError", err)
	}
	if result.Errors() != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", result.Errors(), result.Diagnostics)
	}
	line, column := positionOf(t, src, "} class C")
	d := result.Diagnostics[0]
	if d.Line != line || d.Column != column {
		t.Errorf("position = %d:%d, want %d:%d", d.Line, d.Column, line, column)
	}
	if d.Found != lexer.TokenRBrace || d.Expected == nil || *d.Expected != lexer.TokenSemi {
		t.Errorf("diagnostic = %v, want TOKEN_RBRACE expecting TOKEN_SEMI", d)
	}
}

func TestParseLocalDeclarationLookahead(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"class-typed locals", "Foo x; Bar y;"},
		{"primitive locals", "int x; int y;"},
		{"declarations then statements", "Foo x; int[] z; x = y; z[0] = 1;"},
		{"interleaved", "x = 1; Foo y; y = x; boolean b;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseString(t, inMethod(tt.body))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if !result.OK() {
				t.Fatalf("diagnostics = %v, want none", result.Diagnostics)
			}
		})
	}
}

func TestParseDeclarationWithInitializerRejected(t *testing.T) {
	src := inMethod("Foo x = 1;")
	result, err := parseString(t, src)

	var fatal *FatalError
	if !errors.As(err, &fatal) {
		t.Fatalf("Parse() error = %v, want *FatalError", err)
	}
	line, column := positionOf(t, src, "= 1")
	want := Diagnostic{
		Found:    lexer.TokenAssign,
		Line:     line,
		Column:   column,
		Expected: kindPtr(lexer.TokenSemi),
		Fatal:    true,
	}
	if diff := cmp.Diff([]Diagnostic{want}, result.Diagnostics); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestParseNoAlternativeDoesNotConsume(t *testing.T) {
	src := inMethod("x = ;")
	result, err := parseString(t, src)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	line, column := positionOf(t, src, "= ;")
	want := []Diagnostic{{
		Found:  lexer.TokenSemi,
		Line:   line,
		Column: column + 2,
	}}
	if diff := cmp.Diff(want, result.Diagnostics); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestParseReportsTokenOnce(t *testing.T) {
	src := inMethod("x = );")
	result, err := parseString(t, src)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	line, column := positionOf(t, src, "= );")
	want := []Diagnostic{
		{Found: lexer.TokenRParen, Line: line, Column: column + 2},
		{Found: lexer.TokenSemi, Line: line, Column: column + 3},
	}
	if diff := cmp.Diff(want, result.Diagnostics); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLengthOnlyAfterDot(t *testing.T) {
	src := inMethod("x = length;")
	result, err := parseString(t, src)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if result.OK() || result.Diagnostics[0].Found != lexer.TokenLength {
		t.Fatalf("diagnostics = %v, want TOKEN_LENGTH first", result.Diagnostics)
	}
}

func TestParseMethodCallArguments(t *testing.T) {
	src := inMethod("x = a.f(1 2);")
	result, err := parseString(t, src)

	var fatal *FatalError
	if !errors.As(err, &fatal) {
		t.Fatalf("Parse() error = %v, want *FatalError", err)
	}
	if got := *result.Diagnostics[0].Expected; got != lexer.TokenRParen {
		t.Errorf("Expected = %v, want %v", got, lexer.TokenRParen)
	}
}

func TestParseMalformedMethodBodyDoesNotHang(t *testing.T) {
	inputs := []string{
		inMethod("5;"),
		inMethod("x = );"),
		inMethod("&& + ) ] ;"),
		mainClass + "class C { public int f() { 1 2 3",
	}
	for _, src := range inputs {
		t.Run(src[len(mainClass):], func(t *testing.T) {
			done := make(chan *Result, 1)
			go func() {
				result, _ := Parse(strings.NewReader(src))
				done <- result
			}()

			select {
			case result := <-done:
				if result.OK() {
					t.Error("expected diagnostics")
				}
			case <-time.After(time.Second):
				t.Fatal("Parse hung on malformed method body")
			}
		})
	}
}

func TestParseContinueRecovery(t *testing.T) {
	src := "class A { public static void main(String[] a) { System.out.println(1) } "
	result, err := parseString(t, src, WithRecovery(Continue))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if result.Errors() == 0 {
		t.Fatal("expected diagnostics")
	}
	for _, d := range result.Diagnostics {
		if d.Fatal {
			t.Errorf("diagnostic %v is fatal in continue mode", d)
		}
	}
	first := result.Diagnostics[0]
	if first.Found != lexer.TokenRBrace || *first.Expected != lexer.TokenSemi {
		t.Errorf("first diagnostic = %v, want TOKEN_RBRACE expecting TOKEN_SEMI", first)
	}
}

func TestParseTrace(t *testing.T) {
	var trace bytes.Buffer
	src := "class A { public static void main(String[] a) { System.out.println(1); } }"
	result, err := parseString(t, src, WithTrace(&trace))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(trace.String(), "\n"), "\n")
	if len(lines) != result.Tokens+1 {
		t.Fatalf("traced %d tokens, consumed %d plus EOF", len(lines), result.Tokens)
	}
	if lines[0] != "TOKEN_CLASS at line 1, column 1" {
		t.Errorf("first trace line = %q", lines[0])
	}
	if last := lines[len(lines)-1]; !strings.HasPrefix(last, "TOKEN_EOF") {
		t.Errorf("last trace line = %q, want TOKEN_EOF", last)
	}
}

func TestParseTwice(t *testing.T) {
	p := New(strings.NewReader("class"))
	p.Parse()
	if _, err := p.Parse(); !errors.Is(err, ErrAlreadyParsed) {
		t.Errorf("second Parse() error = %v, want %v", err, ErrAlreadyParsed)
	}
}

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		d    Diagnostic
		want string
	}{
		{
			Diagnostic{Found: lexer.TokenEOF, Line: 3, Column: 7, Expected: kindPtr(lexer.TokenRBrace)},
			"ERROR: TOKEN_EOF at line 3, column 7; Expected TOKEN_RBRACE",
		},
		{
			Diagnostic{Found: lexer.TokenSemi, Line: 1, Column: 2},
			"ERROR: TOKEN_SEMI at line 1, column 2",
		},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseRecovery(t *testing.T) {
	for _, s := range []string{"", "fail-fast", "continue"} {
		r, err := ParseRecovery(s)
		if err != nil {
			t.Fatalf("ParseRecovery(%q) error = %v", s, err)
		}
		if s != "" && r.String() != s {
			t.Errorf("ParseRecovery(%q).String() = %q", s, r)
		}
	}
	if _, err := ParseRecovery("retry"); err == nil {
		t.Error("ParseRecovery(\"retry\") succeeded, want error")
	}
}

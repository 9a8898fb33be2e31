// Package parser recognizes MiniJava programs.
//
// # Overview
//
// The recognizer pulls tokens one at a time from a lexer.Lexer and walks a
// fixed recursive-descent grammar. It builds no tree; its only results are
// the diagnostics it reports and whether there were any.
//
//	┌─────────────┐     ┌─────────────┐     ┌──────────────┐
//	│  io.Reader  │────▶│    Lexer    │────▶│    Parser    │
//	│   (bytes)   │     │ (Next/Peek) │     │ (Diagnostic) │
//	└─────────────┘     └─────────────┘     └──────────────┘
//
// # Grammar
//
//	Program    := MainClass ClassDecl* EOF
//	MainClass  := 'class' ID '{' 'public' 'static' 'void' 'main'
//	              '(' 'String' '[' ']' ID ')' '{' Statement '}' '}'
//	ClassDecl  := 'class' ID ('extends' ID)? '{' VarDecl* Method* '}'
//	Method     := 'public' Type ID '(' FormalList ')' '{'
//	              (VarDecl | Statement)* 'return' Exp ';' '}'
//	Type       := 'int' ('[' ']')? | 'boolean' | ID
//	VarDecl    := Type ID ';'
//	FormalList := (Type ID (',' Type ID)*)?
//
// Expression precedence, lowest first, is '&&', '<', '+' and '-', '*',
// prefix '!', then the postfix forms '.' ID '(' ExpList ')', '[' Exp ']'
// and '.' 'length'. All binary operators associate to the left.
//
// Inside a method body an identifier followed by another identifier starts
// a local declaration ("Foo x;"); any other identifier starts an assignment.
// This is the only point where the parser looks past its current token.
//
// # Errors
//
// A missing expected token produces a Diagnostic with Expected set. Under
// FailFast, the default, Parse stops there and returns a *FatalError. Under
// Continue the diagnostic is recorded and parsing goes on from the same
// token.
//
// When no alternative of a rule matches, the diagnostic has no Expected
// kind, the token is left unconsumed and the rule returns to its caller.
// A token is reported at most once, however many rules trip over it.
//
// The declaration and statement loop of a method body is not guarded by a
// start set, so an iteration that consumes nothing skips one token. Every
// other loop only runs while its current token starts the construct it
// parses, and so always makes progress.
//
// # Example Usage
//
//	result, err := parser.Parse(f, parser.WithFile("Main.java"))
//	var fatal *parser.FatalError
//	if err != nil && !errors.As(err, &fatal) {
//	    return err // read error
//	}
//	for _, d := range result.Diagnostics {
//	    fmt.Fprintln(os.Stderr, d)
//	}
//
// A Parser is not safe for concurrent use and parses exactly one
// compilation unit.
package parser

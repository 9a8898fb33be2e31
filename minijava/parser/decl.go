package parser

import "github.com/dhamidi/mjc/minijava/lexer"

// Program := MainClass ClassDecl* EOF
func (p *Parser) parseProgram() error {
	if err := p.parseMainClass(); err != nil {
		return err
	}
	if err := p.parseClassDecls(); err != nil {
		return err
	}
	return p.expect(lexer.TokenEOF)
}

// MainClass := 'class' ID '{' 'public' 'static' 'void' 'main'
//
//	'(' 'String' '[' ']' ID ')' '{' Statement '}' '}'
func (p *Parser) parseMainClass() error {
	header := []lexer.Kind{
		lexer.TokenClass, lexer.TokenID, lexer.TokenLBrace,
		lexer.TokenPublic, lexer.TokenStatic, lexer.TokenVoid, lexer.TokenMain,
		lexer.TokenLParen, lexer.TokenString, lexer.TokenLBrack, lexer.TokenRBrack,
		lexer.TokenID, lexer.TokenRParen, lexer.TokenLBrace,
	}
	for _, kind := range header {
		if err := p.expect(kind); err != nil {
			return err
		}
	}
	if err := p.parseStatement(); err != nil {
		return err
	}
	if err := p.expect(lexer.TokenRBrace); err != nil {
		return err
	}
	return p.expect(lexer.TokenRBrace)
}

func (p *Parser) parseClassDecls() error {
	for p.at(lexer.TokenClass) {
		if err := p.parseClassDecl(); err != nil {
			return err
		}
	}
	return nil
}

// ClassDecl := 'class' ID ('extends' ID)? '{' VarDecl* Method* '}'
func (p *Parser) parseClassDecl() error {
	if err := p.expect(lexer.TokenClass); err != nil {
		return err
	}
	if err := p.expect(lexer.TokenID); err != nil {
		return err
	}
	if p.at(lexer.TokenExtends) {
		p.advance()
		if err := p.expect(lexer.TokenID); err != nil {
			return err
		}
	}
	if err := p.expect(lexer.TokenLBrace); err != nil {
		return err
	}
	if err := p.parseVarDecls(); err != nil {
		return err
	}
	if err := p.parseMethodDecls(); err != nil {
		return err
	}
	return p.expect(lexer.TokenRBrace)
}

func (p *Parser) parseVarDecls() error {
	for p.at(lexer.TokenInt, lexer.TokenBoolean, lexer.TokenID) {
		if err := p.parseVarDecl(); err != nil {
			return err
		}
	}
	return nil
}

// VarDecl := Type ID ';'
func (p *Parser) parseVarDecl() error {
	if err := p.parseType(); err != nil {
		return err
	}
	if err := p.expect(lexer.TokenID); err != nil {
		return err
	}
	return p.expect(lexer.TokenSemi)
}

// Type := 'int' ('[' ']')? | 'boolean' | ID
func (p *Parser) parseType() error {
	switch p.current.Kind {
	case lexer.TokenInt:
		p.advance()
		if p.at(lexer.TokenLBrack) {
			p.advance()
			return p.expect(lexer.TokenRBrack)
		}
		return nil
	case lexer.TokenBoolean, lexer.TokenID:
		p.advance()
		return nil
	default:
		return p.unexpected()
	}
}

func (p *Parser) parseMethodDecls() error {
	for p.at(lexer.TokenPublic) {
		if err := p.parseMethod(); err != nil {
			return err
		}
	}
	return nil
}

// Method := 'public' Type ID '(' FormalList ')' '{'
//
//	(VarDecl | Statement)* 'return' Exp ';' '}'
func (p *Parser) parseMethod() error {
	if err := p.expect(lexer.TokenPublic); err != nil {
		return err
	}
	if err := p.parseType(); err != nil {
		return err
	}
	if err := p.expect(lexer.TokenID); err != nil {
		return err
	}
	if err := p.expect(lexer.TokenLParen); err != nil {
		return err
	}
	if err := p.parseFormalList(); err != nil {
		return err
	}
	if err := p.expect(lexer.TokenRParen); err != nil {
		return err
	}
	if err := p.expect(lexer.TokenLBrace); err != nil {
		return err
	}
	if err := p.parseMethodBody(); err != nil {
		return err
	}
	if err := p.expect(lexer.TokenReturn); err != nil {
		return err
	}
	if err := p.parseExp(); err != nil {
		return err
	}
	if err := p.expect(lexer.TokenSemi); err != nil {
		return err
	}
	return p.expect(lexer.TokenRBrace)
}

// parseMethodBody handles the declarations and statements before 'return'.
// An identifier followed by another identifier starts a declaration of a
// class-typed local; any other identifier starts a statement. This is the
// only place the lexer's peeked token is consulted.
//
// The loop condition is not a start set, so an iteration that reported a
// diagnostic without consuming skips the offending token.
func (p *Parser) parseMethodBody() error {
	for !p.at(lexer.TokenReturn, lexer.TokenEOF) {
		start := p.seq

		var err error
		switch p.current.Kind {
		case lexer.TokenInt, lexer.TokenBoolean:
			err = p.parseVarDecl()
		case lexer.TokenID:
			if p.lexer.Peek().Kind == lexer.TokenID {
				err = p.parseVarDecl()
			} else {
				err = p.parseStatement()
			}
		default:
			err = p.parseStatement()
		}
		if err != nil {
			return err
		}

		if p.seq == start {
			p.advance()
		}
	}
	return nil
}

// FormalList := (Type ID (',' Type ID)*)?
func (p *Parser) parseFormalList() error {
	if p.at(lexer.TokenRParen) {
		return nil
	}
	if err := p.parseFormal(); err != nil {
		return err
	}
	for p.at(lexer.TokenComma) {
		p.advance()
		if err := p.parseFormal(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) parseFormal() error {
	if err := p.parseType(); err != nil {
		return err
	}
	return p.expect(lexer.TokenID)
}
